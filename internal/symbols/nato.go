package symbols

import "strings"

var natoAlphabet = map[string]string{
	"a": "Alpha", "b": "Bravo", "c": "Charlie", "d": "Delta", "e": "Echo",
	"f": "Foxtrot", "g": "Golf", "h": "Hotel", "i": "India", "j": "Juliett",
	"k": "Kilo", "l": "Lima", "m": "Mike", "n": "November", "o": "Oscar",
	"p": "Papa", "q": "Quebec", "r": "Romeo", "s": "Sierra", "t": "Tango",
	"u": "Uniform", "v": "Victor", "w": "Whiskey", "x": "X-ray", "y": "Yankee",
	"z": "Zulu",
}

// Phonetic returns the NATO phonetic word for an ASCII letter (case
// insensitive), or ch unchanged if it isn't an ASCII letter.
func Phonetic(ch string) string {
	lower := strings.ToLower(ch)
	if word, ok := natoAlphabet[lower]; ok {
		return word
	}
	return ch
}
