// Package symbols implements the grapheme-to-spoken-word replacement table:
// level-gated, repeat-collapse-aware symbol substitution plus the NATO
// phonetic alphabet used for character-by-character review.
package symbols

// Level is a total order on how aggressively graphemes are replaced with
// spoken words. Character is a synthetic maximum used only when the text
// being spoken is itself a single grapheme.
type Level int

const (
	LevelNone Level = iota
	LevelSome
	LevelMost
	LevelAll
	LevelCharacter
)

func (l Level) String() string {
	switch l {
	case LevelNone:
		return "none"
	case LevelSome:
		return "some"
	case LevelMost:
		return "most"
	case LevelAll:
		return "all"
	case LevelCharacter:
		return "character"
	default:
		return "unknown"
	}
}

// IncludeOriginal determines whether the original grapheme accompanies its
// replacement, and on which side.
type IncludeOriginal int

const (
	IncludeOriginalNever IncludeOriginal = iota
	IncludeOriginalBefore
	IncludeOriginalAfter
)

// SymbolDesc describes how a mapped symbol should be replaced.
type SymbolDesc struct {
	// Replacement text substituted for the symbol.
	Replacement string
	// Level at or above which the replacement takes place.
	Level Level
	// Whether and where the original symbol accompanies the replacement.
	IncludeOriginal IncludeOriginal
	// If true, a run of four or more repeats (speech's minRepeatCount) collapses to "<count> <replacement>".
	Repeat bool
}

// Map is a grapheme-keyed symbol table.
type Map struct {
	entries map[string]SymbolDesc
}

// New returns an empty symbol map.
func New() *Map {
	return &Map{entries: make(map[string]SymbolDesc)}
}

// Put installs or replaces the mapping for symbol.
func (m *Map) Put(symbol, replacement string, level Level, include IncludeOriginal, repeat bool) {
	m.entries[symbol] = SymbolDesc{
		Replacement:     replacement,
		Level:           level,
		IncludeOriginal: include,
		Repeat:          repeat,
	}
}

// Get returns the mapping for symbol, if any.
func (m *Map) Get(symbol string) (SymbolDesc, bool) {
	d, ok := m.entries[symbol]
	return d, ok
}

// Remove deletes the mapping for symbol, if present.
func (m *Map) Remove(symbol string) {
	delete(m.entries, symbol)
}

// Clear empties the table; used when scripting rebuilds it from scratch.
func (m *Map) Clear() {
	m.entries = make(map[string]SymbolDesc)
}

// DefaultMap returns a Map pre-populated with the built-in table covering
// whitespace, punctuation, currency, shapes, the prime/section/trademark
// family, and the full box-drawing set.
func DefaultMap() *Map {
	m := New()
	for _, e := range defaultEntries {
		m.entries[e.key] = e.desc
	}
	return m
}

type defaultEntry struct {
	key  string
	desc SymbolDesc
}

var defaultEntries = []defaultEntry{
	{key: " ", desc: SymbolDesc{Replacement: "space", Level: LevelCharacter, IncludeOriginal: IncludeOriginalNever, Repeat: false}},
	{key: " ", desc: SymbolDesc{Replacement: "tab", Level: LevelCharacter, IncludeOriginal: IncludeOriginalNever, Repeat: false}},
	{key: "!", desc: SymbolDesc{Replacement: "bang", Level: LevelAll, IncludeOriginal: IncludeOriginalAfter, Repeat: true}},
	{key: "¡", desc: SymbolDesc{Replacement: "inverted bang", Level: LevelSome, IncludeOriginal: IncludeOriginalAfter, Repeat: true}},
	{key: "\"", desc: SymbolDesc{Replacement: "quote", Level: LevelMost, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "“", desc: SymbolDesc{Replacement: "left quote", Level: LevelMost, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "”", desc: SymbolDesc{Replacement: "right quote", Level: LevelMost, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "#", desc: SymbolDesc{Replacement: "number", Level: LevelSome, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "%", desc: SymbolDesc{Replacement: "percent", Level: LevelSome, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "&", desc: SymbolDesc{Replacement: "and", Level: LevelSome, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "'", desc: SymbolDesc{Replacement: "tick", Level: LevelMost, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "‘", desc: SymbolDesc{Replacement: "left tick", Level: LevelMost, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "’", desc: SymbolDesc{Replacement: "right tick", Level: LevelMost, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "(", desc: SymbolDesc{Replacement: "left paren", Level: LevelMost, IncludeOriginal: IncludeOriginalAfter, Repeat: true}},
	{key: ")", desc: SymbolDesc{Replacement: "right paren", Level: LevelMost, IncludeOriginal: IncludeOriginalBefore, Repeat: true}},
	{key: "*", desc: SymbolDesc{Replacement: "star", Level: LevelSome, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "+", desc: SymbolDesc{Replacement: "plus", Level: LevelSome, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: ",", desc: SymbolDesc{Replacement: "comma", Level: LevelAll, IncludeOriginal: IncludeOriginalAfter, Repeat: true}},
	{key: "-", desc: SymbolDesc{Replacement: "dash", Level: LevelMost, IncludeOriginal: IncludeOriginalAfter, Repeat: true}},
	{key: "–", desc: SymbolDesc{Replacement: "en dash", Level: LevelMost, IncludeOriginal: IncludeOriginalAfter, Repeat: true}},
	{key: "—", desc: SymbolDesc{Replacement: "em dash", Level: LevelMost, IncludeOriginal: IncludeOriginalAfter, Repeat: true}},
	{key: "­", desc: SymbolDesc{Replacement: "soft hyphen", Level: LevelMost, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "⁃", desc: SymbolDesc{Replacement: "hyphen", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: ".", desc: SymbolDesc{Replacement: "dot", Level: LevelAll, IncludeOriginal: IncludeOriginalAfter, Repeat: true}},
	{key: "…", desc: SymbolDesc{Replacement: "dot dot dot", Level: LevelAll, IncludeOriginal: IncludeOriginalAfter, Repeat: true}},
	{key: "·", desc: SymbolDesc{Replacement: "middle dot", Level: LevelMost, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "/", desc: SymbolDesc{Replacement: "slash", Level: LevelSome, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: ":", desc: SymbolDesc{Replacement: "colon", Level: LevelMost, IncludeOriginal: IncludeOriginalAfter, Repeat: true}},
	{key: ";", desc: SymbolDesc{Replacement: "semi", Level: LevelMost, IncludeOriginal: IncludeOriginalAfter, Repeat: true}},
	{key: "<", desc: SymbolDesc{Replacement: "less", Level: LevelSome, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "=", desc: SymbolDesc{Replacement: "equals", Level: LevelSome, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: ">", desc: SymbolDesc{Replacement: "greater", Level: LevelSome, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "?", desc: SymbolDesc{Replacement: "question", Level: LevelAll, IncludeOriginal: IncludeOriginalAfter, Repeat: true}},
	{key: "¿", desc: SymbolDesc{Replacement: "inverted question", Level: LevelSome, IncludeOriginal: IncludeOriginalAfter, Repeat: true}},
	{key: "@", desc: SymbolDesc{Replacement: "at", Level: LevelSome, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "[", desc: SymbolDesc{Replacement: "left bracket", Level: LevelSome, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "\\", desc: SymbolDesc{Replacement: "backslash", Level: LevelMost, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "]", desc: SymbolDesc{Replacement: "right bracket", Level: LevelSome, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "^", desc: SymbolDesc{Replacement: "carrat", Level: LevelMost, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "_", desc: SymbolDesc{Replacement: "line", Level: LevelMost, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "`", desc: SymbolDesc{Replacement: "graav", Level: LevelMost, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "{", desc: SymbolDesc{Replacement: "left brace", Level: LevelSome, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "|", desc: SymbolDesc{Replacement: "bar", Level: LevelMost, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "¦", desc: SymbolDesc{Replacement: "broken bar", Level: LevelMost, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "}", desc: SymbolDesc{Replacement: "right brace", Level: LevelSome, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "~", desc: SymbolDesc{Replacement: "tilde", Level: LevelMost, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "¤", desc: SymbolDesc{Replacement: "currency", Level: LevelAll, IncludeOriginal: IncludeOriginalNever, Repeat: false}},
	{key: "₿", desc: SymbolDesc{Replacement: "bitcoin", Level: LevelAll, IncludeOriginal: IncludeOriginalNever, Repeat: false}},
	{key: "$", desc: SymbolDesc{Replacement: "dollar", Level: LevelAll, IncludeOriginal: IncludeOriginalNever, Repeat: false}},
	{key: "¢", desc: SymbolDesc{Replacement: "cents", Level: LevelAll, IncludeOriginal: IncludeOriginalNever, Repeat: false}},
	{key: "£", desc: SymbolDesc{Replacement: "pound", Level: LevelAll, IncludeOriginal: IncludeOriginalNever, Repeat: false}},
	{key: "€", desc: SymbolDesc{Replacement: "euro", Level: LevelAll, IncludeOriginal: IncludeOriginalNever, Repeat: false}},
	{key: "¥", desc: SymbolDesc{Replacement: "yen", Level: LevelAll, IncludeOriginal: IncludeOriginalNever, Repeat: false}},
	{key: "■", desc: SymbolDesc{Replacement: "black square", Level: LevelSome, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "▪", desc: SymbolDesc{Replacement: "black small square", Level: LevelSome, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "◾", desc: SymbolDesc{Replacement: "black medium small square", Level: LevelSome, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "□", desc: SymbolDesc{Replacement: "white square", Level: LevelSome, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "◦", desc: SymbolDesc{Replacement: "white bullet", Level: LevelSome, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "➔", desc: SymbolDesc{Replacement: "right arrow", Level: LevelSome, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "⇨", desc: SymbolDesc{Replacement: "right white arrow", Level: LevelSome, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "●", desc: SymbolDesc{Replacement: "circle", Level: LevelMost, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "○", desc: SymbolDesc{Replacement: "white circle", Level: LevelMost, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "′", desc: SymbolDesc{Replacement: "prime", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "″", desc: SymbolDesc{Replacement: "double prime", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "‴", desc: SymbolDesc{Replacement: "tripple prime", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "•", desc: SymbolDesc{Replacement: "bullet", Level: LevelSome, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "§", desc: SymbolDesc{Replacement: "section", Level: LevelSome, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "°", desc: SymbolDesc{Replacement: "degrees", Level: LevelSome, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "µ", desc: SymbolDesc{Replacement: "micro", Level: LevelSome, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "®", desc: SymbolDesc{Replacement: "registered", Level: LevelSome, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "™", desc: SymbolDesc{Replacement: "trademark", Level: LevelSome, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "©", desc: SymbolDesc{Replacement: "copyright", Level: LevelSome, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "℠", desc: SymbolDesc{Replacement: "service mark", Level: LevelSome, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "─", desc: SymbolDesc{Replacement: "box drawing Light Horizontal", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "━", desc: SymbolDesc{Replacement: "box drawing Heavy Horizontal", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "│", desc: SymbolDesc{Replacement: "box drawing Light Vertical", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┃", desc: SymbolDesc{Replacement: "box drawing Heavy Vertical", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┄", desc: SymbolDesc{Replacement: "box drawing Light Triple Dash Horizontal", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┅", desc: SymbolDesc{Replacement: "box drawing Heavy Triple Dash Horizontal", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┆", desc: SymbolDesc{Replacement: "box drawing Light Triple Dash Vertical", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┇", desc: SymbolDesc{Replacement: "box drawing Heavy Triple Dash Vertical", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┈", desc: SymbolDesc{Replacement: "box drawing Light Quadruple Dash Horizontal", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┉", desc: SymbolDesc{Replacement: "box drawing Heavy Quadruple Dash Horizontal", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┊", desc: SymbolDesc{Replacement: "box drawing Light Quadruple Dash Vertical", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┋", desc: SymbolDesc{Replacement: "box drawing Heavy Quadruple Dash Vertical", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┌", desc: SymbolDesc{Replacement: "box drawing Light Down and Right", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┍", desc: SymbolDesc{Replacement: "box drawing Down Light and Right Heavy", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┎", desc: SymbolDesc{Replacement: "box drawing Down Heavy and Right Light", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┏", desc: SymbolDesc{Replacement: "box drawing Heavy Down and Right", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┐", desc: SymbolDesc{Replacement: "box drawing Light Down and Left", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┑", desc: SymbolDesc{Replacement: "box drawing Down Light and Left Heavy", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┒", desc: SymbolDesc{Replacement: "box drawing Down Heavy and Left Light", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┓", desc: SymbolDesc{Replacement: "box drawing Heavy Down and Left", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "└", desc: SymbolDesc{Replacement: "box drawing Light Up and Right", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┕", desc: SymbolDesc{Replacement: "box drawing Up Light and Right Heavy", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┖", desc: SymbolDesc{Replacement: "box drawing Up Heavy and Right Light", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┗", desc: SymbolDesc{Replacement: "box drawing Heavy Up and Right", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┘", desc: SymbolDesc{Replacement: "box drawing Light Up and Left", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┙", desc: SymbolDesc{Replacement: "box drawing Up Light and Left Heavy", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┚", desc: SymbolDesc{Replacement: "box drawing Up Heavy and Left Light", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┛", desc: SymbolDesc{Replacement: "box drawing Heavy Up and Left", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "├", desc: SymbolDesc{Replacement: "box drawing Light Vertical and Right", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┝", desc: SymbolDesc{Replacement: "box drawing Vertical Light and Right Heavy", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┞", desc: SymbolDesc{Replacement: "box drawing Up Heavy and Right Down Light", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┟", desc: SymbolDesc{Replacement: "box drawing Down Heavy and Right Up Light", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┠", desc: SymbolDesc{Replacement: "box drawing Vertical Heavy and Right Light", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┡", desc: SymbolDesc{Replacement: "box drawing Down Light and Right Up Heavy", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┢", desc: SymbolDesc{Replacement: "box drawing Up Light and Right Down Heavy", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┣", desc: SymbolDesc{Replacement: "box drawing Heavy Vertical and Right", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┤", desc: SymbolDesc{Replacement: "box drawing Light Vertical and Left", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┥", desc: SymbolDesc{Replacement: "box drawing Vertical Light and Left Heavy", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┦", desc: SymbolDesc{Replacement: "box drawing Up Heavy and Left Down Light", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┧", desc: SymbolDesc{Replacement: "box drawing Down Heavy and Left Up Light", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┨", desc: SymbolDesc{Replacement: "box drawing Vertical Heavy and Left Light", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┩", desc: SymbolDesc{Replacement: "box drawing Down Light and Left Up Heavy", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┪", desc: SymbolDesc{Replacement: "box drawing Up Light and Left Down Heavy", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┫", desc: SymbolDesc{Replacement: "box drawing Heavy Vertical and Left", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┬", desc: SymbolDesc{Replacement: "box drawing Light Down and Horizontal", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┭", desc: SymbolDesc{Replacement: "box drawing Left Heavy and Right Down Light", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┮", desc: SymbolDesc{Replacement: "box drawing Right Heavy and Left Down Light", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┯", desc: SymbolDesc{Replacement: "box drawing Down Light and Horizontal Heavy", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┰", desc: SymbolDesc{Replacement: "box drawing Down Heavy and Horizontal Light", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┱", desc: SymbolDesc{Replacement: "box drawing Right Light and Left Down Heavy", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┲", desc: SymbolDesc{Replacement: "box drawing Left Light and Right Down Heavy", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┳", desc: SymbolDesc{Replacement: "box drawing Heavy Down and Horizontal", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┴", desc: SymbolDesc{Replacement: "box drawing Light Up and Horizontal", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┵", desc: SymbolDesc{Replacement: "box drawing Left Heavy and Right Up Light", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┶", desc: SymbolDesc{Replacement: "box drawing Right Heavy and Left Up Light", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┷", desc: SymbolDesc{Replacement: "box drawing Up Light and Horizontal Heavy", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┸", desc: SymbolDesc{Replacement: "box drawing Up Heavy and Horizontal Light", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┹", desc: SymbolDesc{Replacement: "box drawing Right Light and Left Up Heavy", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┺", desc: SymbolDesc{Replacement: "box drawing Left Light and Right Up Heavy", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┻", desc: SymbolDesc{Replacement: "box drawing Heavy Up and Horizontal", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┼", desc: SymbolDesc{Replacement: "box drawing Light Vertical and Horizontal", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┽", desc: SymbolDesc{Replacement: "box drawing Left Heavy and Right Vertical Light", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┾", desc: SymbolDesc{Replacement: "box drawing Right Heavy and Left Vertical Light", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "┿", desc: SymbolDesc{Replacement: "box drawing Vertical Light and Horizontal Heavy", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╀", desc: SymbolDesc{Replacement: "box drawing Up Heavy and Down Horizontal Light", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╁", desc: SymbolDesc{Replacement: "box drawing Down Heavy and Up Horizontal Light", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╂", desc: SymbolDesc{Replacement: "box drawing Vertical Heavy and Horizontal Light", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╃", desc: SymbolDesc{Replacement: "box drawing Left Up Heavy and Right Down Light", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╄", desc: SymbolDesc{Replacement: "box drawing Right Up Heavy and Left Down Light", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╅", desc: SymbolDesc{Replacement: "box drawing Left Down Heavy and Right Up Light", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╆", desc: SymbolDesc{Replacement: "box drawing Right Down Heavy and Left Up Light", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╇", desc: SymbolDesc{Replacement: "box drawing Down Light and Up Horizontal Heavy", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╈", desc: SymbolDesc{Replacement: "box drawing Up Light and Down Horizontal Heavy", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╉", desc: SymbolDesc{Replacement: "box drawing Right Light and Left Vertical Heavy", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╊", desc: SymbolDesc{Replacement: "box drawing Left Light and Right Vertical Heavy", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╋", desc: SymbolDesc{Replacement: "box drawing Heavy Vertical and Horizontal", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╌", desc: SymbolDesc{Replacement: "box drawing Light Double Dash Horizontal", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╍", desc: SymbolDesc{Replacement: "box drawing Heavy Double Dash Horizontal", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╎", desc: SymbolDesc{Replacement: "box drawing Light Double Dash Vertical", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╏", desc: SymbolDesc{Replacement: "box drawing Heavy Double Dash Vertical", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "═", desc: SymbolDesc{Replacement: "box drawing Double Horizontal", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "║", desc: SymbolDesc{Replacement: "box drawing Double Vertical", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╒", desc: SymbolDesc{Replacement: "box drawing Down Single and Right Double", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╓", desc: SymbolDesc{Replacement: "box drawing Down Double and Right Single", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╔", desc: SymbolDesc{Replacement: "box drawing Double Down and Right", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╕", desc: SymbolDesc{Replacement: "box drawing Down Single and Left Double", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╖", desc: SymbolDesc{Replacement: "box drawing Down Double and Left Single", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╗", desc: SymbolDesc{Replacement: "box drawing Double Down and Left", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╘", desc: SymbolDesc{Replacement: "box drawing Up Single and Right Double", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╙", desc: SymbolDesc{Replacement: "box drawing Up Double and Right Single", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╚", desc: SymbolDesc{Replacement: "box drawing Double Up and Right", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╛", desc: SymbolDesc{Replacement: "box drawing Up Single and Left Double", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╜", desc: SymbolDesc{Replacement: "box drawing Up Double and Left Single", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╝", desc: SymbolDesc{Replacement: "box drawing Double Up and Left", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╞", desc: SymbolDesc{Replacement: "box drawing Vertical Single and Right Double", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╟", desc: SymbolDesc{Replacement: "box drawing Vertical Double and Right Single", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╠", desc: SymbolDesc{Replacement: "box drawing Double Vertical and Right", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╡", desc: SymbolDesc{Replacement: "box drawing Vertical Single and Left Double", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╢", desc: SymbolDesc{Replacement: "box drawing Vertical Double and Left Single", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╣", desc: SymbolDesc{Replacement: "box drawing Double Vertical and Left", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╤", desc: SymbolDesc{Replacement: "box drawing Down Single and Horizontal Double", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╥", desc: SymbolDesc{Replacement: "box drawing Down Double and Horizontal Single", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╦", desc: SymbolDesc{Replacement: "box drawing Double Down and Horizontal", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╧", desc: SymbolDesc{Replacement: "box drawing Up Single and Horizontal Double", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╨", desc: SymbolDesc{Replacement: "box drawing Up Double and Horizontal Single", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╩", desc: SymbolDesc{Replacement: "box drawing Double Up and Horizontal", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╪", desc: SymbolDesc{Replacement: "box drawing Vertical Single and Horizontal Double", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╫", desc: SymbolDesc{Replacement: "box drawing Vertical Double and Horizontal Single", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╬", desc: SymbolDesc{Replacement: "box drawing Double Vertical and Horizontal", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╭", desc: SymbolDesc{Replacement: "box drawing Light Arc Down and Right", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╮", desc: SymbolDesc{Replacement: "box drawing Light Arc Down and Left", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╯", desc: SymbolDesc{Replacement: "box drawing Light Arc Up and Left", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╰", desc: SymbolDesc{Replacement: "box drawing Light Arc Up and Right", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╱", desc: SymbolDesc{Replacement: "box drawing Light Diagonal Upper Right to Lower Left", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╲", desc: SymbolDesc{Replacement: "box drawing Light Diagonal Upper Left to Lower Right", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╳", desc: SymbolDesc{Replacement: "box drawing Light Diagonal Cross", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╴", desc: SymbolDesc{Replacement: "box drawing Light Left", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╵", desc: SymbolDesc{Replacement: "box drawing Light Up", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╶", desc: SymbolDesc{Replacement: "box drawing Light Right", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╷", desc: SymbolDesc{Replacement: "box drawing Light Down", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╸", desc: SymbolDesc{Replacement: "box drawing Heavy Left", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╹", desc: SymbolDesc{Replacement: "box drawing Heavy Up", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╺", desc: SymbolDesc{Replacement: "box drawing Heavy Right", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╻", desc: SymbolDesc{Replacement: "box drawing Heavy Down", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╼", desc: SymbolDesc{Replacement: "box drawing Light Left and Heavy Right", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╽", desc: SymbolDesc{Replacement: "box drawing Light Up and Heavy Down", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╾", desc: SymbolDesc{Replacement: "box drawing Heavy Left and Light Right", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},
	{key: "╿", desc: SymbolDesc{Replacement: "box drawing Heavy Up and Light Down", Level: LevelNone, IncludeOriginal: IncludeOriginalNever, Repeat: true}},}
