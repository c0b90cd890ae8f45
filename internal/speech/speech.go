package speech

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"

	"lector/internal/symbols"
)

// minRepeatCount is the run length at which a repeated grapheme collapses
// to "<count> <replacement>" instead of literal repetition.
const minRepeatCount = 4

// Speech owns the active driver, the configured symbol level, and the
// symbol map used to normalize text before handing it to the driver.
type Speech struct {
	driver      Driver
	SymbolLevel symbols.Level
	symbolsMap  *symbols.Map
}

// New returns a Speech pipeline backed by driver, using the built-in
// symbol table at the given default level.
func New(driver Driver, level symbols.Level) *Speech {
	return &Speech{
		driver:      driver,
		SymbolLevel: level,
		symbolsMap:  symbols.DefaultMap(),
	}
}

// Symbols exposes the underlying symbol map for scripting/overrides.
func (s *Speech) Symbols() *symbols.Map {
	return s.symbolsMap
}

// Speak normalizes text and forwards it to the driver. Empty text is a
// no-op; an all-whitespace text is left untrimmed; otherwise text is
// trimmed. If the remaining text is a single grapheme, the effective
// symbol level is raised to Character so the symbol is always expanded.
func (s *Speech) Speak(text string, interrupt bool) error {
	if text == "" {
		return nil
	}

	trimmed := text
	if !isAllWhitespace(text) {
		trimmed = strings.TrimSpace(text)
	}

	graphemes := splitGraphemes(trimmed)
	level := s.SymbolLevel
	if len(graphemes) == 1 {
		level = symbols.LevelCharacter
	}

	processed := s.process(graphemes, level)

	if err := s.driver.Speak(processed, interrupt); err != nil {
		return &DriverError{Op: "speak", Err: err}
	}
	return nil
}

// process walks graphemes as runs of equal consecutive values, emitting
// each run's replacement (collapsed if it repeats enough) to a single
// output string.
func (s *Speech) process(graphemes []string, level symbols.Level) string {
	var out strings.Builder

	var prev string
	havePrev := false
	runCount := 0

	flush := func() {
		if !havePrev {
			return
		}
		runString, collapseOK := s.expand(prev, level)
		if runCount >= minRepeatCount && collapseOK && !isAllWhitespaceOrNumeric(runString) {
			out.WriteString(" ")
			out.WriteString(itoa(runCount))
			out.WriteString(" ")
			out.WriteString(runString)
			out.WriteString(" ")
		} else {
			for i := 0; i < runCount; i++ {
				out.WriteString(runString)
			}
		}
	}

	for _, g := range graphemes {
		if !havePrev || g == prev {
			runCount++
			prev = g
			havePrev = true
			continue
		}
		flush()
		runCount = 1
		prev = g
	}
	flush()

	return out.String()
}

// expand returns the spoken form of a single grapheme g, and whether a
// run of these may be collapsed under the repeat-count rule.
func (s *Speech) expand(g string, level symbols.Level) (string, bool) {
	if desc, ok := s.symbolsMap.Get(g); ok {
		if level >= desc.Level {
			var rendered string
			switch {
			case desc.IncludeOriginal == symbols.IncludeOriginalBefore && level != symbols.LevelCharacter:
				rendered = " " + g + desc.Replacement + " "
			case desc.IncludeOriginal == symbols.IncludeOriginalAfter && level != symbols.LevelCharacter:
				rendered = " " + desc.Replacement + g + " "
			default:
				rendered = " " + desc.Replacement + " "
			}
			return rendered, desc.Repeat
		}
		// Below the gating level: don't collapse repeats of an unexpanded symbol.
		return g, false
	}

	if name, ok := emojiNames[g]; ok {
		return " " + name + " ", true
	}

	return g, true
}

func splitGraphemes(s string) []string {
	var out []string
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		out = append(out, gr.Str())
	}
	return out
}

func isAllWhitespace(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

func isAllWhitespaceOrNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// Stop forwards a stop request to the driver.
func (s *Speech) Stop() error {
	if err := s.driver.Stop(); err != nil {
		return &DriverError{Op: "stop", Err: err}
	}
	return nil
}

// GetRate returns the driver's last known speech rate.
func (s *Speech) GetRate() float32 {
	return s.driver.GetRate()
}

// SetRate forwards a rate change to the driver.
func (s *Speech) SetRate(rate float32) error {
	if err := s.driver.SetRate(rate); err != nil {
		return &DriverError{Op: "set_rate", Err: err}
	}
	return nil
}
