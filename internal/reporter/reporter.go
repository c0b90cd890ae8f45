// Package reporter implements a minimal VT byte-stream observer: it counts
// cursor-motion and scroll signals seen in PTY output, and tracks
// bracketed-paste mode, without maintaining any screen model of its own.
//
// The same byte stream is also handed to the terminal library's own parser;
// this observer only needs a handful of signals from it (backspace, a
// narrow set of cursor-motion CSI finals, scroll-region finals, and DEC
// private mode 2004), so it is hand-rolled directly against the bytes
// rather than adopting a general ANSI/CSI parser library's API.
package reporter

import "unicode/utf8"

type state int

const (
	stateGround state = iota
	stateEscape
	stateCSI
)

// Reporter observes PTY output bytes and exposes cursor-move/scroll
// counters plus the current bracketed-paste mode.
type Reporter struct {
	CursorMoves    int
	Scrolled       bool
	BracketedPaste bool

	st         state
	csiParams  []byte
	csiInterm  []byte
}

// New returns a fresh Reporter with bracketed paste initially disabled.
func New() *Reporter {
	return &Reporter{}
}

// Reset clears the cursor-move/scroll counters (not the bracketed-paste
// flag, which reflects actual terminal mode state, not a transient signal).
func (r *Reporter) Reset() {
	r.CursorMoves = 0
	r.Scrolled = false
}

// Process scans data, updating counters and BracketedPaste as it goes.
func (r *Reporter) Process(data []byte) {
	i := 0
	for i < len(data) {
		b := data[i]
		switch r.st {
		case stateGround:
			switch {
			case b == 0x1B:
				r.st = stateEscape
				i++
			case b == 0x08:
				r.CursorMoves++
				i++
			case b < 0x20:
				i++
			default:
				_, size := utf8.DecodeRune(data[i:])
				if size == 0 {
					size = 1
				}
				i += size
			}
		case stateEscape:
			if b == '[' {
				r.st = stateCSI
				r.csiParams = r.csiParams[:0]
				r.csiInterm = r.csiInterm[:0]
			} else {
				r.st = stateGround
			}
			i++
		case stateCSI:
			switch {
			case b >= 0x30 && b <= 0x3F:
				r.csiParams = append(r.csiParams, b)
				i++
			case b >= 0x20 && b <= 0x2F:
				r.csiInterm = append(r.csiInterm, b)
				i++
			case b >= 0x40 && b <= 0x7E:
				r.dispatchCSI(b)
				r.st = stateGround
				i++
			default:
				i++
			}
		}
	}
}

func (r *Reporter) dispatchCSI(final byte) {
	if len(r.csiInterm) == 0 {
		switch {
		case final >= 'A' && final <= 'H':
			r.CursorMoves++
		case final == 'S' || final == 'T':
			r.Scrolled = true
		}
	}
	if string(r.csiParams) == "?2004" {
		switch final {
		case 'h':
			r.BracketedPaste = true
		case 'l':
			r.BracketedPaste = false
		}
	}
}
