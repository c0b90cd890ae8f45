// Package screenreader holds the live session state (help mode, auto-read,
// cursor tracking mode, clipboard, speech pipeline) and the cursor/
// highlight tracking and auto-read orchestration that react to screen
// changes, wiring internal/changeengine's diff classifiers into spoken
// output.
package screenreader

import (
	"fmt"
	"strings"

	"github.com/vito/midterm"

	"lector/internal/changeengine"
	"lector/internal/clipboard"
	"lector/internal/screenext"
	"lector/internal/speech"
	"lector/internal/view"
)

// CursorTrackingMode controls whether application-cursor movement is
// spoken. OffOnce suppresses exactly one report before reverting to On;
// it exists so actions that move the cursor as a side effect (backspace)
// don't also narrate that motion.
type CursorTrackingMode int

const (
	CursorTrackingOn CursorTrackingMode = iota
	CursorTrackingOff
	CursorTrackingOffOnce
)

// State is the session-wide toggles and collaborators that command
// handlers and the event loop operate on.
type State struct {
	Speech *speech.Speech

	HelpMode                     bool
	AutoRead                     bool
	ReviewFollowsScreenCursor    bool
	PassThrough                  bool
	HighlightTracking            bool
	CursorTrackingMode           CursorTrackingMode
	LastKey                      []byte
	Clipboard                    *clipboard.Ring
}

// New returns session state with the same defaults as a freshly started
// session: auto-read on, review cursor following the screen cursor,
// cursor tracking on.
func New(sp *speech.Speech) *State {
	return &State{
		Speech:                    sp,
		AutoRead:                  true,
		ReviewFollowsScreenCursor: true,
		CursorTrackingMode:        CursorTrackingOn,
		Clipboard:                 clipboard.New(),
	}
}

// TrackCursor speaks what changed under the application cursor since the
// previous screen: the new line if it moved rows, the new word if it
// jumped more than one column into a different word, or the single
// character otherwise. Reporting is suppressed per CursorTrackingMode.
func (s *State) TrackCursor(v *view.View) error {
	prev := v.PrevScreen()
	cur := v.Screen()

	var report *string
	if cur.CursorRow != prev.CursorRow {
		line := v.Line(cur.CursorRow)
		report = &line
	} else if cur.CursorCol != prev.CursorCol {
		distance := cur.CursorCol - prev.CursorCol
		if distance < 0 {
			distance = -distance
		}
		prevWordStart := screenext.FindWordStart(prev, prev.CursorRow, prev.CursorCol)
		wordStart := screenext.FindWordStart(cur, cur.CursorRow, cur.CursorCol)
		if wordStart != prevWordStart && distance > 1 {
			w := v.Word(cur.CursorRow, cur.CursorCol)
			report = &w
		} else {
			ch := v.Character(cur.CursorRow, cur.CursorCol)
			if strings.TrimSpace(ch) == "" {
				ch = ""
			}
			report = &ch
		}
	}

	switch s.CursorTrackingMode {
	case CursorTrackingOn:
		if err := s.ReportApplicationCursorIndentationChanges(v); err != nil {
			return err
		}
		if report != nil {
			return s.Speech.Speak(*report, false)
		}
	case CursorTrackingOffOnce:
		s.CursorTrackingMode = CursorTrackingOn
	case CursorTrackingOff:
	}
	return nil
}

// TrackHighlighting speaks any highlighted run that appeared on screen
// but wasn't highlighted on the previous screen.
func (s *State) TrackHighlighting(v *view.View) error {
	highlights := screenext.GetHighlights(v.Screen())
	prevHighlights := screenext.GetHighlights(v.PrevScreen())
	prevSet := make(map[string]struct{}, len(prevHighlights))
	for _, h := range prevHighlights {
		prevSet[h] = struct{}{}
	}
	for _, h := range highlights {
		if _, ok := prevSet[h]; !ok {
			if err := s.Speech.Speak(h, false); err != nil {
				return err
			}
		}
	}
	return nil
}

// ReportApplicationCursorIndentationChanges speaks the indentation level
// of the line under the application cursor, if it changed.
func (s *State) ReportApplicationCursorIndentationChanges(v *view.View) error {
	level, changed := v.ApplicationCursorIndentationLevel()
	if changed {
		return s.Speech.Speak(fmt.Sprintf("indent %d", level), false)
	}
	return nil
}

// ReportReviewCursorIndentationChanges is the review-cursor counterpart
// of ReportApplicationCursorIndentationChanges.
func (s *State) ReportReviewCursorIndentationChanges(v *view.View) error {
	level, changed := v.ReviewCursorIndentationLevel()
	if changed {
		return s.Speech.Speak(fmt.Sprintf("indent %d", level), false)
	}
	return nil
}

// PerformAutoRead speaks what's changed between the current and previous
// screen, returning true if anything was read. It first tries to read
// the raw incoming bytes verbatim (replayed onto a blank oversized
// screen so scrolled-off text is still captured); if the cursor moved at
// all without the screen scrolling, or no text resulted, it falls back to a line-level
// diff, refining to a single-fragment grapheme diff when the line diff
// is exactly one deletion followed by one insertion.
func (s *State) PerformAutoRead(v *view.View) (bool, error) {
	if err := s.ReportApplicationCursorIndentationChanges(v); err != nil {
		return false, err
	}
	if v.Screen().Contents() == v.PrevScreen().Contents() {
		return false, nil
	}

	r := v.Reporter()
	cursorMoves := r.CursorMoves
	scrolled := r.Scrolled
	r.Reset()

	rows, cols := v.Size()
	replay := midterm.NewTerminal(rows*10, cols)
	replay.Write([]byte(fmt.Sprintf("\x1B[%dB", rows*10)))
	replay.Write(v.NextBytes)
	replayed := screenext.FromTerminal(replay, false)
	text := strings.TrimSpace(replayed.Contents())

	if text != "" && (cursorMoves == 0 || scrolled) {
		if text != string(s.LastKey) {
			if err := s.Speech.Speak(text, false); err != nil {
				return false, err
			}
		}
		return true, nil
	}

	old := v.PrevScreen().ContentsFull()
	new := v.Screen().ContentsFull()

	lineState, lineText := changeengine.LineDiff(old, new)
	text = lineText

	if lineState == changeengine.Single {
		gState, gText := changeengine.GraphemeDiff(old, new)
		if gState != changeengine.Multi {
			text = gText
		}
	}

	if text == string(s.LastKey) {
		return true, nil
	}
	if err := s.Speech.Speak(text, false); err != nil {
		return false, err
	}
	return text != "", nil
}
