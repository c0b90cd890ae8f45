// Package view holds the live and previous screen state for one PTY-backed
// session: the running VT100 parser, a frozen snapshot of the screen as of
// the last settle point, and the review cursor/mark used by review
// navigation commands.
package view

import (
	"github.com/vito/midterm"

	"lector/internal/reporter"
	"lector/internal/screenext"
)

// Position is a (row, col) screen coordinate.
type Position struct {
	Row, Col int
}

// View wraps a live terminal parser plus the bookkeeping the review and
// auto-read features need: a trailing copy of unprocessed bytes, the
// previous screen and when it was captured, and the review cursor/mark.
type View struct {
	terminal *midterm.Terminal
	reporter *reporter.Reporter

	NextBytes []byte

	prevScreen     screenext.Snapshot
	PrevScreenTime int64

	ReviewCursorPosition Position
	ReviewMarkPosition   *Position

	reviewCursorIndentLevel      int
	applicationCursorIndentLevel int
}

// New creates a View over a freshly-allocated rows x cols terminal.
func New(rows, cols int) *View {
	t := midterm.NewTerminal(rows, cols)
	r := reporter.New()
	v := &View{
		terminal: t,
		reporter: r,
	}
	v.prevScreen = v.Screen()
	v.ReviewCursorPosition = Position{Row: v.prevScreen.CursorRow, Col: v.prevScreen.CursorCol}
	return v
}

// ProcessChanges feeds buf through the terminal parser and the byte
// observer, clamping the review cursor and clearing the mark if the
// screen's size changed out from under it.
func (v *View) ProcessChanges(buf []byte) {
	v.terminal.Write(buf)
	v.reporter.Process(buf)
	v.NextBytes = append(v.NextBytes, buf...)

	before := v.ReviewCursorPosition
	rows, cols := v.Size()
	v.ReviewCursorPosition = Position{
		Row: minInt(before.Row, rows-1),
		Col: minInt(before.Col, cols-1),
	}
	if v.ReviewCursorPosition != before {
		v.ReviewMarkPosition = nil
	}
}

// FinalizeChanges advances the previous screen to match the current one
// and records the settle time.
func (v *View) FinalizeChanges(nowMillis int64) {
	v.prevScreen = v.Screen()
	v.PrevScreenTime = nowMillis
	v.NextBytes = v.NextBytes[:0]
}

// Screen returns a fresh snapshot of the current screen.
func (v *View) Screen() screenext.Snapshot {
	return screenext.FromTerminal(v.terminal, v.reporter.BracketedPaste)
}

// PrevScreen returns the screen as of the last FinalizeChanges call.
func (v *View) PrevScreen() screenext.Snapshot {
	return v.prevScreen
}

// Size returns the terminal's (rows, cols).
func (v *View) Size() (int, int) {
	rows := len(v.terminal.Content)
	if rows == 0 {
		return 0, 0
	}
	return rows, len(v.terminal.Content[0])
}

// SetSize resizes the terminal, clamping the review cursor if needed and
// clearing the mark if that clamp moved it.
func (v *View) SetSize(rows, cols int) {
	v.terminal.Resize(rows, cols)
	newRows, newCols := v.Size()
	before := v.ReviewCursorPosition
	v.ReviewCursorPosition = Position{
		Row: minInt(before.Row, newRows-1),
		Col: minInt(before.Col, newCols-1),
	}
	if v.ReviewCursorPosition != before {
		v.ReviewMarkPosition = nil
	}
}

// Reporter exposes the byte observer backing this view, for callers that
// need to react to a scroll or clear its counters after reporting.
func (v *View) Reporter() *reporter.Reporter {
	return v.reporter
}

func isNonBlank(c screenext.Cell) bool {
	return c.Rune != 0 && c.Rune != ' '
}

// ReviewCursorIndentationLevel returns the indentation column of the line
// under the review cursor, and whether it changed since the last call.
func (v *View) ReviewCursorIndentationLevel() (int, bool) {
	s := v.Screen()
	row := v.ReviewCursorPosition.Row
	_, cols := v.Size()
	level := v.reviewCursorIndentLevel
	if col, _, ok := screenext.FindCell(s, isNonBlank, row, 0, row, cols-1); ok {
		level = col
	}
	changed := level != v.reviewCursorIndentLevel
	v.reviewCursorIndentLevel = level
	return level, changed
}

// ApplicationCursorIndentationLevel is ReviewCursorIndentationLevel for the
// line under the live application cursor instead of the review cursor.
func (v *View) ApplicationCursorIndentationLevel() (int, bool) {
	s := v.Screen()
	row := s.CursorRow
	_, cols := v.Size()
	level := v.applicationCursorIndentLevel
	if col, _, ok := screenext.FindCell(s, isNonBlank, row, 0, row, cols-1); ok {
		level = col
	}
	changed := level != v.applicationCursorIndentLevel
	v.applicationCursorIndentLevel = level
	return level, changed
}

// ReviewCursorUp moves the review cursor up a line. If skipBlankLines is
// true, it moves to the nearest preceding non-blank line instead of
// exactly one row. Returns true only if the cursor moved.
func (v *View) ReviewCursorUp(skipBlankLines bool) bool {
	if v.ReviewCursorPosition.Row == 0 {
		return false
	}
	if !skipBlankLines {
		v.ReviewCursorPosition.Row--
		return true
	}
	s := v.Screen()
	row := v.ReviewCursorPosition.Row
	_, cols := v.Size()
	if r, _, ok := screenext.RFindCell(s, screenext.IsInWord, 0, 0, row-1, cols-1); ok {
		v.ReviewCursorPosition.Row = r
		return r != row
	}
	return false
}

// ReviewCursorDown is ReviewCursorUp in the other direction.
func (v *View) ReviewCursorDown(skipBlankLines bool) bool {
	rows, cols := v.Size()
	lastRow := rows - 1
	if v.ReviewCursorPosition.Row == lastRow {
		return false
	}
	if !skipBlankLines {
		v.ReviewCursorPosition.Row++
		return true
	}
	s := v.Screen()
	row := v.ReviewCursorPosition.Row
	if r, _, ok := screenext.FindCell(s, screenext.IsInWord, row+1, 0, lastRow, cols-1); ok {
		v.ReviewCursorPosition.Row = r
		return r != row
	}
	return false
}

// ReviewCursorPrevWord moves to the start of the previous word, or the
// beginning of the line if the cursor is in or before the first word.
func (v *View) ReviewCursorPrevWord() bool {
	s := v.Screen()
	row, col := v.ReviewCursorPosition.Row, v.ReviewCursorPosition.Col
	col = screenext.FindWordStart(s, row, col)
	if col == 0 {
		v.ReviewCursorPosition.Col = 0
		return false
	}
	col = screenext.FindWordStart(s, row, col-1)
	v.ReviewCursorPosition.Col = col
	return true
}

// ReviewCursorNextWord moves to the start of the next word. If the cursor
// is in or past the last word, it returns false and stays where it is.
func (v *View) ReviewCursorNextWord() bool {
	_, cols := v.Size()
	last := cols - 1
	s := v.Screen()
	row, col := v.ReviewCursorPosition.Row, v.ReviewCursorPosition.Col
	col = screenext.FindWordEnd(s, row, col)
	if col >= last {
		return false
	}
	v.ReviewCursorPosition.Col = col + 1
	return true
}

// ReviewCursorLeft moves the review cursor left a column, skipping the
// filler half of any wide character. Returns true only if it moved.
func (v *View) ReviewCursorLeft() bool {
	if v.ReviewCursorPosition.Col == 0 {
		return false
	}
	s := v.Screen()
	row := v.ReviewCursorPosition.Row
	if r, c, ok := screenext.RFindCell(s, isNotWideContinuation, row, 0, row, v.ReviewCursorPosition.Col-1); ok {
		v.ReviewCursorPosition = Position{Row: r, Col: c}
		return true
	}
	return false
}

// ReviewCursorRight is ReviewCursorLeft in the other direction.
func (v *View) ReviewCursorRight() bool {
	_, cols := v.Size()
	if v.ReviewCursorPosition.Col >= cols-1 {
		return false
	}
	s := v.Screen()
	row := v.ReviewCursorPosition.Row
	if r, c, ok := screenext.FindCell(s, isNotWideContinuation, row, v.ReviewCursorPosition.Col+1, row, cols-1); ok {
		v.ReviewCursorPosition = Position{Row: r, Col: c}
		return true
	}
	return false
}

// Line returns the full text of the given row.
func (v *View) Line(row int) string {
	_, cols := v.Size()
	return v.Screen().ContentsBetween(row, 0, row, cols)
}

// Word returns the word at (row, col).
func (v *View) Word(row, col int) string {
	s := v.Screen()
	start := screenext.FindWordStart(s, row, col)
	end := screenext.FindWordEnd(s, row, col)
	return s.ContentsBetween(row, start, row, end+1)
}

// Character returns the single character at (row, col).
func (v *View) Character(row, col int) string {
	return v.Screen().ContentsBetween(row, col, row, col+1)
}

// ContentsFull returns the full screen's text, including blank lines.
func (v *View) ContentsFull() string {
	return v.Screen().ContentsFull()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
