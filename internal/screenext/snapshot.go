// Package screenext implements word-boundary, cell-predicate-search, and
// highlight-extraction utilities over a frozen snapshot of a terminal
// screen.
package screenext

import (
	"strings"

	"github.com/vito/midterm"

	"lector/internal/attributes"
)

// Cell is one screen position: its displayed rune and rendering attributes.
type Cell struct {
	Rune  rune
	Attrs attributes.Cell
}

// Snapshot is an immutable copy of a terminal screen's grid, cursor
// position, and bracketed-paste flag. Both the "current" and "previous"
// screens in a View are Snapshots; the current one is rebuilt from the
// live *midterm.Terminal whenever a fresh read is needed.
type Snapshot struct {
	Rows, Cols     int
	Grid           [][]Cell
	CursorRow      int
	CursorCol      int
	BracketedPaste bool
}

// FromTerminal builds a Snapshot from the live terminal's current state.
// bracketedPaste is supplied by the caller (tracked out-of-band; see
// DESIGN.md on why the VT100 library's own flag, if any, isn't read here).
func FromTerminal(t *midterm.Terminal, bracketedPaste bool) Snapshot {
	rows := len(t.Content)
	var cols int
	if rows > 0 {
		cols = len(t.Content[0])
	}
	grid := make([][]Cell, rows)
	for r := 0; r < rows; r++ {
		line := t.Content[r]
		rowCells := make([]Cell, len(line))
		var pos int
		for region := range t.Format.Regions(r) {
			attrs := attributes.ParseSGR(region.F.Render())
			end := pos + region.Size
			for c := pos; c < end && c < len(line); c++ {
				rowCells[c] = Cell{Rune: line[c], Attrs: attrs}
			}
			pos = end
		}
		for c := pos; c < len(line); c++ {
			rowCells[c] = Cell{Rune: line[c]}
		}
		for c := 0; c < len(rowCells)-1; c++ {
			if rowCells[c].Rune != 0 && rowCells[c+1].Rune == 0 {
				rowCells[c].Attrs.Wide = true
			}
		}
		grid[r] = rowCells
		if len(line) > cols {
			cols = len(line)
		}
	}
	return Snapshot{
		Rows:           rows,
		Cols:           cols,
		Grid:           grid,
		CursorRow:      t.Cursor.Y,
		CursorCol:      t.Cursor.X,
		BracketedPaste: bracketedPaste,
	}
}

// Clone returns an independent deep copy.
func (s Snapshot) Clone() Snapshot {
	grid := make([][]Cell, len(s.Grid))
	for i, row := range s.Grid {
		grid[i] = append([]Cell(nil), row...)
	}
	s.Grid = grid
	return s
}

func (s Snapshot) cellAt(row, col int) (Cell, bool) {
	if row < 0 || row >= len(s.Grid) {
		return Cell{}, false
	}
	line := s.Grid[row]
	if col < 0 || col >= len(line) {
		return Cell{}, false
	}
	return line[col], true
}

// CursorPosition returns the screen cursor's (row, col).
func (s Snapshot) CursorPosition() (int, int) {
	return s.CursorRow, s.CursorCol
}

// Contents returns the full screen's text, trimmed of trailing whitespace
// per line and joined with "\n", matching the parser's "contents" op.
func (s Snapshot) Contents() string {
	var lines []string
	for r := 0; r < len(s.Grid); r++ {
		lines = append(lines, strings.TrimRight(s.lineText(r), " \t"))
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

// ContentsFull returns the full screen text without trimming, one line per
// row, used by the line/grapheme diff classifiers where trailing spaces
// and blank lines are significant.
func (s Snapshot) ContentsFull() string {
	var lines []string
	for r := 0; r < len(s.Grid); r++ {
		lines = append(lines, s.lineText(r))
	}
	return strings.Join(lines, "\n")
}

// ContentsBetween returns the text spanning [startRow,startCol) to
// [endRow,endCol), inclusive of startCol on startRow and exclusive of
// endCol on endRow, joined with "\n" across rows.
func (s Snapshot) ContentsBetween(startRow, startCol, endRow, endCol int) string {
	if endRow < startRow || (endRow == startRow && endCol < startCol) {
		return ""
	}
	var b strings.Builder
	for r := startRow; r <= endRow && r < len(s.Grid); r++ {
		c0 := 0
		if r == startRow {
			c0 = startCol
		}
		c1 := len(s.Grid[r])
		if r == endRow && endCol < c1 {
			c1 = endCol
		}
		if r > startRow {
			b.WriteByte('\n')
		}
		for c := c0; c < c1; c++ {
			if cell, ok := s.cellAt(r, c); ok {
				b.WriteRune(cell.Rune)
			}
		}
	}
	return b.String()
}

func (s Snapshot) lineText(row int) string {
	if row < 0 || row >= len(s.Grid) {
		return ""
	}
	var b strings.Builder
	for _, cell := range s.Grid[row] {
		if cell.Rune == 0 {
			b.WriteByte(' ')
			continue
		}
		b.WriteRune(cell.Rune)
	}
	return b.String()
}
