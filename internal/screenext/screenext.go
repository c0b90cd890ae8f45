package screenext

import "unicode"

// Predicate tests a cell.
type Predicate func(Cell) bool

// FindCell returns the first (row, col) in row-major order within the
// inclusive rectangle [rowStart,colStart]..[rowEnd,colEnd] (clamped to the
// grid) whose cell matches pred, or ok=false if none does.
func FindCell(s Snapshot, pred Predicate, rowStart, colStart, rowEnd, colEnd int) (row, col int, ok bool) {
	rowEnd, colEnd = clampEnd(s, rowEnd, colEnd)
	for r := rowStart; r <= rowEnd; r++ {
		c0 := 0
		if r == rowStart {
			c0 = colStart
		}
		c1 := lastCol(s)
		if r == rowEnd {
			c1 = colEnd
		}
		for c := c0; c <= c1; c++ {
			if cell, exists := s.cellAt(r, c); exists && pred(cell) {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// RFindCell is FindCell in reverse row-major order.
func RFindCell(s Snapshot, pred Predicate, rowStart, colStart, rowEnd, colEnd int) (row, col int, ok bool) {
	rowEnd, colEnd = clampEnd(s, rowEnd, colEnd)
	for r := rowEnd; r >= rowStart; r-- {
		c0 := 0
		if r == rowStart {
			c0 = colStart
		}
		c1 := lastCol(s)
		if r == rowEnd {
			c1 = colEnd
		}
		for c := c1; c >= c0; c-- {
			if cell, exists := s.cellAt(r, c); exists && pred(cell) {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

func clampEnd(s Snapshot, rowEnd, colEnd int) (int, int) {
	if maxRow := len(s.Grid) - 1; rowEnd > maxRow {
		rowEnd = maxRow
	}
	if maxCol := lastCol(s); colEnd > maxCol {
		colEnd = maxCol
	}
	return rowEnd, colEnd
}

func lastCol(s Snapshot) int {
	if s.Cols == 0 {
		return 0
	}
	return s.Cols - 1
}

// IsInWord reports whether the cell's contents have no whitespace.
func IsInWord(c Cell) bool {
	return c.Rune != 0 && !unicode.IsSpace(c.Rune)
}

func isNotInWord(c Cell) bool {
	return !IsInWord(c)
}

// IsWideContinuation reports whether the cell is the filler half of a
// wide (double-width) character rather than a cell of its own. The grid
// doesn't carry an explicit width flag, so a zero rune following another
// cell on the same line is treated as a continuation cell.
func IsWideContinuation(c Cell) bool {
	return c.Rune == 0
}

func isNotWideContinuation(c Cell) bool {
	return !IsWideContinuation(c)
}

// FindWordStart finds the start column of the word at or preceding (row,
// col). If col isn't in a word, it is first moved to the end of the
// previous word; if that lands on column 0 (or there is no previous word),
// 0 is returned. Otherwise it walks backward to the first non-word cell and
// returns the column after it.
func FindWordStart(s Snapshot, row, col int) int {
	foundCol := 0
	if _, c, ok := RFindCell(s, IsInWord, row, 0, row, col); ok {
		foundCol = c
	}
	if foundCol == 0 {
		return 0
	}
	if _, c, ok := RFindCell(s, isNotInWord, row, 0, row, foundCol); ok {
		return c + 1
	}
	return 0
}

// FindWordEnd finds the end column of the word at or following (row, col):
// one column before the start of the next word, or the last column if the
// word runs to the edge of the screen.
func FindWordEnd(s Snapshot, row, col int) int {
	last := lastCol(s)
	foundCol := last
	if _, c, ok := FindCell(s, isNotInWord, row, col, row, last); ok {
		foundCol = c
	}
	if foundCol == last {
		return last
	}
	if _, c, ok := FindCell(s, IsInWord, row, foundCol, row, last); ok {
		return c - 1
	}
	return last
}

// GetHighlights returns, for each row, the text of every contiguous run of
// highlighted cells (see Cell.Attrs.IsHighlighted), in screen order.
func GetHighlights(s Snapshot) []string {
	var highlights []string
	for r := 0; r < len(s.Grid); r++ {
		var start = -1
		row := s.Grid[r]
		for c := 0; c <= len(row); c++ {
			highlighted := c < len(row) && row[c].Attrs.IsHighlighted()
			if highlighted {
				if start == -1 {
					start = c
				}
				continue
			}
			if start != -1 {
				highlights = append(highlights, s.ContentsBetween(r, start, r, c))
				start = -1
			}
		}
	}
	return highlights
}
