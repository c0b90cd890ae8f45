// Package changeengine classifies the difference between two screen
// snapshots into one of four buckets, and extracts the text an auto-read
// pass should speak. Diffing itself is delegated to go-diff, the Go
// analogue of the Patience-algorithm text differ used upstream; the
// 4-state classification walk over the resulting edit script is
// hand-rolled since it is the part carrying the actual behavior.
package changeengine

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// State tracks how "simple" a diff turned out to be, used to decide
// whether to read the single changed fragment or fall back to reading
// every inserted line.
type State int

const (
	// NoChanges means no edits were seen at all.
	NoChanges State = iota
	// OneDeletion means exactly one deletion has been seen so far.
	OneDeletion
	// Single means exactly one deletion followed by one insertion.
	Single
	// Multi is anything else, including a lone insertion.
	Multi
)

// LineDiff runs a line-granularity diff between old and new, returning the
// final classification and the concatenation of every non-empty inserted
// line (newline-terminated, in order).
func LineDiff(old, new string) (State, string) {
	dmp := diffmatchpatch.New()
	oldChars, newChars, lineArray := dmp.DiffLinesToChars(old, new)
	diffs := dmp.DiffMain(oldChars, newChars, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	state := NoChanges
	var inserted strings.Builder
	for _, d := range diffs {
		state = advance(state, d.Type)
		if d.Type == diffmatchpatch.DiffInsert {
			for _, line := range splitKeepEmpty(d.Text) {
				if line == "" {
					continue
				}
				inserted.WriteString(line)
				inserted.WriteByte('\n')
			}
		}
	}
	return state, inserted.String()
}

// GraphemeDiff runs a rune-granularity diff between old and new. It
// returns Multi as soon as the edit script departs from a single
// contiguous delete-then-insert (or pure insert) run; otherwise it
// returns the inserted text, which is the span an auto-read pass should
// speak in place of a full line re-read.
func GraphemeDiff(old, new string) (State, string) {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(old, new, false)

	state := NoChanges
	var prevTag diffmatchpatch.Operation
	hasPrev := false
	var inserted strings.Builder
	for _, d := range diffs {
		state = advanceGrapheme(state, d.Type, prevTag, hasPrev)
		prevTag = d.Type
		hasPrev = true
		if state == Multi {
			continue
		}
		if d.Type == diffmatchpatch.DiffInsert {
			inserted.WriteString(d.Text)
		}
	}
	if state == Multi {
		return Multi, ""
	}
	return state, inserted.String()
}

func advance(s State, op diffmatchpatch.Operation) State {
	switch s {
	case NoChanges:
		switch op {
		case diffmatchpatch.DiffDelete:
			return OneDeletion
		case diffmatchpatch.DiffInsert:
			return Multi
		default:
			return NoChanges
		}
	case OneDeletion:
		switch op {
		case diffmatchpatch.DiffDelete:
			return Multi
		case diffmatchpatch.DiffInsert:
			return Single
		default:
			return OneDeletion
		}
	case Single:
		if op == diffmatchpatch.DiffEqual {
			return Single
		}
		return Multi
	default:
		return Multi
	}
}

func advanceGrapheme(s State, op, prevTag diffmatchpatch.Operation, hasPrev bool) State {
	switch s {
	case NoChanges:
		switch op {
		case diffmatchpatch.DiffDelete:
			return OneDeletion
		case diffmatchpatch.DiffEqual:
			return NoChanges
		default:
			return Single
		}
	case OneDeletion:
		switch {
		case op == diffmatchpatch.DiffDelete && hasPrev && prevTag == diffmatchpatch.DiffDelete:
			return OneDeletion
		case op == diffmatchpatch.DiffEqual:
			return OneDeletion
		case op == diffmatchpatch.DiffInsert && hasPrev && prevTag == diffmatchpatch.DiffDelete:
			return Single
		default:
			return Multi
		}
	case Single:
		switch {
		case op == diffmatchpatch.DiffEqual:
			return Single
		case op == diffmatchpatch.DiffInsert && hasPrev &&
			(prevTag == diffmatchpatch.DiffInsert || prevTag == diffmatchpatch.DiffDelete):
			return Single
		default:
			return Multi
		}
	default:
		return Multi
	}
}

func splitKeepEmpty(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
