package view

import "testing"

func TestNewViewStartsAtCursor(t *testing.T) {
	v := New(5, 10)
	if v.ReviewCursorPosition.Row != 0 || v.ReviewCursorPosition.Col != 0 {
		t.Fatalf("ReviewCursorPosition = %+v; want origin", v.ReviewCursorPosition)
	}
	rows, cols := v.Size()
	if rows != 5 || cols != 10 {
		t.Fatalf("Size() = (%d,%d); want (5,10)", rows, cols)
	}
}

func TestProcessChangesAppendsNextBytes(t *testing.T) {
	v := New(5, 10)
	v.ProcessChanges([]byte("hi"))
	v.ProcessChanges([]byte("!"))
	if string(v.NextBytes) != "hi!" {
		t.Fatalf("NextBytes = %q; want %q", v.NextBytes, "hi!")
	}
}

func TestFinalizeChangesClearsNextBytesAndSetsTime(t *testing.T) {
	v := New(5, 10)
	v.ProcessChanges([]byte("hi"))
	v.FinalizeChanges(42)
	if len(v.NextBytes) != 0 {
		t.Fatalf("NextBytes not cleared: %q", v.NextBytes)
	}
	if v.PrevScreenTime != 42 {
		t.Fatalf("PrevScreenTime = %d; want 42", v.PrevScreenTime)
	}
}

func TestReviewCursorUpDownBounds(t *testing.T) {
	v := New(3, 10)
	if v.ReviewCursorUp(false) {
		t.Fatal("ReviewCursorUp at row 0 should not move")
	}
	if !v.ReviewCursorDown(false) {
		t.Fatal("ReviewCursorDown should move")
	}
	if v.ReviewCursorPosition.Row != 1 {
		t.Fatalf("Row = %d; want 1", v.ReviewCursorPosition.Row)
	}
}

func TestSetSizeClampsReviewCursor(t *testing.T) {
	v := New(5, 10)
	v.ReviewCursorPosition = Position{Row: 4, Col: 9}
	v.SetSize(3, 5)
	if v.ReviewCursorPosition.Row != 2 || v.ReviewCursorPosition.Col != 4 {
		t.Fatalf("ReviewCursorPosition = %+v; want clamped to (2,4)", v.ReviewCursorPosition)
	}
}

func TestProcessChangesClampsAndClearsMarkOnResize(t *testing.T) {
	v := New(5, 10)
	mark := Position{Row: 1, Col: 1}
	v.ReviewMarkPosition = &mark
	v.ReviewCursorPosition = Position{Row: 4, Col: 9}
	v.SetSize(2, 10)
	v.ProcessChanges([]byte("x"))
	if v.ReviewCursorPosition.Row > 1 {
		t.Fatalf("ReviewCursorPosition.Row = %d; want <= 1", v.ReviewCursorPosition.Row)
	}
	if v.ReviewMarkPosition != nil {
		t.Fatalf("ReviewMarkPosition = %+v; want cleared by the clamping resize", *v.ReviewMarkPosition)
	}
}
