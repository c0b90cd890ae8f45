package changeengine

import "testing"

func TestLineDiffNoChanges(t *testing.T) {
	s, text := LineDiff("a\nb\nc\n", "a\nb\nc\n")
	if s != NoChanges || text != "" {
		t.Fatalf("got (%v, %q); want (NoChanges, \"\")", s, text)
	}
}

func TestLineDiffSingleReplacement(t *testing.T) {
	s, _ := LineDiff("a\nb\nc\n", "a\nB\nc\n")
	if s != Single {
		t.Fatalf("state = %v; want Single", s)
	}
}

func TestLineDiffMultiInsertion(t *testing.T) {
	s, text := LineDiff("a\n", "a\nb\nc\n")
	if s != Multi {
		t.Fatalf("state = %v; want Multi", s)
	}
	if text != "b\nc\n" {
		t.Fatalf("text = %q; want \"b\\nc\\n\"", text)
	}
}

func TestGraphemeDiffSingleCharChange(t *testing.T) {
	s, text := GraphemeDiff("hello world", "hellO world")
	if s != Single {
		t.Fatalf("state = %v; want Single", s)
	}
	if text != "O" {
		t.Fatalf("text = %q; want \"O\"", text)
	}
}

func TestGraphemeDiffMultiScattered(t *testing.T) {
	s, _ := GraphemeDiff("abcdef", "aXcXef")
	if s != Multi {
		t.Fatalf("state = %v; want Multi", s)
	}
}
