package symbols

import "testing"

func TestPutGetRoundTrip(t *testing.T) {
	m := New()
	m.Put("@", "at", LevelSome, IncludeOriginalBefore, true)
	desc, ok := m.Get("@")
	if !ok {
		t.Fatal("Get() after Put() should succeed")
	}
	if desc.Replacement != "at" || desc.Level != LevelSome || desc.IncludeOriginal != IncludeOriginalBefore || !desc.Repeat {
		t.Fatalf("round trip mismatch: %+v", desc)
	}
}

func TestRemove(t *testing.T) {
	m := New()
	m.Put("x", "ex", LevelAll, IncludeOriginalNever, false)
	m.Remove("x")
	if _, ok := m.Get("x"); ok {
		t.Fatal("Get() after Remove() should fail")
	}
}

func TestClear(t *testing.T) {
	m := DefaultMap()
	if _, ok := m.Get("!"); !ok {
		t.Fatal("default map should contain '!'")
	}
	m.Clear()
	if _, ok := m.Get("!"); ok {
		t.Fatal("Get() after Clear() should fail")
	}
}

func TestDefaultMapBoxDrawing(t *testing.T) {
	m := DefaultMap()
	desc, ok := m.Get("─")
	if !ok {
		t.Fatal("default map should contain box-drawing light horizontal")
	}
	if desc.Level != LevelNone || !desc.Repeat {
		t.Fatalf("unexpected desc for light horizontal: %+v", desc)
	}
}

func TestPhonetic(t *testing.T) {
	cases := map[string]string{"a": "Alpha", "Z": "Zulu", "1": "1", "!": "!"}
	for in, want := range cases {
		if got := Phonetic(in); got != want {
			t.Errorf("Phonetic(%q) = %q; want %q", in, got, want)
		}
	}
}
