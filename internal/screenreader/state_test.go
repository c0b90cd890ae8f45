package screenreader

import (
	"testing"

	"lector/internal/speech"
	"lector/internal/view"
)

func newTestState() (*State, *speech.LogDriver) {
	d := &speech.LogDriver{}
	sp := speech.New(d, 0)
	return New(sp), d
}

func TestTrackCursorSpeaksNewLineOnRowChange(t *testing.T) {
	s, d := newTestState()
	v := view.New(3, 10)
	v.ProcessChanges([]byte("hello"))
	v.FinalizeChanges(0)
	v.ProcessChanges([]byte("\r\nworld"))

	if err := s.TrackCursor(v); err != nil {
		t.Fatal(err)
	}
	if len(d.Events) == 0 {
		t.Fatal("expected a spoken event")
	}
}

func TestTrackCursorOffOnceSuppressesThenReverts(t *testing.T) {
	s, d := newTestState()
	s.CursorTrackingMode = CursorTrackingOffOnce
	v := view.New(3, 10)
	v.ProcessChanges([]byte("a"))
	v.FinalizeChanges(0)
	v.ProcessChanges([]byte("b"))

	if err := s.TrackCursor(v); err != nil {
		t.Fatal(err)
	}
	if len(d.Events) != 0 {
		t.Fatalf("expected suppressed report, got %v", d.Events)
	}
	if s.CursorTrackingMode != CursorTrackingOn {
		t.Fatal("expected mode to revert to On")
	}
}

func TestAutoReadNoChangesReturnsFalse(t *testing.T) {
	s, _ := newTestState()
	v := view.New(3, 10)
	v.FinalizeChanges(0)
	read, err := s.PerformAutoRead(v)
	if err != nil {
		t.Fatal(err)
	}
	if read {
		t.Fatal("expected no read when nothing changed")
	}
}

func TestAutoReadSpeaksNewText(t *testing.T) {
	s, d := newTestState()
	v := view.New(3, 10)
	v.FinalizeChanges(0)
	v.ProcessChanges([]byte("hello"))

	read, err := s.PerformAutoRead(v)
	if err != nil {
		t.Fatal(err)
	}
	if !read {
		t.Fatal("expected a read")
	}
	if len(d.Events) == 0 || d.Events[0].Text != "hello" {
		t.Fatalf("events = %v; want [\"hello\"]", d.Events)
	}
}
