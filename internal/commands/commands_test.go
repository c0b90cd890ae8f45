package commands

import (
	"bytes"
	"testing"

	"lector/internal/clipboard"
	"lector/internal/screenreader"
	"lector/internal/speech"
	"lector/internal/view"
)

func newFixture() (*screenreader.State, *speech.LogDriver, *view.View) {
	d := &speech.LogDriver{}
	sp := speech.New(d, 0)
	state := screenreader.New(sp)
	v := view.New(5, 20)
	return state, d, v
}

func TestToggleHelpEntersAndExitsHelpMode(t *testing.T) {
	state, _, v := newFixture()
	var buf bytes.Buffer
	if _, err := Handle(state, v, &buf, ToggleHelp); err != nil {
		t.Fatal(err)
	}
	if !state.HelpMode {
		t.Fatal("expected help mode on")
	}
	if _, err := Handle(state, v, &buf, ToggleHelp); err != nil {
		t.Fatal(err)
	}
	if state.HelpMode {
		t.Fatal("expected help mode off")
	}
}

func TestHelpModeSpeaksHelpTextInsteadOfActing(t *testing.T) {
	state, d, v := newFixture()
	var buf bytes.Buffer
	state.HelpMode = true
	if _, err := Handle(state, v, &buf, StopSpeaking); err != nil {
		t.Fatal(err)
	}
	if len(d.Events) != 1 || d.Events[0].Text != "stop speaking" {
		t.Fatalf("events = %v; want help text", d.Events)
	}
	if d.Stops() != 0 {
		t.Fatal("action should not have actually run in help mode")
	}
}

func TestBackspaceForwardsInput(t *testing.T) {
	state, _, v := newFixture()
	var buf bytes.Buffer
	result, err := Handle(state, v, &buf, Backspace)
	if err != nil {
		t.Fatal(err)
	}
	if !result.ForwardInput {
		t.Fatal("expected ForwardInput")
	}
	if state.CursorTrackingMode != screenreader.CursorTrackingOffOnce {
		t.Fatalf("CursorTrackingMode = %v; want OffOnce", state.CursorTrackingMode)
	}
}

func TestCopyWithNoMarkSpeaksNoMarkSet(t *testing.T) {
	state, d, v := newFixture()
	var buf bytes.Buffer
	if _, err := Handle(state, v, &buf, Copy); err != nil {
		t.Fatal(err)
	}
	if len(d.Events) != 1 || d.Events[0].Text != "no mark set" {
		t.Fatalf("events = %v; want [\"no mark set\"]", d.Events)
	}
}

func TestCopyTrimsTrailingBlanksAndPutsOnClipboard(t *testing.T) {
	state, _, v := newFixture()
	var buf bytes.Buffer
	v.ProcessChanges([]byte("hello"))
	v.ReviewCursorPosition = view.Position{Row: 0, Col: 0}
	state.Clipboard.SetMark(clipboard.Position{Row: 0, Col: 0})
	v.ReviewCursorPosition = view.Position{Row: 0, Col: 19}
	if _, err := Handle(state, v, &buf, Copy); err != nil {
		t.Fatal(err)
	}
	got, ok := state.Clipboard.Get()
	if !ok || got != "hello" {
		t.Fatalf("clipboard = %q, %v; want \"hello\", true", got, ok)
	}
}

func TestToggleAutoReadDisableDrainsReporter(t *testing.T) {
	state, _, v := newFixture()
	var buf bytes.Buffer
	v.ProcessChanges([]byte("\x08\x08"))
	if v.Reporter().CursorMoves == 0 {
		t.Fatal("expected backspaces to register as cursor moves")
	}
	if _, err := Handle(state, v, &buf, ToggleAutoRead); err != nil {
		t.Fatal(err)
	}
	if state.AutoRead {
		t.Fatal("expected auto read to be disabled")
	}
	if v.Reporter().CursorMoves != 0 {
		t.Fatalf("CursorMoves = %d; want 0 after disabling auto read", v.Reporter().CursorMoves)
	}
}

func TestReviewReadAttributesReportsBoldAndWide(t *testing.T) {
	state, d, v := newFixture()
	var buf bytes.Buffer
	v.ProcessChanges([]byte("\x1b[1m你\x1b[0m"))
	v.ReviewCursorPosition = view.Position{Row: 0, Col: 0}
	if _, err := Handle(state, v, &buf, RevReadAttributes); err != nil {
		t.Fatal(err)
	}
	got := d.Events[len(d.Events)-1].Text
	if !bytes.Contains([]byte(got), []byte("bold")) {
		t.Fatalf("got %q; want it to mention bold", got)
	}
	if !bytes.Contains([]byte(got), []byte("wide")) {
		t.Fatalf("got %q; want it to mention wide", got)
	}
}

func TestPasteWritesBracketedWhenEnabled(t *testing.T) {
	state, _, v := newFixture()
	var buf bytes.Buffer
	v.ProcessChanges([]byte("\x1b[?2004h"))
	state.Clipboard.Put("hi")
	if _, err := Handle(state, v, &buf, Paste); err != nil {
		t.Fatal(err)
	}
	want := "\x1B[200~hi\x1B[201~"
	if buf.String() != want {
		t.Fatalf("wrote %q; want %q", buf.String(), want)
	}
}

func TestPasteWithNoClipboardSpeaksNoClipboard(t *testing.T) {
	state, d, v := newFixture()
	var buf bytes.Buffer
	if _, err := Handle(state, v, &buf, Paste); err != nil {
		t.Fatal(err)
	}
	if d.Events[len(d.Events)-1].Text != "no clipboard" {
		t.Fatalf("got %q; want \"no clipboard\"", d.Events[len(d.Events)-1].Text)
	}
}

func TestToggleSymbolLevelCyclesThroughLevels(t *testing.T) {
	state, d, v := newFixture()
	var buf bytes.Buffer
	if _, err := Handle(state, v, &buf, ToggleSymbolLevel); err != nil {
		t.Fatal(err)
	}
	if d.Events[len(d.Events)-1].Text != "some" {
		t.Fatalf("got %q; want \"some\"", d.Events[len(d.Events)-1].Text)
	}
}
