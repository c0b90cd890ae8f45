package viewstack

import (
	"bytes"
	"errors"
	"testing"

	"lector/internal/screenreader"
	"lector/internal/speech"
)

func newTestStack() *Stack {
	return New(NewPtyView(5, 20))
}

func TestPushAndPopRestoresRoot(t *testing.T) {
	s := newTestStack()
	root := s.Active()
	s.Push(NewMessageView(5, 20, "hi", "hello"))
	if s.Active() == root {
		t.Fatal("expected pushed view active")
	}
	if !s.HasOverlay() {
		t.Fatal("expected HasOverlay")
	}
	if !s.Pop() {
		t.Fatal("expected pop to succeed")
	}
	if s.Active() != root {
		t.Fatal("expected root active again")
	}
}

func TestPopOnRootFails(t *testing.T) {
	s := newTestStack()
	if s.Pop() {
		t.Fatal("expected pop on root-only stack to fail")
	}
}

func TestPtyViewHandlePasteBracketsWhenModeEnabled(t *testing.T) {
	d := &speech.LogDriver{}
	sp := speech.New(d, 0)
	state := screenreader.New(sp)
	p := NewPtyView(5, 20)
	if err := p.HandlePtyOutput([]byte("\x1b[?2004h")); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if _, err := p.HandlePaste(state, "hi", &buf); err != nil {
		t.Fatal(err)
	}
	want := "\x1B[200~hi\x1B[201~"
	if buf.String() != want {
		t.Fatalf("wrote %q; want %q", buf.String(), want)
	}
}

func TestPtyViewHandlePasteWritesPlainWhenBracketedPasteDisabled(t *testing.T) {
	d := &speech.LogDriver{}
	sp := speech.New(d, 0)
	state := screenreader.New(sp)
	p := NewPtyView(5, 20)
	var buf bytes.Buffer
	if _, err := p.HandlePaste(state, "hi", &buf); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "hi" {
		t.Fatalf("wrote %q; want %q", buf.String(), "hi")
	}
}

func TestMessageViewPopsOnEscapeOrEnter(t *testing.T) {
	m := NewMessageView(5, 20, "t", "hello")
	var buf bytes.Buffer
	res, err := m.HandleInput(nil, []byte("\x1B"), &buf)
	if err != nil {
		t.Fatal(err)
	}
	if res.Action != ActionPop {
		t.Fatalf("Action = %v; want ActionPop", res.Action)
	}
}

type stubEngine struct {
	result string
	err    error
}

func (s stubEngine) Eval(source string) (string, error) { return s.result, s.err }
func (s stubEngine) BindKey(key, help string, cb func() error) error { return nil }

func TestLuaReplSubmitsAndSpeaksResult(t *testing.T) {
	d := &speech.LogDriver{}
	sp := speech.New(d, 0)
	state := screenreader.New(sp)
	l := NewLuaReplView(5, 20, stubEngine{result: "42"})
	var buf bytes.Buffer
	for _, c := range "1+1" {
		if _, err := l.HandleInput(state, []byte(string(c)), &buf); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := l.HandleInput(state, []byte("\r"), &buf); err != nil {
		t.Fatal(err)
	}
	if len(d.Events) == 0 || d.Events[len(d.Events)-1].Text != "42" {
		t.Fatalf("events = %v; want last \"42\"", d.Events)
	}
}

func TestLuaReplSpeaksErrorOnEvalFailure(t *testing.T) {
	d := &speech.LogDriver{}
	sp := speech.New(d, 0)
	state := screenreader.New(sp)
	l := NewLuaReplView(5, 20, stubEngine{err: errors.New("boom")})
	var buf bytes.Buffer
	if _, err := l.HandleInput(state, []byte("\r"), &buf); err != nil {
		t.Fatal(err)
	}
	if len(d.Events) == 0 || d.Events[len(d.Events)-1].Text != "boom" {
		t.Fatalf("events = %v; want last \"boom\"", d.Events)
	}
}

func TestLuaReplEscapeDoesNotClosePopButArrowsEditLine(t *testing.T) {
	d := &speech.LogDriver{}
	sp := speech.New(d, 0)
	state := screenreader.New(sp)
	l := NewLuaReplView(5, 20, stubEngine{result: "ok"})
	var buf bytes.Buffer

	for _, c := range "ab" {
		if _, err := l.HandleInput(state, []byte(string(c)), &buf); err != nil {
			t.Fatal(err)
		}
	}
	res, err := l.HandleInput(state, []byte("\x1B"), &buf)
	if err != nil {
		t.Fatal(err)
	}
	if res.Action == ActionPop {
		t.Fatal("bare escape should not pop the REPL view")
	}

	res, err = l.HandleInput(state, []byte("\x1B[D"), &buf)
	if err != nil {
		t.Fatal(err)
	}
	if res.Action == ActionPop {
		t.Fatal("left-arrow escape sequence should not pop the REPL view")
	}
	if l.editor.Cursor() != 1 {
		t.Fatalf("Cursor() = %d; want 1 after left arrow", l.editor.Cursor())
	}

	if _, err := l.HandleInput(state, []byte("c"), &buf); err != nil {
		t.Fatal(err)
	}
	if l.editor.Input() != "acb" {
		t.Fatalf("Input() = %q; want %q", l.editor.Input(), "acb")
	}
}

func TestLuaReplCtrlDPopsView(t *testing.T) {
	d := &speech.LogDriver{}
	sp := speech.New(d, 0)
	state := screenreader.New(sp)
	l := NewLuaReplView(5, 20, stubEngine{result: "ok"})
	var buf bytes.Buffer
	res, err := l.HandleInput(state, []byte("\x04"), &buf)
	if err != nil {
		t.Fatal(err)
	}
	if res.Action != ActionPop {
		t.Fatalf("Action = %v; want ActionPop on Ctrl-D", res.Action)
	}
}

func TestLuaReplHistoryNavigation(t *testing.T) {
	d := &speech.LogDriver{}
	sp := speech.New(d, 0)
	state := screenreader.New(sp)
	l := NewLuaReplView(5, 20, stubEngine{result: "ok"})
	var buf bytes.Buffer

	for _, c := range "first" {
		l.HandleInput(state, []byte(string(c)), &buf)
	}
	l.HandleInput(state, []byte("\r"), &buf)
	for _, c := range "second" {
		l.HandleInput(state, []byte(string(c)), &buf)
	}
	l.HandleInput(state, []byte("\r"), &buf)

	if _, err := l.HandleInput(state, []byte("\x1B[A"), &buf); err != nil {
		t.Fatal(err)
	}
	if l.editor.Input() != "second" {
		t.Fatalf("Input() = %q; want %q after one history-up", l.editor.Input(), "second")
	}
	if _, err := l.HandleInput(state, []byte("\x1B[A"), &buf); err != nil {
		t.Fatal(err)
	}
	if l.editor.Input() != "first" {
		t.Fatalf("Input() = %q; want %q after two history-up", l.editor.Input(), "first")
	}
	if _, err := l.HandleInput(state, []byte("\x1B[B"), &buf); err != nil {
		t.Fatal(err)
	}
	if l.editor.Input() != "second" {
		t.Fatalf("Input() = %q; want %q after history-down", l.editor.Input(), "second")
	}
}
