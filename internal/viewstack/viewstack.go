// Package viewstack implements the overlay stack the app event loop
// renders through: a PTY-backed terminal view at the root, with message
// dialogs and the Lua REPL pushed and popped on top of it.
package viewstack

import (
	"fmt"
	"io"

	"lector/internal/luaview"
	"lector/internal/scripting"
	"lector/internal/screenreader"
	"lector/internal/view"
)

// Action tells the event loop what to do after a view handled input,
// pty output, or a tick.
type Action int

const (
	ActionNone Action = iota
	ActionBell
	ActionPtyInput
	ActionPush
	ActionPop
	ActionRedraw
)

// Kind classifies a view; the event loop uses it to tell whether a Lua
// REPL is already the active view.
type Kind int

const (
	KindOther Kind = iota
	KindTerminal
	KindMessage
	KindLuaRepl
)

// Result is returned by a ViewController's input/tick/paste handlers.
type Result struct {
	Action Action
	Pushed Controller
}

// Controller is one entry in the view stack.
type Controller interface {
	Model() *view.View
	Title() string
	Kind() Kind
	WantsTick() bool
	HandleInput(state *screenreader.State, input []byte, ptyWriter io.Writer) (Result, error)
	Tick(state *screenreader.State, ptyWriter io.Writer) (Result, error)
	HandlePaste(state *screenreader.State, contents string, ptyWriter io.Writer) (Result, error)
	HandlePtyOutput(buf []byte) error
	OnResize(rows, cols int)
}

// Stack is a non-empty LIFO of view controllers; the bottom ("root")
// entry can never be popped.
type Stack struct {
	views []Controller
}

// New returns a Stack whose only entry is root.
func New(root Controller) *Stack {
	return &Stack{views: []Controller{root}}
}

// Active returns the topmost (currently displayed) controller.
func (s *Stack) Active() Controller {
	return s.views[len(s.views)-1]
}

// Root returns the bottom controller (normally the PTY terminal view).
func (s *Stack) Root() Controller {
	return s.views[0]
}

// Push adds v as the new active controller.
func (s *Stack) Push(v Controller) {
	s.views = append(s.views, v)
}

// Pop removes the active controller, unless it's the only (root) one.
// Returns whether anything was popped.
func (s *Stack) Pop() bool {
	if len(s.views) <= 1 {
		return false
	}
	s.views = s.views[:len(s.views)-1]
	return true
}

// HasOverlay reports whether any non-root view is active.
func (s *Stack) HasOverlay() bool {
	return len(s.views) > 1
}

// OnResize forwards a resize to every view in the stack, since a
// suspended message or REPL overlay still needs its model's size to
// track the real terminal.
func (s *Stack) OnResize(rows, cols int) {
	for _, v := range s.views {
		v.OnResize(rows, cols)
	}
}

// PtyView is the root ViewController: input is forwarded straight to the
// child process, and PTY output drives its View model.
type PtyView struct {
	view *view.View
}

// NewPtyView creates a PtyView with a freshly sized View.
func NewPtyView(rows, cols int) *PtyView {
	return &PtyView{view: view.New(rows, cols)}
}

func (p *PtyView) Model() *view.View { return p.view }
func (p *PtyView) Title() string     { return "Terminal" }
func (p *PtyView) Kind() Kind        { return KindTerminal }
func (p *PtyView) WantsTick() bool   { return false }

func (p *PtyView) HandleInput(state *screenreader.State, input []byte, ptyWriter io.Writer) (Result, error) {
	if _, err := ptyWriter.Write(input); err != nil {
		return Result{}, err
	}
	return Result{Action: ActionPtyInput}, nil
}

func (p *PtyView) Tick(state *screenreader.State, ptyWriter io.Writer) (Result, error) {
	return Result{Action: ActionNone}, nil
}

func (p *PtyView) HandlePaste(state *screenreader.State, contents string, ptyWriter io.Writer) (Result, error) {
	if p.view.Screen().BracketedPaste {
		fmt.Fprintf(ptyWriter, "\x1B[200~%s\x1B[201~", contents)
	} else {
		fmt.Fprint(ptyWriter, contents)
	}
	if err := state.Speech.Speak("pasted", false); err != nil {
		return Result{}, err
	}
	return Result{Action: ActionPtyInput}, nil
}

func (p *PtyView) HandlePtyOutput(buf []byte) error {
	p.view.ProcessChanges(buf)
	return nil
}

func (p *PtyView) OnResize(rows, cols int) {
	p.view.SetSize(rows, cols)
}

// MessageView renders a static message and pops itself on Enter or Escape.
type MessageView struct {
	view  *view.View
	title string
	text  string
}

// NewMessageView renders text as a dismissable full-screen message.
func NewMessageView(rows, cols int, title, text string) *MessageView {
	v := view.New(rows, cols)
	renderMessage(v, text)
	return &MessageView{view: v, title: title, text: text}
}

func (m *MessageView) Model() *view.View { return m.view }
func (m *MessageView) Title() string     { return m.title }
func (m *MessageView) Kind() Kind        { return KindMessage }
func (m *MessageView) WantsTick() bool   { return false }

func (m *MessageView) HandleInput(state *screenreader.State, input []byte, ptyWriter io.Writer) (Result, error) {
	switch string(input) {
	case "\x1B", "\r", "\n":
		return Result{Action: ActionPop}, nil
	default:
		return Result{Action: ActionNone}, nil
	}
}

func (m *MessageView) Tick(state *screenreader.State, ptyWriter io.Writer) (Result, error) {
	return Result{Action: ActionNone}, nil
}

func (m *MessageView) HandlePaste(state *screenreader.State, contents string, ptyWriter io.Writer) (Result, error) {
	return Result{Action: ActionNone}, nil
}

func (m *MessageView) HandlePtyOutput(buf []byte) error {
	return nil
}

func (m *MessageView) OnResize(rows, cols int) {
	m.view.SetSize(rows, cols)
	renderMessage(m.view, m.text)
}

func renderMessage(v *view.View, text string) {
	var buf []byte
	buf = append(buf, "\x1B[2J\x1B[H"...)
	lines := splitLines(text)
	for _, line := range lines {
		buf = append(buf, line...)
		buf = append(buf, '\r', '\n')
	}
	buf = append(buf, '\r', '\n')
	buf = append(buf, "Press Enter or Escape to close."...)
	v.NextBytes = v.NextBytes[:0]
	v.ProcessChanges(buf)
}

func splitLines(text string) []string {
	var lines []string
	start := 0
	for i, c := range text {
		if c == '\n' {
			lines = append(lines, text[start:i])
			start = i + 1
		}
	}
	lines = append(lines, text[start:])
	return lines
}

// LuaReplView is a single-line input overlay that evaluates each entered
// line through a scripting.Engine and speaks the result, keeping a
// history navigable with Up/Down. Line editing (cursor motion, word
// motion, history) is delegated to a luaview.LineEditor; Ctrl-D closes
// the overlay.
type LuaReplView struct {
	view   *view.View
	engine scripting.Engine
	editor *luaview.LineEditor
}

// NewLuaReplView creates a REPL overlay bound to engine.
func NewLuaReplView(rows, cols int, engine scripting.Engine) *LuaReplView {
	l := &LuaReplView{view: view.New(rows, cols), engine: engine, editor: luaview.New()}
	l.render()
	return l
}

func (l *LuaReplView) Model() *view.View { return l.view }
func (l *LuaReplView) Title() string     { return "Lua REPL" }
func (l *LuaReplView) Kind() Kind        { return KindLuaRepl }
func (l *LuaReplView) WantsTick() bool   { return false }

func (l *LuaReplView) HandleInput(state *screenreader.State, input []byte, ptyWriter io.Writer) (Result, error) {
	for _, b := range input {
		if b == 0x04 {
			return Result{Action: ActionPop}, nil
		}
		switch l.editor.HandleBytes([]byte{b}) {
		case luaview.ActionSubmit:
			return Result{Action: ActionNone}, l.submit(state)
		case luaview.ActionBell:
			l.render()
			return Result{Action: ActionBell}, nil
		}
	}
	l.render()
	return Result{Action: ActionRedraw}, nil
}

func (l *LuaReplView) submit(state *screenreader.State) error {
	line := l.editor.Input()
	l.editor.CommitHistory()
	l.editor.Clear()

	result, err := l.engine.Eval(line)
	if err != nil {
		l.render()
		return state.Speech.Speak(err.Error(), false)
	}
	l.render()
	return state.Speech.Speak(result, false)
}

func (l *LuaReplView) Tick(state *screenreader.State, ptyWriter io.Writer) (Result, error) {
	return Result{Action: ActionNone}, nil
}

func (l *LuaReplView) HandlePaste(state *screenreader.State, contents string, ptyWriter io.Writer) (Result, error) {
	l.editor.InsertString(contents)
	l.render()
	return Result{Action: ActionRedraw}, nil
}

func (l *LuaReplView) HandlePtyOutput(buf []byte) error {
	return nil
}

func (l *LuaReplView) OnResize(rows, cols int) {
	l.view.SetSize(rows, cols)
	l.render()
}

func (l *LuaReplView) render() {
	var buf []byte
	buf = append(buf, "\x1B[2J\x1B[H"...)
	buf = append(buf, "> "...)
	buf = append(buf, l.editor.Input()...)
	l.view.NextBytes = l.view.NextBytes[:0]
	l.view.ProcessChanges(buf)
}
