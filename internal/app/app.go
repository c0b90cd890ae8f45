// Package app implements the event loop that ties a PTY-backed session
// together: it receives raw stdin reads, PTY output chunks, and periodic
// ticks, and turns them into key dispatch, screen re-renders, and the
// settle-delay timed auto-read/cursor-tracking pass.
package app

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"lector/internal/clock"
	"lector/internal/commands"
	"lector/internal/keymap"
	"lector/internal/screenreader"
	"lector/internal/scripting"
	"lector/internal/view"
	"lector/internal/viewstack"
)

// DiffDelayMillis and MaxDiffDelayMillis bound the settle window after a
// burst of PTY output before changes are read aloud and the previous
// screen advances: a first change must go unfollowed for DiffDelayMillis,
// but a continuously updating screen (e.g. a progress bar) is still
// forced to settle after MaxDiffDelayMillis.
const (
	DiffDelayMillis    = 1
	MaxDiffDelayMillis = 300
)

// csiRe matches a single CSI escape sequence whose final byte isn't a
// cursor-movement letter (A-D) or a tilde-terminated key (Home/End/Page/
// function keys), the same exclusion the stdin handler uses to decide
// whether a read looks like a genuine keystroke worth remembering as
// "last key" and worth interrupting speech for.
var csiRe = regexp.MustCompile("^\x1B\\[[\x30-\x3F]*[\x20-\x2F]*[\x40\x45-\x7D]$")

// App is the event loop: it owns the view stack, the key bindings, and
// the clock/settle-delay bookkeeping, and drives ScreenReader session
// state in response to input.
type App struct {
	viewStack *viewstack.Stack
	bindings  *keymap.Bindings
	scripting scripting.Engine
	clk       clock.Clock

	hasLastStdinUpdate bool
	lastStdinUpdate    int64
	hasLastPtyUpdate   bool
	lastPtyUpdate      int64
}

// New returns an App over viewStack, dispatching through bindings and
// evaluating Lua REPL input through engine.
func New(viewStack *viewstack.Stack, bindings *keymap.Bindings, engine scripting.Engine, clk clock.Clock) *App {
	a := &App{
		viewStack: viewStack,
		bindings:  bindings,
		scripting: engine,
		clk:       clk,
	}
	a.viewStack.Root().Model().PrevScreenTime = clk.NowMillis()
	return a
}

// WantsTick reports whether the active view needs periodic Tick calls.
func (a *App) WantsTick() bool {
	return a.viewStack.Active().WantsTick()
}

// HasOverlay reports whether a non-root view is currently active.
func (a *App) HasOverlay() bool {
	return a.viewStack.HasOverlay()
}

// OnResize propagates a terminal resize to every view, redrawing the
// active one if it's an overlay (the root PTY view is redrawn by its own
// child process reacting to SIGWINCH instead).
func (a *App) OnResize(rows, cols int, termOut io.Writer) error {
	a.viewStack.OnResize(rows, cols)
	if a.viewStack.HasOverlay() {
		return a.renderActiveView(termOut)
	}
	return nil
}

// ShowMessage pushes a dismissable message view sized to the root view.
func (a *App) ShowMessage(state *screenreader.State, title, message string, termOut io.Writer) error {
	rows, cols := a.viewStack.Root().Model().Size()
	a.viewStack.Push(viewstack.NewMessageView(rows, cols, title, message))
	if err := a.renderActiveView(termOut); err != nil {
		return err
	}
	return a.announceViewChange(state)
}

// HandleStdin processes one read from the controlling terminal: it
// updates LastKey/stops speech for genuine keystrokes, honors a pending
// PassThrough, looks the input up in the key bindings, and otherwise
// forwards it to the active view.
func (a *App) HandleStdin(state *screenreader.State, input []byte, ptyOut, termOut io.Writer) error {
	if !csiRe.Match(input) {
		state.LastKey = append(state.LastKey[:0], input...)
		if err := state.Speech.Stop(); err != nil {
			return err
		}
	}

	if state.PassThrough {
		state.PassThrough = false
		return a.dispatchToView(state, input, ptyOut, termOut)
	}

	binding, ok := a.bindings.BindingFor(string(input))
	if !ok {
		if state.HelpMode {
			return state.Speech.Speak("this key is unmapped", false)
		}
		return a.dispatchToView(state, input, ptyOut, termOut)
	}

	if binding.IsLua() {
		return binding.Lua()
	}

	if binding.Action == commands.OpenLuaRepl {
		if a.viewStack.Active().Kind() == viewstack.KindLuaRepl {
			return state.Speech.Speak("Lua REPL already open", false)
		}
		rows, cols := a.viewStack.Active().Model().Size()
		repl := viewstack.NewLuaReplView(rows, cols, a.scripting)
		return a.handleViewAction(state, viewstack.Result{Action: viewstack.ActionPush, Pushed: repl}, termOut)
	}

	result, err := commands.Handle(state, a.viewStack.Active().Model(), ptyOut, binding.Action)
	if err != nil {
		return err
	}
	if result.ForwardInput {
		return a.dispatchToView(state, input, ptyOut, termOut)
	}
	return nil
}

// HandlePty processes one read from the child process: it always feeds
// the root view's terminal parser and byte observer, but only echoes to
// the real terminal when no overlay is covering it.
func (a *App) HandlePty(state *screenreader.State, buf []byte, termOut io.Writer) error {
	overlayActive := a.viewStack.HasOverlay()
	if err := a.viewStack.Root().HandlePtyOutput(buf); err != nil {
		return err
	}
	if !overlayActive {
		if _, err := termOut.Write(buf); err != nil {
			return err
		}
		if err := flush(termOut); err != nil {
			return err
		}
	}
	a.lastPtyUpdate = a.clk.NowMillis()
	a.hasLastPtyUpdate = true
	return nil
}

// HandleTick gives the active view a chance to act between reads. None
// of the built-in views asks for ticks (their WantsTick returns false).
func (a *App) HandleTick(state *screenreader.State, ptyOut, termOut io.Writer) error {
	result, err := a.viewStack.Active().Tick(state, ptyOut)
	if err != nil {
		return err
	}
	return a.handleViewAction(state, result, termOut)
}

// MaybeFinalizeChanges is the settle-delay check: once enough time has
// passed since the last PTY write (or too much time has passed since the
// root view last settled), it runs highlight tracking, auto-read, and
// cursor tracking against the root view and advances its previous
// screen. Returns whether anything was finalized.
func (a *App) MaybeFinalizeChanges(state *screenreader.State) (bool, error) {
	if !a.hasLastPtyUpdate {
		return false, nil
	}
	nowMs := a.clk.NowMillis()
	overlayActive := a.viewStack.HasOverlay()
	v := a.viewStack.Root().Model()

	if nowMs-a.lastPtyUpdate <= DiffDelayMillis && nowMs-v.PrevScreenTime <= MaxDiffDelayMillis {
		return false, nil
	}

	a.hasLastPtyUpdate = false
	if !overlayActive {
		if state.HighlightTracking {
			if err := state.TrackHighlighting(v); err != nil {
				return false, err
			}
		}
		readText := false
		if state.AutoRead {
			var err error
			readText, err = state.PerformAutoRead(v)
			if err != nil {
				return false, err
			}
		}
		if a.hasLastStdinUpdate && nowMs-a.lastStdinUpdate <= MaxDiffDelayMillis && !readText {
			if err := state.TrackCursor(v); err != nil {
				return false, err
			}
		}
	}

	a.syncReviewCursorToScreenCursor(state, v)
	v.FinalizeChanges(nowMs)
	return true, nil
}

func (a *App) dispatchToView(state *screenreader.State, input []byte, ptyOut, termOut io.Writer) error {
	a.setLastStdinUpdate()
	result, err := a.viewStack.Active().HandleInput(state, input, ptyOut)
	if err != nil {
		return err
	}
	return a.handleViewAction(state, result, termOut)
}

func (a *App) handleViewAction(state *screenreader.State, result viewstack.Result, termOut io.Writer) error {
	switch result.Action {
	case viewstack.ActionPtyInput:
		a.setLastStdinUpdate()
	case viewstack.ActionBell:
		if _, err := termOut.Write([]byte{0x07}); err != nil {
			return err
		}
		return flush(termOut)
	case viewstack.ActionPush:
		a.viewStack.Push(result.Pushed)
		if err := a.renderActiveView(termOut); err != nil {
			return err
		}
		return a.announceViewChange(state)
	case viewstack.ActionPop:
		if a.viewStack.Pop() {
			if err := a.renderActiveView(termOut); err != nil {
				return err
			}
			return a.announceViewChange(state)
		}
	case viewstack.ActionRedraw:
		if err := a.renderActiveView(termOut); err != nil {
			return err
		}
		return a.readActiveViewChanges(state)
	}
	return nil
}

// renderActiveView redraws the active view's model from scratch: a
// clear-and-home, its text content, and a cursor placement escape. The
// overlay views (message, Lua REPL) only ever emit plain uncolored text,
// so there's no per-cell SGR state to restore here.
func (a *App) renderActiveView(termOut io.Writer) error {
	v := a.viewStack.Active().Model()
	if _, err := termOut.Write([]byte("\x1B[2J\x1B[H")); err != nil {
		return err
	}
	rows, _ := v.Size()
	for row := 0; row < rows; row++ {
		if row > 0 {
			if _, err := termOut.Write([]byte("\r\n")); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(termOut, v.Line(row)); err != nil {
			return err
		}
	}
	s := v.Screen()
	if _, err := io.WriteString(termOut, cursorPositionEscape(s.CursorRow, s.CursorCol)); err != nil {
		return err
	}
	return flush(termOut)
}

func (a *App) announceViewChange(state *screenreader.State) error {
	active := a.viewStack.Active()
	if err := state.Speech.Speak(active.Title(), false); err != nil {
		return err
	}
	v := active.Model()
	contents := v.ContentsFull()
	if strings.TrimSpace(contents) == "" {
		if err := state.Speech.Speak("blank screen", false); err != nil {
			return err
		}
	} else if err := state.Speech.Speak(contents, false); err != nil {
		return err
	}
	v.FinalizeChanges(a.clk.NowMillis())
	return nil
}

func (a *App) readActiveViewChanges(state *screenreader.State) error {
	nowMs := a.clk.NowMillis()
	v := a.viewStack.Active().Model()
	readText := false
	if state.AutoRead {
		var err error
		readText, err = state.PerformAutoRead(v)
		if err != nil {
			return err
		}
	}
	if a.hasLastStdinUpdate && nowMs-a.lastStdinUpdate <= MaxDiffDelayMillis && !readText {
		if err := state.TrackCursor(v); err != nil {
			return err
		}
	}
	a.syncReviewCursorToScreenCursor(state, v)
	v.FinalizeChanges(nowMs)
	return nil
}

func (a *App) syncReviewCursorToScreenCursor(state *screenreader.State, v *view.View) {
	if !state.ReviewFollowsScreenCursor {
		return
	}
	cur := v.Screen()
	prev := v.PrevScreen()
	if cur.CursorRow != prev.CursorRow || cur.CursorCol != prev.CursorCol {
		v.ReviewCursorPosition = view.Position{Row: cur.CursorRow, Col: cur.CursorCol}
	}
}

func (a *App) setLastStdinUpdate() {
	a.lastStdinUpdate = a.clk.NowMillis()
	a.hasLastStdinUpdate = true
}

func cursorPositionEscape(row, col int) string {
	return fmt.Sprintf("\x1B[%d;%dH", row+1, col+1)
}

type flusher interface {
	Flush() error
}

func flush(w io.Writer) error {
	if f, ok := w.(flusher); ok {
		return f.Flush()
	}
	return nil
}
