// Package commands implements the Action taxonomy and the dispatcher that
// turns a bound key press into session-state changes, review-cursor
// movement, and spoken feedback.
package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"lector/internal/clipboard"
	"lector/internal/screenext"
	"lector/internal/screenreader"
	"lector/internal/symbols"
	"lector/internal/view"
)

// Action is one user-invocable command.
type Action int

const (
	ToggleHelp Action = iota
	ToggleAutoRead
	ToggleReviewCursorFollowsScreenCursor
	ToggleSymbolLevel
	PassNextKey
	StopSpeaking
	RevLinePrev
	RevLineNext
	RevLinePrevNonBlank
	RevLineNextNonBlank
	RevLineRead
	RevCharPrev
	RevCharNext
	RevCharRead
	RevCharReadPhonetic
	RevWordPrev
	RevWordNext
	RevWordRead
	RevTop
	RevBottom
	RevFirst
	RevLast
	RevReadAttributes
	Backspace
	Delete
	SayTime
	SetMark
	Copy
	Paste
	SayClipboard
	PreviousClipboard
	NextClipboard
	OpenLuaRepl
)

var helpText = map[Action]string{
	ToggleHelp:                            "toggle help",
	ToggleAutoRead:                        "toggle auto read",
	ToggleReviewCursorFollowsScreenCursor: "toggle whether review cursor follows screen cursor",
	ToggleSymbolLevel:                     "toggle symbol level",
	PassNextKey:                           "forward next key press",
	StopSpeaking:                          "stop speaking",
	RevLinePrev:                           "previous line",
	RevLineNext:                           "next line",
	RevLinePrevNonBlank:                   "previous non blank line",
	RevLineNextNonBlank:                   "next non blank line",
	RevLineRead:                           "current line",
	RevCharPrev:                           "previous character",
	RevCharNext:                           "next character",
	RevCharRead:                           "current character",
	RevCharReadPhonetic:                   "current character phonetically",
	RevWordPrev:                           "previous word",
	RevWordNext:                           "next word",
	RevWordRead:                           "current word",
	RevTop:                                "top",
	RevBottom:                             "bottom",
	RevFirst:                              "beginning of line",
	RevLast:                               "end of line",
	RevReadAttributes:                     "read attributes",
	Backspace:                             "backspace",
	Delete:                                "delete",
	SayTime:                               "say the time",
	SetMark:                               "set mark",
	Copy:                                  "copy",
	Paste:                                 "paste",
	SayClipboard:                          "say clipboard",
	PreviousClipboard:                     "previous clipboard",
	NextClipboard:                         "next clipboard",
	OpenLuaRepl:                           "open lua repl",
}

// HelpText returns the spoken description of a, used both in help mode
// and by keymap bindings that reference a builtin action by name.
func (a Action) HelpText() string {
	return helpText[a]
}

// ByName maps a config/Lua-facing action name (e.g. "toggle_help",
// "rev_line_next") to its Action, for keybinding overrides loaded from
// YAML where actions are named, not iota values.
var ByName = map[string]Action{
	"toggle_help":                               ToggleHelp,
	"toggle_auto_read":                          ToggleAutoRead,
	"toggle_review_cursor_follows_screen_cursor": ToggleReviewCursorFollowsScreenCursor,
	"toggle_symbol_level":                        ToggleSymbolLevel,
	"pass_next_key":                               PassNextKey,
	"stop_speaking":                               StopSpeaking,
	"rev_line_prev":                               RevLinePrev,
	"rev_line_next":                               RevLineNext,
	"rev_line_prev_non_blank":                     RevLinePrevNonBlank,
	"rev_line_next_non_blank":                     RevLineNextNonBlank,
	"rev_line_read":                               RevLineRead,
	"rev_char_prev":                               RevCharPrev,
	"rev_char_next":                               RevCharNext,
	"rev_char_read":                               RevCharRead,
	"rev_char_read_phonetic":                      RevCharReadPhonetic,
	"rev_word_prev":                               RevWordPrev,
	"rev_word_next":                               RevWordNext,
	"rev_word_read":                               RevWordRead,
	"rev_top":                                      RevTop,
	"rev_bottom":                                   RevBottom,
	"rev_first":                                    RevFirst,
	"rev_last":                                     RevLast,
	"rev_read_attributes":                         RevReadAttributes,
	"backspace":                                    Backspace,
	"delete":                                       Delete,
	"say_time":                                     SayTime,
	"set_mark":                                     SetMark,
	"copy":                                         Copy,
	"paste":                                        Paste,
	"say_clipboard":                                SayClipboard,
	"previous_clipboard":                           PreviousClipboard,
	"next_clipboard":                               NextClipboard,
	"open_lua_repl":                                OpenLuaRepl,
}

// CommandResult reports side effects handle_action's caller must apply:
// whether the triggering key should still be forwarded to the child
// process (true for Backspace/Delete, which only speak the affected
// character and leave the edit to the underlying program), and whether a Lua
// REPL overlay should be pushed onto the view stack.
type CommandResult struct {
	ForwardInput bool
	OpenLuaRepl  bool
}

// Handle dispatches action against state and view, writing any output
// (e.g. pasted text) to ptyWriter.
func Handle(state *screenreader.State, v *view.View, ptyWriter io.Writer, action Action) (CommandResult, error) {
	if action == ToggleHelp {
		return CommandResult{}, actionToggleHelp(state)
	}
	if state.HelpMode {
		return CommandResult{}, state.Speech.Speak(action.HelpText(), false)
	}

	switch action {
	case ToggleAutoRead:
		return CommandResult{}, actionToggleAutoRead(state, v)
	case ToggleReviewCursorFollowsScreenCursor:
		return CommandResult{}, actionToggleReviewFollowsScreenCursor(state, v)
	case ToggleSymbolLevel:
		return CommandResult{}, actionToggleSymbolLevel(state)
	case PassNextKey:
		return CommandResult{}, actionPassNextKey(state)
	case StopSpeaking:
		return CommandResult{}, state.Speech.Stop()
	case RevLinePrev:
		return CommandResult{}, actionReviewLinePrev(state, v, false)
	case RevLineNext:
		return CommandResult{}, actionReviewLineNext(state, v, false)
	case RevLinePrevNonBlank:
		return CommandResult{}, actionReviewLinePrev(state, v, true)
	case RevLineNextNonBlank:
		return CommandResult{}, actionReviewLineNext(state, v, true)
	case RevLineRead:
		return CommandResult{}, actionReviewLineRead(state, v)
	case RevWordPrev:
		return CommandResult{}, actionReviewWordPrev(state, v)
	case RevWordNext:
		return CommandResult{}, actionReviewWordNext(state, v)
	case RevWordRead:
		return CommandResult{}, actionReviewWordRead(state, v)
	case RevCharPrev:
		return CommandResult{}, actionReviewCharPrev(state, v)
	case RevCharNext:
		return CommandResult{}, actionReviewCharNext(state, v)
	case RevCharRead:
		return CommandResult{}, actionReviewCharRead(state, v)
	case RevCharReadPhonetic:
		return CommandResult{}, actionReviewCharReadPhonetic(state, v)
	case RevTop:
		return CommandResult{}, actionReviewTop(state, v)
	case RevBottom:
		return CommandResult{}, actionReviewBottom(state, v)
	case RevFirst:
		return CommandResult{}, actionReviewFirst(state, v)
	case RevLast:
		return CommandResult{}, actionReviewLast(state, v)
	case RevReadAttributes:
		return CommandResult{}, actionReviewReadAttributes(state, v)
	case Backspace:
		err := actionBackspace(state, v)
		return CommandResult{ForwardInput: true}, err
	case Delete:
		err := actionDelete(state, v)
		return CommandResult{ForwardInput: true}, err
	case SayTime:
		return CommandResult{}, actionSayTime(state)
	case SetMark:
		return CommandResult{}, actionSetMark(state, v)
	case Copy:
		return CommandResult{}, actionCopy(state, v)
	case Paste:
		return CommandResult{}, actionPaste(state, v, ptyWriter)
	case SayClipboard:
		return CommandResult{}, actionClipboardSay(state)
	case PreviousClipboard:
		return CommandResult{}, actionClipboardPrev(state)
	case NextClipboard:
		return CommandResult{}, actionClipboardNext(state)
	case OpenLuaRepl:
		return CommandResult{OpenLuaRepl: true}, nil
	default:
		return CommandResult{}, state.Speech.Speak("not implemented", false)
	}
}

func actionToggleHelp(state *screenreader.State) error {
	if state.HelpMode {
		state.HelpMode = false
		return state.Speech.Speak("exiting help", false)
	}
	state.HelpMode = true
	return state.Speech.Speak("entering help. Press this key again to exit", false)
}

func actionToggleAutoRead(state *screenreader.State, v *view.View) error {
	state.AutoRead = !state.AutoRead
	if state.AutoRead {
		return state.Speech.Speak("auto read enabled", false)
	}
	v.Reporter().Reset()
	return state.Speech.Speak("auto read disabled", false)
}

func actionToggleReviewFollowsScreenCursor(state *screenreader.State, v *view.View) error {
	state.ReviewFollowsScreenCursor = !state.ReviewFollowsScreenCursor
	if state.ReviewFollowsScreenCursor {
		s := v.Screen()
		v.ReviewCursorPosition = view.Position{Row: s.CursorRow, Col: s.CursorCol}
		return state.Speech.Speak("review cursor following screen cursor", false)
	}
	return state.Speech.Speak("review cursor not following screen cursor", false)
}

func actionToggleSymbolLevel(state *screenreader.State) error {
	switch state.Speech.SymbolLevel {
	case symbols.LevelNone:
		state.Speech.SymbolLevel = symbols.LevelSome
		return state.Speech.Speak("some", false)
	case symbols.LevelSome:
		state.Speech.SymbolLevel = symbols.LevelMost
		return state.Speech.Speak("most", false)
	case symbols.LevelMost:
		state.Speech.SymbolLevel = symbols.LevelAll
		return state.Speech.Speak("all", false)
	default:
		state.Speech.SymbolLevel = symbols.LevelNone
		return state.Speech.Speak("none", false)
	}
}

func actionPassNextKey(state *screenreader.State) error {
	state.PassThrough = true
	return state.Speech.Speak("forward next key press", false)
}

func actionReviewLinePrev(state *screenreader.State, v *view.View, skipBlank bool) error {
	if !v.ReviewCursorUp(skipBlank) {
		if err := state.Speech.Speak("top", false); err != nil {
			return err
		}
	}
	return actionReviewLineRead(state, v)
}

func actionReviewLineNext(state *screenreader.State, v *view.View, skipBlank bool) error {
	if !v.ReviewCursorDown(skipBlank) {
		if err := state.Speech.Speak("bottom", false); err != nil {
			return err
		}
	}
	return actionReviewLineRead(state, v)
}

func actionReviewLineRead(state *screenreader.State, v *view.View) error {
	row := v.ReviewCursorPosition.Row
	if err := state.ReportReviewCursorIndentationChanges(v); err != nil {
		return err
	}
	line := v.Line(row)
	if line == "" {
		return state.Speech.Speak("blank", false)
	}
	return state.Speech.Speak(line, false)
}

func actionReviewWordPrev(state *screenreader.State, v *view.View) error {
	if !v.ReviewCursorPrevWord() {
		if err := state.Speech.Speak("left", false); err != nil {
			return err
		}
	}
	return actionReviewWordRead(state, v)
}

func actionReviewWordNext(state *screenreader.State, v *view.View) error {
	if !v.ReviewCursorNextWord() {
		if err := state.Speech.Speak("right", false); err != nil {
			return err
		}
	}
	return actionReviewWordRead(state, v)
}

func actionReviewWordRead(state *screenreader.State, v *view.View) error {
	row, col := v.ReviewCursorPosition.Row, v.ReviewCursorPosition.Col
	return state.Speech.Speak(v.Word(row, col), false)
}

func actionReviewCharPrev(state *screenreader.State, v *view.View) error {
	if !v.ReviewCursorLeft() {
		if err := state.Speech.Speak("left", false); err != nil {
			return err
		}
	}
	return actionReviewCharRead(state, v)
}

func actionReviewCharNext(state *screenreader.State, v *view.View) error {
	if !v.ReviewCursorRight() {
		if err := state.Speech.Speak("right", false); err != nil {
			return err
		}
	}
	return actionReviewCharRead(state, v)
}

func actionReviewCharRead(state *screenreader.State, v *view.View) error {
	row, col := v.ReviewCursorPosition.Row, v.ReviewCursorPosition.Col
	ch := v.Character(row, col)
	if ch == "" {
		return state.Speech.Speak("blank", false)
	}
	return state.Speech.Speak(ch, false)
}

func actionReviewCharReadPhonetic(state *screenreader.State, v *view.View) error {
	row, col := v.ReviewCursorPosition.Row, v.ReviewCursorPosition.Col
	ch := v.Character(row, col)
	return state.Speech.Speak(symbols.Phonetic(ch), false)
}

func actionReviewTop(state *screenreader.State, v *view.View) error {
	row := v.ReviewCursorPosition.Row
	rows, cols := v.Size()
	if row == 0 {
		if r, _, ok := screenext.FindCell(v.Screen(), screenext.IsInWord, 0, 0, rows-1, cols-1); ok {
			v.ReviewCursorPosition.Row = r
		}
	} else {
		v.ReviewCursorPosition.Row = 0
	}
	return actionReviewLineRead(state, v)
}

func actionReviewBottom(state *screenreader.State, v *view.View) error {
	row := v.ReviewCursorPosition.Row
	rows, cols := v.Size()
	lastRow := rows - 1
	if row == lastRow {
		if r, _, ok := screenext.RFindCell(v.Screen(), screenext.IsInWord, 0, 0, lastRow, cols-1); ok {
			v.ReviewCursorPosition.Row = r
		}
	} else {
		v.ReviewCursorPosition.Row = lastRow
	}
	return actionReviewLineRead(state, v)
}

func actionReviewFirst(state *screenreader.State, v *view.View) error {
	row, col := v.ReviewCursorPosition.Row, v.ReviewCursorPosition.Col
	_, cols := v.Size()
	last := cols - 1
	if col == 0 {
		if _, c, ok := screenext.FindCell(v.Screen(), screenext.IsInWord, row, 0, row, last); ok {
			v.ReviewCursorPosition.Col = c
		}
	} else {
		v.ReviewCursorPosition.Col = 0
	}
	return actionReviewCharRead(state, v)
}

func actionReviewLast(state *screenreader.State, v *view.View) error {
	row, col := v.ReviewCursorPosition.Row, v.ReviewCursorPosition.Col
	_, cols := v.Size()
	last := cols - 1
	if col == last {
		if _, c, ok := screenext.RFindCell(v.Screen(), screenext.IsInWord, row, 0, row, last); ok {
			v.ReviewCursorPosition.Col = c
		}
	} else {
		v.ReviewCursorPosition.Col = last
	}
	return actionReviewCharRead(state, v)
}

func actionReviewReadAttributes(state *screenreader.State, v *view.View) error {
	row, col := v.ReviewCursorPosition.Row, v.ReviewCursorPosition.Col
	s := v.Screen()
	if row < 0 || row >= len(s.Grid) || col < 0 || col >= len(s.Grid[row]) {
		return fmt.Errorf("cannot get cell at row %d, column %d", row, col)
	}
	cell := s.Grid[row][col]

	var b strings.Builder
	fmt.Fprintf(&b, "Row %d col %d ", row+1, col+1)
	fmt.Fprintf(&b, "%s", cell.Attrs.Fg.Name())
	if cell.Attrs.Bg.Kind != 0 {
		fmt.Fprintf(&b, " on %s", cell.Attrs.Bg.Name())
	}
	b.WriteByte(' ')
	if cell.Attrs.Bold {
		b.WriteString("bold ")
	}
	if cell.Attrs.Italic {
		b.WriteString("italic ")
	}
	if cell.Attrs.Underline {
		b.WriteString("underline ")
	}
	if cell.Attrs.Inverse {
		b.WriteString("inverse ")
	}
	if cell.Attrs.Wide {
		b.WriteString("wide ")
	}

	return state.Speech.Speak(b.String(), false)
}

func actionBackspace(state *screenreader.State, v *view.View) error {
	s := v.Screen()
	row, col := s.CursorRow, s.CursorCol
	if col > 0 {
		if err := state.Speech.Speak(v.Character(row, col-1), false); err != nil {
			return err
		}
	}
	if state.CursorTrackingMode != screenreader.CursorTrackingOff {
		state.CursorTrackingMode = screenreader.CursorTrackingOffOnce
	}
	return nil
}

func actionDelete(state *screenreader.State, v *view.View) error {
	s := v.Screen()
	return state.Speech.Speak(v.Character(s.CursorRow, s.CursorCol), false)
}

func actionSayTime(state *screenreader.State) error {
	return state.Speech.Speak(time.Now().Format("15:04"), false)
}

func actionSetMark(state *screenreader.State, v *view.View) error {
	pos := v.ReviewCursorPosition
	state.Clipboard.SetMark(clipboard.Position{Row: pos.Row, Col: pos.Col})
	return state.Speech.Speak("mark set", false)
}

func actionCopy(state *screenreader.State, v *view.View) error {
	mark, ok := state.Clipboard.Mark()
	if !ok {
		return state.Speech.Speak("no mark set", false)
	}
	cur := v.ReviewCursorPosition
	if mark.Row > cur.Row || (mark.Row == cur.Row && mark.Col > cur.Col) {
		return state.Speech.Speak("mark is after the review cursor", false)
	}

	s := v.Screen()
	_, cols := v.Size()
	var b strings.Builder
	for row := mark.Row; row <= cur.Row; row++ {
		start := 0
		if row == mark.Row {
			start = mark.Col
		}
		end := cols
		if row == cur.Row {
			end = cur.Col + 1
		}
		if r, c, ok := screenext.RFindCell(s, nonBlank, row, start, row, end-1); ok {
			_ = r
			end = c + 1
		} else {
			end = start
		}
		b.WriteString(s.ContentsBetween(row, start, row, end))
		if row != cur.Row {
			b.WriteByte('\n')
		}
	}

	state.Clipboard.ClearMark()
	state.Clipboard.Put(b.String())
	return state.Speech.Speak("copied", false)
}

func nonBlank(c screenext.Cell) bool {
	return strings.TrimSpace(string(c.Rune)) != ""
}

func actionPaste(state *screenreader.State, v *view.View, w io.Writer) error {
	text, ok := state.Clipboard.Get()
	if !ok {
		return state.Speech.Speak("no clipboard", false)
	}
	if v.Screen().BracketedPaste {
		fmt.Fprintf(w, "\x1B[200~%s\x1B[201~", text)
	} else {
		fmt.Fprint(w, text)
	}
	return state.Speech.Speak("pasted", false)
}

func actionClipboardPrev(state *screenreader.State) error {
	if state.Clipboard.Size() == 0 {
		return state.Speech.Speak("no clipboard", false)
	}
	if state.Clipboard.Prev() {
		return actionClipboardSay(state)
	}
	return state.Speech.Speak("first clipboard", false)
}

func actionClipboardNext(state *screenreader.State) error {
	if state.Clipboard.Size() == 0 {
		return state.Speech.Speak("no clipboard", false)
	}
	if state.Clipboard.Next() {
		return actionClipboardSay(state)
	}
	return state.Speech.Speak("last clipboard", false)
}

func actionClipboardSay(state *screenreader.State) error {
	text, ok := state.Clipboard.Get()
	if !ok {
		return state.Speech.Speak("no clipboard", false)
	}
	return state.Speech.Speak(text, false)
}
