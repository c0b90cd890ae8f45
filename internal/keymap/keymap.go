// Package keymap maps key names to builtin actions or Lua callbacks, with
// the same default bindings the terminal screen reader ships with.
package keymap

import "lector/internal/commands"

// BuiltinPrefix namespaces the string form of a builtin action, so a
// config/Lua binding value can distinguish "lector.RevLineNext" from an
// arbitrary Lua function reference.
const BuiltinPrefix = "lector."

// LuaFunc is a callback registered from the scripting layer.
type LuaFunc func() error

// Binding is either a builtin Action or a user-supplied Lua callback.
type Binding struct {
	Action Action
	Help   string
	Lua    LuaFunc
}

// Action is a builtin binding's target.
type Action = commands.Action

// IsLua reports whether this binding calls into Lua rather than dispatching
// a builtin Action.
func (b Binding) IsLua() bool {
	return b.Lua != nil
}

// Bindings is a key-name to Binding registry.
type Bindings struct {
	bindings map[string]Binding
}

// New returns the default key bindings.
func New() *Bindings {
	b := &Bindings{bindings: make(map[string]Binding)}
	for key, action := range defaultBindings {
		b.bindings[key] = Binding{Action: action, Help: action.HelpText()}
	}
	return b
}

// defaultBindings maps the raw byte sequence a key press produces (as
// read from stdin) to the action it triggers. These are the same
// escape sequences the event loop matches; config-file binding
// overrides are keyed by raw sequences too, not "M-x"-style names.
var defaultBindings = map[string]commands.Action{
	"\x1BOP":    commands.ToggleHelp,
	"\x1B'":     commands.ToggleAutoRead,
	"\x1B\"":    commands.ToggleReviewCursorFollowsScreenCursor,
	"\x1Bs":     commands.ToggleSymbolLevel,
	"\x1Bn":     commands.PassNextKey,
	"\x1Bx":     commands.StopSpeaking,
	"\x1Bu":     commands.RevLinePrev,
	"\x1Bo":     commands.RevLineNext,
	"\x1BU":     commands.RevLinePrevNonBlank,
	"\x1BO":     commands.RevLineNextNonBlank,
	"\x1Bi":     commands.RevLineRead,
	"\x1Bm":     commands.RevCharPrev,
	"\x1B.":     commands.RevCharNext,
	"\x1B,":     commands.RevCharRead,
	"\x1B<":     commands.RevCharReadPhonetic,
	"\x1Bj":     commands.RevWordPrev,
	"\x1Bl":     commands.RevWordNext,
	"\x1Bk":     commands.RevWordRead,
	"\x1By":     commands.RevTop,
	"\x1Bp":     commands.RevBottom,
	"\x1Bh":     commands.RevFirst,
	"\x1B;":     commands.RevLast,
	"\x1Ba":     commands.RevReadAttributes,
	"\x08":      commands.Backspace,
	"\x7F":      commands.Backspace,
	"\x1B[3~":   commands.Delete,
	"\x1B[24~":  commands.SayTime,
	"\x1BL":     commands.OpenLuaRepl,
	"\x1B[15~":  commands.SetMark,
	"\x1B[17~":  commands.Copy,
	"\x1B[18~":  commands.Paste,
	"\x1Bc":     commands.SayClipboard,
	"\x1B[":     commands.PreviousClipboard,
	"\x1B]":     commands.NextClipboard,
}

// BindingFor returns the binding registered for key, if any.
func (b *Bindings) BindingFor(key string) (Binding, bool) {
	binding, ok := b.bindings[key]
	return binding, ok
}

// SetBuiltinBinding overrides (or adds) key to dispatch a builtin action.
func (b *Bindings) SetBuiltinBinding(key string, action commands.Action) {
	b.bindings[key] = Binding{Action: action, Help: action.HelpText()}
}

// SetLuaBinding overrides (or adds) key to call a Lua callback.
func (b *Bindings) SetLuaBinding(key, help string, fn LuaFunc) {
	b.bindings[key] = Binding{Help: help, Lua: fn}
}

// ClearBinding removes any binding registered for key.
func (b *Bindings) ClearBinding(key string) {
	delete(b.bindings, key)
}
