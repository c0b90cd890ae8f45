// Package testscript interprets the line-oriented BDD scenario DSL used
// by package tests to drive an event loop through a scripted sequence of
// input, time advances, and assertions without a real PTY or terminal.
package testscript

import (
	"fmt"
	"strconv"
	"strings"
)

// Command is one given/when/then/and line.
type Command struct {
	Phase   string // "given", "when", "then", "and"
	Op      string // e.g. "stdin", "expect-speak"
	Payload []byte
	Args    []string
}

// Scenario is everything between one "Scenario: NAME" line and the next.
type Scenario struct {
	Name     string
	Commands []Command
}

var assertionOnlyPhases = map[string]bool{"then": true, "and": true}

// Parse splits src into scenarios and their commands, unescaping each
// payload. and-lines carry the same assertion-only restriction as then.
// Each line is checked on its own: an expect-* op on a given/when line,
// or any other op on a then/and line, is an error; the order of phases
// across lines is not checked.
func Parse(src string) ([]Scenario, error) {
	var scenarios []Scenario
	lines := strings.Split(src, "\n")
	for lineNo, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if name, ok := strings.CutPrefix(line, "Scenario:"); ok {
			scenarios = append(scenarios, Scenario{Name: strings.TrimSpace(name)})
			continue
		}
		if len(scenarios) == 0 {
			return nil, fmt.Errorf("line %d: command before any Scenario: line", lineNo+1)
		}
		cmd, err := parseCommand(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo+1, err)
		}
		cur := &scenarios[len(scenarios)-1]
		cur.Commands = append(cur.Commands, cmd)
	}
	return scenarios, nil
}

func parseCommand(line string) (Command, error) {
	phase, rest, ok := cutWord(line)
	if !ok {
		return Command{}, fmt.Errorf("missing phase in %q", line)
	}
	switch phase {
	case "given", "when", "then", "and":
	default:
		return Command{}, fmt.Errorf("unknown phase %q", phase)
	}

	opAndPayload := strings.SplitN(rest, ":", 2)
	opField := strings.TrimSpace(opAndPayload[0])
	opParts := strings.Fields(opField)
	if len(opParts) == 0 {
		return Command{}, fmt.Errorf("missing command in %q", line)
	}
	op := opParts[0]
	args := opParts[1:]

	if assertionOnlyPhases[phase] && !strings.HasPrefix(op, "expect-") {
		return Command{}, fmt.Errorf("%s may only carry expect-* commands, got %q", phase, op)
	}
	if !assertionOnlyPhases[phase] && strings.HasPrefix(op, "expect-") {
		return Command{}, fmt.Errorf("%s may not carry expect-* commands", phase)
	}

	var payload []byte
	if len(opAndPayload) == 2 {
		unescaped, err := unescape(strings.TrimPrefix(opAndPayload[1], " "))
		if err != nil {
			return Command{}, err
		}
		payload = unescaped
	}

	return Command{Phase: phase, Op: op, Payload: payload, Args: args}, nil
}

func cutWord(s string) (word, rest string, ok bool) {
	s = strings.TrimLeft(s, " ")
	i := strings.IndexByte(s, ' ')
	if i < 0 {
		return s, "", s != ""
	}
	return s[:i], s[i+1:], true
}

// unescape expands \n \r \t \\ and \xHH sequences in a payload string.
func unescape(s string) ([]byte, error) {
	var b []byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			b = append(b, c)
			continue
		}
		if i+1 >= len(s) {
			return nil, fmt.Errorf("trailing backslash in payload %q", s)
		}
		switch s[i+1] {
		case 'n':
			b = append(b, '\n')
			i++
		case 'r':
			b = append(b, '\r')
			i++
		case 't':
			b = append(b, '\t')
			i++
		case '\\':
			b = append(b, '\\')
			i++
		case 'x':
			if i+3 >= len(s) {
				return nil, fmt.Errorf("truncated \\x escape in payload %q", s)
			}
			n, err := strconv.ParseUint(s[i+2:i+4], 16, 8)
			if err != nil {
				return nil, fmt.Errorf("bad \\x escape in payload %q: %w", s, err)
			}
			b = append(b, byte(n))
			i += 3
		default:
			return nil, fmt.Errorf("unknown escape \\%c in payload %q", s[i+1], s)
		}
	}
	return b, nil
}

// TB is the subset of *testing.T a Run caller needs.
type TB interface {
	Helper()
	Fatalf(format string, args ...any)
}

// Harness is the operations a scripted scenario drives; package tests
// implement it against their own App/view/speech fakes.
type Harness interface {
	Reset()
	Stdin(data []byte) error
	PtyStdout(data []byte) error
	Settled() bool
	Tick(ms int64) error
	Advance(ms int64)
	Finalize() error
	Resize(rows, cols int) error
	PtyStdin() []byte
	Stdout() []byte
	Speak() []string
	Stops() int
}

// Run executes every scenario against h, failing t with a structured
// dump of remaining output/speech on the first mismatch in a scenario.
func Run(t TB, h Harness, scenarios []Scenario) {
	t.Helper()
	for _, sc := range scenarios {
		h.Reset()
		for _, cmd := range sc.Commands {
			if err := execute(h, cmd); err != nil {
				t.Fatalf("scenario %q: %s: %v\nremaining pty-stdin=%q stdout=%q speak=%v stops=%d",
					sc.Name, cmd.Op, err, h.PtyStdin(), h.Stdout(), h.Speak(), h.Stops())
			}
		}
	}
}

func execute(h Harness, cmd Command) error {
	switch cmd.Op {
	case "stdin":
		return h.Stdin(cmd.Payload)
	case "pty-stdout":
		return h.PtyStdout(cmd.Payload)
	case "settled":
		if !h.Settled() {
			return fmt.Errorf("expected settled")
		}
		return nil
	case "tick":
		ms, err := intArg(cmd.Args, 0)
		if err != nil {
			return err
		}
		return h.Tick(ms)
	case "advance":
		ms, err := intArg(cmd.Args, 0)
		if err != nil {
			return err
		}
		h.Advance(ms)
		return nil
	case "finalize":
		return h.Finalize()
	case "resize":
		rows, err := intArg(cmd.Args, 0)
		if err != nil {
			return err
		}
		cols, err := intArg(cmd.Args, 1)
		if err != nil {
			return err
		}
		return h.Resize(int(rows), int(cols))
	case "expect-pty-stdin":
		got := h.PtyStdin()
		if string(got) != string(cmd.Payload) {
			return fmt.Errorf("pty-stdin = %q; want %q", got, cmd.Payload)
		}
		return nil
	case "expect-stdout":
		got := h.Stdout()
		if string(got) != string(cmd.Payload) {
			return fmt.Errorf("stdout = %q; want %q", got, cmd.Payload)
		}
		return nil
	case "expect-stdout-contains":
		got := h.Stdout()
		if !strings.Contains(string(got), string(cmd.Payload)) {
			return fmt.Errorf("stdout = %q; want contains %q", got, cmd.Payload)
		}
		return nil
	case "expect-speak":
		spoken := h.Speak()
		if len(spoken) == 0 || spoken[len(spoken)-1] != string(cmd.Payload) {
			return fmt.Errorf("last spoken = %v; want %q", spoken, cmd.Payload)
		}
		return nil
	case "expect-speak-contains":
		spoken := h.Speak()
		for _, s := range spoken {
			if strings.Contains(s, string(cmd.Payload)) {
				return nil
			}
		}
		return fmt.Errorf("spoken = %v; want one containing %q", spoken, cmd.Payload)
	case "expect-stops":
		want, err := intArg(cmd.Args, 0)
		if err != nil {
			return err
		}
		if int64(h.Stops()) != want {
			return fmt.Errorf("stops = %d; want %d", h.Stops(), want)
		}
		return nil
	default:
		return fmt.Errorf("unknown command %q", cmd.Op)
	}
}

func intArg(args []string, i int) (int64, error) {
	if i >= len(args) {
		return 0, fmt.Errorf("missing argument %d", i)
	}
	n, err := strconv.ParseInt(args[i], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad integer argument %q: %w", args[i], err)
	}
	return n, nil
}
