package testscript

import (
	"fmt"
	"testing"
)

func TestParseSplitsScenariosAndUnescapesPayloads(t *testing.T) {
	src := `
Scenario: basic echo
given stdin: hi\n
then expect-pty-stdin: hi\n
and expect-stdout-contains: hi

Scenario: hex byte
when pty-stdout: \x1B[2J
then expect-stdout: \x1B[2J
`
	scenarios, err := Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	if len(scenarios) != 2 {
		t.Fatalf("len(scenarios) = %d; want 2", len(scenarios))
	}
	if scenarios[0].Name != "basic echo" {
		t.Fatalf("name = %q", scenarios[0].Name)
	}
	if len(scenarios[0].Commands) != 3 {
		t.Fatalf("commands = %+v", scenarios[0].Commands)
	}
	if string(scenarios[0].Commands[0].Payload) != "hi\n" {
		t.Fatalf("payload = %q", scenarios[0].Commands[0].Payload)
	}
	if string(scenarios[1].Commands[0].Payload) != "\x1B[2J" {
		t.Fatalf("hex payload = %q", scenarios[1].Commands[0].Payload)
	}
}

func TestParseRejectsExpectOnGivenWhen(t *testing.T) {
	_, err := Parse("Scenario: bad\ngiven expect-stdout: nope\n")
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestParseRejectsNonExpectOnThen(t *testing.T) {
	_, err := Parse("Scenario: bad\nthen stdin: nope\n")
	if err == nil {
		t.Fatal("expected error")
	}
}

// fakeHarness is a minimal in-memory Harness for exercising Run.
type fakeHarness struct {
	ptyStdin []byte
	stdout   []byte
	speak    []string
	stops    int
	settled  bool
}

func (f *fakeHarness) Reset() {
	*f = fakeHarness{}
}
func (f *fakeHarness) Stdin(data []byte) error {
	f.ptyStdin = append(f.ptyStdin, data...)
	return nil
}
func (f *fakeHarness) PtyStdout(data []byte) error {
	f.stdout = append(f.stdout, data...)
	return nil
}
func (f *fakeHarness) Settled() bool        { return f.settled }
func (f *fakeHarness) Tick(ms int64) error  { return nil }
func (f *fakeHarness) Advance(ms int64)     { f.settled = true }
func (f *fakeHarness) Finalize() error      { return nil }
func (f *fakeHarness) Resize(r, c int) error { return nil }
func (f *fakeHarness) PtyStdin() []byte     { return f.ptyStdin }
func (f *fakeHarness) Stdout() []byte       { return f.stdout }
func (f *fakeHarness) Speak() []string      { return f.speak }
func (f *fakeHarness) Stops() int           { return f.stops }

type fakeTB struct {
	failed string
}

func (f *fakeTB) Helper() {}
func (f *fakeTB) Fatalf(format string, args ...any) {
	f.failed = fmt.Sprintf(format, args...)
}

func TestRunDrivesHarnessAndReportsMismatch(t *testing.T) {
	scenarios, err := Parse(`
Scenario: echo round trip
given stdin: hi
then expect-pty-stdin: hi

Scenario: mismatch reported
when pty-stdout: hello
then expect-stdout: goodbye
`)
	if err != nil {
		t.Fatal(err)
	}

	h := &fakeHarness{}
	tb := &fakeTB{}
	Run(tb, h, scenarios[:1])
	if tb.failed != "" {
		t.Fatalf("unexpected failure: %s", tb.failed)
	}

	tb2 := &fakeTB{}
	Run(tb2, h, scenarios[1:])
	if tb2.failed == "" {
		t.Fatal("expected a reported mismatch")
	}
}
