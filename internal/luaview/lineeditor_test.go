package luaview

import "testing"

func TestInsertAndBackspace(t *testing.T) {
	e := New()
	for _, r := range "hello" {
		if e.HandleBytes([]byte{byte(r)}) != ActionChanged {
			t.Fatalf("expected ActionChanged inserting %q", r)
		}
	}
	if e.Input() != "hello" {
		t.Fatalf("Input() = %q; want %q", e.Input(), "hello")
	}
	if e.HandleBytes([]byte{0x7F}) != ActionChanged {
		t.Fatal("expected ActionChanged on backspace")
	}
	if e.Input() != "hell" {
		t.Fatalf("Input() = %q; want %q", e.Input(), "hell")
	}
}

func TestBackspaceAtStartBells(t *testing.T) {
	e := New()
	if e.HandleBytes([]byte{0x7F}) != ActionBell {
		t.Fatal("expected ActionBell backspacing an empty line")
	}
}

func TestArrowKeysMoveCursor(t *testing.T) {
	e := New()
	e.HandleBytes([]byte("abc"))
	if e.Cursor() != 3 {
		t.Fatalf("Cursor() = %d; want 3", e.Cursor())
	}
	e.HandleBytes([]byte("\x1B[D"))
	if e.Cursor() != 2 {
		t.Fatalf("Cursor() = %d; want 2 after left arrow", e.Cursor())
	}
	e.HandleBytes([]byte("\x1B[D"))
	e.HandleBytes([]byte("\x1B[D"))
	if e.Cursor() != 0 {
		t.Fatalf("Cursor() = %d; want 0", e.Cursor())
	}
	e.HandleBytes([]byte("\x1B[C"))
	if e.Cursor() != 1 {
		t.Fatalf("Cursor() = %d; want 1 after right arrow", e.Cursor())
	}
}

func TestHomeAndEnd(t *testing.T) {
	e := New()
	e.HandleBytes([]byte("abc"))
	e.HandleBytes([]byte("\x1B[H"))
	if e.Cursor() != 0 {
		t.Fatalf("Cursor() = %d; want 0 after CSI H", e.Cursor())
	}
	e.HandleBytes([]byte("\x1B[F"))
	if e.Cursor() != 3 {
		t.Fatalf("Cursor() = %d; want 3 after CSI F", e.Cursor())
	}
	e.HandleBytes([]byte("\x1B[1~"))
	if e.Cursor() != 0 {
		t.Fatalf("Cursor() = %d; want 0 after CSI 1~", e.Cursor())
	}
	e.HandleBytes([]byte("\x1B[4~"))
	if e.Cursor() != 3 {
		t.Fatalf("Cursor() = %d; want 3 after CSI 4~", e.Cursor())
	}
}

func TestCtrlAAndCtrlE(t *testing.T) {
	e := New()
	e.HandleBytes([]byte("abc"))
	e.HandleBytes([]byte{0x01})
	if e.Cursor() != 0 {
		t.Fatalf("Cursor() = %d; want 0 after Ctrl-A", e.Cursor())
	}
	e.HandleBytes([]byte{0x05})
	if e.Cursor() != 3 {
		t.Fatalf("Cursor() = %d; want 3 after Ctrl-E", e.Cursor())
	}
}

func TestInsertAtCursorSplitsLine(t *testing.T) {
	e := New()
	e.HandleBytes([]byte("ac"))
	e.HandleBytes([]byte("\x1B[D"))
	e.HandleBytes([]byte("b"))
	if e.Input() != "abc" {
		t.Fatalf("Input() = %q; want %q", e.Input(), "abc")
	}
}

func TestEscapeAloneDoesNothing(t *testing.T) {
	e := New()
	e.HandleBytes([]byte("ab"))
	if action := e.HandleBytes([]byte{0x1B}); action != ActionNone {
		t.Fatalf("Action = %v; want ActionNone for bare escape byte", action)
	}
	if e.Input() != "ab" {
		t.Fatalf("Input() = %q; want unchanged %q", e.Input(), "ab")
	}
}

func TestWordMotionAltBAltF(t *testing.T) {
	e := New()
	e.HandleBytes([]byte("foo bar"))
	e.HandleBytes([]byte("\x1Bb"))
	if e.Cursor() != 4 {
		t.Fatalf("Cursor() = %d; want 4 after Alt-b", e.Cursor())
	}
	e.HandleBytes([]byte("\x1Bb"))
	if e.Cursor() != 0 {
		t.Fatalf("Cursor() = %d; want 0 after second Alt-b", e.Cursor())
	}
	e.HandleBytes([]byte("\x1Bf"))
	if e.Cursor() != 3 {
		t.Fatalf("Cursor() = %d; want 3 after Alt-f", e.Cursor())
	}
}

func TestCtrlWErasesWordLeft(t *testing.T) {
	e := New()
	e.HandleBytes([]byte("foo bar"))
	e.HandleBytes([]byte{0x17})
	if e.Input() != "foo " {
		t.Fatalf("Input() = %q; want %q", e.Input(), "foo ")
	}
	e.HandleBytes([]byte{0x17})
	if e.Input() != "" {
		t.Fatalf("Input() = %q; want empty", e.Input())
	}
	if e.HandleBytes([]byte{0x17}) != ActionBell {
		t.Fatal("expected ActionBell erasing word on an empty line")
	}
}

func TestHistoryUpDownRestoresDraft(t *testing.T) {
	e := New()
	e.HandleBytes([]byte("first"))
	e.CommitHistory()
	e.Clear()
	e.HandleBytes([]byte("second"))
	e.CommitHistory()
	e.Clear()

	e.HandleBytes([]byte("draft"))
	if action := e.HandleBytes([]byte{0x10}); action != ActionChanged {
		t.Fatal("expected ActionChanged on Ctrl-P")
	}
	if e.Input() != "second" {
		t.Fatalf("Input() = %q; want %q", e.Input(), "second")
	}
	e.HandleBytes([]byte{0x10})
	if e.Input() != "first" {
		t.Fatalf("Input() = %q; want %q", e.Input(), "first")
	}
	if e.HandleBytes([]byte{0x10}) != ActionBell {
		t.Fatal("expected ActionBell at the oldest history entry")
	}
	e.HandleBytes([]byte{0x0E})
	e.HandleBytes([]byte{0x0E})
	if e.Input() != "draft" {
		t.Fatalf("Input() = %q; want restored draft %q", e.Input(), "draft")
	}
}

func TestSubmitReturnsActionSubmit(t *testing.T) {
	e := New()
	e.HandleBytes([]byte("1+1"))
	if action := e.HandleBytes([]byte("\r")); action != ActionSubmit {
		t.Fatalf("Action = %v; want ActionSubmit", action)
	}
}

func TestSS3ArrowsMirrorCSI(t *testing.T) {
	e := New()
	e.HandleBytes([]byte("abc"))
	e.HandleBytes([]byte("\x1BOD"))
	if e.Cursor() != 2 {
		t.Fatalf("Cursor() = %d; want 2 after SS3 D", e.Cursor())
	}
	e.HandleBytes([]byte("\x1BOC"))
	if e.Cursor() != 3 {
		t.Fatalf("Cursor() = %d; want 3 after SS3 C", e.Cursor())
	}
}

func TestInsertString(t *testing.T) {
	e := New()
	e.HandleBytes([]byte("ac"))
	e.HandleBytes([]byte("\x1B[D"))
	e.InsertString("XY")
	if e.Input() != "aXYc" {
		t.Fatalf("Input() = %q; want %q", e.Input(), "aXYc")
	}
}
