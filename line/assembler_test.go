package line

import "testing"

func feedAll(t *testing.T, a *Assembler, input string) (string, bool) {
	t.Helper()
	var (
		last     string
		complete bool
	)
	for i := 0; i < len(input); i++ {
		last, complete = a.Feed(input[i])
	}
	return last, complete
}

func TestNewRejectsTinyCapacity(t *testing.T) {
	for _, capacity := range []int{-1, 0, 1} {
		if _, err := New(capacity); err != ErrInvalidCapacity {
			t.Fatalf("capacity %d: expected ErrInvalidCapacity, got %v", capacity, err)
		}
	}
}

func TestPlainLineTerminatedByCR(t *testing.T) {
	a, err := New(16)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	got, complete := feedAll(t, a, "hello\r")
	if !complete || got != "hello" {
		t.Fatalf("expected completed line %q, got %q (complete=%v)", "hello", got, complete)
	}
	if a.Cursor() != 0 {
		t.Fatalf("cursor should reset after completion, got %d", a.Cursor())
	}
}

func TestBackspaceRemovesPrecedingByte(t *testing.T) {
	a, err := New(16)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	got, complete := feedAll(t, a, "helx\x7flo\r")
	if !complete || got != "hello" {
		t.Fatalf("expected %q after backspace edit, got %q", "hello", got)
	}
}

func TestBackspaceAtEmptyLineIsNoOp(t *testing.T) {
	a, err := New(16)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if _, complete := a.Feed(DefaultBackspace); complete {
		t.Fatal("backspace must not complete a line")
	}
	if a.Cursor() != 0 {
		t.Fatalf("cursor moved on backspace at empty line: %d", a.Cursor())
	}
	if got := a.Pending(); got != "" {
		t.Fatalf("buffer changed on backspace at empty line: %q", got)
	}

	got, complete := feedAll(t, a, "ok\r")
	if !complete || got != "ok" {
		t.Fatalf("assembler corrupted after no-op backspace: %q", got)
	}
}

func TestOverflowBytesSilentlyDropped(t *testing.T) {
	a, err := New(5)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	got, complete := feedAll(t, a, "abcdefgh\r")
	if !complete {
		t.Fatal("expected completed line")
	}
	// Capacity 5 stores at most 4 bytes.
	if got != "abcd" {
		t.Fatalf("expected truncation to %q, got %q", "abcd", got)
	}
	if a.Overflowed() != 4 {
		t.Fatalf("expected 4 overflow drops, got %d", a.Overflowed())
	}
}

func TestBackspaceReopensFullBuffer(t *testing.T) {
	a, err := New(4)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	got, complete := feedAll(t, a, "abcd\x7fZ\r")
	if !complete || got != "abZ" {
		t.Fatalf("expected %q, got %q", "abZ", got)
	}
}

func TestEmptyLine(t *testing.T) {
	a, err := New(8)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	got, complete := a.Feed(DefaultTerminator)
	if !complete || got != "" {
		t.Fatalf("bare CR should complete an empty line, got %q (complete=%v)", got, complete)
	}
}

func TestResetClearsPendingInput(t *testing.T) {
	a, err := New(8)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	feedAll(t, a, "abc")
	a.Reset()
	if a.Cursor() != 0 || a.Pending() != "" {
		t.Fatalf("Reset left state behind: cursor=%d pending=%q", a.Cursor(), a.Pending())
	}

	got, complete := feedAll(t, a, "xy\r")
	if !complete || got != "xy" {
		t.Fatalf("line after Reset leaked prior bytes: %q", got)
	}
}

func TestConsecutiveLinesIndependent(t *testing.T) {
	a, err := New(16)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	first, complete := feedAll(t, a, "one\r")
	if !complete || first != "one" {
		t.Fatalf("first line: %q", first)
	}
	second, complete := feedAll(t, a, "two\r")
	if !complete || second != "two" {
		t.Fatalf("second line leaked state: %q", second)
	}
}
