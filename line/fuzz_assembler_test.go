package line

import (
	"bytes"
	"testing"
)

// referenceAssemble applies the documented edit semantics naively: bytes are
// appended left to right, each backspace removes the preceding byte, input
// past capacity-1 is discarded, and the first terminator completes the line.
func referenceAssemble(input []byte, capacity int) (string, bool) {
	var out []byte
	for _, b := range input {
		switch b {
		case DefaultTerminator:
			return string(out), true
		case DefaultBackspace:
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
		default:
			if len(out) < capacity-1 {
				out = append(out, b)
			}
		}
	}
	return string(out), false
}

func FuzzFeedMatchesReferenceModel(f *testing.F) {
	f.Add([]byte("hello\r"))
	f.Add([]byte("helx\x7flo\r"))
	f.Add([]byte("\x7f\x7f\r"))
	f.Add([]byte("1234\r"))
	f.Add(bytes.Repeat([]byte{'a'}, 300))

	f.Fuzz(func(t *testing.T, input []byte) {
		const capacity = 32

		a, err := New(capacity)
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}

		var (
			got      string
			complete bool
		)
		for _, b := range input {
			if got, complete = a.Feed(b); complete {
				break
			}
		}

		want, wantComplete := referenceAssemble(input, capacity)
		if complete != wantComplete {
			t.Fatalf("completion mismatch: got %v want %v", complete, wantComplete)
		}
		if complete && got != want {
			t.Fatalf("line mismatch: got %q want %q", got, want)
		}
		if !complete && a.Pending() != want {
			t.Fatalf("pending mismatch: got %q want %q", a.Pending(), want)
		}
		if a.Cursor() > capacity-1 {
			t.Fatalf("cursor %d exceeded capacity-1", a.Cursor())
		}
	})
}
