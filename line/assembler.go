package line

import (
	"errors"
	"sync/atomic"
)

// Default edit bytes of the console protocol. Carriage return completes a
// line, DEL rubs out the previous byte.
const (
	DefaultTerminator = 0x0D
	DefaultBackspace  = 0x7F
)

// ErrInvalidCapacity is returned when an assembler is constructed with a
// capacity too small to hold a terminator.
var ErrInvalidCapacity = errors.New("line capacity must be >= 2")

// Assembler accumulates bytes into a fixed-capacity line buffer, applying
// backspace editing and terminator detection. It is owned exclusively by the
// session task and is not safe for concurrent use, except for the overflow
// counter, which may be read from any goroutine.
type Assembler struct {
	buf        []byte
	cursor     int
	terminator byte
	backspace  byte
	overflowed atomic.Uint64
}

// New creates an assembler with the given buffer capacity and the default
// terminator and backspace bytes.
func New(capacity int) (*Assembler, error) {
	return NewWithEdits(capacity, DefaultTerminator, DefaultBackspace)
}

// NewWithEdits creates an assembler with explicit terminator and backspace
// bytes. Capacity must leave room for the terminator position, so the
// longest storable line is capacity-1 bytes.
func NewWithEdits(capacity int, terminator, backspace byte) (*Assembler, error) {
	if capacity < 2 {
		return nil, ErrInvalidCapacity
	}
	return &Assembler{
		buf:        make([]byte, capacity),
		terminator: terminator,
		backspace:  backspace,
	}, nil
}

// Feed applies one received byte. When b completes a line, Feed returns the
// accumulated text (terminator excluded) and true, and the cursor resets for
// the next line. Otherwise it returns "", false.
//
// Editing rules, applied in order:
//   - terminator: complete the line at the cursor.
//   - backspace: step the cursor back one position and clear it; no-op when
//     the line is empty.
//   - anything else: stored at the cursor if room remains, silently dropped
//     at capacity-1 (the overflow counter increments).
func (a *Assembler) Feed(b byte) (string, bool) {
	switch b {
	case a.terminator:
		completed := string(a.buf[:a.cursor])
		a.Reset()
		return completed, true

	case a.backspace:
		if a.cursor > 0 {
			a.cursor--
			a.buf[a.cursor] = 0
		}
		return "", false

	default:
		if a.cursor < len(a.buf)-1 {
			a.buf[a.cursor] = b
			a.cursor++
		} else {
			a.overflowed.Add(1)
		}
		return "", false
	}
}

// Reset clears the buffer and returns the cursor to position zero.
func (a *Assembler) Reset() {
	for i := range a.buf[:a.cursor] {
		a.buf[i] = 0
	}
	a.cursor = 0
}

// Cursor returns the next write position, always in [0, capacity-1].
func (a *Assembler) Cursor() int {
	return a.cursor
}

// Cap returns the fixed buffer capacity.
func (a *Assembler) Cap() int {
	return len(a.buf)
}

// Pending returns a copy of the bytes accumulated for the current,
// not-yet-terminated line.
func (a *Assembler) Pending() string {
	return string(a.buf[:a.cursor])
}

// Overflowed returns how many bytes were discarded at a full buffer. Safe
// from any goroutine.
func (a *Assembler) Overflowed() uint64 {
	return a.overflowed.Load()
}
