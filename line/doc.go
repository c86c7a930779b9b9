// Package line assembles raw console bytes into terminated lines.
//
// The assembler owns a fixed-capacity buffer and a cursor. A carriage return
// completes the line; backspace (0x7F by default) removes the previous byte;
// bytes arriving at a full buffer are silently discarded. These are
// bounded-buffer policies, not errors: the link is lossy by design and the
// remote side is never signalled.
//
// # What this package must NOT do
//
//   - Be shared between goroutines (the session task is the sole caller).
//   - Grow the buffer after construction.
//   - Emit the internal NUL terminator to callers.
package line
