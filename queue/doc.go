// Package queue provides the bounded, lossy FIFOs that carry data between
// interrupt-context transport callbacks and the single session task.
//
// # Handoff contract
//
// TryPush is the only operation permitted from callback context: it never
// blocks, never allocates, and reports false (incrementing the dropped
// counter) when the queue is full. Pop and PopTimeout are consumer-side
// blocking operations and must only be called from the session task.
//
// # What this package must NOT do
//
//   - Import goConsole or any of its subpackages (no upward imports).
//   - Grow capacity after construction.
//   - Apply backpressure to producers.
package queue
