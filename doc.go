// Package goConsole provides an interrupt-driven serial command console
// engine. Transport callbacks hand received bytes and transmit-status
// events to bounded queues, and a single session task assembles lines,
// gates them behind a password state machine, and streams command output
// back over the half-duplex link one chunk at a time.
//
// # Architecture boundaries
//
// goConsole is the public surface. It exposes [Console], [Builder],
// [Config], and value types (MetricsSnapshot, SessionInfo, AuditEvent).
// Primitives live in subpackages (command, line, queue, secret,
// transport) and never import goConsole back.
//
// Ownership is strict: transport callbacks touch only the two bounded
// queues, while the line buffer, cursor, and authentication state are
// mutated exclusively by the session task started in [Builder.Build]. No
// locks guard those fields because no second writer exists.
//
// # What this package must NOT do
//
//   - Block inside a transport callback. A callback performs one
//     non-blocking queue push and returns.
//   - Issue a second write before the prior transmission's status event
//     has been consumed.
//   - Re-enter receive mode while a transmission is in flight.
//
// Dropped inbound bytes and discarded line-overflow bytes are bounded
// buffer policy, not errors; both are counted. A status-queue overflow
// means the single-outstanding-transmission invariant broke, and the
// engine halts by panicking rather than continuing inconsistently.
package goConsole
