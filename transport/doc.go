// Package transport defines the byte-level device contract the console
// engine drives: non-blocking single-byte reads, non-blocking buffered
// writes, half-duplex direction control, and the two callback notifications
// delivered from receive/transmit completion context.
//
// Implementations live in subpackages: serialport (a real UART via
// github.com/tarm/serial) and loopback (an in-memory pair for tests and
// examples).
//
// # Callback discipline
//
// Callbacks are the interrupt context of this design. They must complete in
// bounded, short time and may only hand data to interrupt-safe primitives;
// the console installs handlers that do exactly one queue push and return.
//
// # What this package must NOT do
//
//   - Import goConsole (no upward imports).
//   - Assemble lines, interpret commands, or buffer beyond a single write.
package transport
