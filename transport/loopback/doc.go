// Package loopback provides an in-memory implementation of the transport
// contract. The near end behaves like a UART owned by the console engine;
// the far end is driven by a test or example acting as the remote terminal:
// it feeds received bytes one notification at a time and observes completed
// writes.
//
// Fault injection covers the transport error taxonomy: failed transmissions
// (WriteSettled(false)), synchronous write errors, and suppressed status
// notifications for exercising the bounded status wait.
package loopback
