package goConsole

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MrEthical07/goConsole/command"
	"github.com/MrEthical07/goConsole/line"
	"github.com/MrEthical07/goConsole/queue"
	"github.com/MrEthical07/goConsole/transport"
)

// Console defines a public type used by goConsole APIs.
//
// Console is the running engine for one serial session. Construct it with
// [Builder.Build]; Build wires the transport callbacks, enables reception,
// and starts the session task. All console I/O then happens on that task.
type Console struct {
	config    Config
	transport transport.Transport
	registry  *command.Registry
	interp    *command.Interpreter

	inbound *queue.Queue[byte]
	status  *queue.Queue[transport.TxStatus]

	assembler *line.Assembler
	direction *directionController
	auth      *authFSM
	delay     *authDelay

	audit   *auditDispatcher
	metrics *Metrics

	// response is the reusable output chunk buffer. Only the session task
	// touches it.
	response    []byte
	pendingLine string

	sessionID string
	portLabel string
	peerLabel string
	startedAt time.Time

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	closed atomic.Bool
}

// onByteReceived runs in transport callback context. It moves exactly one
// byte from the device into the inbound queue and returns; a full queue
// drops the byte and counts it.
func (c *Console) onByteReceived() {
	b, ok := c.transport.ReadByte()
	if !ok {
		return
	}
	if c.inbound.TryPush(b) {
		c.metricInc(MetricBytesReceived)
	} else {
		c.metricInc(MetricBytesDropped)
	}
}

// onWriteSettled runs in transport callback context after each write
// completes or fails. The status queue can only overflow if a second write
// was issued before the first settled, which the dispatch loop forbids, so
// overflow here is treated as unrecoverable.
func (c *Console) onWriteSettled(ok bool) {
	st := transport.TxCompleted
	if !ok {
		st = transport.TxFailed
	}
	if !c.status.TryPush(st) {
		panic("goConsole: status queue overflow; a write was issued before the prior one settled")
	}
}

// Close stops the session task, closes the transport, and flushes the
// audit dispatcher. Close is idempotent; subsequent calls return
// [ErrConsoleClosed].
func (c *Console) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return ErrConsoleClosed
	}

	c.cancel()
	c.wg.Wait()

	err := c.transport.Close()

	c.emitAudit(auditEventSessionClosed, true, nil, func() map[string]string {
		return map[string]string{
			"bytes_dropped":  formatUint(c.inbound.Dropped()),
			"line_overflows": formatUint(c.assembler.Overflowed()),
			"auth_failures":  formatUint(c.auth.Failures()),
		}
	})
	c.audit.Close()

	return err
}

// AuthState returns the current authentication state. Safe from any
// goroutine.
func (c *Console) AuthState() AuthState {
	return c.auth.State()
}

// Session describes the session operation and its observable behavior.
//
// Session returns a point-in-time snapshot of the running session.
func (c *Console) Session() SessionInfo {
	return SessionInfo{
		SessionID:     c.sessionID,
		Port:          c.portLabel,
		StartedAt:     c.startedAt,
		AuthState:     c.auth.State(),
		BytesDropped:  c.inbound.Dropped(),
		LineOverflows: c.assembler.Overflowed(),
		AuthFailures:  c.auth.Failures(),
	}
}

// MetricsSnapshot describes the metricssnapshot operation and its observable behavior.
//
// MetricsSnapshot may return an error when input validation, dependency calls, or security checks fail.
// MetricsSnapshot does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Console) MetricsSnapshot() MetricsSnapshot {
	return c.metrics.Snapshot()
}

// AuditDropped returns the number of audit events discarded because the
// dispatcher buffer was full.
func (c *Console) AuditDropped() uint64 {
	return c.audit.Dropped()
}

func (c *Console) metricInc(id MetricID) {
	c.metrics.Inc(id)
}

func (c *Console) metricObserve(id MetricID, d time.Duration) {
	c.metrics.Observe(id, d)
}
