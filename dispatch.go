package goConsole

import (
	"errors"
	"strings"
	"time"

	"github.com/MrEthical07/goConsole/transport"
)

var errWriteRejected = errors.New("transport rejected write")
var errWriteFailed = errors.New("transmission failed")

// dispatchLine runs one command line through the interpreter and streams
// every output chunk over the transport. The loop writes at most one chunk
// at a time and blocks on its status event before producing the next, so a
// second write can never overlap the first. On any write failure or status
// timeout the in-progress handler is aborted and the remaining chunks are
// discarded.
//
// Whatever happens, the link is back in receive mode and the line buffer
// is clear when dispatchLine returns.
func (c *Console) dispatchLine(input string) {
	c.metricInc(MetricCommandsDispatched)
	c.emitAudit(auditEventCommandDispatched, true, nil, func() map[string]string {
		name, _, _ := strings.Cut(strings.TrimSpace(input), " ")
		return map[string]string{"command": name}
	})

	defer func() {
		c.direction.Set(transport.Receive)
		c.assembler.Reset()
	}()

	for {
		// A handler yielding empty chunks forever must not pin the session
		// task past shutdown.
		if c.ctx.Err() != nil {
			c.interp.Abort()
			return
		}

		n, more := c.interp.Process(input, c.response)
		if n > 0 {
			if err := c.writeChunk(c.response[:n]); err != nil {
				c.interp.Abort()
				return
			}
		}
		if !more {
			return
		}
	}
}

// sendMessage transmits a fixed engine message (prompt, auth result). It
// follows the same one-write-one-status discipline as command output.
func (c *Console) sendMessage(msg string) {
	if msg == "" {
		return
	}

	defer c.direction.Set(transport.Receive)

	_ = c.writeChunk([]byte(msg))
}

// writeChunk performs exactly one transmission: flip to transmit, write,
// then consume the matching status event. The status wait is bounded by
// the configured write timeout.
func (c *Console) writeChunk(p []byte) error {
	c.direction.Set(transport.Transmit)

	start := time.Now()
	if err := c.transport.Write(p); err != nil {
		c.metricInc(MetricWriteFailure)
		c.emitAudit(auditEventWriteError, false, err, nil)
		return errWriteRejected
	}

	st, ok := c.status.PopTimeout(c.ctx, c.config.Response.WriteTimeout)
	if !ok {
		c.metricInc(MetricWriteTimeout)
		c.emitAudit(auditEventWriteTimeout, false, nil, func() map[string]string {
			return map[string]string{"timeout": c.config.Response.WriteTimeout.String()}
		})
		return errWriteFailed
	}

	c.metricObserve(MetricWriteLatency, time.Since(start))

	if st == transport.TxFailed {
		c.metricInc(MetricWriteFailure)
		c.emitAudit(auditEventWriteError, false, errWriteFailed, nil)
		return errWriteFailed
	}

	c.metricInc(MetricChunksWritten)
	return nil
}
