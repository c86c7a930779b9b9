package goConsole

// run is the session task. It is the sole consumer of the inbound queue
// and the sole mutator of the assembler, the interpreter, and the
// authentication state. One state transition per loop iteration; every
// state either consumes a byte or performs bounded work, so cancellation
// is observed promptly.
func (c *Console) run() {
	defer c.wg.Done()

	for c.ctx.Err() == nil {
		switch c.auth.State() {
		case StateAwaitingPrompt:
			c.metricInc(MetricAuthPrompts)
			c.sendMessage(c.config.Auth.Prompt)
			c.assembler.Reset()
			c.auth.setState(StateCollecting)

		case StateCollecting:
			completed, ok := c.collectByte()
			if !ok {
				return
			}
			if completed {
				c.auth.setState(StateVerifying)
			}

		case StateVerifying:
			attempt := c.pendingLine
			c.pendingLine = ""
			if c.auth.verify(attempt) {
				c.metricInc(MetricAuthSuccess)
				c.emitAudit(auditEventAuthSuccess, true, nil, nil)
				c.sendMessage(c.config.Auth.SuccessMessage)
				c.auth.setState(StateAuthenticated)
			} else {
				c.metricInc(MetricAuthFailure)
				c.emitAudit(auditEventAuthFailure, false, nil, func() map[string]string {
					return map[string]string{"failures": formatUint(c.auth.Failures())}
				})
				c.auth.setState(StateRejected)
			}

		case StateRejected:
			c.delay.wait(c.ctx)
			c.sendMessage(c.config.Auth.FailureMessage)
			c.auth.setState(StateAwaitingPrompt)

		case StateAuthenticated:
			completed, ok := c.collectByte()
			if !ok {
				return
			}
			if completed {
				dispatched := c.pendingLine
				c.pendingLine = ""
				c.dispatchLine(dispatched)
			}

		default:
			// Unknown state: fail closed back through the rejected path.
			c.auth.setState(StateRejected)
		}
	}
}

// collectByte pops one inbound byte and feeds the assembler. It returns
// completed=true when the byte terminated a line (the text is stashed in
// pendingLine), and ok=false when the context ended.
func (c *Console) collectByte() (completed, ok bool) {
	b, ok := c.inbound.Pop(c.ctx)
	if !ok {
		return false, false
	}

	before := c.assembler.Overflowed()
	text, done := c.assembler.Feed(b)
	if c.assembler.Overflowed() > before {
		c.metricInc(MetricLineOverflow)
	}
	if !done {
		return false, true
	}

	c.metricInc(MetricLinesAssembled)
	c.pendingLine = text
	return true, true
}
