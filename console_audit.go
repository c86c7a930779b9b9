package goConsole

import (
	"strconv"
	"time"
)

const (
	auditEventSessionStarted    = "session_started"
	auditEventSessionClosed     = "session_closed"
	auditEventAuthSuccess       = "auth_success"
	auditEventAuthFailure       = "auth_failure"
	auditEventCommandDispatched = "command_dispatched"
	auditEventWriteError        = "write_error"
	auditEventWriteTimeout      = "write_timeout"
)

func (c *Console) emitAudit(
	eventType string,
	success bool,
	err error,
	metadataBuilder func() map[string]string,
) {
	if c == nil || c.audit == nil {
		return
	}

	var metadata map[string]string
	if metadataBuilder != nil {
		metadata = metadataBuilder()
	}

	event := AuditEvent{
		Timestamp: time.Now().UTC(),
		EventType: eventType,
		SessionID: c.sessionID,
		Port:      c.portLabel,
		Peer:      c.peerLabel,
		Success:   success,
		Metadata:  metadata,
	}
	if err != nil {
		event.Error = err.Error()
	}

	c.audit.Emit(c.ctx, event)
}

func formatUint(v uint64) string {
	return strconv.FormatUint(v, 10)
}
