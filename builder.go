package goConsole

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrEthical07/goConsole/command"
	"github.com/MrEthical07/goConsole/line"
	"github.com/MrEthical07/goConsole/queue"
	"github.com/MrEthical07/goConsole/transport"
)

// Builder defines a public type used by goConsole APIs.
//
// Builder instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Builder struct {
	config    Config
	transport transport.Transport

	registry *command.Registry
	commands []command.Definition

	auditSink AuditSink
	baseCtx   context.Context

	built bool
}

// New describes the new operation and its observable behavior.
//
// New may return an error when input validation, dependency calls, or security checks fail.
// New does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig describes the withconfig operation and its observable behavior.
//
// WithConfig may return an error when input validation, dependency calls, or security checks fail.
// WithConfig does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithTransport describes the withtransport operation and its observable behavior.
//
// WithTransport may return an error when input validation, dependency calls, or security checks fail.
// WithTransport does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithTransport(tr transport.Transport) *Builder {
	b.transport = tr
	return b
}

// WithRegistry supplies a caller-assembled command registry. Build freezes
// it. Mutually additive with [Builder.WithCommands]; definitions given
// there are registered into this registry.
func (b *Builder) WithRegistry(r *command.Registry) *Builder {
	b.registry = r
	return b
}

// WithCommands describes the withcommands operation and its observable behavior.
//
// WithCommands may return an error when input validation, dependency calls, or security checks fail.
// WithCommands does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithCommands(defs ...command.Definition) *Builder {
	b.commands = append(b.commands, defs...)
	return b
}

// WithAuditSink describes the withauditsink operation and its observable behavior.
//
// WithAuditSink may return an error when input validation, dependency calls, or security checks fail.
// WithAuditSink does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	b.config.Audit.Enabled = true
	return b
}

// WithMetricsEnabled describes the withmetricsenabled operation and its observable behavior.
//
// WithMetricsEnabled may return an error when input validation, dependency calls, or security checks fail.
// WithMetricsEnabled does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// WithLatencyHistograms describes the withlatencyhistograms operation and its observable behavior.
//
// WithLatencyHistograms may return an error when input validation, dependency calls, or security checks fail.
// WithLatencyHistograms does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithLatencyHistograms(enabled bool) *Builder {
	b.config.Metrics.EnableLatencyHistograms = enabled
	return b
}

// WithContext sets the base context for the session task. Labels attached
// via [WithPortLabel] and [WithPeerLabel] flow into audit events, and
// cancelling the context stops the console.
func (b *Builder) WithContext(ctx context.Context) *Builder {
	b.baseCtx = ctx
	return b
}

// Build describes the build operation and its observable behavior.
//
// Build validates the configuration, allocates the queues and line buffer,
// registers the transport callbacks, enables reception, and starts the
// session task. Each initialization stage fails with its own sentinel
// error. A Builder builds at most once.
func (b *Builder) Build() (*Console, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	cfg := cloneConfig(b.config)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if b.transport == nil {
		return nil, ErrTransportUnavailable
	}

	// -------- COMMAND REGISTRY --------
	registry := b.registry
	if registry == nil {
		registry = command.NewRegistry()
	}

	for _, def := range b.commands {
		if err := registry.Register(def); err != nil {
			return nil, err
		}
	}

	registry.Freeze()

	// -------- QUEUES AND LINE BUFFER --------
	inbound, err := queue.New[byte](cfg.Queue.Capacity)
	if err != nil {
		return nil, fmt.Errorf("%w: inbound: %v", ErrQueueAllocation, err)
	}

	status, err := queue.New[transport.TxStatus](cfg.Queue.Capacity)
	if err != nil {
		return nil, fmt.Errorf("%w: status: %v", ErrQueueAllocation, err)
	}

	assembler, err := line.NewWithEdits(cfg.Line.BufferSize, cfg.Line.Terminator, cfg.Line.Backspace)
	if err != nil {
		return nil, fmt.Errorf("%w: line buffer: %v", ErrQueueAllocation, err)
	}

	baseCtx := b.baseCtx
	if baseCtx == nil {
		baseCtx = context.Background()
	}
	ctx, cancel := context.WithCancel(baseCtx)

	console := &Console{
		config:    cfg,
		transport: b.transport,
		registry:  registry,
		interp:    command.NewInterpreter(registry),
		inbound:   inbound,
		status:    status,
		assembler: assembler,
		auth:      newAuthFSM(cfg.Auth),
		delay:     newAuthDelay(cfg.Auth.FailureDelay),
		response:  make([]byte, cfg.Response.BufferSize),
		sessionID: uuid.NewString(),
		portLabel: portLabelFromContext(baseCtx),
		peerLabel: peerLabelFromContext(baseCtx),
		startedAt: time.Now().UTC(),
		ctx:       ctx,
		cancel:    cancel,
	}

	console.audit = newAuditDispatcher(cfg.Audit, b.auditSink)
	console.metrics = NewMetrics(cfg.Metrics)

	// -------- TRANSPORT WIRING --------
	cb := transport.Callbacks{
		ByteReceived: console.onByteReceived,
		WriteSettled: console.onWriteSettled,
	}
	if err := b.transport.RegisterCallbacks(cb); err != nil {
		cancel()
		console.audit.Close()
		return nil, fmt.Errorf("%w: %v", ErrCallbackRegistration, err)
	}

	// Reception must be armed before bytes can arrive.
	console.direction = newDirectionController(b.transport)

	if err := b.transport.Enable(); err != nil {
		cancel()
		console.audit.Close()
		return nil, fmt.Errorf("%w: %v", ErrTransportEnable, err)
	}

	// -------- SESSION TASK --------
	if ctx.Err() != nil {
		console.audit.Close()
		return nil, fmt.Errorf("%w: context already done", ErrSessionTaskStart)
	}

	console.wg.Add(1)
	go console.run()

	console.emitAudit(auditEventSessionStarted, true, nil, func() map[string]string {
		return map[string]string{
			"queue_capacity": formatUint(uint64(cfg.Queue.Capacity)),
			"line_buffer":    formatUint(uint64(cfg.Line.BufferSize)),
		}
	})

	b.built = true

	return console, nil
}
