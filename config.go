package goConsole

import "time"

// QueueConfig defines a public type used by goConsole APIs.
//
// QueueConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type QueueConfig struct {
	// Capacity bounds both the inbound byte queue and the transmit-status
	// queue. Bytes arriving while the inbound queue is full are dropped.
	Capacity int
}

// LineConfig defines a public type used by goConsole APIs.
//
// LineConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type LineConfig struct {
	// BufferSize is the fixed line buffer size. One slot is reserved for
	// the terminator, so a line holds at most BufferSize-1 bytes.
	BufferSize int
	// Terminator completes a line. Defaults to carriage return (0x0D).
	Terminator byte
	// Backspace deletes the byte before the cursor. Defaults to DEL (0x7F).
	Backspace byte
}

// ResponseConfig defines a public type used by goConsole APIs.
//
// ResponseConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type ResponseConfig struct {
	// BufferSize is the size of the reusable output chunk buffer handed to
	// command handlers.
	BufferSize int
	// WriteTimeout bounds the wait for a transmit-status event after each
	// write. On expiry the in-progress response is abandoned and the
	// console returns to receive mode.
	WriteTimeout time.Duration
}

// AuthConfig defines a public type used by goConsole APIs.
//
// AuthConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuthConfig struct {
	// Secret is the plaintext console password. Mutually exclusive with
	// SecretHash.
	Secret string
	// SecretHash is a PHC-format argon2id hash of the console password, as
	// produced by the secret package. Mutually exclusive with Secret.
	SecretHash string

	Prompt         string
	SuccessMessage string
	FailureMessage string

	// FailureDelay pauses the session task after a failed attempt before
	// the failure message is sent. Zero disables the delay.
	FailureDelay time.Duration
}

// AuditConfig defines a public type used by goConsole APIs.
//
// AuditConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	// DropIfFull makes Emit non-blocking; dropped events are counted.
	DropIfFull bool
}

// MetricsConfig defines a public type used by goConsole APIs.
//
// MetricsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsConfig struct {
	Enabled bool
	// EnableLatencyHistograms adds a write-latency histogram on top of the
	// counters.
	EnableLatencyHistograms bool
}

// Config defines a public type used by goConsole APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	Queue    QueueConfig
	Line     LineConfig
	Response ResponseConfig
	Auth     AuthConfig
	Audit    AuditConfig
	Metrics  MetricsConfig
}

// DefaultConfig describes the defaultconfig operation and its observable behavior.
//
// DefaultConfig returns the production defaults: 10-element queues, a
// 256-byte line buffer with CR/DEL editing, a 256-byte response buffer,
// and a one second write timeout. Auth carries no secret; the caller must
// set Secret or SecretHash before Build.
func DefaultConfig() Config {
	return defaultConfig()
}

func defaultConfig() Config {
	return Config{
		Queue: QueueConfig{
			Capacity: 10,
		},
		Line: LineConfig{
			BufferSize: 256,
			Terminator: 0x0D,
			Backspace:  0x7F,
		},
		Response: ResponseConfig{
			BufferSize:   256,
			WriteTimeout: time.Second,
		},
		Auth: AuthConfig{
			Prompt:         "Enter password:",
			SuccessMessage: "Authentication successful!\r\n",
			FailureMessage: "Authentication error. Try again.\r\n",
		},
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 1024,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled: false,
		},
	}
}

// cloneConfig returns an independent copy. Config carries no reference
// types today, but Build snapshots through here so a caller mutating its
// Config afterwards cannot reach engine state.
func cloneConfig(cfg Config) Config {
	return cfg
}

// Validate describes the validate operation and its observable behavior.
//
// Validate may return an error when input validation, dependency calls, or security checks fail.
// Validate does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c Config) Validate() error {
	if c.Queue.Capacity <= 0 {
		return ErrInvalidQueueCapacity
	}
	if c.Line.BufferSize < 2 {
		return ErrInvalidLineBuffer
	}
	if c.Line.Terminator == c.Line.Backspace {
		return ErrInvalidControlBytes
	}
	if c.Response.BufferSize <= 0 {
		return ErrInvalidResponseBuffer
	}
	if c.Response.WriteTimeout <= 0 {
		return ErrInvalidWriteTimeout
	}
	if c.Auth.Secret == "" && c.Auth.SecretHash == "" {
		return ErrSecretRequired
	}
	if c.Auth.Secret != "" && c.Auth.SecretHash != "" {
		return ErrSecretConflict
	}
	return nil
}
