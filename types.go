package goConsole

import "time"

// AuthState defines a public type used by goConsole APIs.
//
// AuthState values are produced by the session task's authentication state
// machine and observed concurrently through [Console.AuthState].
type AuthState int32

const (
	// StateAwaitingPrompt is an exported constant or variable used by the console engine.
	StateAwaitingPrompt AuthState = iota
	// StateCollecting is an exported constant or variable used by the console engine.
	StateCollecting
	// StateVerifying is an exported constant or variable used by the console engine.
	StateVerifying
	// StateAuthenticated is an exported constant or variable used by the console engine.
	StateAuthenticated
	// StateRejected is an exported constant or variable used by the console engine.
	StateRejected
)

// String returns the state name used in logs and audit metadata.
func (s AuthState) String() string {
	switch s {
	case StateAwaitingPrompt:
		return "awaiting_prompt"
	case StateCollecting:
		return "collecting"
	case StateVerifying:
		return "verifying"
	case StateAuthenticated:
		return "authenticated"
	case StateRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// SessionInfo defines a public type used by goConsole APIs.
//
// SessionInfo is a point-in-time snapshot of the single console session;
// counters may advance between the snapshot and its use.
type SessionInfo struct {
	SessionID     string
	Port          string
	StartedAt     time.Time
	AuthState     AuthState
	BytesDropped  uint64
	LineOverflows uint64
	AuthFailures  uint64
}
