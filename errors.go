package goConsole

import "errors"

// Startup errors. Build fails with exactly one of these so a caller can
// tell which initialization stage went wrong.
var (
	// ErrTransportUnavailable is an exported constant or variable used by the console engine.
	ErrTransportUnavailable = errors.New("transport unavailable")
	// ErrQueueAllocation is an exported constant or variable used by the console engine.
	ErrQueueAllocation = errors.New("queue allocation failed")
	// ErrCallbackRegistration is an exported constant or variable used by the console engine.
	ErrCallbackRegistration = errors.New("callback registration failed")
	// ErrTransportEnable is an exported constant or variable used by the console engine.
	ErrTransportEnable = errors.New("transport enable failed")
	// ErrSessionTaskStart is an exported constant or variable used by the console engine.
	ErrSessionTaskStart = errors.New("session task start failed")
)

// Runtime and configuration errors.
var (
	// ErrConsoleClosed is an exported constant or variable used by the console engine.
	ErrConsoleClosed = errors.New("console closed")
	// ErrSecretRequired is an exported constant or variable used by the console engine.
	ErrSecretRequired = errors.New("auth secret or secret hash required")
	// ErrSecretConflict is an exported constant or variable used by the console engine.
	ErrSecretConflict = errors.New("auth secret and secret hash are mutually exclusive")
	// ErrInvalidQueueCapacity is an exported constant or variable used by the console engine.
	ErrInvalidQueueCapacity = errors.New("queue capacity must be positive")
	// ErrInvalidLineBuffer is an exported constant or variable used by the console engine.
	ErrInvalidLineBuffer = errors.New("line buffer must hold at least two bytes")
	// ErrInvalidControlBytes is an exported constant or variable used by the console engine.
	ErrInvalidControlBytes = errors.New("terminator and backspace bytes must differ")
	// ErrInvalidResponseBuffer is an exported constant or variable used by the console engine.
	ErrInvalidResponseBuffer = errors.New("response buffer must be positive")
	// ErrInvalidWriteTimeout is an exported constant or variable used by the console engine.
	ErrInvalidWriteTimeout = errors.New("write timeout must be positive")
)
