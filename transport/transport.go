package transport

import "errors"

// Direction selects which half of the half-duplex link is enabled.
type Direction int

const (
	// Receive enables the receiver and disables the transmitter.
	Receive Direction = iota
	// Transmit enables the transmitter and disables the receiver.
	Transmit
)

// String returns the direction name for logs and audit metadata.
func (d Direction) String() string {
	switch d {
	case Receive:
		return "receive"
	case Transmit:
		return "transmit"
	default:
		return "unknown"
	}
}

// TxStatus reports how a transmission settled. Exactly one status is
// delivered per write attempt.
type TxStatus int

const (
	// TxCompleted means the buffered write physically left the transport.
	TxCompleted TxStatus = iota
	// TxFailed means the transport reported a transmission error.
	TxFailed
)

// String returns the status name for logs and audit metadata.
func (s TxStatus) String() string {
	switch s {
	case TxCompleted:
		return "completed"
	case TxFailed:
		return "failed"
	default:
		return "unknown"
	}
}

var (
	// ErrClosed is returned by operations on a closed transport.
	ErrClosed = errors.New("transport closed")
	// ErrCallbacksRegistered is returned when RegisterCallbacks is called twice.
	ErrCallbacksRegistered = errors.New("transport callbacks already registered")
	// ErrNotEnabled is returned by Write before Enable succeeded.
	ErrNotEnabled = errors.New("transport not enabled")
)

// Callbacks are the notifications a transport delivers from completion
// context. Neither carries a payload: ByteReceived announces that one byte
// can be fetched with ReadByte, WriteSettled announces that the pending
// write finished (ok=false on a transmission error).
type Callbacks struct {
	ByteReceived func()
	WriteSettled func(ok bool)
}

// Transport is an exclusively-owned byte-level half-duplex device.
//
// The owner must bracket every Write between SetDirection(Transmit) and, only
// after the matching WriteSettled notification, SetDirection(Receive). Bytes
// arriving while in Transmit mode are not guaranteed to be captured.
type Transport interface {
	// RegisterCallbacks installs the notification handlers. Must be called
	// exactly once, before Enable.
	RegisterCallbacks(cb Callbacks) error

	// Enable starts the device. Notifications may be delivered as soon as
	// Enable returns.
	Enable() error

	// ReadByte fetches one received byte without blocking. ok is false when
	// no byte is available.
	ReadByte() (b byte, ok bool)

	// Write starts a buffered transmission of p and returns without waiting
	// for completion. At most one write may be in flight; completion is
	// signalled through WriteSettled.
	Write(p []byte) error

	// SetDirection switches the physical enable lines. Idempotent.
	SetDirection(d Direction)

	// Close stops the device and releases it. No notifications are
	// delivered after Close returns.
	Close() error
}
