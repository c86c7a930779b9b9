package loopback

import (
	"sync"
	"time"

	"github.com/MrEthical07/goConsole/transport"
)

// Loopback is an in-memory half-duplex transport. The console side uses the
// [transport.Transport] methods; the test side uses FeedString, NextWrite,
// and the fault-injection switches.
type Loopback struct {
	mu        sync.Mutex
	cb        transport.Callbacks
	wired     bool
	enabled   bool
	closed    bool
	direction transport.Direction
	rx        []byte

	failWriteCall  bool
	failWrites     bool
	suppressStatus bool

	writes chan []byte
}

// New creates a loopback transport. writeBuffer bounds how many completed
// writes NextWrite can lag behind before Write blocks the console side; 16
// is plenty for tests.
func New(writeBuffer int) *Loopback {
	if writeBuffer <= 0 {
		writeBuffer = 16
	}
	return &Loopback{
		writes: make(chan []byte, writeBuffer),
	}
}

// RegisterCallbacks implements [transport.Transport].
func (l *Loopback) RegisterCallbacks(cb transport.Callbacks) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return transport.ErrClosed
	}
	if l.wired {
		return transport.ErrCallbacksRegistered
	}
	l.cb = cb
	l.wired = true
	return nil
}

// Enable implements [transport.Transport].
func (l *Loopback) Enable() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return transport.ErrClosed
	}
	l.enabled = true
	return nil
}

// ReadByte implements [transport.Transport]. It pops the oldest fed byte.
func (l *Loopback) ReadByte() (byte, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.rx) == 0 {
		return 0, false
	}
	b := l.rx[0]
	l.rx = l.rx[1:]
	return b, true
}

// Write implements [transport.Transport]. The payload is copied, published
// to NextWrite, and settled through the WriteSettled callback unless status
// suppression is active.
func (l *Loopback) Write(p []byte) error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return transport.ErrClosed
	}
	if !l.enabled {
		l.mu.Unlock()
		return transport.ErrNotEnabled
	}
	if l.failWriteCall {
		l.mu.Unlock()
		return transport.ErrClosed
	}
	settle := l.cb.WriteSettled
	suppress := l.suppressStatus
	ok := !l.failWrites
	l.mu.Unlock()

	out := make([]byte, len(p))
	copy(out, p)
	l.writes <- out

	if settle != nil && !suppress {
		settle(ok)
	}
	return nil
}

// SetDirection implements [transport.Transport].
func (l *Loopback) SetDirection(d transport.Direction) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.direction = d
}

// Close implements [transport.Transport].
func (l *Loopback) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
	l.enabled = false
	return nil
}

// Direction reports the currently enabled half of the link.
func (l *Loopback) Direction() transport.Direction {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.direction
}

// FeedString delivers each byte of s as a separate byte-received
// notification, the way a UART receiver interrupt would.
func (l *Loopback) FeedString(s string) {
	for i := 0; i < len(s); i++ {
		l.FeedByte(s[i])
	}
}

// FeedByte delivers a single received byte notification.
func (l *Loopback) FeedByte(b byte) {
	l.mu.Lock()
	if l.closed || !l.enabled {
		l.mu.Unlock()
		return
	}
	l.rx = append(l.rx, b)
	notify := l.cb.ByteReceived
	l.mu.Unlock()

	if notify != nil {
		notify()
	}
}

// NextWrite returns the payload of the next completed write, waiting up to
// the given timeout.
func (l *Loopback) NextWrite(timeout time.Duration) ([]byte, bool) {
	select {
	case p := <-l.writes:
		return p, true
	case <-time.After(timeout):
		return nil, false
	}
}

// FailWrites makes subsequent writes settle with a transmission error.
func (l *Loopback) FailWrites(fail bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failWrites = fail
}

// FailWriteCalls makes subsequent Write calls return an error synchronously,
// before any status is produced.
func (l *Loopback) FailWriteCalls(fail bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failWriteCall = fail
}

// SuppressStatus drops WriteSettled notifications so the console's bounded
// status wait times out.
func (l *Loopback) SuppressStatus(suppress bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.suppressStatus = suppress
}
