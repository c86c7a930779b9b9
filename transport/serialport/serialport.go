package serialport

import (
	"errors"
	"sync"
	"time"

	"github.com/tarm/serial"

	"github.com/MrEthical07/goConsole/transport"
)

const defaultReadTimeout = 50 * time.Millisecond

var (
	// ErrPortNameRequired is returned by Open when no device path is given.
	ErrPortNameRequired = errors.New("serialport: port name required")
	// ErrInvalidBaud is returned by Open for a non-positive baud rate.
	ErrInvalidBaud = errors.New("serialport: baud rate must be > 0")
)

// Config describes the serial device and its direction-control hook.
type Config struct {
	// Name is the device path, e.g. "/dev/ttyUSB0".
	Name string
	// Baud is the line rate.
	Baud int
	// ReadTimeout bounds each poll of the receiver loop; it controls shutdown
	// latency, not data delivery. Defaults to 50ms.
	ReadTimeout time.Duration
	// DirectionFunc, when set, is invoked on every direction switch to drive
	// external transceiver enable lines. Nil means the link needs no
	// switching (e.g. full-duplex wiring used in half-duplex discipline).
	DirectionFunc func(transport.Direction)
}

// Port is a [transport.Transport] over a tarm/serial port.
type Port struct {
	cfg  Config
	port *serial.Port

	mu        sync.Mutex
	cb        transport.Callbacks
	wired     bool
	enabled   bool
	closed    bool
	direction transport.Direction
	rx        []byte

	stop chan struct{}
	wg   sync.WaitGroup
}

// Open opens the serial device. The port is not read from until Enable.
func Open(cfg Config) (*Port, error) {
	if cfg.Name == "" {
		return nil, ErrPortNameRequired
	}
	if cfg.Baud <= 0 {
		return nil, ErrInvalidBaud
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = defaultReadTimeout
	}

	p, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Name,
		Baud:        cfg.Baud,
		Parity:      serial.ParityNone,
		ReadTimeout: cfg.ReadTimeout,
	})
	if err != nil {
		return nil, err
	}

	return &Port{
		cfg:  cfg,
		port: p,
		stop: make(chan struct{}),
	}, nil
}

// RegisterCallbacks implements [transport.Transport].
func (p *Port) RegisterCallbacks(cb transport.Callbacks) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return transport.ErrClosed
	}
	if p.wired {
		return transport.ErrCallbacksRegistered
	}
	p.cb = cb
	p.wired = true
	return nil
}

// Enable implements [transport.Transport]. It starts the receiver loop.
func (p *Port) Enable() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return transport.ErrClosed
	}
	if p.enabled {
		return nil
	}
	p.enabled = true

	p.wg.Add(1)
	go p.readLoop()
	return nil
}

// readLoop emulates the receive interrupt: one byte per iteration, one
// notification per byte.
func (p *Port) readLoop() {
	defer p.wg.Done()

	buf := make([]byte, 1)
	for {
		select {
		case <-p.stop:
			return
		default:
		}

		n, err := p.port.Read(buf)
		if err != nil || n == 0 {
			// Read timeouts surface as n==0; errors on a closing port end
			// the loop via the stop channel on the next iteration.
			continue
		}

		p.mu.Lock()
		p.rx = append(p.rx, buf[0])
		notify := p.cb.ByteReceived
		p.mu.Unlock()

		if notify != nil {
			notify()
		}
	}
}

// ReadByte implements [transport.Transport].
func (p *Port) ReadByte() (byte, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.rx) == 0 {
		return 0, false
	}
	b := p.rx[0]
	p.rx = p.rx[1:]
	return b, true
}

// Write implements [transport.Transport]. The payload is copied and handed
// to a writer goroutine; settlement is reported through WriteSettled.
func (p *Port) Write(buf []byte) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return transport.ErrClosed
	}
	if !p.enabled {
		p.mu.Unlock()
		return transport.ErrNotEnabled
	}
	settle := p.cb.WriteSettled
	p.mu.Unlock()

	out := make([]byte, len(buf))
	copy(out, buf)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		_, err := p.port.Write(out)
		if settle != nil {
			settle(err == nil)
		}
	}()
	return nil
}

// SetDirection implements [transport.Transport].
func (p *Port) SetDirection(d transport.Direction) {
	p.mu.Lock()
	if p.direction == d {
		p.mu.Unlock()
		return
	}
	p.direction = d
	hook := p.cfg.DirectionFunc
	p.mu.Unlock()

	if hook != nil {
		hook(d)
	}
}

// Close implements [transport.Transport].
func (p *Port) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	p.enabled = false
	p.mu.Unlock()

	close(p.stop)
	err := p.port.Close()
	p.wg.Wait()
	return err
}
