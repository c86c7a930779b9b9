package serialport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestOpenRequiresPortName(t *testing.T) {
	_, err := Open(Config{Baud: 115200})
	require.ErrorIs(t, err, ErrPortNameRequired)
}

func TestOpenRequiresPositiveBaud(t *testing.T) {
	_, err := Open(Config{Name: "/dev/ttyUSB0"})
	require.ErrorIs(t, err, ErrInvalidBaud)

	_, err = Open(Config{Name: "/dev/ttyUSB0", Baud: -9600})
	require.ErrorIs(t, err, ErrInvalidBaud)
}

func TestOpenMissingDeviceFails(t *testing.T) {
	_, err := Open(Config{
		Name:        "/dev/goconsole-no-such-device",
		Baud:        115200,
		ReadTimeout: 10 * time.Millisecond,
	})
	require.Error(t, err)
}
