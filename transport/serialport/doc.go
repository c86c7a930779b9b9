// Package serialport implements the transport contract over a real serial
// device using github.com/tarm/serial.
//
// The package emulates the receiver interrupt with a dedicated reader
// goroutine that fetches one byte per iteration and raises the ByteReceived
// notification, and emulates the transmit-complete interrupt by settling
// each buffered write from a short-lived writer goroutine.
//
// Half-duplex direction control is delegated to an optional DirectionFunc:
// tarm/serial exposes no driver-enable lines, so deployments with an RS-485
// style transceiver supply the hook that toggles their DE/RE pins.
package serialport
