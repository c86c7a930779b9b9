package goConsole

import "github.com/MrEthical07/goConsole/transport"

// directionController tracks the half-duplex link direction so redundant
// transceiver flips are skipped. Only the session task calls Set, so no
// lock is needed.
type directionController struct {
	tr   transport.Transport
	mode transport.Direction
}

func newDirectionController(tr transport.Transport) *directionController {
	d := &directionController{tr: tr, mode: transport.Receive}
	tr.SetDirection(transport.Receive)
	return d
}

func (d *directionController) Set(mode transport.Direction) {
	if d.mode == mode {
		return
	}
	d.tr.SetDirection(mode)
	d.mode = mode
}

func (d *directionController) Mode() transport.Direction {
	return d.mode
}
