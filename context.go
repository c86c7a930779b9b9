package goConsole

import "context"

type portLabelContextKey struct{}
type peerLabelContextKey struct{}

// WithPortLabel attaches a human-readable port name ("/dev/ttyUSB0",
// "loopback") to ctx. The Console stamps it on every audit event.
func WithPortLabel(ctx context.Context, port string) context.Context {
	return context.WithValue(ctx, portLabelContextKey{}, port)
}

// WithPeerLabel attaches an identifier for whatever sits on the far end of
// the link, for deployments that can name it. Audit metadata only.
func WithPeerLabel(ctx context.Context, peer string) context.Context {
	return context.WithValue(ctx, peerLabelContextKey{}, peer)
}

func portLabelFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	port, _ := ctx.Value(portLabelContextKey{}).(string)
	return port
}

func peerLabelFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	peer, _ := ctx.Value(peerLabelContextKey{}).(string)
	return peer
}
