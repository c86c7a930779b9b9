package goConsole

import (
	"context"
	"time"
)

// authDelay throttles password guessing by pausing the session task after
// each rejected attempt, before the failure message goes out. Disabled by
// default; a serial console is usually physically guarded, but deployments
// exposing the port can turn it on.
type authDelay struct {
	delay time.Duration
}

func newAuthDelay(d time.Duration) *authDelay {
	if d <= 0 {
		return nil
	}
	return &authDelay{delay: d}
}

// wait sleeps for the configured delay or until ctx is done.
func (l *authDelay) wait(ctx context.Context) {
	if l == nil {
		return
	}

	timer := time.NewTimer(l.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
