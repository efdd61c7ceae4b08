package checkout

import (
	"context"
	"time"
)

// Delayer waits out the simulated payment processing time.
type Delayer interface {
	Wait(ctx context.Context, d time.Duration) error
}

// TimerDelay waits on a real timer.
type TimerDelay struct{}

// Wait blocks for d or until ctx is done.
func (TimerDelay) Wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// NoDelay returns immediately unless ctx is already done.
type NoDelay struct{}

// Wait returns ctx.Err().
func (NoDelay) Wait(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}
