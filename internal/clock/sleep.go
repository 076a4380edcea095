// Package clock is the time source for the follower and the scheduler.
package clock

import (
	"context"
	"time"

	bclock "github.com/benbjohnson/clock"
)

// Clock is satisfied by the wall clock and by bclock.Mock in tests.
type Clock = bclock.Clock

// New returns the wall clock.
func New() Clock {
	return bclock.New()
}

// Sleep waits for d as measured by clk. It returns ctx.Err() when ctx ends first.
func Sleep(ctx context.Context, clk Clock, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	timer := clk.Timer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Sleeper binds Sleep to clk for loops that take a sleep function.
func Sleeper(clk Clock) func(context.Context, time.Duration) error {
	return func(ctx context.Context, d time.Duration) error {
		return Sleep(ctx, clk, d)
	}
}
