package animate

import (
	"context"
	"time"
)

// DefaultDelay is the pause between two frames.
const DefaultDelay = 900 * time.Millisecond

// Pacer inserts the pause between two frames.
// Pause must return ctx.Err() promptly once ctx is done.
type Pacer interface {
	Pause(ctx context.Context) error
}

// SleepPacer waits Delay of wall-clock time.
type SleepPacer struct {
	Delay time.Duration
}

// Pause blocks for Delay or until ctx is done.
func (s SleepPacer) Pause(ctx context.Context) error {
	if s.Delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// NopPacer never waits; it only reports cancellation.
type NopPacer struct{}

// Pause returns ctx.Err() immediately.
func (NopPacer) Pause(ctx context.Context) error { return ctx.Err() }

// PacerFunc adapts a function to the Pacer interface.
type PacerFunc func(ctx context.Context) error

// Pause calls f(ctx).
func (f PacerFunc) Pause(ctx context.Context) error { return f(ctx) }
