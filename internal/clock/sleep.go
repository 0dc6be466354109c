// Package clock provides helpers for time-related operations.
package clock

import (
	"context"
	"time"
)

// Clock reports the current time. Scanners use it to stamp records whose
// block header could not be fetched.
type Clock interface {
	Now() time.Time
}

// Real is the wall clock in UTC.
type Real struct{}

// Now returns the current UTC time.
func (Real) Now() time.Time { return time.Now().UTC() }

// Fixed always reports the same instant.
type Fixed time.Time

// Now returns the fixed instant.
func (f Fixed) Now() time.Time { return time.Time(f) }

// Wait blocks for the duration, until wake fires, or until ctx is canceled.
// It reports whether wake ended the wait. A nil wake never fires.
func Wait(ctx context.Context, d time.Duration, wake <-chan struct{}) (bool, error) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case <-wake:
		return true, nil
	case <-timer.C:
		return false, nil
	}
}
