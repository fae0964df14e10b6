package notify

import (
	"context"
	"time"
)

const (
	connectAttempts = 4
	connectDelay    = 250 * time.Millisecond
)

// retry runs fn up to attempts times, doubling delay after each failure.
// It returns nil on the first success, ctx.Err() if ctx ends while waiting,
// and otherwise the last error.
func retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	attempts = max(attempts, 1)
	var lastErr error
	for i := range attempts {
		if lastErr = fn(); lastErr == nil {
			return nil
		}
		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			delay *= 2
		}
	}
	return lastErr
}
