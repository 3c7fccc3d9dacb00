// Package retry provides an explicit bounded-retry helper for operations
// that may fail with transient errors.
package retry

import (
	"context"
	"fmt"
	"time"
)

type Policy struct {
	// MaxAttempts is the total number of attempts, including the first one.
	MaxAttempts int
	// Delay is the wait before the first retry; it doubles after every
	// failed attempt, capped at MaxDelay when MaxDelay is positive.
	Delay    time.Duration
	MaxDelay time.Duration
}

// Do runs op up to p.MaxAttempts times, waiting between attempts. Errors for
// which retryable returns false are returned immediately. Context
// cancellation aborts the wait and returns the context error.
func Do(ctx context.Context, p Policy, retryable func(error) bool, op func() error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	delay := p.Delay
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		lastErr = op()
		if lastErr == nil {
			return nil
		}
		if !retryable(lastErr) {
			return lastErr
		}
		if attempt == attempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}

		delay *= 2
		if p.MaxDelay > 0 && delay > p.MaxDelay {
			delay = p.MaxDelay
		}
	}

	return fmt.Errorf("max retries exceeded after %d attempts: %w", attempts, lastErr)
}
