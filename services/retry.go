package services

import (
	"context"
	"time"
)

// RetryPolicy retries an attempt with bounded exponential backoff. Only
// attempts that report themselves retryable (rate limits, transport timeouts)
// are re-run; everything else surfaces immediately.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, BaseDelay: 500 * time.Millisecond}
}

// Do runs attempt until it succeeds, returns a non-retryable error, or the
// attempt budget is spent. The context aborts both the attempts and the
// backoff sleeps.
func (p RetryPolicy) Do(ctx context.Context, attempt func() (retryable bool, err error)) error {
	max := p.MaxAttempts
	if max < 1 {
		max = 1
	}

	delay := p.BaseDelay
	var lastErr error
	for i := 0; i < max; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		retryable, err := attempt()
		if err == nil {
			return nil
		}
		lastErr = err
		if !retryable || i == max-1 {
			return err
		}

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		delay *= 2
	}
	return lastErr
}
