package service

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"

	"agrorent-backend/internal/domain"
	"agrorent-backend/internal/logger"
)

// ReadRetry bounds the automatic retry of idempotent reads. Mutations are
// never passed through it.
type ReadRetry struct {
	MaxRetries uint64
	BaseDelay  time.Duration
}

// DefaultReadRetry is used when a service is built without an explicit policy.
var DefaultReadRetry = ReadRetry{MaxRetries: 3, BaseDelay: 50 * time.Millisecond}

func (p ReadRetry) backoff() retry.Backoff {
	base := p.BaseDelay
	if base <= 0 {
		base = time.Millisecond
	}
	return retry.WithMaxRetries(p.MaxRetries, retry.NewExponential(base))
}

// readWithRetry runs fn until it succeeds, fails with a non-retrieval error,
// or the policy is exhausted.
func readWithRetry[T any](ctx context.Context, p ReadRetry, op string, fn func(context.Context) (T, error)) (T, error) {
	var (
		out     T
		lastErr error
		attempt int
	)
	err := retry.Do(ctx, p.backoff(), func(ctx context.Context) error {
		attempt++
		v, err := fn(ctx)
		if err != nil {
			lastErr = err
			if domain.IsRetryable(err) {
				logger.Debug("Retrying read", "op", op, "attempt", attempt, "error", err)
				return retry.RetryableError(err)
			}
			return err
		}
		out = v
		lastErr = nil
		return nil
	})
	if err != nil {
		if lastErr != nil {
			return out, lastErr
		}
		return out, err
	}
	return out, nil
}
