package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"

	"github.com/abhisek/thermoviz/internal/logger"
)

// RetryProvider retries failed requests with exponential backoff. Only the
// problem generator goes through it; the tutor asks once.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
}

// WithRetry wraps a Provider with retry logic.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &RetryProvider{inner: p, config: cfg}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	log := logger.FromContext(ctx).WithPrefix("llm")

	attempts := max(r.config.MaxAttempts, 1)
	var lastErr error
	malformed := 0
	for attempt := range attempts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		kind := Classify(err)
		if kind == KindMalformed {
			malformed++
		}
		if !retryable(kind, malformed) || attempt == attempts-1 {
			break
		}

		wait := backoff(r.config, attempt, err)
		log.Debug("%s attempt %d failed (%s), retrying in %s", PurposeFrom(ctx), attempt+1, kind, wait)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
	return nil, lastErr
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

// retryable reports whether a failure of kind is worth another attempt.
// A reply that breaks the schema gets one second chance; cancellation and
// truncation never change on retry.
func retryable(kind FailureKind, malformed int) bool {
	switch kind {
	case KindCanceled, KindTruncated:
		return false
	case KindMalformed:
		return malformed <= 1
	default:
		return true
	}
}

// backoff is the wait before the attempt after attempt. A rate limit's
// RetryAfter wins; otherwise the wait grows by Multiplier up to MaxWait,
// with ±20% jitter.
func backoff(cfg RetryConfig, attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := float64(cfg.InitialWait) * math.Pow(cfg.Multiplier, float64(attempt))
	wait = min(wait, float64(cfg.MaxWait))
	wait += wait * 0.2 * (2*rand.Float64() - 1)
	return time.Duration(max(wait, 0))
}
