package ratelimits

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter throttles outbound requests.
type Limiter interface {
	Wait(ctx context.Context) error
}

type tokenBucket struct {
	inner *rate.Limiter
}

// New creates a token bucket limiter allowing rps requests per second with the given burst.
func New(rps float64, burst int) Limiter {
	if burst < 1 {
		burst = 1
	}
	return &tokenBucket{inner: rate.NewLimiter(rate.Limit(rps), burst)}
}

// Unlimited returns a limiter that never blocks.
func Unlimited() Limiter {
	return &tokenBucket{inner: rate.NewLimiter(rate.Inf, 1)}
}

// Wait blocks until a token is available or ctx is done.
func (l *tokenBucket) Wait(ctx context.Context) error {
	return l.inner.Wait(ctx)
}
