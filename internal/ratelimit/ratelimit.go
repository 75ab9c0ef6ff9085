package ratelimit

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Limiter throttles calls against the upstream media API.
type Limiter interface {
	Wait(ctx context.Context) error
}

// UpstreamLimiter is a token-bucket limiter shared by every request to the
// remote API, keeping the client a polite consumer.
type UpstreamLimiter struct {
	l *rate.Limiter
}

// NewUpstreamLimiter allows `requests` calls per `per`, with the given burst.
// Example: NewUpstreamLimiter(5, time.Second, 10) -> 5 rps, burst of 10.
func NewUpstreamLimiter(requests int, per time.Duration, burst int) Limiter {
	if requests <= 0 {
		return &UpstreamLimiter{l: rate.NewLimiter(rate.Inf, 0)}
	}
	if burst < 1 {
		burst = 1
	}
	return &UpstreamLimiter{
		l: rate.NewLimiter(rate.Every(per/time.Duration(requests)), burst),
	}
}

// Wait blocks until a token is available or the context is done.
func (u *UpstreamLimiter) Wait(ctx context.Context) error {
	return u.l.Wait(ctx)
}
