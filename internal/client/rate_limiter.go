package client

import (
	"context"
	"time"
)

// RateLimiter paces outbound requests to the external APIs.
type RateLimiter struct {
	ticker  *time.Ticker
	permits chan struct{}
}

// NewRateLimiter creates a rate limiter allowing requestsPerSecond calls.
func NewRateLimiter(requestsPerSecond float64) *RateLimiter {
	interval := time.Duration(float64(time.Second) / requestsPerSecond)

	rl := &RateLimiter{
		ticker:  time.NewTicker(interval),
		permits: make(chan struct{}),
	}

	go func() {
		for range rl.ticker.C {
			select {
			case rl.permits <- struct{}{}:
			default:
			}
		}
	}()

	return rl
}

// Wait blocks until the rate limit allows the next request.
func (rl *RateLimiter) Wait(ctx context.Context) error {
	select {
	case <-rl.permits:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop stops the rate limiter.
func (rl *RateLimiter) Stop() {
	rl.ticker.Stop()
	close(rl.permits)
}
