package fetch

import (
	"context"
	"sync"
	"time"
)

// RateLimiter enforces a per-host sliding one-minute request window
type RateLimiter struct {
	maxPerMinute int
	mu           sync.Mutex
	requests     map[string][]time.Time
}

// NewRateLimiter creates a rate limiter allowing maxPerMinute requests per host
func NewRateLimiter(maxPerMinute int) *RateLimiter {
	if maxPerMinute <= 0 {
		maxPerMinute = 30
	}
	return &RateLimiter{
		maxPerMinute: maxPerMinute,
		requests:     make(map[string][]time.Time),
	}
}

// Wait blocks until a request to host is allowed, then records it.
// Returns early with the context error if the context is cancelled.
func (r *RateLimiter) Wait(ctx context.Context, host string) error {
	for {
		wait := r.reserve(host)
		if wait <= 0 {
			return nil
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// reserve records the request if allowed, otherwise returns how long to wait
// for the oldest in-window request to age out.
func (r *RateLimiter) reserve(host string) time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	windowStart := now.Add(-time.Minute)

	kept := r.requests[host][:0]
	for _, ts := range r.requests[host] {
		if ts.After(windowStart) {
			kept = append(kept, ts)
		}
	}
	r.requests[host] = kept

	if len(kept) >= r.maxPerMinute {
		return kept[0].Sub(windowStart)
	}

	r.requests[host] = append(r.requests[host], now)
	return 0
}
