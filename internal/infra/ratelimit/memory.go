// Package ratelimit implements per-caller token buckets.
package ratelimit

import (
	"context"
	"math"
	"sync"
	"time"

	"foundmoney/internal/domain/service"

	"golang.org/x/time/rate"
)

const sweepThreshold = 10_000

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryLimiter keeps one x/time/rate limiter per key in process memory.
type MemoryLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	limit   int
	window  time.Duration
	now     func() time.Time
}

// NewMemoryLimiter allows limit requests per window per key, refilling
// continuously.
func NewMemoryLimiter(limit int, window time.Duration, now func() time.Time) *MemoryLimiter {
	if now == nil {
		now = time.Now
	}

	return &MemoryLimiter{
		buckets: make(map[string]*bucket),
		limit:   limit,
		window:  window,
		now:     now,
	}
}

// Allow implements service.RateLimiter.
func (l *MemoryLimiter) Allow(_ context.Context, key string) (*service.RateLimitDecision, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	b, ok := l.buckets[key]
	if !ok {
		if len(l.buckets) >= sweepThreshold {
			l.sweep(now)
		}
		b = &bucket{limiter: rate.NewLimiter(refillRate(l.limit, l.window), l.limit)}
		l.buckets[key] = b
	}
	b.lastSeen = now

	decision := &service.RateLimitDecision{Limit: l.limit}

	reservation := b.limiter.ReserveN(now, 1)
	if !reservation.OK() {
		decision.RetryAfter = l.window

		return decision, nil
	}
	if delay := reservation.DelayFrom(now); delay > 0 {
		reservation.CancelAt(now)
		decision.RetryAfter = delay

		return decision, nil
	}

	decision.Allowed = true
	decision.Remaining = int(math.Max(0, math.Floor(b.limiter.TokensAt(now))))

	return decision, nil
}

// sweep drops buckets idle for a full window; they would be full again anyway.
func (l *MemoryLimiter) sweep(now time.Time) {
	for key, b := range l.buckets {
		if now.Sub(b.lastSeen) >= l.window {
			delete(l.buckets, key)
		}
	}
}

func refillRate(limit int, window time.Duration) rate.Limit {
	if window <= 0 {
		return rate.Inf
	}

	return rate.Limit(float64(limit) / window.Seconds())
}
