package service

import (
	"context"
	"time"
)

// RateLimitDecision is the outcome of taking one token from a bucket.
type RateLimitDecision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration // Zero when Allowed.
}

// RateLimiter is a token bucket keyed by caller identity. Implementations
// differ only in where bucket state lives.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (*RateLimitDecision, error)
}
