package ratelimit

import (
	"context"
	"testing"
	"time"

	"foundmoney/config"
	"foundmoney/internal/domain/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type manualClock struct {
	now time.Time
}

func (c *manualClock) Now() time.Time { return c.now }

func (c *manualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newRedisClient(t *testing.T) *redis.Client {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestLimiters_TokenBucket(t *testing.T) {
	tests := []struct {
		name       string
		newLimiter func(t *testing.T, now func() time.Time) service.RateLimiter
	}{
		{
			name: "memory",
			newLimiter: func(_ *testing.T, now func() time.Time) service.RateLimiter {
				return NewMemoryLimiter(3, time.Minute, now)
			},
		},
		{
			name: "redis",
			newLimiter: func(t *testing.T, now func() time.Time) service.RateLimiter {
				return NewRedisLimiter(newRedisClient(t), 3, time.Minute, now)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := &manualClock{now: time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)}
			limiter := tt.newLimiter(t, clock.Now)
			ctx := context.Background()

			for i := range 3 {
				decision, err := limiter.Allow(ctx, "user-1")
				require.NoError(t, err)
				assert.True(t, decision.Allowed, "request %d", i)
				assert.Equal(t, 2-i, decision.Remaining)
				assert.Equal(t, 3, decision.Limit)
			}

			denied, err := limiter.Allow(ctx, "user-1")
			require.NoError(t, err)
			assert.False(t, denied.Allowed)
			assert.InDelta(t, (20 * time.Second).Seconds(), denied.RetryAfter.Seconds(), 1)

			other, err := limiter.Allow(ctx, "user-2")
			require.NoError(t, err)
			assert.True(t, other.Allowed, "buckets are per key")

			clock.Advance(20 * time.Second)
			refilled, err := limiter.Allow(ctx, "user-1")
			require.NoError(t, err)
			assert.True(t, refilled.Allowed)
		})
	}
}

func TestMemoryLimiter_Sweep(t *testing.T) {
	clock := &manualClock{now: time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)}
	limiter := NewMemoryLimiter(1, time.Minute, clock.Now)

	_, err := limiter.Allow(context.Background(), "idle")
	require.NoError(t, err)

	clock.Advance(time.Minute)
	limiter.sweep(clock.Now())
	assert.Empty(t, limiter.buckets)
}

func TestNew(t *testing.T) {
	cfg := &config.Config{}

	limiter, err := New(cfg, nil)
	require.NoError(t, err)
	decision, err := limiter.Allow(context.Background(), "anyone")
	require.NoError(t, err)
	assert.True(t, decision.Allowed)

	cfg.RateLimit = &config.RateLimitConfig{Enabled: true, Store: "memory", Requests: 1, Window: time.Minute}
	limiter, err = New(cfg, nil)
	require.NoError(t, err)
	assert.IsType(t, &MemoryLimiter{}, limiter)

	cfg.RateLimit.Store = "redis"
	_, err = New(cfg, nil)
	assert.Error(t, err)

	cfg.RateLimit.Store = "carrier-pigeon"
	_, err = New(cfg, nil)
	assert.Error(t, err)
}
