package ratelimit

import (
	"context"
	"strconv"
	"time"

	"foundmoney/internal/domain/service"
	"foundmoney/internal/errors"
	"foundmoney/internal/infra/cache"

	"github.com/redis/go-redis/v9"
)

// tokenBucketScript refills by elapsed time, takes one token if available and
// returns {allowed, remaining, retry_after_ms}.
var tokenBucketScript = redis.NewScript(`
local capacity = tonumber(ARGV[1])
local rate = tonumber(ARGV[2])
local now = tonumber(ARGV[3])
local ttl = tonumber(ARGV[4])

local state = redis.call('HMGET', KEYS[1], 'tokens', 'ts')
local tokens = tonumber(state[1])
local ts = tonumber(state[2])
if tokens == nil or ts == nil then
  tokens = capacity
  ts = now
end

tokens = math.min(capacity, tokens + math.max(0, now - ts) * rate)

local allowed = 0
local retry = 0
if tokens >= 1 then
  tokens = tokens - 1
  allowed = 1
else
  retry = math.ceil((1 - tokens) / rate)
end

redis.call('HSET', KEYS[1], 'tokens', tostring(tokens), 'ts', tostring(now))
redis.call('PEXPIRE', KEYS[1], ttl)

return {allowed, math.floor(tokens), retry}
`)

// RedisLimiter keeps token buckets in redis so every instance shares them.
type RedisLimiter struct {
	client redis.Scripter
	limit  int
	window time.Duration
	now    func() time.Time
}

// NewRedisLimiter allows limit requests per window per key.
func NewRedisLimiter(client redis.Scripter, limit int, window time.Duration, now func() time.Time) *RedisLimiter {
	if now == nil {
		now = time.Now
	}

	return &RedisLimiter{
		client: client,
		limit:  limit,
		window: window,
		now:    now,
	}
}

// Allow implements service.RateLimiter.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (*service.RateLimitDecision, error) {
	windowMs := l.window.Milliseconds()
	if windowMs <= 0 {
		windowMs = 1
	}
	perMs := float64(l.limit) / float64(windowMs)

	res, err := tokenBucketScript.Run(ctx, l.client, []string{cache.RateLimitKey(key)},
		l.limit,
		strconv.FormatFloat(perMs, 'f', -1, 64),
		l.now().UnixMilli(),
		windowMs,
	).Int64Slice()
	if err != nil {
		return nil, errors.Wrap(err, "run token bucket")
	}
	if len(res) != 3 {
		return nil, errors.Errorf("token bucket returned %d values", len(res))
	}

	return &service.RateLimitDecision{
		Allowed:    res[0] == 1,
		Limit:      l.limit,
		Remaining:  int(res[1]),
		RetryAfter: time.Duration(res[2]) * time.Millisecond,
	}, nil
}
