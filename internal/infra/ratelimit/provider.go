package ratelimit

import (
	"context"
	"time"

	"foundmoney/config"
	"foundmoney/internal/domain/constants"
	"foundmoney/internal/domain/service"
	"foundmoney/internal/errors"
	"foundmoney/internal/infra/cache"

	"github.com/redis/go-redis/v9"
)

type unlimited struct{}

func (unlimited) Allow(context.Context, string) (*service.RateLimitDecision, error) {
	return &service.RateLimitDecision{Allowed: true}, nil
}

// New selects the limiter store from configuration. A disabled section
// yields a limiter that allows everything.
func New(cfg *config.Config, client *redis.Client) (service.RateLimiter, error) {
	if cfg.RateLimit == nil || !cfg.RateLimit.Enabled {
		return unlimited{}, nil
	}

	limit, window := cfg.RateLimit.Requests, cfg.RateLimit.Window
	switch cfg.RateLimit.Store {
	case "", constants.StoreMemory:
		return NewMemoryLimiter(limit, window, time.Now), nil
	case constants.StoreRedis:
		if client == nil {
			return nil, cache.ErrRedisNotConfigured
		}

		return NewRedisLimiter(client, limit, window, time.Now), nil
	default:
		return nil, errors.Errorf("unknown rate limit store %q", cfg.RateLimit.Store)
	}
}
