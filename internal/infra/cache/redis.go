// Package cache holds the shared redis connection and the score cache stores.
package cache

import (
	"context"
	"log/slog"
	"time"

	"foundmoney/config"
	"foundmoney/internal/domain/constants"
	"foundmoney/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// ErrRedisNotConfigured is returned when a redis-backed store is selected
// without a redis section.
var ErrRedisNotConfigured = errors.New("redis is not configured")

// NewRedisClient connects to redis when a store is configured to use it and
// returns nil otherwise.
func NewRedisClient(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (*redis.Client, error) {
	if !redisRequired(cfg) {
		return nil, nil
	}
	if cfg.Redis == nil || cfg.Redis.Addr == "" {
		return nil, ErrRedisNotConfigured
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, errors.Wrap(err, "failed to connect to redis")
	}
	logger.Info("connected to redis", slog.String("addr", cfg.Redis.Addr))

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

func redisRequired(cfg *config.Config) bool {
	if cfg.RateLimit != nil && cfg.RateLimit.Enabled && cfg.RateLimit.Store == constants.StoreRedis {
		return true
	}

	return cfg.ScoreCache != nil && cfg.ScoreCache.Store == constants.StoreRedis
}
