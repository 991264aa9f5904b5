package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"foundmoney/config"
	"foundmoney/internal/domain/constants"
	"foundmoney/internal/domain/entity"
	"foundmoney/internal/domain/service"
	"foundmoney/internal/errors"

	"github.com/redis/go-redis/v9"
)

// memorySweepThreshold is the size at which inserting a new key first drops
// expired entries.
const memorySweepThreshold = 4096

type memoryEntry struct {
	result    entity.MatchResult
	expiresAt time.Time
}

type memoryScoreCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryScoreCache returns a process-local score cache. Expired entries are
// dropped on read and swept once the map
// grows past memorySweepThreshold.
func NewMemoryScoreCache(now func() time.Time) service.ScoreCache {
	if now == nil {
		now = time.Now
	}

	return &memoryScoreCache{
		entries: make(map[string]memoryEntry),
		now:     now,
	}
}

func (c *memoryScoreCache) Get(_ context.Context, key string) (*entity.MatchResult, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false, nil
	}
	if !c.now().Before(entry.expiresAt) {
		delete(c.entries, key)

		return nil, false, nil
	}
	result := entry.result

	return &result, true, nil
}

func (c *memoryScoreCache) Set(_ context.Context, key string, result *entity.MatchResult, ttl time.Duration) error {
	if result == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if _, exists := c.entries[key]; !exists && len(c.entries) >= memorySweepThreshold {
		c.sweep(now)
	}
	c.entries[key] = memoryEntry{result: *result, expiresAt: now.Add(ttl)}

	return nil
}

func (c *memoryScoreCache) sweep(now time.Time) {
	for k, entry := range c.entries {
		if !now.Before(entry.expiresAt) {
			delete(c.entries, k)
		}
	}
}

type redisScoreCache struct {
	client redis.Cmdable
}

// NewRedisScoreCache returns a score cache shared across instances.
func NewRedisScoreCache(client redis.Cmdable) service.ScoreCache {
	return &redisScoreCache{client: client}
}

func (c *redisScoreCache) Get(ctx context.Context, key string) (*entity.MatchResult, bool, error) {
	data, err := c.client.Get(ctx, ScoreKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "get cached score")
	}

	var result entity.MatchResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, false, errors.Wrap(err, "decode cached score")
	}

	return &result, true, nil
}

func (c *redisScoreCache) Set(ctx context.Context, key string, result *entity.MatchResult, ttl time.Duration) error {
	if result == nil {
		return nil
	}

	data, err := json.Marshal(result)
	if err != nil {
		return errors.Wrap(err, "encode score")
	}
	if err := c.client.Set(ctx, ScoreKey(key), data, ttl).Err(); err != nil {
		return errors.Wrap(err, "set cached score")
	}

	return nil
}

// NewScoreCacheFromConfig selects the score cache store. It returns nil when
// caching is disabled.
func NewScoreCacheFromConfig(cfg *config.Config, client *redis.Client) (service.ScoreCache, error) {
	if cfg.ScoreCache == nil {
		return nil, nil
	}

	switch cfg.ScoreCache.Store {
	case "":
		return nil, nil
	case constants.StoreMemory:
		return NewMemoryScoreCache(time.Now), nil
	case constants.StoreRedis:
		if client == nil {
			return nil, ErrRedisNotConfigured
		}

		return NewRedisScoreCache(client), nil
	default:
		return nil, errors.Errorf("unknown score cache store %q", cfg.ScoreCache.Store)
	}
}
