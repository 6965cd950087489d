// Package cache provides a Redis-backed read-through cache for user stats.
// Cached entries stay coherent because the task corpus is immutable for the
// lifetime of the serving process; the TTL only bounds memory, not staleness.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/felixgeelhaar/taskstream/internal/tracking/application/services"
)

const keyPrefix = "taskstream:stats:"

// RedisStatsCache caches computed UserStats keyed by user id.
type RedisStatsCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisStatsCache creates a new RedisStatsCache.
func NewRedisStatsCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisStatsCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisStatsCache{client: client, ttl: ttl, logger: logger}
}

// Get returns the cached stats for userID, reporting whether they were present.
// Any Redis or decode failure is treated as a miss; the caller recomputes.
func (c *RedisStatsCache) Get(ctx context.Context, userID string) (services.UserStats, bool) {
	payload, err := c.client.Get(ctx, keyPrefix+userID).Bytes()
	if err == redis.Nil {
		return services.UserStats{}, false
	}
	if err != nil {
		c.logger.Warn("stats cache read failed", "user_id", userID, "error", err)
		return services.UserStats{}, false
	}

	var stats services.UserStats
	if err := json.Unmarshal(payload, &stats); err != nil {
		c.logger.Warn("stats cache entry corrupt", "user_id", userID, "error", err)
		return services.UserStats{}, false
	}
	return stats, true
}

// Set stores the stats for userID. Failures are logged and otherwise ignored;
// the cache is an optimization, not a source of truth.
func (c *RedisStatsCache) Set(ctx context.Context, userID string, stats services.UserStats) {
	payload, err := json.Marshal(stats)
	if err != nil {
		c.logger.Warn("stats cache encode failed", "user_id", userID, "error", err)
		return
	}

	if err := c.client.Set(ctx, keyPrefix+userID, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("stats cache write failed", "user_id", userID, "error", err)
	}
}

// Connect parses url, connects and pings the Redis server.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}
