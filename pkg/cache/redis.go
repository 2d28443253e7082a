// Package cache provides a small Redis-backed JSON cache used for hall
// availability reads. A nil *Cache is a valid no-op so the service degrades
// gracefully when Redis is unreachable.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"fablab-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Cache struct {
	client *redis.Client
	log    *zap.Logger
}

// NewCache connects to Redis. Returns nil (disabled cache) when the ping
// fails; callers must not treat that as fatal.
func NewCache(config utils.RedisConfig, log *zap.Logger) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("Redis unavailable, cache disabled", zap.Error(err))
		return nil
	}

	return &Cache{
		client: client,
		log:    log.With(zap.String("component", "cache")),
	}
}

// GetJSON loads key into dest. Returns false on miss or any error.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) bool {
	if c == nil {
		return false
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("Cache read failed", zap.Error(err), zap.String("key", key))
		}
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		c.log.Warn("Cache entry corrupt", zap.Error(err), zap.String("key", key))
		return false
	}

	return true
}

// SetJSON stores value under key with the given TTL. Errors are logged only.
func (c *Cache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) {
	if c == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		c.log.Warn("Cache marshal failed", zap.Error(err), zap.String("key", key))
		return
	}

	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		c.log.Warn("Cache write failed", zap.Error(err), zap.String("key", key))
	}
}

// Delete removes keys, used to invalidate availability after a write.
func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn("Cache invalidation failed", zap.Error(err), zap.Strings("keys", keys))
	}
}
