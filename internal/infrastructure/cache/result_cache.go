package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisResultCache memoizes serialized analysis results in Redis with a TTL.
// Cache failures are logged and ignored so the service keeps serving when
// Redis is down. Keys include the operation so NER and classification
// results never collide.
type RedisResultCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

// NewRedisResultCache creates a result cache backed by the given client
func NewRedisResultCache(client *redis.Client, ttl time.Duration, log *zap.Logger) *RedisResultCache {
	if log == nil {
		log = zap.NewNop()
	}
	return &RedisResultCache{client: client, ttl: ttl, log: log}
}

// Get returns the cached value for key, if present
func (c *RedisResultCache) Get(ctx context.Context, key string) (string, bool) {
	value, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("result cache read failed", zap.String("key", key), zap.Error(err))
		}
		return "", false
	}
	return value, true
}

// Set stores value under key with the configured TTL
func (c *RedisResultCache) Set(ctx context.Context, key, value string) {
	if err := c.client.Set(ctx, key, value, c.ttl).Err(); err != nil {
		c.log.Warn("result cache write failed", zap.String("key", key), zap.Error(err))
	}
}
