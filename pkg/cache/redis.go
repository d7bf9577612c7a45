package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"dayscount-backend/pkg/config"
)

// Cache is a thin Redis wrapper used to cache AI responses. A nil *Cache is
// valid and behaves as a cache that never hits, so Redis stays optional.
type Cache struct {
	client *redis.Client
}

// New connects to Redis. Returns nil (no cache) when no address is
// configured.
func New(cfg *config.Config) (*Cache, error) {
	if cfg.RedisAddr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, err
	}

	return &Cache{client: client}, nil
}

// Get returns the cached value for key, or "" on miss or error.
func (c *Cache) Get(ctx context.Context, key string) string {
	if c == nil {
		return ""
	}
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return ""
	}
	return val
}

// Set stores value under key with the given TTL. Errors are swallowed: a
// failed cache write must never fail the request.
func (c *Cache) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if c == nil {
		return
	}
	_ = c.client.Set(ctx, key, value, ttl).Err()
}

// Close releases the underlying connection.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
