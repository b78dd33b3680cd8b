package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cmdable is the subset of redis.UniversalClient used by Cache.
type Cmdable interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Cache is a byte cache with a key prefix and a fixed TTL.
type Cache struct {
	db     Cmdable
	prefix string
	ttl    time.Duration
}

// NewCache returns a cache storing keys as prefix+key for ttl.
// A zero ttl stores keys without expiration.
func NewCache(client Cmdable, prefix string, ttl time.Duration) *Cache {
	return &Cache{db: client, prefix: prefix, ttl: ttl}
}

// Get returns the cached value. A miss is reported as (nil, false, nil).
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if key == "" {
		return nil, false, nil
	}
	val, err := c.db.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Join(ErrCacheFailed, err)
	}
	return val, true, nil
}

// Set stores val under key. Empty keys and values are ignored.
func (c *Cache) Set(ctx context.Context, key string, val []byte) error {
	if key == "" || len(val) == 0 {
		return nil
	}
	if err := c.db.Set(ctx, c.prefix+key, val, c.ttl).Err(); err != nil {
		return errors.Join(ErrCacheFailed, err)
	}
	return nil
}

// Delete removes key.
func (c *Cache) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	if err := c.db.Del(ctx, c.prefix+key).Err(); err != nil {
		return errors.Join(ErrCacheFailed, err)
	}
	return nil
}
