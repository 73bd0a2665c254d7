package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "pagecache:"

// defaultRedisTTL applies when no TTL is configured, so pages of old
// generations still leave Redis.
const defaultRedisTTL = 10 * time.Minute

// RedisCache shares rendered pages between server instances.
type RedisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisCache returns a cache whose pages expire after ttl, or after
// ten minutes when ttl is not positive.
func NewRedisCache(rdb *redis.Client, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = defaultRedisTTL
	}
	return &RedisCache{rdb: rdb, ttl: ttl}
}

func generationKey(path string) string {
	return redisKeyPrefix + "gen:" + path
}

func (c *RedisCache) generation(ctx context.Context, path string) (int64, error) {
	gen, err := c.rdb.Get(ctx, generationKey(path)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read generation of %s: %w", path, err)
	}
	return gen, nil
}

func pageKey(path, key string, gen int64) string {
	return fmt.Sprintf("%spage:%s:%d:%s", redisKeyPrefix, path, gen, key)
}

func (c *RedisCache) Get(ctx context.Context, path, key string) (Lookup, error) {
	gen, err := c.generation(ctx, path)
	if err != nil {
		return Lookup{}, err
	}
	l := Lookup{Generation: gen}

	page, err := c.rdb.Get(ctx, pageKey(path, key, gen)).Bytes()
	if errors.Is(err, redis.Nil) {
		return l, nil
	}
	if err != nil {
		return l, fmt.Errorf("get cached page: %w", err)
	}
	l.Page, l.Hit = page, true
	return l, nil
}

// Set writes under the key of generation. A write that races a Revalidate
// lands on a key no reader asks for again and expires through its TTL.
func (c *RedisCache) Set(ctx context.Context, path, key string, generation int64, page []byte) error {
	current, err := c.generation(ctx, path)
	if err != nil {
		return err
	}
	if current != generation {
		return nil
	}
	if err := c.rdb.Set(ctx, pageKey(path, key, generation), page, c.ttl).Err(); err != nil {
		return fmt.Errorf("set cached page: %w", err)
	}
	return nil
}

// Revalidate bumps the path generation. Pages of older generations are left
// to expire through their TTL.
func (c *RedisCache) Revalidate(ctx context.Context, path string) error {
	if err := c.rdb.Incr(ctx, generationKey(path)).Err(); err != nil {
		return fmt.Errorf("revalidate %s: %w", path, err)
	}
	return nil
}
