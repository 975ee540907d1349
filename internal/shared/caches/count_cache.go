package caches

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrInvalidCacheURL = errors.New("invalid cache url")

// CountCache memoizes aggregate counts for time ranges that can no longer change.
//
//go:generate mockgen -source=count_cache.go -destination=./mocks/count_cache_mock.go -package=mocks
type CountCache interface {
	// Get returns the cached count and whether the key was present.
	Get(ctx context.Context, key string) (int64, bool, error)
	Set(ctx context.Context, key string, count int64) error
	Close() error
}

type nopCountCache struct{}

// NewNopCountCache returns a cache that never stores anything.
func NewNopCountCache() CountCache { return nopCountCache{} }

func (nopCountCache) Get(context.Context, string) (int64, bool, error) { return 0, false, nil }
func (nopCountCache) Set(context.Context, string, int64) error         { return nil }
func (nopCountCache) Close() error                                     { return nil }

type memoryCountCache struct {
	mu     sync.RWMutex
	counts map[string]int64
}

// NewMemoryCountCache returns a process-local cache. Entries never expire.
func NewMemoryCountCache() CountCache {
	return &memoryCountCache{counts: make(map[string]int64)}
}

func (c *memoryCountCache) Get(_ context.Context, key string) (int64, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	count, ok := c.counts[key]
	return count, ok, nil
}

func (c *memoryCountCache) Set(_ context.Context, key string, count int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[key] = count
	return nil
}

func (c *memoryCountCache) Close() error { return nil }

const redisKeyPrefix = "log-baseline:count:"

type redisCountCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCountCache connects to redis at url. A zero ttl keeps entries forever.
func NewRedisCountCache(url string, ttl time.Duration) (CountCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCacheURL, err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}

	return &redisCountCache{client: client, ttl: ttl}, nil
}

func (c *redisCountCache) Get(ctx context.Context, key string) (int64, bool, error) {
	raw, err := c.client.Get(ctx, redisKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("reading cached count: %w", err)
	}

	count, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		// A corrupt entry is treated as a miss and overwritten on the next Set.
		return 0, false, nil
	}
	return count, true, nil
}

func (c *redisCountCache) Set(ctx context.Context, key string, count int64) error {
	if err := c.client.Set(ctx, redisKeyPrefix+key, strconv.FormatInt(count, 10), c.ttl).Err(); err != nil {
		return fmt.Errorf("writing cached count: %w", err)
	}
	return nil
}

func (c *redisCountCache) Close() error {
	return c.client.Close()
}
