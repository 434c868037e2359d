package cache

import (
	"context"
	"time"
)

// Cache defines the interface for short-lived keyed state: session tokens,
// login-lockout counters and comment cooldowns. This abstraction allows
// swapping between memory cache (development) and Redis cache (production)
// without changing business logic.
type Cache interface {
	// Get retrieves a value by key. Returns ErrCacheMiss if not found.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the given TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value by key.
	Delete(ctx context.Context, key string) error

	// Exists checks if a key exists in the cache.
	Exists(ctx context.Context, key string) (bool, error)

	// Increment atomically increments a counter key and returns the new
	// value. The TTL is applied when the counter is first created.
	Increment(ctx context.Context, key string, ttl time.Duration) (int64, error)

	// Close releases any resources held by the cache.
	Close() error
}

// CacheError is a sentinel error type for cache failures.
type CacheError string

func (e CacheError) Error() string { return string(e) }

const (
	// ErrCacheMiss indicates the key was not found in cache.
	ErrCacheMiss CacheError = "cache miss"
)
