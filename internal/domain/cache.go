package domain

import (
	"context"
	"time"
)

// CacheError represents an error originating from the cache.
type CacheError string

func (e CacheError) Error() string {
	return string(e)
}

// ErrCacheMiss is returned when a key is not found in the cache.
const ErrCacheMiss = CacheError("cache: key not found")

// Cache is the port for key/value caching. The session layer uses it to
// hold revoked token IDs until their natural expiry.
type Cache interface {
	// Get retrieves an item, returning ErrCacheMiss when the key is absent.
	Get(ctx context.Context, key string) (string, error)

	// Set stores an item. A zero expiration means no TTL.
	Set(ctx context.Context, key string, value string, expiration time.Duration) error

	// Delete removes an item; absent keys are not an error.
	Delete(ctx context.Context, key string) error

	// Ping checks the health of the cache service.
	Ping(ctx context.Context) error
}
