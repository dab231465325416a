// Package core defines the ports the services and the HTTP layer depend on.
package core

import (
	"context"
	"time"
)

// CacheRepository stores generated artifacts, such as rendered color maps,
// by key. Implementations live in internal/data.
type CacheRepository interface {
	// Set stores value under key. A ttl of 0 keeps the entry until deleted.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Get returns the value under key, or nil without error on a miss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Delete removes key and reports whether it existed.
	Delete(ctx context.Context, key string) (bool, error)

	// DeleteMatching removes every key matching a glob pattern and returns
	// how many were removed.
	DeleteMatching(ctx context.Context, pattern string) (int64, error)

	// Health reports whether the backing store is reachable.
	Health(ctx context.Context) error
}
