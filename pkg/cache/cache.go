// Package cache stores rendered artifacts keyed by hash and generation config.
//
// Generation is deterministic, so a PNG or a placement plan computed once for a
// (hash, config) pair can be served again without painting. The [Cache]
// interface has three backends:
//
//   - [FileCache]: one JSON envelope per key under a directory (CLI)
//   - [RedisCache]: a shared Redis instance (HTTP server)
//   - [NullCache]: caching disabled
//
// Keys come from a [Keyer]; [ScopedKeyer] prefixes them to separate tenants
// sharing one backend.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the entry for key. A missing or expired entry is a miss,
	// not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Default entry lifetimes. Output for a given key never changes, so these
// only bound storage growth.
const (
	TTLArtifact = 7 * 24 * time.Hour
	TTLPlan     = 24 * time.Hour
)
