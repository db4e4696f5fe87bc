// Package cache stores upstream API responses between runs.
//
// Backends:
//   - [FileCache]: one JSON envelope per key under a directory (CLI default)
//   - [RedisCache]: shared cache for the HTTP server
//   - [NullCache]: disables caching
//
// Keys are produced by a [Keyer] so that every backend sees the same layout
// and callers can scope keys with [NewScopedKeyer] (for example per
// credential, so responses fetched with one token are never served to
// another).
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by helpers that surface a miss as an error.
var ErrCacheMiss = errors.New("cache miss")

// Cache is a byte-oriented key/value store with per-entry expiration.
//
// Get reports (nil, false, nil) on a miss. Expired entries are misses.
// A ttl of 0 passed to Set means the entry never expires.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Keyer builds cache keys.
type Keyer interface {
	// HTTPKey returns the key for an upstream response identified by
	// namespace (e.g. "github:") and a namespace-local key.
	HTTPKey(namespace, key string) string
}

// DefaultKeyer produces unscoped keys of the form "http:<namespace>:<key>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default key layout.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// HTTPKey implements Keyer.
func (DefaultKeyer) HTTPKey(namespace, key string) string {
	return "http:" + namespace + ":" + key
}
