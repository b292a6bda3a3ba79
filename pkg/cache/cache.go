// Package cache provides byte-level response caching for the TheTVDB client.
//
// # Overview
//
// The [Cache] interface stores raw response bodies under string keys with an
// optional time-to-live. It sits underneath the HTTP client in
// [integrations], so repeated CLI invocations can answer from disk instead of
// the network. It is unrelated to the in-memory language catalog, which keeps
// its own records for the lifetime of a single process.
//
// # Backends
//
//   - [FileCache]: one JSON file per entry under ~/.cache/tvdb/
//   - [RedisCache]: shared cache for multiple processes or hosts
//   - [NullCache]: disables caching entirely
//
// # Retries
//
// [RetryWithBackoff] retries only errors wrapped with [Retryable]. The HTTP
// client marks 5xx responses and transport failures this way.
//
// [integrations]: github.com/matzehuels/tvdb/pkg/integrations
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte payloads by key.
//
// Get reports (nil, false, nil) on a miss. Expired entries are misses.
// A ttl of 0 passed to Set means the entry never expires.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
