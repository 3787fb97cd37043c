// Package cache stores layout results across runs.
//
// Measuring a scene is cheap, but the CLI re-runs the same scenes with the
// same hints over and over while a document is being edited, and a shared
// deployment may serve the same scene to many clients. The [Cache]
// interface keeps serialized results under keys built by a [Keyer] from a
// hash of the scene source and the exact hint or rect.
//
// Three backends are provided:
//   - [NullCache] never stores anything
//   - [FileCache] keeps entries as JSON files under a directory
//   - [RedisCache] shares entries through a Redis server
//
// The in-process single-entry cache of [layout.Engine] is separate and
// always on; this package only memoizes whole runs.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional expiry. A ttl of zero stores the
// entry without expiry. Get reports a miss with ok == false and a nil
// error.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
