// Package cache provides the snapshot cache used to avoid re-reading the
// transactions extract on every request. Values are stored as JSON with a
// fixed time-to-live; a cache miss or failure always falls back to a fresh
// load, never to a request failure.
package cache

import (
	"context"
	"time"
)

type Cache interface {
	// Get unmarshals the value stored at key into dest. The bool reports
	// whether the key was present and unexpired.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}
