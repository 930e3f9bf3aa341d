// Package sourcecache caches upstream weather and market payloads.
package sourcecache

import (
	"context"
	"time"
)

// Cache stores opaque payloads with an optional TTL.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
