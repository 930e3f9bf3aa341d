package sourcecache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	payload   []byte
	expiresAt time.Time
}

// MemoryCache is an in-process Cache used for dev and when Valkey is off.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

// NewMemoryCache constructs a cache backed by process memory.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get implements Cache.
func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if c.expired(e.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false, nil
	}
	return append([]byte(nil), e.payload...), true, nil
}

// Set implements Cache. A non-positive ttl never expires.
func (c *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	exp := time.Time{}
	if ttl > 0 {
		exp = c.now().Add(ttl)
	}
	c.entries[key] = entry{payload: append([]byte(nil), value...), expiresAt: exp}
	return nil
}

func (c *MemoryCache) expired(ts time.Time) bool {
	if ts.IsZero() {
		return false
	}
	return !ts.After(c.now())
}

var _ Cache = (*MemoryCache)(nil)
