package sourcecache

import (
	"context"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"
)

// ValkeyCache stores payloads in a Valkey-compatible database.
type ValkeyCache struct {
	client valkey.Client
	prefix string
}

// NewValkeyCache constructs a cache backed by Valkey.
func NewValkeyCache(client valkey.Client, prefix string) *ValkeyCache {
	if prefix == "" {
		prefix = "kisan"
	}
	return &ValkeyCache{client: client, prefix: prefix}
}

// Get implements Cache.
func (c *ValkeyCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	cmd := c.client.B().Get().Key(c.key(key)).Build()
	return readResult(c.client.Do(ctx, cmd).AsBytes())
}

// Set implements Cache.
func (c *ValkeyCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	builder := c.client.B().Set().Key(c.key(key)).Value(valkey.BinaryString(value))
	var cmd valkey.Completed
	if ex, ok := expiry(ttl); ok {
		cmd = builder.Ex(ex).Build()
	} else {
		cmd = builder.Build()
	}
	return c.client.Do(ctx, cmd).Error()
}

// readResult maps a GET reply: a nil reply is a miss, not an error.
func readResult(payload []byte, err error) ([]byte, bool, error) {
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return payload, true, nil
}

// expiry converts ttl to an EX argument. EX has second resolution, so
// sub-second TTLs round up to one second; ttl <= 0 means no expiry.
func expiry(ttl time.Duration) (time.Duration, bool) {
	if ttl <= 0 {
		return 0, false
	}
	if ttl < time.Second {
		return time.Second, true
	}
	return ttl, true
}

func (c *ValkeyCache) key(k string) string {
	return fmt.Sprintf("%s:%s", c.prefix, k)
}

var _ Cache = (*ValkeyCache)(nil)
