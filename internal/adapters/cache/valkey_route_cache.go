package cache

import (
	"context"
	"fmt"
	"route-sketch-service/internal/domain"
	"route-sketch-service/internal/platform/obs"
	"route-sketch-service/internal/ports"
	"time"

	"github.com/valkey-io/valkey-go"
)

const valkeyKeyPrefix = "routesketch:route:"

// ValkeyRouteCache stores routes in Valkey (Redis-compatible) with a TTL.
type ValkeyRouteCache struct {
	client valkey.Client
	ttl    time.Duration
}

var _ ports.RouteCache = (*ValkeyRouteCache)(nil)

// NewValkeyRouteCache connects to addr. A non-positive ttl keeps entries forever.
func NewValkeyRouteCache(addr string, ttl time.Duration) (*ValkeyRouteCache, error) {
	client, err := valkey.NewClient(valkey.ClientOption{
		InitAddress: []string{addr},
	})
	if err != nil {
		return nil, fmt.Errorf("valkey connect: %w", err)
	}
	return &ValkeyRouteCache{client: client, ttl: ttl}, nil
}

func (c *ValkeyRouteCache) Get(ctx context.Context, key string) (_ domain.RouteResult, _ bool, err error) {
	defer obs.Time(ctx, "route.cache.valkey.Get")(&err)

	cmd := c.client.Do(ctx, c.client.B().Get().Key(valkeyKeyPrefix+key).Build())
	b, err := cmd.AsBytes()
	if valkey.IsValkeyNil(err) {
		return domain.RouteResult{}, false, nil
	}
	if err != nil {
		return domain.RouteResult{}, false, fmt.Errorf("get route cache key=%q: %w", key, err)
	}

	r, err := decodeEntry(b)
	if err != nil {
		return domain.RouteResult{}, false, fmt.Errorf("get route cache key=%q: %w", key, err)
	}
	return r, true, nil
}

func (c *ValkeyRouteCache) Put(ctx context.Context, key string, result domain.RouteResult) error {
	b, err := encodeEntry(result)
	if err != nil {
		return fmt.Errorf("insert route cache: %w", err)
	}

	var cmd valkey.Completed
	if c.ttl > 0 {
		cmd = c.client.B().Set().Key(valkeyKeyPrefix + key).Value(valkey.BinaryString(b)).Ex(c.ttl).Build()
	} else {
		cmd = c.client.B().Set().Key(valkeyKeyPrefix + key).Value(valkey.BinaryString(b)).Build()
	}

	if err := c.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("insert route cache key=%q: %w", key, err)
	}
	return nil
}

// Close releases the client.
func (c *ValkeyRouteCache) Close() {
	c.client.Close()
}
