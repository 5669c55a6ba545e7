package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const nameTTL = 10 * time.Minute

// ProductNameCache memoizes product-name lookups for order listings so that
// repeated orders for the same product do not each trigger a point lookup.
// It fails safe: if redis is absent or unreachable every call behaves like a
// cache miss.
type ProductNameCache struct {
	client *redis.Client
}

func NewProductNameCache(addr, password string, db int) *ProductNameCache {
	if addr == "" {
		return &ProductNameCache{}
	}
	return &ProductNameCache{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

func (c *ProductNameCache) Get(ctx context.Context, productID string) (string, bool) {
	if c == nil || c.client == nil {
		return "", false
	}
	name, err := c.client.Get(ctx, key(productID)).Result()
	if err != nil {
		return "", false
	}
	return name, true
}

func (c *ProductNameCache) Set(ctx context.Context, productID, name string) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Set(ctx, key(productID), name, nameTTL)
}

// Invalidate drops a cached name after a product is renamed or deleted.
func (c *ProductNameCache) Invalidate(ctx context.Context, productID string) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Del(ctx, key(productID))
}

func (c *ProductNameCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

func key(productID string) string {
	return "product:name:" + productID
}
