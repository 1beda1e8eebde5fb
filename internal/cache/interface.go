package cache

import (
	"context"
	"strconv"
	"time"
)

// Cache stores JSON-encoded values. A miss is reported as (false, nil).
type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

const (
	ProductKeyPrefix     = "catalog:product"
	ProductSlugKeyPrefix = "catalog:product-slug"
)

func Key(prefix string, id string) string {
	return prefix + ":" + id
}

func ProductKey(id int64) string {
	return Key(ProductKeyPrefix, strconv.FormatInt(id, 10))
}

func ProductSlugKey(slug string) string {
	return Key(ProductSlugKeyPrefix, slug)
}
