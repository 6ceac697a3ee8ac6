// Package cache provides small TTL caches for derived read models such as the
// customer city list and the product catalog.
package cache

import (
	"context"
	"time"
)

// Cache stores JSON-encodable values under string keys with a time to live.
type Cache interface {
	// Get decodes the value stored under key into dest. It reports false on a
	// miss or an expired entry.
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// Keys used by the services.
const (
	KeyCustomerCities = "customers:cities"
	KeyProductCatalog = "products:catalog"
)
