package app

import (
	"context"

	"github.com/kagailawrence/modarflor/internal/pkg/logger"
)

// Cache keys of the public listings
const (
	cacheKeyServices          = "services:list"
	cacheKeyFAQs              = "faqs:list"
	cacheKeyFlooringTypes     = "flooring-types:list"
	cacheKeyProjectCategories = "projects:categories"
)

// ListCache is the read-through cache used for public listings.
// Cache errors are logged and treated as misses.
type ListCache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	DeletePrefix(ctx context.Context, prefix string) error
}

// readThrough returns the cached value for key or loads and caches it
func readThrough[T any](ctx context.Context, cache ListCache, log logger.Logger, key string, load func() (T, error)) (T, error) {
	var cached T
	hit, err := cache.Get(ctx, key, &cached)
	if err != nil {
		log.Warn("cache read failed", "key", key, "error", err)
	} else if hit {
		return cached, nil
	}

	value, err := load()
	if err != nil {
		return value, err
	}

	if err := cache.Set(ctx, key, value); err != nil {
		log.Warn("cache write failed", "key", key, "error", err)
	}
	return value, nil
}

// invalidate drops the cached listing after a write
func invalidate(ctx context.Context, cache ListCache, log logger.Logger, key string) {
	if err := cache.DeletePrefix(ctx, key); err != nil {
		log.Warn("cache invalidation failed", "key", key, "error", err)
	}
}
