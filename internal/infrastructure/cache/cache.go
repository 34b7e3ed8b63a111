// Package cache provides the read-through cache used for public catalog listings.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/kagailawrence/modarflor/internal/pkg/config"
	"github.com/kagailawrence/modarflor/internal/pkg/logger"
)

// KeyPrefix namespaces every key written by this service
const KeyPrefix = "modarflor:"

// Store is a JSON value cache
type Store interface {
	// Get decodes the cached value into dest and reports whether the key was present
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	// Set stores value under key with the configured ttl
	Set(ctx context.Context, key string, value interface{}) error
	// DeletePrefix removes every key starting with prefix
	DeletePrefix(ctx context.Context, prefix string) error
	Close() error
}

// NewStore returns a redis store when caching is enabled and a no-op store otherwise
func NewStore(ctx context.Context, settings *config.CacheSettings, logger logger.Logger) (Store, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if !settings.Enabled {
		return NoopStore{}, nil
	}
	store, err := NewRedisStore(ctx, settings, logger)
	if err != nil {
		return nil, err
	}
	return store, nil
}

// RedisStore keeps values in redis as JSON strings
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

// NewRedisStore connects and pings the redis server
func NewRedisStore(ctx context.Context, settings *config.CacheSettings, logger logger.Logger) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     settings.Addr,
		Password: settings.Password,
		DB:       settings.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", settings.Addr, err)
	}

	logger.Info("redis cache connected", "addr", settings.Addr, "ttl", settings.TTL.String())
	return &RedisStore{client: client, ttl: settings.TTL, logger: logger}, nil
}

// Get returns false on a cache miss
func (s *RedisStore) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, err := s.client.Get(ctx, KeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read cache key %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("failed to decode cache key %s: %w", key, err)
	}
	return true, nil
}

// Set encodes value as JSON
func (s *RedisStore) Set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode cache key %s: %w", key, err)
	}

	if err := s.client.Set(ctx, KeyPrefix+key, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache key %s: %w", key, err)
	}
	return nil
}

// DeletePrefix scans for matching keys and deletes them in batches
func (s *RedisStore) DeletePrefix(ctx context.Context, prefix string) error {
	iter := s.client.Scan(ctx, 0, KeyPrefix+prefix+"*", 100).Iterator()

	batch := make([]string, 0, 100)
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == cap(batch) {
			if err := s.client.Del(ctx, batch...).Err(); err != nil {
				return fmt.Errorf("failed to delete cache keys %s*: %w", prefix, err)
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cache keys %s*: %w", prefix, err)
	}

	if len(batch) > 0 {
		if err := s.client.Del(ctx, batch...).Err(); err != nil {
			return fmt.Errorf("failed to delete cache keys %s*: %w", prefix, err)
		}
	}
	return nil
}

// Close closes the redis connection pool
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// NoopStore never holds anything
type NoopStore struct{}

// Get always misses
func (NoopStore) Get(context.Context, string, interface{}) (bool, error) { return false, nil }

// Set discards the value
func (NoopStore) Set(context.Context, string, interface{}) error { return nil }

// DeletePrefix does nothing
func (NoopStore) DeletePrefix(context.Context, string) error { return nil }

// Close does nothing
func (NoopStore) Close() error { return nil }
