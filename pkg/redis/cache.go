package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Cache stores JSON encoded values under CacheName::key
type Cache struct {
	client    *Client
	cacheName string
	ttl       time.Duration
}

// NewCache creates a cache named cacheName. The TTL comes from the client configuration.
func NewCache(client *Client, cacheName string) *Cache {
	return &Cache{
		client:    client,
		cacheName: cacheName,
		ttl:       client.GetConfig().CacheTTL(cacheName),
	}
}

// buildCacheKey constructs the full cache key using CacheName::cacheKey format
func (c *Cache) buildCacheKey(key string) string {
	if c.cacheName != "" {
		return c.cacheName + "::" + key
	}
	return key
}

// Get loads key into dest. It reports false when the key is absent.
func (c *Cache) Get(ctx context.Context, key string, dest any) (bool, error) {
	data, found, err := c.client.GetBytes(ctx, c.buildCacheKey(key))
	if err != nil || !found {
		return false, err
	}
	if err = json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to deserialize cached value: %w", err)
	}
	return true, nil
}

// Set stores value under key with the cache TTL
func (c *Cache) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize value: %w", err)
	}
	return c.client.Set(ctx, c.buildCacheKey(key), data, c.ttl)
}

// TTL returns the TTL applied by Set
func (c *Cache) TTL() time.Duration {
	return c.ttl
}
