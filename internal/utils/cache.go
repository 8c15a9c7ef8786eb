package utils

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"fmt"           // Cache key formatting
	"time"          // Time durations

	"github.com/redis/go-redis/v9" // Redis client
)

// Cache wraps a Redis client with JSON get/set helpers for response caching
type Cache struct {
	rdb *redis.Client // Underlying Redis client
}

// NewCache builds a Cache around a connected Redis client
func NewCache(rdb *redis.Client) *Cache {
	return &Cache{rdb: rdb}
}

// UsersPageKey builds the cache key for one page of the admin user listing
func UsersPageKey(page, pageSize int) string {
	return fmt.Sprintf("admin:users:page=%d:size=%d", page, pageSize)
}

// GetJSON retrieves a value from Redis and unmarshals it into dest
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	val, err := c.rdb.Get(ctx, key).Result() // Get value from Redis
	if err == redis.Nil {
		return false, nil // Key does not exist
	} else if err != nil {
		return false, err // Other Redis error
	}
	return true, json.Unmarshal([]byte(val), dest) // Unmarshal JSON into dest
}

// SetJSON stores a value in Redis as JSON with a TTL
func (c *Cache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value) // Marshal value to JSON
	if err != nil {
		return err // Return error if marshaling fails
	}
	return c.rdb.Set(ctx, key, b, ttl).Err() // Set value in Redis with TTL
}

// Delete removes keys from Redis
func (c *Cache) Delete(ctx context.Context, keys ...string) error {
	return c.rdb.Del(ctx, keys...).Err() // Delete keys
}
