package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// CacheRedisClient struct holds the Redis client and context
type CacheRedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewCacheRedisClient initializes a new Redis client with default options
func NewCacheRedisClient(ctx context.Context, client *redis.Client) *CacheRedisClient {
	// Test the connection
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}
	fmt.Println("Connected to Redis")

	return &CacheRedisClient{
		client: client,
		ctx:    ctx,
	}
}

// Set sets a key-value pair in Redis with no expiry
func (r *CacheRedisClient) Set(key, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

// SetWithTTL sets a key-value pair in Redis that expires after ttl
func (r *CacheRedisClient) SetWithTTL(key, value string, ttl time.Duration) error {
	return r.client.Set(r.ctx, key, value, ttl).Err()
}

// Get retrieves the value for a given key from Redis. A missing key is
// reported as ErrNotFound.
func (r *CacheRedisClient) Get(key string) (string, error) {
	v, err := r.client.Get(r.ctx, key).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	return v, err
}

// GetContext returns the context bound to this client
func (r *CacheRedisClient) GetContext() context.Context {
	return r.ctx
}

// Ping verifies the connection to Redis
func (r *CacheRedisClient) Ping() error {
	return r.client.Ping(r.ctx).Err()
}

// Keys returns all keys matching the given pattern
func (r *CacheRedisClient) Keys(pattern string) ([]string, error) {
	return r.client.Keys(r.ctx, pattern).Result()
}

// Del deletes the given key
func (r *CacheRedisClient) Del(key string) error {
	return r.client.Del(r.ctx, key).Err()
}
