package db

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get when the key does not exist, so callers
// can tell a cache miss from a real Redis failure.
var ErrNotFound = errors.New("redis: key not found")

// RedisClientInterface defines the methods available in the RedisClient
type RedisClient interface {
	Set(key, value string) error
	SetWithTTL(key, value string, ttl time.Duration) error
	Get(key string) (string, error)
	GetContext() context.Context
	Ping() error
	Keys(pattern string) ([]string, error)
	Del(key string) error
}
