package db

import (
	"context"
	"strings"
	"sync"
	"time"
)

// MockRedisClient is an in-memory implementation of RedisClient for tests
// and local development. TTLs are recorded but not enforced. Safe for
// concurrent use; the report cache is written fire-and-forget.
type MockRedisClient struct {
	mu   sync.Mutex
	data map[string]string
	ttls map[string]time.Duration
	ctx  context.Context
}

func NewMockRedisClient() *MockRedisClient {
	return &MockRedisClient{
		data: make(map[string]string),
		ttls: make(map[string]time.Duration),
		ctx:  context.Background(),
	}
}

func (m *MockRedisClient) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MockRedisClient) SetWithTTL(key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	m.ttls[key] = ttl
	return nil
}

func (m *MockRedisClient) Get(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *MockRedisClient) GetContext() context.Context {
	return m.ctx
}

func (m *MockRedisClient) Ping() error {
	return nil
}

func (m *MockRedisClient) Keys(pattern string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	// Supports only the trailing-wildcard patterns used by the DAOs.
	prefix := strings.TrimSuffix(pattern, "*")
	var keys []string
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

func (m *MockRedisClient) Del(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	delete(m.ttls, key)
	return nil
}

// TTLFor reports the TTL recorded for a key, for test assertions.
func (m *MockRedisClient) TTLFor(key string) (time.Duration, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ttl, ok := m.ttls[key]
	return ttl, ok
}
