// Package session persists the process-wide login flag. The flag is a
// single boolean under a fixed key: one active user session per
// deployment, matching the app it serves.
package session

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"
)

const flagKey = "isLoggedIn"

type Store interface {
	Get(ctx context.Context) (bool, error)
	Set(ctx context.Context, loggedIn bool) error
}

// RedisStore keeps the flag in redis so it survives restarts.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context) (bool, error) {
	val, err := s.client.Get(ctx, flagKey).Bool()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return val, nil
}

func (s *RedisStore) Set(ctx context.Context, loggedIn bool) error {
	return s.client.Set(ctx, flagKey, loggedIn, 0).Err()
}

// MemoryStore is the in-process fallback used in tests and when no
// redis address is configured.
type MemoryStore struct {
	mu       sync.RWMutex
	loggedIn bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get(ctx context.Context) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loggedIn, nil
}

func (s *MemoryStore) Set(ctx context.Context, loggedIn bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loggedIn = loggedIn
	return nil
}
