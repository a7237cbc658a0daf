package session

import (
	"context"
	"fmt"
	"time"

	"aurum-admin-core/internal/ports"

	"github.com/redis/go-redis/v9"
)

// sessionTTL bounds how long a Redis-backed session lives
const sessionTTL = 30 * 24 * time.Hour

const keyPrefix = "session:"

// RedisStore is the persistent, expiring alternative to MemoryStore.
// Sessions survive process restarts and expire after sessionTTL.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a session store backed by the Redis at redisURL
func NewRedisStore(redisURL string) (ports.SessionStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	return &RedisStore{client: redis.NewClient(opts)}, nil
}

// Set records a session token for an administrator with a TTL
func (s *RedisStore) Set(ctx context.Context, token string, adminID string) error {
	if err := s.client.Set(ctx, keyPrefix+token, adminID, sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// Get returns the administrator ID for a token, or "" if unknown or expired
func (s *RedisStore) Get(ctx context.Context, token string) (string, error) {
	adminID, err := s.client.Get(ctx, keyPrefix+token).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read session: %w", err)
	}
	return adminID, nil
}

// Delete removes a session token
func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
