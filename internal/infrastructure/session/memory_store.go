package session

import (
	"context"
	"sync"

	"aurum-admin-core/internal/ports"
)

// MemoryStore is a process-lifetime session map. A restart invalidates all
// sessions; there is no expiry policy. RedisStore is the persistent
// alternative.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]string
}

// NewMemoryStore creates an empty in-memory session store
func NewMemoryStore() ports.SessionStore {
	return &MemoryStore{
		sessions: make(map[string]string),
	}
}

// Set records a session token for an administrator
func (s *MemoryStore) Set(_ context.Context, token string, adminID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = adminID
	return nil
}

// Get returns the administrator ID for a token, or "" if unknown
func (s *MemoryStore) Get(_ context.Context, token string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[token], nil
}

// Delete removes a session token
func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
