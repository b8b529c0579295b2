package session

import (
	"context"
	"sync"
)

// MemoryStore is a process local Store used in mock mode
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]map[string]string
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]map[string]string)}
}

// Get returns the stored value, or "" when the key is absent
func (s *MemoryStore) Get(ctx context.Context, sessionID, key string) (string, error) {
	if sessionID == "" {
		return "", ErrNoSession
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[sessionID][key], nil
}

func (s *MemoryStore) Set(ctx context.Context, sessionID, key, value string) error {
	if sessionID == "" {
		return ErrNoSession
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	values, ok := s.sessions[sessionID]
	if !ok {
		values = make(map[string]string)
		s.sessions[sessionID] = values
	}
	values[key] = value
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, sessionID string, keys ...string) error {
	if sessionID == "" {
		return ErrNoSession
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	values, ok := s.sessions[sessionID]
	if !ok {
		return nil
	}
	for _, k := range keys {
		delete(values, k)
	}
	if len(values) == 0 {
		delete(s.sessions, sessionID)
	}
	return nil
}
