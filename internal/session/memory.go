package session

import (
	"context"
	"encoding/json"
	"sync"
)

// memoryStore is an in-memory Store used in tests and local development.
// Values round-trip through JSON so behavior matches the Redis store.
type memoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore creates an in-memory session store
func NewMemoryStore() Store {
	return &memoryStore{data: make(map[string][]byte)}
}

func (s *memoryStore) Get(_ context.Context, sessionID, key string, dest interface{}) error {
	s.mu.RLock()
	raw, ok := s.data[sessionID+":"+key]
	s.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	return json.Unmarshal(raw, dest)
}

func (s *memoryStore) Set(_ context.Context, sessionID, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data[sessionID+":"+key] = raw
	s.mu.Unlock()
	return nil
}

func (s *memoryStore) Clear(_ context.Context, sessionID, key string) error {
	s.mu.Lock()
	delete(s.data, sessionID+":"+key)
	s.mu.Unlock()
	return nil
}
