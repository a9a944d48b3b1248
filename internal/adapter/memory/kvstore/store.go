package kvstore

import (
	"context"
	"sync"

	"gitlab.com/webrequest.net/internal/core/ports/secondary"
)

var _ secondary.KeyValueStore = (*Store)(nil)

// Store is an in-process key-value area. Contents are lost on exit.
type Store struct {
	mu   sync.RWMutex
	data map[string]string
}

// New creates an empty store
func New() *Store {
	return &Store{data: make(map[string]string)}
}

// Get returns the value under key
func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.data[key]
	return value, ok, nil
}

// Set stores value under key
func (s *Store) Set(_ context.Context, key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

// Delete removes key
func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
