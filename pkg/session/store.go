// Package session keeps the last pipeline run for the duration of the
// process. Single-slot semantics: each new run overwrites the previous one.
// Nothing is ever written to disk; a restart loses the slot, matching the
// no-server-side-persistence contract.
package session

import (
	"sync"

	"github.com/contentcycle/contentcycle/pkg/domain"
)

// Store holds the last processed result
type Store interface {
	Get() (*domain.ProcessedResult, bool)
	Set(result *domain.ProcessedResult)
	Clear()
}

// MemoryStore is the in-memory single-slot Store implementation
type MemoryStore struct {
	mu     sync.RWMutex
	result *domain.ProcessedResult
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

// Get returns the stored result, if any
func (s *MemoryStore) Get() (*domain.ProcessedResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.result == nil {
		return nil, false
	}
	return s.result, true
}

// Set overwrites the slot with a new result
func (s *MemoryStore) Set(result *domain.ProcessedResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = result
}

// Clear empties the slot
func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = nil
}
