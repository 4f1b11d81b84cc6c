package cache

import (
	"context"
	"sync"
)

// InMemorySelectionStore implements session.SelectionStore using a guarded
// variable. Suitable for single-instance deployments and testing.
type InMemorySelectionStore struct {
	mu     sync.RWMutex
	shopID string
}

// NewInMemorySelectionStore creates a new in-memory selection store
func NewInMemorySelectionStore() *InMemorySelectionStore {
	return &InMemorySelectionStore{}
}

// LoadSelection returns the stored shop id, empty when none was saved
func (s *InMemorySelectionStore) LoadSelection(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.shopID, nil
}

// SaveSelection stores the shop id
func (s *InMemorySelectionStore) SaveSelection(_ context.Context, shopID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shopID = shopID
	return nil
}
