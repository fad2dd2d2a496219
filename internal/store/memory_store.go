package store

import (
	"context"
	"sync"

	"github.com/trektrust/trektrust-backend/internal/app/model"
)

// MemoryStore holds the snapshot in process memory. Used by tests and by
// ephemeral runs that do not want a persisted slot.
type MemoryStore struct {
	mu       sync.Mutex
	snapshot *model.Snapshot
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(_ context.Context) (*model.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshot == nil {
		return nil, ErrNoSnapshot
	}
	return s.snapshot.Clone(), nil
}

func (s *MemoryStore) Save(_ context.Context, snapshot *model.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = snapshot.Clone()
	return nil
}

func (s *MemoryStore) Close() error { return nil }
