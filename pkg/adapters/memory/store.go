// Package memory provides an in-memory AdventureStore, used as the default
// backend for development and as the reference implementation in tests.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fableworks/fable/pkg/domain"
)

// Store implements ports.AdventureStore in memory.
// Safe for concurrent use.
type Store struct {
	data  map[string]*domain.Adventure
	order []string
	mu    sync.RWMutex

	now func() time.Time
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.Adventure),
		now:  time.Now,
	}
}

// List returns all adventures in insertion order.
func (s *Store) List(ctx context.Context) ([]domain.Adventure, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]domain.Adventure, 0, len(s.order))
	for _, id := range s.order {
		all = append(all, *s.data[id].Clone())
	}
	return all, nil
}

// Get retrieves one adventure. The returned document is a copy, so callers
// cannot mutate store state through the pointer.
func (s *Store) Get(ctx context.Context, id string) (*domain.Adventure, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	adv, ok := s.data[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return adv.Clone(), nil
}

// Create stores a new adventure with a generated id and fresh timestamps.
func (s *Store) Create(ctx context.Context, adv *domain.Adventure) (*domain.Adventure, error) {
	stored := adv.Clone()
	stored.ID = uuid.NewString()
	stored.Normalize()
	now := s.now()
	stored.CreatedAt = now
	stored.Touch(now)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[stored.ID] = stored
	s.order = append(s.order, stored.ID)

	return stored.Clone(), nil
}

// Update applies the patch to the stored document and refreshes UpdatedAt.
func (s *Store) Update(ctx context.Context, id string, patch *domain.AdventurePatch) (*domain.Adventure, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	adv, ok := s.data[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	updated := adv.Clone()
	patch.Apply(updated)
	updated.Touch(s.now())
	s.data[id] = updated

	return updated.Clone(), nil
}

// Delete removes the adventure.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.data, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
