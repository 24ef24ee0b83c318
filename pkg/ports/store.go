// Package ports defines the driven-port interfaces of the fable core, plus a
// reusable contract suite that every adapter must pass.
package ports

import (
	"context"

	"github.com/fableworks/fable/pkg/domain"
)

// AdventureStore is the persistence gateway for Adventure documents.
// Adventures are the sole aggregate: every operation is a single-document
// request/response pair with no transactional combination.
type AdventureStore interface {
	// List returns all adventures. Order is unspecified; insertion order is
	// typical but not guaranteed by every backend.
	List(ctx context.Context) ([]domain.Adventure, error)

	// Get retrieves one adventure by id.
	// Returns domain.ErrNotFound if the id is unknown.
	Get(ctx context.Context, id string) (*domain.Adventure, error)

	// Create stores a new adventure, assigning its id and both timestamps,
	// and returns the stored document.
	Create(ctx context.Context, adv *domain.Adventure) (*domain.Adventure, error)

	// Update applies a partial patch to an existing adventure, refreshes
	// UpdatedAt, and returns the updated document.
	// Returns domain.ErrNotFound if the id is unknown.
	Update(ctx context.Context, id string, patch *domain.AdventurePatch) (*domain.Adventure, error)

	// Delete removes the adventure and its nodes.
	// Returns domain.ErrNotFound if the id is unknown.
	Delete(ctx context.Context, id string) error
}
