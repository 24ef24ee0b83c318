package ports

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fableworks/fable/pkg/domain"
)

// RunAdventureStoreContract runs a suite of tests to verify that an
// AdventureStore implementation adheres to the defined interface contract.
func RunAdventureStoreContract(t *testing.T, store AdventureStore) {
	ctx := context.Background()

	newAdventure := func(title string) *domain.Adventure {
		return &domain.Adventure{
			Title:       title,
			Description: "contract fixture",
			Nodes: []domain.StoryNode{
				{
					ID:      "a",
					Title:   "A",
					IsStart: true,
					Choices: []domain.Choice{{Text: "Onwards", TargetNodeID: "b"}},
				},
				{ID: "b", Title: "B", IsEnding: true, Choices: []domain.Choice{}},
			},
		}
	}

	t.Run("Create assigns id and timestamps", func(t *testing.T) {
		created, err := store.Create(ctx, newAdventure("Create"))
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.False(t, created.CreatedAt.IsZero())
		assert.False(t, created.UpdatedAt.IsZero())
		assert.False(t, created.UpdatedAt.Before(created.CreatedAt))
	})

	t.Run("Create empty adventure keeps empty node list", func(t *testing.T) {
		created, err := store.Create(ctx, &domain.Adventure{Title: "Bare"})
		require.NoError(t, err)
		require.NotNil(t, created.Nodes)
		assert.Len(t, created.Nodes, 0)

		got, err := store.Get(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, got.Nodes)
		assert.Len(t, got.Nodes, 0)
	})

	t.Run("Round-trip preserves structure", func(t *testing.T) {
		created, err := store.Create(ctx, newAdventure("Round-trip"))
		require.NoError(t, err)

		got, err := store.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "Round-trip", got.Title)
		require.Len(t, got.Nodes, 2)
		assert.Equal(t, "a", got.Nodes[0].ID)
		assert.True(t, got.Nodes[0].IsStart)
		require.Len(t, got.Nodes[0].Choices, 1)
		assert.Equal(t, "b", got.Nodes[0].Choices[0].TargetNodeID)
		assert.True(t, got.Nodes[1].IsEnding)
	})

	t.Run("Get unknown id", func(t *testing.T) {
		_, err := store.Get(ctx, "does-not-exist")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Update patches fields and bumps UpdatedAt", func(t *testing.T) {
		created, err := store.Create(ctx, newAdventure("Before"))
		require.NoError(t, err)

		title := "After"
		updated, err := store.Update(ctx, created.ID, &domain.AdventurePatch{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, "After", updated.Title)
		assert.Equal(t, "contract fixture", updated.Description, "absent patch field keeps stored value")
		assert.Len(t, updated.Nodes, 2)
		assert.Equal(t, created.CreatedAt.Unix(), updated.CreatedAt.Unix())
		assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

		got, err := store.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "After", got.Title)
	})

	t.Run("Update unknown id", func(t *testing.T) {
		title := "x"
		_, err := store.Update(ctx, "does-not-exist", &domain.AdventurePatch{Title: &title})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Delete is not idempotent", func(t *testing.T) {
		created, err := store.Create(ctx, newAdventure("Doomed"))
		require.NoError(t, err)

		require.NoError(t, store.Delete(ctx, created.ID))

		_, err = store.Get(ctx, created.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		err = store.Delete(ctx, created.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound, "second delete must report not-found")
	})

	t.Run("List contains created adventures", func(t *testing.T) {
		a, err := store.Create(ctx, newAdventure("List A"))
		require.NoError(t, err)
		b, err := store.Create(ctx, newAdventure("List B"))
		require.NoError(t, err)

		all, err := store.List(ctx)
		require.NoError(t, err)

		ids := make(map[string]bool, len(all))
		for _, adv := range all {
			ids[adv.ID] = true
		}
		assert.True(t, ids[a.ID])
		assert.True(t, ids[b.ID])
	})
}
