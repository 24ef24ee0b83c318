package client_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fableworks/fable/internal/adapters/httpapi"
	"github.com/fableworks/fable/internal/logging"
	"github.com/fableworks/fable/pkg/adapters/memory"
	"github.com/fableworks/fable/pkg/client"
	"github.com/fableworks/fable/pkg/domain"
)

func newTestClient(t *testing.T) *client.Client {
	t.Helper()
	srv := httptest.NewServer(httpapi.NewHandler(memory.NewStore(), logging.NewNop()))
	t.Cleanup(srv.Close)
	return client.New(srv.URL, client.WithHTTPClient(srv.Client()))
}

func TestClient_CRUDRoundTrip(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	created, err := c.CreateAdventure(ctx, &domain.Adventure{
		Title: "Round Trip",
		Nodes: []domain.StoryNode{
			{ID: "a", Title: "A", IsStart: true, Choices: []domain.Choice{{Text: "on", TargetNodeID: "b"}}},
			{ID: "b", Title: "B", IsEnding: true},
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	got, err := c.GetAdventure(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Round Trip", got.Title)
	require.Len(t, got.Nodes, 2)
	assert.Equal(t, "b", got.Nodes[0].Choices[0].TargetNodeID)

	got.Title = "Renamed"
	updated, err := c.UpdateAdventure(ctx, got.ID, got)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Len(t, updated.Nodes, 2)

	all, err := c.ListAdventures(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, c.DeleteAdventure(ctx, created.ID))

	_, err = c.GetAdventure(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClient_ErrorMapping(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	_, err := c.GetAdventure(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = c.DeleteAdventure(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = c.CreateAdventure(ctx, &domain.Adventure{Description: "no title"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title")
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}
