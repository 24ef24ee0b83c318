package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fableworks/fable/pkg/adapters/memory"
	"github.com/fableworks/fable/pkg/domain"
)

func TestLogging_PassesThroughAndLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	store := Chain(memory.NewStore(), Logging(logger))
	ctx := context.Background()

	created, err := store.Create(ctx, &domain.Adventure{Title: "Logged"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := store.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Logged", got.Title)

	out := buf.String()
	assert.Contains(t, out, "store.create")
	assert.Contains(t, out, "store.get")
	assert.Contains(t, out, created.ID)
}

func TestLogging_ErrorsAreWarnings(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	store := Chain(memory.NewStore(), Logging(logger))

	_, err := store.Get(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)

	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "adventure not found")
}
