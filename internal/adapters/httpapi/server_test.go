package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fableworks/fable/internal/logging"
	"github.com/fableworks/fable/pkg/adapters/memory"
	"github.com/fableworks/fable/pkg/domain"
)

func newTestHandler() http.Handler {
	return NewHandler(memory.NewStore(), logging.NewNop())
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func decodeAdventure(t *testing.T, w *httptest.ResponseRecorder) domain.Adventure {
	t.Helper()
	var adv domain.Adventure
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &adv))
	return adv
}

func TestCreateAdventure_EmptyNodesAndRoundTrip(t *testing.T) {
	handler := newTestHandler()

	w := doJSON(t, handler, "POST", "/api/adventures", map[string]any{"title": "Test"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	created := decodeAdventure(t, w)
	assert.NotEmpty(t, created.ID)
	require.NotNil(t, created.Nodes)
	assert.Len(t, created.Nodes, 0)
	assert.False(t, created.CreatedAt.IsZero())

	w = doJSON(t, handler, "GET", "/api/adventures/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeAdventure(t, w)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Test", got.Title)
	assert.Len(t, got.Nodes, 0)
}

func TestCreateAdventure_ValidationFailure(t *testing.T) {
	handler := newTestHandler()

	w := doJSON(t, handler, "POST", "/api/adventures", map[string]any{"description": "no title"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "title")
}

func TestCreateAdventure_InvalidJSON(t *testing.T) {
	handler := newTestHandler()

	req := httptest.NewRequest("POST", "/api/adventures", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListAdventures(t *testing.T) {
	handler := newTestHandler()

	doJSON(t, handler, "POST", "/api/adventures", map[string]any{"title": "One"})
	doJSON(t, handler, "POST", "/api/adventures", map[string]any{"title": "Two"})

	w := doJSON(t, handler, "GET", "/api/adventures", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var all []domain.Adventure
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	assert.Len(t, all, 2)
}

func TestUpdateAdventure(t *testing.T) {
	handler := newTestHandler()

	created := decodeAdventure(t, doJSON(t, handler, "POST", "/api/adventures", map[string]any{
		"title": "Before",
		"nodes": []map[string]any{{"id": "n1", "title": "Only", "isStart": true}},
	}))

	t.Run("patch replaces present fields only", func(t *testing.T) {
		w := doJSON(t, handler, "PUT", "/api/adventures/"+created.ID, map[string]any{"title": "After"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		updated := decodeAdventure(t, w)
		assert.Equal(t, "After", updated.Title)
		require.Len(t, updated.Nodes, 1, "nodes absent from body must survive")
		assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
	})

	t.Run("unknown id", func(t *testing.T) {
		w := doJSON(t, handler, "PUT", "/api/adventures/bad-id", map[string]any{"title": "x"})
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Adventure not found"}`, w.Body.String())
	})

	t.Run("patching title to empty fails validation", func(t *testing.T) {
		w := doJSON(t, handler, "PUT", "/api/adventures/"+created.ID, map[string]any{"title": ""})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		// The stored document is untouched.
		got := decodeAdventure(t, doJSON(t, handler, "GET", "/api/adventures/"+created.ID, nil))
		assert.Equal(t, "After", got.Title)
	})
}

func TestDeleteAdventure_Idempotence(t *testing.T) {
	handler := newTestHandler()

	created := decodeAdventure(t, doJSON(t, handler, "POST", "/api/adventures", map[string]any{"title": "Doomed"}))

	w := doJSON(t, handler, "DELETE", "/api/adventures/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Adventure deleted successfully"}`, w.Body.String())

	w = doJSON(t, handler, "DELETE", "/api/adventures/"+created.ID, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Adventure not found"}`, w.Body.String())
}

func TestGetAdventure_NotFound(t *testing.T) {
	handler := newTestHandler()

	w := doJSON(t, handler, "GET", "/api/adventures/nope", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Adventure not found"}`, w.Body.String())
}

func TestHealthAndCORS(t *testing.T) {
	handler := newTestHandler()

	w := doJSON(t, handler, "GET", "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	req := httptest.NewRequest("OPTIONS", "/api/adventures", nil)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
