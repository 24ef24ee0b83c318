// Package httpapi exposes the adventure store as a JSON REST API.
package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fableworks/fable/pkg/domain"
	"github.com/fableworks/fable/pkg/observability"
	"github.com/fableworks/fable/pkg/ports"
)

// Server holds the handler dependencies.
type Server struct {
	store  ports.AdventureStore
	logger *slog.Logger
}

// NewHandler creates the HTTP handler for the API.
func NewHandler(store ports.AdventureStore, logger *slog.Logger) http.Handler {
	server := &Server{store: store, logger: logger}

	r := chi.NewRouter()
	r.Use(requestTelemetry(logger))

	r.Get("/health", server.GetHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/adventures", func(r chi.Router) {
		r.Get("/", server.ListAdventures)
		r.Post("/", server.CreateAdventure)
		r.Get("/{id}", server.GetAdventure)
		r.Put("/{id}", server.UpdateAdventure)
		r.Delete("/{id}", server.DeleteAdventure)
	})

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ListAdventures handles GET /api/adventures.
func (s *Server) ListAdventures(w http.ResponseWriter, r *http.Request) {
	all, err := s.store.List(r.Context())
	if err != nil {
		s.logger.Error("list adventures failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch adventures")
		return
	}
	writeJSON(w, http.StatusOK, all)
}

// GetAdventure handles GET /api/adventures/{id}.
func (s *Server) GetAdventure(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	adv, err := s.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Adventure not found")
			return
		}
		s.logger.Error("get adventure failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "Failed to fetch adventure")
		return
	}
	writeJSON(w, http.StatusOK, adv)
}

// CreateAdventure handles POST /api/adventures.
func (s *Server) CreateAdventure(w http.ResponseWriter, r *http.Request) {
	var adv domain.Adventure
	if err := json.NewDecoder(r.Body).Decode(&adv); err != nil {
		s.logger.Warn("create: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	adv.ID = "" // ids are assigned by the store
	adv.Normalize()

	if err := adv.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := s.store.Create(r.Context(), &adv)
	if err != nil {
		s.logger.Error("create adventure failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to create adventure")
		return
	}

	observability.AdventuresCreatedTotal.Inc()
	writeJSON(w, http.StatusCreated, created)
}

// UpdateAdventure handles PUT /api/adventures/{id}. Fields present in the body
// replace the stored value; fields absent keep it.
func (s *Server) UpdateAdventure(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch domain.AdventurePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		s.logger.Warn("update: invalid request body", "error", err, "id", id)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Validate the would-be result before persisting anything.
	existing, err := s.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Adventure not found")
			return
		}
		s.logger.Error("update adventure failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "Failed to update adventure")
		return
	}
	preview := existing.Clone()
	patch.Apply(preview)
	if err := preview.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := s.store.Update(r.Context(), id, &patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Adventure not found")
			return
		}
		s.logger.Error("update adventure failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "Failed to update adventure")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteAdventure handles DELETE /api/adventures/{id}.
func (s *Server) DeleteAdventure(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Adventure not found")
			return
		}
		s.logger.Error("delete adventure failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "Failed to delete adventure")
		return
	}

	observability.AdventuresDeletedTotal.Inc()
	writeJSON(w, http.StatusOK, map[string]string{"message": "Adventure deleted successfully"})
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
