// Package file provides an AdventureStore backed by the local filesystem.
// Each adventure is one YAML document in a configured directory, which keeps
// stories diffable and editable by hand for offline authoring.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/fableworks/fable/pkg/domain"
)

const ext = ".yaml"

// Store implements ports.AdventureStore using one YAML file per adventure.
type Store struct {
	BasePath string

	now func() time.Time
}

// New creates a new Store with the given base path.
// If basePath is empty, it defaults to ".fable/adventures".
func New(basePath string) *Store {
	if basePath == "" {
		basePath = filepath.Join(".fable", "adventures")
	}
	return &Store{BasePath: basePath, now: time.Now}
}

func (s *Store) path(id string) string {
	return filepath.Join(s.BasePath, id+ext)
}

// save writes the document atomically: temp file, fsync, rename.
func (s *Store) save(adv *domain.Adventure) error {
	if err := os.MkdirAll(s.BasePath, 0o755); err != nil {
		return fmt.Errorf("failed to ensure adventure directory: %w", err)
	}

	data, err := yaml.Marshal(adv)
	if err != nil {
		return fmt.Errorf("failed to marshal adventure: %w", err)
	}

	// Same directory so the rename stays on one filesystem.
	tmp, err := os.CreateTemp(s.BasePath, "tmp-"+adv.ID+"-*"+ext)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path(adv.ID)); err != nil {
		return fmt.Errorf("failed to move adventure file into place: %w", err)
	}
	return nil
}

func (s *Store) load(id string) (*domain.Adventure, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read adventure file: %w", err)
	}

	var adv domain.Adventure
	if err := yaml.Unmarshal(data, &adv); err != nil {
		return nil, fmt.Errorf("failed to parse adventure file %s: %w", s.path(id), err)
	}
	adv.Normalize()
	return &adv, nil
}

// List returns all adventures, ordered by creation time.
func (s *Store) List(ctx context.Context) ([]domain.Adventure, error) {
	entries, err := os.ReadDir(s.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Adventure{}, nil
		}
		return nil, fmt.Errorf("failed to read adventure directory: %w", err)
	}

	all := make([]domain.Adventure, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ext) || strings.HasPrefix(name, "tmp-") {
			continue
		}
		adv, err := s.load(strings.TrimSuffix(name, ext))
		if err != nil {
			return nil, err
		}
		all = append(all, *adv)
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.Before(all[j].CreatedAt)
	})
	return all, nil
}

// Get retrieves one adventure.
func (s *Store) Get(ctx context.Context, id string) (*domain.Adventure, error) {
	return s.load(id)
}

// Create stores a new adventure with a generated id and fresh timestamps.
func (s *Store) Create(ctx context.Context, adv *domain.Adventure) (*domain.Adventure, error) {
	stored := adv.Clone()
	stored.ID = uuid.NewString()
	stored.Normalize()
	now := s.now()
	stored.CreatedAt = now
	stored.Touch(now)

	if err := s.save(stored); err != nil {
		return nil, err
	}
	return stored, nil
}

// Update applies the patch to the stored document and refreshes UpdatedAt.
func (s *Store) Update(ctx context.Context, id string, patch *domain.AdventurePatch) (*domain.Adventure, error) {
	adv, err := s.load(id)
	if err != nil {
		return nil, err
	}

	patch.Apply(adv)
	adv.Touch(s.now())

	if err := s.save(adv); err != nil {
		return nil, err
	}
	return adv, nil
}

// Delete removes the adventure file.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := os.Remove(s.path(id)); err != nil {
		if os.IsNotExist(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to delete adventure file: %w", err)
	}
	return nil
}
