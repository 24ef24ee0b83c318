// Package redis provides an AdventureStore backed by Redis, storing each
// adventure as a JSON value plus a ZSET index for listing.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	backend "github.com/redis/go-redis/v9"

	"github.com/fableworks/fable/pkg/domain"
)

// Store implements ports.AdventureStore using Redis.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration

	now func() time.Time
}

type Option func(*Store)

// WithTTL sets the expiration for stored adventures.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix for adventures.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "fable:adventure:",
		ttl:    0, // No expiration by default
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

func (s *Store) key(id string) string {
	return s.prefix + id
}

func (s *Store) indexKey() string {
	return s.prefix + "index"
}

// save writes the document and its index entry in one pipeline.
func (s *Store) save(ctx context.Context, adv *domain.Adventure) error {
	data, err := json.Marshal(adv)
	if err != nil {
		return fmt.Errorf("failed to marshal adventure: %w", err)
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, s.key(adv.ID), data, s.ttl)

	// Index score orders List by creation time.
	pipe.ZAdd(ctx, s.indexKey(), backend.Z{
		Score:  float64(adv.CreatedAt.UnixNano()),
		Member: adv.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// List returns all adventures ordered by creation time.
func (s *Store) List(ctx context.Context) ([]domain.Adventure, error) {
	ids, err := s.client.ZRange(ctx, s.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list adventures: %w", err)
	}

	all := make([]domain.Adventure, 0, len(ids))
	for _, id := range ids {
		adv, err := s.Get(ctx, id)
		if err == domain.ErrNotFound {
			// Value expired but index entry lingered; prune lazily.
			_ = s.client.ZRem(ctx, s.indexKey(), id).Err()
			continue
		}
		if err != nil {
			return nil, err
		}
		all = append(all, *adv)
	}
	return all, nil
}

// Get retrieves one adventure.
func (s *Store) Get(ctx context.Context, id string) (*domain.Adventure, error) {
	val, err := s.client.Get(ctx, s.key(id)).Result()
	if err != nil {
		if err == backend.Nil {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}

	var adv domain.Adventure
	if err := json.Unmarshal([]byte(val), &adv); err != nil {
		return nil, fmt.Errorf("failed to unmarshal adventure: %w", err)
	}
	adv.Normalize()

	return &adv, nil
}

// Create stores a new adventure with a generated id and fresh timestamps.
func (s *Store) Create(ctx context.Context, adv *domain.Adventure) (*domain.Adventure, error) {
	stored := adv.Clone()
	stored.ID = uuid.NewString()
	stored.Normalize()
	now := s.now()
	stored.CreatedAt = now
	stored.Touch(now)

	if err := s.save(ctx, stored); err != nil {
		return nil, err
	}
	return stored, nil
}

// Update applies the patch to the stored document and refreshes UpdatedAt.
func (s *Store) Update(ctx context.Context, id string, patch *domain.AdventurePatch) (*domain.Adventure, error) {
	adv, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(adv)
	adv.Touch(s.now())

	if err := s.save(ctx, adv); err != nil {
		return nil, err
	}
	return adv, nil
}

// Delete removes the adventure and its index entry.
func (s *Store) Delete(ctx context.Context, id string) error {
	deleted, err := s.client.Del(ctx, s.key(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete from redis: %w", err)
	}
	if deleted == 0 {
		return domain.ErrNotFound
	}
	return s.client.ZRem(ctx, s.indexKey(), id).Err()
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
