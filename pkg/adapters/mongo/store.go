// Package mongo provides the primary AdventureStore, backed by a MongoDB
// collection. Connection details come from configuration (MONGODB_URI).
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fableworks/fable/pkg/domain"
)

const (
	defaultDatabase   = "fable"
	defaultCollection = "adventures"
	connectTimeout    = 10 * time.Second
)

// Store implements ports.AdventureStore using a MongoDB collection.
type Store struct {
	client *mongo.Client
	coll   *mongo.Collection

	now func() time.Time
}

// New connects to MongoDB and returns a store over the adventures collection.
// The caller owns the lifecycle and must Close the store when done.
func New(ctx context.Context, uri string) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return NewFromClient(client), nil
}

// NewFromClient creates a store from an existing client.
func NewFromClient(client *mongo.Client) *Store {
	return &Store{
		client: client,
		coll:   client.Database(defaultDatabase).Collection(defaultCollection),
		now:    time.Now,
	}
}

// List returns all adventures in natural (insertion) order.
func (s *Store) List(ctx context.Context) ([]domain.Adventure, error) {
	cursor, err := s.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to list adventures: %w", err)
	}
	defer cursor.Close(ctx)

	all := []domain.Adventure{}
	for cursor.Next(ctx) {
		var doc document
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode adventure: %w", err)
		}
		all = append(all, *doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate adventures: %w", err)
	}
	return all, nil
}

// Get retrieves one adventure.
func (s *Store) Get(ctx context.Context, id string) (*domain.Adventure, error) {
	var doc document
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get adventure: %w", err)
	}
	return doc.toDomain(), nil
}

// Create stores a new adventure with a generated id and fresh timestamps.
func (s *Store) Create(ctx context.Context, adv *domain.Adventure) (*domain.Adventure, error) {
	stored := adv.Clone()
	stored.ID = uuid.NewString()
	stored.Normalize()
	now := s.now()
	stored.CreatedAt = now
	stored.Touch(now)

	if _, err := s.coll.InsertOne(ctx, fromDomain(stored)); err != nil {
		return nil, fmt.Errorf("failed to insert adventure: %w", err)
	}
	return stored, nil
}

// Update applies the patch read-modify-write and refreshes UpdatedAt.
// Adventure is the sole aggregate, so single-document replace is the only
// atomicity this needs.
func (s *Store) Update(ctx context.Context, id string, patch *domain.AdventurePatch) (*domain.Adventure, error) {
	adv, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(adv)
	adv.Touch(s.now())

	res, err := s.coll.ReplaceOne(ctx, bson.M{"_id": id}, fromDomain(adv))
	if err != nil {
		return nil, fmt.Errorf("failed to update adventure: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrNotFound
	}
	return adv, nil
}

// Delete removes the adventure.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete adventure: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
