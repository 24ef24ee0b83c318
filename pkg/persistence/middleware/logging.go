package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/fableworks/fable/pkg/domain"
	"github.com/fableworks/fable/pkg/ports"
)

// loggingStore wraps an AdventureStore and emits a structured log line per
// operation, with the duration and any error.
type loggingStore struct {
	next   ports.AdventureStore
	logger *slog.Logger
}

// Logging returns a middleware that logs every store operation.
func Logging(logger *slog.Logger) Middleware {
	return func(next ports.AdventureStore) ports.AdventureStore {
		return &loggingStore{next: next, logger: logger}
	}
}

func (s *loggingStore) List(ctx context.Context) ([]domain.Adventure, error) {
	start := time.Now()
	advs, err := s.next.List(ctx)
	s.log(ctx, "store.list", start, err, slog.Int("count", len(advs)))
	return advs, err
}

func (s *loggingStore) Get(ctx context.Context, id string) (*domain.Adventure, error) {
	start := time.Now()
	adv, err := s.next.Get(ctx, id)
	s.log(ctx, "store.get", start, err, slog.String("id", id))
	return adv, err
}

func (s *loggingStore) Create(ctx context.Context, adv *domain.Adventure) (*domain.Adventure, error) {
	start := time.Now()
	created, err := s.next.Create(ctx, adv)
	id := ""
	if created != nil {
		id = created.ID
	}
	s.log(ctx, "store.create", start, err, slog.String("id", id))
	return created, err
}

func (s *loggingStore) Update(ctx context.Context, id string, patch *domain.AdventurePatch) (*domain.Adventure, error) {
	start := time.Now()
	updated, err := s.next.Update(ctx, id, patch)
	s.log(ctx, "store.update", start, err, slog.String("id", id))
	return updated, err
}

func (s *loggingStore) Delete(ctx context.Context, id string) error {
	start := time.Now()
	err := s.next.Delete(ctx, id)
	s.log(ctx, "store.delete", start, err, slog.String("id", id))
	return err
}

func (s *loggingStore) log(ctx context.Context, op string, start time.Time, err error, attrs ...slog.Attr) {
	attrs = append(attrs, slog.Duration("duration", time.Since(start)))
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
		s.logger.LogAttrs(ctx, slog.LevelWarn, op, attrs...)
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelDebug, op, attrs...)
}
