package fable

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fableworks/fable/internal/config"
	"github.com/fableworks/fable/pkg/adapters/file"
	"github.com/fableworks/fable/pkg/adapters/memory"
	"github.com/fableworks/fable/pkg/adapters/mongo"
	"github.com/fableworks/fable/pkg/adapters/redis"
	"github.com/fableworks/fable/pkg/persistence/middleware"
	"github.com/fableworks/fable/pkg/ports"
)

// Version is the fable release version. It is overridden at build time via
// -ldflags "-X github.com/fableworks/fable.Version=...".
var Version = "0.1.0-dev"

// OpenStore builds the AdventureStore selected by cfg.Store and wraps it
// with operation logging. The returned cleanup function releases any
// backend connection and must be called when the store is no longer used.
func OpenStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (ports.AdventureStore, func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }

	var store ports.AdventureStore
	cleanup := noop

	switch cfg.Store {
	case config.StoreMemory:
		store = memory.NewStore()
	case config.StoreFile:
		store = file.New(cfg.DataDir)
	case config.StoreRedis:
		store = redis.New(cfg.RedisAddr, "", 0)
	case config.StoreMongo:
		ms, err := mongo.New(ctx, cfg.MongoURI)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to mongodb: %w", err)
		}
		store = ms
		cleanup = ms.Close
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store)
	}

	return middleware.Chain(store, middleware.Logging(logger)), cleanup, nil
}
