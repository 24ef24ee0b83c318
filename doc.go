/*
Package fable is a choose-your-own-adventure engine: a document model for
branching stories, a JSON API to persist them, and terminal tooling to write
and play them.

It follows a Hexagonal Architecture. The core model (pkg/domain) knows nothing
about storage or transport; persistence goes through the AdventureStore port
(pkg/ports) with interchangeable adapters (pkg/adapters: memory, file, redis,
mongo), and the HTTP surface lives in internal/adapters/httpapi. The editing
and playback flows (pkg/editor, pkg/player) operate on plain Adventure values
and can be embedded in any front end.

# Concept

An Adventure is a graph of story nodes. Each node carries markdown content and
a list of choices pointing at other nodes; one node is the start, and ending
nodes terminate playback. Authors edit a working copy of the graph and save it
back through the API; readers traverse it one choice at a time with a history
they can rewind.

# Usage

Open a store and serve the API:

	package main

	import (
		"context"
		"log"
		"net/http"

		"github.com/fableworks/fable"
		"github.com/fableworks/fable/internal/adapters/httpapi"
		"github.com/fableworks/fable/internal/config"
		"github.com/fableworks/fable/internal/logging"
	)

	func main() {
		cfg := config.FromEnv()
		logger := logging.New(logging.ParseLevel(cfg.LogLevel))

		store, cleanup, err := fable.OpenStore(context.Background(), cfg, logger)
		if err != nil {
			log.Fatal(err)
		}
		defer cleanup(context.Background())

		http.ListenAndServe(cfg.Addr, httpapi.NewHandler(store, logger))
	}

The fable binary (cmd/fable) wraps the same pieces behind serve, studio and
play commands.
*/
package fable
