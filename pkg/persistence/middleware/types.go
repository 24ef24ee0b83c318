// Package middleware provides composable decorators for AdventureStore
// implementations. Decorators wrap a store to add cross-cutting behavior
// without the adapters knowing about it.
package middleware

import "github.com/fableworks/fable/pkg/ports"

// Middleware allows wrapping an AdventureStore to add behavior.
type Middleware func(ports.AdventureStore) ports.AdventureStore

// Chain applies middlewares in order: the first listed wraps closest to
// the underlying store.
func Chain(store ports.AdventureStore, mws ...Middleware) ports.AdventureStore {
	for _, mw := range mws {
		store = mw(store)
	}
	return store
}
