// Package registry provides a small, concurrency-safe registry of named
// factories. The simulation registers its opponent variants here so the
// spawner can pick among them without a hardcoded type switch.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps string IDs to values of type F, usually factory functions.
type Registry[F any] struct {
	mu        sync.RWMutex
	factories map[string]F
}

// New creates an empty registry.
func New[F any]() *Registry[F] {
	return &Registry[F]{factories: make(map[string]F)}
}

// Register adds a factory under id.
// Panics if a factory with the same ID is already registered.
func (r *Registry[F]) Register(id string, f F) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[id]; exists {
		panic(fmt.Sprintf("registry: %q already registered", id))
	}
	r.factories[id] = f
}

// Get returns the factory registered under id.
// Returns an error if the ID is not registered.
func (r *Registry[F]) Get(id string) (F, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.factories[id]
	if !ok {
		var zero F
		return zero, fmt.Errorf("registry: unknown id %q", id)
	}
	return f, nil
}

// List returns all registered IDs, sorted.
// The stable order lets seeded random picks replay identically.
func (r *Registry[F]) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.factories))
	for id := range r.factories {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Exists checks if a factory with the given ID is registered.
func (r *Registry[F]) Exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.factories[id]
	return ok
}

// Len returns the number of registered factories.
func (r *Registry[F]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.factories)
}
