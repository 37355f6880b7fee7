/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"sync"
)

// Generator defines a zero-argument constructor that returns a new instance
// of an implementation of interface type I.
type Generator[I any] func() I

// Registry holds the mapping from type identifiers (like "circle", "square")
// to their generators for a single interface type I.
//
// The zero value is ready to use; the underlying map is initialized on first
// registration so a Registry can live inside a lazily allocated storage cell.
type Registry[I any] struct {
	mu      sync.RWMutex
	entries map[string]Generator[I]
}

// Register registers a generator for a given type identifier.
// If a generator is already registered for the identifier, it panics: a
// duplicate registration indicates a build or link defect, not a runtime
// condition to recover from. A nil generator panics for the same reason.
func (r *Registry[I]) Register(id string, gen Generator[I]) {
	if gen == nil {
		panic(fmt.Sprintf("type registry: nil generator for type %q", id))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]Generator[I])
	}
	if _, exists := r.entries[id]; exists {
		panic(fmt.Sprintf("type registry: type %q already registered", id))
	}
	r.entries[id] = gen
}

// Lookup returns the registered generator for the given type identifier.
// The second return value reports whether the identifier is known.
func (r *Registry[I]) Lookup(id string) (Generator[I], bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	gen, ok := r.entries[id]
	return gen, ok
}

// Has reports whether a generator is registered for the given identifier.
func (r *Registry[I]) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.entries[id]
	return ok
}

// IDs returns all registered type identifiers. Order is unspecified.
func (r *Registry[I]) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	return ids
}

// Len returns the number of registered type identifiers.
func (r *Registry[I]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}
