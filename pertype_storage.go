/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package typefactory

import (
	"reflect"
	"sync"
)

// cellKey identifies a storage cell by the pair of types that addresses it.
type cellKey struct {
	owner   reflect.Type
	payload reflect.Type
}

// Store provides per-type storage cells addressed by an (owner, payload)
// type pair. A cell holds one value of the payload type; it is allocated and
// default-initialized on first access and lives as long as the Store itself.
// Distinct type pairs never share a cell.
//
// The factory operations in this package keep their state (one registry per
// interface type, one recorded identifier per mixin) in cells of the
// process-wide default Store. Tests and embedders that need isolated state
// can create their own Store and use the *In variants of the package API.
type Store struct {
	mu    sync.RWMutex
	cells map[cellKey]any
}

// NewStore creates a new empty Store.
func NewStore() *Store {
	return &Store{cells: make(map[cellKey]any)}
}

var defaultStore = NewStore()

// DefaultStore returns the process-wide Store used by the package-level
// factory operations. It is created before init functions run and is never
// torn down.
func DefaultStore() *Store {
	return defaultStore
}

// typeOf returns the reflect.Type for T itself. Unlike reflect.TypeOf on a
// zero value, this also works when T is an interface type.
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Value returns the storage cell addressed by the (Owner, Payload) type pair,
// creating it on first access. The returned pointer is stable: every call
// with the same pair on the same Store yields the same cell.
func Value[Owner, Payload any](s *Store) *Payload {
	key := cellKey{owner: typeOf[Owner](), payload: typeOf[Payload]()}

	s.mu.RLock()
	cell, exists := s.cells[key]
	s.mu.RUnlock()

	if exists {
		return cell.(*Payload)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Re-check: another goroutine may have created the cell between the
	// read unlock and the write lock.
	if cell, exists := s.cells[key]; exists {
		return cell.(*Payload)
	}

	p := new(Payload)
	s.cells[key] = p
	return p
}
