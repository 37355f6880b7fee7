/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package typefactory

import (
	"github.com/suparena/typefactory/errors"
	"github.com/suparena/typefactory/registry"
)

// Generator is a zero-argument constructor producing a new instance of an
// implementation of interface type I.
type Generator[I any] func() I

// registryFor returns the registry for interface type I inside s, creating it
// on first access. The cell is keyed by the (I, Registry[I]) type pair, so
// every call site sharing the Store shares the same registry.
func registryFor[I any](s *Store) *registry.Registry[I] {
	return Value[I, registry.Registry[I]](s)
}

// RegisterTypeIn registers a generator for the given type identifier under
// interface I in the given Store. Registering an identifier twice for the
// same interface panics.
func RegisterTypeIn[I any](s *Store, id string, gen Generator[I]) {
	registryFor[I](s).Register(id, registry.Generator[I](gen))
}

// RegisterType registers a generator for the given type identifier under
// interface I in the default Store.
//
// Registration is expected to run during program initialization, typically
// from an init function or a package-level Register variable, strictly
// before the first NewInstance call for that identifier.
func RegisterType[I any](id string, gen Generator[I]) {
	RegisterTypeIn[I](defaultStore, id, gen)
}

// NewInstanceIn creates a new instance of the type registered under the given
// identifier for interface I in the given Store. An unknown identifier yields
// a NotFoundError carrying the identifier; whatever the generator itself does
// (panics included) propagates unchanged.
func NewInstanceIn[I any](s *Store, id string) (I, error) {
	gen, ok := registryFor[I](s).Lookup(id)
	if !ok {
		var zero I
		return zero, errors.NewNotFoundError(typeOf[I]().String(), id)
	}
	return gen(), nil
}

// NewInstance creates a new instance of the type registered under the given
// identifier for interface I in the default Store.
func NewInstance[I any](id string) (I, error) {
	return NewInstanceIn[I](defaultStore, id)
}

// RegisteredTypesIn returns a snapshot of all type identifiers registered for
// interface I in the given Store. Order is unspecified.
func RegisteredTypesIn[I any](s *Store) []string {
	return registryFor[I](s).IDs()
}

// RegisteredTypes returns a snapshot of all type identifiers registered for
// interface I in the default Store.
func RegisteredTypes[I any]() []string {
	return RegisteredTypesIn[I](defaultStore)
}

// IsTypeRegisteredIn reports whether the given identifier is registered for
// interface I in the given Store.
func IsTypeRegisteredIn[I any](s *Store, id string) bool {
	return registryFor[I](s).Has(id)
}

// IsTypeRegistered reports whether the given identifier is registered for
// interface I in the default Store.
func IsTypeRegistered[I any](id string) bool {
	return IsTypeRegisteredIn[I](defaultStore, id)
}
