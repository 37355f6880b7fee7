/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package typefactory

import (
	"fmt"
)

// TypeIDGetter is the capability interface for retrieving an instance's own
// registered type identifier without knowing its concrete type.
type TypeIDGetter interface {
	TypeID() string
}

// TypeIDOf returns the registered type identifier of v. If v does not support
// the TypeIDGetter capability, it returns the empty string rather than
// failing.
func TypeIDOf(v any) string {
	if g, ok := v.(TypeIDGetter); ok {
		return g.TypeID()
	}
	return ""
}

// TypeNamer is implemented by types that declare their own registration
// identifier. RegisterNamed uses it to derive the identifier from the type
// instead of the call site.
type TypeNamer interface {
	FactoryTypeName() string
}

// Mixin equips a concrete type T implementing interface I with factory
// support. Embed it in the implementation and register the type once, usually
// with a package-level variable:
//
//	type Circle struct {
//	    typefactory.Mixin[Circle, Shape]
//	}
//
//	var _ = typefactory.Register[Circle, Shape]("circle")
//
// The embedded TypeID method satisfies TypeIDGetter, so the identifier can be
// recovered from any instance via TypeIDOf.
type Mixin[T, I any] struct{}

// TypeID returns the identifier T was registered under for interface I, or
// the empty string when no registration for T has run yet.
func (Mixin[T, I]) TypeID() string {
	return StaticTypeID[T, I]()
}

// StaticTypeID returns the identifier T was registered under for interface I
// in the default Store. It only reports a non-empty value after Register (or
// RegisterNamed) has run for T.
func StaticTypeID[T, I any]() string {
	return StaticTypeIDIn[T, I](defaultStore)
}

// StaticTypeIDIn is StaticTypeID against an explicit Store.
func StaticTypeIDIn[T, I any](s *Store) string {
	return *Value[Mixin[T, I], string](s)
}

// NewOf default-constructs a T. It is the generator body that Register
// installs, exposed for callers that want the concrete type back.
func NewOf[T any]() *T {
	return new(T)
}

// Registrator records that concrete type T has been bound to a type
// identifier under interface I. Its only purpose is to exist as the result of
// Register, mirroring a one-shot registration object held in a package-level
// variable.
type Registrator[T, I any] struct {
	id string
}

// ID returns the identifier this registration bound T to.
func (r Registrator[T, I]) ID() string {
	return r.id
}

// RegisterIn binds concrete type T to the given identifier under interface I
// in the given Store. It registers a generator that default-constructs T and
// records the identifier in T's private cell so StaticTypeID can report it.
// It panics if *T does not implement I, or if the identifier is already
// registered for I.
func RegisterIn[T, I any](s *Store, id string) Registrator[T, I] {
	if _, ok := any(new(T)).(I); !ok {
		panic(fmt.Sprintf("typefactory: *%s does not implement %s", typeOf[T](), typeOf[I]()))
	}

	RegisterTypeIn[I](s, id, func() I {
		return any(new(T)).(I)
	})
	*Value[Mixin[T, I], string](s) = id

	return Registrator[T, I]{id: id}
}

// Register binds concrete type T to the given identifier under interface I in
// the default Store. Assign the result to a package-level variable or call it
// from init so the registration completes before first use:
//
//	var _ = typefactory.Register[Circle, Shape]("circle")
func Register[T, I any](id string) Registrator[T, I] {
	return RegisterIn[T, I](defaultStore, id)
}

// RegisterNamedIn binds T under the identifier T declares through TypeNamer,
// in the given Store.
func RegisterNamedIn[T TypeNamer, I any](s *Store) Registrator[T, I] {
	var zero T
	return RegisterIn[T, I](s, zero.FactoryTypeName())
}

// RegisterNamed binds T under the identifier T declares through TypeNamer, in
// the default Store. This keeps the identifier next to the type declaration
// instead of the registration site, and works for generic implementation
// families whose instantiations share one FactoryTypeName implementation.
func RegisterNamed[T TypeNamer, I any]() Registrator[T, I] {
	return RegisterNamedIn[T, I](defaultStore)
}
