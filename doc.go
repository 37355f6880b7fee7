/*
Package typefactory provides a generic type registry and instance factory for Go applications,
letting code register named constructors for interface implementations and later build
instances by name without knowing the concrete type.

The library follows a register-at-init → resolve-at-runtime workflow:
  - Init-time: Concrete types bind themselves to string identifiers
  - Runtime: Callers construct instances through the factory by identifier
  - Optionally: A YAML manifest declares the expected registrations for startup verification

Key Features:
  - Type-safe operations using Go generics
  - One registry per interface type, shared by all call sites
  - Per-(owner, payload) type storage cells for static-like per-type state
  - Self-registration mixin with a polymorphic type-identifier capability
  - Semantic error types for better error handling
  - Thread-safe registration and lookup
  - Manifest-driven verification of registration completeness

Basic Usage:

	// A concrete type embeds the mixin and registers itself once
	type Circle struct {
	    typefactory.Mixin[Circle, Shape]
	}

	var _ = typefactory.Register[Circle, Shape]("circle")

	// Later, construct by identifier
	shape, err := typefactory.NewInstance[Shape]("circle")

	// Retrieve the identifier back from an instance
	id := typefactory.TypeIDOf(shape) // "circle"

For more information, see the documentation at https://github.com/suparena/typefactory
*/
package typefactory
