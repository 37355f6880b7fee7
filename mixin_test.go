/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package typefactory_test

import (
	"testing"

	"github.com/suparena/typefactory"
)

// Gauge is a factory interface whose implementations register into explicit
// stores so each subtest starts clean.
type Gauge interface {
	Unit() string
}

type Thermometer struct {
	typefactory.Mixin[Thermometer, Gauge]
}

func (*Thermometer) Unit() string { return "celsius" }

type Barometer struct {
	typefactory.Mixin[Barometer, Gauge]
}

func (*Barometer) Unit() string { return "hectopascal" }

func (Barometer) FactoryTypeName() string { return "barometer" }

// Altimeter never registers anywhere.
type Altimeter struct {
	typefactory.Mixin[Altimeter, Gauge]
}

func (*Altimeter) Unit() string { return "meter" }

// series is a generic implementation family sharing one declared name per
// instantiation scheme.
type series[T any] struct {
	typefactory.Mixin[series[T], Gauge]
}

func (*series[T]) Unit() string { return "series" }

func (series[T]) FactoryTypeName() string { return "series" }

type notAGauge struct{}

func TestRegisterIn(t *testing.T) {
	s := typefactory.NewStore()

	reg := typefactory.RegisterIn[Thermometer, Gauge](s, "thermometer")
	if reg.ID() != "thermometer" {
		t.Fatalf("Expected registrator id %q, got %q", "thermometer", reg.ID())
	}

	if got := typefactory.StaticTypeIDIn[Thermometer, Gauge](s); got != "thermometer" {
		t.Fatalf("Expected recorded identifier %q, got %q", "thermometer", got)
	}

	g, err := typefactory.NewInstanceIn[Gauge](s, "thermometer")
	if err != nil {
		t.Fatalf("Failed to create gauge: %v", err)
	}
	if g.Unit() != "celsius" {
		t.Fatalf("Expected celsius, got %q", g.Unit())
	}
}

func TestRegisterNamedIn(t *testing.T) {
	s := typefactory.NewStore()

	reg := typefactory.RegisterNamedIn[Barometer, Gauge](s)
	if reg.ID() != "barometer" {
		t.Fatalf("Expected identifier from FactoryTypeName, got %q", reg.ID())
	}

	g, err := typefactory.NewInstanceIn[Gauge](s, "barometer")
	if err != nil {
		t.Fatalf("Failed to create gauge: %v", err)
	}
	if typefactory.TypeIDOf(g) != "barometer" {
		t.Fatalf("Expected instance to report %q, got %q", "barometer", typefactory.TypeIDOf(g))
	}
}

func TestRegisterNamedGenericFamily(t *testing.T) {
	s := typefactory.NewStore()

	typefactory.RegisterNamedIn[series[float64], Gauge](s)

	g, err := typefactory.NewInstanceIn[Gauge](s, "series")
	if err != nil {
		t.Fatalf("Failed to create gauge: %v", err)
	}
	if _, ok := g.(*series[float64]); !ok {
		t.Fatalf("Expected a *series[float64], got %T", g)
	}
}

func TestStaticTypeIDBeforeRegistration(t *testing.T) {
	// No registration has run for Altimeter anywhere: the recorded identifier
	// is the zero value, not a fault.
	if got := typefactory.StaticTypeID[Altimeter, Gauge](); got != "" {
		t.Fatalf("Expected empty identifier before registration, got %q", got)
	}

	var a Altimeter
	if got := a.TypeID(); got != "" {
		t.Fatalf("Expected empty identifier from the instance, got %q", got)
	}
}

func TestTypeIDOfWithoutCapability(t *testing.T) {
	if got := typefactory.TypeIDOf(notAGauge{}); got != "" {
		t.Fatalf("Expected empty identifier for a type without the capability, got %q", got)
	}
	if got := typefactory.TypeIDOf(nil); got != "" {
		t.Fatalf("Expected empty identifier for nil, got %q", got)
	}
}

func TestRegisterInPanicsWhenNotImplementing(t *testing.T) {
	s := typefactory.NewStore()

	defer func() {
		if recover() == nil {
			t.Fatal("Expected panic when the concrete type does not implement the interface")
		}
	}()
	typefactory.RegisterIn[notAGauge, Gauge](s, "bogus")
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	s := typefactory.NewStore()
	typefactory.RegisterIn[Thermometer, Gauge](s, "gauge")

	defer func() {
		if recover() == nil {
			t.Fatal("Expected panic on duplicate identifier")
		}
	}()
	typefactory.RegisterIn[Barometer, Gauge](s, "gauge")
}

func TestNewOf(t *testing.T) {
	th := typefactory.NewOf[Thermometer]()
	if th == nil {
		t.Fatal("Expected a default-constructed instance")
	}
	if th.Unit() != "celsius" {
		t.Fatalf("Expected celsius, got %q", th.Unit())
	}
}
