/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package typefactory_test

import (
	"strings"
	"testing"

	"github.com/suparena/typefactory"
	"github.com/suparena/typefactory/errors"
	"github.com/suparena/typefactory/manifest"
)

func shapeManifest(t *testing.T) *manifest.Manifest {
	t.Helper()

	m, err := manifest.Parse([]byte(`
interfaces:
  - name: Shape
    types: [circle, square]
`))
	if err != nil {
		t.Fatalf("Failed to parse manifest: %v", err)
	}
	return m
}

func TestVerifyRegisteredIn(t *testing.T) {
	t.Run("AllRegistered", func(t *testing.T) {
		s := typefactory.NewStore()
		typefactory.RegisterIn[Circle, Shape](s, "circle")
		typefactory.RegisterIn[Square, Shape](s, "square")

		if err := typefactory.VerifyRegisteredIn[Shape](s, shapeManifest(t), "Shape"); err != nil {
			t.Fatalf("Expected verification to pass, got %v", err)
		}
	})

	t.Run("MissingRegistration", func(t *testing.T) {
		s := typefactory.NewStore()
		typefactory.RegisterIn[Circle, Shape](s, "circle")

		err := typefactory.VerifyRegisteredIn[Shape](s, shapeManifest(t), "Shape")
		if err == nil {
			t.Fatal("Expected verification to fail")
		}
		if !errors.IsValidationError(err) {
			t.Fatalf("Expected a validation error, got %v", err)
		}
		if !strings.Contains(err.Error(), "square") {
			t.Fatalf("Expected the missing identifier in the message, got %q", err.Error())
		}
	})

	t.Run("ExtraRegistrationsTolerated", func(t *testing.T) {
		s := typefactory.NewStore()
		typefactory.RegisterIn[Circle, Shape](s, "circle")
		typefactory.RegisterIn[Square, Shape](s, "square")
		typefactory.RegisterTypeIn[Shape](s, "point", func() Shape { return &Circle{} })

		if err := typefactory.VerifyRegisteredIn[Shape](s, shapeManifest(t), "Shape"); err != nil {
			t.Fatalf("Expected extra registrations to be tolerated, got %v", err)
		}
	})

	t.Run("UnknownInterfaceName", func(t *testing.T) {
		s := typefactory.NewStore()

		err := typefactory.VerifyRegisteredIn[Shape](s, shapeManifest(t), "Renderer")
		if err == nil {
			t.Fatal("Expected an error for an interface the manifest does not mention")
		}
		if !errors.IsValidationError(err) {
			t.Fatalf("Expected a validation error, got %v", err)
		}
	})
}

func TestVerifyRegisteredDefaultStore(t *testing.T) {
	// Circle and Square registered at init in factory_test.go.
	if err := typefactory.VerifyRegistered[Shape](shapeManifest(t), "Shape"); err != nil {
		t.Fatalf("Expected verification against the default store to pass, got %v", err)
	}
}
