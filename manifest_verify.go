/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package typefactory

import (
	"fmt"
	"sort"
	"strings"

	"github.com/suparena/typefactory/errors"
	"github.com/suparena/typefactory/manifest"
)

// VerifyRegisteredIn checks that every type identifier the manifest lists for
// the named interface has been registered for I in the given Store.
// Registrations not mentioned by the manifest are tolerated; missing ones are
// reported as a single ValidationError naming all of them. A manifest without
// an entry for name is itself a validation failure.
func VerifyRegisteredIn[I any](s *Store, m *manifest.Manifest, name string) error {
	want := m.Types(name)
	if want == nil {
		return errors.NewValidationError("interfaces", fmt.Sprintf("interface %q not present in manifest", name))
	}

	var missing []string
	for _, id := range want {
		if !IsTypeRegisteredIn[I](s, id) {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return errors.NewValidationError(name, fmt.Sprintf("types not registered: %s", strings.Join(missing, ", ")))
	}
	return nil
}

// VerifyRegistered checks the manifest entry for name against the types
// registered for I in the default Store. Call it after the initialization
// phase, once every registration variable and init function has run.
func VerifyRegistered[I any](m *manifest.Manifest, name string) error {
	return VerifyRegisteredIn[I](defaultStore, m, name)
}
