/*
Package manifest loads and validates declarative registration manifests for TypeFactory.

A manifest is a YAML document listing, per factory interface, the type
identifiers a correctly linked binary must have registered by the end of its
initialization phase:

	metadata:
	  generatedAt: 2025-06-01T10:00:00Z
	  source: api/shapes.yaml
	interfaces:
	  - name: Shape
	    types: [circle, square]
	  - name: Codec
	    types: [json, yaml]

At startup, an application verifies the manifest against the live registries:

	m, err := manifest.Load("registrations.yaml")
	if err != nil {
	    return err
	}
	if err := typefactory.VerifyRegistered[Shape](m, "Shape"); err != nil {
	    return err // a linked-in implementation is missing
	}

This keeps the compiled binary and the declarative registration table in sync
and turns a forgotten import or deleted registration variable into a startup
error instead of a runtime lookup failure.
*/
package manifest
