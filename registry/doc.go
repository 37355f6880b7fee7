/*
Package registry provides the per-interface mapping from type identifiers to
generators that underpins TypeFactory.

The registry system enables:
  - Dynamic creation of interface implementations by string identifier
  - Enumeration of every implementation linked into the binary
  - One shared registry per interface type across all call sites

A Registry maps type identifiers to zero-argument constructors:

	var shapes registry.Registry[Shape]

	shapes.Register("circle", func() Shape {
	    return &Circle{}
	})

	gen, ok := shapes.Lookup("circle")

Most code does not use this package directly: the typefactory package resolves
one Registry per interface type through its per-type storage cells and exposes
RegisterType / NewInstance on top of it.

Registration panics on duplicate identifiers. A duplicate means two concrete
types were linked in claiming the same name, which is a build defect, whereas
looking up an unknown identifier is ordinary caller input and surfaces as an
error.
The registry is thread-safe and should be populated during initialization,
typically in init() functions or through package-level Register variables.
*/
package registry
