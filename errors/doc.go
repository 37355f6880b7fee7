/*
Package errors provides semantic error types for the TypeFactory library.

The package defines common error scenarios with specific types that can be
checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrNotFound     = errors.New("type not found")
	    ErrInvalidInput = errors.New("invalid input")
	)

Usage:

	// Check error type
	shape, err := typefactory.NewInstance[Shape]("triangle")
	if err != nil {
	    if errors.IsNotFound(err) {
	        // Handle unknown identifier
	        return nil, fmt.Errorf("no such shape %q", "triangle")
	    }
	    return nil, err
	}

	// Create typed errors
	err := errors.NewNotFoundError("Shape", "triangle")
	err := errors.NewValidationError("interfaces", "interface declared twice")

Note that duplicate registration is deliberately not an error value: it
indicates a build or link defect and panics at registration time. Only
caller-supplied input (unknown identifiers, malformed manifests) surfaces as
recoverable errors.

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
