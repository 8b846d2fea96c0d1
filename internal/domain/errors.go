package domain

import "errors"

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrInvalidQuery signals request parameters that failed validation.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrCatalogUnavailable signals that the catalog store could not serve a snapshot.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)
