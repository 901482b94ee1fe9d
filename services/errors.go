package services

import "errors"

var (
	// ErrInvalidID means the supplied identifier is not a well-formed object
	// id. Reported before any store access happens.
	ErrInvalidID = errors.New("invalid ID format")

	// ErrNotFound means the identifier was well formed but no document
	// matched it.
	ErrNotFound = errors.New("not found")

	// ErrEmptyUpdate means an update request resolved to zero fields.
	ErrEmptyUpdate = errors.New("no valid update data provided")

	// ErrDuplicateUsername means an admin registration hit an existing
	// username.
	ErrDuplicateUsername = errors.New("username already registered")

	// ErrUnknownOperation means the requested AI operation is not in the
	// supported set.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrContentTooLong means a transform input exceeded the size bound.
	ErrContentTooLong = errors.New("content exceeds maximum length")
)
