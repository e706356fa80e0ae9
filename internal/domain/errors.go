package domain

import "errors"

// Store-level sentinel errors. Usecases translate these into the HTTP error
// taxonomy; repositories never depend on HTTP concerns.
var (
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is a unique-constraint violation (duplicate username,
	// email, person number, or a second application for the same person).
	ErrDuplicate = errors.New("already exists")
	// ErrInvalidReference is a foreign-key violation (e.g. a competence id
	// that does not exist in the catalog).
	ErrInvalidReference = errors.New("invalid reference")
)
