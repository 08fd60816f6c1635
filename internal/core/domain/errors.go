package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity with the same ID exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates a required collaborator is not configured.
	ErrNotImplemented = errors.New("not implemented")

	// Library Errors.

	// ErrUnknownVariable indicates a variable id that is absent from the catalog.
	ErrUnknownVariable = errors.New("unknown variable")

	// ErrDuplicateVariable indicates two definitions share an id.
	ErrDuplicateVariable = errors.New("duplicate variable")

	// ErrEmptyPrior indicates a definition without a prior value.
	// Every variable needs a baseline for the redline.
	ErrEmptyPrior = errors.New("prior value is empty")

	// ErrSectionNotFound indicates a section key that is absent from the template.
	ErrSectionNotFound = errors.New("section not found")

	// ErrDuplicateSection indicates two sections share a key.
	ErrDuplicateSection = errors.New("duplicate section")

	// Session Errors.

	// ErrSessionNotFound indicates a saved drafting session does not exist.
	ErrSessionNotFound = errors.New("session not found")
)
