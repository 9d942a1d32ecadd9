package service

import "errors"

// Common service errors
var (
	// ErrNotFound is returned when a resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict is returned when there's a conflict (e.g., duplicate)
	ErrConflict = errors.New("resource conflict")

	// ErrUnauthorized is returned when credentials are missing or wrong
	ErrUnauthorized = errors.New("unauthorized")

	// ErrPermissionDenied is returned when a user doesn't have permission for an action
	ErrPermissionDenied = errors.New("permission denied")

	// ErrInvalidStatus is returned when a lifecycle transition is not allowed
	// from the proposal's current status
	ErrInvalidStatus = errors.New("invalid proposal status for this operation")

	// ErrProcessoInternoRequired is returned when accepting a proposal without
	// the internal process number
	ErrProcessoInternoRequired = errors.New("processo interno is required to accept a proposal")

	// ErrCrtRequired is returned when accepting an international proposal
	// without a transport document identifier
	ErrCrtRequired = errors.New("CRT identifier is required for international proposals")

	// ErrCrtTaken is returned when the transport document identifier is
	// already used by another proposal
	ErrCrtTaken = errors.New("CRT identifier already in use")

	// ErrUserNotFound is returned when a user is not found
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken is returned when creating a user with an email already registered
	ErrEmailTaken = errors.New("email already registered")
)
