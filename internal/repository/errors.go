package repository

import "errors"

// Sentinel errors returned by repositories. Services translate these into
// user-facing API errors.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail indicates a registration with a taken email.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInsufficientPoints indicates the balance guard rejected a deduction.
	ErrInsufficientPoints = errors.New("insufficient points")

	// ErrNotPending indicates a review of an already-reviewed suggestion.
	ErrNotPending = errors.New("suggestion is not pending")
)
