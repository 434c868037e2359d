package service

import "errors"

// Sentinel errors returned by services. Handlers translate these into API
// errors with the right status codes.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountLocked      = errors.New("too many failed attempts, account temporarily locked")

	ErrItemNotFound       = errors.New("store item not found")
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrAlreadyOwned       = errors.New("item already owned")
	ErrNotOwned           = errors.New("item not owned")
	ErrWrongSlot          = errors.New("item cannot be applied to this slot")

	ErrSuggestionNotFound = errors.New("suggestion not found")
	ErrAlreadyReviewed    = errors.New("suggestion already reviewed")

	ErrMovieNotFound = errors.New("movie not found")
	ErrGameNotFound  = errors.New("mini-game not found")
	ErrPostNotFound  = errors.New("post not found")

	ErrCommentCooldown = errors.New("comment cooldown active")
)
