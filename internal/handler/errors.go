package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"cinehub-rest-api/internal/service"
	"cinehub-rest-api/pkg/apierror"
	"cinehub-rest-api/pkg/response"
)

// serviceError maps service sentinel errors to API errors. Unknown errors
// fall through to a 500.
func serviceError(err error) error {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		return apierror.NotFound("User not found")
	case errors.Is(err, service.ErrEmailTaken):
		return apierror.Conflict("Email already registered")
	case errors.Is(err, service.ErrInvalidCredentials):
		return apierror.Unauthorized("Invalid email or password")
	case errors.Is(err, service.ErrAccountLocked):
		return apierror.TooManyRequests("Too many failed attempts, try again later")
	case errors.Is(err, service.ErrItemNotFound):
		return apierror.NotFound("Store item not found")
	case errors.Is(err, service.ErrInsufficientPoints):
		return apierror.BadRequest("Insufficient points")
	case errors.Is(err, service.ErrAlreadyOwned):
		return apierror.Conflict("Item already owned")
	case errors.Is(err, service.ErrNotOwned):
		return apierror.Forbidden("Item not owned")
	case errors.Is(err, service.ErrWrongSlot):
		return apierror.BadRequest("Item cannot be applied to this slot")
	case errors.Is(err, service.ErrSuggestionNotFound):
		return apierror.NotFound("Suggestion not found")
	case errors.Is(err, service.ErrAlreadyReviewed):
		return apierror.Conflict("Suggestion already reviewed")
	case errors.Is(err, service.ErrMovieNotFound):
		return apierror.NotFound("Movie not found")
	case errors.Is(err, service.ErrGameNotFound):
		return apierror.NotFound("Mini-game not found")
	case errors.Is(err, service.ErrPostNotFound):
		return apierror.NotFound("Post not found")
	case errors.Is(err, service.ErrCommentCooldown):
		return apierror.TooManyRequests("Wait a moment before commenting again")
	default:
		return err
	}
}

// idParam parses a numeric URL parameter.
func idParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apierror.BadRequest(name + " must be a positive integer")
	}
	return id, nil
}

// decodeJSON decodes a request body into dst, writing a 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		response.Error(w, apierror.BadRequest("invalid JSON body"))
		return false
	}
	return true
}
