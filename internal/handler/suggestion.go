package handler

import (
	"net/http"

	"cinehub-rest-api/internal/model"
	"cinehub-rest-api/internal/service"
	"cinehub-rest-api/pkg/apierror"
	"cinehub-rest-api/pkg/response"
)

// SuggestionHandler handles user-facing suggestion endpoints. Admin review
// lives in AdminHandler.
type SuggestionHandler struct {
	suggestions *service.SuggestionService
}

// NewSuggestionHandler creates a new suggestion handler.
func NewSuggestionHandler(suggestions *service.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{suggestions: suggestions}
}

// Submit handles POST /api/v1/suggestions
func (h *SuggestionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	s := session(w, r)
	if s == nil {
		return
	}

	var draft model.SuggestionDraft
	if !decodeJSON(w, r, &draft) {
		return
	}
	if draft.Title == "" {
		response.Error(w, apierror.BadRequest("title is required"))
		return
	}

	suggestion, err := h.suggestions.Submit(r.Context(), s.UserID, s.Name, draft)
	if err != nil {
		response.Error(w, serviceError(err))
		return
	}
	response.Created(w, suggestion)
}

// ListMine handles GET /api/v1/suggestions
func (h *SuggestionHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	s := session(w, r)
	if s == nil {
		return
	}

	suggestions, err := h.suggestions.ListByUser(r.Context(), s.UserID)
	if err != nil {
		response.Error(w, serviceError(err))
		return
	}
	response.OK(w, suggestions)
}
