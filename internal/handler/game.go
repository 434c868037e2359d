package handler

import (
	"net/http"

	"cinehub-rest-api/internal/catalog"
	"cinehub-rest-api/internal/service"
	"cinehub-rest-api/pkg/apierror"
	"cinehub-rest-api/pkg/response"
)

// GameHandler handles mini-games and score submission.
type GameHandler struct {
	engagement *service.EngagementService
}

// NewGameHandler creates a new game handler.
func NewGameHandler(engagement *service.EngagementService) *GameHandler {
	return &GameHandler{engagement: engagement}
}

// List handles GET /api/v1/games
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	response.OK(w, catalog.MiniGames())
}

type scoreRequest struct {
	Score int64 `json:"score"`
}

// SubmitScore handles POST /api/v1/games/{id}/scores
func (h *GameHandler) SubmitScore(w http.ResponseWriter, r *http.Request) {
	s := session(w, r)
	if s == nil {
		return
	}
	id, err := idParam(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}

	var req scoreRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Score < 0 {
		response.Error(w, apierror.BadRequest("score must be non-negative"))
		return
	}

	record, err := h.engagement.SubmitGameScore(r.Context(), s.UserID, id, req.Score)
	if err != nil {
		response.Error(w, serviceError(err))
		return
	}
	response.Created(w, record)
}

// ListScores handles GET /api/v1/games/scores
func (h *GameHandler) ListScores(w http.ResponseWriter, r *http.Request) {
	s := session(w, r)
	if s == nil {
		return
	}

	scores, err := h.engagement.ListGameScores(r.Context(), s.UserID)
	if err != nil {
		response.Error(w, serviceError(err))
		return
	}
	response.OK(w, scores)
}
