package handler

import (
	"net/http"

	"cinehub-rest-api/internal/catalog"
	"cinehub-rest-api/internal/service"
	"cinehub-rest-api/pkg/apierror"
	"cinehub-rest-api/pkg/response"
)

// MovieHandler handles the movie catalog and per-movie interactions.
type MovieHandler struct {
	engagement  *service.EngagementService
	authService *service.AuthService
}

// NewMovieHandler creates a new movie handler.
func NewMovieHandler(engagement *service.EngagementService, authService *service.AuthService) *MovieHandler {
	return &MovieHandler{
		engagement:  engagement,
		authService: authService,
	}
}

// List handles GET /api/v1/movies?genre=
func (h *MovieHandler) List(w http.ResponseWriter, r *http.Request) {
	movies, err := h.engagement.ListMovies(r.Context(), r.URL.Query().Get("genre"))
	if err != nil {
		response.Error(w, serviceError(err))
		return
	}
	response.OK(w, movies)
}

// Get handles GET /api/v1/movies/{id}
func (h *MovieHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}

	movie, err := h.engagement.MovieByID(r.Context(), id)
	if err != nil {
		response.Error(w, serviceError(err))
		return
	}
	response.OK(w, movie)
}

// Categories handles GET /api/v1/movies/categories
func (h *MovieHandler) Categories(w http.ResponseWriter, r *http.Request) {
	response.OK(w, catalog.Categories())
}

// ListFavorites handles GET /api/v1/me/favorites
func (h *MovieHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	s := session(w, r)
	if s == nil {
		return
	}

	ids, err := h.engagement.ListFavorites(r.Context(), s.UserID)
	if err != nil {
		response.Error(w, serviceError(err))
		return
	}
	response.OK(w, ids)
}

// AddFavorite handles POST /api/v1/movies/{id}/favorite
func (h *MovieHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	s := session(w, r)
	if s == nil {
		return
	}
	id, err := idParam(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}

	if err := h.engagement.AddFavorite(r.Context(), s.UserID, id); err != nil {
		response.Error(w, serviceError(err))
		return
	}
	response.OK(w, map[string]interface{}{"status": "favorited", "movie_id": id})
}

// RemoveFavorite handles DELETE /api/v1/movies/{id}/favorite
func (h *MovieHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	s := session(w, r)
	if s == nil {
		return
	}
	id, err := idParam(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}

	if err := h.engagement.RemoveFavorite(r.Context(), s.UserID, id); err != nil {
		response.Error(w, serviceError(err))
		return
	}
	response.NoContent(w)
}

type commentRequest struct {
	Text string `json:"text"`
}

// ListComments handles GET /api/v1/movies/{id}/comments
func (h *MovieHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}

	comments, err := h.engagement.ListComments(r.Context(), id)
	if err != nil {
		response.Error(w, serviceError(err))
		return
	}
	response.OK(w, comments)
}

// AddComment handles POST /api/v1/movies/{id}/comments
func (h *MovieHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	s := session(w, r)
	if s == nil {
		return
	}
	id, err := idParam(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}

	var req commentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Text == "" {
		response.Error(w, apierror.BadRequest("text is required"))
		return
	}

	user, err := h.authService.GetUser(r.Context(), s.UserID)
	if err != nil {
		response.Error(w, serviceError(err))
		return
	}

	comment, err := h.engagement.AddComment(r.Context(), user, id, req.Text)
	if err != nil {
		response.Error(w, serviceError(err))
		return
	}
	response.Created(w, comment)
}

type reactionRequest struct {
	Emoji string `json:"emoji"`
}

// ListReactions handles GET /api/v1/movies/{id}/reactions
func (h *MovieHandler) ListReactions(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}

	reactions, err := h.engagement.ListReactions(r.Context(), id)
	if err != nil {
		response.Error(w, serviceError(err))
		return
	}
	response.OK(w, reactions)
}

// AddReaction handles POST /api/v1/movies/{id}/reactions
func (h *MovieHandler) AddReaction(w http.ResponseWriter, r *http.Request) {
	s := session(w, r)
	if s == nil {
		return
	}
	id, err := idParam(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}

	var req reactionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.authService.GetUser(r.Context(), s.UserID)
	if err != nil {
		response.Error(w, serviceError(err))
		return
	}

	reaction, err := h.engagement.AddReaction(r.Context(), user, id, req.Emoji)
	if err != nil {
		response.Error(w, serviceError(err))
		return
	}
	response.Created(w, reaction)
}

// WatchTrailer handles POST /api/v1/movies/{id}/trailer
func (h *MovieHandler) WatchTrailer(w http.ResponseWriter, r *http.Request) {
	s := session(w, r)
	if s == nil {
		return
	}
	id, err := idParam(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}

	rewarded, err := h.engagement.WatchTrailer(r.Context(), s.UserID, id)
	if err != nil {
		response.Error(w, serviceError(err))
		return
	}
	response.OK(w, map[string]interface{}{"movie_id": id, "rewarded": rewarded})
}
