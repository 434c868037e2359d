package handler

import (
	"net/http"
	"strconv"

	"cinehub-rest-api/internal/service"
	"cinehub-rest-api/pkg/apierror"
	"cinehub-rest-api/pkg/response"
)

// CommunityHandler handles the community feed.
type CommunityHandler struct {
	engagement  *service.EngagementService
	authService *service.AuthService
}

// NewCommunityHandler creates a new community handler.
func NewCommunityHandler(engagement *service.EngagementService, authService *service.AuthService) *CommunityHandler {
	return &CommunityHandler{
		engagement:  engagement,
		authService: authService,
	}
}

// ListPosts handles GET /api/v1/community/posts?limit=
func (h *CommunityHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	posts, err := h.engagement.ListPosts(r.Context(), limit)
	if err != nil {
		response.Error(w, serviceError(err))
		return
	}
	response.OK(w, posts)
}

type postRequest struct {
	Content string `json:"content"`
}

// CreatePost handles POST /api/v1/community/posts
func (h *CommunityHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	s := session(w, r)
	if s == nil {
		return
	}

	var req postRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Content == "" {
		response.Error(w, apierror.BadRequest("content is required"))
		return
	}

	user, err := h.authService.GetUser(r.Context(), s.UserID)
	if err != nil {
		response.Error(w, serviceError(err))
		return
	}

	post, err := h.engagement.CreatePost(r.Context(), user, req.Content)
	if err != nil {
		response.Error(w, serviceError(err))
		return
	}
	response.Created(w, post)
}

// LikePost handles POST /api/v1/community/posts/{id}/like
func (h *CommunityHandler) LikePost(w http.ResponseWriter, r *http.Request) {
	s := session(w, r)
	if s == nil {
		return
	}
	id, err := idParam(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}

	if err := h.engagement.LikePost(r.Context(), id); err != nil {
		response.Error(w, serviceError(err))
		return
	}
	response.OK(w, map[string]interface{}{"status": "liked", "post_id": id})
}

// ListPostComments handles GET /api/v1/community/posts/{id}/comments
func (h *CommunityHandler) ListPostComments(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}

	comments, err := h.engagement.ListPostComments(r.Context(), id)
	if err != nil {
		response.Error(w, serviceError(err))
		return
	}
	response.OK(w, comments)
}

// AddPostComment handles POST /api/v1/community/posts/{id}/comments
func (h *CommunityHandler) AddPostComment(w http.ResponseWriter, r *http.Request) {
	s := session(w, r)
	if s == nil {
		return
	}
	id, err := idParam(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}

	var req postRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Content == "" {
		response.Error(w, apierror.BadRequest("content is required"))
		return
	}

	user, err := h.authService.GetUser(r.Context(), s.UserID)
	if err != nil {
		response.Error(w, serviceError(err))
		return
	}

	comment, err := h.engagement.AddPostComment(r.Context(), user, id, req.Content)
	if err != nil {
		response.Error(w, serviceError(err))
		return
	}
	response.Created(w, comment)
}
