package handler

import (
	"net/http"

	"cinehub-rest-api/internal/middleware"
	"cinehub-rest-api/internal/model"
	"cinehub-rest-api/internal/service"
	"cinehub-rest-api/pkg/apierror"
	"cinehub-rest-api/pkg/response"
)

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	authService *service.AuthService
	sessions    *service.SessionService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService *service.AuthService, sessions *service.SessionService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
	}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
	Level model.Level `json:"level"`
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var details []apierror.FieldError
	if req.Name == "" {
		details = append(details, apierror.FieldError{Field: "name", Message: "required"})
	}
	if req.Email == "" {
		details = append(details, apierror.FieldError{Field: "email", Message: "required"})
	}
	if len(req.Password) < 4 {
		details = append(details, apierror.FieldError{Field: "password", Message: "must be at least 4 characters"})
	}
	if len(details) > 0 {
		response.Error(w, apierror.ValidationError("invalid registration data", details...))
		return
	}

	user, token, err := h.authService.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		response.Error(w, serviceError(err))
		return
	}

	response.Created(w, authResponse{Token: token, User: user, Level: model.LevelFor(user.Points)})
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		response.Error(w, apierror.BadRequest("email and password are required"))
		return
	}

	user, token, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(w, serviceError(err))
		return
	}

	response.OK(w, authResponse{Token: token, User: user, Level: model.LevelFor(user.Points)})
}

// Logout handles POST /api/v1/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get("X-Token")
	if token == "" {
		response.Error(w, apierror.BadRequest("X-Token header is required"))
		return
	}

	if err := h.authService.Logout(r.Context(), token); err != nil {
		response.Error(w, serviceError(err))
		return
	}
	response.NoContent(w)
}

// Refresh handles POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get("X-Token")
	if token == "" {
		response.Error(w, apierror.BadRequest("X-Token header is required"))
		return
	}

	if err := h.sessions.Refresh(r.Context(), token); err != nil {
		response.Error(w, apierror.Unauthorized("Invalid or expired token"))
		return
	}
	response.OK(w, map[string]interface{}{"status": "refreshed"})
}

// session pulls the authenticated session or writes a 401.
func session(w http.ResponseWriter, r *http.Request) *model.Session {
	s := middleware.GetSession(r.Context())
	if s == nil {
		response.Error(w, apierror.Unauthorized(""))
	}
	return s
}
