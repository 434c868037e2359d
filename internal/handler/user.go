package handler

import (
	"net/http"

	"cinehub-rest-api/internal/model"
	"cinehub-rest-api/internal/service"
	"cinehub-rest-api/pkg/apierror"
	"cinehub-rest-api/pkg/response"
)

// UserHandler handles the authenticated user's profile and cosmetics.
type UserHandler struct {
	authService *service.AuthService
	economy     *service.EconomyService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(authService *service.AuthService, economy *service.EconomyService) *UserHandler {
	return &UserHandler{
		authService: authService,
		economy:     economy,
	}
}

// Me handles GET /api/v1/me
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	s := session(w, r)
	if s == nil {
		return
	}

	user, err := h.authService.GetUser(r.Context(), s.UserID)
	if err != nil {
		response.Error(w, serviceError(err))
		return
	}

	response.OK(w, map[string]interface{}{
		"user":  user,
		"level": model.LevelFor(user.Points),
	})
}

type applyCosmeticRequest struct {
	ItemID int64  `json:"item_id"`
	Slot   string `json:"slot"`
}

// ApplyCosmetic handles POST /api/v1/me/inventory/apply
func (h *UserHandler) ApplyCosmetic(w http.ResponseWriter, r *http.Request) {
	s := session(w, r)
	if s == nil {
		return
	}

	var req applyCosmeticRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ItemID <= 0 || req.Slot == "" {
		response.Error(w, apierror.BadRequest("item_id and slot are required"))
		return
	}

	css, err := h.economy.ApplyCosmetic(r.Context(), s.UserID, req.ItemID, service.CosmeticSlot(req.Slot))
	if err != nil {
		response.Error(w, serviceError(err))
		return
	}

	body := map[string]interface{}{"status": "applied", "slot": req.Slot}
	if css != nil {
		body["theme"] = css
	}
	response.OK(w, body)
}

type resetCosmeticRequest struct {
	Slot string `json:"slot"`
}

// ResetCosmetic handles POST /api/v1/me/inventory/reset
func (h *UserHandler) ResetCosmetic(w http.ResponseWriter, r *http.Request) {
	s := session(w, r)
	if s == nil {
		return
	}

	var req resetCosmeticRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Slot == "" {
		response.Error(w, apierror.BadRequest("slot is required"))
		return
	}

	if err := h.economy.ResetCosmetic(r.Context(), s.UserID, service.CosmeticSlot(req.Slot)); err != nil {
		response.Error(w, serviceError(err))
		return
	}
	response.OK(w, map[string]interface{}{"status": "reset", "slot": req.Slot})
}

// Theme handles GET /api/v1/me/theme
func (h *UserHandler) Theme(w http.ResponseWriter, r *http.Request) {
	s := session(w, r)
	if s == nil {
		return
	}

	css, err := h.economy.ActiveThemeCSS(r.Context(), s.UserID)
	if err != nil {
		response.Error(w, serviceError(err))
		return
	}
	response.OK(w, css)
}
