package handler

import (
	"errors"
	"net/http"

	"cinehub-rest-api/internal/model"
	"cinehub-rest-api/internal/repository"
	"cinehub-rest-api/internal/service"
	"cinehub-rest-api/pkg/apierror"
	"cinehub-rest-api/pkg/response"
)

// AdminHandler handles the admin panel: stats, suggestion review and
// custom store item management. All routes are gated by RequireAdmin.
type AdminHandler struct {
	users       repository.UserRepository
	store       repository.StoreRepository
	movies      repository.MovieRepository
	audit       repository.AuditRepository // optional
	suggestions *service.SuggestionService
	notifier    *service.NotificationService
}

// NewAdminHandler creates a new admin handler. audit may be nil.
func NewAdminHandler(
	users repository.UserRepository,
	store repository.StoreRepository,
	movies repository.MovieRepository,
	audit repository.AuditRepository,
	suggestions *service.SuggestionService,
	notifier *service.NotificationService,
) *AdminHandler {
	return &AdminHandler{
		users:       users,
		store:       store,
		movies:      movies,
		audit:       audit,
		suggestions: suggestions,
		notifier:    notifier,
	}
}

// Stats handles GET /api/v1/admin/stats
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userCount, err := h.users.Count(ctx)
	if err != nil {
		response.Error(w, err)
		return
	}
	purchaseCount, err := h.store.CountPurchases(ctx)
	if err != nil {
		response.Error(w, err)
		return
	}
	movieCount, err := h.movies.Count(ctx)
	if err != nil {
		response.Error(w, err)
		return
	}
	pending, err := h.suggestions.List(ctx, model.SuggestionPending)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.OK(w, map[string]interface{}{
		"users":               userCount,
		"purchases":           purchaseCount,
		"community_movies":    movieCount,
		"pending_suggestions": len(pending),
		"stream_subscribers":  h.notifier.SubscriberCount(),
	})
}

// PointEvents handles GET /api/v1/admin/point-events
func (h *AdminHandler) PointEvents(w http.ResponseWriter, r *http.Request) {
	if h.audit == nil {
		response.Error(w, apierror.NotFound("Audit log is not enabled"))
		return
	}

	events, err := h.audit.RecentEvents(r.Context(), 100)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, events)
}

// ListSuggestions handles GET /api/v1/admin/suggestions?status=
func (h *AdminHandler) ListSuggestions(w http.ResponseWriter, r *http.Request) {
	status := model.SuggestionStatus(r.URL.Query().Get("status"))
	suggestions, err := h.suggestions.List(r.Context(), status)
	if err != nil {
		response.Error(w, serviceError(err))
		return
	}
	response.OK(w, suggestions)
}

// ApproveSuggestion handles POST /api/v1/admin/suggestions/{id}/approve
func (h *AdminHandler) ApproveSuggestion(w http.ResponseWriter, r *http.Request) {
	s := session(w, r)
	if s == nil {
		return
	}
	id, err := idParam(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}

	reviewed, err := h.suggestions.Approve(r.Context(), id, s.UserID)
	if err != nil {
		response.Error(w, serviceError(err))
		return
	}
	response.OK(w, reviewed)
}

// RejectSuggestion handles POST /api/v1/admin/suggestions/{id}/reject
func (h *AdminHandler) RejectSuggestion(w http.ResponseWriter, r *http.Request) {
	s := session(w, r)
	if s == nil {
		return
	}
	id, err := idParam(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}

	reviewed, err := h.suggestions.Reject(r.Context(), id, s.UserID)
	if err != nil {
		response.Error(w, serviceError(err))
		return
	}
	response.OK(w, reviewed)
}

// CreateItem handles POST /api/v1/admin/store/items
func (h *AdminHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var item model.StoreItem
	if !decodeJSON(w, r, &item) {
		return
	}
	if err := validateItem(&item); err != nil {
		response.Error(w, err)
		return
	}

	if err := h.store.CreateCustomItem(r.Context(), &item); err != nil {
		response.Error(w, err)
		return
	}
	response.Created(w, item)
}

// UpdateItem handles PUT /api/v1/admin/store/items/{id}
func (h *AdminHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}
	if id < model.CustomItemIDStart {
		response.Error(w, apierror.BadRequest("catalog items cannot be modified"))
		return
	}

	var item model.StoreItem
	if !decodeJSON(w, r, &item) {
		return
	}
	item.ID = id
	if err := validateItem(&item); err != nil {
		response.Error(w, err)
		return
	}

	if err := h.store.UpdateCustomItem(r.Context(), item); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(w, apierror.NotFound("Store item not found"))
			return
		}
		response.Error(w, err)
		return
	}
	response.OK(w, item)
}

// DeleteItem handles DELETE /api/v1/admin/store/items/{id}
func (h *AdminHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}
	if id < model.CustomItemIDStart {
		response.Error(w, apierror.BadRequest("catalog items cannot be deleted"))
		return
	}

	if err := h.store.DeleteCustomItem(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(w, apierror.NotFound("Store item not found"))
			return
		}
		response.Error(w, err)
		return
	}
	response.NoContent(w)
}

func validateItem(item *model.StoreItem) error {
	var details []apierror.FieldError
	if item.Name == "" {
		details = append(details, apierror.FieldError{Field: "name", Message: "required"})
	}
	if !item.Type.Valid() {
		details = append(details, apierror.FieldError{Field: "type", Message: "must be theme, emote, avatar or other"})
	}
	if item.Cost < 0 {
		details = append(details, apierror.FieldError{Field: "cost", Message: "must be non-negative"})
	}
	if len(details) > 0 {
		return apierror.ValidationError("invalid store item", details...)
	}
	return nil
}
