package handler

import (
	"net/http"

	"cinehub-rest-api/internal/repository"
	"cinehub-rest-api/internal/service"
	"cinehub-rest-api/pkg/apierror"
	"cinehub-rest-api/pkg/response"
)

// StoreHandler handles the points store.
type StoreHandler struct {
	economy *service.EconomyService
	store   repository.StoreRepository
}

// NewStoreHandler creates a new store handler.
func NewStoreHandler(economy *service.EconomyService, store repository.StoreRepository) *StoreHandler {
	return &StoreHandler{
		economy: economy,
		store:   store,
	}
}

// ListItems handles GET /api/v1/store/items
func (h *StoreHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.economy.ListItems(r.Context())
	if err != nil {
		response.Error(w, serviceError(err))
		return
	}
	response.OK(w, items)
}

// GetItem handles GET /api/v1/store/items/{id}
func (h *StoreHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}

	item, err := h.economy.ItemByID(r.Context(), id)
	if err != nil {
		response.Error(w, serviceError(err))
		return
	}
	response.OK(w, item)
}

type purchaseRequest struct {
	ItemID int64 `json:"item_id"`
}

// Purchase handles POST /api/v1/store/purchase
func (h *StoreHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	s := session(w, r)
	if s == nil {
		return
	}

	var req purchaseRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ItemID <= 0 {
		response.Error(w, apierror.BadRequest("item_id is required"))
		return
	}

	purchase, err := h.economy.Purchase(r.Context(), s.UserID, req.ItemID)
	if err != nil {
		response.Error(w, serviceError(err))
		return
	}
	response.Created(w, purchase)
}

// ListPurchases handles GET /api/v1/store/purchases
func (h *StoreHandler) ListPurchases(w http.ResponseWriter, r *http.Request) {
	s := session(w, r)
	if s == nil {
		return
	}

	purchases, err := h.store.ListPurchases(r.Context(), s.UserID)
	if err != nil {
		response.Error(w, serviceError(err))
		return
	}
	response.OK(w, purchases)
}
