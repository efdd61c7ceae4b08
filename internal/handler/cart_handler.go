package handler

import (
	"net/http"

	"storefront/internal/model"
	"storefront/internal/service"

	"github.com/rs/zerolog"
)

// CartHandler handles cart HTTP requests.
type CartHandler struct {
	service service.CartService
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(service service.CartService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

// Get handles GET /api/cart requests.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Get(r.Context(), sessionID(r))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// Add handles POST /api/cart/items requests.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req model.AddToCartRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	view, err := h.service.Add(r.Context(), sessionID(r), req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// ChangeQuantity handles PATCH /api/cart/items requests.
func (h *CartHandler) ChangeQuantity(w http.ResponseWriter, r *http.Request) {
	var req model.CartLineRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	view, err := h.service.ChangeQuantity(r.Context(), sessionID(r), req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// Remove handles DELETE /api/cart/items requests.
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	var req model.CartLineRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	view, err := h.service.Remove(r.Context(), sessionID(r), req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view)
}
