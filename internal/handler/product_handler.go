package handler

import (
	"net/http"

	"storefront/internal/model"
	"storefront/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// ProductHandler handles catalog HTTP requests.
type ProductHandler struct {
	service service.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// Refresh handles POST /api/catalog/refresh requests.
func (h *ProductHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	n, err := h.service.Refresh(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"products": n})
}

// Grid handles GET /api/products requests.
func (h *ProductHandler) Grid(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	writeJSON(w, http.StatusOK, h.service.Grid(r.Context(), category))
}

// Categories handles GET /api/categories requests.
func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Categories(r.Context()))
}

// FlashSale handles GET /api/flashsale requests.
func (h *ProductHandler) FlashSale(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.FlashSale(r.Context()))
}

// Detail handles GET /api/products/{groupID} requests.
func (h *ProductHandler) Detail(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "groupID")
	if groupID == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "product group is required", h.logger)
		return
	}

	detail, err := h.service.Detail(r.Context(), sessionID(r), groupID)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, detail)
}

// ChangeVariant handles POST /api/products/{groupID}/variant requests.
func (h *ProductHandler) ChangeVariant(w http.ResponseWriter, r *http.Request) {
	var req model.ChangeVariantRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	detail, err := h.service.ChangeVariant(r.Context(), sessionID(r), chi.URLParam(r, "groupID"), req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, detail)
}
