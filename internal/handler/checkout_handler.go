package handler

import (
	"net/http"

	"storefront/internal/checkout"
	"storefront/internal/service"

	"github.com/rs/zerolog"
)

// CheckoutHandler handles checkout and payment HTTP requests.
type CheckoutHandler struct {
	service service.CheckoutService
	logger  zerolog.Logger
}

// NewCheckoutHandler creates a new checkout handler.
func NewCheckoutHandler(service service.CheckoutService, logger zerolog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		service: service,
		logger:  logger.With().Str("handler", "checkout").Logger(),
	}
}

// Summary handles GET /api/checkout requests.
func (h *CheckoutHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context(), sessionID(r))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// Select handles PUT /api/checkout/selection requests.
func (h *CheckoutHandler) Select(w http.ResponseWriter, r *http.Request) {
	var sel checkout.Selection
	if !decodeJSON(w, r, &sel, h.logger) {
		return
	}

	summary, err := h.service.Select(r.Context(), sessionID(r), sel)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// Pay handles POST /api/checkout/pay requests. The response is sent once the
// payment has been processed.
func (h *CheckoutHandler) Pay(w http.ResponseWriter, r *http.Request) {
	details, err := h.service.Pay(r.Context(), sessionID(r))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, details)
}

// Payment handles GET /api/checkout/payment requests.
func (h *CheckoutHandler) Payment(w http.ResponseWriter, r *http.Request) {
	details, err := h.service.Payment(r.Context(), sessionID(r))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, details)
}
