package handler

import (
	"net/http"

	"storefront/internal/model"
	"storefront/internal/service"

	"github.com/rs/zerolog"
)

// AccountHandler handles account and wishlist HTTP requests.
type AccountHandler struct {
	service service.AccountService
	logger  zerolog.Logger
}

// NewAccountHandler creates a new account handler.
func NewAccountHandler(service service.AccountService, logger zerolog.Logger) *AccountHandler {
	return &AccountHandler{
		service: service,
		logger:  logger.With().Str("handler", "account").Logger(),
	}
}

// Register handles POST /api/account/register requests.
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	resp, err := h.service.Register(r.Context(), sessionID(r), req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// Login handles POST /api/account/login requests.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	resp, err := h.service.Login(r.Context(), sessionID(r), req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Logout handles POST /api/account/logout requests.
func (h *AccountHandler) Logout(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Logout(r.Context(), sessionID(r))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// Me handles GET /api/account requests.
func (h *AccountHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.Me(r.Context(), sessionID(r))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// UpdateProfile handles PATCH /api/account requests.
func (h *AccountHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req model.ProfileUpdateRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	user, err := h.service.UpdateProfile(r.Context(), sessionID(r), req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// SaveAddress handles PUT /api/account/address requests.
func (h *AccountHandler) SaveAddress(w http.ResponseWriter, r *http.Request) {
	var req model.AddressRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	user, err := h.service.SaveAddress(r.Context(), sessionID(r), req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// SavePaymentMethod handles PUT /api/account/payment-method requests.
func (h *AccountHandler) SavePaymentMethod(w http.ResponseWriter, r *http.Request) {
	var req model.PaymentMethodRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	user, err := h.service.SavePaymentMethod(r.Context(), sessionID(r), req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// Wishlist handles GET /api/wishlist requests.
func (h *AccountHandler) Wishlist(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.Wishlist(r.Context(), sessionID(r))
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

// ToggleWishlist handles POST /api/wishlist/toggle requests.
func (h *AccountHandler) ToggleWishlist(w http.ResponseWriter, r *http.Request) {
	var req model.WishlistToggleRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	resp, err := h.service.ToggleWishlist(r.Context(), sessionID(r), req.Product)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
