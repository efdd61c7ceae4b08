package router

import (
	"net/http"

	"storefront/internal/handler"
	"storefront/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers mounted by the router.
type Handlers struct {
	Session  *handler.SessionHandler
	Product  *handler.ProductHandler
	Cart     *handler.CartHandler
	Account  *handler.AccountHandler
	Checkout *handler.CheckoutHandler
	Order    *handler.OrderHandler
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, apiKey string, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Apply middleware in order: Recovery -> Logging -> CORS -> APIKeyAuth
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS)
	r.Use(middleware.APIKeyAuth(apiKey, logger))

	// Health check endpoint (no authentication required)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/sessions", h.Session.Create)
		r.Post("/catalog/refresh", h.Product.Refresh)
		r.Get("/products", h.Product.Grid)
		r.Get("/categories", h.Product.Categories)
		r.Get("/flashsale", h.Product.FlashSale)

		// Routes below act on the caller's session.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireSession(logger))

			r.Get("/session", h.Session.Get)
			r.Post("/session/navigate", h.Session.Navigate)

			r.Get("/products/{groupID}", h.Product.Detail)
			r.Post("/products/{groupID}/variant", h.Product.ChangeVariant)

			r.Get("/cart", h.Cart.Get)
			r.Post("/cart/items", h.Cart.Add)
			r.Patch("/cart/items", h.Cart.ChangeQuantity)
			r.Delete("/cart/items", h.Cart.Remove)

			r.Post("/account/register", h.Account.Register)
			r.Post("/account/login", h.Account.Login)
			r.Post("/account/logout", h.Account.Logout)
			r.Get("/account", h.Account.Me)
			r.Patch("/account", h.Account.UpdateProfile)
			r.Put("/account/address", h.Account.SaveAddress)
			r.Put("/account/payment-method", h.Account.SavePaymentMethod)

			r.Get("/wishlist", h.Account.Wishlist)
			r.Post("/wishlist/toggle", h.Account.ToggleWishlist)

			r.Get("/checkout", h.Checkout.Summary)
			r.Put("/checkout/selection", h.Checkout.Select)
			r.Post("/checkout/pay", h.Checkout.Pay)
			r.Get("/checkout/payment", h.Checkout.Payment)

			r.Get("/orders", h.Order.List)
			r.Get("/orders/{orderID}", h.Order.GetByID)
		})
	})

	return r
}
