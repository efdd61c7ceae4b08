package service

import (
	"context"

	"storefront/internal/account"
	"storefront/internal/checkout"
	"storefront/internal/model"
	"storefront/internal/wishlist"

	"github.com/google/uuid"
)

// Catalog is the product list the services read from.
type Catalog interface {
	Products() []model.Product
	Loaded() bool
	Refresh(ctx context.Context) (int, error)
}

// Authenticator registers and authenticates accounts.
type Authenticator interface {
	Register(ctx context.Context, nama, phone, password string) (model.UserAccount, string, error)
	Login(ctx context.Context, phone, password string) (model.UserAccount, string, error)
	Reauthenticate(ctx context.Context, phone, credential string) (model.UserAccount, error)
}

// AccountSyncer mirrors local account changes to the account store.
type AccountSyncer interface {
	Push(id string, fields account.Fields)
}

// SessionService defines session lifecycle and navigation operations.
type SessionService interface {
	// Create starts a new session.
	Create(ctx context.Context) (*SessionView, error)

	// Get summarizes the session.
	Get(ctx context.Context, sessionID string) (*SessionView, error)

	// Navigate moves the session to a view, redirecting guarded views to login.
	Navigate(ctx context.Context, sessionID string, req model.NavigateRequest) (*SessionView, error)
}

// ProductService defines catalog browsing operations.
type ProductService interface {
	// Refresh reloads the catalog from its source.
	Refresh(ctx context.Context) (int, error)

	// Grid returns one representative per product group, filtered by category.
	Grid(ctx context.Context, category string) []ProductCard

	// Categories returns "All" followed by the catalog categories.
	Categories(ctx context.Context) []string

	// FlashSale returns the flash sale strip.
	FlashSale(ctx context.Context) []FlashSaleCard

	// Detail shows the first variant of a group and makes it the selected product.
	Detail(ctx context.Context, sessionID, groupID string) (*ProductDetail, error)

	// ChangeVariant resolves the closest variant after changing one attribute.
	ChangeVariant(ctx context.Context, sessionID, groupID string, req model.ChangeVariantRequest) (*ProductDetail, error)
}

// CartService defines cart operations.
type CartService interface {
	Get(ctx context.Context, sessionID string) (*CartView, error)
	Add(ctx context.Context, sessionID string, req model.AddToCartRequest) (*CartView, error)
	ChangeQuantity(ctx context.Context, sessionID string, req model.CartLineRequest) (*CartView, error)
	Remove(ctx context.Context, sessionID string, req model.CartLineRequest) (*CartView, error)
}

// AccountService defines account operations bound to a session.
type AccountService interface {
	Register(ctx context.Context, sessionID string, req model.RegisterRequest) (*AuthView, error)
	Login(ctx context.Context, sessionID string, req model.LoginRequest) (*AuthView, error)
	Logout(ctx context.Context, sessionID string) (*SessionView, error)
	Me(ctx context.Context, sessionID string) (*model.UserAccount, error)
	UpdateProfile(ctx context.Context, sessionID string, req model.ProfileUpdateRequest) (*model.UserAccount, error)
	SaveAddress(ctx context.Context, sessionID string, req model.AddressRequest) (*model.UserAccount, error)
	SavePaymentMethod(ctx context.Context, sessionID string, req model.PaymentMethodRequest) (*model.UserAccount, error)
	ToggleWishlist(ctx context.Context, sessionID string, product model.Product) (*WishlistToggle, error)
	Wishlist(ctx context.Context, sessionID string) ([]wishlist.Entry, error)
}

// CheckoutService defines checkout and payment operations.
type CheckoutService interface {
	Summary(ctx context.Context, sessionID string) (*CheckoutSummary, error)
	Select(ctx context.Context, sessionID string, sel checkout.Selection) (*CheckoutSummary, error)
	Pay(ctx context.Context, sessionID string) (*model.PaymentDetails, error)
	Payment(ctx context.Context, sessionID string) (*model.PaymentDetails, error)
	Orders(ctx context.Context, sessionID string) ([]model.Order, error)
	Order(ctx context.Context, sessionID string, orderID uuid.UUID) (*model.OrderResponse, error)
}
