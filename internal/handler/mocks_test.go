package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"storefront/internal/checkout"
	"storefront/internal/middleware"
	"storefront/internal/model"
	"storefront/internal/service"
	"storefront/internal/wishlist"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

const testSessionID = "3b8f6c0e-52a4-4f3e-9d7a-0f5b8f1e2a10"

// newRequest builds a request that already passed RequireSession. params
// are chi URL parameters as key/value pairs.
func newRequest(method, target, body string, params ...string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}

	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(params); i += 2 {
		rctx.URLParams.Add(params[i], params[i+1])
	}

	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	return req.WithContext(middleware.WithSessionID(ctx, testSessionID))
}

// MockSessionService is a mock implementation of SessionService.
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Create(ctx context.Context) (*service.SessionView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SessionView), args.Error(1)
}

func (m *MockSessionService) Get(ctx context.Context, sessionID string) (*service.SessionView, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SessionView), args.Error(1)
}

func (m *MockSessionService) Navigate(ctx context.Context, sessionID string, req model.NavigateRequest) (*service.SessionView, error) {
	args := m.Called(ctx, sessionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SessionView), args.Error(1)
}

// MockProductService is a mock implementation of ProductService.
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) Refresh(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockProductService) Grid(ctx context.Context, category string) []service.ProductCard {
	args := m.Called(ctx, category)
	return args.Get(0).([]service.ProductCard)
}

func (m *MockProductService) Categories(ctx context.Context) []string {
	args := m.Called(ctx)
	return args.Get(0).([]string)
}

func (m *MockProductService) FlashSale(ctx context.Context) []service.FlashSaleCard {
	args := m.Called(ctx)
	return args.Get(0).([]service.FlashSaleCard)
}

func (m *MockProductService) Detail(ctx context.Context, sessionID, groupID string) (*service.ProductDetail, error) {
	args := m.Called(ctx, sessionID, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProductDetail), args.Error(1)
}

func (m *MockProductService) ChangeVariant(ctx context.Context, sessionID, groupID string, req model.ChangeVariantRequest) (*service.ProductDetail, error) {
	args := m.Called(ctx, sessionID, groupID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProductDetail), args.Error(1)
}

// MockCartService is a mock implementation of CartService.
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) Get(ctx context.Context, sessionID string) (*service.CartView, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CartView), args.Error(1)
}

func (m *MockCartService) Add(ctx context.Context, sessionID string, req model.AddToCartRequest) (*service.CartView, error) {
	args := m.Called(ctx, sessionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CartView), args.Error(1)
}

func (m *MockCartService) ChangeQuantity(ctx context.Context, sessionID string, req model.CartLineRequest) (*service.CartView, error) {
	args := m.Called(ctx, sessionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CartView), args.Error(1)
}

func (m *MockCartService) Remove(ctx context.Context, sessionID string, req model.CartLineRequest) (*service.CartView, error) {
	args := m.Called(ctx, sessionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CartView), args.Error(1)
}

// MockAccountService is a mock implementation of AccountService.
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) Register(ctx context.Context, sessionID string, req model.RegisterRequest) (*service.AuthView, error) {
	args := m.Called(ctx, sessionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AuthView), args.Error(1)
}

func (m *MockAccountService) Login(ctx context.Context, sessionID string, req model.LoginRequest) (*service.AuthView, error) {
	args := m.Called(ctx, sessionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AuthView), args.Error(1)
}

func (m *MockAccountService) Logout(ctx context.Context, sessionID string) (*service.SessionView, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SessionView), args.Error(1)
}

func (m *MockAccountService) Me(ctx context.Context, sessionID string) (*model.UserAccount, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserAccount), args.Error(1)
}

func (m *MockAccountService) UpdateProfile(ctx context.Context, sessionID string, req model.ProfileUpdateRequest) (*model.UserAccount, error) {
	args := m.Called(ctx, sessionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserAccount), args.Error(1)
}

func (m *MockAccountService) SaveAddress(ctx context.Context, sessionID string, req model.AddressRequest) (*model.UserAccount, error) {
	args := m.Called(ctx, sessionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserAccount), args.Error(1)
}

func (m *MockAccountService) SavePaymentMethod(ctx context.Context, sessionID string, req model.PaymentMethodRequest) (*model.UserAccount, error) {
	args := m.Called(ctx, sessionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserAccount), args.Error(1)
}

func (m *MockAccountService) ToggleWishlist(ctx context.Context, sessionID string, product model.Product) (*service.WishlistToggle, error) {
	args := m.Called(ctx, sessionID, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.WishlistToggle), args.Error(1)
}

func (m *MockAccountService) Wishlist(ctx context.Context, sessionID string) ([]wishlist.Entry, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]wishlist.Entry), args.Error(1)
}

// MockCheckoutService is a mock implementation of CheckoutService.
type MockCheckoutService struct {
	mock.Mock
}

func (m *MockCheckoutService) Summary(ctx context.Context, sessionID string) (*service.CheckoutSummary, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CheckoutSummary), args.Error(1)
}

func (m *MockCheckoutService) Select(ctx context.Context, sessionID string, sel checkout.Selection) (*service.CheckoutSummary, error) {
	args := m.Called(ctx, sessionID, sel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CheckoutSummary), args.Error(1)
}

func (m *MockCheckoutService) Pay(ctx context.Context, sessionID string) (*model.PaymentDetails, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PaymentDetails), args.Error(1)
}

func (m *MockCheckoutService) Payment(ctx context.Context, sessionID string) (*model.PaymentDetails, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PaymentDetails), args.Error(1)
}

func (m *MockCheckoutService) Orders(ctx context.Context, sessionID string) ([]model.Order, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockCheckoutService) Order(ctx context.Context, sessionID string, orderID uuid.UUID) (*model.OrderResponse, error) {
	args := m.Called(ctx, sessionID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderResponse), args.Error(1)
}
