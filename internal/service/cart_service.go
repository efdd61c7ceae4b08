package service

import (
	"context"

	"storefront/internal/cart"
	"storefront/internal/checkout"
	"storefront/internal/model"
	"storefront/internal/pricing"
	"storefront/internal/session"

	"github.com/rs/zerolog"
)

// cartService implements CartService.
type cartService struct {
	catalog  Catalog
	sessions *session.Manager
	ledger   cart.Ledger
	logger   zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(c Catalog, sessions *session.Manager, ledger cart.Ledger, logger zerolog.Logger) CartService {
	return &cartService{
		catalog:  c,
		sessions: sessions,
		ledger:   ledger,
		logger:   logger.With().Str("service", "cart").Logger(),
	}
}

func (s *cartService) Get(ctx context.Context, sessionID string) (*CartView, error) {
	st, err := s.sessions.View(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return cartView(st), nil
}

// Add puts one unit of the catalog variant matching the requested product in
// the cart. With BuyNow the session moves on to checkout.
func (s *cartService) Add(ctx context.Context, sessionID string, req model.AddToCartRequest) (*CartView, error) {
	if req.Product.Title == "" {
		return nil, model.MissingField("product.title")
	}

	product, ok := s.lookup(req.Product)
	if !ok {
		s.logger.Warn().
			Str("title", req.Product.Title).
			Str("item_group_id", req.Product.ItemGroupID).
			Msg("product not in catalog")
		return nil, model.ErrProductNotFound
	}

	st, err := s.sessions.Update(ctx, sessionID, func(st *session.State) error {
		if st.Stage == checkout.StageProcessing {
			return model.ErrPaymentInProgress
		}
		st.Cart = s.ledger.AddOrIncrement(st.Cart, product)
		if st.Stage == checkout.StageCompleted {
			st.Stage = checkout.StageIdle
		}
		refreshStage(st)
		if req.BuyNow {
			session.Navigate(st, session.ViewCheckout, nil)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("session_id", sessionID).
		Str("title", product.Title).
		Int("cart_count", st.Cart.Count()).
		Msg("added to cart")

	return cartView(st), nil
}

func (s *cartService) ChangeQuantity(ctx context.Context, sessionID string, req model.CartLineRequest) (*CartView, error) {
	if req.Delta == 0 {
		return nil, model.ErrInvalidQuantity
	}

	st, err := s.sessions.Update(ctx, sessionID, func(st *session.State) error {
		if st.Stage == checkout.StageProcessing {
			return model.ErrPaymentInProgress
		}
		st.Cart = s.ledger.ChangeQuantity(st.Cart, req.ItemGroupID, req.Title, req.Delta)
		refreshStage(st)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cartView(st), nil
}

func (s *cartService) Remove(ctx context.Context, sessionID string, req model.CartLineRequest) (*CartView, error) {
	st, err := s.sessions.Update(ctx, sessionID, func(st *session.State) error {
		if st.Stage == checkout.StageProcessing {
			return model.ErrPaymentInProgress
		}
		st.Cart = s.ledger.Remove(st.Cart, req.ItemGroupID, req.Title)
		refreshStage(st)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cartView(st), nil
}

// lookup finds the catalog variant the client referred to. The catalog copy
// is used so prices cannot be supplied by the client.
func (s *cartService) lookup(p model.Product) (model.Product, bool) {
	match := cart.VariantMatcher(p)
	for _, candidate := range s.catalog.Products() {
		if candidate.ItemGroupID == p.ItemGroupID && match(candidate) {
			return candidate, true
		}
	}
	return model.Product{}, false
}

func cartView(st *session.State) *CartView {
	subtotal := pricing.ComputeTotals(st.Cart, 0, 0).Subtotal
	return &CartView{
		Items:         cartLines(st.Cart),
		Count:         st.Cart.Count(),
		Subtotal:      subtotal,
		SubtotalLabel: pricing.FormatIDR(subtotal),
		View:          st.View,
	}
}
