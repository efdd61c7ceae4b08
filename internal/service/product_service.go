package service

import (
	"context"

	"storefront/internal/catalog"
	"storefront/internal/model"
	"storefront/internal/session"
	"storefront/internal/variant"
	"storefront/internal/wishlist"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	catalog  Catalog
	sessions *session.Manager
	logger   zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(c Catalog, sessions *session.Manager, logger zerolog.Logger) ProductService {
	return &productService{
		catalog:  c,
		sessions: sessions,
		logger:   logger.With().Str("service", "product").Logger(),
	}
}

// Refresh reloads the catalog. A failed reload keeps the previous products.
func (s *productService) Refresh(ctx context.Context) (int, error) {
	n, err := s.catalog.Refresh(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("catalog refresh failed")
		if !s.catalog.Loaded() {
			return 0, model.ErrCatalogUnavailable
		}
		return len(s.catalog.Products()), nil
	}
	return n, nil
}

func (s *productService) Grid(ctx context.Context, category string) []ProductCard {
	if category == "" {
		category = catalog.AllCategories
	}

	products := catalog.Normalize(s.catalog.Products(), category)
	cards := make([]ProductCard, len(products))
	for i, p := range products {
		cards[i] = productCard(p)
	}
	return cards
}

func (s *productService) Categories(ctx context.Context) []string {
	return catalog.Categories(s.catalog.Products())
}

func (s *productService) FlashSale(ctx context.Context) []FlashSaleCard {
	products := catalog.FlashSale(s.catalog.Products())
	cards := make([]FlashSaleCard, len(products))
	for i, p := range products {
		cards[i] = FlashSaleCard{
			ProductCard: productCard(p),
			Progress:    catalog.FlashSaleProgress(p),
		}
	}
	return cards
}

func (s *productService) Detail(ctx context.Context, sessionID, groupID string) (*ProductDetail, error) {
	variants := catalog.Variants(s.catalog.Products(), groupID)
	if len(variants) == 0 {
		return nil, model.ErrProductNotFound
	}

	return s.show(ctx, sessionID, variants[0], variants)
}

func (s *productService) ChangeVariant(ctx context.Context, sessionID, groupID string, req model.ChangeVariantRequest) (*ProductDetail, error) {
	attr, ok := model.ParseAttribute(req.Attribute)
	if !ok {
		return nil, model.ErrInvalidAttribute
	}

	variants := catalog.Variants(s.catalog.Products(), groupID)
	if len(variants) == 0 {
		return nil, model.ErrProductNotFound
	}

	current := req.Current
	if current.ItemGroupID != groupID {
		current = variants[0]
	}

	return s.show(ctx, sessionID, variant.Resolve(current, variants, attr, req.Value), variants)
}

// show makes p the selected product of the session and builds its detail.
func (s *productService) show(ctx context.Context, sessionID string, p model.Product, variants []model.Product) (*ProductDetail, error) {
	st, err := s.sessions.Update(ctx, sessionID, func(st *session.State) error {
		session.Navigate(st, session.ViewDetail, &p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	options := make(map[string][]string)
	for attr, values := range variant.Options(variants) {
		options[string(attr)] = values
	}

	detail := &ProductDetail{
		Product:  productCard(p),
		Images:   catalog.Images(p),
		Options:  options,
		Variants: len(variants),
	}
	if st.User != nil {
		detail.InWishlist = wishlist.Contains(st.User.Wishlist, p)
	}
	return detail, nil
}
