package service

import (
	"storefront/internal/catalog"
	"storefront/internal/checkout"
	"storefront/internal/model"
	"storefront/internal/pricing"
	"storefront/internal/session"
	"storefront/internal/wishlist"
)

// ProductCard is a product with its display labels.
type ProductCard struct {
	model.Product
	UnitPrice   int64  `json:"unitPrice"`
	PriceLabel  string `json:"priceLabel"`
	RatingLabel string `json:"ratingLabel"`
	SoldLabel   string `json:"soldLabel"`
}

// FlashSaleCard is a flash sale product with its sold-through bar.
type FlashSaleCard struct {
	ProductCard
	Progress int `json:"progress"`
}

// ProductDetail is the detail screen of one variant.
type ProductDetail struct {
	Product    ProductCard         `json:"product"`
	Images     []string            `json:"images"`
	Options    map[string][]string `json:"options"`
	Variants   int                 `json:"variants"`
	InWishlist bool                `json:"inWishlist"`
}

// CartLine is one cart line with its line total.
type CartLine struct {
	model.CartItem
	UnitPrice int64 `json:"unitPrice"`
	LineTotal int64 `json:"lineTotal"`
}

// CartView is the cart drawer.
type CartView struct {
	Items         []CartLine   `json:"items"`
	Count         int          `json:"count"`
	Subtotal      int64        `json:"subtotal"`
	SubtotalLabel string       `json:"subtotalLabel"`
	View          session.View `json:"view"`
}

// SessionView summarizes a session.
type SessionView struct {
	ID        string       `json:"id"`
	View      session.View `json:"view"`
	CartCount int          `json:"cartCount"`
	SignedIn  bool         `json:"signedIn"`
	Nama      string       `json:"nama,omitempty"`
}

// AuthView is returned after login or registration.
type AuthView struct {
	User model.UserAccount `json:"user"`
	View session.View      `json:"view"`
}

// WishlistToggle reports the outcome of a wishlist toggle.
type WishlistToggle struct {
	Added   bool             `json:"added"`
	Entries []wishlist.Entry `json:"entries"`
}

// CheckoutSummary is the checkout screen.
type CheckoutSummary struct {
	Stage          checkout.Stage           `json:"stage"`
	Items          []CartLine               `json:"items"`
	Totals         pricing.Totals           `json:"totals"`
	GrandTotal     string                   `json:"grandTotalLabel"`
	Selection      checkout.Selection       `json:"selection"`
	Address        string                   `json:"address"`
	HasAddress     bool                     `json:"hasAddress"`
	Carriers       []string                 `json:"carriers"`
	ShippingMethod []pricing.ShippingOption `json:"shippingMethods"`
	Banks          []checkout.Bank          `json:"banks"`
	Provinces      []string                 `json:"provinces"`
}

const noAddress = "No shipping address set yet."

func productCard(p model.Product) ProductCard {
	price := pricing.UnitPrice(p)
	return ProductCard{
		Product:     p,
		UnitPrice:   price,
		PriceLabel:  pricing.FormatIDR(price),
		RatingLabel: catalog.FormatRating(p.Rating),
		SoldLabel:   catalog.FormatSold(p.Sold),
	}
}

func cartLines(items []model.CartItem) []CartLine {
	lines := make([]CartLine, len(items))
	for i, item := range items {
		unit := pricing.UnitPrice(item.Product)
		lines[i] = CartLine{
			CartItem:  item,
			UnitPrice: unit,
			LineTotal: unit * int64(item.Quantity),
		}
	}
	return lines
}
