// Package pricing computes checkout totals from the cart and the shipping
// selection. Amounts are whole rupiah.
package pricing

import (
	"strings"

	"storefront/internal/cart"
	"storefront/internal/model"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PlatformFee is the flat fee added to every order.
const PlatformFee int64 = 2000

var idPrinter = message.NewPrinter(language.Indonesian)

// Totals is the breakdown shown on the checkout summary.
type Totals struct {
	Subtotal    int64 `json:"subtotal"`
	ShippingFee int64 `json:"shippingFee"`
	PlatformFee int64 `json:"platformFee"`
	GrandTotal  int64 `json:"grandTotal"`
}

// ParsePrice reads a dot-grouped price such as "1.200.000". Anything other
// than digits after removing the separators yields 0.
func ParsePrice(s string) int64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ".", "")
	if s == "" {
		return 0
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
	}

	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsInteger() {
		return 0
	}
	return d.IntPart()
}

// UnitPrice is the sale price when present, otherwise the list price.
func UnitPrice(p model.Product) int64 {
	if strings.TrimSpace(p.SalePrice) != "" {
		return ParsePrice(p.SalePrice)
	}
	return ParsePrice(p.Price)
}

// ComputeTotals sums the cart and adds the fees. An empty cart has a zero
// subtotal but still carries the fees.
func ComputeTotals(items cart.Cart, shippingFee, platformFee int64) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromInt(UnitPrice(item.Product)).Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(line)
	}

	grand := subtotal.Add(decimal.NewFromInt(shippingFee)).Add(decimal.NewFromInt(platformFee))

	return Totals{
		Subtotal:    subtotal.IntPart(),
		ShippingFee: shippingFee,
		PlatformFee: platformFee,
		GrandTotal:  grand.IntPart(),
	}
}

// FormatIDR renders an amount as "Rp 2.426.000".
func FormatIDR(amount int64) string {
	return idPrinter.Sprintf("Rp %d", amount)
}
