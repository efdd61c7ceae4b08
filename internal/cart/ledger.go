// Package cart implements the session cart ledger. Every operation returns a
// new Cart and leaves its input untouched.
package cart

import (
	"slices"

	"storefront/internal/model"
)

// Cart is an ordered list of line items in insertion order.
type Cart []model.CartItem

// Count returns the total number of units in the cart.
func (c Cart) Count() int {
	n := 0
	for _, item := range c {
		n += item.Quantity
	}
	return n
}

// Clone returns an independent copy of the cart.
func (c Cart) Clone() Cart {
	return slices.Clone(c)
}

// Ledger applies cart operations under an identity strategy.
type Ledger struct {
	identity Identity
}

// NewLedger creates a ledger using the given identity strategy.
func NewLedger(identity Identity) Ledger {
	return Ledger{identity: identity}
}

// AddOrIncrement increments the matching line by one, keeping its position,
// or appends a new line with quantity 1.
func (l Ledger) AddOrIncrement(c Cart, p model.Product) Cart {
	match := l.identity.Merge(p)

	out := c.Clone()
	for i := range out {
		if match(out[i].Product) {
			out[i].Quantity++
			return out
		}
	}

	return append(out, model.CartItem{Product: p, Quantity: 1})
}

// ChangeQuantity adds delta to every matching line, floors at zero and drops
// lines that reach zero. A missing line is a no-op.
func (l Ledger) ChangeQuantity(c Cart, groupID, title string, delta int) Cart {
	match := l.identity.Line(groupID, title)

	out := make(Cart, 0, len(c))
	for _, item := range c {
		if match(item.Product) {
			item.Quantity = max(0, item.Quantity+delta)
		}
		if item.Quantity > 0 {
			out = append(out, item)
		}
	}
	return out
}

// Remove drops every matching line.
func (l Ledger) Remove(c Cart, groupID, title string) Cart {
	match := l.identity.Line(groupID, title)

	out := make(Cart, 0, len(c))
	for _, item := range c {
		if !match(item.Product) {
			out = append(out, item)
		}
	}
	return out
}
