// Package account manages user accounts held by an external record store.
package account

import (
	"context"
	"fmt"
	"strings"
)

// Record field names shared by every store.
const (
	FieldNama              = "nama"
	FieldPhone             = "phone"
	FieldPassword          = "password"
	FieldAvatar            = "avatar"
	FieldMembershipPoints  = "membership_points"
	FieldMembershipBalance = "membership_balance"
	FieldOrders            = "orders"
	FieldWishlist          = "wishlist"
	FieldPaymentMethods    = "paymentMethods"
	FieldShippingAddresses = "shippingAddresses"
	FieldNotifications     = "notifications"
)

// Fields is a partial account record keyed by field name.
type Fields map[string]any

// Record is a stored account record.
type Record struct {
	ID     string `json:"id"`
	Fields Fields `json:"fields"`
}

// Condition is a single field equality.
type Condition struct {
	Field string
	Value string
}

// Filter is an AND of field equalities.
type Filter []Condition

// Where starts a filter with one equality.
func Where(field, value string) Filter {
	return Filter{{Field: field, Value: value}}
}

// And returns the filter extended with another equality.
func (f Filter) And(field, value string) Filter {
	out := make(Filter, len(f), len(f)+1)
	copy(out, f)
	return append(out, Condition{Field: field, Value: value})
}

var formulaEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// Formula renders the filter in record API formula syntax.
func (f Filter) Formula() string {
	terms := make([]string, len(f))
	for i, c := range f {
		terms[i] = fmt.Sprintf("{%s}='%s'", c.Field, formulaEscaper.Replace(c.Value))
	}
	if len(terms) == 1 {
		return terms[0]
	}
	return "AND(" + strings.Join(terms, ", ") + ")"
}

// Store is the account record store.
type Store interface {
	// Query returns every record matching the filter.
	Query(ctx context.Context, filter Filter) ([]Record, error)

	// Create inserts a record and returns it with its assigned ID.
	Create(ctx context.Context, fields Fields) (Record, error)

	// Update applies a partial update to the record with the given ID.
	Update(ctx context.Context, id string, fields Fields) error
}
