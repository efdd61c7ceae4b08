package cart

import "storefront/internal/model"

// Matcher reports whether a cart line is targeted by an operation.
type Matcher func(model.Product) bool

// Identity decides which lines the ledger operations touch.
//
// Merge is used when adding a product: a line that matches is incremented
// instead of appending a new one. Line is used by quantity changes and
// removal, which the UI addresses by group and title only.
type Identity struct {
	Merge func(p model.Product) Matcher
	Line  func(groupID, title string) Matcher
}

// DefaultIdentity merges on the full variant tuple and addresses lines by
// (item_group_id, title). Two variants that share group and title but differ
// in color or size are therefore both hit by one quantity change or removal.
var DefaultIdentity = Identity{
	Merge: VariantMatcher,
	Line:  GroupTitleMatcher,
}

// VariantMatcher matches lines with the same title and variant attributes.
func VariantMatcher(p model.Product) Matcher {
	return func(item model.Product) bool {
		return item.Title == p.Title &&
			item.Color == p.Color &&
			item.Size == p.Size &&
			item.Connectivity == p.Connectivity &&
			item.BandColor == p.BandColor &&
			item.BandType == p.BandType
	}
}

// GroupTitleMatcher matches lines by item_group_id and title.
func GroupTitleMatcher(groupID, title string) Matcher {
	return func(item model.Product) bool {
		return item.ItemGroupID == groupID && item.Title == title
	}
}
