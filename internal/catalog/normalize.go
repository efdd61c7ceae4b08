package catalog

import "storefront/internal/model"

// AllCategories is the category filter value that disables filtering.
const AllCategories = "All"

// Normalize reduces the catalog to one representative per product group and
// applies the category filter. Products without an item_group_id are never
// deduplicated. Relative order is preserved and the input is not modified.
func Normalize(products []model.Product, category string) []model.Product {
	seen := make(map[string]struct{})
	out := make([]model.Product, 0, len(products))

	for _, p := range products {
		if p.ItemGroupID != "" {
			if _, dup := seen[p.ItemGroupID]; dup {
				continue
			}
			seen[p.ItemGroupID] = struct{}{}
		}
		if category != AllCategories && p.Category != category {
			continue
		}
		out = append(out, p)
	}

	return out
}

// Categories returns "All" followed by every distinct non-empty category in
// first-seen order.
func Categories(products []model.Product) []string {
	cats := []string{AllCategories}
	seen := make(map[string]struct{})
	for _, p := range products {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		cats = append(cats, p.Category)
	}
	return cats
}

// Variants returns every product of one group in catalog order.
func Variants(products []model.Product, groupID string) []model.Product {
	var out []model.Product
	for _, p := range products {
		if p.ItemGroupID == groupID {
			out = append(out, p)
		}
	}
	return out
}

// FlashSale returns the products tagged for the flash sale strip.
func FlashSale(products []model.Product) []model.Product {
	var out []model.Product
	for _, p := range products {
		if p.EventTag == "flashsale" {
			out = append(out, p)
		}
	}
	return out
}
