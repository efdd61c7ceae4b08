// Package variant picks concrete product variants from attribute selections.
package variant

import "storefront/internal/model"

// Resolve returns the variant of the group that best matches current with
// attr changed to value. Only variants whose attr equals value are considered;
// among them the one matching the most of the five attributes wins and ties
// go to the earliest in all. When no variant carries value, current is
// returned unchanged.
//
// Callers showing an image carousel must reset it to the first image when the
// returned variant differs from current.
func Resolve(current model.Product, all []model.Product, attr model.Attribute, value string) model.Product {
	target := current.WithAttribute(attr, value)

	bestScore := -1
	best := current
	for _, candidate := range all {
		if candidate.Attribute(attr) != value {
			continue
		}
		if s := score(candidate, target); s > bestScore {
			bestScore = s
			best = candidate
		}
	}

	return best
}

func score(candidate, target model.Product) int {
	n := 0
	for _, a := range model.Attributes {
		if candidate.Attribute(a) == target.Attribute(a) {
			n++
		}
	}
	return n
}

// Options lists the distinct non-empty values of each attribute across the
// group, in first-seen order. Attributes with no values are omitted.
func Options(all []model.Product) map[model.Attribute][]string {
	out := make(map[model.Attribute][]string)
	for _, a := range model.Attributes {
		seen := make(map[string]struct{})
		for _, p := range all {
			v := p.Attribute(a)
			if v == "" {
				continue
			}
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out[a] = append(out[a], v)
		}
	}
	return out
}
