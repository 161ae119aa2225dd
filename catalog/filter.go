// Package catalog resolves the storefront's faceted product filter:
// category first, then optional size and vehicle-model selections.
package catalog

import "github.com/skyyuga/tyremart-api/models"

// CategoryAll matches every category.
const CategoryAll = "All"

type Filter struct {
	Category string
	Size     string
	Model    string
}

type Result struct {
	Products     []models.Product `json:"products"`
	UniqueSizes  []string         `json:"uniqueSizes"`
	UniqueModels []string         `json:"uniqueModels"`
}

// Resolve restricts the product set to the selected facets and derives
// the selectable facet values. Facets are computed from the post-filter
// result set, so picking a model narrows the size list to sizes still
// reachable (and vice versa). An unmatched selection yields an empty
// result, never an error.
func Resolve(products []models.Product, f Filter) Result {
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if f.Category != "" && f.Category != CategoryAll && p.Category != f.Category {
			continue
		}
		if f.Size != "" && p.Size != f.Size {
			continue
		}
		if f.Model != "" && !hasModel(p, f.Model) {
			continue
		}
		filtered = append(filtered, p)
	}

	return Result{
		Products:     filtered,
		UniqueSizes:  uniqueSizes(filtered),
		UniqueModels: uniqueModels(filtered),
	}
}

// Categories returns the distinct non-empty categories across the full
// product set, in first-seen order.
func Categories(products []models.Product) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	return out
}

func hasModel(p models.Product, model string) bool {
	for _, m := range p.Models {
		if m == model {
			return true
		}
	}
	return false
}

func uniqueSizes(products []models.Product) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range products {
		if p.Size == "" || seen[p.Size] {
			continue
		}
		seen[p.Size] = true
		out = append(out, p.Size)
	}
	return out
}

func uniqueModels(products []models.Product) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range products {
		for _, m := range p.Models {
			if m == "" || seen[m] {
				continue
			}
			seen[m] = true
			out = append(out, m)
		}
	}
	return out
}
