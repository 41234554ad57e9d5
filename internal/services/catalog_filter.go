package services

import (
	"sort"
	"strings"

	"github.com/example/stride/internal/models"
)

// Sort keys accepted by the product listing.
const (
	SortNewest    = "newest"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
)

// CatalogQuery captures the four independent listing filters.
type CatalogQuery struct {
	Category string
	Tag      string
	Search   string
	Sort     string
}

// FilterProducts derives the visible product list. Filters narrow the input
// in the order category, tag, search; all matching is case-insensitive.
// "newest" keeps the input order; price sorts are stable and use the base
// price, not the discounted price. Pure function, safe to recompute.
func FilterProducts(products []models.Product, q CatalogQuery) []models.Product {
	result := make([]models.Product, len(products))
	copy(result, products)

	if q.Category != "" {
		result = filter(result, func(p *models.Product) bool {
			return strings.EqualFold(p.Category, q.Category)
		})
	}

	if q.Tag != "" {
		result = filter(result, func(p *models.Product) bool {
			for _, t := range p.Tags {
				if strings.EqualFold(t, q.Tag) {
					return true
				}
			}
			return false
		})
	}

	if q.Search != "" {
		term := strings.ToLower(q.Search)
		result = filter(result, func(p *models.Product) bool {
			if strings.Contains(strings.ToLower(p.Name), term) {
				return true
			}
			if strings.Contains(strings.ToLower(p.Category), term) {
				return true
			}
			for _, t := range p.Tags {
				if strings.Contains(strings.ToLower(t), term) {
					return true
				}
			}
			return false
		})
	}

	switch q.Sort {
	case SortPriceLow:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price < result[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price > result[j].Price
		})
	}

	return result
}

func filter(products []models.Product, keep func(*models.Product) bool) []models.Product {
	out := products[:0]
	for i := range products {
		if keep(&products[i]) {
			out = append(out, products[i])
		}
	}
	return out
}

// CollectTags returns the sorted set of distinct tags across products.
func CollectTags(products []models.Product) []string {
	seen := map[string]struct{}{}
	var tags []string
	for i := range products {
		for _, t := range products[i].Tags {
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				tags = append(tags, t)
			}
		}
	}
	sort.Strings(tags)
	return tags
}
