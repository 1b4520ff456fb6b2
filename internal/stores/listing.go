package stores

import (
	"slices"
	"strings"

	"github.com/aaravmahajanofficial/storefront/internal/models"
)

const (
	MinQuickSearchTerm = 3
	MaxQuickSearchHits = 5
)

// applyListing runs the listing page's filters, then its sort. Sorting is
// stable so ties and the no-op keys keep catalog order.
func applyListing(products []models.Product, q models.ListingQuery) []models.Product {
	needle := strings.ToLower(strings.TrimSpace(q.Search))

	out := []models.Product{}
	for _, p := range products {
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		if needle != "" && !containsFold(needle, p.Name, p.Description, p.Brand) {
			continue
		}

		price := p.EffectivePrice()
		if q.MinPrice != nil && price < *q.MinPrice {
			continue
		}
		if q.MaxPrice != nil && price > *q.MaxPrice {
			continue
		}

		if len(q.Brands) > 0 && !slices.Contains(q.Brands, p.Brand) {
			continue
		}

		out = append(out, p.Clone())
	}

	sortProducts(out, q.Sort)

	return out
}

func sortProducts(products []models.Product, sort models.SortOption) {
	switch sort {
	case models.SortPriceAsc:
		slices.SortStableFunc(products, func(a, b models.Product) int {
			return compareFloat(a.EffectivePrice(), b.EffectivePrice())
		})
	case models.SortPriceDesc:
		slices.SortStableFunc(products, func(a, b models.Product) int {
			return compareFloat(b.EffectivePrice(), a.EffectivePrice())
		})
	case models.SortRating:
		slices.SortStableFunc(products, func(a, b models.Product) int {
			return compareFloat(b.Rating, a.Rating)
		})
	default:
		// featured, newest and unknown keys keep catalog order
	}
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func distinctBrands(products []models.Product) []string {
	brands := []string{}
	for _, p := range products {
		if p.Brand != "" && !slices.Contains(brands, p.Brand) {
			brands = append(brands, p.Brand)
		}
	}

	return brands
}

// quickSearch backs the header search box. Terms under three characters
// return nothing and price bounds apply to the base price. A zero MaxPrice
// means unbounded.
func quickSearch(products []models.Product, q models.QuickSearchQuery) []models.SearchResult {
	term := strings.ToLower(strings.TrimSpace(q.Term))
	if len([]rune(term)) < MinQuickSearchTerm {
		return []models.SearchResult{}
	}

	out := []models.SearchResult{}
	for _, p := range products {
		if q.Category != "" && q.Category != "all" && string(p.Category) != q.Category {
			continue
		}
		if !containsFold(term, p.Name, p.Description) {
			continue
		}
		if p.Price < q.MinPrice || (q.MaxPrice > 0 && p.Price > q.MaxPrice) {
			continue
		}

		out = append(out, models.SearchResult{
			ID:       p.ID,
			Name:     p.Name,
			Category: p.Category,
			Image:    p.PrimaryImage(),
		})

		if len(out) == MaxQuickSearchHits {
			break
		}
	}

	return out
}
