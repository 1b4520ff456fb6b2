package models

type SortOption string

const (
	SortFeatured  SortOption = "featured"
	SortPriceAsc  SortOption = "price-asc"
	SortPriceDesc SortOption = "price-desc"
	SortRating    SortOption = "rating"
	SortNewest    SortOption = "newest"
)

// ListingQuery drives the product listing page. Every field is optional and
// the filters are ANDed; Brands is an OR within itself.
type ListingQuery struct {
	Category Category   `json:"category,omitempty"  validate:"omitempty,oneof=phone laptop"`
	Search   string     `json:"search,omitempty"    validate:"max=200"`
	MinPrice *float64   `json:"minPrice,omitempty"  validate:"omitempty,gte=0"`
	MaxPrice *float64   `json:"maxPrice,omitempty"  validate:"omitempty,gte=0"`
	Brands   []string   `json:"brands,omitempty"`
	Sort     SortOption `json:"sort,omitempty"      validate:"omitempty,oneof=featured price-asc price-desc rating newest"`
}

type ListingResult struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Brands   []string  `json:"brands"`
}

// QuickSearchQuery backs the header search box.
type QuickSearchQuery struct {
	Term     string  `validate:"max=200"`
	Category string  `validate:"omitempty,oneof=all phone laptop"`
	MinPrice float64 `validate:"gte=0"`
	MaxPrice float64 `validate:"gte=0"`
}
