package models

type Category string

const (
	CategoryPhone  Category = "phone"
	CategoryLaptop Category = "laptop"
)

func (c Category) Valid() bool {
	return c == CategoryPhone || c == CategoryLaptop
}

// Product is immutable once loaded into the catalog. Cart, wishlist and
// compare entries hold copies, never pointers into the catalog.
type Product struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Price          float64           `json:"price"`
	DiscountPrice  *float64          `json:"discountPrice,omitempty"`
	Rating         float64           `json:"rating"`
	Reviews        int               `json:"reviews"`
	Category       Category          `json:"category"`
	Brand          string            `json:"brand"`
	InStock        bool              `json:"inStock"`
	Images         []string          `json:"images"`
	Colors         []string          `json:"colors,omitempty"`
	Specifications map[string]string `json:"specifications"`
	Features       []string          `json:"features"`
}

// EffectivePrice is the discount price when one is set, else the base price.
func (p Product) EffectivePrice() float64 {
	if p.DiscountPrice != nil && *p.DiscountPrice > 0 {
		return *p.DiscountPrice
	}

	return p.Price
}

func (p Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}

	return p.Images[0]
}

// Clone returns a deep copy so callers can hand out snapshots safely.
func (p Product) Clone() Product {
	c := p

	if p.DiscountPrice != nil {
		d := *p.DiscountPrice
		c.DiscountPrice = &d
	}

	c.Images = append([]string(nil), p.Images...)
	c.Colors = append([]string(nil), p.Colors...)
	c.Features = append([]string(nil), p.Features...)

	if p.Specifications != nil {
		c.Specifications = make(map[string]string, len(p.Specifications))
		for k, v := range p.Specifications {
			c.Specifications[k] = v
		}
	}

	return c
}

// AddProductRequest is the body for wishlist and compare adds; the product is
// resolved from the catalog so the snapshot is taken server-side.
type AddProductRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

// SearchResult is the compact shape returned by the header quick search.
type SearchResult struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Image    string   `json:"image"`
}

// ProductList is the response shape for the wishlist and compare collections.
type ProductList struct {
	Items    []Product `json:"items"`
	Count    int       `json:"count"`
	Capacity int       `json:"capacity,omitempty"`
}
