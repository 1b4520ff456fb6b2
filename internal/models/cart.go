package models

// CartItem is keyed by product id; Price and Image are snapshots taken when
// the item was first added.
type CartItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
	Color    string  `json:"color,omitempty"`
}

func (i CartItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

// CartItemFromProduct snapshots a product at its discount-or-base price.
func CartItemFromProduct(p Product, quantity int, color string) CartItem {
	return CartItem{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.EffectivePrice(),
		Image:    p.PrimaryImage(),
		Quantity: quantity,
		Color:    color,
	}
}

type CartView struct {
	Items      []CartItem `json:"items"`
	TotalPrice float64    `json:"totalPrice"`
	TotalItems int        `json:"totalItems"`
	Error      string     `json:"error,omitempty"`
}

type AddItemRequest struct {
	ProductID string  `json:"id"       validate:"required"`
	Name      string  `json:"name"     validate:"required"`
	Price     float64 `json:"price"    validate:"gte=0"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity" validate:"required,min=1"`
	Color     string  `json:"color,omitempty"`
}

// Quantity is not range-validated here; the cart store owns the rule so the
// readable error lands on the store.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}
