package stores

import (
	"context"
	"slices"
	"sync"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/storage"
)

type WishlistStore interface {
	Items() []models.Product
	AddToWishlist(ctx context.Context, product models.Product)
	RemoveFromWishlist(ctx context.Context, id string)
	IsInWishlist(id string) bool
	MoveToCart(ctx context.Context, id string)
}

type wishlistStore struct {
	mu      sync.RWMutex
	items   []models.Product
	cart    CartStore
	storage storage.Storage
}

// NewWishlistStore wires the wishlist to the cart that MoveToCart feeds.
func NewWishlistStore(ctx context.Context, s storage.Storage, cart CartStore) WishlistStore {
	w := &wishlistStore{storage: s, cart: cart, items: []models.Product{}}

	load(ctx, s, storage.WishlistKey, &w.items)

	return w
}

func (w *wishlistStore) Items() []models.Product {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return cloneAll(w.items)
}

func (w *wishlistStore) AddToWishlist(ctx context.Context, product models.Product) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if containsProduct(w.items, product.ID) {
		return
	}

	w.items = append(w.items, product.Clone())
	save(ctx, w.storage, storage.WishlistKey, w.items)
}

func (w *wishlistStore) RemoveFromWishlist(ctx context.Context, id string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.removeLocked(ctx, id)
}

func (w *wishlistStore) IsInWishlist(id string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return containsProduct(w.items, id)
}

// MoveToCart removes the entry and adds one unit to the cart at the saved
// snapshot's discount-or-base price. The wishlist lock is held across both
// steps so no reader sees the item in neither or both places.
func (w *wishlistStore) MoveToCart(ctx context.Context, id string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	i := indexOfProduct(w.items, id)
	if i < 0 {
		return
	}

	product := w.items[i]
	w.removeLocked(ctx, id)

	w.cart.AddToCart(ctx, models.CartItemFromProduct(product, 1, ""))
}

func (w *wishlistStore) removeLocked(ctx context.Context, id string) {
	i := indexOfProduct(w.items, id)
	if i < 0 {
		return
	}

	w.items = slices.Delete(w.items, i, i+1)
	save(ctx, w.storage, storage.WishlistKey, w.items)
}

func indexOfProduct(products []models.Product, id string) int {
	return slices.IndexFunc(products, func(p models.Product) bool { return p.ID == id })
}

func containsProduct(products []models.Product, id string) bool {
	return indexOfProduct(products, id) >= 0
}

func cloneAll(products []models.Product) []models.Product {
	out := make([]models.Product, len(products))
	for i, p := range products {
		out[i] = p.Clone()
	}

	return out
}
