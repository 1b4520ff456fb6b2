package stores

import (
	"context"
	"slices"
	"sync"

	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/metrics"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/storage"
)

const QuantityTooLowMessage = "Quantity must be at least 1"

type CartStore interface {
	Items() []models.CartItem
	AddToCart(ctx context.Context, item models.CartItem)
	RemoveFromCart(ctx context.Context, id string)
	UpdateQuantity(ctx context.Context, id string, quantity int) error
	TotalPrice() float64
	TotalItems() int
	Err() string
}

type cartStore struct {
	mu      sync.RWMutex
	items   []models.CartItem
	lastErr string
	storage storage.Storage
}

// NewCartStore restores the persisted cart, if any, before returning.
func NewCartStore(ctx context.Context, s storage.Storage) CartStore {
	c := &cartStore{storage: s, items: []models.CartItem{}}

	load(ctx, s, storage.CartKey, &c.items)

	return c
}

func (c *cartStore) Items() []models.CartItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Clone(c.items)
}

// AddToCart merges by id: an existing line gets the new quantity added and
// keeps its original price and image snapshot. A non-empty colour replaces the
// stored one. Quantities below 1 count as 1.
func (c *cartStore) AddToCart(ctx context.Context, item models.CartItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexOf(item.ID); i >= 0 {
		c.items[i].Quantity += item.Quantity
		if item.Color != "" {
			c.items[i].Color = item.Color
		}
	} else {
		c.items = append(c.items, item)
	}

	c.lastErr = ""
	metrics.CartItemsAdded(item.Quantity)
	save(ctx, c.storage, storage.CartKey, c.items)
}

func (c *cartStore) RemoveFromCart(ctx context.Context, id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lastErr = ""

	i := c.indexOf(id)
	if i < 0 {
		return
	}

	c.items = slices.Delete(c.items, i, i+1)
	save(ctx, c.storage, storage.CartKey, c.items)
}

// UpdateQuantity sets the quantity outright. Values below 1 are rejected and
// leave the line untouched; an unknown id is a no-op.
func (c *cartStore) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity < 1 {
		c.lastErr = QuantityTooLowMessage
		return errors.ValidationError(QuantityTooLowMessage)
	}

	c.lastErr = ""

	i := c.indexOf(id)
	if i < 0 {
		return nil
	}

	c.items[i].Quantity = quantity
	save(ctx, c.storage, storage.CartKey, c.items)

	return nil
}

// TotalPrice is recomputed from the lines on every call.
func (c *cartStore) TotalPrice() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var total float64
	for _, item := range c.items {
		total += item.Subtotal()
	}

	return total
}

func (c *cartStore) TotalItems() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := 0
	for _, item := range c.items {
		n += item.Quantity
	}

	return n
}

func (c *cartStore) Err() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.lastErr
}

func (c *cartStore) indexOf(id string) int {
	return slices.IndexFunc(c.items, func(item models.CartItem) bool { return item.ID == id })
}
