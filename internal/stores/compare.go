package stores

import (
	"context"
	"slices"
	"sync"

	"github.com/aaravmahajanofficial/storefront/internal/metrics"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/storage"
)

// MaxCompareItems bounds the comparison set at the write boundary.
const MaxCompareItems = 4

type CompareStore interface {
	Items() []models.Product
	AddToCompare(ctx context.Context, product models.Product)
	RemoveFromCompare(ctx context.Context, id string)
	IsInCompare(id string) bool
	ClearCompare(ctx context.Context)
}

type compareStore struct {
	mu      sync.RWMutex
	items   []models.Product
	storage storage.Storage
}

func NewCompareStore(ctx context.Context, s storage.Storage) CompareStore {
	c := &compareStore{storage: s, items: []models.Product{}}

	load(ctx, s, storage.CompareKey, &c.items)

	// a hand-edited or older payload may exceed the cap
	if len(c.items) > MaxCompareItems {
		c.items = c.items[:MaxCompareItems]
	}

	return c
}

func (c *compareStore) Items() []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return cloneAll(c.items)
}

// AddToCompare silently ignores a product already present or any add once
// the set is full.
func (c *compareStore) AddToCompare(ctx context.Context, product models.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.items) >= MaxCompareItems {
		metrics.CompareRejected()
		return
	}

	if containsProduct(c.items, product.ID) {
		return
	}

	c.items = append(c.items, product.Clone())
	save(ctx, c.storage, storage.CompareKey, c.items)
}

func (c *compareStore) RemoveFromCompare(ctx context.Context, id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := indexOfProduct(c.items, id)
	if i < 0 {
		return
	}

	c.items = slices.Delete(c.items, i, i+1)
	save(ctx, c.storage, storage.CompareKey, c.items)
}

func (c *compareStore) IsInCompare(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return containsProduct(c.items, id)
}

func (c *compareStore) ClearCompare(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = []models.Product{}
	save(ctx, c.storage, storage.CompareKey, c.items)
}
