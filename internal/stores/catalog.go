package stores

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/metrics"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
)

const CatalogLoadFailedMessage = "Failed to load products"

type CatalogStatus string

const (
	CatalogLoading CatalogStatus = "loading"
	CatalogReady   CatalogStatus = "ready"
	CatalogFailed  CatalogStatus = "failed"
)

type CatalogStore interface {
	Load(ctx context.Context) error
	Status() CatalogStatus
	Loading() bool
	Err() string
	Products() []models.Product
	FetchProductByID(id string) (models.Product, bool)
	FilterProducts(category models.Category, search string) []models.Product
	Listing(query models.ListingQuery) models.ListingResult
	Brands() []string
	QuickSearch(query models.QuickSearchQuery) []models.SearchResult
}

type catalogStore struct {
	source repository.ProductRepository

	once     sync.Once
	loadErr  error
	mu       sync.RWMutex
	status   CatalogStatus
	lastErr  string
	products []models.Product
}

func NewCatalogStore(source repository.ProductRepository) CatalogStore {
	return &catalogStore{source: source, status: CatalogLoading, products: []models.Product{}}
}

// Load fetches the full catalog exactly once. Later calls return the first
// outcome without touching the source; a failure is final and leaves the
// product list empty.
func (c *catalogStore) Load(ctx context.Context) error {
	c.once.Do(func() {
		logger := middleware.LoggerFromContext(ctx)
		start := time.Now()

		products, err := c.source.GetAllProducts(ctx)
		metrics.RecordCatalogLoad(time.Since(start), err)

		c.mu.Lock()
		defer c.mu.Unlock()

		if err != nil {
			logger.Error("Catalog load failed", slog.Any("error", err))
			c.status = CatalogFailed
			c.lastErr = CatalogLoadFailedMessage
			c.loadErr = errors.LoadFailureError(CatalogLoadFailedMessage).WithError(err)
			return
		}

		c.products = make([]models.Product, len(products))
		for i, p := range products {
			c.products[i] = p.Clone()
		}
		c.status = CatalogReady

		logger.Info("Catalog loaded", slog.Int("products", len(c.products)), slog.Duration("duration", time.Since(start)))
	})

	return c.loadErr
}

func (c *catalogStore) Status() CatalogStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.status
}

func (c *catalogStore) Loading() bool {
	return c.Status() == CatalogLoading
}

func (c *catalogStore) Err() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.lastErr
}

func (c *catalogStore) Products() []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return cloneAll(c.products)
}

func (c *catalogStore) FetchProductByID(id string) (models.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := indexOfProduct(c.products, id)
	if i < 0 {
		return models.Product{}, false
	}

	return c.products[i].Clone(), true
}

// FilterProducts keeps catalog order. An empty category or search is no
// filter; search is a case-insensitive substring of name or description.
func (c *catalogStore) FilterProducts(category models.Category, search string) []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	needle := strings.ToLower(search)

	out := []models.Product{}
	for _, p := range c.products {
		if category != "" && p.Category != category {
			continue
		}
		if needle != "" && !containsFold(needle, p.Name, p.Description) {
			continue
		}
		out = append(out, p.Clone())
	}

	return out
}

func (c *catalogStore) Listing(query models.ListingQuery) models.ListingResult {
	c.mu.RLock()
	products := applyListing(c.products, query)
	brands := distinctBrands(c.products)
	c.mu.RUnlock()

	return models.ListingResult{Products: products, Total: len(products), Brands: brands}
}

func (c *catalogStore) Brands() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return distinctBrands(c.products)
}

func (c *catalogStore) QuickSearch(query models.QuickSearchQuery) []models.SearchResult {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return quickSearch(c.products, query)
}

// containsFold reports whether any field contains the already lowercased needle.
func containsFold(needle string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}

	return false
}
