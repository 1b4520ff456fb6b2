package stores_test

import (
	"context"
	"sync"
	"testing"

	appErrors "github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	"github.com/aaravmahajanofficial/storefront/internal/stores"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockProductSource struct {
	mock.Mock
}

func (m *mockProductSource) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *mockProductSource) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *mockProductSource) GetProductsByCategory(ctx context.Context, category models.Category) ([]models.Product, error) {
	args := m.Called(ctx, category)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *mockProductSource) SearchProducts(ctx context.Context, query string) ([]models.Product, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]models.Product), args.Error(1)
}

func loadedCatalog(t *testing.T) stores.CatalogStore {
	t.Helper()

	catalog := stores.NewCatalogStore(repository.NewMockProductRepo(nil, 0))
	require.NoError(t, catalog.Load(t.Context()))

	return catalog
}

func ids(products []models.Product) []string {
	out := []string{}
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func floatPtr(v float64) *float64 {
	return &v
}

func TestCatalogLoad(t *testing.T) {
	t.Run("Starts loading", func(t *testing.T) {
		catalog := stores.NewCatalogStore(repository.NewMockProductRepo(nil, 0))

		assert.True(t, catalog.Loading())
		assert.Equal(t, stores.CatalogLoading, catalog.Status())
		assert.Empty(t, catalog.Products())
	})

	t.Run("Success", func(t *testing.T) {
		catalog := loadedCatalog(t)

		assert.False(t, catalog.Loading())
		assert.Equal(t, stores.CatalogReady, catalog.Status())
		assert.Empty(t, catalog.Err())
		assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, ids(catalog.Products()))
	})

	t.Run("Failure leaves an empty catalog", func(t *testing.T) {
		// Arrange
		source := new(mockProductSource)
		source.On("GetAllProducts", mock.Anything).Return(nil, assert.AnError).Once()
		catalog := stores.NewCatalogStore(source)

		// Act
		err := catalog.Load(t.Context())

		// Assert
		require.Error(t, err)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeLoadFailure, appErr.Code)
		assert.ErrorIs(t, err, assert.AnError)

		assert.Equal(t, stores.CatalogFailed, catalog.Status())
		assert.Equal(t, stores.CatalogLoadFailedMessage, catalog.Err())
		assert.Empty(t, catalog.Products())
		source.AssertExpectations(t)
	})

	t.Run("Runs once and never retries", func(t *testing.T) {
		source := new(mockProductSource)
		source.On("GetAllProducts", mock.Anything).Return(nil, assert.AnError).Once()
		catalog := stores.NewCatalogStore(source)

		var wg sync.WaitGroup
		for range 5 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = catalog.Load(context.Background())
			}()
		}
		wg.Wait()

		require.Error(t, catalog.Load(t.Context()))
		source.AssertNumberOfCalls(t, "GetAllProducts", 1)
	})

	t.Run("Cancelled load fails", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		catalog := stores.NewCatalogStore(repository.NewMockProductRepo(nil, 0))

		require.Error(t, catalog.Load(ctx))
		assert.Equal(t, stores.CatalogFailed, catalog.Status())
	})
}

func TestFetchProductByID(t *testing.T) {
	catalog := loadedCatalog(t)

	product, ok := catalog.FetchProductByID("4")
	require.True(t, ok)
	assert.Equal(t, `MacBook Pro 16"`, product.Name)

	_, ok = catalog.FetchProductByID("99")
	assert.False(t, ok)
}

func TestFilterProducts(t *testing.T) {
	catalog := loadedCatalog(t)

	tests := []struct {
		name     string
		category models.Category
		search   string
		expected []string
	}{
		{name: "No filters returns everything", expected: []string{"1", "2", "3", "4", "5", "6"}},
		{name: "Phones in catalog order", category: models.CategoryPhone, expected: []string{"1", "2", "3"}},
		{name: "Laptops", category: models.CategoryLaptop, expected: []string{"4", "5", "6"}},
		{name: "Search is case-insensitive on name", search: "GALAXY", expected: []string{"2"}},
		{name: "Search matches description", search: "gaming laptop", expected: []string{"6"}},
		{name: "Search ignores brand", search: "apple", expected: []string{"1"}},
		{name: "Category and search are ANDed", category: models.CategoryLaptop, search: "apple", expected: []string{}},
		{name: "No match", search: "toaster", expected: []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ids(catalog.FilterProducts(tc.category, tc.search)))
		})
	}
}

func TestListing(t *testing.T) {
	catalog := loadedCatalog(t)

	tests := []struct {
		name     string
		query    models.ListingQuery
		expected []string
	}{
		{
			name:     "Price range uses the discount price",
			query:    models.ListingQuery{MinPrice: floatPtr(900), MaxPrice: floatPtr(1000)},
			expected: []string{"1"},
		},
		{
			name:     "Price bounds are inclusive",
			query:    models.ListingQuery{MinPrice: floatPtr(1099), MaxPrice: floatPtr(1099)},
			expected: []string{"2"},
		},
		{
			name:     "Brands are ORed",
			query:    models.ListingQuery{Brands: []string{"Apple", "ASUS"}},
			expected: []string{"1", "4", "6"},
		},
		{
			name:     "Brands AND category",
			query:    models.ListingQuery{Brands: []string{"Apple"}, Category: models.CategoryLaptop},
			expected: []string{"4"},
		},
		{
			name:     "Search matches brand",
			query:    models.ListingQuery{Search: "apple"},
			expected: []string{"1", "4"},
		},
		{
			name:     "Price ascending",
			query:    models.ListingQuery{Sort: models.SortPriceAsc},
			expected: []string{"3", "1", "2", "6", "5", "4"},
		},
		{
			name:     "Price descending",
			query:    models.ListingQuery{Sort: models.SortPriceDesc},
			expected: []string{"4", "5", "6", "2", "1", "3"},
		},
		{
			name:     "Rating keeps catalog order on ties",
			query:    models.ListingQuery{Sort: models.SortRating},
			expected: []string{"4", "1", "2", "6", "3", "5"},
		},
		{
			name:     "Newest is catalog order",
			query:    models.ListingQuery{Sort: models.SortNewest},
			expected: []string{"1", "2", "3", "4", "5", "6"},
		},
		{
			name:     "Featured is catalog order",
			query:    models.ListingQuery{Sort: models.SortFeatured, Category: models.CategoryPhone},
			expected: []string{"1", "2", "3"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := catalog.Listing(tc.query)

			assert.Equal(t, tc.expected, ids(result.Products))
			assert.Equal(t, len(tc.expected), result.Total)
			assert.Equal(t, []string{"Apple", "Samsung", "Google", "Dell", "ASUS"}, result.Brands)
		})
	}
}

func TestListingPriceRangeExample(t *testing.T) {
	// Arrange
	discounted := seedProduct("2")
	full := seedProduct("1")
	catalog := stores.NewCatalogStore(repository.NewMockProductRepo([]models.Product{full, discounted}, 0))
	require.NoError(t, catalog.Load(t.Context()))

	// Act
	result := catalog.Listing(models.ListingQuery{MinPrice: floatPtr(900), MaxPrice: floatPtr(1000)})

	// Assert
	assert.Equal(t, []string{"1"}, ids(result.Products))
}

func TestQuickSearch(t *testing.T) {
	catalog := loadedCatalog(t)

	tests := []struct {
		name     string
		query    models.QuickSearchQuery
		expected []string
	}{
		{name: "Short term returns nothing", query: models.QuickSearchQuery{Term: "ip"}},
		{name: "Matches name", query: models.QuickSearchQuery{Term: "pixel"}, expected: []string{"3"}},
		{name: "Category all", query: models.QuickSearchQuery{Term: "pro", Category: "all"}, expected: []string{"1", "3", "4", "6"}},
		{name: "Category filter", query: models.QuickSearchQuery{Term: "pro", Category: "laptop"}, expected: []string{"4", "6"}},
		{name: "Base price bounds", query: models.QuickSearchQuery{Term: "pro", MinPrice: 1500, MaxPrice: 2000}, expected: []string{"6"}},
		{name: "Base price ignores discount", query: models.QuickSearchQuery{Term: "galaxy", MinPrice: 1150}, expected: []string{"2"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := []string{}
			for _, r := range catalog.QuickSearch(tc.query) {
				got = append(got, r.ID)
			}

			if tc.expected == nil {
				tc.expected = []string{}
			}
			assert.Equal(t, tc.expected, got)
		})
	}

	t.Run("Caps results", func(t *testing.T) {
		many := []models.Product{}
		for _, id := range []string{"a", "b", "c", "d", "e", "f", "g"} {
			many = append(many, models.Product{ID: id, Name: "Charger " + id, Category: models.CategoryPhone})
		}
		small := stores.NewCatalogStore(repository.NewMockProductRepo(many, 0))
		require.NoError(t, small.Load(t.Context()))

		results := small.QuickSearch(models.QuickSearchQuery{Term: "charger"})

		require.Len(t, results, stores.MaxQuickSearchHits)
		assert.Equal(t, "a", results[0].ID)
	})

	t.Run("Result carries the first image", func(t *testing.T) {
		results := catalog.QuickSearch(models.QuickSearchQuery{Term: "Zephyrus"})
		require.Len(t, results, 1)
		assert.Equal(t, seedProduct("6").Images[0], results[0].Image)
		assert.Equal(t, models.CategoryLaptop, results[0].Category)
	})
}
