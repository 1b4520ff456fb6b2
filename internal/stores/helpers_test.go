package stores_test

import (
	"context"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	"github.com/stretchr/testify/mock"
)

// mockStorage lets tests fail persistence on demand.
type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) Get(ctx context.Context, key string, value any) (bool, error) {
	args := m.Called(ctx, key, value)
	return args.Bool(0), args.Error(1)
}

func (m *mockStorage) Set(ctx context.Context, key string, value any) error {
	return m.Called(ctx, key, value).Error(0)
}

func (m *mockStorage) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *mockStorage) Close() error {
	return nil
}

func seedProduct(id string) models.Product {
	for _, p := range repository.SeedProducts() {
		if p.ID == id {
			return p
		}
	}

	panic("no seed product " + id)
}

func seedCartItem() models.CartItem {
	return models.CartItemFromProduct(seedProduct("4"), 2, "Space Black")
}
