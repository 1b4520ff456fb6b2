package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/storefront/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/stores"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addItemBody(t *testing.T, id string, price float64, qty int) []byte {
	return mustJSON(t, models.AddItemRequest{ProductID: id, Name: "Product " + id, Price: price, Image: "img.jpg", Quantity: qty})
}

func TestCartAddItem(t *testing.T) {
	t.Run("Success - Merges by id", func(t *testing.T) {
		// Arrange
		registry := newRegistry(t)
		cartHandler := handlers.NewCartHandler(registry)

		// Act
		serve("POST /api/v1/cart/items", cartHandler.AddItem(), newTestRequest(http.MethodPost, "/api/v1/cart/items", addItemBody(t, "1", 999, 1)))
		rr := serve("POST /api/v1/cart/items", cartHandler.AddItem(), newTestRequest(http.MethodPost, "/api/v1/cart/items", addItemBody(t, "1", 999, 2)))

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		view := decode[models.CartView](t, rr).Data
		require.Len(t, view.Items, 1)
		assert.Equal(t, 3, view.Items[0].Quantity)
		assert.Equal(t, 2997.0, view.TotalPrice)
		assert.Equal(t, 3, view.TotalItems)
	})

	t.Run("Success - Keeps the name as typed", func(t *testing.T) {
		// Arrange
		registry := newRegistry(t)
		cartHandler := handlers.NewCartHandler(registry)
		body := mustJSON(t, models.AddItemRequest{ProductID: "4", Name: `MacBook Pro 16" <b>&</b> more`, Price: 2499, Quantity: 1, Color: "Space Black"})

		// Act
		rr := serve("POST /api/v1/cart/items", cartHandler.AddItem(), newTestRequest(http.MethodPost, "/api/v1/cart/items", body))

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		items := registry.Session(context.Background(), testSessionID).Cart.Items()
		require.Len(t, items, 1)
		assert.Equal(t, `MacBook Pro 16" & more`, items[0].Name)
		assert.Equal(t, "Space Black", items[0].Color)
	})

	t.Run("Invalid Input - Bad JSON", func(t *testing.T) {
		cartHandler := handlers.NewCartHandler(newRegistry(t))

		rr := serve("POST /api/v1/cart/items", cartHandler.AddItem(), newTestRequest(http.MethodPost, "/api/v1/cart/items", []byte("{invalid json")))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, appErrors.ErrCodeBadRequest, decode[any](t, rr).Error.Code)
	})

	t.Run("Invalid Input - Validation Error", func(t *testing.T) {
		registry := newRegistry(t)
		cartHandler := handlers.NewCartHandler(registry)

		rr := serve("POST /api/v1/cart/items", cartHandler.AddItem(), newTestRequest(http.MethodPost, "/api/v1/cart/items", addItemBody(t, "1", -5, 0)))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, appErrors.ErrCodeValidation, decode[any](t, rr).Error.Code)
		assert.Empty(t, registry.Session(context.Background(), testSessionID).Cart.Items())
	})

	t.Run("Fail - No session", func(t *testing.T) {
		cartHandler := handlers.NewCartHandler(newRegistry(t))

		rr := httptest.NewRecorder()
		cartHandler.GetCart().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestCartUpdateQuantity(t *testing.T) {
	registry := newRegistry(t)
	cartHandler := handlers.NewCartHandler(registry)
	serve("POST /api/v1/cart/items", cartHandler.AddItem(), newTestRequest(http.MethodPost, "/api/v1/cart/items", addItemBody(t, "4", 2499, 1)))

	t.Run("Success", func(t *testing.T) {
		req := newTestRequest(http.MethodPut, "/api/v1/cart/items/4", mustJSON(t, models.UpdateQuantityRequest{Quantity: 3}))

		rr := serve("PUT /api/v1/cart/items/{id}", cartHandler.UpdateQuantity(), req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 3, decode[models.CartView](t, rr).Data.Items[0].Quantity)
	})

	t.Run("Quantity below one", func(t *testing.T) {
		req := newTestRequest(http.MethodPut, "/api/v1/cart/items/4", mustJSON(t, models.UpdateQuantityRequest{Quantity: 0}))

		rr := serve("PUT /api/v1/cart/items/{id}", cartHandler.UpdateQuantity(), req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		env := decode[any](t, rr)
		assert.Equal(t, appErrors.ErrCodeValidation, env.Error.Code)
		assert.Equal(t, stores.QuantityTooLowMessage, env.Error.Message)

		// the readable error stays on the cart until the next success
		rr = serve("GET /api/v1/cart", cartHandler.GetCart(), newTestRequest(http.MethodGet, "/api/v1/cart", nil))
		view := decode[models.CartView](t, rr).Data
		assert.Equal(t, stores.QuantityTooLowMessage, view.Error)
		assert.Equal(t, 3, view.Items[0].Quantity)
	})
}

func TestCartRemoveItem(t *testing.T) {
	registry := newRegistry(t)
	cartHandler := handlers.NewCartHandler(registry)
	serve("POST /api/v1/cart/items", cartHandler.AddItem(), newTestRequest(http.MethodPost, "/api/v1/cart/items", addItemBody(t, "4", 2499, 1)))

	rr := serve("DELETE /api/v1/cart/items/{id}", cartHandler.RemoveItem(), newTestRequest(http.MethodDelete, "/api/v1/cart/items/4", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	view := decode[models.CartView](t, rr).Data
	assert.Empty(t, view.Items)
	assert.Zero(t, view.TotalPrice)
}
