package stores_test

import (
	"testing"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/storage"
	"github.com/aaravmahajanofficial/storefront/internal/stores"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	t.Run("Same id returns the same session", func(t *testing.T) {
		ctx := t.Context()
		registry := stores.NewRegistry(storage.NewMemoryStorage(), demoAuthenticator(t))

		a := registry.Session(ctx, "a")
		again := registry.Session(ctx, "a")

		assert.Same(t, a, again)
		assert.Equal(t, 1, registry.Len())
	})

	t.Run("Sessions are isolated", func(t *testing.T) {
		// Arrange
		ctx := t.Context()
		registry := stores.NewRegistry(storage.NewMemoryStorage(), demoAuthenticator(t))
		a := registry.Session(ctx, "a")
		b := registry.Session(ctx, "b")

		// Act
		a.Compare.AddToCompare(ctx, seedProduct("1"))
		require.NoError(t, a.Auth.Login(ctx, "demo@example.com", "password"))

		// Assert
		assert.Empty(t, b.Compare.Items())
		assert.False(t, b.Auth.IsAuthenticated())
	})

	t.Run("Wishlist moves into the session's own cart", func(t *testing.T) {
		ctx := t.Context()
		registry := stores.NewRegistry(storage.NewMemoryStorage(), demoAuthenticator(t))
		sess := registry.Session(ctx, "a")

		sess.Wishlist.AddToWishlist(ctx, seedProduct("3"))
		sess.Wishlist.MoveToCart(ctx, "3")

		require.Len(t, sess.Cart.Items(), 1)
		assert.Equal(t, 899.0, sess.Cart.Items()[0].Price)
	})

	t.Run("Evicted sessions are restored from storage", func(t *testing.T) {
		// Arrange
		ctx := t.Context()
		registry := stores.NewRegistry(storage.NewMemoryStorage(), demoAuthenticator(t))
		sess := registry.Session(ctx, "a")
		sess.Cart.AddToCart(ctx, seedCartItem())

		// Act
		evicted := registry.Evict(-time.Second)
		restored := registry.Session(ctx, "a")

		// Assert
		assert.Equal(t, 1, evicted)
		assert.NotSame(t, sess, restored)
		assert.Equal(t, sess.Cart.Items(), restored.Cart.Items())
	})

	t.Run("Active sessions survive eviction", func(t *testing.T) {
		ctx := t.Context()
		registry := stores.NewRegistry(storage.NewMemoryStorage(), demoAuthenticator(t))
		registry.Session(ctx, "a")

		assert.Zero(t, registry.Evict(time.Hour))
		assert.Equal(t, 1, registry.Len())
	})
}
