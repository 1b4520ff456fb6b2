package stores_test

import (
	"strconv"
	"testing"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/storage"
	"github.com/aaravmahajanofficial/storefront/internal/stores"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddToCompare(t *testing.T) {
	t.Run("Never exceeds the cap", func(t *testing.T) {
		// Arrange
		ctx := t.Context()
		compare := stores.NewCompareStore(ctx, storage.NewMemoryStorage())

		// Act
		for i := 1; i <= 10; i++ {
			compare.AddToCompare(ctx, models.Product{ID: strconv.Itoa(i), Name: "P" + strconv.Itoa(i)})
			assert.LessOrEqual(t, len(compare.Items()), stores.MaxCompareItems)
		}

		// Assert
		items := compare.Items()
		require.Len(t, items, stores.MaxCompareItems)
		assert.Equal(t, "1", items[0].ID)
		assert.Equal(t, "4", items[3].ID)
		assert.False(t, compare.IsInCompare("5"))
	})

	t.Run("Ignores duplicates", func(t *testing.T) {
		ctx := t.Context()
		compare := stores.NewCompareStore(ctx, storage.NewMemoryStorage())

		compare.AddToCompare(ctx, seedProduct("4"))
		compare.AddToCompare(ctx, seedProduct("4"))

		assert.Len(t, compare.Items(), 1)
	})

	t.Run("Frees a slot after removal", func(t *testing.T) {
		ctx := t.Context()
		compare := stores.NewCompareStore(ctx, storage.NewMemoryStorage())
		for _, id := range []string{"1", "2", "3", "4"} {
			compare.AddToCompare(ctx, seedProduct(id))
		}

		compare.RemoveFromCompare(ctx, "2")
		compare.AddToCompare(ctx, seedProduct("5"))

		assert.True(t, compare.IsInCompare("5"))
		assert.False(t, compare.IsInCompare("2"))
		assert.Len(t, compare.Items(), stores.MaxCompareItems)
	})
}

func TestClearCompare(t *testing.T) {
	ctx := t.Context()
	s := storage.NewMemoryStorage()
	compare := stores.NewCompareStore(ctx, s)
	compare.AddToCompare(ctx, seedProduct("1"))
	compare.AddToCompare(ctx, seedProduct("2"))

	compare.ClearCompare(ctx)

	assert.Empty(t, compare.Items())
	assert.Empty(t, stores.NewCompareStore(ctx, s).Items())
}

func TestComparePersistence(t *testing.T) {
	t.Run("Restores on construction", func(t *testing.T) {
		ctx := t.Context()
		s := storage.NewMemoryStorage()

		first := stores.NewCompareStore(ctx, s)
		first.AddToCompare(ctx, seedProduct("3"))

		second := stores.NewCompareStore(ctx, s)

		assert.True(t, second.IsInCompare("3"))
	})

	t.Run("Oversized payload is truncated", func(t *testing.T) {
		ctx := t.Context()
		s := storage.NewMemoryStorage()
		require.NoError(t, s.Set(ctx, storage.CompareKey, repositorySeed()))

		compare := stores.NewCompareStore(ctx, s)

		assert.Len(t, compare.Items(), stores.MaxCompareItems)
	})
}

func repositorySeed() []models.Product {
	out := []models.Product{}
	for _, id := range []string{"1", "2", "3", "4", "5", "6"} {
		out = append(out, seedProduct(id))
	}

	return out
}
