package brand_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/brand"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBrand(t *testing.T) {
	origin, err := kernel.NewLocality("Berlin", "Germany")
	require.NoError(t, err)

	t.Run("creates a validated brand", func(t *testing.T) {
		id := kernel.NewUUID()

		b, err := brand.NewBrand(id, "Acme Apparel", origin)

		require.NoError(t, err)
		require.NoError(t, b.Validate())
		assert.Equal(t, id, b.ID())
		assert.Equal(t, "Acme Apparel", b.Name())
		assert.Equal(t, origin, b.Origin())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := brand.NewBrand(kernel.NewUUID(), "", origin)

		require.Error(t, err)
	})

	t.Run("rejects unconstructed origin", func(t *testing.T) {
		_, err := brand.NewBrand(kernel.NewUUID(), "Acme Apparel", kernel.Locality{})

		require.Error(t, err)
	})

	t.Run("zero value brand is invalid", func(t *testing.T) {
		var b brand.Brand

		require.ErrorIs(t, b.Validate(), brand.ErrBrandIsNotConstructed)
	})
}

func TestNewProduct(t *testing.T) {
	t.Run("creates a validated product", func(t *testing.T) {
		id := kernel.NewUUID()
		brandID := kernel.NewUUID()

		p, err := brand.NewProduct(id, brandID, "Canvas Tote")

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, id, p.ID())
		assert.Equal(t, brandID, p.BrandID())
		assert.Equal(t, "Canvas Tote", p.Name())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := brand.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "")

		require.Error(t, err)
	})

	t.Run("zero value product is invalid", func(t *testing.T) {
		var p brand.Product

		require.ErrorIs(t, p.Validate(), brand.ErrProductIsNotConstructed)
	})
}
