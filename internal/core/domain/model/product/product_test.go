package product_test

import (
	"testing"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/product"
	"commerce/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProduct(t *testing.T, stock int) *product.Product {
	t.Helper()
	p, err := product.NewProduct(
		kernel.NewUUID(), "Widget", "a widget", decimal.NewFromInt(10), stock, nil)
	require.NoError(t, err)
	return p
}

func TestNewProduct(t *testing.T) {
	t.Run("valid product", func(t *testing.T) {
		supplierID := kernel.NewUUID()
		p, err := product.NewProduct(
			kernel.NewUUID(), "Widget", "a widget", decimal.NewFromFloat(9.99), 5, &supplierID)
		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, "Widget", p.Name())
		assert.Equal(t, 5, p.Stock())
		assert.True(t, p.Supplier().IsEqual(supplierID))
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), "", "", decimal.NewFromInt(1), 0, nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("non-positive price rejected", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), "Widget", "", decimal.Zero, 0, nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("negative stock rejected", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), "Widget", "", decimal.NewFromInt(1), -1, nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var p product.Product
		require.ErrorIs(t, p.Validate(), product.ErrProductIsNotConstructed)
	})
}

func TestProduct_HasStock(t *testing.T) {
	p := newTestProduct(t, 5)

	assert.True(t, p.HasStock(5))
	assert.True(t, p.HasStock(1))
	assert.False(t, p.HasStock(6))
	assert.False(t, p.HasStock(0))
	assert.False(t, p.HasStock(-1))
}

func TestProduct_ReduceStock(t *testing.T) {
	t.Run("debits the counter", func(t *testing.T) {
		p := newTestProduct(t, 5)
		require.NoError(t, p.ReduceStock(3))
		assert.Equal(t, 2, p.Stock())
	})

	t.Run("can reach exactly zero", func(t *testing.T) {
		p := newTestProduct(t, 5)
		require.NoError(t, p.ReduceStock(5))
		assert.Equal(t, 0, p.Stock())
	})

	t.Run("insufficient stock leaves counter unchanged", func(t *testing.T) {
		p := newTestProduct(t, 2)
		err := p.ReduceStock(5)
		require.ErrorIs(t, err, errs.ErrInsufficientStock)
		assert.Equal(t, 2, p.Stock())

		var stockErr *errs.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, []string{"Widget"}, stockErr.Products)
	})

	t.Run("non-positive quantity rejected", func(t *testing.T) {
		p := newTestProduct(t, 5)
		require.ErrorIs(t, p.ReduceStock(0), errs.ErrValueIsInvalid)
		assert.Equal(t, 5, p.Stock())
	})
}

func TestProduct_AddStock(t *testing.T) {
	t.Run("credits the counter", func(t *testing.T) {
		p := newTestProduct(t, 2)
		require.NoError(t, p.AddStock(3))
		assert.Equal(t, 5, p.Stock())
	})

	t.Run("non-positive quantity rejected", func(t *testing.T) {
		p := newTestProduct(t, 2)
		require.ErrorIs(t, p.AddStock(-1), errs.ErrValueIsInvalid)
		assert.Equal(t, 2, p.Stock())
	})
}
