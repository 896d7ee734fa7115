package order_test

import (
	"testing"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLine(t *testing.T, quantity int, unitPrice string) *order.Line {
	t.Helper()
	l, err := order.NewLine(
		kernel.NewUUID(), kernel.NewUUID(), quantity, decimal.RequireFromString(unitPrice))
	require.NoError(t, err)
	return l
}

func TestNewLine(t *testing.T) {
	t.Run("valid line", func(t *testing.T) {
		l := newTestLine(t, 3, "10.00")
		assert.Equal(t, 3, l.Quantity())
		assert.True(t, l.Subtotal().Equal(decimal.RequireFromString("30.00")))
	})

	t.Run("zero quantity rejected", func(t *testing.T) {
		_, err := order.NewLine(kernel.NewUUID(), kernel.NewUUID(), 0, decimal.NewFromInt(10))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("non-positive unit price rejected", func(t *testing.T) {
		_, err := order.NewLine(kernel.NewUUID(), kernel.NewUUID(), 1, decimal.Zero)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("missing product rejected", func(t *testing.T) {
		_, err := order.NewLine(kernel.NewUUID(), kernel.UUID{}, 1, decimal.NewFromInt(10))
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("total is derived from lines", func(t *testing.T) {
		lines := []*order.Line{
			newTestLine(t, 3, "10.00"),
			newTestLine(t, 2, "4.50"),
		}

		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), time.Time{}, lines)
		require.NoError(t, err)
		require.NoError(t, o.Validate())

		assert.True(t, o.Total().Equal(decimal.RequireFromString("39.00")), "got %s", o.Total())
		assert.Equal(t, order.Pending, o.Status())
		assert.False(t, o.CreatedAt().IsZero())
	})

	t.Run("lines are attached to the order", func(t *testing.T) {
		l := newTestLine(t, 1, "5.00")
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), time.Now(), []*order.Line{l})
		require.NoError(t, err)
		assert.True(t, l.OrderID().IsEqual(o.ID()))
	})

	t.Run("zero lines rejected", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), time.Now(), nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("missing client rejected", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.UUID{}, time.Now(),
			[]*order.Line{newTestLine(t, 1, "5.00")})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("explicit creation timestamp is kept", func(t *testing.T) {
		createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), createdAt,
			[]*order.Line{newTestLine(t, 1, "5.00")})
		require.NoError(t, err)
		assert.Equal(t, createdAt, o.CreatedAt())
	})
}

func TestOrder_UpdateStatus(t *testing.T) {
	newOrder := func(t *testing.T) *order.Order {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), time.Now(),
			[]*order.Line{newTestLine(t, 1, "5.00")})
		require.NoError(t, err)
		return o
	}

	t.Run("full lifecycle walk", func(t *testing.T) {
		o := newOrder(t)
		for _, next := range []order.Status{
			order.Validated, order.Preparing, order.Shipped, order.Delivered,
		} {
			require.NoError(t, o.UpdateStatus(next))
			assert.Equal(t, next, o.Status())
		}
	})

	t.Run("skipping a state is rejected", func(t *testing.T) {
		o := newOrder(t)
		err := o.UpdateStatus(order.Preparing)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Pending, o.Status(), "status unchanged on rejection")
	})

	t.Run("terminal state has no outgoing transitions", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.UpdateStatus(order.Cancelled))
		require.ErrorIs(t, o.UpdateStatus(order.Validated), errs.ErrInvalidTransition)
	})
}

func TestOrder_ForceDeliver(t *testing.T) {
	t.Run("bypasses the transition table", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), time.Now(),
			[]*order.Line{newTestLine(t, 1, "5.00")})
		require.NoError(t, err)

		prev := o.ForceDeliver()
		assert.Equal(t, order.Pending, prev)
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("reports the bypassed status even from Cancelled", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), time.Now(),
			[]*order.Line{newTestLine(t, 1, "5.00")})
		require.NoError(t, err)
		require.NoError(t, o.UpdateStatus(order.Cancelled))

		prev := o.ForceDeliver()
		assert.Equal(t, order.Cancelled, prev)
		assert.Equal(t, order.Delivered, o.Status())
	})
}

func TestRestoreOrder(t *testing.T) {
	id := kernel.NewUUID()
	clientID := kernel.NewUUID()
	line, err := order.RestoreLine(
		kernel.NewUUID(), id, kernel.NewUUID(), 2, decimal.NewFromInt(7))
	require.NoError(t, err)

	o, err := order.RestoreOrder(id, clientID, time.Now(), order.Shipped,
		decimal.NewFromInt(14), []*order.Line{line})
	require.NoError(t, err)
	assert.Equal(t, order.Shipped, o.Status())
	assert.True(t, o.Total().Equal(decimal.NewFromInt(14)))

	t.Run("invalid status rejected", func(t *testing.T) {
		_, err := order.RestoreOrder(id, clientID, time.Now(), order.Status(42),
			decimal.NewFromInt(14), []*order.Line{line})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
