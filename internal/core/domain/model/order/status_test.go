package order_test

import (
	"testing"

	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_TransitionTable(t *testing.T) {
	allStatuses := []order.Status{
		order.Pending, order.Validated, order.Preparing,
		order.Shipped, order.Delivered, order.Cancelled,
	}

	allowed := map[order.Status][]order.Status{
		order.Pending:   {order.Validated, order.Cancelled},
		order.Validated: {order.Preparing, order.Cancelled},
		order.Preparing: {order.Shipped, order.Cancelled},
		order.Shipped:   {order.Delivered},
		order.Delivered: {},
		order.Cancelled: {},
	}

	for from, tos := range allowed {
		legal := make(map[order.Status]bool, len(tos))
		for _, to := range tos {
			legal[to] = true
		}

		for _, to := range allStatuses {
			got, err := from.TransitionTo(to)
			if legal[to] {
				require.NoError(t, err, "%s -> %s should be allowed", from, to)
				assert.Equal(t, to, got)
			} else {
				require.ErrorIs(t, err, errs.ErrInvalidTransition, "%s -> %s should be rejected", from, to)
			}
		}
	}
}

func TestStatus_TerminalStates(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Shipped.IsTerminal())
}

func TestStatus_TransitionTo_InvalidTarget(t *testing.T) {
	_, err := order.Pending.TransitionTo(order.Unknown)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = order.Pending.TransitionTo(order.Status(99))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Pending", order.Pending.String())
	assert.Equal(t, "Delivered", order.Delivered.String())
	assert.Equal(t, "Unknown", order.Status(99).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("canonical names", func(t *testing.T) {
		s, err := order.StatusFromString("Validated")
		require.NoError(t, err)
		assert.Equal(t, order.Validated, s)
	})

	t.Run("case-insensitive", func(t *testing.T) {
		s, err := order.StatusFromString("CANCELLED")
		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, s)
	})

	t.Run("unknown name rejected", func(t *testing.T) {
		_, err := order.StatusFromString("Archived")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
