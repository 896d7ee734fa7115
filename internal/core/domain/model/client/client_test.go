package client_test

import (
	"testing"

	"commerce/internal/core/domain/model/client"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("valid client", func(t *testing.T) {
		c, err := client.NewClient(kernel.NewUUID(), "Alice", "Alice@Example.com", "1 Main St")
		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, "Alice", c.Name())
		assert.Equal(t, "alice@example.com", c.Email(), "email is lower-cased")
	})

	t.Run("name required", func(t *testing.T) {
		_, err := client.NewClient(kernel.NewUUID(), "", "a@b.com", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("email required", func(t *testing.T) {
		_, err := client.NewClient(kernel.NewUUID(), "Alice", "", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("malformed email rejected", func(t *testing.T) {
		_, err := client.NewClient(kernel.NewUUID(), "Alice", "not-an-email", "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var c client.Client
		require.ErrorIs(t, c.Validate(), client.ErrClientIsNotConstructed)
	})
}
