package guard_test

import (
	"errors"
	"testing"

	"commerce/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNotConstructed = errors.New("Thing must be created via NewThing")

type thing struct {
	guard guard.ConstructorGuard
}

func newThing() thing {
	return thing{guard: guard.NewConstructorGuard()}
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed object passes validation", func(t *testing.T) {
		v := newThing()
		require.NoError(t, v.guard.Validate(errNotConstructed))
	})

	t.Run("zero value fails with supplied error", func(t *testing.T) {
		var v thing
		err := v.guard.Validate(errNotConstructed)
		require.ErrorIs(t, err, errNotConstructed)
	})

	t.Run("zero value fails with default error when none supplied", func(t *testing.T) {
		var g guard.ConstructorGuard
		err := g.Validate(nil)
		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
	})

	t.Run("constructed guard ignores supplied error", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		assert.NoError(t, g.Validate(errNotConstructed))
	})
}
