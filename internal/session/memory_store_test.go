package session_test

import (
	"context"
	"testing"

	"storefront/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing session yields a fresh empty state", func(t *testing.T) {
		store := session.NewMemoryStore()

		state, err := store.Get(ctx, "nope")

		require.NoError(t, err)
		assert.Empty(t, state.Cart)
		assert.Zero(t, state.Total)
	})

	t.Run("Save then Get round-trips", func(t *testing.T) {
		store := session.NewMemoryStore()
		want := testState()

		require.NoError(t, store.Save(ctx, "abc", want))

		got, err := store.Get(ctx, "abc")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("Callers never alias stored state", func(t *testing.T) {
		store := session.NewMemoryStore()
		state := testState()
		require.NoError(t, store.Save(ctx, "abc", state))

		// Mutating what we saved or loaded must not leak into the store.
		state.Cart[0].Quantity = 99

		loaded, err := store.Get(ctx, "abc")
		require.NoError(t, err)
		assert.Equal(t, 2, loaded.Cart[0].Quantity)

		loaded.Cart[0].Quantity = 42

		again, err := store.Get(ctx, "abc")
		require.NoError(t, err)
		assert.Equal(t, 2, again.Cart[0].Quantity)
	})

	t.Run("Sessions are isolated by id", func(t *testing.T) {
		store := session.NewMemoryStore()
		require.NoError(t, store.Save(ctx, "a", testState()))

		other, err := store.Get(ctx, "b")
		require.NoError(t, err)
		assert.Empty(t, other.Cart)
	})
}
