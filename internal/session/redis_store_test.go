package session_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"storefront/internal/models"
	"storefront/internal/session"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTTL = 72 * time.Hour

func testState() *session.State {
	return &session.State{
		Cart: []models.CartItem{
			{ProductID: "1", Name: "Widget", Price: "10.00", Quantity: 2, Image: "/img/widget.png"},
		},
		Total:   20.00,
		OrderID: 1735000000000,
	}
}

func TestRedisStoreGet(t *testing.T) {

	t.Run("Missing session yields a fresh empty state", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		store := session.NewRedisStore(client, testTTL)

		mock.ExpectGet("session:abc").RedisNil()

		state, err := store.Get(context.Background(), "abc")

		require.NoError(t, err)
		require.NotNil(t, state)
		assert.Empty(t, state.Cart)
		assert.Zero(t, state.Total)
		assert.Zero(t, state.OrderID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Existing session round-trips", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		store := session.NewRedisStore(client, testTTL)

		want := testState()
		data, err := json.Marshal(want)
		require.NoError(t, err)

		mock.ExpectGet("session:abc").SetVal(string(data))

		state, err := store.Get(context.Background(), "abc")

		require.NoError(t, err)
		assert.Equal(t, want, state)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Redis failure surfaces", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		store := session.NewRedisStore(client, testTTL)

		mock.ExpectGet("session:abc").SetErr(errors.New("connection refused"))

		state, err := store.Get(context.Background(), "abc")

		require.Error(t, err)
		assert.Nil(t, state)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisStoreSave(t *testing.T) {

	t.Run("Success", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		store := session.NewRedisStore(client, testTTL)

		state := testState()
		data, err := json.Marshal(state)
		require.NoError(t, err)

		mock.ExpectSet("session:abc", data, testTTL).SetVal("OK")

		require.NoError(t, store.Save(context.Background(), "abc", state))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Redis failure surfaces", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		store := session.NewRedisStore(client, testTTL)

		state := testState()
		data, err := json.Marshal(state)
		require.NoError(t, err)

		mock.ExpectSet("session:abc", data, testTTL).SetErr(errors.New("connection refused"))

		require.Error(t, store.Save(context.Background(), "abc", state))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
