//go:build unit

package store_test

import (
	"testing"

	"table-reserve/internal/domain/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore(t *testing.T) {
	addr, err := store.NewAddress("Seoul", "Gangnam", "Teheran-ro 1", "06000")
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		s, err := store.NewStore("참새정", addr, "a quiet place", uuid.New(), "owner@example.com")
		require.NoError(t, err)

		assert.Equal(t, "참새정", s.Name())
		assert.Equal(t, "Gangnam", s.Address().City())
		assert.Equal(t, "owner@example.com", s.OwnerEmail())
	})

	t.Run("name is trimmed", func(t *testing.T) {
		s, err := store.NewStore("  참새정  ", addr, "", uuid.New(), "owner@example.com")
		require.NoError(t, err)
		assert.Equal(t, "참새정", s.Name())
	})

	t.Run("blank name rejected", func(t *testing.T) {
		_, err := store.NewStore("   ", addr, "", uuid.New(), "owner@example.com")
		require.ErrorIs(t, err, store.ErrEmptyStoreName)
	})
}

func TestNewAddress(t *testing.T) {
	t.Run("city and street are required", func(t *testing.T) {
		_, err := store.NewAddress("Seoul", "", "Teheran-ro 1", "06000")
		require.ErrorIs(t, err, store.ErrInvalidAddress)

		_, err = store.NewAddress("Seoul", "Gangnam", "", "06000")
		require.ErrorIs(t, err, store.ErrInvalidAddress)
	})

	t.Run("legion and zipcode are optional", func(t *testing.T) {
		_, err := store.NewAddress("", "Gangnam", "Teheran-ro 1", "")
		require.NoError(t, err)
	})
}
