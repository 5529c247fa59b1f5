package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lazaroperez207/agro-en-casa/internal/store"
)

func TestCartAddIncrements(t *testing.T) {
	svc := NewCartService(store.NewStore())

	view, err := svc.Add(3, 1)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 1, view.Items[0].Quantity)

	view, err = svc.Add(3, 1)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.Items[0].Quantity)
	assert.Equal(t, 2, view.ItemCount)
	assert.Equal(t, 900.0, view.Subtotal)
}

func TestCartAddUnknownProduct(t *testing.T) {
	svc := NewCartService(store.NewStore())

	_, err := svc.Add(3, 999)
	assert.Error(t, err)
}

func TestCartUpdateQuantity(t *testing.T) {
	svc := NewCartService(store.NewStore())

	_, err := svc.Add(3, 1)
	require.NoError(t, err)

	view := svc.UpdateQuantity(3, 1, 5)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 5, view.Items[0].Quantity)

	// zero or negative removes the line
	view = svc.UpdateQuantity(3, 1, 0)
	assert.Empty(t, view.Items)
}

func TestCartRemove(t *testing.T) {
	svc := NewCartService(store.NewStore())

	_, err := svc.Add(3, 1)
	require.NoError(t, err)
	_, err = svc.Add(3, 4)
	require.NoError(t, err)

	view := svc.Remove(3, 1)
	require.Len(t, view.Items, 1)
	assert.Equal(t, int64(4), view.Items[0].ID)
}

func TestCartsAreIndependent(t *testing.T) {
	svc := NewCartService(store.NewStore())

	_, err := svc.Add(3, 1)
	require.NoError(t, err)

	assert.Empty(t, svc.Get(4).Items)
	assert.Len(t, svc.Get(3).Items, 1)
}
