package app

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCartItems_UnknownUserIsEmpty(t *testing.T) {
	res, err := NewListCartItemsUseCase(&fakeCartRepo{}).Execute(context.Background(), uuid.New())
	require.NoError(t, err)
	require.NotNil(t, res.Items)
	assert.Empty(t, res.Items)
}

func TestListCartItems_AfterNAdds(t *testing.T) {
	f := newCartFixture(t, 5)
	ctx := context.Background()

	want := []CartItemResult{{ItemID: f.itemID, Quantity: 1}}
	for i := 2; i <= 4; i++ {
		id := uuid.New()
		f.inventory.items[id] = InventoryItem{ID: id, Quantity: 10}
		_, err := f.uc.Execute(ctx, AddToCartCommand{UserID: f.userID, ItemID: id, Quantity: i})
		require.NoError(t, err)
		want = append(want, CartItemResult{ItemID: id, Quantity: i})
	}
	_, err := f.uc.Execute(ctx, AddToCartCommand{UserID: f.userID, ItemID: f.itemID, Quantity: 1})
	require.NoError(t, err)

	res, err := NewListCartItemsUseCase(f.carts).Execute(ctx, f.userID)
	require.NoError(t, err)
	assert.ElementsMatch(t, want, res.Items)
}

func TestListCartItems_OnlyOwnEntries(t *testing.T) {
	f := newCartFixture(t, 5)
	ctx := context.Background()

	_, err := f.uc.Execute(ctx, AddToCartCommand{UserID: f.userID, ItemID: f.itemID, Quantity: 1})
	require.NoError(t, err)

	res, err := NewListCartItemsUseCase(f.carts).Execute(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, res.Items)
}

func TestListCartItems_StoreError(t *testing.T) {
	_, err := NewListCartItemsUseCase(&fakeCartRepo{err: errStoreDown}).Execute(context.Background(), uuid.New())
	require.ErrorIs(t, err, errStoreDown)
}
