package app

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListItems_Empty(t *testing.T) {
	res, err := NewListItemsUseCase(&fakeItemRepo{}).Execute(context.Background())
	require.NoError(t, err)
	require.NotNil(t, res.Items)
	assert.Empty(t, res.Items)
}

func TestListItems_ReturnsEveryCreatedItem(t *testing.T) {
	repo := &fakeItemRepo{}
	create := NewCreateItemUseCase(repo)
	ctx := context.Background()

	created := map[uuid.UUID]string{}
	for _, name := range []string{"Keyboard", "Mouse", "Monitor"} {
		res, err := create.Execute(ctx, CreateItemCommand{Name: name, Price: 1, Quantity: 1})
		require.NoError(t, err)
		created[res.ID] = name
	}

	res, err := NewListItemsUseCase(repo).Execute(ctx)
	require.NoError(t, err)

	listed := map[uuid.UUID]string{}
	for _, it := range res.Items {
		listed[it.ID] = it.Name
	}
	assert.Equal(t, created, listed)
}

func TestListItems_StoreError(t *testing.T) {
	_, err := NewListItemsUseCase(&fakeItemRepo{findErr: errStoreDown}).Execute(context.Background())
	require.ErrorIs(t, err, errStoreDown)
}
