package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// ListCartItemsUseCase does not check that the user exists; an unknown user
// simply has an empty cart.
type ListCartItemsUseCase struct {
	carts CartRepository
}

func NewListCartItemsUseCase(carts CartRepository) *ListCartItemsUseCase {
	return &ListCartItemsUseCase{carts: carts}
}

func (uc *ListCartItemsUseCase) Execute(ctx context.Context, userID uuid.UUID) (ListCartItemsResult, error) {
	entries, err := uc.carts.FindForUser(ctx, userID)
	if err != nil {
		return ListCartItemsResult{}, fmt.Errorf("find cart items: %w", err)
	}

	res := ListCartItemsResult{Items: make([]CartItemResult, 0, len(entries))}
	for _, e := range entries {
		res.Items = append(res.Items, CartItemResult{ItemID: e.ItemID, Quantity: e.Quantity})
	}
	return res, nil
}
