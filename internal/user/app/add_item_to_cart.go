package app

import (
	"context"
	"fmt"

	"github.com/Skotchmaster/nile/internal/user/domain"
)

// AddItemToCartUseCase puts an item into a user's cart after checking, in
// order: the user exists, the item exists, stock covers the quantity, and
// the item is not already in the cart. The first failing check decides the
// error. Stock is only read; nothing is reserved or decremented.
// Callers must pass a quantity of at least 1.
type AddItemToCartUseCase struct {
	users     UserRepository
	carts     CartRepository
	inventory InventoryGateway
}

func NewAddItemToCartUseCase(users UserRepository, carts CartRepository, inventory InventoryGateway) *AddItemToCartUseCase {
	return &AddItemToCartUseCase{users: users, carts: carts, inventory: inventory}
}

func (uc *AddItemToCartUseCase) Execute(ctx context.Context, cmd AddToCartCommand) (ListCartItemsResult, error) {
	if _, found, err := uc.users.FindByID(ctx, cmd.UserID); err != nil {
		return ListCartItemsResult{}, fmt.Errorf("find user: %w", err)
	} else if !found {
		return ListCartItemsResult{}, ErrUserNotFound
	}

	item, found, err := uc.inventory.FindItemByID(ctx, cmd.ItemID)
	if err != nil {
		return ListCartItemsResult{}, fmt.Errorf("find item: %w", err)
	}
	if !found {
		return ListCartItemsResult{}, ErrItemNotFound
	}
	if item.Quantity < cmd.Quantity {
		return ListCartItemsResult{}, ErrNotEnoughStock
	}

	existing, err := uc.carts.FindForUser(ctx, cmd.UserID)
	if err != nil {
		return ListCartItemsResult{}, fmt.Errorf("find cart items: %w", err)
	}
	for _, e := range existing {
		if e.ItemID == cmd.ItemID {
			return ListCartItemsResult{}, ErrItemAlreadyInCart
		}
	}

	if _, err := uc.carts.Save(ctx, domain.CartItem{
		UserID:   cmd.UserID,
		ItemID:   cmd.ItemID,
		Quantity: cmd.Quantity,
	}); err != nil {
		return ListCartItemsResult{}, fmt.Errorf("save cart item: %w", err)
	}

	return NewListCartItemsUseCase(uc.carts).Execute(ctx, cmd.UserID)
}
