package app

import (
	"context"
	"fmt"

	"github.com/Skotchmaster/nile/internal/item/domain"
)

// CreateItemUseCase creates an item unless one with the same name exists.
// The name check and the insert are not atomic; the unique index on
// items.name catches a lost race and the repository reports it as
// ErrItemAlreadyExists.
type CreateItemUseCase struct {
	repo ItemRepository
}

func NewCreateItemUseCase(repo ItemRepository) *CreateItemUseCase {
	return &CreateItemUseCase{repo: repo}
}

func (uc *CreateItemUseCase) Execute(ctx context.Context, cmd CreateItemCommand) (ItemResult, error) {
	if _, found, err := uc.repo.FindByName(ctx, cmd.Name); err != nil {
		return ItemResult{}, fmt.Errorf("find item by name: %w", err)
	} else if found {
		return ItemResult{}, ErrItemAlreadyExists
	}

	saved, err := uc.repo.Save(ctx, domain.Item{
		Name:        cmd.Name,
		Description: cmd.Description,
		Price:       cmd.Price,
		Quantity:    cmd.Quantity,
	})
	if err != nil {
		return ItemResult{}, fmt.Errorf("save item: %w", err)
	}

	return toResult(saved), nil
}
