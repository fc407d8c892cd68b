package app

import (
	"context"
	"fmt"
)

type ListItemsUseCase struct {
	repo ItemRepository
}

func NewListItemsUseCase(repo ItemRepository) *ListItemsUseCase {
	return &ListItemsUseCase{repo: repo}
}

func (uc *ListItemsUseCase) Execute(ctx context.Context) (ListItemsResult, error) {
	items, err := uc.repo.FindAll(ctx)
	if err != nil {
		return ListItemsResult{}, fmt.Errorf("find all items: %w", err)
	}

	res := ListItemsResult{Items: make([]ItemResult, 0, len(items))}
	for _, it := range items {
		res.Items = append(res.Items, toResult(it))
	}
	return res, nil
}
