package app

import (
	"github.com/google/uuid"

	"github.com/Skotchmaster/nile/internal/item/domain"
)

type CreateItemCommand struct {
	Name        string
	Description *string
	Price       float64
	Quantity    int
}

type ItemResult struct {
	ID          uuid.UUID
	Name        string
	Description *string
	Price       float64
	Quantity    int
}

type ListItemsResult struct {
	Items []ItemResult
}

func toResult(item domain.Item) ItemResult {
	return ItemResult{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Quantity:    item.Quantity,
	}
}
