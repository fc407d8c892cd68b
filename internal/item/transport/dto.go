package transport

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Skotchmaster/nile/internal/item/app"
)

var ErrValidation = errors.New("validation") // 422

type CreateItemRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Quantity    *int     `json:"quantity"`
}

// Command checks the body and converts it into the use-case input.
func (r CreateItemRequest) Command() (app.CreateItemCommand, error) {
	if r.Name == nil || strings.TrimSpace(*r.Name) == "" {
		return app.CreateItemCommand{}, fmt.Errorf("%w: name required", ErrValidation)
	}
	if r.Price == nil {
		return app.CreateItemCommand{}, fmt.Errorf("%w: price required", ErrValidation)
	}
	if *r.Price < 0 {
		return app.CreateItemCommand{}, fmt.Errorf("%w: price must be >= 0", ErrValidation)
	}
	if r.Quantity == nil {
		return app.CreateItemCommand{}, fmt.Errorf("%w: quantity required", ErrValidation)
	}
	if *r.Quantity < 0 {
		return app.CreateItemCommand{}, fmt.Errorf("%w: quantity must be >= 0", ErrValidation)
	}

	return app.CreateItemCommand{
		Name:        *r.Name,
		Description: r.Description,
		Price:       *r.Price,
		Quantity:    *r.Quantity,
	}, nil
}

type ItemResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
}

type AllItemsResponse struct {
	Items []ItemResponse `json:"items"`
}

type SearchItemsResponse struct {
	Total int64          `json:"total"`
	Items []ItemResponse `json:"items"`
}

func NewItemResponse(r app.ItemResult) ItemResponse {
	return ItemResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Quantity:    r.Quantity,
	}
}

func NewAllItemsResponse(r app.ListItemsResult) AllItemsResponse {
	items := make([]ItemResponse, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, NewItemResponse(it))
	}
	return AllItemsResponse{Items: items}
}
