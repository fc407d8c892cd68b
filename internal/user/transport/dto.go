package transport

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Skotchmaster/nile/internal/user/app"
)

var ErrValidation = errors.New("validation") // 422

type CreateUserRequest struct {
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	Email           string  `json:"email"`
	Password        string  `json:"password"`
	ShippingAddress *string `json:"shipping_address"`
}

func (r CreateUserRequest) Command() (app.CreateUserCommand, error) {
	required := []struct{ field, value string }{
		{"first_name", r.FirstName},
		{"last_name", r.LastName},
		{"email", r.Email},
		{"password", r.Password},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return app.CreateUserCommand{}, fmt.Errorf("%w: %s required", ErrValidation, f.field)
		}
	}

	return app.CreateUserCommand{
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		Password:        r.Password,
		ShippingAddress: r.ShippingAddress,
	}, nil
}

type CreateUserResponse struct {
	ID              uuid.UUID `json:"id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Email           string    `json:"email"`
	ShippingAddress *string   `json:"shipping_address"`
}

func NewCreateUserResponse(r app.CreateUserResult) CreateUserResponse {
	return CreateUserResponse{
		ID:              r.ID,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		ShippingAddress: r.ShippingAddress,
	}
}

type AddToCartRequest struct {
	ItemID   uuid.UUID `json:"item_id"`
	Quantity *int      `json:"quantity"`
}

func (r AddToCartRequest) Command(userID uuid.UUID) (app.AddToCartCommand, error) {
	if r.ItemID == uuid.Nil {
		return app.AddToCartCommand{}, fmt.Errorf("%w: item_id required", ErrValidation)
	}
	if r.Quantity == nil {
		return app.AddToCartCommand{}, fmt.Errorf("%w: quantity required", ErrValidation)
	}
	if *r.Quantity < 1 {
		return app.AddToCartCommand{}, fmt.Errorf("%w: quantity must be > 0", ErrValidation)
	}

	return app.AddToCartCommand{
		UserID:   userID,
		ItemID:   r.ItemID,
		Quantity: *r.Quantity,
	}, nil
}

type CartItemResponse struct {
	ItemID   uuid.UUID `json:"item_id"`
	Quantity int       `json:"quantity"`
}

type CartResponse struct {
	Items []CartItemResponse `json:"items"`
}

func NewCartResponse(r app.ListCartItemsResult) CartResponse {
	items := make([]CartItemResponse, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, CartItemResponse{ItemID: it.ItemID, Quantity: it.Quantity})
	}
	return CartResponse{Items: items}
}
