package app

import "github.com/google/uuid"

type CreateUserCommand struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ShippingAddress *string
}

// CreateUserResult deliberately has no password or hash field.
type CreateUserResult struct {
	ID              uuid.UUID
	FirstName       string
	LastName        string
	Email           string
	ShippingAddress *string
}

type AddToCartCommand struct {
	UserID   uuid.UUID
	ItemID   uuid.UUID
	Quantity int
}

type CartItemResult struct {
	ItemID   uuid.UUID
	Quantity int
}

type ListCartItemsResult struct {
	Items []CartItemResult
}
