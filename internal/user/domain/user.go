package domain

import "github.com/google/uuid"

type User struct {
	ID              uuid.UUID
	Email           string
	FirstName       string
	LastName        string
	HashedPassword  string
	ShippingAddress *string
}

// CartItem references a user and an item by id only.
type CartItem struct {
	UserID   uuid.UUID
	ItemID   uuid.UUID
	Quantity int
}
