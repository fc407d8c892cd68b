package events

import (
	"github.com/google/uuid"
)

const (
	TopicUserEvents = "user_events"
	TopicItemEvents = "item_events"
	TopicCartEvents = "cart_events"
)

const (
	TypeUserCreated   = "user_created"
	TypeItemCreated   = "item_created"
	TypeCartItemAdded = "cart_item_added"
)

// UserCreated never carries the password or its hash.
type UserCreated struct {
	Type   string    `json:"type"`
	UserID uuid.UUID `json:"userID"`
	Email  string    `json:"email"`
}

type ItemCreated struct {
	Type     string    `json:"type"`
	ItemID   uuid.UUID `json:"itemID"`
	Name     string    `json:"name"`
	Price    float64   `json:"price"`
	Quantity int       `json:"quantity"`
}

type CartItemAdded struct {
	Type     string    `json:"type"`
	UserID   uuid.UUID `json:"userID"`
	ItemID   uuid.UUID `json:"itemID"`
	Quantity int       `json:"quantity"`
}

func NewUserCreated(userID uuid.UUID, email string) UserCreated {
	return UserCreated{Type: TypeUserCreated, UserID: userID, Email: email}
}

func NewItemCreated(itemID uuid.UUID, name string, price float64, quantity int) ItemCreated {
	return ItemCreated{Type: TypeItemCreated, ItemID: itemID, Name: name, Price: price, Quantity: quantity}
}

func NewCartItemAdded(userID, itemID uuid.UUID, quantity int) CartItemAdded {
	return CartItemAdded{Type: TypeCartItemAdded, UserID: userID, ItemID: itemID, Quantity: quantity}
}
