package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Item struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"        json:"id"`
	Name        string    `gorm:"uniqueIndex;not null"        json:"name"`
	Description *string   `json:"description"`
	Price       float64   `gorm:"not null;check:price>=0"     json:"price"`
	Quantity    int       `gorm:"not null;check:quantity>=0"  json:"quantity"`
}

func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

func (Item) TableName() string {
	return "items"
}

type User struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"  json:"id"`
	Email           string    `gorm:"uniqueIndex;not null"  json:"email"`
	FirstName       string    `gorm:"not null"              json:"first_name"`
	LastName        string    `gorm:"not null"              json:"last_name"`
	HashedPassword  string    `gorm:"not null"              json:"-"`
	ShippingAddress *string   `json:"shipping_address"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (User) TableName() string {
	return "users"
}

// CartItem rows are keyed by (user_id, item_id); the key doubles as the
// uniqueness backstop for the application-level "already in cart" check.
type CartItem struct {
	UserID   uuid.UUID `gorm:"type:uuid;primaryKey"       json:"user_id"`
	ItemID   uuid.UUID `gorm:"type:uuid;primaryKey;index" json:"item_id"`
	Quantity int       `gorm:"not null;check:quantity>0"  json:"quantity"`
}

func (CartItem) TableName() string {
	return "cart_items"
}

// All lists every model in migration order.
func All() []any {
	return []any{&Item{}, &User{}, &CartItem{}}
}
