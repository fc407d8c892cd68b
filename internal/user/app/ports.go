package app

import (
	"context"

	"github.com/google/uuid"

	"github.com/Skotchmaster/nile/internal/user/domain"
)

type UserRepository interface {
	Save(ctx context.Context, user domain.User) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (domain.User, bool, error)
}

type CartRepository interface {
	FindForUser(ctx context.Context, userID uuid.UUID) ([]domain.CartItem, error)
	Save(ctx context.Context, item domain.CartItem) (domain.CartItem, error)
}

// InventoryItem is the slice of catalog data the cart needs.
type InventoryItem struct {
	ID          uuid.UUID
	Name        string
	Description *string
	Price       float64
	Quantity    int
}

// InventoryGateway gives the cart read-only access to catalog items.
type InventoryGateway interface {
	FindItemByID(ctx context.Context, id uuid.UUID) (InventoryItem, bool, error)
}

type PasswordHasher interface {
	Hash(password string) string
}
