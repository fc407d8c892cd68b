package app

import (
	"context"

	"github.com/google/uuid"

	"github.com/Skotchmaster/nile/internal/item/domain"
)

type ItemRepository interface {
	Save(ctx context.Context, item domain.Item) (domain.Item, error)
	FindAll(ctx context.Context) ([]domain.Item, error)
	FindByName(ctx context.Context, name string) (domain.Item, bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (domain.Item, bool, error)
}
