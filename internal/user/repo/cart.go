package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Skotchmaster/nile/internal/models"
	"github.com/Skotchmaster/nile/internal/user/app"
	"github.com/Skotchmaster/nile/internal/user/domain"
)

type CartRepo struct {
	DB *gorm.DB
}

func NewCartRepo(db *gorm.DB) *CartRepo {
	return &CartRepo{DB: db}
}

var _ app.CartRepository = (*CartRepo)(nil)

func (r *CartRepo) FindForUser(ctx context.Context, userID uuid.UUID) ([]domain.CartItem, error) {
	var rows []models.CartItem
	if err := r.DB.WithContext(ctx).Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]domain.CartItem, 0, len(rows))
	for _, m := range rows {
		items = append(items, cartItemToEntity(m))
	}
	return items, nil
}

func (r *CartRepo) Save(ctx context.Context, item domain.CartItem) (domain.CartItem, error) {
	m := cartItemToModel(item)
	if err := r.DB.WithContext(ctx).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.CartItem{}, fmt.Errorf("%w: %s", app.ErrItemAlreadyInCart, item.ItemID)
		}
		return domain.CartItem{}, err
	}
	return cartItemToEntity(m), nil
}
