package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Skotchmaster/nile/internal/item/app"
	"github.com/Skotchmaster/nile/internal/item/domain"
	"github.com/Skotchmaster/nile/internal/models"
)

// GormRepo implements app.ItemRepository on top of a (request-scoped) gorm handle.
type GormRepo struct {
	DB *gorm.DB
}

func NewGormRepo(db *gorm.DB) *GormRepo {
	return &GormRepo{DB: db}
}

var _ app.ItemRepository = (*GormRepo)(nil)

func (r *GormRepo) Save(ctx context.Context, item domain.Item) (domain.Item, error) {
	m := toModel(item)
	if err := r.DB.WithContext(ctx).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.Item{}, fmt.Errorf("%w: %s", app.ErrItemAlreadyExists, item.Name)
		}
		return domain.Item{}, err
	}
	return toEntity(m), nil
}

func (r *GormRepo) FindAll(ctx context.Context) ([]domain.Item, error) {
	var rows []models.Item
	if err := r.DB.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]domain.Item, 0, len(rows))
	for _, m := range rows {
		items = append(items, toEntity(m))
	}
	return items, nil
}

func (r *GormRepo) FindByName(ctx context.Context, name string) (domain.Item, bool, error) {
	return r.first(ctx, "name = ?", name)
}

func (r *GormRepo) FindByID(ctx context.Context, id uuid.UUID) (domain.Item, bool, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *GormRepo) first(ctx context.Context, query string, arg any) (domain.Item, bool, error) {
	var m models.Item
	if err := r.DB.WithContext(ctx).Where(query, arg).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Item{}, false, nil
		}
		return domain.Item{}, false, err
	}
	return toEntity(m), true, nil
}

func toModel(item domain.Item) models.Item {
	return models.Item{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Quantity:    item.Quantity,
	}
}

func toEntity(m models.Item) domain.Item {
	return domain.Item{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Quantity:    m.Quantity,
	}
}
