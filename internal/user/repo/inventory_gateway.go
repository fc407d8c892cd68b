package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Skotchmaster/nile/internal/models"
	"github.com/Skotchmaster/nile/internal/user/app"
)

// InventoryGateway reads catalog items straight from the items table that
// the item context owns. It never writes.
type InventoryGateway struct {
	DB *gorm.DB
}

func NewInventoryGateway(db *gorm.DB) *InventoryGateway {
	return &InventoryGateway{DB: db}
}

var _ app.InventoryGateway = (*InventoryGateway)(nil)

func (g *InventoryGateway) FindItemByID(ctx context.Context, id uuid.UUID) (app.InventoryItem, bool, error) {
	var m models.Item
	if err := g.DB.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return app.InventoryItem{}, false, nil
		}
		return app.InventoryItem{}, false, err
	}

	return app.InventoryItem{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Quantity:    m.Quantity,
	}, true, nil
}
