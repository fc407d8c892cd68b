package app

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Skotchmaster/nile/internal/item/domain"
)

type fakeItemRepo struct {
	items   []domain.Item
	saves   int
	findErr error
	saveErr error
}

func (r *fakeItemRepo) Save(ctx context.Context, item domain.Item) (domain.Item, error) {
	if r.saveErr != nil {
		return domain.Item{}, r.saveErr
	}
	r.saves++
	item.ID = uuid.New()
	r.items = append(r.items, item)
	return item, nil
}

func (r *fakeItemRepo) FindAll(ctx context.Context) ([]domain.Item, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return append([]domain.Item(nil), r.items...), nil
}

func (r *fakeItemRepo) FindByName(ctx context.Context, name string) (domain.Item, bool, error) {
	if r.findErr != nil {
		return domain.Item{}, false, r.findErr
	}
	for _, it := range r.items {
		if it.Name == name {
			return it, true, nil
		}
	}
	return domain.Item{}, false, nil
}

func (r *fakeItemRepo) FindByID(ctx context.Context, id uuid.UUID) (domain.Item, bool, error) {
	for _, it := range r.items {
		if it.ID == id {
			return it, true, nil
		}
	}
	return domain.Item{}, false, nil
}

var errStoreDown = errors.New("store unavailable")

func strPtr(s string) *string { return &s }
