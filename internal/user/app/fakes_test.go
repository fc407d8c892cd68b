package app

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Skotchmaster/nile/internal/user/domain"
)

var errStoreDown = errors.New("store unavailable")

type fakeUserRepo struct {
	users []domain.User
	saves int
	err   error
}

func (r *fakeUserRepo) Save(ctx context.Context, u domain.User) (domain.User, error) {
	if r.err != nil {
		return domain.User{}, r.err
	}
	r.saves++
	u.ID = uuid.New()
	r.users = append(r.users, u)
	return u, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (domain.User, bool, error) {
	if r.err != nil {
		return domain.User{}, false, r.err
	}
	for _, u := range r.users {
		if u.Email == email {
			return u, true, nil
		}
	}
	return domain.User{}, false, nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (domain.User, bool, error) {
	if r.err != nil {
		return domain.User{}, false, r.err
	}
	for _, u := range r.users {
		if u.ID == id {
			return u, true, nil
		}
	}
	return domain.User{}, false, nil
}

type fakeCartRepo struct {
	entries []domain.CartItem
	saves   int
	lists   int
	err     error
}

func (r *fakeCartRepo) FindForUser(ctx context.Context, userID uuid.UUID) ([]domain.CartItem, error) {
	r.lists++
	if r.err != nil {
		return nil, r.err
	}
	var out []domain.CartItem
	for _, e := range r.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeCartRepo) Save(ctx context.Context, item domain.CartItem) (domain.CartItem, error) {
	if r.err != nil {
		return domain.CartItem{}, r.err
	}
	r.saves++
	r.entries = append(r.entries, item)
	return item, nil
}

type fakeInventory struct {
	items map[uuid.UUID]InventoryItem
	calls int
}

func (g *fakeInventory) FindItemByID(ctx context.Context, id uuid.UUID) (InventoryItem, bool, error) {
	g.calls++
	it, ok := g.items[id]
	return it, ok, nil
}

type prefixHasher struct{}

func (prefixHasher) Hash(password string) string { return "hashed:" + password }
