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

type UserRepo struct {
	DB *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{DB: db}
}

var _ app.UserRepository = (*UserRepo)(nil)

func (r *UserRepo) Save(ctx context.Context, u domain.User) (domain.User, error) {
	m := userToModel(u)
	if err := r.DB.WithContext(ctx).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.User{}, fmt.Errorf("%w: %s", app.ErrUserAlreadyExists, u.Email)
		}
		return domain.User{}, err
	}
	return userToEntity(m), nil
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (domain.User, bool, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *UserRepo) FindByID(ctx context.Context, id uuid.UUID) (domain.User, bool, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *UserRepo) first(ctx context.Context, query string, arg any) (domain.User, bool, error) {
	var m models.User
	if err := r.DB.WithContext(ctx).Where(query, arg).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, false, nil
		}
		return domain.User{}, false, err
	}
	return userToEntity(m), true, nil
}
