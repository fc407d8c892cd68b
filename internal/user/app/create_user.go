package app

import (
	"context"
	"fmt"

	"github.com/Skotchmaster/nile/internal/user/domain"
)

type CreateUserUseCase struct {
	repo   UserRepository
	hasher PasswordHasher
}

func NewCreateUserUseCase(repo UserRepository, hasher PasswordHasher) *CreateUserUseCase {
	return &CreateUserUseCase{repo: repo, hasher: hasher}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (CreateUserResult, error) {
	if _, found, err := uc.repo.FindByEmail(ctx, cmd.Email); err != nil {
		return CreateUserResult{}, fmt.Errorf("find user by email: %w", err)
	} else if found {
		return CreateUserResult{}, ErrUserAlreadyExists
	}

	saved, err := uc.repo.Save(ctx, domain.User{
		Email:           cmd.Email,
		FirstName:       cmd.FirstName,
		LastName:        cmd.LastName,
		HashedPassword:  uc.hasher.Hash(cmd.Password),
		ShippingAddress: cmd.ShippingAddress,
	})
	if err != nil {
		return CreateUserResult{}, fmt.Errorf("save user: %w", err)
	}

	return CreateUserResult{
		ID:              saved.ID,
		FirstName:       saved.FirstName,
		LastName:        saved.LastName,
		Email:           saved.Email,
		ShippingAddress: saved.ShippingAddress,
	}, nil
}
