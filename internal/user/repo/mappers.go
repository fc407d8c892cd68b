package repo

import (
	"github.com/Skotchmaster/nile/internal/models"
	"github.com/Skotchmaster/nile/internal/user/domain"
)

func userToModel(u domain.User) models.User {
	return models.User{
		ID:              u.ID,
		Email:           u.Email,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		HashedPassword:  u.HashedPassword,
		ShippingAddress: u.ShippingAddress,
	}
}

func userToEntity(m models.User) domain.User {
	return domain.User{
		ID:              m.ID,
		Email:           m.Email,
		FirstName:       m.FirstName,
		LastName:        m.LastName,
		HashedPassword:  m.HashedPassword,
		ShippingAddress: m.ShippingAddress,
	}
}

func cartItemToModel(c domain.CartItem) models.CartItem {
	return models.CartItem{
		UserID:   c.UserID,
		ItemID:   c.ItemID,
		Quantity: c.Quantity,
	}
}

func cartItemToEntity(m models.CartItem) domain.CartItem {
	return domain.CartItem{
		UserID:   m.UserID,
		ItemID:   m.ItemID,
		Quantity: m.Quantity,
	}
}
