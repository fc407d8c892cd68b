package app

import "errors"

var (
	ErrUserAlreadyExists = errors.New("a user with this email address already exists")
	ErrUserNotFound      = errors.New("user does not exist")
	ErrItemNotFound      = errors.New("item does not exist")
	ErrNotEnoughStock    = errors.New("not enough items in stock")
	ErrItemAlreadyInCart = errors.New("item already in cart")
)
