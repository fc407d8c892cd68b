package app

import "errors"

var ErrItemAlreadyExists = errors.New("an item with this name already exists")
