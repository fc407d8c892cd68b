package domain

import "github.com/google/uuid"

type Item struct {
	ID          uuid.UUID
	Name        string
	Description *string
	Price       float64
	Quantity    int
}
