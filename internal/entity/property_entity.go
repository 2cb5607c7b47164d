package entity

import (
	"time"

	"github.com/google/uuid"
)

type Property struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	Title       string
	Description string
	Price       float64
	Address     string
	City        string
	Bedrooms    int
	Bathrooms   int
	AreaSqm     float64
	Status      string
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
