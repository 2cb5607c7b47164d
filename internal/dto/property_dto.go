package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePropertyRequest struct {
	Title       string  `json:"title" validate:"required,min=3"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Address     string  `json:"address"`
	City        string  `json:"city"`
	Bedrooms    int     `json:"bedrooms" validate:"gte=0"`
	Bathrooms   int     `json:"bathrooms" validate:"gte=0"`
	AreaSqm     float64 `json:"area_sqm" validate:"gte=0"`
	Status      string  `json:"status" validate:"omitempty,oneof=available reserved sold"`
	ImageURL    string  `json:"image_url" validate:"omitempty,url"`
}

type CreatePropertyResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdatePropertyRequest struct {
	Id          uuid.UUID
	Title       string  `json:"title" validate:"required,min=3"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Address     string  `json:"address"`
	City        string  `json:"city"`
	Bedrooms    int     `json:"bedrooms" validate:"gte=0"`
	Bathrooms   int     `json:"bathrooms" validate:"gte=0"`
	AreaSqm     float64 `json:"area_sqm" validate:"gte=0"`
	Status      string  `json:"status" validate:"omitempty,oneof=available reserved sold"`
	ImageURL    string  `json:"image_url" validate:"omitempty,url"`
}

type UpdatePropertyResponse struct {
	Id uuid.UUID `json:"id"`
}

type ShowPropertyResponse struct {
	Id          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Address     string     `json:"address"`
	City        string     `json:"city"`
	Bedrooms    int        `json:"bedrooms"`
	Bathrooms   int        `json:"bathrooms"`
	AreaSqm     float64    `json:"area_sqm"`
	Status      string     `json:"status"`
	ImageURL    string     `json:"image_url"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

// EmbedPropertyMessage is the queue payload that triggers (re)embedding of a
// property listing.
type EmbedPropertyMessage struct {
	PropertyId uuid.UUID `json:"property_id"`
}
