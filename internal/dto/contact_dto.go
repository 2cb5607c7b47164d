package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateContactRequest struct {
	FullName string `json:"full_name" validate:"required,min=2"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone" validate:"omitempty,min=6"`
	Source   string `json:"source"`
	Notes    string `json:"notes"`
}

type CreateContactResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateContactRequest struct {
	Id       uuid.UUID
	FullName string `json:"full_name" validate:"required,min=2"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone" validate:"omitempty,min=6"`
	Source   string `json:"source"`
	Notes    string `json:"notes"`
}

type UpdateContactResponse struct {
	Id uuid.UUID `json:"id"`
}

type ShowContactResponse struct {
	Id        uuid.UUID  `json:"id"`
	FullName  string     `json:"full_name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Source    string     `json:"source"`
	Notes     string     `json:"notes"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
