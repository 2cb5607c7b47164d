package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateNoteRequest struct {
	OpportunityId uuid.UUID
	Body          string `json:"body" validate:"required,min=1"`
}

type CreateNoteResponse struct {
	Id uuid.UUID `json:"id"`
}

type NoteResponse struct {
	Id        uuid.UUID  `json:"id"`
	Body      string     `json:"body"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
