package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateActivityRequest struct {
	OpportunityId uuid.UUID  `json:"opportunity_id" validate:"required"`
	Type          string     `json:"type" validate:"required,oneof=call email visit task"`
	Subject       string     `json:"subject" validate:"required,min=3"`
	Notes         string     `json:"notes"`
	DueAt         *time.Time `json:"due_at"`
}

type CreateActivityResponse struct {
	Id uuid.UUID `json:"id"`
}

type CompleteActivityResponse struct {
	Id          uuid.UUID `json:"id"`
	CompletedAt time.Time `json:"completed_at"`
}

type ShowActivityResponse struct {
	Id            uuid.UUID  `json:"id"`
	OpportunityId uuid.UUID  `json:"opportunity_id"`
	Type          string     `json:"type"`
	Subject       string     `json:"subject"`
	Notes         string     `json:"notes"`
	DueAt         *time.Time `json:"due_at"`
	CompletedAt   *time.Time `json:"completed_at"`
	CreatedAt     time.Time  `json:"created_at"`
}
