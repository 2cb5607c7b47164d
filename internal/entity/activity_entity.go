package entity

import (
	"time"

	"github.com/google/uuid"
)

type Activity struct {
	Id            uuid.UUID
	UserId        uuid.UUID
	OpportunityId uuid.UUID
	Type          string
	Subject       string
	Notes         string
	DueAt         *time.Time
	CompletedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}
