package entity

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	Id            uuid.UUID
	UserId        uuid.UUID
	OpportunityId uuid.UUID
	Body          string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}
