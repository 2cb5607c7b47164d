package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog records a change made to a CRM record. Changes holds the
// before/after values as a JSON object.
type AuditLog struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	EntityType string
	EntityId   uuid.UUID
	Action     string
	Changes    map[string]interface{}
	CreatedAt  time.Time
}
