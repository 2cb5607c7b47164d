package dto

import (
	"time"

	"github.com/google/uuid"
)

type AuditLogResponse struct {
	Id         uuid.UUID              `json:"id"`
	EntityType string                 `json:"entity_type"`
	EntityId   uuid.UUID              `json:"entity_id"`
	Action     string                 `json:"action"`
	Changes    map[string]interface{} `json:"changes,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
}
