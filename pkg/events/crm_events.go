package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeStageChanged    = "STAGE_CHANGED"
	TypeContactCreated  = "CONTACT_CREATED"
	TypePropertyCreated = "PROPERTY_CREATED"
)

// NewStageChangedEvent is emitted when an opportunity card lands in a new
// pipeline column and the move has been persisted.
func NewStageChangedEvent(opportunityId, userId uuid.UUID, fromStage, toStage string, position int) Event {
	return BaseEvent{
		Type: TypeStageChanged,
		Data: map[string]interface{}{
			"opportunity_id": opportunityId.String(),
			"user_id":        userId.String(),
			"from_stage":     fromStage,
			"to_stage":       toStage,
			"position":       position,
		},
		OccurredAt: time.Now(),
	}
}

func NewContactCreatedEvent(contactId, userId uuid.UUID) Event {
	return BaseEvent{
		Type: TypeContactCreated,
		Data: map[string]interface{}{
			"contact_id": contactId.String(),
			"user_id":    userId.String(),
		},
		OccurredAt: time.Now(),
	}
}

func NewPropertyCreatedEvent(propertyId, userId uuid.UUID) Event {
	return BaseEvent{
		Type: TypePropertyCreated,
		Data: map[string]interface{}{
			"property_id": propertyId.String(),
			"user_id":     userId.String(),
		},
		OccurredAt: time.Now(),
	}
}
