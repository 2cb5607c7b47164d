package mapper

import (
	"encoding/json"

	"estate-crm-be/internal/entity"
	"estate-crm-be/internal/model"

	"gorm.io/datatypes"
)

type AuditLogMapper struct{}

func NewAuditLogMapper() *AuditLogMapper {
	return &AuditLogMapper{}
}

func (m *AuditLogMapper) ToEntity(a *model.AuditLog) *entity.AuditLog {
	if a == nil {
		return nil
	}

	var changes map[string]interface{}
	if len(a.Changes) > 0 {
		_ = json.Unmarshal(a.Changes, &changes)
	}

	return &entity.AuditLog{
		Id:         a.Id,
		UserId:     a.UserId,
		EntityType: a.EntityType,
		EntityId:   a.EntityId,
		Action:     a.Action,
		Changes:    changes,
		CreatedAt:  a.CreatedAt,
	}
}

func (m *AuditLogMapper) ToModel(a *entity.AuditLog) *model.AuditLog {
	if a == nil {
		return nil
	}

	var changes datatypes.JSON
	if a.Changes != nil {
		raw, err := json.Marshal(a.Changes)
		if err == nil {
			changes = datatypes.JSON(raw)
		}
	}

	return &model.AuditLog{
		Id:         a.Id,
		UserId:     a.UserId,
		EntityType: a.EntityType,
		EntityId:   a.EntityId,
		Action:     a.Action,
		Changes:    changes,
		CreatedAt:  a.CreatedAt,
	}
}

func (m *AuditLogMapper) ToEntities(logs []*model.AuditLog) []*entity.AuditLog {
	entities := make([]*entity.AuditLog, len(logs))
	for i, a := range logs {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
