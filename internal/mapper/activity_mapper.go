package mapper

import (
	"time"

	"estate-crm-be/internal/entity"
	"estate-crm-be/internal/model"
)

type ActivityMapper struct{}

func NewActivityMapper() *ActivityMapper {
	return &ActivityMapper{}
}

func (m *ActivityMapper) ToEntity(a *model.Activity) *entity.Activity {
	if a == nil {
		return nil
	}

	var updatedAt *time.Time
	if !a.UpdatedAt.IsZero() {
		t := a.UpdatedAt
		updatedAt = &t
	}

	return &entity.Activity{
		Id:            a.Id,
		UserId:        a.UserId,
		OpportunityId: a.OpportunityId,
		Type:          a.Type,
		Subject:       a.Subject,
		Notes:         a.Notes,
		DueAt:         a.DueAt,
		CompletedAt:   a.CompletedAt,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *ActivityMapper) ToModel(a *entity.Activity) *model.Activity {
	if a == nil {
		return nil
	}

	var updatedAt time.Time
	if a.UpdatedAt != nil {
		updatedAt = *a.UpdatedAt
	}

	return &model.Activity{
		Id:            a.Id,
		UserId:        a.UserId,
		OpportunityId: a.OpportunityId,
		Type:          a.Type,
		Subject:       a.Subject,
		Notes:         a.Notes,
		DueAt:         a.DueAt,
		CompletedAt:   a.CompletedAt,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *ActivityMapper) ToEntities(activities []*model.Activity) []*entity.Activity {
	entities := make([]*entity.Activity, len(activities))
	for i, a := range activities {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
