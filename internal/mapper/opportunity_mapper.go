package mapper

import (
	"time"

	"estate-crm-be/internal/entity"
	"estate-crm-be/internal/model"
)

type OpportunityMapper struct {
	contactMapper  *ContactMapper
	propertyMapper *PropertyMapper
	userMapper     *UserMapper
}

func NewOpportunityMapper() *OpportunityMapper {
	return &OpportunityMapper{
		contactMapper:  NewContactMapper(),
		propertyMapper: NewPropertyMapper(),
		userMapper:     NewUserMapper(),
	}
}

func (m *OpportunityMapper) ToEntity(o *model.Opportunity) *entity.Opportunity {
	if o == nil {
		return nil
	}

	var updatedAt *time.Time
	if !o.UpdatedAt.IsZero() {
		t := o.UpdatedAt
		updatedAt = &t
	}

	return &entity.Opportunity{
		Id:         o.Id,
		UserId:     o.UserId,
		ContactId:  o.ContactId,
		PropertyId: o.PropertyId,
		Title:      o.Title,
		Stage:      o.Stage,
		Position:   o.Position,
		Value:      o.Value,
		Contact:    m.contactMapper.ToEntity(o.Contact),
		Property:   m.propertyMapper.ToEntity(o.Property),
		Assignee:   m.userMapper.ToEntity(o.Assignee),
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}

func (m *OpportunityMapper) ToModel(o *entity.Opportunity) *model.Opportunity {
	if o == nil {
		return nil
	}

	var updatedAt time.Time
	if o.UpdatedAt != nil {
		updatedAt = *o.UpdatedAt
	}

	// Associations stay nil on write. They are loaded, never persisted,
	// through this mapper.
	return &model.Opportunity{
		Id:         o.Id,
		UserId:     o.UserId,
		ContactId:  o.ContactId,
		PropertyId: o.PropertyId,
		Title:      o.Title,
		Stage:      o.Stage,
		Position:   o.Position,
		Value:      o.Value,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}

func (m *OpportunityMapper) ToEntities(opportunities []*model.Opportunity) []*entity.Opportunity {
	entities := make([]*entity.Opportunity, len(opportunities))
	for i, o := range opportunities {
		entities[i] = m.ToEntity(o)
	}
	return entities
}
