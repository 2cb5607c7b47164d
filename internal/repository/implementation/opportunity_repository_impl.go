package implementation

import (
	"context"
	"errors"

	"estate-crm-be/internal/entity"
	"estate-crm-be/internal/mapper"
	"estate-crm-be/internal/model"
	"estate-crm-be/internal/repository/contract"
	"estate-crm-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OpportunityRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.OpportunityMapper
}

func NewOpportunityRepository(db *gorm.DB) contract.OpportunityRepository {
	return &OpportunityRepositoryImpl{
		db:     db,
		mapper: mapper.NewOpportunityMapper(),
	}
}

func (r *OpportunityRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *OpportunityRepositoryImpl) Create(ctx context.Context, opportunity *entity.Opportunity) error {
	m := r.mapper.ToModel(opportunity)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*opportunity = *r.mapper.ToEntity(m)
	return nil
}

func (r *OpportunityRepositoryImpl) Update(ctx context.Context, opportunity *entity.Opportunity) error {
	m := r.mapper.ToModel(opportunity)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*opportunity = *r.mapper.ToEntity(m)
	return nil
}

func (r *OpportunityRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Opportunity{}, id).Error
}

func (r *OpportunityRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Opportunity, error) {
	var m model.Opportunity
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *OpportunityRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Opportunity, error) {
	var models []*model.Opportunity
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *OpportunityRepositoryImpl) FindAllWithRelations(ctx context.Context, specs ...specification.Specification) ([]*entity.Opportunity, error) {
	var models []*model.Opportunity
	query := r.applySpecifications(
		r.db.WithContext(ctx).
			Preload("Contact").
			Preload("Property").
			Preload("Assignee"),
		specs...,
	)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *OpportunityRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Opportunity{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *OpportunityRepositoryImpl) UpdateStage(ctx context.Context, id uuid.UUID, stage string, position int) error {
	result := r.db.WithContext(ctx).
		Model(&model.Opportunity{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"stage":    stage,
			"position": position,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *OpportunityRepositoryImpl) MaxPosition(ctx context.Context, userId uuid.UUID, stage string) (int, error) {
	var max *int
	err := r.db.WithContext(ctx).
		Model(&model.Opportunity{}).
		Where("user_id = ? AND stage = ?", userId, stage).
		Select("MAX(position)").
		Scan(&max).Error
	if err != nil {
		return -1, err
	}
	if max == nil {
		return -1, nil
	}
	return *max, nil
}
