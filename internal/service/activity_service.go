package service

import (
	"context"
	"time"

	"estate-crm-be/internal/constant"
	"estate-crm-be/internal/dto"
	"estate-crm-be/internal/entity"
	"estate-crm-be/internal/pkg/serverutils"
	"estate-crm-be/internal/repository/specification"
	"estate-crm-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IActivityService interface {
	CreateActivity(ctx context.Context, userId uuid.UUID, req *dto.CreateActivityRequest) (*dto.CreateActivityResponse, error)
	CompleteActivity(ctx context.Context, userId uuid.UUID, activityId uuid.UUID) (*dto.CompleteActivityResponse, error)
	ListActivities(ctx context.Context, userId uuid.UUID, opportunityId uuid.UUID) ([]dto.ShowActivityResponse, error)
	DeleteActivity(ctx context.Context, userId uuid.UUID, activityId uuid.UUID) error
}

type activityService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewActivityService(uowFactory unitofwork.RepositoryFactory) IActivityService {
	return &activityService{
		uowFactory: uowFactory,
	}
}

func (s *activityService) CreateActivity(ctx context.Context, userId uuid.UUID, req *dto.CreateActivityRequest) (*dto.CreateActivityResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	opportunity, err := uow.OpportunityRepository().FindOne(ctx, specification.ByID{ID: req.OpportunityId}, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	if opportunity == nil {
		return nil, serverutils.ErrNotFound
	}

	activity := entity.Activity{
		Id:            uuid.New(),
		UserId:        userId,
		OpportunityId: req.OpportunityId,
		Type:          req.Type,
		Subject:       req.Subject,
		Notes:         req.Notes,
		DueAt:         req.DueAt,
		CreatedAt:     time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ActivityRepository().Create(ctx, &activity); err != nil {
		return nil, err
	}

	writeAudit(ctx, uow, userId, constant.AuditEntityActivity, activity.Id, constant.AuditActionCreate, map[string]interface{}{
		"type":    activity.Type,
		"subject": activity.Subject,
	})

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.CreateActivityResponse{Id: activity.Id}, nil
}

func (s *activityService) CompleteActivity(ctx context.Context, userId uuid.UUID, activityId uuid.UUID) (*dto.CompleteActivityResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	activity, err := uow.ActivityRepository().FindOne(ctx, specification.ByID{ID: activityId}, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, serverutils.ErrNotFound
	}

	if activity.CompletedAt != nil {
		// Completing twice keeps the first completion time.
		return &dto.CompleteActivityResponse{Id: activity.Id, CompletedAt: *activity.CompletedAt}, nil
	}

	now := time.Now()
	activity.CompletedAt = &now

	if err := uow.ActivityRepository().Update(ctx, activity); err != nil {
		return nil, err
	}

	return &dto.CompleteActivityResponse{Id: activity.Id, CompletedAt: now}, nil
}

func (s *activityService) ListActivities(ctx context.Context, userId uuid.UUID, opportunityId uuid.UUID) ([]dto.ShowActivityResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	activities, err := uow.ActivityRepository().FindAll(ctx,
		specification.ByOpportunityID{OpportunityId: opportunityId},
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ShowActivityResponse, 0, len(activities))
	for _, activity := range activities {
		responses = append(responses, dto.ShowActivityResponse{
			Id:            activity.Id,
			OpportunityId: activity.OpportunityId,
			Type:          activity.Type,
			Subject:       activity.Subject,
			Notes:         activity.Notes,
			DueAt:         activity.DueAt,
			CompletedAt:   activity.CompletedAt,
			CreatedAt:     activity.CreatedAt,
		})
	}
	return responses, nil
}

func (s *activityService) DeleteActivity(ctx context.Context, userId uuid.UUID, activityId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	activity, err := uow.ActivityRepository().FindOne(ctx, specification.ByID{ID: activityId}, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return err
	}
	if activity == nil {
		return serverutils.ErrNotFound
	}

	return uow.ActivityRepository().Delete(ctx, activityId)
}
