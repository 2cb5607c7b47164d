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

type IAttachmentService interface {
	AddAttachment(ctx context.Context, userId uuid.UUID, req *dto.CreateAttachmentRequest) (*dto.CreateAttachmentResponse, error)
	ListAttachments(ctx context.Context, userId uuid.UUID, opportunityId uuid.UUID) ([]dto.AttachmentResponse, error)
	DeleteAttachment(ctx context.Context, userId uuid.UUID, opportunityId uuid.UUID, attachmentId uuid.UUID) error
}

// attachmentService stores file metadata against an opportunity. Upload and
// storage of the file body happen elsewhere; callers pass the resulting URL.
type attachmentService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewAttachmentService(uowFactory unitofwork.RepositoryFactory) IAttachmentService {
	return &attachmentService{
		uowFactory: uowFactory,
	}
}

func (s *attachmentService) AddAttachment(ctx context.Context, userId uuid.UUID, req *dto.CreateAttachmentRequest) (*dto.CreateAttachmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	opportunity, err := uow.OpportunityRepository().FindOne(ctx, specification.ByID{ID: req.OpportunityId}, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	if opportunity == nil {
		return nil, serverutils.ErrNotFound
	}

	attachment := entity.Attachment{
		Id:            uuid.New(),
		UserId:        userId,
		OpportunityId: req.OpportunityId,
		FileName:      req.FileName,
		FileURL:       req.FileURL,
		ContentType:   req.ContentType,
		SizeBytes:     req.SizeBytes,
		CreatedAt:     time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.AttachmentRepository().Create(ctx, &attachment); err != nil {
		return nil, err
	}

	writeAudit(ctx, uow, userId, constant.AuditEntityOpportunity, req.OpportunityId, constant.AuditActionUpdate, map[string]interface{}{
		"attachment_added": attachment.FileName,
	})

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.CreateAttachmentResponse{Id: attachment.Id}, nil
}

func (s *attachmentService) ListAttachments(ctx context.Context, userId uuid.UUID, opportunityId uuid.UUID) ([]dto.AttachmentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	attachments, err := uow.AttachmentRepository().FindAll(ctx,
		specification.ByOpportunityID{OpportunityId: opportunityId},
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.AttachmentResponse, 0, len(attachments))
	for _, a := range attachments {
		responses = append(responses, dto.AttachmentResponse{
			Id:          a.Id,
			FileName:    a.FileName,
			FileURL:     a.FileURL,
			ContentType: a.ContentType,
			SizeBytes:   a.SizeBytes,
			CreatedAt:   a.CreatedAt,
		})
	}
	return responses, nil
}

func (s *attachmentService) DeleteAttachment(ctx context.Context, userId uuid.UUID, opportunityId uuid.UUID, attachmentId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	attachment, err := uow.AttachmentRepository().FindOne(ctx,
		specification.ByID{ID: attachmentId},
		specification.ByOpportunityID{OpportunityId: opportunityId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if attachment == nil {
		return serverutils.ErrNotFound
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.AttachmentRepository().Delete(ctx, attachmentId); err != nil {
		return err
	}

	writeAudit(ctx, uow, userId, constant.AuditEntityOpportunity, opportunityId, constant.AuditActionUpdate, map[string]interface{}{
		"attachment_removed": attachment.FileName,
	})

	return uow.Commit()
}
