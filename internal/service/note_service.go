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

type INoteService interface {
	AddNote(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.CreateNoteResponse, error)
	ListNotes(ctx context.Context, userId uuid.UUID, opportunityId uuid.UUID) ([]dto.NoteResponse, error)
	DeleteNote(ctx context.Context, userId uuid.UUID, opportunityId uuid.UUID, noteId uuid.UUID) error
}

type noteService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewNoteService(uowFactory unitofwork.RepositoryFactory) INoteService {
	return &noteService{
		uowFactory: uowFactory,
	}
}

func (s *noteService) AddNote(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.CreateNoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	opportunity, err := uow.OpportunityRepository().FindOne(ctx, specification.ByID{ID: req.OpportunityId}, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	if opportunity == nil {
		return nil, serverutils.ErrNotFound
	}

	note := entity.Note{
		Id:            uuid.New(),
		UserId:        userId,
		OpportunityId: req.OpportunityId,
		Body:          req.Body,
		CreatedAt:     time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		return nil, err
	}

	writeAudit(ctx, uow, userId, constant.AuditEntityOpportunity, req.OpportunityId, constant.AuditActionUpdate, map[string]interface{}{
		"note_added": note.Id.String(),
	})

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.CreateNoteResponse{Id: note.Id}, nil
}

func (s *noteService) ListNotes(ctx context.Context, userId uuid.UUID, opportunityId uuid.UUID) ([]dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.ByOpportunityID{OpportunityId: opportunityId},
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.NoteResponse, 0, len(notes))
	for _, n := range notes {
		responses = append(responses, dto.NoteResponse{
			Id:        n.Id,
			Body:      n.Body,
			CreatedAt: n.CreatedAt,
			UpdatedAt: n.UpdatedAt,
		})
	}
	return responses, nil
}

func (s *noteService) DeleteNote(ctx context.Context, userId uuid.UUID, opportunityId uuid.UUID, noteId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: noteId},
		specification.ByOpportunityID{OpportunityId: opportunityId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if note == nil {
		return serverutils.ErrNotFound
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.NoteRepository().Delete(ctx, noteId); err != nil {
		return err
	}

	writeAudit(ctx, uow, userId, constant.AuditEntityOpportunity, opportunityId, constant.AuditActionUpdate, map[string]interface{}{
		"note_removed": noteId.String(),
	})

	return uow.Commit()
}
