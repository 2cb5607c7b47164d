package service

import (
	"context"
	"log"
	"time"

	"estate-crm-be/internal/constant"
	"estate-crm-be/internal/dto"
	"estate-crm-be/internal/entity"
	"estate-crm-be/internal/pkg/serverutils"
	"estate-crm-be/internal/repository/specification"
	"estate-crm-be/internal/repository/unitofwork"
	"estate-crm-be/pkg/events"
	"estate-crm-be/pkg/nats"

	"github.com/google/uuid"
)

type IContactService interface {
	CreateContact(ctx context.Context, userId uuid.UUID, req *dto.CreateContactRequest) (*dto.CreateContactResponse, error)
	UpdateContact(ctx context.Context, userId uuid.UUID, req *dto.UpdateContactRequest) (*dto.UpdateContactResponse, error)
	DeleteContact(ctx context.Context, userId uuid.UUID, contactId uuid.UUID) error
	GetContact(ctx context.Context, userId uuid.UUID, contactId uuid.UUID) (*dto.ShowContactResponse, error)
	ListContacts(ctx context.Context, userId uuid.UUID) ([]dto.ShowContactResponse, error)
}

type contactService struct {
	uowFactory    unitofwork.RepositoryFactory
	natsPublisher *nats.Publisher
}

func NewContactService(uowFactory unitofwork.RepositoryFactory, natsPublisher *nats.Publisher) IContactService {
	return &contactService{
		uowFactory:    uowFactory,
		natsPublisher: natsPublisher,
	}
}

func (s *contactService) CreateContact(ctx context.Context, userId uuid.UUID, req *dto.CreateContactRequest) (*dto.CreateContactResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	contact := entity.Contact{
		Id:        uuid.New(),
		UserId:    userId,
		FullName:  req.FullName,
		Email:     req.Email,
		Phone:     req.Phone,
		Source:    req.Source,
		Notes:     req.Notes,
		CreatedAt: time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ContactRepository().Create(ctx, &contact); err != nil {
		return nil, err
	}

	writeAudit(ctx, uow, userId, constant.AuditEntityContact, contact.Id, constant.AuditActionCreate, map[string]interface{}{
		"full_name": contact.FullName,
		"source":    contact.Source,
	})

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if s.natsPublisher != nil {
		if err := s.natsPublisher.Publish(ctx, events.NewContactCreatedEvent(contact.Id, userId)); err != nil {
			log.Printf("Warn: failed to publish contact created event: %v", err)
		}
	}

	return &dto.CreateContactResponse{Id: contact.Id}, nil
}

func (s *contactService) UpdateContact(ctx context.Context, userId uuid.UUID, req *dto.UpdateContactRequest) (*dto.UpdateContactResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	contact, err := uow.ContactRepository().FindOne(ctx, specification.ByID{ID: req.Id}, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, serverutils.ErrNotFound
	}

	contact.FullName = req.FullName
	contact.Email = req.Email
	contact.Phone = req.Phone
	contact.Source = req.Source
	contact.Notes = req.Notes

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ContactRepository().Update(ctx, contact); err != nil {
		return nil, err
	}

	writeAudit(ctx, uow, userId, constant.AuditEntityContact, contact.Id, constant.AuditActionUpdate, map[string]interface{}{
		"full_name": contact.FullName,
	})

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.UpdateContactResponse{Id: contact.Id}, nil
}

func (s *contactService) DeleteContact(ctx context.Context, userId uuid.UUID, contactId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	contact, err := uow.ContactRepository().FindOne(ctx, specification.ByID{ID: contactId}, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return err
	}
	if contact == nil {
		return serverutils.ErrNotFound
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ContactRepository().Delete(ctx, contactId); err != nil {
		return err
	}

	writeAudit(ctx, uow, userId, constant.AuditEntityContact, contactId, constant.AuditActionDelete, nil)

	return uow.Commit()
}

func (s *contactService) GetContact(ctx context.Context, userId uuid.UUID, contactId uuid.UUID) (*dto.ShowContactResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	contact, err := uow.ContactRepository().FindOne(ctx, specification.ByID{ID: contactId}, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, serverutils.ErrNotFound
	}

	res := toContactResponse(contact)
	return &res, nil
}

func (s *contactService) ListContacts(ctx context.Context, userId uuid.UUID) ([]dto.ShowContactResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	contacts, err := uow.ContactRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ShowContactResponse, 0, len(contacts))
	for _, contact := range contacts {
		responses = append(responses, toContactResponse(contact))
	}
	return responses, nil
}

func toContactResponse(contact *entity.Contact) dto.ShowContactResponse {
	return dto.ShowContactResponse{
		Id:        contact.Id,
		FullName:  contact.FullName,
		Email:     contact.Email,
		Phone:     contact.Phone,
		Source:    contact.Source,
		Notes:     contact.Notes,
		CreatedAt: contact.CreatedAt,
		UpdatedAt: contact.UpdatedAt,
	}
}

// writeAudit records a change row inside the caller's transaction. Audit
// failures are logged and swallowed so they never block the main write.
func writeAudit(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, entityType string, entityId uuid.UUID, action string, changes map[string]interface{}) {
	auditLog := entity.AuditLog{
		Id:         uuid.New(),
		UserId:     userId,
		EntityType: entityType,
		EntityId:   entityId,
		Action:     action,
		Changes:    changes,
		CreatedAt:  time.Now(),
	}
	if err := uow.AuditLogRepository().Create(ctx, &auditLog); err != nil {
		log.Printf("Warn: failed to write audit log for %s %s: %v", entityType, entityId, err)
	}
}
