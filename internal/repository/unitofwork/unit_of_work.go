package unitofwork

import (
	"context"

	"estate-crm-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ContactRepository() contract.ContactRepository
	PropertyRepository() contract.PropertyRepository
	PropertyEmbeddingRepository() contract.PropertyEmbeddingRepository
	OpportunityRepository() contract.OpportunityRepository
	NoteRepository() contract.NoteRepository
	AttachmentRepository() contract.AttachmentRepository
	ActivityRepository() contract.ActivityRepository
	AuditLogRepository() contract.AuditLogRepository
}
