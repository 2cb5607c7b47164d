package contract

import (
	"context"

	"estate-crm-be/internal/entity"
	"estate-crm-be/internal/repository/specification"

	"github.com/google/uuid"
)

type OpportunityRepository interface {
	Create(ctx context.Context, opportunity *entity.Opportunity) error
	Update(ctx context.Context, opportunity *entity.Opportunity) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Opportunity, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Opportunity, error)
	// FindAllWithRelations preloads Contact, Property and Assignee.
	FindAllWithRelations(ctx context.Context, specs ...specification.Specification) ([]*entity.Opportunity, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// UpdateStage moves one opportunity to a stage and position without
	// touching its other columns.
	UpdateStage(ctx context.Context, id uuid.UUID, stage string, position int) error
	// MaxPosition returns the highest position in a stage column for a user,
	// or -1 when the column is empty.
	MaxPosition(ctx context.Context, userId uuid.UUID, stage string) (int, error)
}
