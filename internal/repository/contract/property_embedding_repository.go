package contract

import (
	"context"

	"estate-crm-be/internal/entity"
	"estate-crm-be/internal/repository/specification"

	"github.com/google/uuid"
)

// ScoredPropertyEmbedding pairs an embedded chunk with its cosine similarity
// against a query vector.
type ScoredPropertyEmbedding struct {
	Embedding  *entity.PropertyEmbedding
	Similarity float64
}

type PropertyEmbeddingRepository interface {
	Create(ctx context.Context, embedding *entity.PropertyEmbedding) error
	CreateBulk(ctx context.Context, embeddings []*entity.PropertyEmbedding) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByPropertyId(ctx context.Context, propertyId uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PropertyEmbedding, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*ScoredPropertyEmbedding, error)
}
