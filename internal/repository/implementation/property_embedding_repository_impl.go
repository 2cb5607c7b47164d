package implementation

import (
	"context"

	"estate-crm-be/internal/entity"
	"estate-crm-be/internal/mapper"
	"estate-crm-be/internal/model"
	"estate-crm-be/internal/repository/contract"
	"estate-crm-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type PropertyEmbeddingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PropertyEmbeddingMapper
}

func NewPropertyEmbeddingRepository(db *gorm.DB) contract.PropertyEmbeddingRepository {
	return &PropertyEmbeddingRepositoryImpl{
		db:     db,
		mapper: mapper.NewPropertyEmbeddingMapper(),
	}
}

func (r *PropertyEmbeddingRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PropertyEmbeddingRepositoryImpl) Create(ctx context.Context, embedding *entity.PropertyEmbedding) error {
	m := r.mapper.ToModel(embedding)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*embedding = *r.mapper.ToEntity(m)
	return nil
}

func (r *PropertyEmbeddingRepositoryImpl) CreateBulk(ctx context.Context, embeddings []*entity.PropertyEmbedding) error {
	if len(embeddings) == 0 {
		return nil
	}

	models := r.mapper.ToModels(embeddings)
	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}

	for i, m := range models {
		*embeddings[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *PropertyEmbeddingRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.PropertyEmbedding{}, id).Error
}

func (r *PropertyEmbeddingRepositoryImpl) DeleteByPropertyId(ctx context.Context, propertyId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("property_id = ?", propertyId).Delete(&model.PropertyEmbedding{}).Error
}

func (r *PropertyEmbeddingRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PropertyEmbedding, error) {
	var models []*model.PropertyEmbedding
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *PropertyEmbeddingRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.PropertyEmbedding{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SearchSimilarWithScore returns embedded chunks with similarity scores,
// filtered by threshold. Cosine distance in pgvector is 1 - cosine_similarity,
// so 1 - (embedding_value <=> query_vector) gives the similarity.
func (r *PropertyEmbeddingRepositoryImpl) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*contract.ScoredPropertyEmbedding, error) {
	if limit <= 0 {
		limit = 5
	}

	type result struct {
		model.PropertyEmbedding
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("property_embeddings").
		Select("property_embeddings.*, 1 - (embedding_value <=> ?) as similarity", queryVector).
		Joins("JOIN properties ON properties.id = property_embeddings.property_id").
		Where("property_embeddings.deleted_at IS NULL").
		Where("properties.deleted_at IS NULL").
		Where("1 - (embedding_value <=> ?) >= ?", queryVector, threshold).
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error

	if err != nil {
		return nil, err
	}

	scored := make([]*contract.ScoredPropertyEmbedding, len(results))
	for i, res := range results {
		scored[i] = &contract.ScoredPropertyEmbedding{
			Embedding:  r.mapper.ToEntity(&res.PropertyEmbedding),
			Similarity: res.Similarity,
		}
	}
	return scored, nil
}
