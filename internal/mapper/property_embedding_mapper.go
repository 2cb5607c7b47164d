package mapper

import (
	"estate-crm-be/internal/entity"
	"estate-crm-be/internal/model"

	"github.com/pgvector/pgvector-go"
)

type PropertyEmbeddingMapper struct{}

func NewPropertyEmbeddingMapper() *PropertyEmbeddingMapper {
	return &PropertyEmbeddingMapper{}
}

func (m *PropertyEmbeddingMapper) ToEntity(e *model.PropertyEmbedding) *entity.PropertyEmbedding {
	if e == nil {
		return nil
	}

	return &entity.PropertyEmbedding{
		Id:             e.Id,
		PropertyId:     e.PropertyId,
		ChunkIndex:     e.ChunkIndex,
		Content:        e.Content,
		EmbeddingValue: e.EmbeddingValue.Slice(),
		CreatedAt:      e.CreatedAt,
	}
}

func (m *PropertyEmbeddingMapper) ToModel(e *entity.PropertyEmbedding) *model.PropertyEmbedding {
	if e == nil {
		return nil
	}

	return &model.PropertyEmbedding{
		Id:             e.Id,
		PropertyId:     e.PropertyId,
		ChunkIndex:     e.ChunkIndex,
		Content:        e.Content,
		EmbeddingValue: pgvector.NewVector(e.EmbeddingValue),
		CreatedAt:      e.CreatedAt,
	}
}

func (m *PropertyEmbeddingMapper) ToEntities(embeddings []*model.PropertyEmbedding) []*entity.PropertyEmbedding {
	entities := make([]*entity.PropertyEmbedding, len(embeddings))
	for i, e := range embeddings {
		entities[i] = m.ToEntity(e)
	}
	return entities
}

func (m *PropertyEmbeddingMapper) ToModels(embeddings []*entity.PropertyEmbedding) []*model.PropertyEmbedding {
	models := make([]*model.PropertyEmbedding, len(embeddings))
	for i, e := range embeddings {
		models[i] = m.ToModel(e)
	}
	return models
}
