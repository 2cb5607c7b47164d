package search

import (
	"testing"

	"estate-crm-be/internal/entity"
	"estate-crm-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoredChunk(propertyId uuid.UUID, similarity float64) *contract.ScoredPropertyEmbedding {
	return &contract.ScoredPropertyEmbedding{
		Embedding: &entity.PropertyEmbedding{
			Id:         uuid.New(),
			PropertyId: propertyId,
		},
		Similarity: similarity,
	}
}

func TestFilterAndDeduplicate_Threshold(t *testing.T) {
	p1 := uuid.New()
	p2 := uuid.New()
	p3 := uuid.New()

	results := []*contract.ScoredPropertyEmbedding{
		scoredChunk(p1, 0.91),
		scoredChunk(p2, 0.5),
		scoredChunk(p3, 0.4999),
	}

	candidates := filterAndDeduplicate(results, 0.5)

	require.Len(t, candidates, 2)
	assert.Equal(t, p1, candidates[0].propertyId)
	// a score of exactly 0.5 clears the threshold
	assert.Equal(t, p2, candidates[1].propertyId)
}

func TestFilterAndDeduplicate_CollapsesChunksOfSameProperty(t *testing.T) {
	p1 := uuid.New()
	p2 := uuid.New()

	results := []*contract.ScoredPropertyEmbedding{
		scoredChunk(p1, 0.9),
		scoredChunk(p1, 0.8),
		scoredChunk(p2, 0.7),
		scoredChunk(p1, 0.6),
	}

	candidates := filterAndDeduplicate(results, 0.5)

	require.Len(t, candidates, 2)
	assert.Equal(t, p1, candidates[0].propertyId)
	assert.InDelta(t, 0.9, candidates[0].similarity, 1e-9)
	assert.Equal(t, p2, candidates[1].propertyId)
}

func TestFilterAndDeduplicate_Empty(t *testing.T) {
	candidates := filterAndDeduplicate(nil, 0.5)
	assert.Empty(t, candidates)

	candidates = filterAndDeduplicate([]*contract.ScoredPropertyEmbedding{
		scoredChunk(uuid.New(), 0.2),
	}, 0.5)
	assert.Empty(t, candidates)
}
