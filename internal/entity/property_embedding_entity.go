package entity

import (
	"time"

	"github.com/google/uuid"
)

// PropertyEmbedding is one embedded chunk of a property listing. A listing
// may produce several chunks when its description is long.
type PropertyEmbedding struct {
	Id             uuid.UUID
	PropertyId     uuid.UUID
	ChunkIndex     int
	Content        string
	EmbeddingValue []float32
	CreatedAt      time.Time
}
