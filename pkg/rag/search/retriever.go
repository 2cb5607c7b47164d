package search

import (
	"context"
	"fmt"
	"log"

	"estate-crm-be/internal/repository/contract"
	"estate-crm-be/internal/repository/specification"
	"estate-crm-be/internal/repository/unitofwork"
	"estate-crm-be/pkg/embedding"

	"github.com/google/uuid"
)

// PropertyMatch is one listing that cleared the similarity threshold,
// hydrated with the fields the reply prompt needs.
type PropertyMatch struct {
	Id          uuid.UUID
	Title       string
	Price       float64
	Description string
	ImageURL    string
	Similarity  float64
}

// Config encapsulates search parameters
type Config struct {
	// DBThreshold is applied inside the vector query. Kept at zero so the
	// real cut happens in MatchThreshold where it can be tested.
	DBThreshold    float64
	MatchThreshold float64
	TopK           int
}

// DefaultConfig returns the retrieval parameters used by the WhatsApp
// responder: top 3 chunks, similarity of at least 0.5.
func DefaultConfig() Config {
	return Config{
		DBThreshold:    0.0,
		MatchThreshold: 0.5,
		TopK:           3,
	}
}

// Retriever handles vector search and candidate filtering for property
// listings.
type Retriever struct {
	embeddingProvider embedding.EmbeddingProvider
	repoFactory       unitofwork.RepositoryFactory
	config            Config
	logger            *log.Logger
}

func NewRetriever(
	embeddingProvider embedding.EmbeddingProvider,
	repoFactory unitofwork.RepositoryFactory,
	config Config,
	logger *log.Logger,
) *Retriever {
	return &Retriever{
		embeddingProvider: embeddingProvider,
		repoFactory:       repoFactory,
		config:            config,
		logger:            logger,
	}
}

// Search embeds the query, runs vector search and returns hydrated matches
// ordered by similarity.
func (r *Retriever) Search(ctx context.Context, query string) ([]PropertyMatch, error) {
	embeddingRes, err := r.embeddingProvider.Generate(query, "RETRIEVAL_QUERY")
	if err != nil {
		return nil, fmt.Errorf("embedding generation failed: %w", err)
	}

	uow := r.repoFactory.NewUnitOfWork(ctx)

	scoredResults, err := uow.PropertyEmbeddingRepository().SearchSimilarWithScore(
		ctx,
		embeddingRes.Embedding.Values,
		r.config.TopK,
		r.config.DBThreshold,
	)
	if err != nil {
		r.logger.Printf("[ERROR] Vector search failed: %v", err)
		return nil, err
	}

	r.logger.Printf("[DEBUG] Raw search results: %d chunks", len(scoredResults))

	candidates := filterAndDeduplicate(scoredResults, r.config.MatchThreshold)

	r.logger.Printf("[DEBUG] Filtered candidates: %d properties", len(candidates))

	matches, err := r.hydrate(ctx, uow, candidates)
	if err != nil {
		r.logger.Printf("[WARN] Failed to hydrate matches: %v", err)
		return nil, err
	}

	return matches, nil
}

type candidate struct {
	propertyId uuid.UUID
	similarity float64
}

// filterAndDeduplicate keeps chunks scoring at or above the threshold and
// collapses multiple chunks of the same property to its best one. Input is
// ordered by similarity descending, so the first chunk seen wins.
func filterAndDeduplicate(results []*contract.ScoredPropertyEmbedding, threshold float64) []candidate {
	var candidates []candidate
	seen := make(map[uuid.UUID]bool)

	for _, res := range results {
		if res.Similarity < threshold {
			continue
		}
		if seen[res.Embedding.PropertyId] {
			continue
		}
		seen[res.Embedding.PropertyId] = true
		candidates = append(candidates, candidate{
			propertyId: res.Embedding.PropertyId,
			similarity: res.Similarity,
		})
	}

	return candidates
}

func (r *Retriever) hydrate(ctx context.Context, uow unitofwork.UnitOfWork, candidates []candidate) ([]PropertyMatch, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, len(candidates))
	for i, c := range candidates {
		ids[i] = c.propertyId
	}

	properties, err := uow.PropertyRepository().FindAll(ctx, specification.ByIDs{IDs: ids})
	if err != nil {
		return nil, err
	}

	byId := make(map[uuid.UUID]int, len(properties))
	for i, p := range properties {
		byId[p.Id] = i
	}

	matches := make([]PropertyMatch, 0, len(candidates))
	for _, c := range candidates {
		i, ok := byId[c.propertyId]
		if !ok {
			continue
		}
		p := properties[i]
		matches = append(matches, PropertyMatch{
			Id:          p.Id,
			Title:       p.Title,
			Price:       p.Price,
			Description: p.Description,
			ImageURL:    p.ImageURL,
			Similarity:  c.similarity,
		})
	}

	return matches, nil
}
