package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"estate-crm-be/internal/dto"
	"estate-crm-be/internal/entity"
	"estate-crm-be/internal/repository/specification"
	"estate-crm-be/internal/repository/unitofwork"
	"estate-crm-be/pkg/embedding"
	"estate-crm-be/pkg/utils"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.EmbedPropertyMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Processing property embedding for PropertyId: %s", payload.PropertyId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	property, err := uow.PropertyRepository().FindOne(ctx, specification.ByID{ID: payload.PropertyId})
	if err != nil {
		log.Printf("[ERROR] Failed to get property %s: %v", payload.PropertyId, err)
		msg.Nack() // Nack for retriable errors
		return
	}
	if property == nil {
		log.Printf("[ERROR] Property not found: %s", payload.PropertyId)
		msg.Ack() // Listing deleted meanwhile, nothing to embed
		return
	}

	content := fmt.Sprintf(`Property: %s
Price: %.0f
Address: %s, %s
Bedrooms: %d, Bathrooms: %d, Area: %.1f sqm
Status: %s

%s`,
		property.Title,
		property.Price,
		property.Address,
		property.City,
		property.Bedrooms,
		property.Bathrooms,
		property.AreaSqm,
		property.Status,
		property.Description,
	)

	// ChunkSize 1500 chars (approx 375 tokens), overlap 200 chars
	chunks := utils.SplitText(content, 1500, 200)
	log.Printf("[INFO] Content split into %d chunks", len(chunks))

	var newEmbeddings []*entity.PropertyEmbedding

	for i, chunk := range chunks {
		res, err := cs.embeddingProvider.Generate(chunk, "RETRIEVAL_DOCUMENT")
		if err != nil {
			log.Printf("[ERROR] Failed to generate embedding for chunk %d of property %s: %v", i, payload.PropertyId, err)
			msg.Nack()
			return
		}

		newEmbeddings = append(newEmbeddings, &entity.PropertyEmbedding{
			Id:             uuid.New(),
			PropertyId:     property.Id,
			ChunkIndex:     i,
			Content:        chunk,
			EmbeddingValue: res.Embedding.Values,
			CreatedAt:      time.Now(),
		})
	}

	if err := uow.Begin(ctx); err != nil {
		log.Printf("[ERROR] Failed to begin transaction: %v", err)
		msg.Nack()
		return
	}
	defer uow.Rollback()

	if err := uow.PropertyEmbeddingRepository().DeleteByPropertyId(ctx, property.Id); err != nil {
		log.Printf("[ERROR] Failed to delete old embeddings: %v", err)
		msg.Nack()
		return
	}

	if len(newEmbeddings) > 0 {
		if err := uow.PropertyEmbeddingRepository().CreateBulk(ctx, newEmbeddings); err != nil {
			log.Printf("[ERROR] Failed to create bulk embeddings: %v", err)
			msg.Nack()
			return
		}
	}

	if err := uow.Commit(); err != nil {
		log.Printf("[ERROR] Failed to commit transaction: %v", err)
		msg.Nack()
		return
	}

	log.Printf("[SUCCESS] Property processed: %d chunks for PropertyId: %s", len(newEmbeddings), payload.PropertyId)
	msg.Ack()
}
