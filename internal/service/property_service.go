package service

import (
	"context"
	"encoding/json"
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

type IPropertyService interface {
	CreateProperty(ctx context.Context, userId uuid.UUID, req *dto.CreatePropertyRequest) (*dto.CreatePropertyResponse, error)
	UpdateProperty(ctx context.Context, userId uuid.UUID, req *dto.UpdatePropertyRequest) (*dto.UpdatePropertyResponse, error)
	DeleteProperty(ctx context.Context, userId uuid.UUID, propertyId uuid.UUID) error
	GetProperty(ctx context.Context, propertyId uuid.UUID) (*dto.ShowPropertyResponse, error)
	ListProperties(ctx context.Context, status string) ([]dto.ShowPropertyResponse, error)
}

type propertyService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	natsPublisher    *nats.Publisher
}

func NewPropertyService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	natsPublisher *nats.Publisher,
) IPropertyService {
	return &propertyService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		natsPublisher:    natsPublisher,
	}
}

func (s *propertyService) CreateProperty(ctx context.Context, userId uuid.UUID, req *dto.CreatePropertyRequest) (*dto.CreatePropertyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	status := req.Status
	if status == "" {
		status = constant.PropertyStatusAvailable
	}

	property := entity.Property{
		Id:          uuid.New(),
		UserId:      userId,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Address:     req.Address,
		City:        req.City,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		AreaSqm:     req.AreaSqm,
		Status:      status,
		ImageURL:    req.ImageURL,
		CreatedAt:   time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.PropertyRepository().Create(ctx, &property); err != nil {
		return nil, err
	}

	writeAudit(ctx, uow, userId, constant.AuditEntityProperty, property.Id, constant.AuditActionCreate, map[string]interface{}{
		"title": property.Title,
		"price": property.Price,
	})

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.enqueueEmbedding(ctx, property.Id)

	if s.natsPublisher != nil {
		if err := s.natsPublisher.Publish(ctx, events.NewPropertyCreatedEvent(property.Id, userId)); err != nil {
			log.Printf("Warn: failed to publish property created event: %v", err)
		}
	}

	return &dto.CreatePropertyResponse{Id: property.Id}, nil
}

func (s *propertyService) UpdateProperty(ctx context.Context, userId uuid.UUID, req *dto.UpdatePropertyRequest) (*dto.UpdatePropertyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	property, err := uow.PropertyRepository().FindOne(ctx, specification.ByID{ID: req.Id}, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, serverutils.ErrNotFound
	}

	property.Title = req.Title
	property.Description = req.Description
	property.Price = req.Price
	property.Address = req.Address
	property.City = req.City
	property.Bedrooms = req.Bedrooms
	property.Bathrooms = req.Bathrooms
	property.AreaSqm = req.AreaSqm
	if req.Status != "" {
		property.Status = req.Status
	}
	property.ImageURL = req.ImageURL

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.PropertyRepository().Update(ctx, property); err != nil {
		return nil, err
	}

	writeAudit(ctx, uow, userId, constant.AuditEntityProperty, property.Id, constant.AuditActionUpdate, map[string]interface{}{
		"title": property.Title,
		"price": property.Price,
	})

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	// Listing text changed, refresh its embeddings.
	s.enqueueEmbedding(ctx, property.Id)

	return &dto.UpdatePropertyResponse{Id: property.Id}, nil
}

func (s *propertyService) DeleteProperty(ctx context.Context, userId uuid.UUID, propertyId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	property, err := uow.PropertyRepository().FindOne(ctx, specification.ByID{ID: propertyId}, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return err
	}
	if property == nil {
		return serverutils.ErrNotFound
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.PropertyEmbeddingRepository().DeleteByPropertyId(ctx, propertyId); err != nil {
		return err
	}

	if err := uow.PropertyRepository().Delete(ctx, propertyId); err != nil {
		return err
	}

	writeAudit(ctx, uow, userId, constant.AuditEntityProperty, propertyId, constant.AuditActionDelete, nil)

	return uow.Commit()
}

func (s *propertyService) GetProperty(ctx context.Context, propertyId uuid.UUID) (*dto.ShowPropertyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	property, err := uow.PropertyRepository().FindOne(ctx, specification.ByID{ID: propertyId})
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, serverutils.ErrNotFound
	}

	res := toPropertyResponse(property)
	return &res, nil
}

func (s *propertyService) ListProperties(ctx context.Context, status string) ([]dto.ShowPropertyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if status != "" {
		specs = append(specs, specification.ByStatus{Status: status})
	}

	properties, err := uow.PropertyRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ShowPropertyResponse, 0, len(properties))
	for _, property := range properties {
		responses = append(responses, toPropertyResponse(property))
	}
	return responses, nil
}

func (s *propertyService) enqueueEmbedding(ctx context.Context, propertyId uuid.UUID) {
	payload, err := json.Marshal(dto.EmbedPropertyMessage{PropertyId: propertyId})
	if err != nil {
		log.Printf("Warn: failed to marshal embed message for property %s: %v", propertyId, err)
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		log.Printf("Warn: failed to enqueue embedding for property %s: %v", propertyId, err)
	}
}

func toPropertyResponse(property *entity.Property) dto.ShowPropertyResponse {
	return dto.ShowPropertyResponse{
		Id:          property.Id,
		Title:       property.Title,
		Description: property.Description,
		Price:       property.Price,
		Address:     property.Address,
		City:        property.City,
		Bedrooms:    property.Bedrooms,
		Bathrooms:   property.Bathrooms,
		AreaSqm:     property.AreaSqm,
		Status:      property.Status,
		ImageURL:    property.ImageURL,
		CreatedAt:   property.CreatedAt,
		UpdatedAt:   property.UpdatedAt,
	}
}
