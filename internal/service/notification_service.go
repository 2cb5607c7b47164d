package service

import (
	"context"
	"fmt"
	"strings"

	"estate-crm-be/internal/pkg/logger"
	"estate-crm-be/internal/pkg/mailer"
	"estate-crm-be/internal/repository/specification"
	"estate-crm-be/internal/repository/unitofwork"
	"estate-crm-be/pkg/events"
	pktNats "estate-crm-be/pkg/nats"

	"github.com/google/uuid"
)

// NotificationService listens on the event bus and mails the owning agent
// when a pipeline move lands.
type NotificationService struct {
	uowFactory   unitofwork.RepositoryFactory
	subscriber   *pktNats.Subscriber
	emailService mailer.IEmailService
	logger       logger.ILogger
}

func NewNotificationService(
	uowFactory unitofwork.RepositoryFactory,
	sub *pktNats.Subscriber,
	emailService mailer.IEmailService,
	log logger.ILogger,
) *NotificationService {
	return &NotificationService{
		uowFactory:   uowFactory,
		subscriber:   sub,
		emailService: emailService,
		logger:       log,
	}
}

// Start begins listening to the event bus.
func (s *NotificationService) Start() {
	err := s.subscriber.Subscribe("events."+events.TypeStageChanged, "crm-notifier", s.handleStageChanged)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to start notification subscriber", map[string]interface{}{"error": err})
		return
	}
	s.logger.Info("NotificationService", "Notification service started, listening to stage changes", nil)
}

func (s *NotificationService) handleStageChanged(ctx context.Context, event events.Event) error {
	payload := event.Payload()

	userIdStr, _ := payload["user_id"].(string)
	opportunityIdStr, _ := payload["opportunity_id"].(string)
	fromStage, _ := payload["from_stage"].(string)
	toStage, _ := payload["to_stage"].(string)

	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		s.logger.Warn("NotificationService", "Stage event missing user_id", map[string]interface{}{"payload": payload})
		return nil
	}
	opportunityId, err := uuid.Parse(opportunityIdStr)
	if err != nil {
		s.logger.Warn("NotificationService", "Stage event missing opportunity_id", map[string]interface{}{"payload": payload})
		return nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	opportunity, err := uow.OpportunityRepository().FindOne(ctx, specification.ByID{ID: opportunityId})
	if err != nil {
		return err
	}
	if user == nil || opportunity == nil {
		// Record deleted since the event was published, drop the message.
		return nil
	}

	if strings.TrimSpace(user.Email) == "" {
		return nil
	}

	if err := s.emailService.SendStageChangeAlert(user.Email, opportunity.Title, fromStage, toStage); err != nil {
		s.logger.Error("NotificationService", fmt.Sprintf("Failed to send stage alert to %s", user.Email), map[string]interface{}{"error": err})
		// Mail failures are not retried; the board state is already correct.
		return nil
	}

	return nil
}
