package bootstrap

import (
	"context"
	"log"

	"estate-crm-be/internal/config"
	"estate-crm-be/internal/controller"
	"estate-crm-be/internal/handler"
	"estate-crm-be/internal/pkg/logger"
	"estate-crm-be/internal/pkg/mailer"
	"estate-crm-be/internal/repository/memory"
	"estate-crm-be/internal/repository/unitofwork"
	"estate-crm-be/internal/service"
	"estate-crm-be/internal/websocket"
	"estate-crm-be/pkg/embedding"
	llmFactory "estate-crm-be/pkg/llm/factory"

	pktNats "estate-crm-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController        controller.IAuthController
	OAuthController       controller.IOAuthController
	ContactController     controller.IContactController
	PropertyController    controller.IPropertyController
	OpportunityController controller.IOpportunityController
	ActivityController    controller.IActivityController
	WebhookController     controller.IWebhookController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	BoardHandler *handler.BoardHandler
	WebSocketHub *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI providers
	embeddingProvider, err := embedding.NewProvider(
		cfg.Ai.EmbeddingProvider,
		cfg.Keys.OpenAI,
		cfg.Ai.EmbeddingModel,
		cfg.Ai.OllamaBaseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize embedding provider: %v", err)
	}
	log.Printf("[INFO] Using embedding provider: %s (%s)", cfg.Ai.EmbeddingProvider, cfg.Ai.EmbeddingModel)

	llmProvider, err := llmFactory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Keys.OpenAI,
		cfg.Ai.OllamaBaseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM provider: %v", err)
	}
	log.Printf("[INFO] Using LLM provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// In-memory stores
	conversationRepo := memory.NewConversationRepository()
	boardSessions := memory.NewBoardSessionRepository()

	// 4. Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS subscriber: %v", err)
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	wsLogger := logger.NewIsolatedLogger("logs/board_events.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 5. Services
	publisherService := service.NewPublisherService(pubSub, cfg.Keys.EmbedPropertyTopic)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.EmbedPropertyTopic,
		uowFactory,
		embeddingProvider,
	)

	authService := service.NewAuthService(uowFactory)
	oauthService := service.NewOAuthService(uowFactory, cfg.OAuth)
	contactService := service.NewContactService(uowFactory, natsPub)
	propertyService := service.NewPropertyService(uowFactory, publisherService, natsPub)
	opportunityService := service.NewOpportunityService(uowFactory, boardSessions, natsPub, wsHub)
	noteService := service.NewNoteService(uowFactory)
	attachmentService := service.NewAttachmentService(uowFactory)
	activityService := service.NewActivityService(uowFactory)
	chatbotService := service.NewChatbotService(
		uowFactory,
		embeddingProvider,
		llmProvider,
		conversationRepo,
	)

	// 6. Stage-change notifier (NATS worker)
	if natsSub != nil {
		notifService := service.NewNotificationService(uowFactory, natsSub, emailService, sysLogger)
		go notifService.Start()
	}

	boardHandler := handler.NewBoardHandler(wsHub, wsLogger)

	// 7. Controllers
	return &Container{
		AuthController:        controller.NewAuthController(authService),
		OAuthController:       controller.NewOAuthController(oauthService, cfg.App.ClientURL),
		ContactController:     controller.NewContactController(contactService),
		PropertyController:    controller.NewPropertyController(propertyService),
		OpportunityController: controller.NewOpportunityController(opportunityService, noteService, attachmentService),
		ActivityController:    controller.NewActivityController(activityService),
		WebhookController:     controller.NewWebhookController(chatbotService),

		ConsumerService: consumerService,

		BoardHandler: boardHandler,
		WebSocketHub: wsHub,
	}
}
