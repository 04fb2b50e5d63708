package bootstrap

import (
	"context"
	"log"

	"ai-summarizer-be/internal/config"
	"ai-summarizer-be/internal/controller"
	"ai-summarizer-be/internal/pkg/cache"
	"ai-summarizer-be/internal/pkg/logger"
	"ai-summarizer-be/internal/pkg/mailer"
	"ai-summarizer-be/internal/repository/memory"
	"ai-summarizer-be/internal/repository/unitofwork"
	"ai-summarizer-be/internal/service"
	"ai-summarizer-be/pkg/llm/factory"
	"ai-summarizer-be/pkg/refine"

	pktNats "ai-summarizer-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	SummaryController controller.ISummaryController
	RefineController  controller.IRefineController
	PromptController  controller.IPromptController
	UserController    controller.IUserController
	OAuthController   controller.IOAuthController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Seeding (Exposed for main.go and cmd/seed)
	PromptService service.IPromptService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Gateway
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.GoogleGemini,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	orchestrator := refine.NewOrchestrator(llmProvider)

	// In-memory refine session storage
	sessionRepo := memory.NewRefineSessionRepository()

	// 4. Infrastructure
	// NATS (best-effort event mirror)
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}

	// Redis (best-effort share-read cache)
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
	shareCache := cache.NewRedisShareCache(rdb)

	// 5. Services
	publisherService := service.NewPublisherService(cfg.Keys.ActivityTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.ActivityTopic,
		uowFactory,
		sysLogger,
	)

	summaryService := service.NewSummaryService(
		uowFactory,
		publisherService,
		llmProvider,
		natsPub,
		emailService,
		shareCache,
		sysLogger,
	)
	refineService := service.NewRefineService(
		uowFactory,
		orchestrator,
		sessionRepo,
		publisherService,
		natsPub,
		shareCache,
		sysLogger,
	)
	promptService := service.NewPromptService(uowFactory)
	userService := service.NewUserService(uowFactory)
	oauthService := service.NewOAuthService(uowFactory)

	// 6. Controllers
	return &Container{
		SummaryController: controller.NewSummaryController(summaryService),
		RefineController:  controller.NewRefineController(refineService),
		PromptController:  controller.NewPromptController(promptService),
		UserController:    controller.NewUserController(userService),
		OAuthController:   controller.NewOAuthController(oauthService),

		ConsumerService: consumerService,
		PromptService:   promptService,
		Logger:          sysLogger,
	}
}
