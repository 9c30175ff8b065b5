package bootstrap

import (
	"context"
	"log"

	"innovation-hub-be/internal/config"
	"innovation-hub-be/internal/controller"
	"innovation-hub-be/internal/pkg/logger"
	"innovation-hub-be/internal/pkg/mailer"
	"innovation-hub-be/internal/repository/implementation"
	"innovation-hub-be/internal/repository/memory"
	"innovation-hub-be/internal/repository/unitofwork"
	"innovation-hub-be/internal/service"
	"innovation-hub-be/pkg/ai/categorizer"
	"innovation-hub-be/pkg/ai/matcher"
	"innovation-hub-be/pkg/embedding"
	"innovation-hub-be/pkg/llm/factory"
	pktNats "innovation-hub-be/pkg/nats"
	"innovation-hub-be/pkg/store"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController     controller.IAuthController
	IdeaController     controller.IIdeaController
	DocumentController controller.IDocumentController
	AnalysisController controller.IAnalysisController
	ProjectController  controller.IProjectController
	StrategyController controller.IStrategyController
	FundingController  controller.IFundingController
	TaxonomyController controller.ITaxonomyController
	HealthController   controller.IHealthController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
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

	// 3. AI Providers
	embeddingProvider, err := embedding.NewProvider(
		cfg.Ai.EmbeddingProvider,
		cfg.Ai.GeminiApiKey,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.EmbeddingModel,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize Embedding Provider: %v", err)
	}
	log.Printf("[INFO] Using Embedding Provider: %s", cfg.Ai.EmbeddingProvider)

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.OpenRouterApiKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// Matching engine searches the catalog chunks directly, no transaction needed.
	chunkRepo := implementation.NewDocumentChunkRepository(db)
	matchEngine := matcher.NewEngineWithThresholds(
		embeddingProvider,
		chunkRepo,
		cfg.Analysis.TopK,
		cfg.Analysis.ExistingThreshold,
		cfg.Analysis.DevelopThreshold,
	)
	ideaCategorizer := categorizer.NewCategorizer(llmProvider)
	analysisGuard := memory.NewAnalysisGuard()

	// 4. Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
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
	voteCache := store.NewVoteCache(rdb)

	// 5. Services
	publisherService := service.NewPublisherService(cfg.App.AnalyzeTopic, pubSub)

	authService := service.NewAuthService(uowFactory)
	ideaService := service.NewIdeaService(
		uowFactory,
		publisherService,
		matchEngine,
		ideaCategorizer,
		analysisGuard,
		voteCache,
		emailService,
		natsPub,
		sysLogger,
	)
	documentService := service.NewDocumentService(
		uowFactory,
		embeddingProvider,
		natsPub,
		sysLogger,
	)
	analysisService := service.NewAnalysisService(uowFactory)
	projectService := service.NewProjectService(uowFactory)
	strategyService := service.NewStrategyService(uowFactory)
	fundingService := service.NewFundingService(uowFactory)
	taxonomyService := service.NewTaxonomyService(uowFactory)

	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.AnalyzeTopic,
		ideaService,
	)

	// 6. Controllers
	return &Container{
		AuthController:     controller.NewAuthController(authService),
		IdeaController:     controller.NewIdeaController(ideaService),
		DocumentController: controller.NewDocumentController(documentService),
		AnalysisController: controller.NewAnalysisController(analysisService),
		ProjectController:  controller.NewProjectController(projectService),
		StrategyController: controller.NewStrategyController(strategyService),
		FundingController:  controller.NewFundingController(fundingService),
		TaxonomyController: controller.NewTaxonomyController(taxonomyService),
		HealthController:   controller.NewHealthController(db),

		ConsumerService: consumerService,
	}
}
