package bootstrap

import (
	"log"
	"time"

	"wp-troubleshooting-be/internal/config"
	"wp-troubleshooting-be/internal/constant"
	"wp-troubleshooting-be/internal/controller"
	"wp-troubleshooting-be/internal/entity"
	"wp-troubleshooting-be/internal/pkg/logger"
	"wp-troubleshooting-be/internal/repository/memory"
	"wp-troubleshooting-be/internal/service"
	"wp-troubleshooting-be/pkg/knowledge"
	"wp-troubleshooting-be/pkg/llm/factory"
	"wp-troubleshooting-be/pkg/rag/clarify"
	"wp-troubleshooting-be/pkg/rag/response"
	"wp-troubleshooting-be/pkg/rag/solution"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type Container struct {
	// Controllers
	TroubleshootController controller.ITroubleshootController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Shared Facades
	Logger logger.ILogger
}

func NewContainer(kb *entity.KnowledgeBase, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. LLM Provider
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.OpenAI,
	)
	if err != nil {
		log.Panicf("Unable to initialize LLM provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Domain Components
	retrievalCache := memory.NewRetrievalCache()
	retriever := knowledge.NewRetriever(kb, retrievalCache, sysLogger)
	clarifyGenerator := clarify.NewGenerator(llmProvider, sysLogger)
	solutionGenerator := solution.NewGenerator(llmProvider, sysLogger)
	composer := response.NewComposer()

	// 5. Services
	troubleshootService := service.NewTroubleshootService(
		retriever,
		clarifyGenerator,
		solutionGenerator,
		composer,
		pubSub,
		sysLogger,
		time.Duration(cfg.Ai.TimeoutSeconds)*time.Second,
	)
	consumerService := service.NewConsumerService(pubSub, constant.TroubleshootCompletedTopic, sysLogger)

	// 6. Controllers
	troubleshootController := controller.NewTroubleshootController(troubleshootService, kb)

	return &Container{
		TroubleshootController: troubleshootController,
		ConsumerService:        consumerService,
		Logger:                 sysLogger,
	}
}
