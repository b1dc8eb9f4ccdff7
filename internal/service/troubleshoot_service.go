// FILE: internal/service/troubleshoot_service.go
package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"wp-troubleshooting-be/internal/constant"
	"wp-troubleshooting-be/internal/dto"
	"wp-troubleshooting-be/internal/pkg/logger"
	"wp-troubleshooting-be/internal/pkg/serverutils"
	"wp-troubleshooting-be/pkg/analyzer"
	"wp-troubleshooting-be/pkg/events"
	"wp-troubleshooting-be/pkg/knowledge"
	"wp-troubleshooting-be/pkg/rag/clarify"
	"wp-troubleshooting-be/pkg/rag/response"
	"wp-troubleshooting-be/pkg/rag/solution"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// ITroubleshootService runs the full troubleshooting pipeline for one query.
type ITroubleshootService interface {
	Troubleshoot(ctx context.Context, naturalLanguageQuery string) (*dto.TroubleshootResponse, error)
}

// troubleshootService sequences analyze -> assess -> (retrieve, generate)
// -> compose. The vague branch short-circuits retrieval and solution
// generation entirely; the solution LLM is never even contacted there.
type troubleshootService struct {
	retriever         *knowledge.Retriever
	clarifyGenerator  *clarify.Generator
	solutionGenerator *solution.Generator
	composer          *response.Composer
	pubSub            *gochannel.GoChannel
	logger            logger.ILogger
	llmTimeout        time.Duration
}

func NewTroubleshootService(
	retriever *knowledge.Retriever,
	clarifyGenerator *clarify.Generator,
	solutionGenerator *solution.Generator,
	composer *response.Composer,
	pubSub *gochannel.GoChannel,
	log logger.ILogger,
	llmTimeout time.Duration,
) ITroubleshootService {
	return &troubleshootService{
		retriever:         retriever,
		clarifyGenerator:  clarifyGenerator,
		solutionGenerator: solutionGenerator,
		composer:          composer,
		pubSub:            pubSub,
		logger:            log,
		llmTimeout:        llmTimeout,
	}
}

func (s *troubleshootService) Troubleshoot(ctx context.Context, naturalLanguageQuery string) (*dto.TroubleshootResponse, error) {
	start := time.Now()

	// 1. Analyze the query
	if strings.TrimSpace(naturalLanguageQuery) == "" {
		return nil, serverutils.NewClientInputError(
			"WordPress troubleshooting query not provided",
			"Please provide a troubleshooting question",
		)
	}

	analysis, err := analyzer.Analyze(naturalLanguageQuery)
	if err != nil {
		return nil, serverutils.NewClientInputError(err.Error(), "Query must be a text string")
	}

	s.logger.Info("pipeline", "Query analyzed", map[string]interface{}{
		"plugins":  analysis.DetectedPlugins,
		"problems": analysis.DetectedProblems,
		"urgency":  analysis.UrgencyLevel,
	})

	// 2. Check if clarifying questions are needed
	assessment := analyzer.AssessVagueness(
		analysis.OriginalQuery,
		analysis.DetectedPlugins,
		analysis.DetectedProblems,
	)

	var result *dto.TroubleshootResponse
	if assessment.IsVague {
		result = s.runClarificationBranch(ctx, analysis, assessment)
	} else {
		result, err = s.runSolutionBranch(ctx, analysis, start)
		if err != nil {
			return nil, err
		}
	}

	// 3. Fire-and-forget analytics event
	s.publishCompleted(result, analysis, time.Since(start))

	return result, nil
}

// runClarificationBranch skips retrieval and solution generation: the only
// external call is the clarify generator, and that one recovers locally.
func (s *troubleshootService) runClarificationBranch(
	ctx context.Context,
	analysis *analyzer.Result,
	assessment *analyzer.VaguenessAssessment,
) *dto.TroubleshootResponse {
	s.logger.Info("pipeline", "Query too vague, asking clarifying questions", map[string]interface{}{
		"reasons": assessment.Reasons,
	})

	llmCtx, cancel := context.WithTimeout(ctx, s.llmTimeout)
	defer cancel()

	questions := s.clarifyGenerator.Generate(
		llmCtx,
		analysis.OriginalQuery,
		assessment.Reasons,
		analysis.DetectedPlugins,
		analysis.DetectedProblems,
	)

	return s.composer.ComposeClarification(analysis, assessment, questions)
}

func (s *troubleshootService) runSolutionBranch(
	ctx context.Context,
	analysis *analyzer.Result,
	start time.Time,
) (*dto.TroubleshootResponse, error) {
	results := s.retriever.Retrieve(
		analysis.OriginalQuery,
		analysis.DetectedPlugins,
		analysis.DetectedProblems,
	)

	llmCtx, cancel := context.WithTimeout(ctx, s.llmTimeout)
	defer cancel()

	solutionText, err := s.solutionGenerator.Generate(llmCtx, analysis, results)
	if err != nil {
		// Solution generation failure is fatal to the request.
		return nil, serverutils.NewUpstreamError(
			err.Error(),
			"An error occurred while generating the solution",
		)
	}

	return s.composer.ComposeSolution(solutionText, analysis, results, time.Since(start)), nil
}

func (s *troubleshootService) publishCompleted(result *dto.TroubleshootResponse, analysis *analyzer.Result, elapsed time.Duration) {
	if s.pubSub == nil {
		return
	}

	articlesFound := 0
	if result.KnowledgeBase != nil {
		articlesFound = result.KnowledgeBase.TotalArticlesFound
	}

	event := events.NewTroubleshootCompleted(
		result.Metadata.ResponseType,
		analysis.UrgencyLevel,
		analysis.DetectedPlugins,
		analysis.DetectedProblems,
		articlesFound,
		elapsed,
	)

	payload, err := json.Marshal(map[string]interface{}{
		"type":        event.EventType(),
		"data":        event.Payload(),
		"occurred_at": event.Timestamp(),
	})
	if err != nil {
		s.logger.Warn("pipeline", "Failed to marshal analytics event", map[string]interface{}{"error": err.Error()})
		return
	}

	if err := s.pubSub.Publish(constant.TroubleshootCompletedTopic, message.NewMessage(watermill.NewUUID(), payload)); err != nil {
		s.logger.Warn("pipeline", "Failed to publish analytics event", map[string]interface{}{"error": err.Error()})
	}
}
