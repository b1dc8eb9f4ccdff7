// FILE: pkg/rag/solution/generator.go
// PURPOSE: Generate the troubleshooting solution from retrieved context

package solution

import (
	"context"
	"fmt"
	"strings"

	"wp-troubleshooting-be/internal/constant"
	"wp-troubleshooting-be/internal/pkg/logger"
	"wp-troubleshooting-be/pkg/analyzer"
	"wp-troubleshooting-be/pkg/knowledge"
	"wp-troubleshooting-be/pkg/llm"
	"wp-troubleshooting-be/pkg/rag/prompt"
)

// Generator produces the solution text. Unlike the clarify generator this
// call is load-bearing: a failure here fails the whole request.
type Generator struct {
	llmProvider llm.LLMProvider
	logger      logger.ILogger
}

func NewGenerator(llmProvider llm.LLMProvider, log logger.ILogger) *Generator {
	return &Generator{
		llmProvider: llmProvider,
		logger:      log,
	}
}

// Generate assembles the emergency or standard prompt from the analysis and
// retrieval results and asks the LLM for the solution.
func (g *Generator) Generate(
	ctx context.Context,
	analysis *analyzer.Result,
	results *knowledge.Results,
) (string, error) {
	kbContext := prompt.NewContextBuilder(results).Build()

	var promptText string
	if analysis.IsEmergency() {
		promptText = prompt.BuildEmergencyPrompt(analysis.OriginalQuery, kbContext)
	} else {
		promptText = prompt.BuildStandardPrompt(
			analysis.OriginalQuery,
			kbContext,
			analysis.DetectedPlugins,
			analysis.DetectedProblems,
			analysis.UrgencyLevel,
		)
	}

	g.logger.Debug("solution", "Calling LLM for solution", map[string]interface{}{
		"emergency":      analysis.IsEmergency(),
		"context_length": len(kbContext),
	})

	// Lower temperature for more consistent troubleshooting advice.
	response, err := g.llmProvider.Chat(ctx, []llm.Message{
		{Role: constant.ChatMessageRoleSystem, Content: constant.SolutionSystemPrompt},
		{Role: constant.ChatMessageRoleUser, Content: promptText},
	}, llm.WithTemperature(0.3), llm.WithMaxTokens(1000))
	if err != nil {
		return "", fmt.Errorf("solution generation failed: %w", err)
	}

	return strings.TrimSpace(response), nil
}
