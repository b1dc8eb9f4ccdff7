// FILE: pkg/rag/clarify/generator.go
// PURPOSE: Produce clarifying questions for vague queries, with local fallback

package clarify

import (
	"context"
	"strings"

	"wp-troubleshooting-be/internal/constant"
	"wp-troubleshooting-be/internal/pkg/logger"
	"wp-troubleshooting-be/pkg/llm"
	"wp-troubleshooting-be/pkg/rag/prompt"
)

const maxQuestions = 5

// Generator asks the LLM for 3-5 clarifying questions. This is the only
// external call whose failure is recovered locally: a vague query always
// gets questions back, fixed ones if the LLM is down.
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

// Generate returns the ordered question list. It never returns an error.
func (g *Generator) Generate(
	ctx context.Context,
	query string,
	vaguenessReasons, detectedPlugins, detectedProblems []string,
) []string {
	promptText := prompt.BuildClarifyPrompt(query, vaguenessReasons, detectedPlugins, detectedProblems)

	response, err := g.llmProvider.Chat(ctx, []llm.Message{
		{Role: constant.ChatMessageRoleSystem, Content: constant.ClarifySystemPrompt},
		{Role: constant.ChatMessageRoleUser, Content: promptText},
	}, llm.WithTemperature(0.7), llm.WithMaxTokens(300))
	if err != nil {
		g.logger.Warn("clarify", "Falling back to fixed clarifying questions", map[string]interface{}{
			"error": err.Error(),
		})
		return constant.FallbackClarifyingQuestions
	}

	questions := parseQuestions(response)
	if len(questions) == 0 {
		g.logger.Warn("clarify", "LLM returned no usable questions, using fallback", nil)
		return constant.FallbackClarifyingQuestions
	}
	return questions
}

// parseQuestions splits the response into non-empty lines, capped at five.
func parseQuestions(response string) []string {
	questions := make([]string, 0)
	for _, line := range strings.Split(strings.TrimSpace(response), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		questions = append(questions, line)
		if len(questions) == maxQuestions {
			break
		}
	}
	return questions
}
