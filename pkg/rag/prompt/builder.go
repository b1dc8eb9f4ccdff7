package prompt

import (
	"fmt"
	"strings"

	"wp-troubleshooting-be/internal/constant"
	"wp-troubleshooting-be/pkg/knowledge"
)

// Snippet caps keep the prompt compact; the LLM gets the strongest signals,
// not the whole article.
const (
	maxSymptomsPerArticle  = 3
	maxStepsPerArticle     = 5
	maxSymptomsPerScenario = 3
	maxCausesPerScenario   = 3
)

// ContextBuilder turns retrieval results into the knowledge-base context
// block injected into the solution prompt.
type ContextBuilder struct {
	results *knowledge.Results
}

func NewContextBuilder(results *knowledge.Results) *ContextBuilder {
	return &ContextBuilder{results: results}
}

// Build renders the matched articles and scenarios as plain text sections.
func (b *ContextBuilder) Build() string {
	var context strings.Builder

	b.writeArticles(&context)
	b.writeScenarios(&context)

	return context.String()
}

func (b *ContextBuilder) writeArticles(context *strings.Builder) {
	if b.results == nil || len(b.results.Articles) == 0 {
		return
	}

	context.WriteString("RELEVANT TROUBLESHOOTING ARTICLES:")
	for i, result := range b.results.Articles {
		article := result.Article
		context.WriteString(fmt.Sprintf("\n\nArticle %d: %s", i+1, article.Title))
		context.WriteString(fmt.Sprintf("\nProblem: %s", article.ProblemDescription))
		context.WriteString(fmt.Sprintf("\nSymptoms: %s", strings.Join(head(article.Symptoms, maxSymptomsPerArticle), ", ")))
		context.WriteString(fmt.Sprintf("\nSolutions: %s", strings.Join(head(article.SolutionSteps, maxStepsPerArticle), " | ")))
		if len(article.ErrorCodes) > 0 {
			context.WriteString(fmt.Sprintf("\nCommon Errors: %s", strings.Join(article.ErrorCodes, ", ")))
		}
	}
}

func (b *ContextBuilder) writeScenarios(context *strings.Builder) {
	if b.results == nil || len(b.results.Scenarios) == 0 {
		return
	}

	if context.Len() > 0 {
		context.WriteString("\n\n")
	}
	context.WriteString("RELEVANT INTEGRATION SCENARIOS:")
	for i, result := range b.results.Scenarios {
		scenario := result.Scenario
		context.WriteString(fmt.Sprintf("\n\nScenario %d: %s", i+1, scenario.Name))
		context.WriteString(fmt.Sprintf("\nDescription: %s", scenario.Description))
		context.WriteString(fmt.Sprintf("\nCommon Symptoms: %s", strings.Join(head(scenario.CommonSymptoms, maxSymptomsPerScenario), ", ")))
		context.WriteString(fmt.Sprintf("\nTypical Causes: %s", strings.Join(head(scenario.TypicalCauses, maxCausesPerScenario), ", ")))
	}
}

// BuildEmergencyPrompt renders the emergency-response template.
func BuildEmergencyPrompt(query, context string) string {
	return fmt.Sprintf(constant.EmergencyPromptTemplate, query, context)
}

// BuildStandardPrompt renders the standard troubleshooting template.
func BuildStandardPrompt(query, context string, detectedPlugins, detectedProblems []string, urgencyLevel string) string {
	return fmt.Sprintf(
		constant.StandardPromptTemplate,
		query,
		joinOrFallback(detectedPlugins, "Not specified"),
		joinOrFallback(detectedProblems, "General troubleshooting"),
		urgencyLevel,
		context,
	)
}

// BuildClarifyPrompt renders the clarifying-questions template.
func BuildClarifyPrompt(query string, vaguenessReasons, detectedPlugins, detectedProblems []string) string {
	return fmt.Sprintf(
		constant.ClarifyPromptTemplate,
		query,
		strings.Join(vaguenessReasons, ", "),
		joinOrFallback(detectedPlugins, "None"),
		joinOrFallback(detectedProblems, "None"),
	)
}

func joinOrFallback(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, ", ")
}

func head(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
