// FILE: pkg/knowledge/retriever.go
// PURPOSE: Lexical scoring of knowledge base entries against query signals

package knowledge

import (
	"sort"
	"strings"

	"wp-troubleshooting-be/internal/entity"
	"wp-troubleshooting-be/internal/pkg/logger"
	"wp-troubleshooting-be/internal/repository/memory"
)

const (
	maxArticles  = 3
	maxScenarios = 2

	// Article scoring weights. These are load-bearing: ranking outcomes
	// must stay reproducible, so change them only together with the tests.
	weightPluginScenario   = 0.4
	weightPluginTitle      = 0.3
	weightProblemTitle     = 0.3
	weightProblemDesc      = 0.2
	weightSymptomInQuery   = 0.2
	weightQueryTokenInText = 0.1
	minQueryTokenLength    = 3

	// Scenario scoring weights
	weightPluginScenarioName = 0.5
	weightProblemScenario    = 0.3
)

// ScoredArticle pairs an article with its relevance score (> 0).
type ScoredArticle struct {
	Article *entity.TroubleshootingArticle
	Score   float64
}

// ScoredScenario pairs an integration scenario with its relevance score (> 0).
type ScoredScenario struct {
	Scenario *entity.IntegrationScenario
	Score    float64
}

// Results is the retriever output: the truncated top results for prompt
// injection plus the pre-truncation totals for observability.
type Results struct {
	Articles            []ScoredArticle
	Scenarios           []ScoredScenario
	TotalArticlesFound  int
	TotalScenariosFound int
}

// Retriever ranks the read-only knowledge base against query signals.
// It holds no mutable state of its own beyond the optional result cache,
// so a single instance serves all requests concurrently.
type Retriever struct {
	kb     *entity.KnowledgeBase
	cache  *memory.RetrievalCache
	logger logger.ILogger
}

// NewRetriever creates a retriever over kb. cache may be nil to disable
// memoization (handy in tests).
func NewRetriever(kb *entity.KnowledgeBase, cache *memory.RetrievalCache, log logger.ILogger) *Retriever {
	if kb == nil {
		kb = Empty()
	}
	return &Retriever{
		kb:     kb,
		cache:  cache,
		logger: log,
	}
}

// Retrieve scores every article and scenario, drops entries with score <= 0,
// sorts descending (ties keep knowledge-base order) and truncates to the
// top 3 articles / top 2 scenarios.
func (r *Retriever) Retrieve(query string, detectedPlugins, detectedProblems []string) *Results {
	cacheKey := buildCacheKey(query, detectedPlugins, detectedProblems)
	if r.cache != nil {
		if cached, found := r.cache.Get(cacheKey); found {
			if results, ok := cached.(*Results); ok {
				return results
			}
		}
	}

	articles := r.scoreArticles(query, detectedPlugins, detectedProblems)
	scenarios := r.scoreScenarios(detectedPlugins, detectedProblems)

	results := &Results{
		TotalArticlesFound:  len(articles),
		TotalScenariosFound: len(scenarios),
	}

	if len(articles) > maxArticles {
		articles = articles[:maxArticles]
	}
	if len(scenarios) > maxScenarios {
		scenarios = scenarios[:maxScenarios]
	}
	results.Articles = articles
	results.Scenarios = scenarios

	if r.logger != nil {
		r.logger.Debug("retriever", "Knowledge base search complete", map[string]interface{}{
			"articles_found":  results.TotalArticlesFound,
			"scenarios_found": results.TotalScenariosFound,
		})
	}

	if r.cache != nil {
		r.cache.Save(cacheKey, results)
	}
	return results
}

func (r *Retriever) scoreArticles(query string, detectedPlugins, detectedProblems []string) []ScoredArticle {
	queryLower := strings.ToLower(query)
	queryTokens := longTokens(queryLower)

	scored := make([]ScoredArticle, 0)
	for i := range r.kb.TroubleshootingArticles {
		article := &r.kb.TroubleshootingArticles[i]
		score := scoreArticle(article, queryLower, queryTokens, detectedPlugins, detectedProblems)
		if score > 0 {
			scored = append(scored, ScoredArticle{Article: article, Score: score})
		}
	}

	// Stable keeps knowledge-base order for equal scores.
	sort.SliceStable(scored, func(a, b int) bool {
		return scored[a].Score > scored[b].Score
	})
	return scored
}

func scoreArticle(
	article *entity.TroubleshootingArticle,
	queryLower string,
	queryTokens []string,
	detectedPlugins, detectedProblems []string,
) float64 {
	score := 0.0

	titleLower := strings.ToLower(article.Title)
	scenarioLower := strings.ToLower(article.Scenario)
	descriptionLower := strings.ToLower(article.ProblemDescription)

	for _, plugin := range detectedPlugins {
		pluginKey := strings.ReplaceAll(strings.ToLower(plugin), " ", "_")
		if strings.Contains(scenarioLower, pluginKey) {
			score += weightPluginScenario
		}
		if strings.Contains(titleLower, strings.ToLower(plugin)) {
			score += weightPluginTitle
		}
	}

	for _, problem := range detectedProblems {
		problemKeyword := strings.ReplaceAll(problem, "_", " ")
		if strings.Contains(titleLower, problemKeyword) {
			score += weightProblemTitle
		}
		if strings.Contains(descriptionLower, problemKeyword) {
			score += weightProblemDesc
		}
	}

	for _, symptom := range article.Symptoms {
		if strings.Contains(queryLower, strings.ToLower(symptom)) {
			score += weightSymptomInQuery
		}
	}

	articleText := strings.ToLower(strings.Join([]string{
		article.Title,
		article.ProblemDescription,
		strings.Join(article.Symptoms, " "),
		strings.Join(article.SolutionSteps, " "),
	}, " "))
	for _, token := range queryTokens {
		if strings.Contains(articleText, token) {
			score += weightQueryTokenInText
		}
	}

	return score
}

func (r *Retriever) scoreScenarios(detectedPlugins, detectedProblems []string) []ScoredScenario {
	scored := make([]ScoredScenario, 0)
	for i := range r.kb.IntegrationScenarios {
		scenario := &r.kb.IntegrationScenarios[i]
		score := scoreScenario(scenario, detectedPlugins, detectedProblems)
		if score > 0 {
			scored = append(scored, ScoredScenario{Scenario: scenario, Score: score})
		}
	}

	sort.SliceStable(scored, func(a, b int) bool {
		return scored[a].Score > scored[b].Score
	})
	return scored
}

func scoreScenario(scenario *entity.IntegrationScenario, detectedPlugins, detectedProblems []string) float64 {
	score := 0.0

	nameLower := strings.ToLower(scenario.Name)
	for _, plugin := range detectedPlugins {
		if strings.Contains(nameLower, strings.ToLower(plugin)) {
			score += weightPluginScenarioName
		}
	}

	scenarioText := strings.ToLower(strings.Join([]string{
		scenario.Description,
		strings.Join(scenario.CommonSymptoms, " "),
		strings.Join(scenario.TypicalCauses, " "),
	}, " "))
	for _, problem := range detectedProblems {
		problemText := strings.ReplaceAll(problem, "_", " ")
		if strings.Contains(scenarioText, problemText) {
			score += weightProblemScenario
		}
	}

	return score
}

// longTokens returns whitespace-delimited tokens longer than three
// characters. Short words ("the", "is") carry no ranking signal.
func longTokens(queryLower string) []string {
	tokens := make([]string, 0)
	for _, word := range strings.Fields(queryLower) {
		if len(word) > minQueryTokenLength {
			tokens = append(tokens, word)
		}
	}
	return tokens
}

func buildCacheKey(query string, plugins, problems []string) string {
	return strings.ToLower(strings.TrimSpace(query)) + "|" +
		strings.Join(plugins, ",") + "|" +
		strings.Join(problems, ",")
}
