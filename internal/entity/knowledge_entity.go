package entity

// TroubleshootingArticle is a single knowledge base article describing a
// known WordPress plugin problem and how to resolve it.
type TroubleshootingArticle struct {
	ArticleId          string   `json:"article_id"`
	Title              string   `json:"title"`
	Category           string   `json:"category"`
	Scenario           string   `json:"scenario"`
	ProblemDescription string   `json:"problem_description"`
	Symptoms           []string `json:"symptoms"`
	SolutionSteps      []string `json:"solution_steps"`
	ErrorCodes         []string `json:"error_codes,omitempty"`
	CommonErrors       []string `json:"common_errors,omitempty"`
	PreventionTips     []string `json:"prevention_tips,omitempty"`
	ToolsMentioned     []string `json:"tools_mentioned,omitempty"`
	SourceUrl          string   `json:"source_url,omitempty"`
}

// IntegrationScenario describes a known multi-plugin integration and the
// ways it typically breaks.
type IntegrationScenario struct {
	ScenarioId     string   `json:"scenario_id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	CommonSymptoms []string `json:"common_symptoms"`
	TypicalCauses  []string `json:"typical_causes"`
}

type KnowledgeBaseMetadata struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	TotalArticles int      `json:"total_articles"`
	Categories    []string `json:"categories"`
}

// ErrorPattern groups recurring error messages with their usual fixes.
type ErrorPattern struct {
	Description      string   `json:"description"`
	Examples         []string `json:"examples"`
	TypicalSolutions []string `json:"typical_solutions"`
}

// SearchIntentExample pairs a sample user query with the articles a good
// retrieval should surface. Kept for dataset curation, not used at runtime.
type SearchIntentExample struct {
	UserQuery        string   `json:"user_query"`
	Intent           string   `json:"intent"`
	RelevantArticles []string `json:"relevant_articles"`
	ExpectedResponse string   `json:"expected_response"`
}

// KnowledgeBase is the full static troubleshooting dataset. It is loaded
// once at startup and never mutated, so it is safe to share across requests.
type KnowledgeBase struct {
	Metadata                KnowledgeBaseMetadata    `json:"metadata"`
	IntegrationScenarios    []IntegrationScenario    `json:"integration_scenarios"`
	TroubleshootingArticles []TroubleshootingArticle `json:"troubleshooting_articles"`
	CommonErrorPatterns     map[string]ErrorPattern  `json:"common_error_patterns"`
	SearchIntentExamples    []SearchIntentExample    `json:"search_intent_examples"`
}
