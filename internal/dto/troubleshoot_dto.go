package dto

type TroubleshootRequest struct {
	NaturalLanguageQuery string `json:"naturalLanguageQuery" validate:"required"`
}

// AnalysisBlock summarizes what the query analyzer extracted.
type AnalysisBlock struct {
	DetectedPlugins  []string `json:"detectedPlugins"`
	DetectedProblems []string `json:"detectedProblems"`
	UrgencyLevel     string   `json:"urgencyLevel"`
	IsEmergency      bool     `json:"isEmergency"`
	VaguenessReasons []string `json:"vaguenessReasons,omitempty"`
}

// KnowledgeBaseUsage reports how much of the knowledge base fed the answer.
type KnowledgeBaseUsage struct {
	ArticlesConsulted   int `json:"articlesConsulted"`
	ScenariosMatched    int `json:"scenariosMatched"`
	TotalArticlesFound  int `json:"totalArticlesFound"`
	TotalScenariosFound int `json:"totalScenariosFound"`
}

type RelatedArticle struct {
	Title          string `json:"title"`
	RelevanceScore string `json:"relevanceScore"`
	Category       string `json:"category"`
	Scenario       string `json:"scenario"`
}

type AdditionalResource struct {
	Name        string `json:"name"`
	Url         string `json:"url"`
	Description string `json:"description"`
}

type ResponseMetadata struct {
	Timestamp      string `json:"timestamp"`
	ProcessingTime string `json:"processingTime,omitempty"`
	ResponseType   string `json:"responseType"`
	ResponseId     string `json:"responseId"`
}

type ClarifyingQuestionsBlock struct {
	Questions     []string `json:"questions"`
	OriginalQuery string   `json:"originalQuery"`
	Suggestions   []string `json:"suggestions"`
}

// TroubleshootResponse is the data payload for both branches: clarification
// (NeedsClarification true, ClarifyingQuestions set) and solution
// (Solution plus the knowledge base blocks set).
type TroubleshootResponse struct {
	NeedsClarification  bool                      `json:"needsClarification"`
	ClarifyingQuestions *ClarifyingQuestionsBlock `json:"clarifyingQuestions,omitempty"`
	Solution            string                    `json:"solution,omitempty"`
	Analysis            AnalysisBlock             `json:"analysis"`
	KnowledgeBase       *KnowledgeBaseUsage       `json:"knowledgeBase,omitempty"`
	RelatedArticles     []RelatedArticle          `json:"relatedArticles,omitempty"`
	QuickActions        []string                  `json:"quickActions,omitempty"`
	AdditionalResources []AdditionalResource      `json:"additionalResources,omitempty"`
	Metadata            ResponseMetadata          `json:"metadata"`
}
