// FILE: pkg/rag/response/composer.go
// PURPOSE: Assemble the final clarification or solution payloads

package response

import (
	"fmt"
	"strings"
	"time"

	"wp-troubleshooting-be/internal/constant"
	"wp-troubleshooting-be/internal/dto"
	"wp-troubleshooting-be/pkg/analyzer"
	"wp-troubleshooting-be/pkg/knowledge"

	"github.com/google/uuid"
)

// Composer turns pipeline results into response payloads. It is stateless;
// the solution text itself always comes from the caller.
type Composer struct{}

func NewComposer() *Composer {
	return &Composer{}
}

// ComposeClarification builds the clarifying-questions payload. By contract
// a clarification is never framed as an emergency.
func (c *Composer) ComposeClarification(
	analysis *analyzer.Result,
	assessment *analyzer.VaguenessAssessment,
	questions []string,
) *dto.TroubleshootResponse {
	return &dto.TroubleshootResponse{
		NeedsClarification: true,
		ClarifyingQuestions: &dto.ClarifyingQuestionsBlock{
			Questions:     questions,
			OriginalQuery: analysis.OriginalQuery,
			Suggestions:   constant.ClarificationSuggestions,
		},
		Analysis: dto.AnalysisBlock{
			DetectedPlugins:  analysis.DetectedPlugins,
			DetectedProblems: analysis.DetectedProblems,
			UrgencyLevel:     analysis.UrgencyLevel,
			IsEmergency:      false,
			VaguenessReasons: assessment.Reasons,
		},
		Metadata: dto.ResponseMetadata{
			Timestamp:    time.Now().UTC().Format(time.RFC3339),
			ResponseType: constant.ResponseTypeClarifying,
			ResponseId:   generateResponseId(),
		},
	}
}

// ComposeSolution builds the solution payload around the verbatim solution
// text, enriched with quick actions and resource links.
func (c *Composer) ComposeSolution(
	solutionText string,
	analysis *analyzer.Result,
	results *knowledge.Results,
	elapsed time.Duration,
) *dto.TroubleshootResponse {
	relatedArticles := make([]dto.RelatedArticle, 0, len(results.Articles))
	for _, result := range results.Articles {
		relatedArticles = append(relatedArticles, dto.RelatedArticle{
			Title:          result.Article.Title,
			RelevanceScore: fmt.Sprintf("%.2f", result.Score),
			Category:       result.Article.Category,
			Scenario:       result.Article.Scenario,
		})
	}

	return &dto.TroubleshootResponse{
		NeedsClarification: false,
		Solution:           solutionText,
		Analysis: dto.AnalysisBlock{
			DetectedPlugins:  analysis.DetectedPlugins,
			DetectedProblems: analysis.DetectedProblems,
			UrgencyLevel:     analysis.UrgencyLevel,
			IsEmergency:      analysis.IsEmergency(),
		},
		KnowledgeBase: &dto.KnowledgeBaseUsage{
			ArticlesConsulted:   len(results.Articles),
			ScenariosMatched:    len(results.Scenarios),
			TotalArticlesFound:  results.TotalArticlesFound,
			TotalScenariosFound: results.TotalScenariosFound,
		},
		RelatedArticles:     relatedArticles,
		QuickActions:        GenerateQuickActions(analysis.DetectedProblems, analysis.UrgencyLevel),
		AdditionalResources: GenerateAdditionalResources(analysis.DetectedPlugins),
		Metadata: dto.ResponseMetadata{
			Timestamp:      time.Now().UTC().Format(time.RFC3339),
			ProcessingTime: fmt.Sprintf("~%.1fs", elapsed.Seconds()),
			ResponseType:   constant.ResponseTypeSolution,
			ResponseId:     generateResponseId(),
		},
	}
}

// GenerateQuickActions picks immediate suggestions by urgency and problem
// type. Emergencies get exactly the three fixed actions and nothing else.
func GenerateQuickActions(detectedProblems []string, urgencyLevel string) []string {
	quickActions := make([]string, 0)

	if urgencyLevel == constant.UrgencyEmergency {
		quickActions = append(quickActions,
			"💾 Check if you have a recent backup available",
			"🔧 Try deactivating all plugins except essential ones",
			"🎨 Switch to a default WordPress theme temporarily",
		)
		return quickActions
	}

	if containsTag(detectedProblems, "sync_issue") {
		quickActions = append(quickActions,
			"🔄 Check if all plugins are up to date",
			"🔑 Verify API keys and connections",
			"⚡ Try manual sync if available",
		)
	}

	if containsTag(detectedProblems, "performance") {
		quickActions = append(quickActions,
			"🧹 Clear all caches (browser and plugin)",
			"🔌 Deactivate non-essential plugins temporarily",
			"📊 Check server resource usage",
		)
	}

	if containsTag(detectedProblems, "payment_issue") {
		quickActions = append(quickActions,
			"🔒 Verify SSL certificate is working",
			"💳 Test with different payment methods",
			"📋 Check payment gateway logs",
		)
	}

	if containsTag(detectedProblems, "security_lockout") {
		quickActions = append(quickActions,
			"🌐 Try accessing from a different IP address",
			"📧 Check email for security notifications",
			"🛡️ Contact hosting provider if needed",
		)
	}

	// Default actions if no specific problems detected
	if len(quickActions) == 0 {
		quickActions = append(quickActions,
			"🔄 Update all plugins and themes",
			"💾 Create a backup before making changes",
			"🧪 Test in staging environment if available",
		)
	}

	return quickActions
}

// GenerateAdditionalResources lists plugin-specific diagnostic pages first
// (in detection order), then the two general WordPress resources.
func GenerateAdditionalResources(detectedPlugins []string) []dto.AdditionalResource {
	resources := make([]dto.AdditionalResource, 0)

	for _, plugin := range detectedPlugins {
		switch plugin {
		case "WooCommerce":
			resources = append(resources, dto.AdditionalResource{
				Name:        "WooCommerce System Status",
				Url:         "yoursite.com/wp-admin/admin.php?page=wc-status",
				Description: "Check your store's system status and logs",
			})
		case "Yoast SEO":
			resources = append(resources, dto.AdditionalResource{
				Name:        "Yoast SEO Health Check",
				Url:         "yoursite.com/wp-admin/admin.php?page=wpseo_dashboard",
				Description: "Review SEO health and configuration issues",
			})
		case "Elementor":
			resources = append(resources, dto.AdditionalResource{
				Name:        "Elementor System Info",
				Url:         "yoursite.com/wp-admin/admin.php?page=elementor#tab-system_info",
				Description: "Check Elementor system requirements and compatibility",
			})
		}
	}

	resources = append(resources,
		dto.AdditionalResource{
			Name:        "WordPress Health Check",
			Url:         "yoursite.com/wp-admin/site-health.php",
			Description: "Check your site's overall health and performance",
		},
		dto.AdditionalResource{
			Name:        "Plugin Conflict Tester",
			Url:         "wordpress.org/plugins/health-check/",
			Description: "Safely test for plugin conflicts without affecting visitors",
		},
	)

	return resources
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// generateResponseId builds an opaque per-response token. Uniqueness is the
// only contract; these are not security tokens.
func generateResponseId() string {
	suffix := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("wp_%d_%s", time.Now().UnixMilli(), suffix)
}
