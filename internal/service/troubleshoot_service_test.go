package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wp-troubleshooting-be/internal/constant"
	"wp-troubleshooting-be/internal/entity"
	"wp-troubleshooting-be/internal/pkg/logger"
	"wp-troubleshooting-be/internal/pkg/serverutils"
	"wp-troubleshooting-be/pkg/knowledge"
	"wp-troubleshooting-be/pkg/llm"
	"wp-troubleshooting-be/pkg/rag/clarify"
	"wp-troubleshooting-be/pkg/rag/response"
	"wp-troubleshooting-be/pkg/rag/solution"
)

// scriptedProvider returns a fixed response or error and counts calls.
type scriptedProvider struct {
	response string
	err      error
	calls    int
}

func (p *scriptedProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	p.calls++
	if p.err != nil {
		return "", p.err
	}
	return p.response, nil
}

func (p *scriptedProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return p.Chat(ctx, nil, options...)
}

func pipelineKB() *entity.KnowledgeBase {
	return &entity.KnowledgeBase{
		TroubleshootingArticles: []entity.TroubleshootingArticle{
			{
				ArticleId:          "kb_001",
				Title:              "WooCommerce sync issue with Mailchimp",
				Category:           "sync",
				Scenario:           "woocommerce_mailchimp",
				ProblemDescription: "orders stop flowing into the sync",
				Symptoms:           []string{"orders not syncing"},
				SolutionSteps:      []string{"Check the API key"},
			},
		},
	}
}

func newTestService(clarifyProvider, solutionProvider llm.LLMProvider) ITroubleshootService {
	log := logger.NewNoopLogger()
	return NewTroubleshootService(
		knowledge.NewRetriever(pipelineKB(), nil, log),
		clarify.NewGenerator(clarifyProvider, log),
		solution.NewGenerator(solutionProvider, log),
		response.NewComposer(),
		nil, // analytics pub/sub disabled in tests
		log,
		5*time.Second,
	)
}

func TestTroubleshootSolutionPath(t *testing.T) {
	solutionProvider := &scriptedProvider{response: "1. Reconnect the Mailchimp API key."}
	svc := newTestService(&scriptedProvider{}, solutionProvider)

	res, err := svc.Troubleshoot(context.Background(), "My WooCommerce orders aren't syncing to Mailchimp")
	require.NoError(t, err)

	assert.False(t, res.NeedsClarification)
	assert.Equal(t, "1. Reconnect the Mailchimp API key.", res.Solution)
	assert.Equal(t, []string{"WooCommerce", "Mailchimp"}, res.Analysis.DetectedPlugins)
	assert.Contains(t, res.Analysis.DetectedProblems, "sync_issue")
	// No high or medium urgency keyword appears in this phrasing.
	assert.Equal(t, constant.UrgencyLow, res.Analysis.UrgencyLevel)
	require.NotNil(t, res.KnowledgeBase)
	assert.Equal(t, 1, res.KnowledgeBase.ArticlesConsulted)
	assert.Equal(t, constant.ResponseTypeSolution, res.Metadata.ResponseType)
	assert.Equal(t, 1, solutionProvider.calls)
}

func TestTroubleshootVagueQuerySkipsSolutionLLM(t *testing.T) {
	clarifyProvider := &scriptedProvider{response: "Which plugin is misbehaving?\nWhat changed recently?"}
	solutionProvider := &scriptedProvider{response: "must never be used"}
	svc := newTestService(clarifyProvider, solutionProvider)

	res, err := svc.Troubleshoot(context.Background(), "help")
	require.NoError(t, err)

	assert.True(t, res.NeedsClarification)
	require.NotNil(t, res.ClarifyingQuestions)
	assert.Equal(t, "help", res.ClarifyingQuestions.OriginalQuery)
	assert.Len(t, res.ClarifyingQuestions.Questions, 2)
	assert.False(t, res.Analysis.IsEmergency)
	assert.Equal(t,
		[]string{constant.VaguenessReasonTooShort, constant.VaguenessReasonGeneric},
		res.Analysis.VaguenessReasons,
	)
	assert.Equal(t, constant.ResponseTypeClarifying, res.Metadata.ResponseType)

	// The vague branch must never touch the solution generator.
	assert.Equal(t, 0, solutionProvider.calls)
	assert.Equal(t, 1, clarifyProvider.calls)
}

func TestTroubleshootVagueQueryWithDeadLLMStillAnswers(t *testing.T) {
	clarifyProvider := &scriptedProvider{err: errors.New("connection refused")}
	svc := newTestService(clarifyProvider, &scriptedProvider{})

	res, err := svc.Troubleshoot(context.Background(), "help")
	require.NoError(t, err)

	assert.True(t, res.NeedsClarification)
	assert.Equal(t, constant.FallbackClarifyingQuestions, res.ClarifyingQuestions.Questions)
}

func TestTroubleshootBlankQuery(t *testing.T) {
	svc := newTestService(&scriptedProvider{}, &scriptedProvider{})

	for _, query := range []string{"", "   "} {
		_, err := svc.Troubleshoot(context.Background(), query)
		require.Error(t, err)

		var serverErr *serverutils.ServerError
		require.ErrorAs(t, err, &serverErr)
		assert.Equal(t, 400, serverErr.Status)
		assert.Equal(t, "Please provide a troubleshooting question", serverErr.Message)
	}
}

func TestTroubleshootSolutionLLMFailure(t *testing.T) {
	svc := newTestService(&scriptedProvider{}, &scriptedProvider{err: errors.New("model overloaded")})

	_, err := svc.Troubleshoot(context.Background(), "My WooCommerce orders aren't syncing to Mailchimp")
	require.Error(t, err)

	var serverErr *serverutils.ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, 500, serverErr.Status)
	assert.Equal(t, "An error occurred while generating the solution", serverErr.Message)
}

func TestTroubleshootEmergencyQuery(t *testing.T) {
	solutionProvider := &scriptedProvider{response: "🚨 EMERGENCY STEPS: restore your backup."}
	svc := newTestService(&scriptedProvider{}, solutionProvider)

	res, err := svc.Troubleshoot(context.Background(), "White screen of death after plugin update")
	require.NoError(t, err)

	assert.True(t, res.Analysis.IsEmergency)
	assert.Equal(t, constant.UrgencyEmergency, res.Analysis.UrgencyLevel)
	require.Len(t, res.QuickActions, 3)
}
