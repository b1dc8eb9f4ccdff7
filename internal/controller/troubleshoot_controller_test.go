package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wp-troubleshooting-be/internal/constant"
	"wp-troubleshooting-be/internal/dto"
	"wp-troubleshooting-be/internal/entity"
	"wp-troubleshooting-be/internal/pkg/logger"
	"wp-troubleshooting-be/internal/pkg/serverutils"
)

// fakeTroubleshootService returns a canned pipeline result.
type fakeTroubleshootService struct {
	response  *dto.TroubleshootResponse
	err       error
	lastQuery string
}

func (f *fakeTroubleshootService) Troubleshoot(ctx context.Context, naturalLanguageQuery string) (*dto.TroubleshootResponse, error) {
	f.lastQuery = naturalLanguageQuery
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

func newTestApp(svc *fakeTroubleshootService, kb *entity.KnowledgeBase) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware(logger.NewNoopLogger(), false))

	api := app.Group("/api")
	NewTroubleshootController(svc, kb).RegisterRoutes(api)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body []byte) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req, -1)
	require.NoError(t, err)
	return res
}

func decodeBody(t *testing.T, res *http.Response) map[string]interface{} {
	t.Helper()
	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestTroubleshootEndpointSuccess(t *testing.T) {
	svc := &fakeTroubleshootService{
		response: &dto.TroubleshootResponse{
			NeedsClarification: false,
			Solution:           "Reconnect the API key.",
			Analysis: dto.AnalysisBlock{
				DetectedPlugins:  []string{"WooCommerce"},
				DetectedProblems: []string{"sync_issue"},
				UrgencyLevel:     constant.UrgencyLow,
			},
			Metadata: dto.ResponseMetadata{ResponseType: constant.ResponseTypeSolution},
		},
	}
	app := newTestApp(svc, &entity.KnowledgeBase{})

	res := postJSON(t, app, "/api/wordpress/troubleshoot",
		[]byte(`{"naturalLanguageQuery": "orders not syncing"}`))

	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "orders not syncing", svc.lastQuery)

	body := decodeBody(t, res)
	assert.Equal(t, true, body["success"])
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Reconnect the API key.", data["solution"])
	assert.Equal(t, false, data["needsClarification"])
}

func TestTroubleshootEndpointMissingQuery(t *testing.T) {
	svc := &fakeTroubleshootService{}
	app := newTestApp(svc, &entity.KnowledgeBase{})

	res := postJSON(t, app, "/api/wordpress/troubleshoot", []byte(`{}`))

	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	body := decodeBody(t, res)
	assert.Equal(t, true, body["error"])

	message, ok := body["message"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Please provide a troubleshooting question", message["err"])
	assert.NotEmpty(t, body["timestamp"])
	// The service must not be reached on validation failure.
	assert.Empty(t, svc.lastQuery)
}

func TestTroubleshootEndpointMalformedBody(t *testing.T) {
	app := newTestApp(&fakeTroubleshootService{}, &entity.KnowledgeBase{})

	res := postJSON(t, app, "/api/wordpress/troubleshoot", []byte(`{"naturalLanguageQuery": 42}`))

	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	body := decodeBody(t, res)
	message, ok := body["message"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Query must be a text string", message["err"])
}

func TestTroubleshootEndpointServiceError(t *testing.T) {
	svc := &fakeTroubleshootService{
		err: serverutils.NewUpstreamError("model overloaded", "An error occurred while generating the solution"),
	}
	app := newTestApp(svc, &entity.KnowledgeBase{})

	res := postJSON(t, app, "/api/wordpress/troubleshoot",
		[]byte(`{"naturalLanguageQuery": "orders not syncing"}`))

	require.Equal(t, http.StatusInternalServerError, res.StatusCode)
	body := decodeBody(t, res)
	message, ok := body["message"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "An error occurred while generating the solution", message["err"])
	// Non-production mode surfaces the operator log line.
	assert.Equal(t, "model overloaded", body["log"])
}

func TestHealthEndpoint(t *testing.T) {
	kb := &entity.KnowledgeBase{
		TroubleshootingArticles: make([]entity.TroubleshootingArticle, 8),
		IntegrationScenarios:    make([]entity.IntegrationScenario, 3),
	}
	app := newTestApp(&fakeTroubleshootService{}, kb)

	req := httptest.NewRequest(http.MethodGet, "/api/wordpress/health", nil)
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	body := decodeBody(t, res)
	assert.Equal(t, "healthy", body["status"])

	kbInfo, ok := body["knowledgeBase"].(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 8, kbInfo["articles"])
	assert.EqualValues(t, 3, kbInfo["scenarios"])
}
