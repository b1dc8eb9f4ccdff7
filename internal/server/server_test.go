package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHandlerApp() *fiber.App {
	app := fiber.New()
	app.Get("/health", healthHandler)
	app.Get("/", rootHandler)
	app.Use(notFoundHandler)
	return app
}

func getJSON(t *testing.T, app *fiber.App, path string) (int, map[string]interface{}) {
	t.Helper()
	res, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return res.StatusCode, body
}

func TestHealthHandler(t *testing.T) {
	status, body := getJSON(t, newHandlerApp(), "/health")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "healthy", body["status"])
	assert.NotEmpty(t, body["timestamp"])
	assert.Contains(t, body["endpoints"], "POST /api/wordpress/troubleshoot")
}

func TestRootHandler(t *testing.T) {
	status, body := getJSON(t, newHandlerApp(), "/")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "1.0.0", body["version"])

	docs, ok := body["documentation"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "POST /api/wordpress/troubleshoot", docs["troubleshoot"])
}

func TestNotFoundHandler(t *testing.T) {
	status, body := getJSON(t, newHandlerApp(), "/nope")

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Endpoint not found", body["error"])
	assert.Contains(t, body["availableEndpoints"], "GET /health")
}
