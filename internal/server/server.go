package server

import (
	"log"
	"time"

	"wp-troubleshooting-be/internal/bootstrap"
	"wp-troubleshooting-be/internal/config"
	"wp-troubleshooting-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	// Initialize Fiber App
	app := fiber.New(fiber.Config{
		BodyLimit: 1 * 1024 * 1024, // 1MB, queries are small
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type, Authorization",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	app.Use(recover.New())
	app.Use(serverutils.RequestLoggerMiddleware(container.Logger))
	app.Use(serverutils.ErrorHandlerMiddleware(container.Logger, cfg.App.Environment == "production"))

	// Routes
	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("✅ Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	c.TroubleshootController.RegisterRoutes(api)

	// Service-level probes and description document
	app.Get("/health", healthHandler)
	app.Get("/", rootHandler)

	// 404 for everything else
	app.Use(notFoundHandler)
}

func healthHandler(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"service":   "WordPress Plugin Troubleshooting RAG System",
		"status":    "healthy",
		"version":   "1.0.0",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"endpoints": []string{
			"POST /api/wordpress/troubleshoot",
			"GET /api/wordpress/health",
		},
	})
}

func rootHandler(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"message":     "WordPress Plugin Troubleshooting RAG API",
		"version":     "1.0.0",
		"description": "AI-powered WordPress plugin troubleshooting using RAG",
		"documentation": fiber.Map{
			"troubleshoot": "POST /api/wordpress/troubleshoot",
			"health":       "GET /health",
			"example": fiber.Map{
				"endpoint": "/api/wordpress/troubleshoot",
				"method":   "POST",
				"body": fiber.Map{
					"naturalLanguageQuery": "My WooCommerce orders are not syncing to Mailchimp",
				},
			},
		},
	})
}

func notFoundHandler(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": "Endpoint not found",
		"availableEndpoints": []string{
			"GET /",
			"GET /health",
			"POST /api/wordpress/troubleshoot",
			"GET /api/wordpress/health",
		},
	})
}
