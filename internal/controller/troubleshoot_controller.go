// FILE: internal/controller/troubleshoot_controller.go
package controller

import (
	"time"

	"wp-troubleshooting-be/internal/dto"
	"wp-troubleshooting-be/internal/entity"
	"wp-troubleshooting-be/internal/pkg/serverutils"
	"wp-troubleshooting-be/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type ITroubleshootController interface {
	RegisterRoutes(r fiber.Router)
	Troubleshoot(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type troubleshootController struct {
	service  service.ITroubleshootService
	kb       *entity.KnowledgeBase
	validate *validator.Validate
}

func NewTroubleshootController(svc service.ITroubleshootService, kb *entity.KnowledgeBase) ITroubleshootController {
	return &troubleshootController{
		service:  svc,
		kb:       kb,
		validate: validator.New(),
	}
}

func (c *troubleshootController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/wordpress")
	h.Post("/troubleshoot", c.Troubleshoot)
	h.Get("/health", c.Health)
}

func (c *troubleshootController) Troubleshoot(ctx *fiber.Ctx) error {
	var request dto.TroubleshootRequest
	if err := ctx.BodyParser(&request); err != nil {
		return serverutils.NewClientInputError(
			"WordPress query is not a string: "+err.Error(),
			"Query must be a text string",
		)
	}

	if err := c.validate.Struct(&request); err != nil {
		return serverutils.NewClientInputError(
			"WordPress troubleshooting query not provided",
			"Please provide a troubleshooting question",
		)
	}

	res, err := c.service.Troubleshoot(ctx.Context(), request.NaturalLanguageQuery)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(res))
}

func (c *troubleshootController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"service":   "WordPress Plugin Troubleshooting",
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"knowledgeBase": fiber.Map{
			"articles":  len(c.kb.TroubleshootingArticles),
			"scenarios": len(c.kb.IntegrationScenarios),
		},
	})
}
