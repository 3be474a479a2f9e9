package handler

import (
	"mtg-cards/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

const (
	serviceProject = "MTG Card Database"
	serviceVersion = "0.1.0"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) RegisterRoutes(app *fiber.App) {
	if app == nil {
		return
	}

	app.Get("/health", h.Health)
	app.Get("/", h.Info)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *HealthHandler) Info(c fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Welcome to MTG Card Database API",
		"project": serviceProject,
		"version": serviceVersion,
	})
}
