package handler

import (
	"net/url"

	"mtg-cards/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type PrintingsHandler struct {
	uc usecase.PrintingsUsecase
}

func NewPrintingsHandler(uc usecase.PrintingsUsecase) *PrintingsHandler {
	return &PrintingsHandler{uc: uc}
}

func (h *PrintingsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/cards/:name/printings", h.ListPrintings)
}

func (h *PrintingsHandler) ListPrintings(c fiber.Ctx) error {
	name := c.Params("name")
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}

	payload, err := h.uc.ListPrintings(c.Context(), name)
	if err != nil {
		return mapUpstreamError(err)
	}

	return c.Status(fiber.StatusOK).JSON(payload)
}
