package handler

import (
	"errors"
	"strconv"
	"strings"

	"mtg-cards/internal/delivery/http/middleware"
	"mtg-cards/internal/domain/card"
	"mtg-cards/internal/infrastructure/scryfall"
	"mtg-cards/internal/pkg/response"
	"mtg-cards/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SearchHandler struct {
	uc usecase.CardSearchUsecase
}

func NewSearchHandler(uc usecase.CardSearchUsecase) *SearchHandler {
	return &SearchHandler{uc: uc}
}

func (h *SearchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/search")
	grp.Get("/cards", h.SearchCards)
	grp.Get("/filters", h.Filters)
}

func (h *SearchHandler) SearchCards(c fiber.Ctx) error {
	rarity := strings.ToLower(strings.TrimSpace(c.Query("rarity")))
	if rarity != "" && !card.ValidRarity(rarity) {
		return middleware.NewAppError(fiber.StatusBadRequest, "Unknown rarity: "+rarity, nil, nil)
	}

	page, err := parseQueryIntStrict(c, "page", 1)
	if err != nil || page < 1 {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid page number", nil, err)
	}

	filters := usecase.SearchFilters{
		Text:   c.Query("q"),
		Colors: parseListQuery(c.Query("colors")),
		Types:  parseListQuery(c.Query("types")),
		Rarity: rarity,
	}

	payload, err := h.uc.SearchCards(c.Context(), filters, page)
	if err != nil {
		return mapUpstreamError(err)
	}

	return c.Status(fiber.StatusOK).JSON(payload)
}

// Filters serves the static filter catalog the client renders its UI from.
func (h *SearchHandler) Filters(c fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(card.Filters())
}

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return v, nil
}

func parseListQuery(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// mapUpstreamError translates the upstream error taxonomy into client-visible
// statuses: timeouts become 504, upstream HTTP errors are relayed with their
// original status, everything else collapses to 500.
func mapUpstreamError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, usecase.ErrInvalidInput) {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}
	if errors.Is(err, scryfall.ErrTimeout) {
		return middleware.NewAppError(fiber.StatusGatewayTimeout, "Card search timed out", nil, err)
	}

	var se *scryfall.StatusError
	if errors.As(err, &se) {
		return middleware.NewAppError(se.Code, "Card search failed upstream", fiber.Map{"detail": se.Detail}, err)
	}

	return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
}
