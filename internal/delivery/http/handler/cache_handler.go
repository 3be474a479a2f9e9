package handler

import (
	"mtg-cards/internal/infrastructure/cache"
	"mtg-cards/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// CacheHandler exposes the diagnostic cache surface: a point-in-time stats
// scan and an unconditional full clear.
type CacheHandler struct {
	store cache.Store
}

func NewCacheHandler(store cache.Store) *CacheHandler {
	return &CacheHandler{store: store}
}

func (h *CacheHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/cache")
	grp.Get("/stats", h.Stats)
	grp.Delete("/", h.Clear)
}

func (h *CacheHandler) Stats(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, h.store.Stats(c.Context()))
}

func (h *CacheHandler) Clear(c fiber.Ctx) error {
	removed := h.store.Clear(c.Context())
	return response.Success(c, fiber.StatusOK, "Cache cleared", fiber.Map{"removed": removed})
}
