package routes

import (
	"mtg-cards/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health    *handler.HealthHandler
	search    *handler.SearchHandler
	printings *handler.PrintingsHandler
	cache     *handler.CacheHandler
}

func NewRegistry(search *handler.SearchHandler, printings *handler.PrintingsHandler, cacheHandler *handler.CacheHandler) *Registry {
	return &Registry{
		health:    handler.NewHealthHandler(),
		search:    search,
		printings: printings,
		cache:     cacheHandler,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)
	r.search.RegisterRoutes(app)
	r.printings.RegisterRoutes(app)
	r.cache.RegisterRoutes(app)
}
