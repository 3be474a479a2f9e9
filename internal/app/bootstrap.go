package app

import (
	"fmt"
	"strings"

	"mtg-cards/internal/config"
	"mtg-cards/internal/delivery/http/handler"
	"mtg-cards/internal/delivery/http/middleware"
	"mtg-cards/internal/delivery/http/routes"
	"mtg-cards/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

type App struct {
	Fiber *fiber.App
}

func New(cfg config.Config, deps *Container) *App {
	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	registerGlobalMiddleware(f, cfg, deps)
	registerRoutes(f, deps)

	return &App{Fiber: f}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	deps := NewContainer(cfg)
	app := New(cfg, deps)
	return app, deps.Close, nil
}

func registerGlobalMiddleware(f *fiber.App, cfg config.Config, deps *Container) {
	if f == nil {
		return
	}

	f.Use(cors.New(cors.Config{AllowOrigins: cfg.App.AllowedOrigins}))

	accessMw := middleware.NewAccessLogMiddleware(deps.Logger)
	f.Use(accessMw.Middleware())

	errMw := middleware.NewErrorMiddleware(deps.Logger)
	f.Use(errMw.Middleware())
}

func registerRoutes(f *fiber.App, deps *Container) {
	if f == nil {
		return
	}

	searchUC := usecase.NewCardSearchUsecase(deps.Scryfall, deps.Cache, deps.Logger)
	printingsUC := usecase.NewPrintingsUsecase(deps.Scryfall, deps.Cache, deps.Logger)

	registry := routes.NewRegistry(
		handler.NewSearchHandler(searchUC),
		handler.NewPrintingsHandler(printingsUC),
		handler.NewCacheHandler(deps.Cache),
	)
	registry.Register(f)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
