package app

import (
	"log"
	"os"

	"mtg-cards/internal/config"
	"mtg-cards/internal/infrastructure/cache"
	"mtg-cards/internal/infrastructure/scryfall"
)

// Container wires the process-lifetime dependencies: one logger, one cache
// store and one upstream client, constructed once at startup and handed into
// the request handlers by reference.
type Container struct {
	Config   config.Config
	Logger   *log.Logger
	Cache    cache.Store
	Scryfall scryfall.Client

	closers []func() error
}

func NewContainer(cfg config.Config) *Container {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	c := &Container{Config: cfg, Logger: logger}

	switch cfg.Cache.Backend {
	case config.CacheBackendRedis:
		r := cache.NewRedis(cfg.Cache.TTL, logger)
		c.Cache = r
		c.closers = append(c.closers, r.Close)
	default:
		c.Cache = cache.NewMemory(cfg.Cache.TTL, logger)
	}

	c.Scryfall = scryfall.NewClient(cfg.Scryfall.BaseURL, cfg.Scryfall.Timeout, logger)

	return c
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var firstErr error
	for _, close := range c.closers {
		if err := close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
