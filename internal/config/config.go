package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App      AppConfig
	Scryfall ScryfallConfig
	Cache    CacheConfig
}

type AppConfig struct {
	AppName        string
	Environment    string
	HTTPPort       string
	AllowedOrigins []string
}

type ScryfallConfig struct {
	BaseURL string
	Timeout time.Duration
}

const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

type CacheConfig struct {
	Backend string
	TTL     time.Duration
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:        req("APP_NAME"),
		Environment:    req("APP_ENV"),
		HTTPPort:       req("HTTP_PORT"),
		AllowedOrigins: splitCSV(opt("ALLOWED_ORIGINS"), "*"),
	}

	cfg.Scryfall = ScryfallConfig{
		BaseURL: opt("SCRYFALL_BASE_URL"),
		Timeout: durationSeconds(opt("SCRYFALL_TIMEOUT"), 10*time.Second),
	}

	backend := strings.ToLower(opt("CACHE_BACKEND"))
	if backend == "" {
		backend = CacheBackendMemory
	}
	if backend != CacheBackendMemory && backend != CacheBackendRedis {
		return Config{}, fmt.Errorf("unknown CACHE_BACKEND %q", backend)
	}
	cfg.Cache = CacheConfig{
		Backend: backend,
		TTL:     durationSeconds(opt("CACHE_TTL"), 600*time.Second),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func splitCSV(s, fallback string) []string {
	if s == "" {
		s = fallback
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

func durationSeconds(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return fallback
	}
	return time.Duration(v) * time.Second
}
