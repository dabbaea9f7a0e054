package app

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/lmittmann/tint"

	"github.com/madmanlosangeles/stylist/internal/cache"
	"github.com/madmanlosangeles/stylist/internal/chat"
	"github.com/madmanlosangeles/stylist/internal/config"
	"github.com/madmanlosangeles/stylist/internal/feed"
	"github.com/madmanlosangeles/stylist/internal/gemini"
	"github.com/madmanlosangeles/stylist/internal/handlers"
	"github.com/madmanlosangeles/stylist/internal/inventory"
	"github.com/madmanlosangeles/stylist/internal/prompt"
)

type App struct {
	Config        *config.Config
	Logger        *slog.Logger
	CacheProvider cache.Provider
	Inventory     *inventory.Service
	Handlers      *handlers.Handlers
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := newLogger(cfg)

	cacheProvider, err := cache.NewProvider(cache.Config{
		Provider:              cfg.CacheProvider,
		RedisConnectionString: cfg.RedisConnectionString,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cache provider: %w", err)
	}

	storeBaseURL, err := storeOriginFromFeedURL(cfg.FeedURL)
	if err != nil {
		closeCacheProvider(logger, cacheProvider)
		return nil, err
	}

	inventoryService := inventory.NewService(inventory.ServiceOptions{
		Fetcher:    feed.NewClient(cfg.FeedURL),
		Normalizer: inventory.NewNormalizer(storeBaseURL),
		Cache:      cacheProvider,
		TTL:        cfg.SnapshotTTL,
		Interval:   cfg.RefreshInterval,
		Logger:     logger.With("component", "inventory_service"),
	})

	geminiClient := gemini.NewClient(cfg.GeminiBaseURL, cfg.GeminiModel, cfg.GeminiAPIKey)
	chatService := chat.NewService(
		inventoryService,
		prompt.NewBuilder(),
		geminiClient,
		logger.With("component", "chat_service"),
	)

	h, err := handlers.New(handlers.Dependencies{
		Config:      cfg,
		Inventory:   inventoryService,
		ChatService: chatService,
		Logger:      logger,
	})
	if err != nil {
		closeCacheProvider(logger, cacheProvider)
		return nil, fmt.Errorf("failed to initialize handlers: %w", err)
	}

	return &App{
		Config:        cfg,
		Logger:        logger,
		CacheProvider: cacheProvider,
		Inventory:     inventoryService,
		Handlers:      h,
	}, nil
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.CacheProvider != nil {
		closeCacheProvider(a.Logger, a.CacheProvider)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	format := strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	switch format {
	case "json":
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	case "text", "":
		return slog.New(tint.NewHandler(os.Stdout, &tint.Options{
			Level: cfg.LogLevel,
		}))
	}
	return slog.New(tint.NewHandler(os.Stdout, &tint.Options{Level: cfg.LogLevel}))
}

func storeOriginFromFeedURL(feedURL string) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(feedURL))
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", fmt.Errorf("feed URL must be absolute: %q", feedURL)
	}
	return parsed.Scheme + "://" + parsed.Host, nil
}

func closeCacheProvider(logger *slog.Logger, provider cache.Provider) {
	if provider == nil {
		return
	}
	if err := provider.Close(); err != nil && logger != nil {
		logger.Warn("failed to close cache provider", "error", err)
	}
}
