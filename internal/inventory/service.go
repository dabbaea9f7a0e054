package inventory

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/madmanlosangeles/stylist/internal/cache"
	"github.com/madmanlosangeles/stylist/internal/feed"
	"github.com/madmanlosangeles/stylist/internal/logging"
)

// Fetcher retrieves the raw product listing from the storefront feed.
type Fetcher interface {
	Fetch(ctx context.Context) ([]feed.Product, error)
}

// Service keeps the current inventory snapshot in the cache and refreshes it
// on a timer. Reads always succeed: a miss triggers a synchronous refresh and
// a failed refresh falls back to the embedded default snapshot.
type Service struct {
	fetcher    Fetcher
	normalizer *Normalizer
	cache      cache.Provider
	ttl        time.Duration
	interval   time.Duration
	logger     *slog.Logger
	now        func() time.Time
}

type ServiceOptions struct {
	Fetcher    Fetcher
	Normalizer *Normalizer
	Cache      cache.Provider
	TTL        time.Duration
	Interval   time.Duration
	Logger     *slog.Logger
}

const defaultSnapshotTTL = time.Hour

func NewService(opts ServiceOptions) *Service {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = defaultSnapshotTTL
	}
	interval := opts.Interval
	if interval <= 0 {
		interval = ttl
	}

	return &Service{
		fetcher:    opts.Fetcher,
		normalizer: opts.Normalizer,
		cache:      opts.Cache,
		ttl:        ttl,
		interval:   interval,
		logger:     opts.Logger,
		now:        time.Now,
	}
}

func (s *Service) loggerFromContext(ctx context.Context) *slog.Logger {
	return logging.FromContext(ctx, s.logger)
}

// Current returns the cached snapshot, refreshing synchronously on a miss.
// It never fails: a refresh error yields the default snapshot instead.
func (s *Service) Current(ctx context.Context) Snapshot {
	logger := s.loggerFromContext(ctx)

	raw, err := s.cache.Get(ctx, cache.SnapshotKey())
	if err == nil {
		snapshot, decodeErr := DecodeSnapshot(raw)
		if decodeErr == nil {
			return snapshot
		}
		logger.Warn("discarding undecodable cached snapshot", "error", decodeErr)
	} else if !errors.Is(err, cache.ErrNotFound) {
		logger.Warn("snapshot cache read failed", "error", err)
	}

	snapshot, err := s.Refresh(ctx)
	if err != nil {
		logger.Error("inventory refresh failed, serving default snapshot", "error", err)
	}
	return snapshot
}

// Refresh fetches the feed, normalizes it and stores the result with the
// configured TTL. On fetch failure it returns the default snapshot along with
// the error; the caller decides whether that matters.
func (s *Service) Refresh(ctx context.Context) (Snapshot, error) {
	logger := s.loggerFromContext(ctx)

	raw, err := s.fetcher.Fetch(ctx)
	if err != nil {
		return Default(s.now()), err
	}

	snapshot := s.normalizer.Normalize(raw, s.now())

	encoded, err := snapshot.Encode()
	if err != nil {
		logger.Error("failed to encode snapshot for cache", "error", err)
		return snapshot, nil
	}
	if err := s.cache.Set(ctx, cache.SnapshotKey(), encoded, s.ttl); err != nil {
		logger.Error("failed to store snapshot in cache", "error", err)
	}

	logger.Info("inventory refreshed",
		"available", len(snapshot.Products),
		"sold_out", len(snapshot.SoldOut),
	)
	return snapshot, nil
}

// Run refreshes the snapshot immediately and then on every tick until the
// context is cancelled. Concurrent refreshes are harmless: the feed fetch is
// idempotent and the last cache write wins.
func (s *Service) Run(ctx context.Context) {
	logger := s.loggerFromContext(ctx)

	if _, err := s.Refresh(ctx); err != nil {
		logger.Error("initial inventory refresh failed", "error", err)
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.Refresh(ctx); err != nil {
				logger.Error("scheduled inventory refresh failed", "error", err)
			}
		}
	}
}
