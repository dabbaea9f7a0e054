package cache

// Package cache stores serialized inventory snapshots behind a TTL.

import (
	"context"
	"fmt"
	"time"
)

// Provider defines the interface for the snapshot store.
type Provider interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

type Config struct {
	Provider              string
	RedisConnectionString string
}

func NewProvider(cfg Config) (Provider, error) {
	switch cfg.Provider {
	case "memory", "":
		return NewMemoryProvider()
	case "redis":
		return NewRedisProvider(cfg.RedisConnectionString)
	default:
		return nil, fmt.Errorf("unsupported cache provider: %s", cfg.Provider)
	}
}

// SnapshotKey is the cache key under which the current inventory snapshot lives.
func SnapshotKey() string {
	return "inventory:current"
}
