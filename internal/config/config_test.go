package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Fatalf("unexpected port: got=%q want=%q", cfg.Port, "8080")
	}
	if cfg.GeminiModel != "gemini-2.0-flash" {
		t.Fatalf("unexpected model: %q", cfg.GeminiModel)
	}
	if cfg.CacheProvider != "memory" {
		t.Fatalf("unexpected cache provider: %q", cfg.CacheProvider)
	}
	if cfg.SnapshotTTL != time.Hour {
		t.Fatalf("unexpected snapshot TTL: %v", cfg.SnapshotTTL)
	}
	if cfg.RefreshInterval != time.Hour {
		t.Fatalf("unexpected refresh interval: %v", cfg.RefreshInterval)
	}
	if cfg.AllowedOrigin != "*" {
		t.Fatalf("unexpected allowed origin: %q", cfg.AllowedOrigin)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Fatalf("unexpected log level: %v", cfg.LogLevel)
	}
}

func TestLoad_MissingAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when GEMINI_API_KEY is missing")
	}
}

func TestLoad_RejectsInvalidCacheProvider(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("CACHE_PROVIDER", "memcached")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unsupported cache provider")
	}
}

func TestLoad_RejectsInsecureFeedURL(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("FEED_URL", "http://shop.example.com/collections/all/products.json")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for plain-http feed URL")
	}
}

func TestLoad_AllowsLocalHTTPFeedURL(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("FEED_URL", "http://localhost:9000/products.json")

	if _, err := Load(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoad_RejectsNonPositiveTTL(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("SNAPSHOT_TTL", "-1h")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for negative TTL")
	}
}
