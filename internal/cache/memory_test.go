package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryProvider_SetGetDelete(t *testing.T) {
	t.Parallel()

	provider, err := NewMemoryProvider()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { _ = provider.Close() })

	ctx := context.Background()

	if _, err := provider.Get(ctx, SnapshotKey()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on empty cache, got %v", err)
	}

	if err := provider.Set(ctx, SnapshotKey(), `{"products":[]}`, time.Hour); err != nil {
		t.Fatalf("unexpected set error: %v", err)
	}

	value, err := provider.Get(ctx, SnapshotKey())
	if err != nil {
		t.Fatalf("unexpected get error: %v", err)
	}
	if value != `{"products":[]}` {
		t.Fatalf("unexpected value: %q", value)
	}

	if err := provider.Delete(ctx, SnapshotKey()); err != nil {
		t.Fatalf("unexpected delete error: %v", err)
	}
	if _, err := provider.Get(ctx, SnapshotKey()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestMemoryProvider_Expiry(t *testing.T) {
	t.Parallel()

	provider, err := NewMemoryProvider()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { _ = provider.Close() })

	ctx := context.Background()

	if err := provider.Set(ctx, "key", "value", 10*time.Millisecond); err != nil {
		t.Fatalf("unexpected set error: %v", err)
	}

	if _, err := provider.Get(ctx, "key"); err != nil {
		t.Fatalf("value expired too early: %v", err)
	}

	time.Sleep(25 * time.Millisecond)

	if _, err := provider.Get(ctx, "key"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after expiry, got %v", err)
	}
}

func TestNewProvider_UnsupportedName(t *testing.T) {
	t.Parallel()

	if _, err := NewProvider(Config{Provider: "memcached"}); err == nil {
		t.Fatal("expected error for unsupported provider")
	}
}

func TestNewProvider_DefaultsToMemory(t *testing.T) {
	t.Parallel()

	provider, err := NewProvider(Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := provider.(*MemoryProvider); !ok {
		t.Fatalf("expected memory provider, got %T", provider)
	}
}
