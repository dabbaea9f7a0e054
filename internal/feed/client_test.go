package feed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

const sampleListing = `{
  "products": [
    {
      "title": "Forsaken Hoodie",
      "handle": "madman-forsaken-hoodie",
      "tags": ["hoodies", "new"],
      "variants": [
        {"price": "95.00", "compare_at_price": null, "inventory_quantity": 25, "available": true},
        {"price": "95.00", "compare_at_price": null, "inventory_quantity": 15, "available": true}
      ],
      "images": [{"src": "https://cdn.example.com/hoodie.png"}]
    },
    {
      "title": "Chaos Erupts Tee",
      "handle": "chaos-erupts-tee",
      "tags": [],
      "variants": [
        {"price": "54.00", "compare_at_price": "64.00", "inventory_quantity": 0, "available": false}
      ],
      "images": []
    }
  ]
}`

func TestFetch_DecodesListing(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleListing))
	}))
	t.Cleanup(server.Close)

	products, err := NewClient(server.URL + "/collections/all/products.json").Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(products) != 2 {
		t.Fatalf("unexpected product count: got=%d want=%d", len(products), 2)
	}

	hoodie := products[0]
	if hoodie.Title != "Forsaken Hoodie" {
		t.Fatalf("unexpected title: %q", hoodie.Title)
	}
	if len(hoodie.Variants) != 2 || hoodie.Variants[0].Price != "95.00" {
		t.Fatalf("unexpected variants: %+v", hoodie.Variants)
	}
	if !hoodie.Variants[0].Available {
		t.Fatal("expected first variant available")
	}
	if len(hoodie.Images) != 1 || hoodie.Images[0].Src != "https://cdn.example.com/hoodie.png" {
		t.Fatalf("unexpected images: %+v", hoodie.Images)
	}

	tee := products[1]
	if tee.Variants[0].CompareAtPrice != "64.00" {
		t.Fatalf("unexpected compare-at price: %q", tee.Variants[0].CompareAtPrice)
	}
}

func TestFetch_ErrorStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)

	_, err := NewClient(server.URL).Fetch(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestFetch_HTMLBodyIsUnavailable(t *testing.T) {
	t.Parallel()

	// Maintenance pages answer 200 with HTML; that must never read as an
	// empty catalog.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<!doctype html><html><body>Be right back.</body></html>"))
	}))
	t.Cleanup(server.Close)

	products, err := NewClient(server.URL).Fetch(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if products != nil {
		t.Fatalf("expected no products, got %+v", products)
	}
}

func TestFetch_EmptyBodyIsUnavailable(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
	}))
	t.Cleanup(server.Close)

	_, err := NewClient(server.URL).Fetch(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestFetch_ConnectionRefused(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := NewClient(server.URL).Fetch(context.Background())
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
