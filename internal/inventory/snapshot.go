package inventory

// Package inventory owns the canonical product model and the cached snapshot
// of the storefront feed.

import (
	"encoding/json"
	"fmt"
	"time"
)

// Product is a normalized storefront product. Immutable once produced; a
// refresh replaces the whole snapshot rather than mutating records in place.
type Product struct {
	Name      string   `json:"name" yaml:"name"`
	Price     string   `json:"price" yaml:"price"`
	SalePrice string   `json:"salePrice,omitempty" yaml:"sale_price,omitempty"`
	URL       string   `json:"url" yaml:"url"`
	ImageURL  string   `json:"imageUrl" yaml:"image_url"`
	Handle    string   `json:"handle,omitempty" yaml:"handle,omitempty"`
	Stock     int      `json:"stock" yaml:"stock"`
	Available bool     `json:"available" yaml:"available"`
	Tags      []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Snapshot is a complete inventory listing captured at one point in time.
// Products holds available items in feed order; SoldOut holds names only.
// A name appears in at most one of the two.
type Snapshot struct {
	Products    []Product `json:"products"`
	SoldOut     []string  `json:"soldOut"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// Encode serializes the snapshot for the cache.
func (s Snapshot) Encode() (string, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return string(raw), nil
}

// DecodeSnapshot restores a snapshot stored by Encode.
func DecodeSnapshot(raw string) (Snapshot, error) {
	var snapshot Snapshot
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		return Snapshot{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return snapshot, nil
}
