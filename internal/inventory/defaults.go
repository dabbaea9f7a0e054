package inventory

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

type defaultListing struct {
	Products []Product `yaml:"products"`
	SoldOut  []string  `yaml:"sold_out"`
}

var defaultInventory = mustParseDefaults()

// Default returns the embedded fallback snapshot stamped with the given time.
// Served whenever both the cache and the feed are unavailable, so readers
// never observe an empty or error state.
func Default(now time.Time) Snapshot {
	products := make([]Product, len(defaultInventory.Products))
	copy(products, defaultInventory.Products)
	soldOut := make([]string, len(defaultInventory.SoldOut))
	copy(soldOut, defaultInventory.SoldOut)

	return Snapshot{
		Products:    products,
		SoldOut:     soldOut,
		LastUpdated: now,
	}
}

func mustParseDefaults() defaultListing {
	var listing defaultListing
	if err := yaml.Unmarshal(defaultsYAML, &listing); err != nil {
		panic(fmt.Sprintf("invalid embedded default inventory: %v", err))
	}
	return listing
}
