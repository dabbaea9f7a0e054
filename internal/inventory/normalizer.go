package inventory

import (
	"fmt"
	"strings"
	"time"

	"github.com/madmanlosangeles/stylist/internal/feed"
)

const priceUnknown = "Price TBD"

// Normalizer maps raw feed records into the canonical product model.
type Normalizer struct {
	storeBaseURL string
}

// NewNormalizer builds a normalizer. storeBaseURL is the storefront origin
// used to assemble product page URLs, e.g. "https://madmanlosangeles.com".
func NewNormalizer(storeBaseURL string) *Normalizer {
	return &Normalizer{
		storeBaseURL: strings.TrimRight(strings.TrimSpace(storeBaseURL), "/"),
	}
}

// Normalize partitions raw feed records into available products and sold-out
// names, preserving feed order for the available side.
func (n *Normalizer) Normalize(raw []feed.Product, now time.Time) Snapshot {
	snapshot := Snapshot{
		Products:    []Product{},
		SoldOut:     []string{},
		LastUpdated: now,
	}

	for _, record := range raw {
		available := false
		stock := 0
		for _, variant := range record.Variants {
			if variant.Available {
				available = true
			}
			if variant.InventoryQuantity > 0 {
				stock += variant.InventoryQuantity
			}
		}

		// Feeds occasionally mark a variant purchasable while every count is
		// zero; treat that as sold out so the model never pitches it.
		if !available || stock == 0 {
			snapshot.SoldOut = append(snapshot.SoldOut, record.Title)
			continue
		}

		price, salePrice := normalizePrice(record.Variants)

		snapshot.Products = append(snapshot.Products, Product{
			Name:      record.Title,
			Price:     price,
			SalePrice: salePrice,
			URL:       n.productURL(record.Handle),
			ImageURL:  firstImage(record.Images),
			Handle:    record.Handle,
			Stock:     stock,
			Available: true,
			Tags:      record.Tags,
		})
	}

	return snapshot
}

// normalizePrice derives the display price from the first variant. When a
// compare-at price differs from the current price the item is on sale: the
// compare-at value becomes the struck-through price and the current value the
// sale price.
func normalizePrice(variants []feed.Variant) (price, salePrice string) {
	if len(variants) == 0 || strings.TrimSpace(variants[0].Price) == "" {
		return priceUnknown, ""
	}

	current := formatPrice(variants[0].Price)
	compareAt := strings.TrimSpace(variants[0].CompareAtPrice)
	if compareAt == "" || compareAt == variants[0].Price {
		return current, ""
	}
	return formatPrice(compareAt), current
}

func formatPrice(amount string) string {
	return fmt.Sprintf("$%s", strings.TrimSpace(amount))
}

func firstImage(images []feed.Image) string {
	if len(images) == 0 {
		return ""
	}
	return images[0].Src
}

func (n *Normalizer) productURL(handle string) string {
	if n.storeBaseURL == "" || handle == "" {
		return n.storeBaseURL
	}
	return fmt.Sprintf("%s/products/%s", n.storeBaseURL, handle)
}
