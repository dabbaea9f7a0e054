package chat

import (
	"strings"

	"github.com/madmanlosangeles/stylist/internal/inventory"
)

// markerPrefix starts an in-band product marker. The name runs from the
// prefix to the end of the line; models are told to put markers on their own
// line but a marker after prose ("Check out PRODUCT:...") counts too.
const markerPrefix = "PRODUCT:"

// ExtractMarkers splits product markers out of a sanitized reply. It returns
// the display text with every marker removed and the extracted names in order
// of appearance. A line holding only a marker is dropped; a line with prose
// before the marker is truncated at it.
func ExtractMarkers(text string) (displayText string, names []string) {
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))

	for _, line := range lines {
		idx := strings.Index(line, markerPrefix)
		if idx < 0 {
			kept = append(kept, line)
			continue
		}
		if name := strings.TrimSpace(line[idx+len(markerPrefix):]); name != "" {
			names = append(names, name)
		}
		if head := strings.TrimSpace(line[:idx]); head != "" {
			kept = append(kept, strings.TrimRight(line[:idx], " \t"))
		}
	}

	return strings.TrimSpace(strings.Join(kept, "\n")), names
}

// MatchProducts resolves marker names against the snapshot and returns the
// stripped display text plus the matched records. Matching is case-insensitive
// bidirectional substring containment, first match in snapshot order wins.
// Unmatched names are dropped silently; repeated markers yield repeated
// records. Names that are prefixes of one another ("Carpenter Pants" vs
// "Carpenter Shorts") can collide on a partial marker; the first snapshot
// entry wins, same as the storefront has always behaved.
func MatchProducts(text string, snapshot inventory.Snapshot) (string, []inventory.Product) {
	displayText, names := ExtractMarkers(text)

	products := make([]inventory.Product, 0, len(names))
	for _, name := range names {
		if product, ok := findByName(snapshot, name); ok {
			products = append(products, product)
		}
	}

	return displayText, products
}

func findByName(snapshot inventory.Snapshot, name string) (inventory.Product, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return inventory.Product{}, false
	}

	for _, product := range snapshot.Products {
		candidate := strings.ToLower(product.Name)
		if strings.Contains(candidate, needle) || strings.Contains(needle, candidate) {
			return product, true
		}
	}
	return inventory.Product{}, false
}
