package prompt

// Package prompt renders the inventory snapshot into the generation prompt.

import (
	"fmt"
	"strings"

	"github.com/madmanlosangeles/stylist/internal/inventory"
)

const persona = `You are the personal style assistant for Madman Los Angeles, an edgy streetwear brand from LA. Your tone is cool, confident, and slightly mysterious - matching the brand's "What's Done in the Dark Must Come to Light" tagline.

PERSONALITY:
- Cool and confident, never overly enthusiastic
- Mysterious edge, like you know something others don't
- Direct and helpful, no fluff
- Use occasional slang but keep it natural
- Never use markdown formatting (no ** or * or #)
- Never use emojis

PRODUCT FORMATTING:
- When recommending products, use this EXACT format on its own line:
PRODUCT:Product Name
- The frontend will automatically display product cards with images
- Example response:
"Check out the Forsaken Hoodie - perfect for that dark aesthetic.

PRODUCT:Forsaken Hoodie

Goes hard with basically anything."

BRAND INFO:
- Madman Los Angeles is an edgy streetwear brand
- Tagline: "What's Done in the Dark Must Come to Light"
- Based in Los Angeles
- Aesthetic: Dark, rebellious, punk-influenced streetwear
- Free shipping on orders over $200
- Website: madmanlosangeles.com`

const rules = `RULES:
- Only recommend products that are IN STOCK
- Never recommend sold out items
- If asked about sold out items, suggest similar available alternatives
- Keep responses concise and cool
- For sizing questions, recommend checking the size chart on the product page
- Contact: DM on Instagram @madmanlosangeles`

type Builder struct{}

func NewBuilder() *Builder {
	return &Builder{}
}

// Build assembles the full generation prompt for a customer message.
func (b *Builder) Build(snapshot inventory.Snapshot, customerMessage string) string {
	var sb strings.Builder
	sb.WriteString(persona)
	sb.WriteString("\n\n")
	sb.WriteString(b.Render(snapshot))
	sb.WriteString("\n")
	sb.WriteString(rules)
	sb.WriteString("\n\nCustomer says: ")
	sb.WriteString(customerMessage)
	return sb.String()
}

// Render produces the inventory block. Pure: identical snapshots render to
// identical text.
func (b *Builder) Render(snapshot inventory.Snapshot) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "CURRENT INVENTORY (Last Updated: %s):\n\nIN STOCK PRODUCTS:\n",
		snapshot.LastUpdated.UTC().Format("Jan 2, 2006 3:04 PM"))

	for _, product := range snapshot.Products {
		fmt.Fprintf(&sb, "- %s - %s [%s]\n", product.Name, product.Price, StockLabel(product.Stock))
	}

	if len(snapshot.SoldOut) > 0 {
		sb.WriteString("\nSOLD OUT (DO NOT RECOMMEND):\n")
		for _, name := range snapshot.SoldOut {
			fmt.Fprintf(&sb, "- %s\n", name)
		}
	}

	return sb.String()
}

// StockLabel buckets a stock count into the label shown to the model.
func StockLabel(stock int) string {
	switch {
	case stock > 20:
		return "In Stock"
	case stock > 5:
		return "Limited Stock"
	case stock > 0:
		return fmt.Sprintf("Low Stock (%d left)", stock)
	default:
		// Zero-stock products never reach the snapshot's available list, so
		// this branch only matters for callers outside the normal pipeline.
		return "In Stock"
	}
}
