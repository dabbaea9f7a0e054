package feed

// Package feed reads the storefront's public Shopify product listing.

// Product is a raw record from /collections/all/products.json.
type Product struct {
	Title    string    `json:"title"`
	Handle   string    `json:"handle"`
	Tags     []string  `json:"tags"`
	Variants []Variant `json:"variants"`
	Images   []Image   `json:"images"`
}

type Variant struct {
	Price             string `json:"price"`
	CompareAtPrice    string `json:"compare_at_price"`
	InventoryQuantity int    `json:"inventory_quantity"`
	Available         bool   `json:"available"`
}

type Image struct {
	Src string `json:"src"`
}

type listing struct {
	Products []Product `json:"products"`
}
