package cart

import "github.com/shopspring/decimal"

// RecipeSeller is shown as the seller of every recipe line item.
const RecipeSeller = "Recipe Collection"

// Candidate is what an "Add to Cart" button submits.
type Candidate struct {
	Name       string `json:"name"`
	PriceLabel string `json:"price"`
	Seller     string `json:"seller"`
}

// LineItem is one row of the cart, keyed by name.
type LineItem struct {
	Name       string `json:"name"`
	PriceLabel string `json:"price"`
	Seller     string `json:"seller"`
	Quantity   int    `json:"quantity"`
}

// Snapshot is a consistent copy of the cart for rendering.
type Snapshot struct {
	Items      []LineItem      `json:"items"`
	Total      decimal.Decimal `json:"-"`
	TotalLabel string          `json:"total"`
}
