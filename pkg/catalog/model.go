package catalog

import "slices"

// Kind separates sellable products from free recipes.
type Kind int

const (
	Product Kind = iota
	Recipe
)

// String is used in JSON payloads and CLI output.
func (k Kind) String() string {
	if k == Recipe {
		return "recipe"
	}
	return "product"
}

// MarshalText lets Kind travel as "product" or "recipe".
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Difficulty grades recipes.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// All is the sentinel that disables the category and difficulty filters.
const All = "all"

// Entry is one product or recipe card as rendered on the page.
type Entry struct {
	Kind        Kind       `json:"kind"`
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	Price       string     `json:"price,omitempty"`
	PriceLabel  string     `json:"price_label,omitempty"`
	Rating      string     `json:"rating,omitempty"`
	Difficulty  Difficulty `json:"difficulty,omitempty"`
	Description string     `json:"description"`
	Seller      string     `json:"seller,omitempty"`
	Ingredients []string   `json:"ingredients,omitempty"`
	Meta        []string   `json:"meta,omitempty"`
}

// Catalog groups the two card collections of a page.
type Catalog struct {
	Products []Entry `json:"products"`
	Recipes  []Entry `json:"recipes"`
}

// FilterState is the transient combination of selected category, search text, and difficulty.
type FilterState struct {
	Category   string
	Query      string
	Difficulty string
}

// Categories lists the distinct category tags across both collections, sorted.
func (c Catalog) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, list := range [][]Entry{c.Products, c.Recipes} {
		for _, e := range list {
			if e.Category == "" {
				continue
			}
			if _, ok := seen[e.Category]; ok {
				continue
			}
			seen[e.Category] = struct{}{}
			out = append(out, e.Category)
		}
	}
	slices.Sort(out)
	return out
}
