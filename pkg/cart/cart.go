package cart

import (
	"slices"

	"github.com/shopspring/decimal"

	"farmstand/pkg/money"
)

// RecipeCandidate builds the free line item a recipe card adds.
func RecipeCandidate(name string) Candidate {
	return Candidate{Name: name, PriceLabel: money.Zero, Seller: RecipeSeller}
}

// Cart keeps line items in insertion order. The zero value is an empty cart.
// It is not safe for concurrent use; Service serializes access to one.
type Cart struct {
	items []LineItem
}

// Add increments an existing line item or appends a new one. Price and seller
// of an existing line item are left as first added.
func (c *Cart) Add(cand Candidate) LineItem {
	if i := c.index(cand.Name); i >= 0 {
		c.items[i].Quantity++
		return c.items[i]
	}
	item := LineItem{Name: cand.Name, PriceLabel: cand.PriceLabel, Seller: cand.Seller, Quantity: 1}
	c.items = append(c.items, item)
	return item
}

// Remove drops the line item for name and reports whether one existed.
func (c *Cart) Remove(name string) bool {
	before := len(c.items)
	c.items = slices.DeleteFunc(c.items, func(it LineItem) bool { return it.Name == name })
	return len(c.items) != before
}

// Decrement lowers the quantity by one and removes the line item when it reaches zero.
func (c *Cart) Decrement(name string) bool {
	i := c.index(name)
	if i < 0 {
		return false
	}
	c.items[i].Quantity--
	if c.items[i].Quantity <= 0 {
		c.items = slices.Delete(c.items, i, i+1)
	}
	return true
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
}

// Items returns a copy of the line items.
func (c *Cart) Items() []LineItem {
	return slices.Clone(c.items)
}

// Total sums unit price times quantity. Labels that do not parse count as zero.
func (c *Cart) Total() decimal.Decimal {
	return Total(c.items)
}

// Snapshot copies the items together with their total.
func (c *Cart) Snapshot() Snapshot {
	total := c.Total()
	items := c.Items()
	if items == nil {
		items = []LineItem{}
	}
	return Snapshot{Items: items, Total: total, TotalLabel: money.Format(total)}
}

// Total is the sum over any list of line items.
func Total(items []LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		price, err := money.Parse(it.PriceLabel)
		if err != nil {
			continue
		}
		sum = sum.Add(price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return sum
}

func (c *Cart) index(name string) int {
	return slices.IndexFunc(c.items, func(it LineItem) bool { return it.Name == name })
}
