package cart

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var apples = Candidate{Name: "Apples", PriceLabel: "$2.50/lb", Seller: "Green Valley Orchard"}

func TestAddSameNameIncrementsQuantity(t *testing.T) {
	var c Cart
	c.Add(apples)
	c.Add(apples)

	want := []LineItem{{Name: "Apples", PriceLabel: "$2.50/lb", Seller: "Green Valley Orchard", Quantity: 2}}
	if diff := cmp.Diff(want, c.Items()); diff != "" {
		t.Fatalf("unexpected items (-want +got):\n%s", diff)
	}
	assert.Equal(t, "$5.00", c.Snapshot().TotalLabel)
}

func TestAddKeepsFirstPriceAndSeller(t *testing.T) {
	var c Cart
	c.Add(apples)
	item := c.Add(Candidate{Name: "Apples", PriceLabel: "$9.99/lb", Seller: "Someone Else"})

	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, "$2.50/lb", item.PriceLabel)
	assert.Equal(t, "Green Valley Orchard", item.Seller)
}

func TestItemsKeepInsertionOrder(t *testing.T) {
	var c Cart
	c.Add(Candidate{Name: "Carrots", PriceLabel: "$1.75/lb"})
	c.Add(apples)
	c.Add(Candidate{Name: "Carrots", PriceLabel: "$1.75/lb"})

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Carrots", items[0].Name)
	assert.Equal(t, "Apples", items[1].Name)
}

func TestRecipeLineItem(t *testing.T) {
	var c Cart
	c.Add(apples)
	before := c.Total()

	item := c.Add(RecipeCandidate("Pasta"))
	assert.Equal(t, LineItem{Name: "Pasta", PriceLabel: "$0.00", Seller: "Recipe Collection", Quantity: 1}, item)
	assert.True(t, before.Equal(c.Total()))
}

func TestRemove(t *testing.T) {
	var c Cart
	c.Add(apples)
	c.Add(RecipeCandidate("Pasta"))

	assert.False(t, c.Remove("Kale"))
	assert.Len(t, c.Items(), 2)

	assert.True(t, c.Remove("Apples"))
	assert.Equal(t, []LineItem{{Name: "Pasta", PriceLabel: "$0.00", Seller: RecipeSeller, Quantity: 1}}, c.Items())
}

func TestRemoveFromEmptyCart(t *testing.T) {
	var c Cart
	assert.False(t, c.Remove("Apples"))
	assert.Empty(t, c.Items())
	assert.Equal(t, "$0.00", c.Snapshot().TotalLabel)
}

func TestDecrement(t *testing.T) {
	var c Cart
	c.Add(apples)
	c.Add(apples)

	assert.True(t, c.Decrement("Apples"))
	assert.Equal(t, 1, c.Items()[0].Quantity)

	assert.True(t, c.Decrement("Apples"))
	assert.Empty(t, c.Items())

	assert.False(t, c.Decrement("Apples"))
}

func TestTotal(t *testing.T) {
	items := []LineItem{
		{Name: "Apples", PriceLabel: "$2.50/lb", Quantity: 3},
		{Name: "Eggs", PriceLabel: "$6.50/dozen", Quantity: 1},
		{Name: "Muffin", PriceLabel: "$3.25/each", Quantity: 2},
		{Name: "Jam", PriceLabel: "$4.00", Quantity: 1},
		{Name: "Pasta", PriceLabel: "$0.00", Quantity: 4},
		{Name: "Mystery", PriceLabel: "ask the farmer", Quantity: 5},
	}
	want := decimal.RequireFromString("24.50")
	got := Total(items)
	assert.True(t, want.Equal(got), "got %s", got)
}

func TestClear(t *testing.T) {
	var c Cart
	c.Add(apples)
	c.Clear()
	assert.Empty(t, c.Items())
	assert.NotNil(t, c.Snapshot().Items)
}

func TestItemsReturnsCopy(t *testing.T) {
	var c Cart
	c.Add(apples)
	items := c.Items()
	items[0].Quantity = 40
	assert.Equal(t, 1, c.Items()[0].Quantity)
}
