package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleProducts() []Entry {
	return []Entry{
		{Kind: Product, Name: "Sourdough Loaf", Category: "bakery", Price: "5.00", Rating: "4.9", Description: "Crackling crust", Seller: "Rye & Co. Bakery"},
		{Kind: Product, Name: "Apples", Category: "produce", Price: "2.50", Rating: "4.7", Description: "Honeycrisp", Seller: "Green Valley Orchard"},
		{Kind: Product, Name: "Blueberry Muffin", Category: "bakery", Price: "3.25", Rating: "4.2", Description: "Wild blueberries", Seller: "Rye & Co. Bakery"},
	}
}

func sampleRecipes() []Entry {
	return []Entry{
		{Kind: Recipe, Name: "Pasta", Category: "dinner", Difficulty: Easy, Description: "Garlic and olive oil", Seller: "ignored seller"},
		{Kind: Recipe, Name: "Apple Pancakes", Category: "breakfast", Difficulty: Medium, Description: "Caramelized apples"},
		{Kind: Recipe, Name: "Country Sourdough", Category: "bakery", Difficulty: Hard, Description: "Wild starter"},
	}
}

func TestVisibleDefaultsShowEverything(t *testing.T) {
	entries := append(sampleProducts(), sampleRecipes()...)
	for _, st := range []FilterState{{}, {Category: All, Difficulty: All}, {Category: All, Query: "   "}} {
		for i, visible := range Visibility(entries, st) {
			assert.True(t, visible, "entry %d hidden by %+v", i, st)
		}
	}
}

func TestCategoryFilter(t *testing.T) {
	got := Filter(sampleProducts(), FilterState{Category: "bakery"})
	assert.Equal(t, []string{"Sourdough Loaf", "Blueberry Muffin"}, names(got))

	assert.Empty(t, Filter(sampleProducts(), FilterState{Category: "Bakery"}), "category match is case-sensitive")
}

func TestSearchFields(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		query   string
		want    []string
	}{
		{name: "product name, case-insensitive", entries: sampleProducts(), query: "APPLE", want: []string{"Apples"}},
		{name: "product description", entries: sampleProducts(), query: "blueberries", want: []string{"Blueberry Muffin"}},
		{name: "product seller", entries: sampleProducts(), query: "rye &", want: []string{"Sourdough Loaf", "Blueberry Muffin"}},
		{name: "recipe description", entries: sampleRecipes(), query: "starter", want: []string{"Country Sourdough"}},
		{name: "recipe seller is not searched", entries: sampleRecipes(), query: "ignored", want: []string{}},
		{name: "no match", entries: sampleProducts(), query: "kale", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(Filter(tt.entries, FilterState{Query: tt.query})))
		})
	}
}

func TestDifficultyFilterOnlyConstrainsRecipes(t *testing.T) {
	assert.Equal(t, []string{"Apple Pancakes"}, names(Filter(sampleRecipes(), FilterState{Difficulty: "medium"})))
	assert.Len(t, Filter(sampleProducts(), FilterState{Difficulty: "hard"}), 3)
}

func TestFiltersComposeConjunctively(t *testing.T) {
	entries := append(sampleProducts(), sampleRecipes()...)
	states := []FilterState{
		{Category: "bakery", Query: "sourdough"},
		{Category: "bakery", Query: "apple"},
		{Category: "produce", Query: "orchard"},
		{Category: "bakery", Query: "sour", Difficulty: "hard"},
		{Category: All, Query: "apple", Difficulty: "easy"},
	}
	for _, st := range states {
		for _, e := range entries {
			want := Visible(e, FilterState{Category: st.Category}) &&
				Visible(e, FilterState{Query: st.Query}) &&
				Visible(e, FilterState{Difficulty: st.Difficulty})
			assert.Equal(t, want, Visible(e, st), "%s under %+v", e.Name, st)
		}
	}

	got := Filter(entries, FilterState{Category: "bakery", Query: "sourdough"})
	assert.Equal(t, []string{"Sourdough Loaf", "Country Sourdough"}, names(got))
}

func TestBakeryScenario(t *testing.T) {
	entries := []Entry{
		{Name: "Rye", Category: "bakery"},
		{Name: "Kale", Category: "produce"},
		{Name: "Bagel", Category: "bakery"},
	}
	assert.Equal(t, []bool{true, false, true}, Visibility(entries, FilterState{Category: "bakery"}))
}

func names(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}
