package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"farmstand/pkg/money"
)

// SortKey names one of the orderings offered by the sort select.
type SortKey string

const (
	SortNone      SortKey = ""
	SortName      SortKey = "name"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
)

var maxRating = decimal.NewFromInt(5)

// ParseSortKey validates user input; the empty string means "keep page order".
func ParseSortKey(s string) (SortKey, error) {
	switch key := SortKey(strings.TrimSpace(s)); key {
	case SortNone, SortName, SortPriceLow, SortPriceHigh, SortRating:
		return key, nil
	default:
		return SortNone, fmt.Errorf("%w: %q", ErrUnknownSortKey, s)
	}
}

// sortValue is a parsed numeric key; ok=false ranks below every real value.
type sortValue struct {
	v  decimal.Decimal
	ok bool
}

func compareValues(a, b sortValue) int {
	switch {
	case !a.ok && !b.ok:
		return 0
	case !a.ok:
		return -1
	case !b.ok:
		return 1
	default:
		return a.v.Cmp(b.v)
	}
}

// PriceValue prefers the data-price attribute and falls back to the visible label.
func PriceValue(e Entry) (decimal.Decimal, bool) {
	for _, raw := range []string{e.Price, e.PriceLabel} {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		if v, err := money.Parse(raw); err == nil {
			return v, true
		}
	}
	return decimal.Zero, false
}

// RatingValue parses the data-rating attribute; anything outside [0,5] is rejected.
func RatingValue(e Entry) (decimal.Decimal, bool) {
	v, err := decimal.NewFromString(strings.TrimSpace(e.Rating))
	if err != nil || v.IsNegative() || v.GreaterThan(maxRating) {
		return decimal.Zero, false
	}
	return v, true
}

// Order returns the permutation that sorts entries by key. The sort is stable and an
// unknown key leaves the page order untouched.
func Order(entries []Entry, key SortKey) []int {
	idx := make([]int, len(entries))
	for i := range idx {
		idx[i] = i
	}

	var cmp func(a, b int) int
	switch key {
	case SortName:
		// Collators keep internal buffers, so each call gets its own.
		col := collate.New(language.English)
		cmp = func(a, b int) int {
			return col.CompareString(entries[a].Name, entries[b].Name)
		}
	case SortPriceLow, SortPriceHigh:
		prices := make([]sortValue, len(entries))
		for i, e := range entries {
			v, ok := PriceValue(e)
			prices[i] = sortValue{v: v, ok: ok}
		}
		if key == SortPriceLow {
			cmp = func(a, b int) int { return compareValues(prices[a], prices[b]) }
		} else {
			cmp = func(a, b int) int { return compareValues(prices[b], prices[a]) }
		}
	case SortRating:
		ratings := make([]sortValue, len(entries))
		for i, e := range entries {
			v, ok := RatingValue(e)
			ratings[i] = sortValue{v: v, ok: ok}
		}
		cmp = func(a, b int) int { return compareValues(ratings[b], ratings[a]) }
	default:
		return idx
	}

	slices.SortStableFunc(idx, cmp)
	return idx
}

// Sort returns a reordered copy of entries.
func Sort(entries []Entry, key SortKey) []Entry {
	order := Order(entries, key)
	out := make([]Entry, len(order))
	for i, j := range order {
		out[i] = entries[j]
	}
	return out
}
