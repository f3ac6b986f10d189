package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrMalformed marks labels that carry no parseable amount.
var ErrMalformed = errors.New("malformed price")

// Zero is the price every recipe carries.
const Zero = "$0.00"

// unitSuffixes lists the selling units the storefront prints after a price.
var unitSuffixes = []string{"/lb", "/each", "/dozen"}

// Parse turns a storefront label such as "$2.50/lb" into its numeric amount.
func Parse(label string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(label)
	raw = strings.TrimPrefix(raw, "$")
	for _, suffix := range unitSuffixes {
		if strings.HasSuffix(raw, suffix) {
			raw = strings.TrimSuffix(raw, suffix)
			break
		}
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrMalformed, label)
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrMalformed, label)
	}
	return amount, nil
}

// Format renders an amount with the dollar sign and two decimal places, rounding half away from zero.
func Format(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}
