// Package amountutils provides decimal amount coercion for statement fields.
package amountutils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Coerce converts the raw text of an amount column into a decimal value.
// Thousands-separator commas are removed before parsing ("1,234.50" ->
// 1234.50). Blank or unparsable values coerce to zero rather than failing:
// amount columns are legitimately empty on the opposite leg of a transaction.
// Negative values are accepted as-is. Coercion is idempotent: a value that is
// already comma-free and numeric round-trips unchanged.
func Coerce(raw string) (decimal.Decimal, bool) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if cleaned == "" {
		return decimal.Zero, true
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	return amount, true
}

// Format renders an amount with two decimal places for display and export.
func Format(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
