// Package summary aggregates categorized transactions into per-category
// totals for presentation.
package summary

import (
	"sort"

	"github.com/shopspring/decimal"

	"bankstmt/internal/models"
)

// AmountField selects which amount column an aggregation sums.
type AmountField string

const (
	FieldDebit  AmountField = "debit"
	FieldCredit AmountField = "credit"
)

func (f AmountField) amount(t *models.Transaction) decimal.Decimal {
	if f == FieldCredit {
		return t.Credit
	}
	return t.Debit
}

// CategoryTotal is one row of a category breakdown.
type CategoryTotal struct {
	Category string          `json:"category" yaml:"category"`
	Total    decimal.Decimal `json:"total" yaml:"total"`
}

// ByCategory groups the transactions by category and sums the selected amount
// field per group. The result is sorted by total descending; ties break on
// category name so the output is deterministic.
func ByCategory(txs []*models.Transaction, field AmountField) []CategoryTotal {
	totals := make(map[string]decimal.Decimal)
	for _, tx := range txs {
		totals[tx.Category] = totals[tx.Category].Add(field.amount(tx))
	}

	out := make([]CategoryTotal, 0, len(totals))
	for category, total := range totals {
		out = append(out, CategoryTotal{Category: category, Total: total})
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[i].Total.GreaterThan(out[j].Total)
		}
		return out[i].Category < out[j].Category
	})

	return out
}

// Total sums the selected amount field over all transactions.
func Total(txs []*models.Transaction, field AmountField) decimal.Decimal {
	sum := decimal.Zero
	for _, tx := range txs {
		sum = sum.Add(field.amount(tx))
	}
	return sum
}
