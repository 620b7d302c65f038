package summary

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bankstmt/internal/models"
)

func tx(category string, debit, credit string) *models.Transaction {
	return &models.Transaction{
		Category: category,
		Debit:    decimal.RequireFromString(debit),
		Credit:   decimal.RequireFromString(credit),
	}
}

func TestByCategory(t *testing.T) {
	txs := []*models.Transaction{
		tx("Food", "10", "0"),
		tx("Food", "5", "0"),
		tx("Transport", "20", "0"),
	}

	totals := ByCategory(txs, FieldDebit)
	require.Len(t, totals, 2)

	assert.Equal(t, "Transport", totals[0].Category)
	assert.True(t, totals[0].Total.Equal(decimal.NewFromInt(20)))
	assert.Equal(t, "Food", totals[1].Category)
	assert.True(t, totals[1].Total.Equal(decimal.NewFromInt(15)))
}

func TestByCategoryTieBreaksOnName(t *testing.T) {
	txs := []*models.Transaction{
		tx("Zed", "10", "0"),
		tx("Alpha", "10", "0"),
	}

	totals := ByCategory(txs, FieldDebit)
	require.Len(t, totals, 2)
	assert.Equal(t, "Alpha", totals[0].Category)
	assert.Equal(t, "Zed", totals[1].Category)
}

func TestByCategoryEmpty(t *testing.T) {
	assert.Empty(t, ByCategory(nil, FieldDebit))
}

func TestTotal(t *testing.T) {
	txs := []*models.Transaction{
		tx("Salary", "0", "3000.00"),
		tx("Refund", "0", "12.50"),
	}

	total := Total(txs, FieldCredit)
	assert.True(t, total.Equal(decimal.RequireFromString("3012.50")))
}
