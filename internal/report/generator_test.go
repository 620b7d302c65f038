package report

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"bankstmt/internal/models"
)

func sampleSet() *models.TransactionSet {
	return &models.TransactionSet{Transactions: []models.Transaction{
		{Debit: decimal.NewFromInt(10), Category: "Food"},
		{Debit: decimal.NewFromInt(5), Category: "Food"},
		{Debit: decimal.NewFromInt(20), Category: "Transport"},
		{Credit: decimal.RequireFromString("3000.00"), Category: models.CategoryUncategorized},
	}}
}

func TestBuild(t *testing.T) {
	g := NewGenerator(nil)
	rep := g.Build(sampleSet())

	assert.Equal(t, 4, rep.Transactions)
	require.Len(t, rep.Expenses, 2)
	assert.Equal(t, ExpenseRow{Category: "Transport", Total: "20.00"}, rep.Expenses[0])
	assert.Equal(t, ExpenseRow{Category: "Food", Total: "15.00"}, rep.Expenses[1])
	assert.Equal(t, "35.00", rep.TotalDebit)
	assert.Equal(t, "3000.00", rep.TotalCredit)
}

func TestRenderJSON(t *testing.T) {
	g := NewGenerator(nil)
	data, err := g.Render(g.Build(sampleSet()), "json")
	require.NoError(t, err)

	var decoded Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 4, decoded.Transactions)
	assert.Equal(t, "35.00", decoded.TotalDebit)
}

func TestRenderYAML(t *testing.T) {
	g := NewGenerator(nil)
	data, err := g.Render(g.Build(sampleSet()), "yaml")
	require.NoError(t, err)

	var decoded Report
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, 4, decoded.Transactions)
	assert.Equal(t, "3000.00", decoded.TotalCredit)
}

func TestRenderUnsupportedFormat(t *testing.T) {
	g := NewGenerator(nil)
	_, err := g.Render(&Report{}, "xml")
	assert.Error(t, err)
}
