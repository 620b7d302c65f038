package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchText(t *testing.T) {
	tx := Transaction{Ref1: "NTUC FairPrice", Ref2: "", Ref3: "CARD 1234"}
	assert.Equal(t, "ntuc fairprice  card 1234", tx.SearchText())

	empty := Transaction{}
	assert.Equal(t, "", empty.SearchText())
}

func TestDirectionHelpers(t *testing.T) {
	debit := Transaction{Debit: decimal.NewFromInt(10)}
	assert.True(t, debit.IsDebit())
	assert.False(t, debit.IsCredit())

	credit := Transaction{Credit: decimal.NewFromInt(10)}
	assert.True(t, credit.IsCredit())
	assert.False(t, credit.IsDebit())

	zero := Transaction{}
	assert.False(t, zero.IsDebit())
	assert.False(t, zero.IsCredit())
}

func TestViewsAreProjections(t *testing.T) {
	set := &TransactionSet{Transactions: []Transaction{
		{Debit: decimal.NewFromInt(10), Category: CategoryUncategorized},
		{Credit: decimal.NewFromInt(20), Category: CategoryUncategorized},
	}}

	debits := set.Debits()
	require.Len(t, debits, 1)
	require.Len(t, set.Credits(), 1)

	// A correction through a view is visible on the master set.
	debits[0].Category = "Food"
	assert.Equal(t, "Food", set.Transactions[0].Category)
}
