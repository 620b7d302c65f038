// Package models defines the core data types shared across the application.
package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CategoryUncategorized is the reserved category every transaction starts in.
// It always exists in the rule set, holds no keywords and is never a match target.
const CategoryUncategorized = "Uncategorized"

// DateLayout is the fixed textual date format used by the statement export,
// e.g. "05 Jan 2024".
const DateLayout = "02 Jan 2006"

// Transaction represents one normalized statement line.
// Exactly one of Debit/Credit is expected to be non-zero for real-world
// transactions, but both are derived independently and not cross-validated.
type Transaction struct {
	Date     time.Time
	Debit    decimal.Decimal
	Credit   decimal.Decimal
	Ref1     string
	Ref2     string
	Ref3     string
	Category string
}

// IsDebit returns true if the transaction has a positive outflow amount.
func (t Transaction) IsDebit() bool {
	return t.Debit.IsPositive()
}

// IsCredit returns true if the transaction has a positive inflow amount.
func (t Transaction) IsCredit() bool {
	return t.Credit.IsPositive()
}

// SearchText builds the lowercased match string for keyword categorization:
// the three reference fields joined by single spaces, trimmed.
func (t Transaction) SearchText() string {
	joined := strings.Join([]string{t.Ref1, t.Ref2, t.Ref3}, " ")
	return strings.TrimSpace(strings.ToLower(joined))
}

// TransactionSet is the full ordered sequence of transactions produced by one
// upload. It is the single source of truth: the debit and credit views are
// projections of pointers into it, so a category correction made through a
// view is visible everywhere.
type TransactionSet struct {
	Transactions []Transaction
}

// Debits returns pointers to all transactions with a positive debit amount.
func (s *TransactionSet) Debits() []*Transaction {
	var out []*Transaction
	for i := range s.Transactions {
		if s.Transactions[i].IsDebit() {
			out = append(out, &s.Transactions[i])
		}
	}
	return out
}

// Credits returns pointers to all transactions with a positive credit amount.
func (s *TransactionSet) Credits() []*Transaction {
	var out []*Transaction
	for i := range s.Transactions {
		if s.Transactions[i].IsCredit() {
			out = append(out, &s.Transactions[i])
		}
	}
	return out
}

// Len returns the number of transactions in the set.
func (s *TransactionSet) Len() int {
	return len(s.Transactions)
}
