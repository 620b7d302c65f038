// Package report renders summary aggregations as serialized documents.
package report

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"bankstmt/internal/amountutils"
	"bankstmt/internal/logging"
	"bankstmt/internal/models"
	"bankstmt/internal/summary"
)

// ExpenseRow is one line of the expense breakdown, with the total already
// formatted for presentation.
type ExpenseRow struct {
	Category string `json:"category" yaml:"category"`
	Total    string `json:"total" yaml:"total"`
}

// Report is the serializable summary of one loaded statement: expense
// breakdown by category plus debit and credit totals. Amounts are rendered
// with two decimal places.
type Report struct {
	Transactions int          `json:"transactions" yaml:"transactions"`
	Expenses     []ExpenseRow `json:"expenses" yaml:"expenses"`
	TotalDebit   string       `json:"total_debit" yaml:"total_debit"`
	TotalCredit  string       `json:"total_credit" yaml:"total_credit"`
}

// Generator builds and serializes summary reports.
type Generator struct {
	logger logging.Logger
}

// NewGenerator creates a Generator.
func NewGenerator(logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Generator{logger: logger}
}

// Build aggregates a transaction set into a Report.
func (g *Generator) Build(set *models.TransactionSet) *Report {
	debits := set.Debits()
	credits := set.Credits()

	totals := summary.ByCategory(debits, summary.FieldDebit)
	expenses := make([]ExpenseRow, 0, len(totals))
	for _, row := range totals {
		expenses = append(expenses, ExpenseRow{
			Category: row.Category,
			Total:    amountutils.Format(row.Total),
		})
	}

	return &Report{
		Transactions: set.Len(),
		Expenses:     expenses,
		TotalDebit:   amountutils.Format(summary.Total(debits, summary.FieldDebit)),
		TotalCredit:  amountutils.Format(summary.Total(credits, summary.FieldCredit)),
	}
}

// Render serializes a report in the requested format ("json" or "yaml").
func (g *Generator) Render(r *Report, format string) ([]byte, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			g.logger.WithError(err).Error("Failed to marshal JSON report")
			return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
		}
		return data, nil
	case "yaml":
		data, err := yaml.Marshal(r)
		if err != nil {
			g.logger.WithError(err).Error("Failed to marshal YAML report")
			return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}
