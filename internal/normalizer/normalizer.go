// Package normalizer parses cleaned statement text into a typed transaction
// set. Source column headers are renamed to canonical fields, amount columns
// are coerced to decimals and the date column to a calendar date.
package normalizer

import (
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"bankstmt/internal/amountutils"
	"bankstmt/internal/logging"
	"bankstmt/internal/models"
	"bankstmt/internal/parsererror"
)

// columnRenames maps the export's column headers to canonical field names.
// Headers are whitespace-trimmed before lookup. Columns without a mapping are
// ignored: the typed Transaction record has no home for them, and the stray
// unlabeled trailing column produced by the export's comma padding matches
// nothing here either.
var columnRenames = map[string]string{
	"Transaction Date": "date",
	"Debit Amount":     "debit",
	"Credit Amount":    "credit",
	"Transaction Ref1": "ref1",
	"Transaction Ref2": "ref2",
	"Transaction Ref3": "ref3",
}

// Normalize parses cleaned statement text into a TransactionSet. Rows before
// headerIndex are skipped as preamble; the header row supplies column names.
// A date that does not match the statement layout aborts the whole load with
// a DateParseError. Amounts that fail to parse coerce to zero. Every
// transaction starts in the reserved "Uncategorized" category.
func Normalize(cleaned string, headerIndex int, logger logging.Logger) (*models.TransactionSet, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}

	lines := strings.Split(cleaned, "\n")
	if headerIndex >= len(lines) {
		return nil, fmt.Errorf("header index %d out of range for %d lines", headerIndex, len(lines))
	}

	// Preamble rows are free text and not guaranteed to be valid CSV, so the
	// table starts at the header line.
	table := strings.Join(lines[headerIndex:], "\n")

	reader := csv.NewReader(strings.NewReader(table))
	// Post-repair data rows are ragged: stripping trailing commas leaves them
	// with fewer fields than the header.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error parsing statement table: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("statement table is empty")
	}

	columns := mapColumns(records[0])

	set := &models.TransactionSet{}
	for i, record := range records[1:] {
		if isBlankRow(record) {
			continue
		}

		tx, err := normalizeRow(record, columns, i+1, logger)
		if err != nil {
			return nil, err
		}
		set.Transactions = append(set.Transactions, tx)
	}

	logger.Info("Normalized statement rows",
		logging.Field{Key: "count", Value: set.Len()})

	return set, nil
}

// mapColumns resolves each header cell to its canonical field name, keyed by
// position. Header cells are trimmed before lookup.
func mapColumns(header []string) map[int]string {
	columns := make(map[int]string, len(header))
	for i, name := range header {
		if canonical, ok := columnRenames[strings.TrimSpace(name)]; ok {
			columns[i] = canonical
		}
	}
	return columns
}

func normalizeRow(record []string, columns map[int]string, row int, logger logging.Logger) (models.Transaction, error) {
	tx := models.Transaction{Category: models.CategoryUncategorized}

	for i, raw := range record {
		field, ok := columns[i]
		if !ok {
			continue
		}

		switch field {
		case "date":
			date, err := time.Parse(models.DateLayout, strings.TrimSpace(raw))
			if err != nil {
				return models.Transaction{}, &parsererror.DateParseError{
					Row:    row,
					Value:  raw,
					Layout: models.DateLayout,
					Err:    err,
				}
			}
			tx.Date = date
		case "debit":
			amount, ok := amountutils.Coerce(raw)
			if !ok {
				logger.Debug("Debit amount coerced to zero",
					logging.Field{Key: "row", Value: row},
					logging.Field{Key: "value", Value: raw})
			}
			tx.Debit = amount
		case "credit":
			amount, ok := amountutils.Coerce(raw)
			if !ok {
				logger.Debug("Credit amount coerced to zero",
					logging.Field{Key: "row", Value: row},
					logging.Field{Key: "value", Value: raw})
			}
			tx.Credit = amount
		case "ref1":
			tx.Ref1 = strings.TrimSpace(raw)
		case "ref2":
			tx.Ref2 = strings.TrimSpace(raw)
		case "ref3":
			tx.Ref3 = strings.TrimSpace(raw)
		}
	}

	return tx, nil
}

func isBlankRow(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
