// Package export writes normalized, categorized transactions to CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"bankstmt/internal/amountutils"
	"bankstmt/internal/logging"
	"bankstmt/internal/models"
)

// Delimiter is the output CSV delimiter, configurable via the csv.delimiter
// config key.
var Delimiter rune = ','

// SetDelimiter sets the delimiter for CSV output.
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// transactionRow is the CSV projection of a normalized transaction. Amounts
// are rendered with two decimal places and the date keeps the statement's
// own textual layout.
type transactionRow struct {
	Date     string `csv:"Date"`
	Debit    string `csv:"Debit"`
	Credit   string `csv:"Credit"`
	Ref1     string `csv:"Ref1"`
	Ref2     string `csv:"Ref2"`
	Ref3     string `csv:"Ref3"`
	Category string `csv:"Category"`
}

// WriteTransactions writes the transaction set to a CSV file, creating the
// parent directory if needed.
func WriteTransactions(set *models.TransactionSet, csvFile string, logger logging.Logger) error {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if set == nil {
		return fmt.Errorf("cannot write nil transaction set to CSV")
	}

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		logger.WithError(err).Error("Failed to create output directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		logger.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := writeTo(file, set); err != nil {
		logger.WithError(err).Error("Failed to marshal transactions to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	logger.Info("Wrote transactions to CSV file",
		logging.Field{Key: "file", Value: csvFile},
		logging.Field{Key: "count", Value: set.Len()})
	return nil
}

func writeTo(w io.Writer, set *models.TransactionSet) error {
	rows := make([]transactionRow, 0, set.Len())
	for _, tx := range set.Transactions {
		rows = append(rows, transactionRow{
			Date:     tx.Date.Format(models.DateLayout),
			Debit:    amountutils.Format(tx.Debit),
			Credit:   amountutils.Format(tx.Credit),
			Ref1:     tx.Ref1,
			Ref2:     tx.Ref2,
			Ref3:     tx.Ref3,
			Category: tx.Category,
		})
	}

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = Delimiter
	return gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter))
}
