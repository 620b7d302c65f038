// Package load implements the command that runs the full statement pipeline
// and writes the normalized, categorized transactions to CSV.
package load

import (
	"bankstmt/cmd/root"
	"bankstmt/internal/export"
	"bankstmt/internal/logging"
	"bankstmt/internal/statement"

	"github.com/spf13/cobra"
)

// Cmd represents the load command
var Cmd = &cobra.Command{
	Use:   "load",
	Short: "Load a statement export and write normalized transactions to CSV",
	Long: `Load repairs a raw statement export, normalizes it into typed
transactions, categorizes them against the current keyword rules and writes
the result as a standard CSV file.`,
	Run: loadFunc,
}

func loadFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" {
		root.Log.Fatal("An input statement file is required (--input)")
	}
	if root.SharedFlags.Output == "" {
		root.Log.Fatal("An output CSV file is required (--output)")
	}

	loader := statement.NewLoader(root.Categorizer, root.Log)
	set, err := loader.LoadFile(root.SharedFlags.Input)
	if err != nil {
		root.Log.WithError(err).Fatal("Failed to load statement")
	}

	if err := export.WriteTransactions(set, root.SharedFlags.Output, root.Log); err != nil {
		root.Log.WithError(err).Fatal("Failed to write transactions")
	}

	root.Log.Info("Statement loaded",
		logging.Field{Key: "transactions", Value: set.Len()},
		logging.Field{Key: "debits", Value: len(set.Debits())},
		logging.Field{Key: "credits", Value: len(set.Credits())})
}
