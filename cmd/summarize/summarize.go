// Package summarize implements the command that prints or serializes the
// category breakdown of a loaded statement.
package summarize

import (
	"fmt"
	"os"
	"text/tabwriter"

	"bankstmt/cmd/root"
	"bankstmt/internal/report"
	"bankstmt/internal/statement"

	"github.com/spf13/cobra"
)

var format string

// Cmd represents the summarize command
var Cmd = &cobra.Command{
	Use:   "summarize",
	Short: "Summarize a statement export by category",
	Long: `Summarize runs the load pipeline over a statement export and prints the
expense breakdown by category together with the income total. With --format
the summary is serialized as JSON or YAML instead, to stdout or --output.`,
	Run: summarizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&format, "format", "f", "", "Serialize the summary (json or yaml)")
}

func summarizeFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" {
		root.Log.Fatal("An input statement file is required (--input)")
	}

	loader := statement.NewLoader(root.Categorizer, root.Log)
	set, err := loader.LoadFile(root.SharedFlags.Input)
	if err != nil {
		root.Log.WithError(err).Fatal("Failed to load statement")
	}

	generator := report.NewGenerator(root.Log)
	rep := generator.Build(set)

	if format == "" {
		printTable(rep)
		return
	}

	data, err := generator.Render(rep, format)
	if err != nil {
		root.Log.WithError(err).Fatal("Failed to render summary")
	}

	if root.SharedFlags.Output == "" {
		fmt.Print(string(data))
		return
	}
	if err := os.WriteFile(root.SharedFlags.Output, data, 0644); err != nil {
		root.Log.WithError(err).Fatal("Failed to write summary")
	}
}

func printTable(rep *report.Report) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tTOTAL")
	for _, row := range rep.Expenses {
		fmt.Fprintf(w, "%s\t%s\n", row.Category, row.Total)
	}
	fmt.Fprintf(w, "\nTotal expenses\t%s\n", rep.TotalDebit)
	fmt.Fprintf(w, "Total income\t%s\n", rep.TotalCredit)
	if err := w.Flush(); err != nil {
		root.Log.WithError(err).Warn("Failed to flush summary table")
	}
}
