// Package root contains the root command and the shared wiring every
// subcommand relies on.
package root

import (
	"bankstmt/internal/categorizer"
	"bankstmt/internal/config"
	"bankstmt/internal/export"
	"bankstmt/internal/logging"
	"bankstmt/internal/store"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags shared by multiple commands.
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logging.GetLogger()

	// Cfg is the loaded application configuration
	Cfg *config.Config

	// Store is the category rule store, loaded once per invocation
	Store *store.CategoryStore

	// Categorizer is the shared categorization engine
	Categorizer *categorizer.Categorizer

	// SharedFlags holds flag values common to all commands
	SharedFlags = CommonFlags{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "bankstmt",
		Short: "Normalize, categorize and summarize bank statement exports.",
		Long: `bankstmt repairs raw bank statement CSV exports, normalizes them into
typed transactions, assigns categories via user-trainable keyword rules and
produces category summaries.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to bankstmt!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.WithError(err).Fatal("Failed to load configuration")
			}
			Cfg = cfg

			Log = logging.NewLogrusAdapterFromLogger(config.ConfigureLoggingFromConfig(cfg))
			export.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])

			Store = store.NewCategoryStore(cfg.Store.File, Log)
			if err := Store.Load(); err != nil {
				Log.WithError(err).Fatal("Failed to load category rules")
			}
			Categorizer = categorizer.NewCategorizer(Store, Log)
		},
	}
)

// Init registers the persistent flags on the root command.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input statement file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
}
