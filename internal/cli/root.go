// Package cli implements the taxctl command line tool.
package cli

import (
	"github.com/cyphera/cyphera-tax/libs/go/config"
	"github.com/cyphera/cyphera-tax/libs/go/logger"
	"github.com/cyphera/cyphera-tax/libs/go/services"
	"github.com/spf13/cobra"
)

// Build information, set with -ldflags at release time
var (
	Version   = "dev"
	BuildDate = "unknown"
)

type rootOptions struct {
	tablesFile string
	verbose    bool
}

// NewRootCommand builds the taxctl command tree
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "taxctl",
		Short: "Calculate individual income tax from the command line",
		Long: `taxctl runs the same federal and state tax calculation as the API.

Examples:
  taxctl calculate --id TP-1 --status S --gross 50000 --state TX
  taxctl batch --in taxpayers.csv --out results.xlsx
  taxctl tables --tables ./config/tax_tables.yaml`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := "warn"
			if opts.verbose {
				level = "debug"
			}
			logger.InitLoggerWithConfig(logger.LoggerConfig{Level: level, Stage: "cli"})
		},
	}

	root.PersistentFlags().StringVar(&opts.tablesFile, "tables", "", "Path to a YAML tax tables file (built-in tables when empty)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging on stderr")

	root.AddCommand(
		newCalculateCommand(opts),
		newBatchCommand(opts),
		newTablesCommand(opts),
		newKeysCommand(),
		newVersionCommand(),
	)
	return root
}

// Execute runs the root command with os.Args
func Execute() error {
	defer func() { _ = logger.Sync() }()
	return NewRootCommand().Execute()
}

func (o *rootOptions) taxService() (*services.TaxService, error) {
	tables, err := config.LoadTaxTables(o.tablesFile)
	if err != nil {
		return nil, err
	}
	return services.NewTaxService(tables), nil
}
