package cli

import (
	"github.com/cyphera/cyphera-tax/libs/go/config"
	"github.com/spf13/cobra"
)

func newTablesCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "Print the tax tables in effect as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tables, err := config.LoadTaxTables(root.tablesFile)
			if err != nil {
				return err
			}
			data, err := config.MarshalTaxTables(tables)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
