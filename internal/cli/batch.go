package cli

import (
	"fmt"
	"os"

	"github.com/cyphera/cyphera-tax/internal/batch"
	"github.com/spf13/cobra"
)

func newBatchCommand(root *rootOptions) *cobra.Command {
	var inPath, outPath string

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Calculate tax for every row of a CSV file and write an XLSX workbook",
		Long: `Rows are processed one at a time in file order. The input header must be:

  taxpayer_id,filing_status,gross_income,itemized_deductions,state_code

Valid rows are written to the Results sheet and rejected rows to the Errors sheet.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := root.taxService()
			if err != nil {
				return err
			}

			in, err := os.Open(inPath)
			if err != nil {
				return fmt.Errorf("failed to open input: %w", err)
			}
			defer in.Close()

			out, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("failed to create output: %w", err)
			}

			report, err := batch.Run(cmd.Context(), svc, in, out)
			if cerr := out.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("failed to close output: %w", cerr)
			}
			if err != nil {
				_ = os.Remove(outPath)
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Processed %d rows: %d calculated, %d rejected\n",
				report.Processed(), len(report.Results), len(report.Errors))
			return nil
		},
	}

	cmd.Flags().StringVar(&inPath, "in", "", "Input CSV file")
	cmd.Flags().StringVar(&outPath, "out", "results.xlsx", "Output XLSX file")
	_ = cmd.MarkFlagRequired("in")

	return cmd
}
