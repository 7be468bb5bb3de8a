package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cyphera/cyphera-tax/libs/go/types/api/params"
	"github.com/cyphera/cyphera-tax/libs/go/types/api/responses"
	"github.com/cyphera/cyphera-tax/libs/go/types/business"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type calculateOptions struct {
	taxpayerID string
	status     string
	gross      string
	itemized   string
	state      string
}

func newCalculateCommand(root *rootOptions) *cobra.Command {
	opts := &calculateOptions{}

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate tax for one taxpayer and print the result as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := root.taxService()
			if err != nil {
				return err
			}

			input, err := opts.params()
			if err != nil {
				return err
			}

			result, err := svc.CalculateTax(cmd.Context(), input)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(responses.NewTaxCalculationResponse(*result))
		},
	}

	cmd.Flags().StringVar(&opts.taxpayerID, "id", "", "Taxpayer ID")
	cmd.Flags().StringVar(&opts.status, "status", "", "Filing status: S, M or H")
	cmd.Flags().StringVar(&opts.gross, "gross", "", "Gross income")
	cmd.Flags().StringVar(&opts.itemized, "itemized", "0", "Itemized deductions")
	cmd.Flags().StringVar(&opts.state, "state", "", "Two-letter state code")
	_ = cmd.MarkFlagRequired("status")
	_ = cmd.MarkFlagRequired("gross")
	_ = cmd.MarkFlagRequired("state")

	return cmd
}

func (o *calculateOptions) params() (params.TaxCalculationParams, error) {
	gross, err := business.ParseAmount(o.gross)
	if err != nil {
		return params.TaxCalculationParams{}, fmt.Errorf("--gross %q: %w", o.gross, err)
	}
	itemized, err := business.ParseAmount(o.itemized)
	if err != nil {
		return params.TaxCalculationParams{}, fmt.Errorf("--itemized %q: %w", o.itemized, err)
	}

	return params.TaxCalculationParams{
		TaxpayerID:         o.taxpayerID,
		FilingStatus:       business.FilingStatus(strings.ToUpper(strings.TrimSpace(o.status))),
		GrossIncome:        decimal.NewNullDecimal(gross),
		ItemizedDeductions: decimal.NewNullDecimal(itemized),
		StateCode:          o.state,
	}, nil
}
