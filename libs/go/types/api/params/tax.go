package params

import (
	"github.com/cyphera/cyphera-tax/libs/go/types/business"
	"github.com/shopspring/decimal"
)

// TaxCalculationParams contains the inputs for one individual income tax calculation.
// Money fields are nullable so a missing value can be rejected rather than read as zero.
type TaxCalculationParams struct {
	TaxpayerID         string
	FilingStatus       business.FilingStatus
	GrossIncome        decimal.NullDecimal
	ItemizedDeductions decimal.NullDecimal
	StateCode          string
}

// TaxpayerCalculationParams calculates tax for a stored taxpayer. Nil overrides fall back
// to the stored values.
type TaxpayerCalculationParams struct {
	TaxpayerID         string
	ItemizedDeductions *decimal.Decimal
	StateCode          *string
}
