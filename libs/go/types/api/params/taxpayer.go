package params

import (
	"github.com/cyphera/cyphera-tax/libs/go/types/business"
	"github.com/shopspring/decimal"
)

// CreateTaxpayerParams contains parameters for storing a new taxpayer
type CreateTaxpayerParams struct {
	TaxpayerID         string
	SSN                string
	Name               string
	FilingStatus       business.FilingStatus
	GrossIncome        decimal.Decimal
	ItemizedDeductions decimal.Decimal
	StateCode          string
}

// UpdateTaxpayerFieldParams changes a single whitelisted field. Value is the
// external string form (e.g. "52000.00", "S", "ny").
type UpdateTaxpayerFieldParams struct {
	TaxpayerID string
	Field      string
	Value      string
}
