package responses

import (
	"time"

	"github.com/cyphera/cyphera-tax/libs/go/types/business"
)

// TaxpayerResponse is the API view of a taxpayer. The SSN is always masked.
type TaxpayerResponse struct {
	TaxpayerID         string    `json:"taxpayer_id"`
	MaskedSSN          string    `json:"ssn"`
	Name               string    `json:"name"`
	FilingStatus       string    `json:"filing_status"`
	GrossIncome        string    `json:"gross_income"`
	ItemizedDeductions string    `json:"itemized_deductions"`
	StateCode          string    `json:"state_code"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// NewTaxpayerResponse converts a record to its API form
func NewTaxpayerResponse(record business.TaxpayerRecord) TaxpayerResponse {
	return TaxpayerResponse{
		TaxpayerID:         record.TaxpayerID,
		MaskedSSN:          record.MaskedSSN(),
		Name:               record.Name,
		FilingStatus:       record.FilingStatus.Code(),
		GrossIncome:        record.GrossIncome.StringFixed(2),
		ItemizedDeductions: record.ItemizedDeductions.StringFixed(2),
		StateCode:          record.StateCode,
		CreatedAt:          record.CreatedAt,
		UpdatedAt:          record.UpdatedAt,
	}
}

// PurgeTaxpayersResponse reports how many records were removed
type PurgeTaxpayersResponse struct {
	Deleted int64 `json:"deleted"`
}
