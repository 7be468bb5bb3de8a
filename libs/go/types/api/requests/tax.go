package requests

// CalculateTaxRequest is the body of POST /tax/calculate. Money values are
// strings so they are parsed as exact decimals. Fields are checked by the
// calculator, not by binding, so every rejection carries its field message.
type CalculateTaxRequest struct {
	TaxpayerID         string  `json:"taxpayer_id"`
	FilingStatus       string  `json:"filing_status"`
	GrossIncome        *string `json:"gross_income"`
	ItemizedDeductions *string `json:"itemized_deductions"`
	StateCode          string  `json:"state_code"`
}

// CalculateForTaxpayerRequest optionally overrides stored values
type CalculateForTaxpayerRequest struct {
	ItemizedDeductions *string `json:"itemized_deductions,omitempty"`
	StateCode          *string `json:"state_code,omitempty"`
}
