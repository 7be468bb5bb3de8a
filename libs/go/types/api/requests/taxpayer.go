package requests

// CreateTaxpayerRequest is the body of POST /taxpayers
type CreateTaxpayerRequest struct {
	TaxpayerID         string `json:"taxpayer_id" binding:"required"`
	SSN                string `json:"ssn" binding:"required"`
	Name               string `json:"name" binding:"required"`
	FilingStatus       string `json:"filing_status" binding:"required"`
	GrossIncome        string `json:"gross_income" binding:"required"`
	ItemizedDeductions string `json:"itemized_deductions"`
	StateCode          string `json:"state_code" binding:"required,len=2"`
}

// UpdateTaxpayerRequest is the body of PATCH /taxpayers/:taxpayer_id
type UpdateTaxpayerRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value" binding:"required"`
}
