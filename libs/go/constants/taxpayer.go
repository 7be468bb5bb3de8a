package constants

// Taxpayer fields that may be changed through the update operation.
// Anything not listed here is rejected before reaching the store.
const (
	TaxpayerFieldName               = "name"
	TaxpayerFieldFilingStatus       = "filing_status"
	TaxpayerFieldGrossIncome        = "gross_income"
	TaxpayerFieldItemizedDeductions = "itemized_deductions"
	TaxpayerFieldStateCode          = "state_code"
)

// Context keys set by the auth middleware
const (
	PrincipalContextKey         = "principal"
	APIKeyFingerprintContextKey = "api_key_fingerprint"
)
