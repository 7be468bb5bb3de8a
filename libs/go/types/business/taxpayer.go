package business

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TaxpayerRecord is a decrypted taxpayer row
type TaxpayerRecord struct {
	TaxpayerID         string          `json:"taxpayer_id"`
	SSN                string          `json:"-"`
	Name               string          `json:"name"`
	FilingStatus       FilingStatus    `json:"filing_status"`
	GrossIncome        decimal.Decimal `json:"gross_income"`
	ItemizedDeductions decimal.Decimal `json:"itemized_deductions"`
	StateCode          string          `json:"state_code"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// MaskedSSN returns the SSN with everything but the last four digits hidden
func (r TaxpayerRecord) MaskedSSN() string {
	return MaskSSN(r.SSN)
}

// String shows only the masked SSN (last four digits). Name and income are left out.
func (r TaxpayerRecord) String() string {
	return fmt.Sprintf("TaxpayerRecord{ssn='%s', filingStatus=%s, state='%s'}",
		r.MaskedSSN(), r.FilingStatus.Name(), r.StateCode)
}

// MaskSSN keeps the last four characters of an SSN
func MaskSSN(ssn string) string {
	if len(ssn) < 4 {
		return "***-**-****"
	}
	return "***-**-" + ssn[len(ssn)-4:]
}

// Principal is the authenticated caller attached to a request by the auth middleware
type Principal struct {
	Subject string `json:"subject"`
	Role    string `json:"role"`
}
