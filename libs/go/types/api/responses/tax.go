package responses

import (
	"fmt"

	"github.com/cyphera/cyphera-tax/libs/go/types/business"
	"github.com/shopspring/decimal"
)

// TaxCalculationResult contains the calculated federal and state tax for one taxpayer.
// Currency fields are rounded to 2 places; EffectiveRate is a percentage.
type TaxCalculationResult struct {
	TaxpayerID    string                `json:"taxpayer_id"`
	FederalTax    decimal.Decimal       `json:"federal_tax"`
	StateTax      decimal.Decimal       `json:"state_tax"`
	TotalTax      decimal.Decimal       `json:"total_tax"`
	EffectiveRate decimal.Decimal       `json:"effective_rate"`
	TaxableIncome decimal.Decimal       `json:"taxable_income"`
	DeductionUsed decimal.Decimal       `json:"deduction_used"`
	FilingStatus  business.FilingStatus `json:"filing_status"`
}

// String summarises the result for CLI and debugging output. It includes the taxpayer
// id, so it must not be passed to a logger.
func (r TaxCalculationResult) String() string {
	return fmt.Sprintf("taxpayer=%s federal=%s state=%s total=%s rate=%s%%",
		r.TaxpayerID,
		r.FederalTax.StringFixed(2),
		r.StateTax.StringFixed(2),
		r.TotalTax.StringFixed(2),
		r.EffectiveRate.String())
}

// BracketResponse is one federal tier; UpTo is omitted for the top tier
type BracketResponse struct {
	UpTo *string `json:"up_to,omitempty"`
	Rate string  `json:"rate"`
}

// TaxTablesResponse describes the tables the calculator is using
type TaxTablesResponse struct {
	Year               int               `json:"year"`
	StandardDeductions map[string]string `json:"standard_deductions"`
	FederalBrackets    []BracketResponse `json:"federal_brackets"`
	StateRates         map[string]string `json:"state_rates"`
	DefaultStateRate   string            `json:"default_state_rate"`
}

// NewTaxTablesResponse converts tables into their JSON form
func NewTaxTablesResponse(tables business.TaxTables) TaxTablesResponse {
	deductions := make(map[string]string)
	for _, status := range business.FilingStatuses() {
		deductions[status.Code()] = tables.StandardDeduction(status).String()
	}

	brackets := make([]BracketResponse, 0)
	for _, tier := range tables.Brackets() {
		bracket := BracketResponse{Rate: tier.Rate.String()}
		if tier.Bounded() {
			upTo := tier.UpTo.Decimal.String()
			bracket.UpTo = &upTo
		}
		brackets = append(brackets, bracket)
	}

	stateRates := make(map[string]string)
	for _, code := range tables.StateCodes() {
		stateRates[code] = tables.StateRate(code).String()
	}

	return TaxTablesResponse{
		Year:               tables.Year(),
		StandardDeductions: deductions,
		FederalBrackets:    brackets,
		StateRates:         stateRates,
		DefaultStateRate:   tables.DefaultStateRate().String(),
	}
}

// TaxCalculationResponse is the JSON view of a result with currency fixed to 2 places
type TaxCalculationResponse struct {
	TaxpayerID    string `json:"taxpayer_id"`
	FilingStatus  string `json:"filing_status"`
	DeductionUsed string `json:"deduction_used"`
	TaxableIncome string `json:"taxable_income"`
	FederalTax    string `json:"federal_tax"`
	StateTax      string `json:"state_tax"`
	TotalTax      string `json:"total_tax"`
	EffectiveRate string `json:"effective_rate"`
}

// NewTaxCalculationResponse converts a result into its JSON form
func NewTaxCalculationResponse(r TaxCalculationResult) TaxCalculationResponse {
	return TaxCalculationResponse{
		TaxpayerID:    r.TaxpayerID,
		FilingStatus:  r.FilingStatus.Code(),
		DeductionUsed: r.DeductionUsed.StringFixed(2),
		TaxableIncome: r.TaxableIncome.StringFixed(2),
		FederalTax:    r.FederalTax.StringFixed(2),
		StateTax:      r.StateTax.StringFixed(2),
		TotalTax:      r.TotalTax.StringFixed(2),
		EffectiveRate: r.EffectiveRate.StringFixed(2),
	}
}
