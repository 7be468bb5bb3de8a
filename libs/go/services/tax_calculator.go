package services

import (
	"strings"
	"unicode/utf8"

	"github.com/cyphera/cyphera-tax/libs/go/types/api/params"
	"github.com/cyphera/cyphera-tax/libs/go/types/api/responses"
	"github.com/cyphera/cyphera-tax/libs/go/types/business"
	"github.com/shopspring/decimal"
)

const (
	currencyPlaces      = 2
	effectiveRatePlaces = 4
)

var hundred = decimal.NewFromInt(100)

// TaxCalculator computes federal and state income tax from a fixed set of tables.
// It performs no I/O and holds no mutable state, so one instance can be shared freely.
type TaxCalculator struct {
	tables business.TaxTables
}

// NewTaxCalculator creates a calculator over tables
func NewTaxCalculator(tables business.TaxTables) *TaxCalculator {
	return &TaxCalculator{tables: tables}
}

// Tables returns the tables the calculator was built with
func (c *TaxCalculator) Tables() business.TaxTables {
	return c.tables
}

// Calculate validates input and returns the tax result. Invalid input returns an
// error wrapping business.ErrInvalidArgument and no result.
func (c *TaxCalculator) Calculate(input params.TaxCalculationParams) (responses.TaxCalculationResult, error) {
	if err := ValidateTaxInput(input); err != nil {
		return responses.TaxCalculationResult{}, err
	}

	gross := input.GrossIncome.Decimal
	itemized := input.ItemizedDeductions.Decimal

	deductionUsed := c.DeductionUsed(input.FilingStatus, itemized)

	taxableIncome := gross.Sub(deductionUsed)
	if taxableIncome.IsNegative() {
		taxableIncome = decimal.Zero
	}

	federalTax := c.FederalTax(taxableIncome)
	stateTax := c.StateTax(taxableIncome, input.StateCode)
	totalTax := federalTax.Add(stateTax)

	// The ratio is rounded to 4 places before scaling to a percentage
	effectiveRate := decimal.Zero
	if gross.IsPositive() {
		effectiveRate = totalTax.DivRound(gross, effectiveRatePlaces).Mul(hundred)
	}

	return responses.TaxCalculationResult{
		TaxpayerID:    input.TaxpayerID,
		FederalTax:    federalTax,
		StateTax:      stateTax,
		TotalTax:      totalTax,
		EffectiveRate: effectiveRate,
		TaxableIncome: taxableIncome.Round(currencyPlaces),
		DeductionUsed: deductionUsed.Round(currencyPlaces),
		FilingStatus:  input.FilingStatus,
	}, nil
}

// DeductionUsed returns the itemized amount when it is strictly greater than the
// standard deduction for status; ties go to the standard deduction.
func (c *TaxCalculator) DeductionUsed(status business.FilingStatus, itemized decimal.Decimal) decimal.Decimal {
	standard := c.tables.StandardDeduction(status)
	if itemized.GreaterThan(standard) {
		return itemized
	}
	return standard
}

// FederalTax applies the marginal brackets to taxableIncome. Income equal to a
// bracket bound is taxed entirely in the lower bracket.
func (c *TaxCalculator) FederalTax(taxableIncome decimal.Decimal) decimal.Decimal {
	tax := decimal.Zero
	lower := decimal.Zero
	for _, tier := range c.tables.Brackets() {
		if !tier.Bounded() || taxableIncome.LessThanOrEqual(tier.UpTo.Decimal) {
			tax = tax.Add(taxableIncome.Sub(lower).Mul(tier.Rate))
			break
		}
		tax = tax.Add(tier.UpTo.Decimal.Sub(lower).Mul(tier.Rate))
		lower = tier.UpTo.Decimal
	}
	return tax.Round(currencyPlaces)
}

// StateTax applies the flat state rate, falling back to the default rate for
// states that are not listed.
func (c *TaxCalculator) StateTax(taxableIncome decimal.Decimal, stateCode string) decimal.Decimal {
	rate := c.tables.StateRate(strings.ToUpper(stateCode))
	return taxableIncome.Mul(rate).Round(currencyPlaces)
}

// ValidateTaxInput checks input constraints in a fixed order and returns the first violation
func ValidateTaxInput(input params.TaxCalculationParams) error {
	if strings.TrimSpace(input.TaxpayerID) == "" {
		return business.NewValidationError("taxpayer_id", "Taxpayer ID cannot be null or empty")
	}
	if !input.GrossIncome.Valid || input.GrossIncome.Decimal.IsNegative() {
		return business.NewValidationError("gross_income", "Gross income cannot be null or negative")
	}
	if !input.ItemizedDeductions.Valid || input.ItemizedDeductions.Decimal.IsNegative() {
		return business.NewValidationError("itemized_deductions", "Itemized deductions cannot be null or negative")
	}
	if utf8.RuneCountInString(input.StateCode) != 2 {
		return business.NewValidationError("state_code", "State code must be exactly 2 characters")
	}
	if !input.FilingStatus.IsValid() {
		_, err := business.ParseFilingStatus(input.FilingStatus.Code())
		return err
	}
	return nil
}
