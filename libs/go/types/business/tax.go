package business

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// FilingStatus is the taxpayer's filing status, encoded externally as a one-letter code
type FilingStatus string

const (
	FilingStatusSingle          FilingStatus = "S"
	FilingStatusMarriedJoint    FilingStatus = "M"
	FilingStatusHeadOfHousehold FilingStatus = "H"
)

// FilingStatuses lists every filing status in a stable order
func FilingStatuses() []FilingStatus {
	return []FilingStatus{FilingStatusSingle, FilingStatusMarriedJoint, FilingStatusHeadOfHousehold}
}

// ParseFilingStatus converts an external code ("S", "M", "H") to a FilingStatus
func ParseFilingStatus(code string) (FilingStatus, error) {
	status := FilingStatus(code)
	if !status.IsValid() {
		return "", NewValidationError("filing_status", fmt.Sprintf("Invalid filing status code: %s", code))
	}
	return status, nil
}

// Code returns the external one-letter code
func (f FilingStatus) Code() string {
	return string(f)
}

// IsValid reports whether f is one of the three known statuses
func (f FilingStatus) IsValid() bool {
	switch f {
	case FilingStatusSingle, FilingStatusMarriedJoint, FilingStatusHeadOfHousehold:
		return true
	default:
		return false
	}
}

// Name returns the snake_case name used in configuration files
func (f FilingStatus) Name() string {
	switch f {
	case FilingStatusSingle:
		return "single"
	case FilingStatusMarriedJoint:
		return "married_joint"
	case FilingStatusHeadOfHousehold:
		return "head_of_household"
	default:
		return "unknown"
	}
}

// BracketTier is one marginal federal bracket. UpTo is invalid (null) for the
// top tier, which has no upper bound.
type BracketTier struct {
	UpTo decimal.NullDecimal `json:"up_to"`
	Rate decimal.Decimal     `json:"rate"`
}

// NewBracketTier creates a bounded tier
func NewBracketTier(upTo, rate decimal.Decimal) BracketTier {
	return BracketTier{UpTo: decimal.NewNullDecimal(upTo), Rate: rate}
}

// NewTopBracketTier creates the unbounded top tier
func NewTopBracketTier(rate decimal.Decimal) BracketTier {
	return BracketTier{Rate: rate}
}

// Bounded reports whether the tier has a finite upper bound
func (t BracketTier) Bounded() bool {
	return t.UpTo.Valid
}

// TaxTables holds the standard deductions, federal brackets and state rates for one tax year.
// All fields are unexported and every accessor returns a copy, so a TaxTables value cannot be
// changed after NewTaxTables returns it.
type TaxTables struct {
	year               int
	standardDeductions map[FilingStatus]decimal.Decimal
	brackets           []BracketTier
	stateRates         map[string]decimal.Decimal
	defaultStateRate   decimal.Decimal
}

// TaxTablesConfig is the mutable input used to build a TaxTables value
type TaxTablesConfig struct {
	Year               int
	StandardDeductions map[FilingStatus]decimal.Decimal
	Brackets           []BracketTier
	StateRates         map[string]decimal.Decimal
	DefaultStateRate   decimal.Decimal
}

// NewTaxTables validates cfg and returns an immutable copy of it
func NewTaxTables(cfg TaxTablesConfig) (TaxTables, error) {
	deductions := make(map[FilingStatus]decimal.Decimal, len(FilingStatuses()))
	for _, status := range FilingStatuses() {
		amount, ok := cfg.StandardDeductions[status]
		if !ok {
			return TaxTables{}, fmt.Errorf("missing standard deduction for filing status %s", status.Name())
		}
		if amount.IsNegative() {
			return TaxTables{}, fmt.Errorf("standard deduction for %s cannot be negative", status.Name())
		}
		deductions[status] = amount
	}
	for status := range cfg.StandardDeductions {
		if !status.IsValid() {
			return TaxTables{}, fmt.Errorf("unknown filing status %q in standard deductions", status)
		}
	}

	if len(cfg.Brackets) == 0 {
		return TaxTables{}, fmt.Errorf("at least one federal bracket is required")
	}
	brackets := make([]BracketTier, len(cfg.Brackets))
	previous := decimal.Zero
	for i, tier := range cfg.Brackets {
		if tier.Rate.IsNegative() {
			return TaxTables{}, fmt.Errorf("bracket %d has a negative rate", i+1)
		}
		last := i == len(cfg.Brackets)-1
		if last && tier.Bounded() {
			return TaxTables{}, fmt.Errorf("the last bracket must be unbounded")
		}
		if !last {
			if !tier.Bounded() {
				return TaxTables{}, fmt.Errorf("bracket %d is unbounded but is not the last bracket", i+1)
			}
			if !tier.UpTo.Decimal.GreaterThan(previous) {
				return TaxTables{}, fmt.Errorf("bracket %d upper bound %s must be greater than %s",
					i+1, tier.UpTo.Decimal.String(), previous.String())
			}
			previous = tier.UpTo.Decimal
		}
		brackets[i] = tier
	}

	stateRates := make(map[string]decimal.Decimal, len(cfg.StateRates))
	for code, rate := range cfg.StateRates {
		normalized := strings.ToUpper(code)
		if utf8.RuneCountInString(normalized) != 2 {
			return TaxTables{}, fmt.Errorf("state code %q must be exactly 2 characters", code)
		}
		if rate.IsNegative() {
			return TaxTables{}, fmt.Errorf("state rate for %s cannot be negative", normalized)
		}
		if _, dup := stateRates[normalized]; dup {
			return TaxTables{}, fmt.Errorf("state code %s is listed more than once", normalized)
		}
		stateRates[normalized] = rate
	}
	if cfg.DefaultStateRate.IsNegative() {
		return TaxTables{}, fmt.Errorf("default state rate cannot be negative")
	}

	return TaxTables{
		year:               cfg.Year,
		standardDeductions: deductions,
		brackets:           brackets,
		stateRates:         stateRates,
		defaultStateRate:   cfg.DefaultStateRate,
	}, nil
}

// Year returns the tax year the tables describe
func (t TaxTables) Year() int {
	return t.year
}

// StandardDeduction returns the standard deduction for a filing status.
// Unknown statuses return zero; callers validate the status first.
func (t TaxTables) StandardDeduction(status FilingStatus) decimal.Decimal {
	return t.standardDeductions[status]
}

// Brackets returns a copy of the federal bracket tiers in ascending order
func (t TaxTables) Brackets() []BracketTier {
	out := make([]BracketTier, len(t.brackets))
	copy(out, t.brackets)
	return out
}

// StateRate returns the flat rate for a state code, or the default rate when
// the state is not listed. The lookup is case-insensitive.
func (t TaxTables) StateRate(stateCode string) decimal.Decimal {
	if rate, ok := t.stateRates[strings.ToUpper(stateCode)]; ok {
		return rate
	}
	return t.defaultStateRate
}

// HasStateRate reports whether the state has an explicit entry
func (t TaxTables) HasStateRate(stateCode string) bool {
	_, ok := t.stateRates[strings.ToUpper(stateCode)]
	return ok
}

// StateRates returns a copy of the explicit state rates
func (t TaxTables) StateRates() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(t.stateRates))
	for code, rate := range t.stateRates {
		out[code] = rate
	}
	return out
}

// StateCodes returns the explicitly listed state codes, sorted
func (t TaxTables) StateCodes() []string {
	codes := make([]string, 0, len(t.stateRates))
	for code := range t.stateRates {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// DefaultStateRate returns the rate applied to unlisted states
func (t TaxTables) DefaultStateRate() decimal.Decimal {
	return t.defaultStateRate
}

// Config returns a mutable copy of the tables, e.g. for serialization
func (t TaxTables) Config() TaxTablesConfig {
	deductions := make(map[FilingStatus]decimal.Decimal, len(t.standardDeductions))
	for status, amount := range t.standardDeductions {
		deductions[status] = amount
	}
	return TaxTablesConfig{
		Year:               t.year,
		StandardDeductions: deductions,
		Brackets:           t.Brackets(),
		StateRates:         t.StateRates(),
		DefaultStateRate:   t.defaultStateRate,
	}
}
