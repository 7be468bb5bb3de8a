package business

import (
	"github.com/shopspring/decimal"
)

// defaultTaxTables holds the 2024 tax year values. Built once at package init.
var defaultTaxTables = mustTaxTables(TaxTablesConfig{
	Year: 2024,
	StandardDeductions: map[FilingStatus]decimal.Decimal{
		FilingStatusSingle:          decimal.RequireFromString("13850"),
		FilingStatusMarriedJoint:    decimal.RequireFromString("27700"),
		FilingStatusHeadOfHousehold: decimal.RequireFromString("20800"),
	},
	Brackets: []BracketTier{
		NewBracketTier(decimal.RequireFromString("10275"), decimal.RequireFromString("0.10")),
		NewBracketTier(decimal.RequireFromString("41775"), decimal.RequireFromString("0.12")),
		NewBracketTier(decimal.RequireFromString("89450"), decimal.RequireFromString("0.22")),
		NewTopBracketTier(decimal.RequireFromString("0.24")),
	},
	StateRates: map[string]decimal.Decimal{
		"CA": decimal.RequireFromString("0.0925"),
		"TX": decimal.Zero,
		"NY": decimal.RequireFromString("0.0685"),
		"FL": decimal.Zero,
	},
	DefaultStateRate: decimal.RequireFromString("0.05"),
})

// DefaultTaxTables returns the built-in 2024 tables
func DefaultTaxTables() TaxTables {
	return defaultTaxTables
}

func mustTaxTables(cfg TaxTablesConfig) TaxTables {
	tables, err := NewTaxTables(cfg)
	if err != nil {
		panic("invalid built-in tax tables: " + err.Error())
	}
	return tables
}
