package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/cyphera/cyphera-tax/libs/go/types/business"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// TaxTablesFile is the on-disk YAML form of business.TaxTables. Amounts and rates are
// strings so that no value passes through a float.
type TaxTablesFile struct {
	Year               int               `yaml:"year"`
	StandardDeductions map[string]string `yaml:"standard_deductions"`
	Brackets           []BracketEntry    `yaml:"brackets"`
	StateRates         map[string]string `yaml:"state_rates"`
	DefaultStateRate   string            `yaml:"default_state_rate"`
}

// BracketEntry is one federal bracket; an empty UpTo marks the top bracket
type BracketEntry struct {
	UpTo string `yaml:"up_to,omitempty"`
	Rate string `yaml:"rate"`
}

// LoadTaxTables reads tables from path. An empty path returns the built-in tables.
func LoadTaxTables(path string) (business.TaxTables, error) {
	if path == "" {
		return business.DefaultTaxTables(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return business.TaxTables{}, errors.Wrapf(err, "failed to read tax tables file %s", path)
	}

	tables, err := ParseTaxTables(data)
	if err != nil {
		return business.TaxTables{}, errors.Wrapf(err, "invalid tax tables file %s", path)
	}
	return tables, nil
}

// ParseTaxTables decodes YAML into validated tables
func ParseTaxTables(data []byte) (business.TaxTables, error) {
	var file TaxTablesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return business.TaxTables{}, errors.Wrap(err, "failed to decode yaml")
	}
	return file.toTables()
}

// MarshalTaxTables encodes tables in the same YAML form LoadTaxTables reads
func MarshalTaxTables(tables business.TaxTables) ([]byte, error) {
	data, err := yaml.Marshal(newTaxTablesFile(tables))
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode tax tables")
	}
	return data, nil
}

func newTaxTablesFile(tables business.TaxTables) TaxTablesFile {
	cfg := tables.Config()
	file := TaxTablesFile{
		Year:               cfg.Year,
		StandardDeductions: make(map[string]string, len(cfg.StandardDeductions)),
		StateRates:         make(map[string]string, len(cfg.StateRates)),
		DefaultStateRate:   cfg.DefaultStateRate.String(),
	}
	for status, amount := range cfg.StandardDeductions {
		file.StandardDeductions[status.Name()] = amount.String()
	}
	for _, tier := range cfg.Brackets {
		entry := BracketEntry{Rate: tier.Rate.String()}
		if tier.Bounded() {
			entry.UpTo = tier.UpTo.Decimal.String()
		}
		file.Brackets = append(file.Brackets, entry)
	}
	for code, rate := range cfg.StateRates {
		file.StateRates[code] = rate.String()
	}
	return file
}

func (f TaxTablesFile) toTables() (business.TaxTables, error) {
	cfg := business.TaxTablesConfig{
		Year:               f.Year,
		StandardDeductions: make(map[business.FilingStatus]decimal.Decimal, len(f.StandardDeductions)),
		StateRates:         make(map[string]decimal.Decimal, len(f.StateRates)),
	}

	statusByName := make(map[string]business.FilingStatus, len(business.FilingStatuses()))
	for _, status := range business.FilingStatuses() {
		statusByName[status.Name()] = status
	}

	names := make([]string, 0, len(f.StandardDeductions))
	for name := range f.StandardDeductions {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		status, ok := statusByName[name]
		if !ok {
			return business.TaxTables{}, fmt.Errorf("unknown filing status %q in standard_deductions", name)
		}
		amount, err := parseDecimal("standard_deductions."+name, f.StandardDeductions[name])
		if err != nil {
			return business.TaxTables{}, err
		}
		cfg.StandardDeductions[status] = amount
	}

	for i, entry := range f.Brackets {
		rate, err := parseDecimal(fmt.Sprintf("brackets[%d].rate", i), entry.Rate)
		if err != nil {
			return business.TaxTables{}, err
		}
		if entry.UpTo == "" {
			cfg.Brackets = append(cfg.Brackets, business.NewTopBracketTier(rate))
			continue
		}
		upTo, err := parseDecimal(fmt.Sprintf("brackets[%d].up_to", i), entry.UpTo)
		if err != nil {
			return business.TaxTables{}, err
		}
		cfg.Brackets = append(cfg.Brackets, business.NewBracketTier(upTo, rate))
	}

	for code, value := range f.StateRates {
		rate, err := parseDecimal("state_rates."+code, value)
		if err != nil {
			return business.TaxTables{}, err
		}
		cfg.StateRates[code] = rate
	}

	if f.DefaultStateRate == "" {
		return business.TaxTables{}, fmt.Errorf("default_state_rate is required")
	}
	defaultRate, err := parseDecimal("default_state_rate", f.DefaultStateRate)
	if err != nil {
		return business.TaxTables{}, err
	}
	cfg.DefaultStateRate = defaultRate

	return business.NewTaxTables(cfg)
}

// parseDecimal rejects exponent notation so a table file cannot carry huge scales
func parseDecimal(key, value string) (decimal.Decimal, error) {
	if strings.ContainsAny(value, "eE") {
		return decimal.Zero, fmt.Errorf("%s: %q is not a decimal", key, value)
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %q is not a decimal", key, value)
	}
	return d, nil
}
