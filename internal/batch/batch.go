package batch

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cyphera/cyphera-tax/libs/go/logger"
	"github.com/cyphera/cyphera-tax/libs/go/types/api/params"
	"github.com/cyphera/cyphera-tax/libs/go/types/api/responses"
	"github.com/cyphera/cyphera-tax/libs/go/types/business"
	"github.com/shopspring/decimal"
)

// Header is the required first row of a batch input file
var Header = []string{"taxpayer_id", "filing_status", "gross_income", "itemized_deductions", "state_code"}

// Calculator is the part of the tax service a batch run needs
type Calculator interface {
	CalculateTax(ctx context.Context, params params.TaxCalculationParams) (*responses.TaxCalculationResult, error)
}

// Row is one data line of the input file. Line is 1-based and counts the header.
type Row struct {
	Line               int
	TaxpayerID         string
	FilingStatus       string
	GrossIncome        string
	ItemizedDeductions string
	StateCode          string
}

// RowError records why a row produced no result
type RowError struct {
	Line       int
	TaxpayerID string
	Field      string
	Message    string
}

// Report holds the outcome of a batch run in input order
type Report struct {
	Results []responses.TaxCalculationResult
	Errors  []RowError
}

// Processed returns the number of rows read
func (r *Report) Processed() int {
	return len(r.Results) + len(r.Errors)
}

// ReadRows parses CSV input and checks the header
func ReadRows(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(Header)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("input is empty")
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	for i, name := range Header {
		if strings.ToLower(strings.TrimSpace(header[i])) != name {
			return nil, fmt.Errorf("unexpected header column %d: want %q, got %q", i+1, name, header[i])
		}
	}

	var rows []Row
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to read line %d: %w", line, err)
		}
		rows = append(rows, Row{
			Line:               line,
			TaxpayerID:         record[0],
			FilingStatus:       record[1],
			GrossIncome:        record[2],
			ItemizedDeductions: record[3],
			StateCode:          record[4],
		})
	}
	return rows, nil
}

// Process calculates every row in order. Rows rejected by validation are collected in
// Report.Errors and do not stop the run; any other error aborts it.
func Process(ctx context.Context, calc Calculator, rows []Row) (report *Report, err error) {
	log := logger.NewStructuredLogger(logger.ComponentBatch)
	timer := log.NewTimer("process")
	defer func() { timer.StopWithResult(err == nil, err) }()

	report = &Report{}

	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		input, rowErr := row.params()
		if rowErr != nil {
			report.Errors = append(report.Errors, *rowErr)
			continue
		}

		result, err := calc.CalculateTax(ctx, input)
		if err != nil {
			var validationErr *business.ValidationError
			if errors.As(err, &validationErr) {
				report.Errors = append(report.Errors, RowError{
					Line:       row.Line,
					TaxpayerID: row.TaxpayerID,
					Field:      validationErr.Field,
					Message:    validationErr.Message,
				})
				continue
			}
			return report, fmt.Errorf("line %d: %w", row.Line, err)
		}
		report.Results = append(report.Results, *result)
	}

	log.WithOperation("process").WithFields(map[string]interface{}{
		"rows":     report.Processed(),
		"results":  len(report.Results),
		"rejected": len(report.Errors),
	}).Info("Batch processed")

	return report, nil
}

// Run reads CSV from in, processes it and writes the XLSX workbook to out
func Run(ctx context.Context, calc Calculator, in io.Reader, out io.Writer) (*Report, error) {
	rows, err := ReadRows(in)
	if err != nil {
		return nil, err
	}
	report, err := Process(ctx, calc, rows)
	if err != nil {
		return report, err
	}
	if err := WriteXLSX(report, out); err != nil {
		return report, err
	}
	return report, nil
}

func (r Row) params() (params.TaxCalculationParams, *RowError) {
	gross, err := parseAmount(r.GrossIncome)
	if err != nil {
		return params.TaxCalculationParams{}, r.amountError("gross_income")
	}
	itemized, err := parseAmount(r.ItemizedDeductions)
	if err != nil {
		return params.TaxCalculationParams{}, r.amountError("itemized_deductions")
	}

	return params.TaxCalculationParams{
		TaxpayerID:         r.TaxpayerID,
		FilingStatus:       business.FilingStatus(strings.ToUpper(strings.TrimSpace(r.FilingStatus))),
		GrossIncome:        gross,
		ItemizedDeductions: itemized,
		StateCode:          r.StateCode,
	}, nil
}

func (r Row) amountError(field string) *RowError {
	return &RowError{Line: r.Line, TaxpayerID: r.TaxpayerID, Field: field, Message: business.InvalidAmountMessage}
}

// parseAmount leaves an empty cell null so the calculator rejects it with its own message
func parseAmount(value string) (decimal.NullDecimal, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := business.ParseAmount(value)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NewNullDecimal(d), nil
}
