package batch

import (
	"fmt"
	"io"

	"github.com/cyphera/cyphera-tax/libs/go/types/api/responses"
	"github.com/xuri/excelize/v2"
)

const (
	ResultsSheet = "Results"
	ErrorsSheet  = "Errors"
)

var (
	resultsHeader = []interface{}{
		"taxpayer_id", "filing_status", "deduction_used", "taxable_income",
		"federal_tax", "state_tax", "total_tax", "effective_rate",
	}
	errorsHeader = []interface{}{"line", "taxpayer_id", "field", "message"}
)

// WriteXLSX writes the report as a workbook with a Results sheet and an Errors sheet.
// Amounts are written as fixed two-place strings so no value passes through float64.
func WriteXLSX(report *Report, w io.Writer) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close workbook: %w", cerr)
		}
	}()

	if err := f.SetSheetName("Sheet1", ResultsSheet); err != nil {
		return fmt.Errorf("failed to name results sheet: %w", err)
	}
	if _, err := f.NewSheet(ErrorsSheet); err != nil {
		return fmt.Errorf("failed to create errors sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	resultRows := make([][]interface{}, 0, len(report.Results)+1)
	resultRows = append(resultRows, resultsHeader)
	for _, result := range report.Results {
		resp := responses.NewTaxCalculationResponse(result)
		resultRows = append(resultRows, []interface{}{
			resp.TaxpayerID, resp.FilingStatus, resp.DeductionUsed, resp.TaxableIncome,
			resp.FederalTax, resp.StateTax, resp.TotalTax, resp.EffectiveRate,
		})
	}
	if err := writeSheet(f, ResultsSheet, resultRows, headerStyle); err != nil {
		return err
	}

	errorRows := make([][]interface{}, 0, len(report.Errors)+1)
	errorRows = append(errorRows, errorsHeader)
	for _, rowErr := range report.Errors {
		errorRows = append(errorRows, []interface{}{rowErr.Line, rowErr.TaxpayerID, rowErr.Field, rowErr.Message})
	}
	if err := writeSheet(f, ErrorsSheet, errorRows, headerStyle); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, rows [][]interface{}, headerStyle int) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := row
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
		return fmt.Errorf("failed to style %s header: %w", sheet, err)
	}
	return nil
}
