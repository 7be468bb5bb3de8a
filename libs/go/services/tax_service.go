package services

import (
	"context"
	"strings"

	"github.com/cyphera/cyphera-tax/libs/go/logger"
	"github.com/cyphera/cyphera-tax/libs/go/types/api/params"
	"github.com/cyphera/cyphera-tax/libs/go/types/api/responses"
	"github.com/cyphera/cyphera-tax/libs/go/types/business"
)

// TaxService is the context-aware entry point for tax calculations used by the API and CLI
type TaxService struct {
	calculator *TaxCalculator
	log        *logger.StructuredLogger
}

// NewTaxService creates a new tax service over tables
func NewTaxService(tables business.TaxTables) *TaxService {
	return &TaxService{
		calculator: NewTaxCalculator(tables),
		log:        logger.NewStructuredLogger(logger.ComponentCalculator),
	}
}

// CalculateTax validates the input and calculates federal and state tax.
// Only the taxpayer fingerprint and the state code are logged.
func (s *TaxService) CalculateTax(ctx context.Context, params params.TaxCalculationParams) (*responses.TaxCalculationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log := s.log.WithField("filing_status", params.FilingStatus.Name())
	if correlationID := logger.CorrelationIDFromContext(ctx); correlationID != "" {
		log = log.WithCorrelationID(correlationID)
	}
	stateCode := strings.ToUpper(params.StateCode)

	result, err := s.calculator.Calculate(params)
	log.LogCalculation(params.TaxpayerID, stateCode, err)
	if err != nil {
		return nil, err
	}

	if !s.calculator.Tables().HasStateRate(stateCode) {
		log.WithField("state_code", stateCode).Debug("State not listed, default rate applied")
	}
	return &result, nil
}

// GetTaxTables returns the tables used for every calculation
func (s *TaxService) GetTaxTables(ctx context.Context) business.TaxTables {
	return s.calculator.Tables()
}
