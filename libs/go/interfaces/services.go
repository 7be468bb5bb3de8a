package interfaces

import (
	"context"

	"github.com/cyphera/cyphera-tax/libs/go/types/api/params"
	"github.com/cyphera/cyphera-tax/libs/go/types/api/responses"
	"github.com/cyphera/cyphera-tax/libs/go/types/business"
	"github.com/shopspring/decimal"
)

// TaxService handles tax calculations
type TaxService interface {
	CalculateTax(ctx context.Context, params params.TaxCalculationParams) (*responses.TaxCalculationResult, error)
	GetTaxTables(ctx context.Context) business.TaxTables
}

// TaxpayerService handles stored taxpayer records
type TaxpayerService interface {
	CreateTaxpayer(ctx context.Context, params params.CreateTaxpayerParams) (*business.TaxpayerRecord, error)
	GetTaxpayer(ctx context.Context, taxpayerID string) (*business.TaxpayerRecord, error)
	UpdateTaxpayerField(ctx context.Context, params params.UpdateTaxpayerFieldParams) (*business.TaxpayerRecord, error)
	UpdateTaxpayerIncome(ctx context.Context, taxpayerID string, income decimal.Decimal) (*business.TaxpayerRecord, error)
	CalculateForTaxpayer(ctx context.Context, params params.TaxpayerCalculationParams) (*responses.TaxCalculationResult, error)
	PurgeTaxpayers(ctx context.Context, principal *business.Principal) (int64, error)
}

// SecretsProvider resolves secrets by ARN env var with a direct env var fallback
type SecretsProvider interface {
	GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error)
	GetSecretJSON(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string, target interface{}) error
}
