package handlers

import (
	"context"

	"github.com/cyphera/cyphera-tax/libs/go/db"
	"github.com/cyphera/cyphera-tax/libs/go/interfaces"
	"github.com/cyphera/cyphera-tax/libs/go/services"
	"github.com/cyphera/cyphera-tax/libs/go/types/business"
)

// HandlerFactory creates handlers with proper dependency injection
type HandlerFactory struct {
	commonServices *CommonServices
}

// HandlerFactoryConfig contains all configuration for the handler factory
type HandlerFactoryConfig struct {
	TaxService      interfaces.TaxService
	TaxpayerService interfaces.TaxpayerService
}

// NewHandlerFactory creates a new handler factory with all dependencies
func NewHandlerFactory(config HandlerFactoryConfig) *HandlerFactory {
	return &HandlerFactory{
		commonServices: NewCommonServices(CommonServicesConfig{
			TaxService:      config.TaxService,
			TaxpayerService: config.TaxpayerService,
		}),
	}
}

// CreateDefaultFactory creates a factory with the concrete services
func CreateDefaultFactory(queries db.Querier, cipher services.FieldEncryptor, tables business.TaxTables) *HandlerFactory {
	return NewHandlerFactory(HandlerFactoryConfig{
		TaxService:      services.NewTaxService(tables),
		TaxpayerService: services.NewTaxpayerService(queries, cipher, tables),
	})
}

// Handler creation methods

// NewHealthHandler creates a health handler; database may be nil
func (f *HandlerFactory) NewHealthHandler(database DatabasePinger) *HealthHandler {
	taxYear := 0
	if taxService := f.commonServices.GetTaxService(); taxService != nil {
		taxYear = taxService.GetTaxTables(context.Background()).Year()
	}
	return NewHealthHandler(database, taxYear)
}

// NewTaxHandler creates a new tax handler
func (f *HandlerFactory) NewTaxHandler() *TaxHandler {
	return NewTaxHandler(f.commonServices)
}

// NewTaxpayerHandler creates a new taxpayer handler
func (f *HandlerFactory) NewTaxpayerHandler() *TaxpayerHandler {
	return NewTaxpayerHandler(f.commonServices)
}
