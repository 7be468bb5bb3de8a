package handlers

import (
	"errors"
	"net/http"

	apiconstants "github.com/cyphera/cyphera-tax/apps/api/constants"
	"github.com/cyphera/cyphera-tax/libs/go/interfaces"
	"github.com/cyphera/cyphera-tax/libs/go/middleware"
	"github.com/cyphera/cyphera-tax/libs/go/services"
	"github.com/cyphera/cyphera-tax/libs/go/types/api/responses"
	"github.com/cyphera/cyphera-tax/libs/go/types/business"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CommonServices holds the services shared by the handlers
type CommonServices struct {
	TaxService      interfaces.TaxService
	TaxpayerService interfaces.TaxpayerService
}

// CommonServicesConfig contains all dependencies needed to create CommonServices
type CommonServicesConfig struct {
	TaxService      interfaces.TaxService
	TaxpayerService interfaces.TaxpayerService
}

// Use types from the centralized packages
type ErrorResponse = responses.ErrorResponse

// NewCommonServices creates a new instance of CommonServices with interface dependencies
func NewCommonServices(config CommonServicesConfig) *CommonServices {
	return &CommonServices{
		TaxService:      config.TaxService,
		TaxpayerService: config.TaxpayerService,
	}
}

// GetTaxService returns the tax service interface
func (s *CommonServices) GetTaxService() interfaces.TaxService {
	return s.TaxService
}

// GetTaxpayerService returns the taxpayer service interface
func (s *CommonServices) GetTaxpayerService() interfaces.TaxpayerService {
	return s.TaxpayerService
}

// sendError logs the failure against the route template and sends a JSON error
// response. Request bodies and path values are never logged.
func sendError(c *gin.Context, statusCode int, message string, err error) {
	log := middleware.LogWithCorrelationID(c.Request.Context())
	fields := []zap.Field{
		zap.String("route", c.FullPath()),
		zap.String("method", c.Request.Method),
		zap.Int("status_code", statusCode),
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}

	if statusCode >= http.StatusInternalServerError {
		log.Error(message, fields...)
	} else {
		log.Debug(message, fields...)
	}

	c.JSON(statusCode, ErrorResponse{Error: message})
}

// handleServiceError maps service errors to HTTP status codes. Validation messages
// are returned to the caller; store failures get a generic message.
func handleServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var validationErr *business.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: validationErr.Message, Field: validationErr.Field})
	case business.IsInvalidArgument(err):
		sendError(c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, services.ErrTaxpayerNotFound):
		sendError(c, http.StatusNotFound, apiconstants.TaxpayerNotFound, nil)
	case errors.Is(err, services.ErrTaxpayerExists):
		sendError(c, http.StatusConflict, apiconstants.TaxpayerExists, nil)
	case errors.Is(err, services.ErrForbidden):
		sendError(c, http.StatusForbidden, apiconstants.AdminAccessRequired, nil)
	default:
		sendError(c, http.StatusInternalServerError, apiconstants.InternalServerError, err)
	}
}

// sendSuccess is a helper function that sends a success response
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}
