package handlers

import (
	"net/http"
	"strings"

	apiconstants "github.com/cyphera/cyphera-tax/apps/api/constants"
	"github.com/cyphera/cyphera-tax/libs/go/interfaces"
	"github.com/cyphera/cyphera-tax/libs/go/types/api/params"
	"github.com/cyphera/cyphera-tax/libs/go/types/api/requests"
	"github.com/cyphera/cyphera-tax/libs/go/types/api/responses"
	"github.com/cyphera/cyphera-tax/libs/go/types/business"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// TaxHandler serves stateless tax calculations
type TaxHandler struct {
	taxService interfaces.TaxService
}

// NewTaxHandler creates a handler backed by the shared tax service
func NewTaxHandler(common *CommonServices) *TaxHandler {
	return &TaxHandler{taxService: common.GetTaxService()}
}

// CalculateTax godoc
// @Summary Calculate individual income tax
// @Description Calculates federal and state tax for one taxpayer. Amounts are decimal strings.
// @Tags tax
// @Accept json
// @Produce json
// @Param request body requests.CalculateTaxRequest true "Tax input"
// @Success 200 {object} responses.TaxCalculationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /tax/calculate [post]
func (h *TaxHandler) CalculateTax(c *gin.Context) {
	var req requests.CalculateTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, apiconstants.InvalidRequestBody, err)
		return
	}

	input, err := calculationParamsFromRequest(req)
	if err != nil {
		sendError(c, http.StatusBadRequest, apiconstants.InvalidAmount, nil)
		return
	}

	result, err := h.taxService.CalculateTax(c.Request.Context(), input)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, responses.NewTaxCalculationResponse(*result))
}

// GetTaxTables godoc
// @Summary Get tax tables
// @Description Returns the standard deductions, federal brackets and state rates in use
// @Tags tax
// @Produce json
// @Success 200 {object} responses.TaxTablesResponse
// @Failure 401 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /tax/tables [get]
func (h *TaxHandler) GetTaxTables(c *gin.Context) {
	tables := h.taxService.GetTaxTables(c.Request.Context())
	sendSuccess(c, http.StatusOK, responses.NewTaxTablesResponse(tables))
}

// calculationParamsFromRequest converts the request body. Missing amounts stay null
// so the calculator can reject them with its own message.
func calculationParamsFromRequest(req requests.CalculateTaxRequest) (params.TaxCalculationParams, error) {
	gross, err := parseNullDecimal(req.GrossIncome)
	if err != nil {
		return params.TaxCalculationParams{}, err
	}
	itemized, err := parseNullDecimal(req.ItemizedDeductions)
	if err != nil {
		return params.TaxCalculationParams{}, err
	}

	return params.TaxCalculationParams{
		TaxpayerID:         req.TaxpayerID,
		FilingStatus:       normalizeFilingStatus(req.FilingStatus),
		GrossIncome:        gross,
		ItemizedDeductions: itemized,
		StateCode:          req.StateCode,
	}, nil
}

// normalizeFilingStatus accepts status codes in any case
func normalizeFilingStatus(code string) business.FilingStatus {
	return business.FilingStatus(strings.ToUpper(strings.TrimSpace(code)))
}

func parseNullDecimal(value *string) (decimal.NullDecimal, error) {
	if value == nil {
		return decimal.NullDecimal{}, nil
	}
	d, err := business.ParseAmount(*value)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NewNullDecimal(d), nil
}
