package handlers

import (
	"errors"
	"io"
	"net/http"

	apiconstants "github.com/cyphera/cyphera-tax/apps/api/constants"
	"github.com/cyphera/cyphera-tax/libs/go/interfaces"
	"github.com/cyphera/cyphera-tax/libs/go/middleware"
	"github.com/cyphera/cyphera-tax/libs/go/types/api/params"
	"github.com/cyphera/cyphera-tax/libs/go/types/api/requests"
	"github.com/cyphera/cyphera-tax/libs/go/types/api/responses"
	"github.com/cyphera/cyphera-tax/libs/go/types/business"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// TaxpayerHandler handles stored taxpayer records
type TaxpayerHandler struct {
	taxpayerService interfaces.TaxpayerService
}

// NewTaxpayerHandler creates a handler backed by the shared taxpayer service
func NewTaxpayerHandler(common *CommonServices) *TaxpayerHandler {
	return &TaxpayerHandler{taxpayerService: common.GetTaxpayerService()}
}

// CreateTaxpayer godoc
// @Summary Create a taxpayer
// @Description Stores a taxpayer record. The SSN is encrypted at rest and masked in responses.
// @Tags taxpayers
// @Accept json
// @Produce json
// @Param request body requests.CreateTaxpayerRequest true "Taxpayer"
// @Success 201 {object} responses.TaxpayerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /taxpayers [post]
func (h *TaxpayerHandler) CreateTaxpayer(c *gin.Context) {
	var req requests.CreateTaxpayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, apiconstants.InvalidRequestBody, err)
		return
	}

	gross, err := business.ParseAmount(req.GrossIncome)
	if err != nil {
		sendError(c, http.StatusBadRequest, apiconstants.InvalidAmount, nil)
		return
	}
	itemized := decimal.Zero
	if req.ItemizedDeductions != "" {
		itemized, err = business.ParseAmount(req.ItemizedDeductions)
		if err != nil {
			sendError(c, http.StatusBadRequest, apiconstants.InvalidAmount, nil)
			return
		}
	}

	record, err := h.taxpayerService.CreateTaxpayer(c.Request.Context(), params.CreateTaxpayerParams{
		TaxpayerID:         req.TaxpayerID,
		SSN:                req.SSN,
		Name:               req.Name,
		FilingStatus:       normalizeFilingStatus(req.FilingStatus),
		GrossIncome:        gross,
		ItemizedDeductions: itemized,
		StateCode:          req.StateCode,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusCreated, responses.NewTaxpayerResponse(*record))
}

// GetTaxpayer godoc
// @Summary Get a taxpayer
// @Tags taxpayers
// @Produce json
// @Param taxpayer_id path string true "Taxpayer ID"
// @Success 200 {object} responses.TaxpayerResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /taxpayers/{taxpayer_id} [get]
func (h *TaxpayerHandler) GetTaxpayer(c *gin.Context) {
	record, err := h.taxpayerService.GetTaxpayer(c.Request.Context(), c.Param("taxpayer_id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, responses.NewTaxpayerResponse(*record))
}

// UpdateTaxpayer godoc
// @Summary Update one taxpayer field
// @Description Changes a single field. Accepted fields are name, filing_status, gross_income, itemized_deductions and state_code.
// @Tags taxpayers
// @Accept json
// @Produce json
// @Param taxpayer_id path string true "Taxpayer ID"
// @Param request body requests.UpdateTaxpayerRequest true "Field update"
// @Success 200 {object} responses.TaxpayerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /taxpayers/{taxpayer_id} [patch]
func (h *TaxpayerHandler) UpdateTaxpayer(c *gin.Context) {
	var req requests.UpdateTaxpayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, apiconstants.InvalidRequestBody, err)
		return
	}

	record, err := h.taxpayerService.UpdateTaxpayerField(c.Request.Context(), params.UpdateTaxpayerFieldParams{
		TaxpayerID: c.Param("taxpayer_id"),
		Field:      req.Field,
		Value:      req.Value,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, responses.NewTaxpayerResponse(*record))
}

// CalculateForTaxpayer godoc
// @Summary Calculate tax for a stored taxpayer
// @Description Optional itemized_deductions and state_code override the stored values for this calculation only.
// @Tags taxpayers
// @Accept json
// @Produce json
// @Param taxpayer_id path string true "Taxpayer ID"
// @Param request body requests.CalculateForTaxpayerRequest false "Overrides"
// @Success 200 {object} responses.TaxCalculationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /taxpayers/{taxpayer_id}/calculate [post]
func (h *TaxpayerHandler) CalculateForTaxpayer(c *gin.Context) {
	var req requests.CalculateForTaxpayerRequest
	if c.Request.Body != nil && c.Request.Body != http.NoBody {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			sendError(c, http.StatusBadRequest, apiconstants.InvalidRequestBody, err)
			return
		}
	}

	input := params.TaxpayerCalculationParams{
		TaxpayerID: c.Param("taxpayer_id"),
		StateCode:  req.StateCode,
	}
	if req.ItemizedDeductions != nil {
		itemized, err := business.ParseAmount(*req.ItemizedDeductions)
		if err != nil {
			sendError(c, http.StatusBadRequest, apiconstants.InvalidAmount, nil)
			return
		}
		input.ItemizedDeductions = &itemized
	}

	result, err := h.taxpayerService.CalculateForTaxpayer(c.Request.Context(), input)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, responses.NewTaxCalculationResponse(*result))
}

// PurgeTaxpayers godoc
// @Summary Delete every taxpayer record
// @Description Requires an admin bearer token in addition to the API key.
// @Tags admin
// @Produce json
// @Success 200 {object} responses.PurgeTaxpayersResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security ApiKeyAuth
// @Security BearerAuth
// @Router /admin/taxpayers [delete]
func (h *TaxpayerHandler) PurgeTaxpayers(c *gin.Context) {
	deleted, err := h.taxpayerService.PurgeTaxpayers(c.Request.Context(), middleware.GetPrincipal(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, responses.PurgeTaxpayersResponse{Deleted: deleted})
}
