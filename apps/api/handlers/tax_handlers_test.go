package handlers

import (
	"errors"
	"net/http"
	"testing"

	apiconstants "github.com/cyphera/cyphera-tax/apps/api/constants"
	"github.com/cyphera/cyphera-tax/libs/go/logger"
	"github.com/cyphera/cyphera-tax/libs/go/middleware"
	"github.com/cyphera/cyphera-tax/libs/go/mocks"
	"github.com/cyphera/cyphera-tax/libs/go/services"
	"github.com/cyphera/cyphera-tax/libs/go/testutil"
	"github.com/cyphera/cyphera-tax/libs/go/types/api/responses"
	"github.com/cyphera/cyphera-tax/libs/go/types/business"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	logger.InitLogger("test")
}

func newTaxRouter(taxService *services.TaxService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewTaxHandler(NewCommonServices(CommonServicesConfig{TaxService: taxService}))

	router := gin.New()
	router.POST("/tax/calculate", handler.CalculateTax)
	router.GET("/tax/tables", handler.GetTaxTables)
	return router
}

func strPtr(s string) *string {
	return &s
}

func TestTaxHandler_CalculateTax_Scenarios(t *testing.T) {
	router := newTaxRouter(services.NewTaxService(business.DefaultTaxTables()))

	tests := []struct {
		name     string
		body     map[string]interface{}
		expected responses.TaxCalculationResponse
	}{
		{
			name: "single in Texas",
			body: map[string]interface{}{
				"taxpayer_id": "TP-001", "filing_status": "S", "gross_income": "50000",
				"itemized_deductions": "0", "state_code": "TX",
			},
			expected: responses.TaxCalculationResponse{
				TaxpayerID: "TP-001", FilingStatus: "S", DeductionUsed: "13850.00", TaxableIncome: "36150.00",
				FederalTax: "4132.50", StateTax: "0.00", TotalTax: "4132.50", EffectiveRate: "8.27",
			},
		},
		{
			name: "itemized in California",
			body: map[string]interface{}{
				"taxpayer_id": "TP-003", "filing_status": "s", "gross_income": "200000",
				"itemized_deductions": "30000", "state_code": "ca",
			},
			expected: responses.TaxCalculationResponse{
				TaxpayerID: "TP-003", FilingStatus: "S", DeductionUsed: "30000.00", TaxableIncome: "170000.00",
				FederalTax: "34628.00", StateTax: "15725.00", TotalTax: "50353.00", EffectiveRate: "25.18",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testutil.PerformJSONRequest(t, router, http.MethodPost, "/tax/calculate", tt.body, nil)
			testutil.AssertStatusCode(t, w, http.StatusOK)

			var response responses.TaxCalculationResponse
			testutil.DecodeJSON(t, w, &response)
			assert.Equal(t, tt.expected, response)
		})
	}
}

func TestTaxHandler_CalculateTax_Rejections(t *testing.T) {
	router := newTaxRouter(services.NewTaxService(business.DefaultTaxTables()))

	tests := []struct {
		name    string
		body    interface{}
		message string
		field   string
	}{
		{
			name:    "negative gross",
			body:    map[string]interface{}{"taxpayer_id": "TP-5", "filing_status": "S", "gross_income": "-1", "itemized_deductions": "0", "state_code": "TX"},
			message: "Gross income cannot be null or negative",
			field:   "gross_income",
		},
		{
			name:    "missing gross",
			body:    map[string]interface{}{"taxpayer_id": "TP-5", "filing_status": "S", "itemized_deductions": "0", "state_code": "TX"},
			message: "Gross income cannot be null or negative",
			field:   "gross_income",
		},
		{
			name:    "missing id",
			body:    map[string]interface{}{"filing_status": "S", "gross_income": "1", "itemized_deductions": "0", "state_code": "TX"},
			message: "Taxpayer ID cannot be null or empty",
			field:   "taxpayer_id",
		},
		{
			name:    "bad state",
			body:    map[string]interface{}{"taxpayer_id": "TP-5", "filing_status": "S", "gross_income": "1", "itemized_deductions": "0", "state_code": "Texas"},
			message: "State code must be exactly 2 characters",
			field:   "state_code",
		},
		{
			name:    "bad filing status",
			body:    map[string]interface{}{"taxpayer_id": "TP-5", "filing_status": "W", "gross_income": "1", "itemized_deductions": "0", "state_code": "TX"},
			message: "Invalid filing status code: W",
			field:   "filing_status",
		},
		{
			name:    "non-decimal amount",
			body:    map[string]interface{}{"taxpayer_id": "TP-5", "filing_status": "S", "gross_income": "lots", "itemized_deductions": "0", "state_code": "TX"},
			message: "Amounts must be decimal strings with at most 2 decimal places and a magnitude no greater than 999999999999.99",
		},
		{
			name:    "state with trailing space",
			body:    map[string]interface{}{"taxpayer_id": "TP-5", "filing_status": "S", "gross_income": "1", "itemized_deductions": "0", "state_code": "TX "},
			message: "State code must be exactly 2 characters",
			field:   "state_code",
		},
		{
			name:    "one character state",
			body:    map[string]interface{}{"taxpayer_id": "TP-5", "filing_status": "S", "gross_income": "1", "itemized_deductions": "0", "state_code": "C"},
			message: "State code must be exactly 2 characters",
			field:   "state_code",
		},
		{
			name:    "huge exponent amount",
			body:    map[string]interface{}{"taxpayer_id": "TP-5", "filing_status": "S", "gross_income": "1e8000000", "itemized_deductions": "0", "state_code": "TX"},
			message: "Amounts must be decimal strings with at most 2 decimal places and a magnitude no greater than 999999999999.99",
		},
		{
			name:    "tiny exponent amount",
			body:    map[string]interface{}{"taxpayer_id": "TP-5", "filing_status": "S", "gross_income": "1", "itemized_deductions": "1e-8000000", "state_code": "TX"},
			message: "Amounts must be decimal strings with at most 2 decimal places and a magnitude no greater than 999999999999.99",
		},
		{
			name:    "amount above maximum",
			body:    map[string]interface{}{"taxpayer_id": "TP-5", "filing_status": "S", "gross_income": "1000000000000", "itemized_deductions": "0", "state_code": "TX"},
			message: "Amounts must be decimal strings with at most 2 decimal places and a magnitude no greater than 999999999999.99",
		},
		{
			name:    "sub-cent amount",
			body:    map[string]interface{}{"taxpayer_id": "TP-5", "filing_status": "S", "gross_income": "1.005", "itemized_deductions": "0", "state_code": "TX"},
			message: "Amounts must be decimal strings with at most 2 decimal places and a magnitude no greater than 999999999999.99",
		},
		{
			name:    "not json",
			body:    "[]",
			message: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testutil.PerformJSONRequest(t, router, http.MethodPost, "/tax/calculate", tt.body, nil)
			testutil.AssertStatusCode(t, w, http.StatusBadRequest)

			var response responses.ErrorResponse
			testutil.DecodeJSON(t, w, &response)
			assert.Equal(t, tt.message, response.Error)
			assert.Equal(t, tt.field, response.Field)
		})
	}
}

func TestTaxHandler_CalculateTax_UnexpectedError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockService := mocks.NewMockTaxServiceForTest(t)
	mockService.EXPECT().CalculateTax(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

	core, logs := observer.New(zapcore.DebugLevel)
	previous := logger.Log
	logger.SetLogger(zap.New(core))
	t.Cleanup(func() { logger.SetLogger(previous) })

	handler := NewTaxHandler(NewCommonServices(CommonServicesConfig{TaxService: mockService}))
	router := gin.New()
	router.Use(middleware.CorrelationIDMiddleware())
	router.POST("/tax/calculate", handler.CalculateTax)

	w := testutil.PerformJSONRequest(t, router, http.MethodPost, "/tax/calculate",
		map[string]string{"taxpayer_id": "TP-1", "filing_status": "S", "gross_income": "1", "itemized_deductions": "0", "state_code": "TX"}, nil)
	testutil.AssertStatusCode(t, w, http.StatusInternalServerError)
	assert.NotContains(t, w.Body.String(), "boom")

	entries := logs.FilterMessage(apiconstants.InternalServerError).All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, w.Header().Get(middleware.CorrelationIDHeader), fields["correlation_id"])
	assert.Equal(t, "/tax/calculate", fields["route"])
}

func TestTaxHandler_GetTaxTables(t *testing.T) {
	router := newTaxRouter(services.NewTaxService(business.DefaultTaxTables()))

	w := testutil.PerformJSONRequest(t, router, http.MethodGet, "/tax/tables", nil, nil)
	testutil.AssertStatusCode(t, w, http.StatusOK)

	var response responses.TaxTablesResponse
	testutil.DecodeJSON(t, w, &response)
	assert.Equal(t, 2024, response.Year)
	assert.Equal(t, "13850", response.StandardDeductions["S"])
	assert.Len(t, response.FederalBrackets, 4)
	assert.Nil(t, response.FederalBrackets[3].UpTo)
	assert.Equal(t, "0.0925", response.StateRates["CA"])
	assert.Equal(t, "0.05", response.DefaultStateRate)
}
