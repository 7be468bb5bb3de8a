package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/cyphera/cyphera-tax/libs/go/constants"
	"github.com/cyphera/cyphera-tax/libs/go/logger"
	"github.com/cyphera/cyphera-tax/libs/go/types/api/responses"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const readinessTimeout = 2 * time.Second

// DatabasePinger is satisfied by *pgxpool.Pool
type DatabasePinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves liveness and readiness checks
type HealthHandler struct {
	database DatabasePinger
	taxYear  int
}

// NewHealthHandler creates a health handler. A nil database makes readiness
// report ok without a ping.
func NewHealthHandler(database DatabasePinger, taxYear int) *HealthHandler {
	return &HealthHandler{database: database, taxYear: taxYear}
}

type HealthResponse = responses.HealthResponse

// Health godoc
// @Summary Check the health of the server
// @Description Returns ok with the service name and the tax year of the loaded tables
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, h.response("ok"))
}

// Ready godoc
// @Summary Check that the database answers
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	if h.database != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
		defer cancel()
		if err := h.database.Ping(ctx); err != nil {
			logger.L().Error("Readiness check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, h.response("unavailable"))
			return
		}
	}
	c.JSON(http.StatusOK, h.response("ok"))
}

func (h *HealthHandler) response(status string) HealthResponse {
	return HealthResponse{
		Status:  status,
		Service: constants.ServiceName,
		TaxYear: h.taxYear,
	}
}
