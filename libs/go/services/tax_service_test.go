package services_test

import (
	"context"
	"testing"

	"github.com/cyphera/cyphera-tax/libs/go/logger"
	"github.com/cyphera/cyphera-tax/libs/go/services"
	"github.com/cyphera/cyphera-tax/libs/go/types/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	logger.InitLogger("test")
}

// observeServiceLogs swaps the global logger for an observer for the duration of the test
func observeServiceLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	previous := logger.Log
	logger.SetLogger(zap.New(core))
	t.Cleanup(func() { logger.SetLogger(previous) })
	return logs
}

func TestTaxService_CalculateTax(t *testing.T) {
	service := services.NewTaxService(business.DefaultTaxTables())

	tests := []struct {
		name      string
		input     func() (context.Context, string)
		wantErr   bool
		wantTotal string
	}{
		{
			name:      "valid input",
			input:     func() (context.Context, string) { return context.Background(), "50000" },
			wantTotal: "4132.50",
		},
		{
			name:    "negative income",
			input:   func() (context.Context, string) { return context.Background(), "-1" },
			wantErr: true,
		},
		{
			name: "cancelled context",
			input: func() (context.Context, string) {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx, "50000"
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, gross := tt.input()
			result, err := service.CalculateTax(ctx, taxInput("TP-001", business.FilingStatusSingle, gross, "0", "TX"))
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assertDecimal(t, tt.wantTotal, result.TotalTax, "total")
		})
	}
}

func TestTaxService_CalculateTaxLogsNoPII(t *testing.T) {
	logs := observeServiceLogs(t)
	service := services.NewTaxService(business.DefaultTaxTables())

	ctx := logger.WithCorrelationID(context.Background(), "corr-123")
	_, err := service.CalculateTax(ctx, taxInput("123-45-6789", business.FilingStatusSingle, "98765.43", "0", "CA"))
	require.NoError(t, err)

	entries := logs.FilterMessage("Calculated tax").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, logger.Fingerprint("123-45-6789"), fields["taxpayer_ref"])
	assert.Equal(t, "CA", fields["state_code"])
	assert.Equal(t, "corr-123", fields["correlation_id"])

	for _, entry := range logs.All() {
		for _, value := range entry.ContextMap() {
			rendered := toString(value)
			assert.NotContains(t, rendered, "123-45-6789")
			assert.NotContains(t, rendered, "98765")
		}
	}
}

func TestTaxService_RejectedInputIsLoggedAsWarning(t *testing.T) {
	logs := observeServiceLogs(t)
	service := services.NewTaxService(business.DefaultTaxTables())

	_, err := service.CalculateTax(context.Background(), taxInput("TP-9", business.FilingStatusSingle, "1", "0", "C"))
	require.Error(t, err)
	assert.True(t, business.IsInvalidArgument(err))

	entries := logs.FilterMessage("Rejected tax calculation input").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
}

func TestTaxService_GetTaxTables(t *testing.T) {
	service := services.NewTaxService(business.DefaultTaxTables())

	tables := service.GetTaxTables(context.Background())
	assert.Equal(t, 2024, tables.Year())
	assert.Len(t, tables.Brackets(), 4)
}

func TestTaxService_LogsDefaultStateRate(t *testing.T) {
	logs := observeServiceLogs(t)
	service := services.NewTaxService(business.DefaultTaxTables())

	_, err := service.CalculateTax(context.Background(), taxInput("TP-1", business.FilingStatusSingle, "50000", "0", "wa"))
	require.NoError(t, err)
	_, err = service.CalculateTax(context.Background(), taxInput("TP-2", business.FilingStatusSingle, "50000", "0", "ca"))
	require.NoError(t, err)

	entries := logs.FilterMessage("State not listed, default rate applied").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "WA", entries[0].ContextMap()["state_code"])
}
