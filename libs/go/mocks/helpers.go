package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockQuerierForTest creates a new mock Querier for testing
func NewMockQuerierForTest(t *testing.T) *MockQuerier {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockQuerier(ctrl)
}

// NewMockTaxServiceForTest creates a new mock TaxService for testing
func NewMockTaxServiceForTest(t *testing.T) *MockTaxService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockTaxService(ctrl)
}

// NewMockTaxpayerServiceForTest creates a new mock TaxpayerService for testing
func NewMockTaxpayerServiceForTest(t *testing.T) *MockTaxpayerService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockTaxpayerService(ctrl)
}

// NewMockSecretsProviderForTest creates a new mock SecretsProvider for testing
func NewMockSecretsProviderForTest(t *testing.T) *MockSecretsProvider {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockSecretsProvider(ctrl)
}
