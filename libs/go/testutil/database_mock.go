package testutil

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cyphera/cyphera-tax/libs/go/db"
	"github.com/cyphera/cyphera-tax/libs/go/helpers"
	"github.com/cyphera/cyphera-tax/libs/go/mocks"
)

// MockDatabase provides utilities for database mocking in unit tests
type MockDatabase struct {
	ctrl    *gomock.Controller
	Querier *mocks.MockQuerier
	Cipher  *helpers.FieldCipher
	t       *testing.T
}

// NewMockDatabase creates a new mock database for unit testing, with a real
// field cipher under a random key
func NewMockDatabase(t *testing.T) *MockDatabase {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	key, err := helpers.GenerateFieldEncryptionKey()
	require.NoError(t, err)
	cipher, err := helpers.NewFieldCipherFromBase64(key)
	require.NoError(t, err)

	return &MockDatabase{
		ctrl:    ctrl,
		Querier: mocks.NewMockQuerier(ctrl),
		Cipher:  cipher,
		t:       t,
	}
}

// TaxpayerRow describes a stored taxpayer in plain values
type TaxpayerRow struct {
	TaxpayerID         string
	SSN                string
	Name               string
	FilingStatus       string
	GrossIncome        string
	ItemizedDeductions string
	StateCode          string
}

// Row builds the db row for r, encrypting the SSN with the mock's cipher
func (m *MockDatabase) Row(r TaxpayerRow) db.Taxpayer {
	m.t.Helper()

	encrypted, err := m.Cipher.Encrypt(r.SSN, r.TaxpayerID)
	require.NoError(m.t, err)

	now := time.Date(2024, 4, 15, 12, 0, 0, 0, time.UTC)
	return db.Taxpayer{
		TaxpayerID:         r.TaxpayerID,
		SsnEncrypted:       encrypted,
		Name:               r.Name,
		FilingStatus:       r.FilingStatus,
		GrossIncome:        helpers.DecimalToNumeric(decimal.RequireFromString(r.GrossIncome)),
		ItemizedDeductions: helpers.DecimalToNumeric(decimal.RequireFromString(r.ItemizedDeductions)),
		StateCode:          r.StateCode,
		CreatedAt:          pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:          pgtype.Timestamptz{Time: now, Valid: true},
	}
}

// ExpectTaxpayerExists sets up expectation for a taxpayer lookup that finds row
func (m *MockDatabase) ExpectTaxpayerExists(row db.Taxpayer) {
	m.Querier.EXPECT().
		GetTaxpayer(gomock.Any(), row.TaxpayerID).
		Return(row, nil).
		Times(1)
}

// ExpectTaxpayerMissing sets up expectation for a taxpayer lookup that finds nothing
func (m *MockDatabase) ExpectTaxpayerMissing(taxpayerID string) {
	m.Querier.EXPECT().
		GetTaxpayer(gomock.Any(), taxpayerID).
		Return(db.Taxpayer{}, pgx.ErrNoRows).
		Times(1)
}

// ExpectPurge sets up expectation for deleting every taxpayer
func (m *MockDatabase) ExpectPurge(deleted int64) {
	m.Querier.EXPECT().
		DeleteAllTaxpayers(gomock.Any()).
		Return(deleted, nil).
		Times(1)
}
