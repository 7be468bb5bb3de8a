package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cyphera/cyphera-tax/libs/go/config"
	"github.com/cyphera/cyphera-tax/libs/go/constants"
	"github.com/cyphera/cyphera-tax/libs/go/helpers"
	"github.com/cyphera/cyphera-tax/libs/go/middleware"
	"github.com/cyphera/cyphera-tax/libs/go/types/api/responses"
	"github.com/cyphera/cyphera-tax/libs/go/types/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCalculate(t *testing.T) {
	out, err := run(t, "calculate", "--id", "TP-1", "--status", "s", "--gross", "50000", "--state", "TX")
	require.NoError(t, err)

	var resp responses.TaxCalculationResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, responses.TaxCalculationResponse{
		TaxpayerID:    "TP-1",
		FilingStatus:  "S",
		DeductionUsed: "13850.00",
		TaxableIncome: "36150.00",
		FederalTax:    "4132.50",
		StateTax:      "0.00",
		TotalTax:      "4132.50",
		EffectiveRate: "8.27",
	}, resp)
}

func TestCalculate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "negative gross",
			args:    []string{"calculate", "--id", "TP-1", "--status", "S", "--gross", "-1", "--state", "TX"},
			wantErr: "Gross income cannot be null or negative",
		},
		{
			name:    "bad decimal",
			args:    []string{"calculate", "--id", "TP-1", "--status", "S", "--gross", "lots", "--state", "TX"},
			wantErr: `--gross "lots": amount must be a decimal string`,
		},
		{
			name:    "exponent gross",
			args:    []string{"calculate", "--id", "TP-1", "--status", "S", "--gross", "1e8000000", "--state", "TX"},
			wantErr: `--gross "1e8000000": amount must be a decimal string`,
		},
		{
			name:    "itemized above maximum",
			args:    []string{"calculate", "--id", "TP-1", "--status", "S", "--gross", "1", "--itemized", "1000000000000", "--state", "TX"},
			wantErr: `--itemized "1000000000000": amount must be a decimal string`,
		},
		{
			name:    "state with trailing space",
			args:    []string{"calculate", "--id", "TP-1", "--status", "S", "--gross", "1", "--state", "TX "},
			wantErr: "State code must be exactly 2 characters",
		},
		{
			name:    "missing id",
			args:    []string{"calculate", "--status", "S", "--gross", "1", "--state", "TX"},
			wantErr: "Taxpayer ID cannot be null or empty",
		},
		{
			name:    "missing required flag",
			args:    []string{"calculate", "--id", "TP-1", "--gross", "1", "--state", "TX"},
			wantErr: `required flag(s) "status" not set`,
		},
		{
			name:    "missing tables file",
			args:    []string{"calculate", "--tables", "does-not-exist.yaml", "--id", "TP-1", "--status", "S", "--gross", "1", "--state", "TX"},
			wantErr: "failed to read tax tables file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCalculate_CustomTables(t *testing.T) {
	custom := `year: 2024
standard_deductions:
  single: "13850"
  married_joint: "27700"
  head_of_household: "20800"
brackets:
  - up_to: "10275"
    rate: "0.10"
  - rate: "0.24"
state_rates:
  TX: "0"
default_state_rate: "0.10"
`
	path := filepath.Join(t.TempDir(), "tables.yaml")
	require.NoError(t, os.WriteFile(path, []byte(custom), 0o600))

	out, err := run(t, "calculate", "--tables", path, "--id", "TP-1", "--status", "S", "--gross", "23850", "--state", "ZZ")
	require.NoError(t, err)

	var resp responses.TaxCalculationResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "1000.00", resp.StateTax)
}

func TestTables(t *testing.T) {
	out, err := run(t, "tables")
	require.NoError(t, err)

	want, err := config.MarshalTaxTables(business.DefaultTaxTables())
	require.NoError(t, err)
	assert.Equal(t, string(want), out)
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "taxpayers.csv")
	out := filepath.Join(dir, "results.xlsx")
	csv := "taxpayer_id,filing_status,gross_income,itemized_deductions,state_code\n" +
		"TP-1,S,50000,0,TX\n" +
		"TP-2,S,-5,0,TX\n"
	require.NoError(t, os.WriteFile(in, []byte(csv), 0o600))

	stdout, err := run(t, "batch", "--in", in, "--out", out)
	require.NoError(t, err)
	assert.Equal(t, "Processed 2 rows: 1 calculated, 1 rejected\n", stdout)

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Results")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "4132.50", rows[1][6])
}

func TestBatch_BadInputRemovesOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "taxpayers.csv")
	out := filepath.Join(dir, "results.xlsx")
	require.NoError(t, os.WriteFile(in, []byte("wrong,header\n"), 0o600))

	_, err := run(t, "batch", "--in", in, "--out", out)
	require.Error(t, err)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestKeys_APIKey(t *testing.T) {
	out, err := run(t, "keys", "api-key")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	key := strings.TrimPrefix(lines[0], "api_key: ")
	hash := strings.TrimPrefix(lines[1], "api_key_hash: ")
	assert.NoError(t, helpers.CompareAPIKeyHash(key, hash))
}

func TestKeys_EncryptionKey(t *testing.T) {
	out, err := run(t, "keys", "encryption-key")
	require.NoError(t, err)

	_, err = helpers.NewFieldCipherFromBase64(strings.TrimSpace(out))
	assert.NoError(t, err)
}

func TestKeys_AdminToken(t *testing.T) {
	t.Setenv("ADMIN_JWT_SECRET", "test-signing-secret")

	out, err := run(t, "keys", "admin-token", "--subject", "ops")
	require.NoError(t, err)

	principal, err := middleware.ParsePrincipalToken([]byte("test-signing-secret"), strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "ops", principal.Subject)
	assert.Equal(t, constants.AdminRole, principal.Role)
}

func TestKeys_AdminTokenRequiresSecret(t *testing.T) {
	t.Setenv("ADMIN_JWT_SECRET", "")

	_, err := run(t, "keys", "admin-token", "--subject", "ops")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ADMIN_JWT_SECRET is not set")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "taxctl "+Version+"\n"))
}
