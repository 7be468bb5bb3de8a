package business_test

import (
	"strings"
	"testing"

	"github.com/cyphera/cyphera-tax/libs/go/types/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "0", want: "0"},
		{input: " 52000.00 ", want: "52000"},
		{input: "10275.5", want: "10275.5"},
		{input: "-1", want: "-1"},
		{input: "999999999999.99", want: "999999999999.99"},
		{input: "-999999999999.99", want: "-999999999999.99"},
		{input: "0001000.10", want: "1000.1"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := business.ParseAmount(tt.input)
			require.NoError(t, err)
			assert.True(t, d(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestParseAmount_Rejects(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"abc",
		"1e8000000",
		"1e-8000000",
		"1E3",
		"1000000000000",
		"-1000000000000",
		"999999999999.991",
		"1.005",
		"0." + strings.Repeat("0", 40) + "1",
		strings.Repeat("9", 33),
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := business.ParseAmount(input)
			assert.ErrorIs(t, err, business.ErrInvalidAmount)
		})
	}
}
