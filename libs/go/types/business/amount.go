package business

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// AmountScale is the number of decimal places an input amount may carry
const AmountScale = 2

// maxAmountText bounds the raw input before it is parsed. It leaves room for a sign,
// the largest accepted value and some insignificant zeros.
const maxAmountText = 32

// InvalidAmountMessage is reported to callers for an amount ParseAmount rejects
const InvalidAmountMessage = "Amounts must be decimal strings with at most 2 decimal places and a magnitude no greater than 999999999999.99"

// MaxAmount is the largest magnitude accepted for any money input
var MaxAmount = decimal.RequireFromString("999999999999.99")

// ErrInvalidAmount is returned by ParseAmount for text that is not an amount in range
var ErrInvalidAmount = errors.New("amount must be a decimal string with at most 2 decimal places and a magnitude no greater than 999999999999.99")

// ParseAmount parses a money input. The sign is kept so that callers report negative
// amounts with their own field message. Exponent forms are rejected before any
// arithmetic runs on them.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > maxAmountText || strings.ContainsAny(s, "eE") {
		return decimal.Zero, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if d.Abs().GreaterThan(MaxAmount) || !d.Equal(d.Truncate(AmountScale)) {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}
