package logger

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
)

// Redacted replaces sensitive values in logs
const Redacted = "[REDACTED]"

// sensitiveKeys are JSON keys whose values identify a taxpayer or carry financial amounts
var sensitiveKeys = map[string]struct{}{
	"taxpayer_id":         {},
	"ssn":                 {},
	"name":                {},
	"gross_income":        {},
	"income":              {},
	"itemized_deductions": {},
	"value":               {},
	"federal_tax":         {},
	"state_tax":           {},
	"total_tax":           {},
	"taxable_income":      {},
	"deduction_used":      {},
	"effective_rate":      {},
}

// IsSensitiveKey reports whether values under key must never be logged
func IsSensitiveKey(key string) bool {
	_, ok := sensitiveKeys[strings.ToLower(key)]
	return ok
}

// RedactValue walks decoded JSON and replaces sensitive values
func RedactValue(v interface{}) interface{} {
	switch typed := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(typed))
		for key, value := range typed {
			if IsSensitiveKey(key) {
				out[key] = Redacted
				continue
			}
			out[key] = RedactValue(value)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(typed))
		for i, value := range typed {
			out[i] = RedactValue(value)
		}
		return out
	default:
		return v
	}
}

// TaxpayerRef returns a log field that lets operators correlate entries for the
// same taxpayer without writing the identifier itself.
func TaxpayerRef(taxpayerID string) zap.Field {
	return zap.String("taxpayer_ref", Fingerprint(taxpayerID))
}

// FingerprintLength is the number of hex characters Fingerprint returns
const FingerprintLength = 24

// MinFingerprintKeyLen is the shortest key SetFingerprintKey accepts
const MinFingerprintKeyLen = 32

// ErrFingerprintKeyTooShort is returned by SetFingerprintKey for a weak key
var ErrFingerprintKeyTooShort = errors.New("fingerprint key must be at least 32 bytes")

var fingerprintKey atomic.Pointer[[]byte]

func init() {
	key := make([]byte, MinFingerprintKeyLen)
	if _, err := rand.Read(key); err != nil {
		panic(fmt.Sprintf("failed to generate fingerprint key: %v", err))
	}
	fingerprintKey.Store(&key)
}

// SetFingerprintKey replaces the HMAC key behind Fingerprint. Until it is called the
// key is random per process, so fingerprints only correlate within one process.
func SetFingerprintKey(key []byte) error {
	if len(key) < MinFingerprintKeyLen {
		return ErrFingerprintKeyTooShort
	}
	stored := append([]byte(nil), key...)
	fingerprintKey.Store(&stored)
	return nil
}

// Fingerprint is a truncated HMAC-SHA256 of s under the fingerprint key
func Fingerprint(s string) string {
	if s == "" {
		return ""
	}
	mac := hmac.New(sha256.New, *fingerprintKey.Load())
	mac.Write([]byte(s))
	return hex.EncodeToString(mac.Sum(nil))[:FingerprintLength]
}
