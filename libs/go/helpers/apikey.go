package helpers

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	// APIKeyLength is the length of the random part of the API key (in bytes before base64 encoding)
	APIKeyLength = 32
	// APIKeyPrefix is the prefix for all API keys
	APIKeyPrefix = "ctx"
	// BcryptCost is the cost factor for bcrypt hashing
	BcryptCost = 10
	// MinBcryptCost is the lowest cost accepted for a configured hash
	MinBcryptCost = 10
)

// GenerateAPIKey generates a new API key for a client of the tax API.
// The full key is shown once; only its bcrypt hash is configured on the server.
func GenerateAPIKey() (fullKey string, keyPrefix string, err error) {
	randomBytes := make([]byte, APIKeyLength)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	encodedKey := base64.RawURLEncoding.EncodeToString(randomBytes)
	fullKey = fmt.Sprintf("%s_%s", APIKeyPrefix, encodedKey)
	return fullKey, ExtractKeyPrefix(fullKey), nil
}

// HashAPIKey hashes an API key using bcrypt
func HashAPIKey(apiKey string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(apiKey), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash API key: %w", err)
	}
	return string(hashedBytes), nil
}

// ValidateAPIKeyHash rejects configured values that are not bcrypt hashes, such as a
// plaintext key pasted into the secret. The value itself is never echoed.
func ValidateAPIKeyHash(hash string) error {
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		return fmt.Errorf("API key hash is not a bcrypt hash")
	}
	if cost < MinBcryptCost {
		return fmt.Errorf("API key hash cost %d is below the minimum of %d", cost, MinBcryptCost)
	}
	return nil
}

// CompareAPIKeyHash compares a plain text API key with a bcrypt hash
func CompareAPIKeyHash(apiKey, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(apiKey))
}

// ExtractKeyPrefix returns the key prefix plus the first 8 characters, safe to log
func ExtractKeyPrefix(apiKey string) string {
	prefix, keyPart, ok := strings.Cut(apiKey, "_")
	if !ok || prefix == "" {
		return "invalid"
	}
	if len(keyPart) > 8 {
		keyPart = keyPart[:8]
	}
	return fmt.Sprintf("%s_%s", prefix, keyPart)
}
