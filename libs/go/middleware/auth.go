package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/cyphera/cyphera-tax/libs/go/constants"
	"github.com/cyphera/cyphera-tax/libs/go/helpers"
	"github.com/cyphera/cyphera-tax/libs/go/logger"
	"github.com/cyphera/cyphera-tax/libs/go/types/api/responses"
	"github.com/cyphera/cyphera-tax/libs/go/types/business"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// APIKeyHeader carries the client API key
	APIKeyHeader = "X-API-Key"
	bearerPrefix = "Bearer "
)

var (
	// ErrInvalidToken is returned when the provided token is invalid
	ErrInvalidToken = errors.New("invalid token")
)

// PrincipalClaims are the JWT claims accepted by RequireAdmin
type PrincipalClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// APIKeyAuth rejects requests whose X-API-Key does not match the configured bcrypt hash.
// Keys that already matched are remembered by their SHA-256 so bcrypt runs once per key.
// A verified key's fingerprint is stored on the context for per-key rate limiting.
func APIKeyAuth(apiKeyHash string) gin.HandlerFunc {
	var verified sync.Map

	return func(c *gin.Context) {
		authLog := logger.NewStructuredLogger(logger.ComponentAuth).WithCorrelationID(GetCorrelationID(c))

		apiKey := c.GetHeader(APIKeyHeader)
		if apiKey == "" {
			authLog.LogAuthEvent("api_key", "", false, "missing")
			abortUnauthorized(c, "API key required")
			return
		}

		sum := sha256.Sum256([]byte(apiKey))
		cacheKey := hex.EncodeToString(sum[:])
		if _, ok := verified.Load(cacheKey); ok {
			c.Set(constants.APIKeyFingerprintContextKey, logger.Fingerprint(apiKey))
			c.Next()
			return
		}

		if apiKeyHash == "" || helpers.CompareAPIKeyHash(apiKey, apiKeyHash) != nil {
			authLog.LogAuthEvent("api_key", helpers.ExtractKeyPrefix(apiKey), false, "mismatch")
			abortUnauthorized(c, "Invalid API key")
			return
		}

		verified.Store(cacheKey, struct{}{})
		fingerprint := logger.Fingerprint(apiKey)
		authLog.LogAuthEvent("api_key", fingerprint, true, "")
		c.Set(constants.APIKeyFingerprintContextKey, fingerprint)
		c.Next()
	}
}

// GetAPIKeyFingerprint returns the fingerprint of the key APIKeyAuth verified, or ""
func GetAPIKeyFingerprint(c *gin.Context) string {
	return c.GetString(constants.APIKeyFingerprintContextKey)
}

// RequireAdmin verifies an HS256 bearer token signed with jwtSecret and requires the
// admin role. The verified principal is stored on the context for the handler.
func RequireAdmin(jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authLog := logger.NewStructuredLogger(logger.ComponentAuth).WithCorrelationID(GetCorrelationID(c))

		principal, err := principalFromRequest(c, jwtSecret)
		if err != nil {
			authLog.WithField("error", err.Error()).LogAuthEvent("admin_token", "", false, "invalid token")
			abortUnauthorized(c, "Valid admin token required")
			return
		}

		if principal.Role != constants.AdminRole {
			authLog.WithField("role", principal.Role).LogAuthEvent("admin_token", principal.Subject, false, "role")
			c.AbortWithStatusJSON(http.StatusForbidden, responses.ErrorResponse{Error: "Admin access required"})
			return
		}

		authLog.LogAuthEvent("admin_token", principal.Subject, true, "")
		c.Set(constants.PrincipalContextKey, principal)
		c.Next()
	}
}

// GetPrincipal returns the principal set by RequireAdmin, or nil
func GetPrincipal(c *gin.Context) *business.Principal {
	if value, exists := c.Get(constants.PrincipalContextKey); exists {
		if principal, ok := value.(*business.Principal); ok {
			return principal
		}
	}
	return nil
}

// SignPrincipalToken issues an HS256 token for principal, valid for ttl
func SignPrincipalToken(jwtSecret []byte, principal business.Principal, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := PrincipalClaims{
		Role: principal.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principal.Subject,
			Issuer:    constants.ServiceName,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret)
}

// ParsePrincipalToken verifies token and returns its principal
func ParsePrincipalToken(jwtSecret []byte, token string) (*business.Principal, error) {
	if len(jwtSecret) == 0 {
		return nil, ErrInvalidToken
	}

	claims := &PrincipalClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (interface{}, error) { return jwtSecret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return &business.Principal{Subject: claims.Subject, Role: claims.Role}, nil
}

func principalFromRequest(c *gin.Context, jwtSecret []byte) (*business.Principal, error) {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return nil, ErrInvalidToken
	}
	return ParsePrincipalToken(jwtSecret, strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix)))
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{Error: message})
}
