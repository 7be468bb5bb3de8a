package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cyphera/cyphera-tax/libs/go/constants"
	"github.com/cyphera/cyphera-tax/libs/go/helpers"
	"github.com/cyphera/cyphera-tax/libs/go/logger"
	"github.com/cyphera/cyphera-tax/libs/go/types/business"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

var testJWTSecret = []byte("test-signing-secret-with-enough-bytes")

func TestAPIKeyAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	key, _, err := helpers.GenerateAPIKey()
	require.NoError(t, err)
	hash, err := helpers.HashAPIKey(key)
	require.NoError(t, err)

	router := gin.New()
	router.Use(APIKeyAuth(hash))
	router.GET("/api/v1/tax/tables", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	tests := []struct {
		name       string
		apiKey     string
		wantStatus int
	}{
		{name: "missing key", apiKey: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong key", apiKey: key + "x", wantStatus: http.StatusUnauthorized},
		{name: "valid key", apiKey: key, wantStatus: http.StatusOK},
		{name: "valid key again from cache", apiKey: key, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := map[string]string{}
			if tt.apiKey != "" {
				headers[APIKeyHeader] = tt.apiKey
			}
			w := doRequest(router, http.MethodGet, "/api/v1/tax/tables", headers)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestAPIKeyAuth_RecordsVerifiedFingerprint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logs := observeLogs(t)

	key, _, err := helpers.GenerateAPIKey()
	require.NoError(t, err)
	hash, err := helpers.HashAPIKey(key)
	require.NoError(t, err)

	var seen []string
	router := gin.New()
	router.Use(APIKeyAuth(hash))
	router.GET("/x", func(c *gin.Context) {
		seen = append(seen, GetAPIKeyFingerprint(c))
		c.Status(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, doRequest(router, http.MethodGet, "/x", map[string]string{APIKeyHeader: key}).Code)
	assert.Equal(t, http.StatusOK, doRequest(router, http.MethodGet, "/x", map[string]string{APIKeyHeader: key}).Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(router, http.MethodGet, "/x", map[string]string{APIKeyHeader: key + "x"}).Code)

	require.Len(t, seen, 2)
	assert.Equal(t, logger.Fingerprint(key), seen[0])
	assert.Equal(t, seen[0], seen[1])

	events := logs.FilterMessage("Authentication event").All()
	require.Len(t, events, 2, "cache hits are not logged")
	assert.Equal(t, zapcore.InfoLevel, events[0].Level)
	assert.Equal(t, true, events[0].ContextMap()["success"])
	assert.Equal(t, zapcore.WarnLevel, events[1].Level)
	assert.Equal(t, "mismatch", events[1].ContextMap()["reason"])
	for _, event := range events {
		for _, value := range event.ContextMap() {
			if str, ok := value.(string); ok {
				assert.NotContains(t, str, key)
			}
		}
	}
}

func TestAPIKeyAuth_EmptyHashRejectsEverything(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(APIKeyAuth(""))
	router.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := doRequest(router, http.MethodGet, "/x", map[string]string{APIKeyHeader: "ctx_anything"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func newAdminRouter() *gin.Engine {
	router := gin.New()
	router.DELETE("/api/v1/admin/taxpayers", RequireAdmin(testJWTSecret), func(c *gin.Context) {
		principal := GetPrincipal(c)
		c.JSON(http.StatusOK, gin.H{"subject": principal.Subject})
	})
	return router
}

func TestRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	adminToken, err := SignPrincipalToken(testJWTSecret, business.Principal{Subject: "ops-1", Role: constants.AdminRole}, time.Minute)
	require.NoError(t, err)
	preparerToken, err := SignPrincipalToken(testJWTSecret, business.Principal{Subject: "prep-1", Role: constants.PreparerRole}, time.Minute)
	require.NoError(t, err)
	expiredToken, err := SignPrincipalToken(testJWTSecret, business.Principal{Subject: "ops-1", Role: constants.AdminRole}, -time.Minute)
	require.NoError(t, err)
	foreignToken, err := SignPrincipalToken([]byte("another-secret"), business.Principal{Subject: "ops-1", Role: constants.AdminRole}, time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name          string
		authorization string
		wantStatus    int
	}{
		{name: "no header", authorization: "", wantStatus: http.StatusUnauthorized},
		{name: "not bearer", authorization: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "garbage token", authorization: "Bearer not-a-jwt", wantStatus: http.StatusUnauthorized},
		{name: "expired", authorization: "Bearer " + expiredToken, wantStatus: http.StatusUnauthorized},
		{name: "wrong signing key", authorization: "Bearer " + foreignToken, wantStatus: http.StatusUnauthorized},
		{name: "non admin role", authorization: "Bearer " + preparerToken, wantStatus: http.StatusForbidden},
		{name: "admin", authorization: "Bearer " + adminToken, wantStatus: http.StatusOK},
	}

	router := newAdminRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := map[string]string{}
			if tt.authorization != "" {
				headers["Authorization"] = tt.authorization
			}
			w := doRequest(router, http.MethodDelete, "/api/v1/admin/taxpayers", headers)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.JSONEq(t, `{"subject":"ops-1"}`, w.Body.String())
			}
		})
	}
}

func TestParsePrincipalToken_RejectsNoneAlgorithm(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, PrincipalClaims{
		Role: constants.AdminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "attacker",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParsePrincipalToken(testJWTSecret, signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParsePrincipalToken_EmptySecret(t *testing.T) {
	_, err := ParsePrincipalToken(nil, "anything")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGetPrincipal_Missing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, GetPrincipal(c))
}
