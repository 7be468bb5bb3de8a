package server

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/cyphera/cyphera-tax/apps/api/handlers"
	awsclient "github.com/cyphera/cyphera-tax/libs/go/client/aws"
	"github.com/cyphera/cyphera-tax/libs/go/config"
	"github.com/cyphera/cyphera-tax/libs/go/db"
	"github.com/cyphera/cyphera-tax/libs/go/helpers"
	"github.com/cyphera/cyphera-tax/libs/go/interfaces"
	"github.com/cyphera/cyphera-tax/libs/go/logger"
	"github.com/cyphera/cyphera-tax/libs/go/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Admin routes get a stricter per-key budget on top of the shared limits
const (
	adminRateLimitRPS   = 1
	adminRateLimitBurst = 3
)

// Handler Definitions
var (
	healthHandler   *handlers.HealthHandler
	taxHandler      *handlers.TaxHandler
	taxpayerHandler *handlers.TaxpayerHandler

	// Database
	dbPool    *pgxpool.Pool
	dbQueries *db.Queries

	// Configuration
	appConfig      config.AppConfig
	apiKeyHash     string
	jwtSecret      []byte
	rateLimiter    *middleware.RateLimiter
	handlerFactory *handlers.HandlerFactory
)

// Secrets holds the values resolved from Secrets Manager or the environment
type Secrets struct {
	DSN                string
	FieldEncryptionKey string
	APIKeyHash         string
	AdminJWTSecret     string
	// FingerprintKey keys log fingerprints. Required on deployed stages.
	FingerprintKey string
}

// RouteConfig carries everything InitializeRoutes wires into the router
type RouteConfig struct {
	Health      *handlers.HealthHandler
	Tax         *handlers.TaxHandler
	Taxpayer    *handlers.TaxpayerHandler
	APIKeyHash  string
	JWTSecret   []byte
	RateLimiter *middleware.RateLimiter
	CORSOrigins []string
	// TrustedProxies may set X-Forwarded-For; nil trusts none
	TrustedProxies []string
	IsDevelopment  bool
	EnableSwagger  bool
}

func InitializeHandlers() {
	config.LoadDotEnv()

	var err error
	appConfig, err = config.LoadAppConfig()
	if err != nil {
		// Logger is not configured yet
		logger.InitLogger(helpers.StageLocal)
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	logger.InitLogger(appConfig.Stage)
	logger.Info("Initializing handlers for stage", zap.String("stage", appConfig.Stage))

	ctx := context.Background()

	secretsClient, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize AWS Secrets Manager client", zap.Error(err))
	}

	secrets, err := LoadSecrets(ctx, secretsClient, appConfig.Stage)
	if err != nil {
		logger.Fatal("Failed to load secrets", zap.Error(err))
	}

	tables, err := config.LoadTaxTables(appConfig.TaxTablesFile)
	if err != nil {
		logger.Fatal("Failed to load tax tables", zap.Error(err))
	}
	logger.Info("Loaded tax tables",
		zap.Int("year", tables.Year()),
		zap.Bool("custom_file", appConfig.TaxTablesFile != ""))

	if secrets.FingerprintKey != "" {
		if err := logger.SetFingerprintKey([]byte(secrets.FingerprintKey)); err != nil {
			logger.Fatal("Invalid log fingerprint key", zap.Error(err))
		}
	} else {
		logger.Warn("LOG_FINGERPRINT_KEY not set, log fingerprints use a per-process key")
	}

	cipher, err := helpers.NewFieldCipherFromBase64(secrets.FieldEncryptionKey)
	if err != nil {
		logger.Fatal("Invalid field encryption key", zap.Error(err))
	}

	dbPool, err = helpers.ConnectPool(ctx, secrets.DSN, helpers.DefaultPoolConfig())
	if err != nil {
		logger.Fatal("Unable to connect to database", zap.Error(err))
	}
	dbQueries = db.New(dbPool)

	apiKeyHash = secrets.APIKeyHash
	jwtSecret = []byte(secrets.AdminJWTSecret)
	rateLimiter = middleware.NewRateLimiter(appConfig.RateLimitRPS, appConfig.RateLimitBurst)

	handlerFactory = handlers.CreateDefaultFactory(dbQueries, cipher, tables)
	healthHandler = handlerFactory.NewHealthHandler(dbPool)
	taxHandler = handlerFactory.NewTaxHandler()
	taxpayerHandler = handlerFactory.NewTaxpayerHandler()
}

// LoadSecrets resolves database credentials and key material. Deployed stages build
// the DSN from the RDS secret; local runs read DATABASE_URL.
func LoadSecrets(ctx context.Context, secretsClient interfaces.SecretsProvider, stage string) (Secrets, error) {
	var secrets Secrets
	var err error

	deployed := stage == helpers.StageProd || stage == helpers.StageDev
	if deployed {
		secrets.DSN, err = deployedDSN(ctx, secretsClient)
		if err != nil {
			return Secrets{}, err
		}
	} else {
		secrets.DSN, err = secretsClient.GetSecretString(ctx, "DATABASE_URL_ARN", "DATABASE_URL")
		if err != nil || secrets.DSN == "" {
			return Secrets{}, fmt.Errorf("DATABASE_URL is required for local development: %w", err)
		}
	}

	secrets.FieldEncryptionKey, err = secretsClient.GetSecretString(ctx, "FIELD_ENCRYPTION_KEY_ARN", "FIELD_ENCRYPTION_KEY")
	if err != nil || secrets.FieldEncryptionKey == "" {
		return Secrets{}, fmt.Errorf("field encryption key is required: %w", err)
	}

	secrets.APIKeyHash, err = secretsClient.GetSecretString(ctx, "API_KEY_HASH_ARN", "API_KEY_HASH")
	if err != nil || secrets.APIKeyHash == "" {
		return Secrets{}, fmt.Errorf("API key hash is required: %w", err)
	}
	if err := helpers.ValidateAPIKeyHash(secrets.APIKeyHash); err != nil {
		return Secrets{}, err
	}

	secrets.AdminJWTSecret, err = secretsClient.GetSecretString(ctx, "ADMIN_JWT_SECRET_ARN", "ADMIN_JWT_SECRET")
	if err != nil || secrets.AdminJWTSecret == "" {
		return Secrets{}, fmt.Errorf("admin JWT secret is required: %w", err)
	}

	secrets.FingerprintKey, err = secretsClient.GetSecretString(ctx, "LOG_FINGERPRINT_KEY_ARN", "LOG_FINGERPRINT_KEY")
	if deployed && (err != nil || secrets.FingerprintKey == "") {
		return Secrets{}, fmt.Errorf("log fingerprint key is required: %w", err)
	}
	if secrets.FingerprintKey != "" && len(secrets.FingerprintKey) < logger.MinFingerprintKeyLen {
		return Secrets{}, logger.ErrFingerprintKeyTooShort
	}

	return secrets, nil
}

func deployedDSN(ctx context.Context, secretsClient interfaces.SecretsProvider) (string, error) {
	dbEndpoint := os.Getenv("DB_HOST")
	dbName := os.Getenv("DB_NAME")
	dbSSLMode := os.Getenv("DB_SSLMODE")

	if dbEndpoint == "" || dbName == "" {
		return "", fmt.Errorf("missing required DB environment variables for deployed stage (DB_HOST, DB_NAME)")
	}
	if dbSSLMode == "" {
		dbSSLMode = "require"
		logger.Warn("DB_SSLMODE not set, defaulting to 'require'")
	}

	type RdsSecret struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	var secretData RdsSecret

	if err := secretsClient.GetSecretJSON(ctx, "RDS_SECRET_ARN", "", &secretData); err != nil {
		return "", fmt.Errorf("failed to retrieve or parse RDS secret: %w", err)
	}
	if secretData.Username == "" || secretData.Password == "" {
		return "", fmt.Errorf("username or password not found in RDS secret data")
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(secretData.Username, secretData.Password),
		Host:     dbEndpoint,
		Path:     "/" + dbName,
		RawQuery: url.Values{"sslmode": {dbSSLMode}}.Encode(),
	}
	return dsn.String(), nil
}

func InitializeRoutes(router *gin.Engine) {
	SetupRoutes(router, RouteConfig{
		Health:         healthHandler,
		Tax:            taxHandler,
		Taxpayer:       taxpayerHandler,
		APIKeyHash:     apiKeyHash,
		JWTSecret:      jwtSecret,
		RateLimiter:    rateLimiter,
		CORSOrigins:    appConfig.CORSAllowedOrigins,
		TrustedProxies: appConfig.TrustedProxies,
		IsDevelopment:  os.Getenv(config.EnvGinMode) != gin.ReleaseMode,
		EnableSwagger:  appConfig.IsDevelopment(),
	})
}

// SetupRoutes registers middleware and routes on router
func SetupRoutes(router *gin.Engine, rc RouteConfig) {
	if err := router.SetTrustedProxies(rc.TrustedProxies); err != nil {
		logger.Error("Invalid trusted proxies, trusting none", zap.Error(err))
		_ = router.SetTrustedProxies(nil)
	}

	router.Use(configureCORS(rc.CORSOrigins))

	// Add correlation ID middleware for request tracing
	router.Use(middleware.CorrelationIDMiddleware())

	if rc.RateLimiter != nil {
		router.Use(rc.RateLimiter.Middleware())
	}

	router.Use(middleware.EnhancedLoggingMiddleware(rc.IsDevelopment))
	if !rc.IsDevelopment {
		router.Use(middleware.RequestLoggingMiddleware())
	}

	if rc.EnableSwagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	router.GET("/health", rc.Health.Health)
	router.GET("/ready", rc.Health.Ready)

	// Health for raw lambda url check
	router.GET("/:stage/health", rc.Health.Health)

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(middleware.APIKeyAuth(rc.APIKeyHash))
	if rc.RateLimiter != nil {
		v1.Use(rc.RateLimiter.APIKeyMiddleware())
	}
	{
		tax := v1.Group("/tax")
		{
			tax.POST("/calculate", rc.Tax.CalculateTax)
			tax.GET("/tables", rc.Tax.GetTaxTables)
		}

		taxpayers := v1.Group("/taxpayers")
		{
			taxpayers.POST("", rc.Taxpayer.CreateTaxpayer)
			taxpayers.GET("/:taxpayer_id", rc.Taxpayer.GetTaxpayer)
			taxpayers.PATCH("/:taxpayer_id", rc.Taxpayer.UpdateTaxpayer)
			taxpayers.POST("/:taxpayer_id/calculate", rc.Taxpayer.CalculateForTaxpayer)
		}

		// Admin-only routes
		admin := v1.Group("/admin")
		if rc.RateLimiter != nil {
			admin.Use(rc.RateLimiter.MiddlewareWithConfig(adminRateLimitRPS, adminRateLimitBurst))
		}
		admin.Use(middleware.RequireAdmin(rc.JWTSecret))
		{
			admin.DELETE("/taxpayers", rc.Taxpayer.PurgeTaxpayers)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handlers.ErrorResponse{Error: "Not found"})
	})
}

// Shutdown releases the database pool and stops background workers
func Shutdown() {
	if rateLimiter != nil {
		rateLimiter.Stop()
	}
	if dbPool != nil {
		dbPool.Close()
	}
	logger.Sync()
}

// configureCORS returns a configured CORS middleware
func configureCORS(origins []string) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	if len(origins) == 0 {
		// Default to localhost if not set
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		corsConfig.AllowOrigins = origins
	}

	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}

	headersEnv := os.Getenv("CORS_ALLOWED_HEADERS")
	if headersEnv == "" {
		corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.APIKeyHeader, "X-Correlation-ID"}
	} else {
		headers := strings.Split(headersEnv, ",")
		for i, header := range headers {
			headers[i] = strings.TrimSpace(header)
		}
		corsConfig.AllowHeaders = headers
	}

	corsConfig.ExposeHeaders = []string{
		"X-RateLimit-Limit",
		"X-RateLimit-Remaining",
		"X-RateLimit-Reset",
		"Retry-After",
		"X-Correlation-ID",
	}

	return cors.New(corsConfig)
}

// Port returns the configured listen port
func Port() string {
	return appConfig.Port
}
