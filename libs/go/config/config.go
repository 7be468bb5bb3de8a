package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/cyphera/cyphera-tax/libs/go/helpers"
	"github.com/joho/godotenv"
)

// Environment variable names read at startup
const (
	EnvStage              = "STAGE"
	EnvPort               = "PORT"
	EnvTaxTablesFile      = "TAX_TABLES_FILE"
	EnvCORSAllowedOrigins = "CORS_ALLOWED_ORIGINS"
	EnvRateLimitRPS       = "RATE_LIMIT_RPS"
	EnvRateLimitBurst     = "RATE_LIMIT_BURST"
	EnvTrustedProxies     = "TRUSTED_PROXIES"
	EnvGinMode            = "GIN_MODE"
)

const (
	defaultPort           = "8000"
	defaultRateLimitRPS   = 10
	defaultRateLimitBurst = 20
)

// AppConfig is the process configuration, read once from the environment
type AppConfig struct {
	Stage              string
	Port               string
	TaxTablesFile      string
	CORSAllowedOrigins []string
	RateLimitRPS       int
	RateLimitBurst     int
	// TrustedProxies lists proxy IPs or CIDRs whose forwarding headers are believed.
	// Empty means the client IP is always the connection's remote address.
	TrustedProxies []string
}

// IsDevelopment reports whether the process runs outside production
func (c AppConfig) IsDevelopment() bool {
	return c.Stage != helpers.StageProd
}

// LoadDotEnv loads a .env file when one is present. A missing file is not an error.
func LoadDotEnv(paths ...string) {
	_ = godotenv.Load(paths...)
}

// LoadAppConfig reads and validates the environment
func LoadAppConfig() (AppConfig, error) {
	stage, err := helpers.ResolveStage(os.Getenv(EnvStage))
	if err != nil {
		return AppConfig{}, err
	}

	cfg := AppConfig{
		Stage:          stage,
		Port:           envOrDefault(EnvPort, defaultPort),
		TaxTablesFile:  os.Getenv(EnvTaxTablesFile),
		RateLimitRPS:   defaultRateLimitRPS,
		RateLimitBurst: defaultRateLimitBurst,
	}

	if origins := os.Getenv(EnvCORSAllowedOrigins); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
			}
		}
	}

	if proxies := os.Getenv(EnvTrustedProxies); proxies != "" {
		for _, proxy := range strings.Split(proxies, ",") {
			proxy = strings.TrimSpace(proxy)
			if proxy == "" {
				continue
			}
			if !validProxy(proxy) {
				return AppConfig{}, fmt.Errorf("invalid %s entry %q", EnvTrustedProxies, proxy)
			}
			cfg.TrustedProxies = append(cfg.TrustedProxies, proxy)
		}
	}

	if v := os.Getenv(EnvRateLimitRPS); v != "" {
		rps, err := strconv.Atoi(v)
		if err != nil || rps <= 0 {
			return AppConfig{}, fmt.Errorf("invalid %s %q", EnvRateLimitRPS, v)
		}
		cfg.RateLimitRPS = rps
	}
	if v := os.Getenv(EnvRateLimitBurst); v != "" {
		burst, err := strconv.Atoi(v)
		if err != nil || burst <= 0 {
			return AppConfig{}, fmt.Errorf("invalid %s %q", EnvRateLimitBurst, v)
		}
		cfg.RateLimitBurst = burst
	}

	return cfg, nil
}

func validProxy(proxy string) bool {
	if strings.Contains(proxy, "/") {
		_, _, err := net.ParseCIDR(proxy)
		return err == nil
	}
	return net.ParseIP(proxy) != nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
