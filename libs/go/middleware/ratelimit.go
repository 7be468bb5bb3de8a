package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cyphera/cyphera-tax/libs/go/logger"
	"github.com/cyphera/cyphera-tax/libs/go/types/api/responses"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	defaultCleanupInterval = 5 * time.Minute
	limiterIdleTimeout     = 10 * time.Minute
)

// RateLimiter limits requests per client IP or per verified API key
type RateLimiter struct {
	// limiters stores rate limiters per IP or API key fingerprint
	limiters sync.Map
	// rate is the number of requests per second allowed
	rate int
	// burst is the maximum burst size
	burst int
	// cleanupInterval is how often to clean up old limiters
	cleanupInterval time.Duration
	stop            chan struct{}
	stopOnce        sync.Once
}

// limiterEntry holds a rate limiter and its last access time in unix nanoseconds
type limiterEntry struct {
	limiter    *rate.Limiter
	lastAccess atomic.Int64
}

// NewRateLimiter creates a new rate limiter with the specified rate and burst.
// Call Stop to end the background cleanup.
func NewRateLimiter(requestsPerSecond, burst int) *RateLimiter {
	rl := &RateLimiter{
		rate:            requestsPerSecond,
		burst:           burst,
		cleanupInterval: defaultCleanupInterval,
		stop:            make(chan struct{}),
	}

	go rl.cleanup()

	return rl
}

// Stop ends the cleanup goroutine
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// cleanup removes old limiters that haven't been accessed recently
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case now := <-ticker.C:
			rl.evictIdle(now)
		}
	}
}

func (rl *RateLimiter) evictIdle(now time.Time) {
	rl.limiters.Range(func(key, value interface{}) bool {
		if entry, ok := value.(*limiterEntry); ok {
			if now.Sub(time.Unix(0, entry.lastAccess.Load())) > limiterIdleTimeout {
				rl.limiters.Delete(key)
			}
		}
		return true
	})
}

// getLimiter returns the rate limiter for a specific key
func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	now := time.Now().UnixNano()
	if val, ok := rl.limiters.Load(key); ok {
		entry := val.(*limiterEntry)
		entry.lastAccess.Store(now)
		return entry.limiter
	}

	entry := &limiterEntry{limiter: rate.NewLimiter(rate.Limit(rl.rate), rl.burst)}
	entry.lastAccess.Store(now)

	// Another goroutine may have stored one first
	actual, _ := rl.limiters.LoadOrStore(key, entry)
	return actual.(*limiterEntry).limiter
}

// exemptRoutes are never rate limited. They are matched by route template so a
// stage-prefixed health check is covered too.
var exemptRoutes = map[string]struct{}{
	"/health":        {},
	"/ready":         {},
	"/:stage/health": {},
}

// getClientIdentifier keys the limiter by client IP. ClientIP only reads forwarding
// headers when the request arrived through a trusted proxy.
func getClientIdentifier(c *gin.Context) string {
	clientIP := c.ClientIP()
	if clientIP == "" {
		clientIP = "unknown"
	}
	return fmt.Sprintf("ip:%s", clientIP)
}

// getAPIKeyIdentifier keys the limiter by the fingerprint APIKeyAuth stored for a
// verified key. Requests without one fall back to the client IP.
func getAPIKeyIdentifier(c *gin.Context) string {
	if fingerprint := GetAPIKeyFingerprint(c); fingerprint != "" {
		return fmt.Sprintf("api:%s", fingerprint)
	}
	return getClientIdentifier(c)
}

// Middleware returns a Gin middleware handler that limits requests per client IP
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return rl.handler(getClientIdentifier)
}

// APIKeyMiddleware limits requests per verified API key. It must run after APIKeyAuth.
func (rl *RateLimiter) APIKeyMiddleware() gin.HandlerFunc {
	return rl.handler(getAPIKeyIdentifier)
}

func (rl *RateLimiter) handler(identify func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := exemptRoutes[c.FullPath()]; ok {
			c.Next()
			return
		}

		clientID := identify(c)
		limiter := rl.getLimiter(clientID)
		reset := fmt.Sprintf("%d", time.Now().Add(time.Second).Unix())

		if !limiter.Allow() {
			logger.Warn("Rate limit exceeded",
				zap.String("client_id", clientID),
				zap.String("route", routeOf(c)),
				zap.String("method", c.Request.Method),
				zap.String("correlation_id", GetCorrelationID(c)),
			)

			c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", rl.rate))
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("X-RateLimit-Reset", reset)
			c.Header("Retry-After", "1")

			c.AbortWithStatusJSON(http.StatusTooManyRequests, responses.ErrorResponse{
				Error: "Too many requests. Please try again later.",
			})
			return
		}

		remaining := int(limiter.Tokens())
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", rl.rate))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
		c.Header("X-RateLimit-Reset", reset)

		c.Next()
	}
}

// MiddlewareWithConfig returns a per API key middleware with its own rate and burst,
// used for the admin routes. Its cleanup stops together with rl.
func (rl *RateLimiter) MiddlewareWithConfig(customRate, customBurst int) gin.HandlerFunc {
	customRL := &RateLimiter{
		rate:            customRate,
		burst:           customBurst,
		cleanupInterval: rl.cleanupInterval,
		stop:            rl.stop,
	}

	go customRL.cleanup()

	return customRL.APIKeyMiddleware()
}
