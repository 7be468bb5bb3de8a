package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/cyphera/cyphera-tax/libs/go/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// sensitiveHeaders are never written to logs
var sensitiveHeaders = map[string]struct{}{
	"Authorization": {},
	"X-Api-Key":     {},
	"Cookie":        {},
	"Set-Cookie":    {},
}

// bodyLogWriter is a wrapper around gin.ResponseWriter that captures the response body
type bodyLogWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w bodyLogWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// EnhancedLoggingMiddleware logs request and response bodies in development mode.
// Taxpayer identifiers, names, SSNs and amounts are redacted from both bodies.
func EnhancedLoggingMiddleware(isDevelopment bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isDevelopment {
			c.Next()
			return
		}

		startTime := time.Now()
		log := logger.L().With(zap.String("correlation_id", GetCorrelationID(c)))

		requestBody, truncated := replayBody(c.Request, MaxLoggedBodyBytes)
		var loggedBody interface{} = "[truncated]"
		if !truncated {
			loggedBody = redactJSONBody(c.GetHeader("Content-Type"), requestBody)
		}

		log.Info("Detailed request",
			zap.String("method", c.Request.Method),
			zap.String("route", routeOf(c)),
			zap.Any("headers", redactHeaders(c.Request.Header)),
			zap.Any("body", loggedBody),
			zap.Bool("body_truncated", truncated),
		)

		blw := &bodyLogWriter{body: bytes.NewBufferString(""), ResponseWriter: c.Writer}
		c.Writer = blw

		c.Next()

		responseBody := blw.body.Bytes()
		log.Info("Detailed response",
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(startTime)),
			zap.Any("headers", redactHeaders(c.Writer.Header())),
			zap.Any("body", redactJSONBody(c.Writer.Header().Get("Content-Type"), responseBody)),
			zap.Int("body_size", len(responseBody)),
			zap.Int("errors_count", len(c.Errors)),
		)

		for _, err := range c.Errors {
			log.Error("Request error",
				zap.Error(err.Err),
				zap.Uint64("type", uint64(err.Type)),
			)
		}
	}
}

// RequestLoggingMiddleware provides basic request logging for production
func RequestLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		logger.NewStructuredLogger(logger.ComponentAPI).
			WithCorrelationID(GetCorrelationID(c)).
			WithFields(map[string]interface{}{
				"client_ip": c.ClientIP(),
				"body_size": c.Writer.Size(),
			}).
			LogHTTPRequest(c.Request.Method, routeOf(c), c.Writer.Status(), time.Since(startTime))
	}
}

func redactHeaders(header http.Header) map[string]string {
	headers := make(map[string]string, len(header))
	for key, values := range header {
		if _, sensitive := sensitiveHeaders[http.CanonicalHeaderKey(key)]; sensitive {
			headers[key] = logger.Redacted
			continue
		}
		if len(values) > 0 {
			headers[key] = values[0]
		}
	}
	return headers
}

// redactJSONBody decodes a JSON body and masks sensitive keys. Bodies that are not
// JSON are never logged verbatim.
func redactJSONBody(contentType string, body []byte) interface{} {
	if len(body) == 0 {
		return nil
	}
	if !strings.HasPrefix(contentType, "application/json") {
		return logger.Redacted
	}
	var decoded interface{}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return logger.Redacted
	}
	return logger.RedactValue(decoded)
}
