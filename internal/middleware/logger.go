package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// RequestIDHeader carries the correlation id in requests and responses
	RequestIDHeader = "X-Request-ID"

	// RequestIDKey is the gin context key holding the correlation id
	RequestIDKey = "request_id"

	redacted        = "[REDACTED]"
	maxLoggedString = 1000
)

// sensitiveFields contains patterns for fields that should be redacted
var sensitiveFields = []string{
	"password",
	"token",
	"api_key",
	"apikey",
	"secret",
	"authorization",
	"credential",
	"session",
	"cookie",
}

// bulkyFields are logged by size only
var bulkyFields = []string{
	"qr_code_base64",
}

// sensitiveHeaderPatterns contains regex patterns for sensitive headers
var sensitiveHeaderPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)authorization`),
	regexp.MustCompile(`(?i)api[-_]?key`),
	regexp.MustCompile(`(?i)token`),
	regexp.MustCompile(`(?i)secret`),
	regexp.MustCompile(`(?i)cookie`),
	regexp.MustCompile(`(?i)session`),
}

// responseWriter is a custom response writer to capture response body
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// LoggerConfig holds configuration for the logger middleware
type LoggerConfig struct {
	// SkipPaths are logged at debug level only, e.g. /health and /metrics
	SkipPaths []string
	// LogBodies includes redacted JSON request and response bodies
	LogBodies bool
}

// RequestID makes sure every request carries a correlation id, reusing the
// client's X-Request-ID when present
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.GetHeader(RequestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// RequestResponseLogger creates a middleware that logs all API requests and responses
func RequestResponseLogger(logger *zap.Logger, config LoggerConfig) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	skip := make(map[string]struct{}, len(config.SkipPaths))
	for _, p := range config.SkipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		startTime := time.Now()

		var requestBody []byte
		if config.LogBodies && c.Request.Body != nil {
			requestBody, _ = io.ReadAll(c.Request.Body)
			// Restore the body for the next handler
			c.Request.Body = io.NopCloser(bytes.NewBuffer(requestBody))
		}

		responseBodyWriter := &responseWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
		}
		c.Writer = responseBodyWriter

		c.Next()

		fields := buildLogFields(c, time.Since(startTime))
		if config.LogBodies {
			if len(requestBody) > 0 {
				fields = append(fields, zap.Any("request_body", parseAndRedactBody(requestBody)))
			}
			if isJSON(c.Writer.Header().Get("Content-Type")) && responseBodyWriter.body.Len() > 0 {
				fields = append(fields, zap.Any("response_body", parseAndRedactBody(responseBodyWriter.body.Bytes())))
			}
		}

		level := zapcore.InfoLevel
		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			level = zapcore.ErrorLevel
		case status >= http.StatusBadRequest:
			level = zapcore.WarnLevel
		}
		if _, ok := skip[c.Request.URL.Path]; ok {
			level = zapcore.DebugLevel
		}

		if ce := logger.Check(level, "http_request"); ce != nil {
			ce.Write(fields...)
		}
	}
}

// buildLogFields collects the request metadata logged for every request
func buildLogFields(c *gin.Context, latency time.Duration) []zap.Field {
	route := c.FullPath()
	if route == "" {
		route = "unknown"
	}

	fields := []zap.Field{
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.String("route", route),
		zap.Int("status", c.Writer.Status()),
		zap.Duration("latency", latency),
		zap.String("client_ip", c.ClientIP()),
		zap.String("user_agent", c.Request.UserAgent()),
		zap.Int("bytes_out", max(c.Writer.Size(), 0)),
		zap.Any("headers", redactHeaders(c.Request.Header)),
	}

	if requestID := c.GetString(RequestIDKey); requestID != "" {
		fields = append(fields, zap.String(RequestIDKey, requestID))
	}
	if query := c.Request.URL.RawQuery; query != "" {
		fields = append(fields, zap.String("query", query))
	}
	if len(c.Errors) > 0 {
		fields = append(fields, zap.String("error", c.Errors.String()))
	}

	return fields
}

// redactHeaders redacts sensitive headers
func redactHeaders(headers http.Header) map[string]string {
	out := make(map[string]string, len(headers))
	for key, values := range headers {
		if isSensitiveHeader(key) {
			out[key] = redacted
		} else {
			out[key] = strings.Join(values, ", ")
		}
	}
	return out
}

// isSensitiveHeader checks if a header name is sensitive
func isSensitiveHeader(headerName string) bool {
	for _, pattern := range sensitiveHeaderPatterns {
		if pattern.MatchString(headerName) {
			return true
		}
	}
	return false
}

// parseAndRedactBody parses JSON body and redacts sensitive fields
func parseAndRedactBody(body []byte) interface{} {
	var jsonBody interface{}
	if err := json.Unmarshal(body, &jsonBody); err != nil {
		return truncate(string(body))
	}

	return redactSensitiveFields(jsonBody)
}

// redactSensitiveFields recursively redacts sensitive fields in JSON data
func redactSensitiveFields(data interface{}) interface{} {
	switch v := data.(type) {
	case map[string]interface{}:
		for key, value := range v {
			switch {
			case isSensitiveField(key):
				v[key] = redacted
			case isBulkyField(key):
				if s, ok := value.(string); ok {
					v[key] = fmt.Sprintf("[%d bytes]", len(s))
				}
			default:
				v[key] = redactSensitiveFields(value)
			}
		}
	case []interface{}:
		for i, item := range v {
			v[i] = redactSensitiveFields(item)
		}
	case string:
		return truncate(v)
	}
	return data
}

// isSensitiveField checks if a field name is sensitive
func isSensitiveField(fieldName string) bool {
	lowerField := strings.ToLower(fieldName)
	for _, sensitive := range sensitiveFields {
		if strings.Contains(lowerField, sensitive) {
			return true
		}
	}
	return false
}

func isBulkyField(fieldName string) bool {
	lowerField := strings.ToLower(fieldName)
	for _, bulky := range bulkyFields {
		if lowerField == bulky {
			return true
		}
	}
	return false
}

func isJSON(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(contentType), "application/json")
}

func truncate(s string) string {
	if len(s) > maxLoggedString {
		return s[:maxLoggedString] + "... (truncated)"
	}
	return s
}
