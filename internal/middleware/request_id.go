package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type contextKey string

const (
	RequestIDHeader            = "X-Request-ID"
	RequestIDKey    contextKey = "request_id"
)

// RequestID tags each request with an id, echoes it in the response and
// logs start and completion with a request-scoped logger.
func RequestID(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Header(RequestIDHeader, requestID)

		loggerWithID := logger.With().Str("request_id", requestID).Logger()
		ctx := context.WithValue(c.Request.Context(), RequestIDKey, requestID)
		ctx = loggerWithID.WithContext(ctx)
		c.Request = c.Request.WithContext(ctx)

		loggerWithID.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("remote_addr", c.ClientIP()).
			Msg("request started")

		c.Next()

		duration := time.Since(start)
		event := loggerWithID.Info()
		if c.Writer.Status() >= 500 {
			event = loggerWithID.Error()
		}
		if len(c.Errors) > 0 {
			event = event.Str("errors", c.Errors.String())
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Int64("duration_ms", duration.Milliseconds()).
			Dur("duration", duration).
			Msg("request completed")
	}
}

func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}
