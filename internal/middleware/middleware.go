package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"prospecta/internal/pkg/logger"
)

// requestIDHeader carries the correlation id on requests and responses.
const requestIDHeader = "X-Request-ID"

// RequestID assigns each request a correlation id, honoring one the
// client already sent, and echoes it on the response.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		ctx.Set("request_id", requestID)
		ctx.Header(requestIDHeader, requestID)
		ctx.Next()
	}
}

// RequestLogger logs one structured line per request after it finishes
func RequestLogger() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		path := ctx.Request.URL.Path

		ctx.Next()

		event := logger.Info()
		if ctx.Writer.Status() >= 500 {
			event = logger.Error()
		}

		event.
			Str("method", ctx.Request.Method).
			Str("path", path).
			Int("status", ctx.Writer.Status()).
			Dur("latency", time.Since(start)).
			Str("client_ip", ctx.ClientIP()).
			Str("request_id", ctx.GetString("request_id")).
			Msg("Request handled")
	}
}
