package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"article-api/internal/logger"
)

// Logger returns a Gin middleware that writes one structured log line per
// request: method, path, status, duration, and the request id set by the
// RequestID middleware.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.Info("http request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.String("duration", time.Since(start).String()),
			slog.String("request_id", GetRequestID(c)),
			slog.String("remote", c.ClientIP()),
		)
	}
}
