package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"article-api/internal/domain"
	"article-api/internal/logger"
	"article-api/internal/middleware"
)

// respondError maps a service error to an HTTP response: NotFound -> 404,
// ValidationError -> 400, anything else -> 500 with a generic message so
// internal detail never leaks to the client.
func respondError(c *gin.Context, err error) {
	switch {
	case domain.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case domain.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error("Unhandled service error",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.String("path", c.FullPath()),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
