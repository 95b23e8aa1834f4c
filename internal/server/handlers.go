package server

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"wikisummary/internal/domain"

	"github.com/gin-gonic/gin"
)

func welcomeHandler(c *gin.Context) {
	c.String(http.StatusOK, welcomeText)
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func randomHandler(svc ArticleService, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := svc.Random(c.Request.Context())
		if err != nil {
			writeError(c, log, "random", err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

func generateHandler(svc ArticleService, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, ok := bindArticleRequest(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		result, err := svc.Generate(c.Request.Context(), req)
		if err != nil {
			writeError(c, log, "generate", err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

func featuredHandler(svc ArticleService, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := svc.Featured(c.Request.Context())
		if err != nil {
			writeError(c, log, "featured", err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// An empty body is a request without a URL, not a malformed one.
func bindArticleRequest(c *gin.Context) (domain.ArticleRequest, bool) {
	var req domain.ArticleRequest

	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return req, true
	}

	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, false
	}

	return req, true
}

// writeError maps validation failures to 400 and everything else to 500.
func writeError(c *gin.Context, log *slog.Logger, operation string, err error) {
	status := http.StatusInternalServerError
	if domain.IsValidation(err) {
		status = http.StatusBadRequest
	}

	log.WarnContext(c.Request.Context(), "Failed to handle request",
		"error", err,
		"operation", operation,
		"status", status)

	c.JSON(status, gin.H{"error": err.Error()})
}
