package server

import (
	"context"
	"log/slog"
	"time"

	"wikisummary/internal/domain"

	"github.com/gin-gonic/gin"
)

const welcomeText = "Welcome to the Wiki Summary Generator!"

type ArticleService interface {
	Random(ctx context.Context) (domain.SummaryResult, error)
	Generate(ctx context.Context, req domain.ArticleRequest) (domain.SummaryResult, error)
	Featured(ctx context.Context) (domain.SummaryResult, error)
}

func NewRouter(svc ArticleService, log *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(log))

	r.GET("/", welcomeHandler)
	r.GET("/health", healthHandler)

	r.GET("/random", randomHandler(svc, log))
	r.POST("/generate", generateHandler(svc, log))
	r.GET("/featured", featuredHandler(svc, log))

	return r
}

func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		log.InfoContext(c.Request.Context(), "Request is handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"durationMs", time.Since(start).Milliseconds(),
			"clientIP", c.ClientIP())
	}
}
