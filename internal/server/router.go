package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AxZethh/inbank-backend/internal/config"
	"github.com/AxZethh/inbank-backend/internal/http/handlers"
	"github.com/AxZethh/inbank-backend/internal/http/middleware"
	"github.com/AxZethh/inbank-backend/internal/version"
)

type Dependencies struct {
	Checker         handlers.Checker
	DecisionHandler *handlers.DecisionHandler
}

func NewRouter(cfg config.Config, logger *slog.Logger, deps Dependencies) *gin.Engine {
	if cfg.Env == "prod" || cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(func(c *gin.Context) {
		logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"request_id", c.GetString(middleware.RequestIDKey),
		)
		c.Next()
	})

	health := handlers.NewHealthHandler(deps.Checker)
	meta := handlers.NewMetaHandler(cfg.Env, version.Version)

	r.GET("/health", health.Health)
	r.GET("/ready", health.Ready)
	r.GET("/v1/meta", meta.GetMeta)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if deps.DecisionHandler != nil {
		loanGroup := r.Group("/loan")
		loanGroup.Use(cors.Default())
		loanGroup.POST("/decision", deps.DecisionHandler.RequestDecision)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
	})

	return r
}
