package server

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pathfinder-backend/internal/careers"
	"pathfinder-backend/internal/llm/openrouter"
	"pathfinder-backend/internal/shared/config"
	"pathfinder-backend/internal/shared/metrics"
	"pathfinder-backend/internal/shared/server/middleware"
	"pathfinder-backend/internal/shared/server/respond"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	client, err := openrouter.NewClient(
		cfg.OpenRouterKey,
		cfg.LLMModel,
		cfg.SiteURL,
		cfg.SiteTitle,
		time.Duration(cfg.LLMTimeoutSecs)*time.Second,
	)
	if err != nil {
		log.Fatalf("llm client: %v", err)
	}

	svc := &careers.Service{LLM: client, APIKey: cfg.OpenRouterKey}
	handler := careers.NewHandler(svc)

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	handler.RegisterRoutes(api)

	r.GET("/metrics", metrics.Handler())

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
