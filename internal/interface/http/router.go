package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/kisan-advisor/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	logger := handler.logger
	router := gin.New()
	router.Use(
		recoveryMiddleware(logger),
		requestLogger(logger),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
		errorHandlingMiddleware(logger),
		rateLimitMiddleware(cfg.HTTP.RateLimit, logger),
	)

	router.GET("/healthz", handler.Health)

	api := router.Group("/api/v1")
	{
		api.POST("/conversations", handler.StartConversation)
		api.GET("/conversations/:id/messages", handler.ListMessages)
		api.POST("/conversations/:id/messages", handler.SendMessage)

		api.GET("/chat/quick-actions", handler.QuickActions)
		api.POST("/chat/respond", handler.Respond)

		api.GET("/weather", handler.Weather)
		api.GET("/weather/coordinates", handler.WeatherAt)

		api.GET("/market/prices", handler.MarketPrices)
		api.GET("/market/categories", handler.MarketCategories)
		api.GET("/market/states/:state/markets", handler.StateMarkets)
		api.GET("/market/history", handler.PriceHistory)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        withRetry(router, cfg.HTTP.Retry, logger),
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("http request", "method", c.Request.Method, "path", c.Request.URL.Path, "status", c.Writer.Status(), "latency_ms", latency.Milliseconds())
	}
}
