package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/kisan-advisor/internal/domain/chat"
	"github.com/yanqian/kisan-advisor/internal/domain/market"
	"github.com/yanqian/kisan-advisor/internal/domain/weather"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	chatSvc    chat.Service
	weatherSvc weather.Service
	marketSvc  market.Service
	logger     *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(chatSvc chat.Service, weatherSvc weather.Service, marketSvc market.Service, logger *slog.Logger) *Handler {
	return &Handler{
		chatSvc:    chatSvc,
		weatherSvc: weatherSvc,
		marketSvc:  marketSvc,
		logger:     logger.With("component", "http.handler"),
	}
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
