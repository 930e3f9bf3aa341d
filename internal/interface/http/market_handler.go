package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// MarketPrices returns quotes and insights for an optional state and search.
func (h *Handler) MarketPrices(c *gin.Context) {
	overview, err := h.marketSvc.Overview(c.Request.Context(), c.Query("state"), c.Query("q"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

// MarketCategories lists commodity groups.
func (h *Handler) MarketCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.marketSvc.Categories()})
}

// StateMarkets lists the known markets of a state.
func (h *Handler) StateMarkets(c *gin.Context) {
	state := c.Param("state")
	c.JSON(http.StatusOK, gin.H{"state": state, "markets": h.marketSvc.StateMarkets(state)})
}

// PriceHistory returns a commodity's daily price series.
func (h *Handler) PriceHistory(c *gin.Context) {
	var days int
	if raw := c.Query("days"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			abortWithError(c, badRequest(errors.New("days must be an integer")))
			return
		}
		days = v
	}
	commodity := c.Query("commodity")
	points, err := h.marketSvc.History(c.Request.Context(), commodity, days)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"commodity": commodity, "history": points})
}
