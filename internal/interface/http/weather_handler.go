package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Weather returns the report for a city, or the default city.
func (h *Handler) Weather(c *gin.Context) {
	report, err := h.weatherSvc.Report(c.Request.Context(), c.Query("city"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// WeatherAt returns current conditions for coordinates.
func (h *Handler) WeatherAt(c *gin.Context) {
	lat, err := parseCoordinate(c.Query("lat"), "lat")
	if err != nil {
		abortWithError(c, badRequest(err))
		return
	}
	lon, err := parseCoordinate(c.Query("lon"), "lon")
	if err != nil {
		abortWithError(c, badRequest(err))
		return
	}
	report, err := h.weatherSvc.ReportAt(c.Request.Context(), lat, lon)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func parseCoordinate(raw, name string) (float64, error) {
	if raw == "" {
		return 0, errors.New(name + " is required")
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.New(name + " must be a number")
	}
	return v, nil
}
