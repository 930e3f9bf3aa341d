package weather

import (
	"time"

	"github.com/yanqian/kisan-advisor/internal/domain/tip"
)

// Reading is a current weather observation.
type Reading struct {
	Temperature int     `json:"temperature"`
	Description string  `json:"description"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
	Pressure    float64 `json:"pressure"`
	Visibility  float64 `json:"visibility"`
	Location    string  `json:"location"`
	Icon        string  `json:"icon"`
}

// ForecastSample is one sub-daily forecast point.
type ForecastSample struct {
	Timestamp   int64   `json:"dt"`
	Temperature float64 `json:"temperature"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Humidity    float64 `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
}

// TemperatureRange is a daily min/max in °C.
type TemperatureRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// ForecastDay summarizes all samples of one calendar day.
type ForecastDay struct {
	Date        string           `json:"date"`
	Temperature TemperatureRange `json:"temperature"`
	Description string           `json:"description"`
	Icon        string           `json:"icon"`
	Humidity    int              `json:"humidity"`
	WindSpeed   float64          `json:"windSpeed"`
}

// Report is what the weather widget renders.
type Report struct {
	// Source names the provider of Current; ForecastSource that of Forecast.
	// They differ when only one of the primary calls fell back.
	Source         string        `json:"source"`
	ForecastSource string        `json:"forecastSource,omitempty"`
	Current        Reading       `json:"current"`
	Forecast       []ForecastDay `json:"forecast,omitempty"`
	Tips           []tip.Tip     `json:"tips"`
}

// Config wires runtime dependencies for the weather domain.
type Config struct {
	DefaultCity  string
	ForecastDays int
	// Timezone decides calendar-day boundaries for forecast aggregation.
	Timezone *time.Location
}
