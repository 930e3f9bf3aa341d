// Package mock serves deterministic demo weather when no live key is configured.
package mock

import (
	"context"
	"strings"
	"time"

	"github.com/yanqian/kisan-advisor/internal/domain/weather"
	"github.com/yanqian/kisan-advisor/pkg/util"
)

const (
	forecastDays   = 5
	samplesPerDay  = 8
	sampleInterval = 3 * time.Hour
)

type mockDay struct {
	description string
	icon        string
}

var days = [forecastDays]mockDay{
	{description: "Sunny", icon: "01d"},
	{description: "Partly cloudy", icon: "02d"},
	{description: "Cloudy", icon: "03d"},
	{description: "Light rain", icon: "10d"},
	{description: "Sunny", icon: "01d"},
}

// share of the daily temperature swing at each three-hour slot
var diurnal = [samplesPerDay]float64{0, 0.1, 0.5, 0.9, 1, 0.8, 0.4, 0.2}

// Source implements weather.Source with fixed values.
type Source struct {
	now func() time.Time
	// loc anchors demo days so they line up with forecast aggregation.
	loc *time.Location
}

// NewSource builds the mock weather source. Days start at midnight in loc
// (UTC when nil).
func NewSource(loc *time.Location) *Source {
	if loc == nil {
		loc = time.UTC
	}
	return &Source{now: util.NowUTC, loc: loc}
}

func (s *Source) Name() string { return "mock" }

func (s *Source) Current(_ context.Context, city string) (weather.Reading, error) {
	location := strings.TrimSpace(city)
	if location == "" {
		location = "Demo Location"
	}
	return reading(location), nil
}

func (s *Source) CurrentAt(_ context.Context, _, _ float64) (weather.Reading, error) {
	return reading("Your Location"), nil
}

// Forecast returns three-hourly samples for five days starting at today's
// midnight in the source location.
func (s *Source) Forecast(_ context.Context, _ string) ([]weather.ForecastSample, error) {
	loc := s.loc
	if loc == nil {
		loc = time.UTC
	}
	today := s.now().In(loc)
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, loc)
	samples := make([]weather.ForecastSample, 0, forecastDays*samplesPerDay)
	for i, day := range days {
		low, high := float64(22+i), float64(30+i)
		midnight := start.AddDate(0, 0, i)
		for slot, share := range diurnal {
			ts := midnight.Add(time.Duration(slot) * sampleInterval)
			samples = append(samples, weather.ForecastSample{
				Timestamp:   ts.Unix(),
				Temperature: low + (high-low)*share,
				Description: day.description,
				Icon:        day.icon,
				Humidity:    float64(60 + i*5),
				WindSpeed:   float64(10 + i*2),
			})
		}
	}
	return samples, nil
}

func reading(location string) weather.Reading {
	return weather.Reading{
		Temperature: 28,
		Description: "Partly cloudy",
		Humidity:    65,
		WindSpeed:   12,
		Pressure:    1013,
		Visibility:  10,
		Location:    location,
		Icon:        "02d",
	}
}

var _ weather.Source = (*Source)(nil)
