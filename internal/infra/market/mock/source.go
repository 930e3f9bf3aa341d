// Package mock serves demo APMC quotes and synthetic price history.
package mock

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/yanqian/kisan-advisor/internal/domain/market"
	"github.com/yanqian/kisan-advisor/pkg/util"
)

const (
	defaultBasePrice = 2000
	// maxVariation is the +/- share applied to the base price.
	maxVariation = 0.1
)

var basePrices = map[string]float64{
	"Rice":      3000,
	"Wheat":     2400,
	"Onion":     1750,
	"Turmeric":  9000,
	"Soybean":   4500,
	"Cotton":    6000,
	"Sugarcane": 300,
	"Tomato":    1000,
}

var quotes = []market.Price{
	{Commodity: "Rice", Variety: "Common", Market: "APMC Pune", State: "Maharashtra", Price: market.PriceRange{Min: 2800, Max: 3200, Modal: 3000}, Trend: market.TrendUp, Change: 2.5},
	{Commodity: "Wheat", Variety: "Lokvan", Market: "APMC Delhi", State: "Delhi", Price: market.PriceRange{Min: 2200, Max: 2600, Modal: 2400}, Trend: market.TrendStable, Change: 0.1},
	{Commodity: "Onion", Variety: "Red", Market: "APMC Nashik", State: "Maharashtra", Price: market.PriceRange{Min: 1500, Max: 2000, Modal: 1750}, Trend: market.TrendDown, Change: -5.2},
	{Commodity: "Turmeric", Variety: "Finger", Market: "APMC Sangli", State: "Maharashtra", Price: market.PriceRange{Min: 8500, Max: 9500, Modal: 9000}, Trend: market.TrendUp, Change: 8.7},
	{Commodity: "Soybean", Variety: "Yellow", Market: "APMC Indore", State: "Madhya Pradesh", Price: market.PriceRange{Min: 4200, Max: 4800, Modal: 4500}, Trend: market.TrendUp, Change: 3.4},
	{Commodity: "Cotton", Variety: "Medium Staple", Market: "APMC Akola", State: "Maharashtra", Price: market.PriceRange{Min: 5800, Max: 6200, Modal: 6000}, Trend: market.TrendStable, Change: -0.8},
	{Commodity: "Sugarcane", Variety: "Common", Market: "APMC Kolhapur", State: "Maharashtra", Price: market.PriceRange{Min: 280, Max: 320, Modal: 300}, Trend: market.TrendUp, Change: 1.7},
	{Commodity: "Tomato", Variety: "Local", Market: "APMC Bangalore", State: "Karnataka", Price: market.PriceRange{Min: 800, Max: 1200, Modal: 1000}, Trend: market.TrendDown, Change: -12.5},
}

// Source implements market.Source with fixed quotes.
type Source struct {
	now  func() time.Time
	rand func() float64
}

// NewSource builds the mock market source.
func NewSource() *Source {
	return &Source{now: util.NowUTC, rand: rand.Float64}
}

func (s *Source) Name() string { return "mock" }

// Prices returns today's demo quotes narrowed to state.
func (s *Source) Prices(_ context.Context, state string) ([]market.Price, error) {
	today := s.now().UTC().Format(time.DateOnly)
	out := make([]market.Price, 0, len(quotes))
	for _, q := range quotes {
		q.Unit = "Quintal"
		q.Date = today
		out = append(out, q)
	}
	return market.Filter(out, state, ""), nil
}

// History returns days+1 daily points ending today around the commodity's
// base price.
func (s *Source) History(_ context.Context, commodity string, days int) ([]market.PricePoint, error) {
	base, ok := basePrices[commodity]
	if !ok {
		base = defaultBasePrice
	}
	today := s.now().UTC()
	points := make([]market.PricePoint, 0, days+1)
	for i := days; i >= 0; i-- {
		variation := (s.rand() - 0.5) * 2 * maxVariation
		price := base * (1 + variation)
		points = append(points, market.PricePoint{
			Date:  today.AddDate(0, 0, -i).Format(time.DateOnly),
			Price: math.Round(price*100) / 100,
		})
	}
	return points, nil
}

var _ market.Source = (*Source)(nil)
