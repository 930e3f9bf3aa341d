package market

import "github.com/yanqian/kisan-advisor/internal/domain/tip"

// Trend is the direction of a commodity's recent price movement.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// PriceRange is quoted per unit. Min <= Modal <= Max is assumed, not checked.
type PriceRange struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Modal float64 `json:"modal"`
}

// Price is one commodity quote at one market.
type Price struct {
	Commodity string     `json:"commodity"`
	Variety   string     `json:"variety,omitempty"`
	Market    string     `json:"market"`
	State     string     `json:"state"`
	Price     PriceRange `json:"price"`
	Unit      string     `json:"unit"`
	Date      string     `json:"date"`
	Trend     Trend      `json:"trend"`
	// Change is a signed percentage.
	Change float64 `json:"change"`
}

// PricePoint is one entry of a commodity price history.
type PricePoint struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

// Category groups commodities for browsing.
type Category struct {
	Name        string   `json:"name"`
	Commodities []string `json:"commodities"`
}

// Overview is what the market widget renders.
type Overview struct {
	Source   string    `json:"source"`
	Prices   []Price   `json:"prices"`
	Insights []tip.Tip `json:"insights"`
}

// Config wires runtime knobs for the market domain.
type Config struct {
	DefaultHistoryDays int
	MaxHistoryDays     int
}
