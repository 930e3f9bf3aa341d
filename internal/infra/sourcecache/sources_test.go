package sourcecache

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/kisan-advisor/internal/domain/market"
	"github.com/yanqian/kisan-advisor/internal/domain/weather"
)

func TestWeatherSourceServesFromCache(t *testing.T) {
	inner := &countingWeather{reading: weather.Reading{Temperature: 31, Location: "Pune, IN"}}
	src := NewWeatherSource(inner, NewMemoryCache(), time.Minute, newTestLogger())
	ctx := context.Background()

	first, err := src.Current(ctx, "Pune")
	require.NoError(t, err)
	second, err := src.Current(ctx, "  pune ")
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, 1, inner.currentCalls)
	require.Equal(t, "owm", src.Name())

	_, err = src.Forecast(ctx, "Pune")
	require.NoError(t, err)
	_, err = src.Forecast(ctx, "Pune")
	require.NoError(t, err)
	require.Equal(t, 1, inner.forecastCalls)
}

func TestWeatherSourceDoesNotCacheErrors(t *testing.T) {
	inner := &countingWeather{err: errors.New("boom")}
	src := NewWeatherSource(inner, NewMemoryCache(), time.Minute, newTestLogger())

	_, err := src.Current(context.Background(), "Pune")
	require.Error(t, err)
	_, err = src.Current(context.Background(), "Pune")
	require.Error(t, err)
	require.Equal(t, 2, inner.currentCalls)
}

func TestMarketSourceIgnoresBrokenCache(t *testing.T) {
	inner := &countingMarket{prices: []market.Price{{Commodity: "Rice"}}}
	src := NewMarketSource(inner, brokenCache{}, time.Minute, newTestLogger())

	prices, err := src.Prices(context.Background(), "Maharashtra")
	require.NoError(t, err)
	require.Len(t, prices, 1)

	_, err = src.History(context.Background(), "Rice", 7)
	require.NoError(t, err)
	require.Equal(t, 1, inner.calls)
}

func TestMarketSourceKeysByArguments(t *testing.T) {
	inner := &countingMarket{prices: []market.Price{{Commodity: "Rice"}}}
	src := NewMarketSource(inner, NewMemoryCache(), time.Minute, newTestLogger())
	ctx := context.Background()

	_, err := src.Prices(ctx, "Maharashtra")
	require.NoError(t, err)
	_, err = src.Prices(ctx, "Karnataka")
	require.NoError(t, err)
	_, err = src.Prices(ctx, "maharashtra")
	require.NoError(t, err)
	require.Equal(t, 2, inner.calls)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type countingWeather struct {
	reading       weather.Reading
	err           error
	currentCalls  int
	forecastCalls int
}

func (c *countingWeather) Name() string { return "owm" }

func (c *countingWeather) Current(context.Context, string) (weather.Reading, error) {
	c.currentCalls++
	return c.reading, c.err
}

func (c *countingWeather) Forecast(context.Context, string) ([]weather.ForecastSample, error) {
	c.forecastCalls++
	return []weather.ForecastSample{{Timestamp: 1719792000, Temperature: 25}}, c.err
}

func (c *countingWeather) CurrentAt(context.Context, float64, float64) (weather.Reading, error) {
	return c.reading, c.err
}

type countingMarket struct {
	prices []market.Price
	calls  int
}

func (c *countingMarket) Name() string { return "agmarknet" }

func (c *countingMarket) Prices(context.Context, string) ([]market.Price, error) {
	c.calls++
	return c.prices, nil
}

func (c *countingMarket) History(context.Context, string, int) ([]market.PricePoint, error) {
	return []market.PricePoint{{Date: "2024-07-01", Price: 10}}, nil
}

type brokenCache struct{}

func (brokenCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("valkey down")
}

func (brokenCache) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("valkey down")
}
