package sourcecache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/yanqian/kisan-advisor/internal/domain/market"
	"github.com/yanqian/kisan-advisor/internal/domain/weather"
)

// WeatherSource caches a weather.Source. Cache failures fall through to the
// wrapped source.
type WeatherSource struct {
	inner  weather.Source
	cache  Cache
	ttl    time.Duration
	logger *slog.Logger
}

// NewWeatherSource decorates inner with cache.
func NewWeatherSource(inner weather.Source, cache Cache, ttl time.Duration, logger *slog.Logger) *WeatherSource {
	return &WeatherSource{inner: inner, cache: cache, ttl: ttl, logger: logger.With("component", "sourcecache.weather")}
}

func (s *WeatherSource) Name() string { return s.inner.Name() }

func (s *WeatherSource) Current(ctx context.Context, city string) (weather.Reading, error) {
	return cached(ctx, s.cache, s.ttl, s.logger, "weather:current:"+normalizeKey(city), func() (weather.Reading, error) {
		return s.inner.Current(ctx, city)
	})
}

func (s *WeatherSource) Forecast(ctx context.Context, city string) ([]weather.ForecastSample, error) {
	return cached(ctx, s.cache, s.ttl, s.logger, "weather:forecast:"+normalizeKey(city), func() ([]weather.ForecastSample, error) {
		return s.inner.Forecast(ctx, city)
	})
}

func (s *WeatherSource) CurrentAt(ctx context.Context, lat, lon float64) (weather.Reading, error) {
	key := fmt.Sprintf("weather:coords:%.2f,%.2f", lat, lon)
	return cached(ctx, s.cache, s.ttl, s.logger, key, func() (weather.Reading, error) {
		return s.inner.CurrentAt(ctx, lat, lon)
	})
}

// MarketSource caches a market.Source.
type MarketSource struct {
	inner  market.Source
	cache  Cache
	ttl    time.Duration
	logger *slog.Logger
}

// NewMarketSource decorates inner with cache.
func NewMarketSource(inner market.Source, cache Cache, ttl time.Duration, logger *slog.Logger) *MarketSource {
	return &MarketSource{inner: inner, cache: cache, ttl: ttl, logger: logger.With("component", "sourcecache.market")}
}

func (s *MarketSource) Name() string { return s.inner.Name() }

func (s *MarketSource) Prices(ctx context.Context, state string) ([]market.Price, error) {
	return cached(ctx, s.cache, s.ttl, s.logger, "market:prices:"+normalizeKey(state), func() ([]market.Price, error) {
		return s.inner.Prices(ctx, state)
	})
}

func (s *MarketSource) History(ctx context.Context, commodity string, days int) ([]market.PricePoint, error) {
	key := fmt.Sprintf("market:history:%s:%d", normalizeKey(commodity), days)
	return cached(ctx, s.cache, s.ttl, s.logger, key, func() ([]market.PricePoint, error) {
		return s.inner.History(ctx, commodity, days)
	})
}

func cached[T any](ctx context.Context, cache Cache, ttl time.Duration, logger *slog.Logger, key string, load func() (T, error)) (T, error) {
	if payload, ok, err := cache.Get(ctx, key); err != nil {
		logger.Warn("cache read failed", "key", key, "error", err)
	} else if ok {
		var value T
		if err := json.Unmarshal(payload, &value); err == nil {
			return value, nil
		}
		logger.Warn("cache payload corrupt", "key", key)
	}

	value, err := load()
	if err != nil {
		return value, err
	}
	payload, err := json.Marshal(value)
	if err != nil {
		logger.Warn("cache encode failed", "key", key, "error", err)
		return value, nil
	}
	if err := cache.Set(ctx, key, payload, ttl); err != nil {
		logger.Warn("cache write failed", "key", key, "error", err)
	}
	return value, nil
}

func normalizeKey(v string) string {
	return strings.Join(strings.Fields(strings.ToLower(v)), "_")
}

var (
	_ weather.Source = (*WeatherSource)(nil)
	_ market.Source  = (*MarketSource)(nil)
)
