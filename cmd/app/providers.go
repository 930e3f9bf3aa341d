package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/kisan-advisor/internal/domain/chat"
	"github.com/yanqian/kisan-advisor/internal/domain/market"
	"github.com/yanqian/kisan-advisor/internal/domain/weather"
	"github.com/yanqian/kisan-advisor/internal/infra/config"
	"github.com/yanqian/kisan-advisor/internal/infra/conversation"
	"github.com/yanqian/kisan-advisor/internal/infra/market/agmarknet"
	marketmock "github.com/yanqian/kisan-advisor/internal/infra/market/mock"
	"github.com/yanqian/kisan-advisor/internal/infra/sourcecache"
	weathermock "github.com/yanqian/kisan-advisor/internal/infra/weather/mock"
	"github.com/yanqian/kisan-advisor/internal/infra/weather/openweather"
)

// weatherSources pairs the configured source with the mock it falls back to.
type weatherSources struct {
	primary  weather.Source
	fallback weather.Source
}

type marketSources struct {
	primary  market.Source
	fallback market.Source
}

func provideChatConfig(cfg *config.Config) chat.Config {
	return chat.Config{ResponseDelay: cfg.Chat.ResponseDelay}
}

func provideWeatherConfig(cfg *config.Config) (weather.Config, error) {
	loc, err := cfg.Weather.Location()
	if err != nil {
		return weather.Config{}, err
	}
	return weather.Config{
		DefaultCity:  cfg.Weather.DefaultCity,
		ForecastDays: cfg.Weather.ForecastDays,
		Timezone:     loc,
	}, nil
}

func provideMarketConfig(cfg *config.Config) market.Config {
	return market.Config{
		DefaultHistoryDays: cfg.Market.DefaultHistoryDays,
		MaxHistoryDays:     cfg.Market.MaxHistoryDays,
	}
}

func provideConversationRepository() chat.Repository {
	return conversation.NewMemoryRepository()
}

func provideWeatherSources(cfg *config.Config, weatherCfg weather.Config, cache sourcecache.Cache, logger *slog.Logger) weatherSources {
	fallback := weathermock.NewSource(weatherCfg.Timezone)
	if cfg.Weather.Provider != config.ProviderLive {
		logger.Info("weather provider set to mock")
		return weatherSources{primary: fallback, fallback: fallback}
	}
	if strings.TrimSpace(cfg.Weather.APIKey) == "" {
		logger.Warn("weather api key not set, using mock provider")
		return weatherSources{primary: fallback, fallback: fallback}
	}
	live := openweather.NewClient(cfg.Weather.BaseURL, cfg.Weather.APIKey)
	logger.Info("openweathermap provider enabled", "cache_ttl", cfg.Weather.CacheTTL)
	return weatherSources{
		primary:  sourcecache.NewWeatherSource(live, cache, cfg.Weather.CacheTTL, logger),
		fallback: fallback,
	}
}

func provideMarketSources(cfg *config.Config, cache sourcecache.Cache, logger *slog.Logger) marketSources {
	fallback := marketmock.NewSource()
	if cfg.Market.Provider != config.ProviderLive {
		logger.Info("market provider set to mock")
		return marketSources{primary: fallback, fallback: fallback}
	}
	if strings.TrimSpace(cfg.Market.APIKey) == "" {
		logger.Warn("market api key not set, using mock provider")
		return marketSources{primary: fallback, fallback: fallback}
	}
	live := agmarknet.NewClient(agmarknet.Options{
		BaseURL:    cfg.Market.BaseURL,
		ResourceID: cfg.Market.ResourceID,
		APIKey:     cfg.Market.APIKey,
		Limit:      cfg.Market.RecordLimit,
	})
	logger.Info("agmarknet provider enabled", "cache_ttl", cfg.Market.CacheTTL)
	return marketSources{
		primary:  sourcecache.NewMarketSource(live, cache, cfg.Market.CacheTTL, logger),
		fallback: fallback,
	}
}

func provideWeatherService(cfg weather.Config, sources weatherSources, logger *slog.Logger) weather.Service {
	return weather.NewService(cfg, sources.primary, sources.fallback, logger)
}

func provideMarketService(cfg market.Config, sources marketSources, logger *slog.Logger) market.Service {
	return market.NewService(cfg, sources.primary, sources.fallback, logger)
}

// provideSourceCache prefers Valkey and falls back to process memory. The
// cleanup closes the Valkey client when one was opened.
func provideSourceCache(cfg *config.Config, logger *slog.Logger) (sourcecache.Cache, func()) {
	noop := func() {}
	if !cfg.Cache.Valkey.Enabled {
		return sourcecache.NewMemoryCache(), noop
	}
	opt, err := buildValkeyOptions(cfg.Cache.Valkey.Addr)
	if err != nil {
		logger.Error("invalid valkey configuration, falling back to memory cache", "error", err)
		return sourcecache.NewMemoryCache(), noop
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		logger.Error("failed to create valkey client, falling back to memory cache", "error", err)
		return sourcecache.NewMemoryCache(), noop
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		logger.Error("valkey ping failed, falling back to memory cache", "error", err)
		client.Close()
		return sourcecache.NewMemoryCache(), noop
	}
	logger.Info("valkey source cache enabled", "addr", cfg.Cache.Valkey.Addr)
	return sourcecache.NewValkeyCache(client, cfg.Cache.Valkey.Prefix), client.Close
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}
