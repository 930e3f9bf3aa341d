package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Provider names accepted by the weather and market sections.
const (
	ProviderMock = "mock"
	ProviderLive = "live"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Chat    ChatConfig    `yaml:"chat"`
	Weather WeatherConfig `yaml:"weather"`
	Market  MarketConfig  `yaml:"market"`
	Cache   CacheConfig   `yaml:"cache"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
	Retry          RetryConfig     `yaml:"retry"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// RetryConfig configures best-effort retries for idempotent requests.
type RetryConfig struct {
	Enabled     bool          `yaml:"enabled"`
	MaxAttempts int           `yaml:"maxAttempts"`
	BaseBackoff time.Duration `yaml:"baseBackoff"`
	Exclude     []string      `yaml:"exclude"`
}

// ChatConfig controls the conversation service.
type ChatConfig struct {
	ResponseDelay time.Duration `yaml:"responseDelay"`
}

// WeatherConfig selects and tunes the weather data source.
type WeatherConfig struct {
	Provider     string        `yaml:"provider"`
	APIKey       string        `yaml:"apiKey"`
	BaseURL      string        `yaml:"baseUrl"`
	DefaultCity  string        `yaml:"defaultCity"`
	ForecastDays int           `yaml:"forecastDays"`
	Timezone     string        `yaml:"timezone"`
	CacheTTL     time.Duration `yaml:"cacheTtl"`
}

// MarketConfig selects and tunes the market price source.
type MarketConfig struct {
	Provider           string        `yaml:"provider"`
	APIKey             string        `yaml:"apiKey"`
	BaseURL            string        `yaml:"baseUrl"`
	ResourceID         string        `yaml:"resourceId"`
	RecordLimit        int           `yaml:"recordLimit"`
	DefaultHistoryDays int           `yaml:"defaultHistoryDays"`
	MaxHistoryDays     int           `yaml:"maxHistoryDays"`
	CacheTTL           time.Duration `yaml:"cacheTtl"`
}

// CacheConfig controls where fetched upstream data is cached.
type CacheConfig struct {
	Valkey ValkeyConfig `yaml:"valkey"`
}

// ValkeyConfig contains connection information for cache storage.
type ValkeyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
	Prefix  string `yaml:"prefix"`
}

// Load reads configuration from .env, a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("HTTP_RETRY_ENABLED"); v != "" {
		cfg.HTTP.Retry.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RETRY_MAX_ATTEMPTS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.Retry.MaxAttempts = parsed
		}
	}
	if v := os.Getenv("HTTP_RETRY_BASE_BACKOFF"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.HTTP.Retry.BaseBackoff = parsed
		}
	}
	if v := os.Getenv("CHAT_RESPONSE_DELAY"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Chat.ResponseDelay = parsed
		}
	}
	if v := os.Getenv("WEATHER_PROVIDER"); v != "" {
		cfg.Weather.Provider = strings.ToLower(v)
	}
	if v := os.Getenv("WEATHER_API_KEY"); v != "" {
		cfg.Weather.APIKey = v
	}
	if v := os.Getenv("WEATHER_BASE_URL"); v != "" {
		cfg.Weather.BaseURL = v
	}
	if v := os.Getenv("WEATHER_DEFAULT_CITY"); v != "" {
		cfg.Weather.DefaultCity = v
	}
	if v := os.Getenv("WEATHER_FORECAST_DAYS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Weather.ForecastDays = parsed
		}
	}
	if v := os.Getenv("WEATHER_TIMEZONE"); v != "" {
		cfg.Weather.Timezone = v
	}
	if v := os.Getenv("WEATHER_CACHE_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Weather.CacheTTL = parsed
		}
	}
	if v := os.Getenv("MARKET_PROVIDER"); v != "" {
		cfg.Market.Provider = strings.ToLower(v)
	}
	if v := os.Getenv("MARKET_API_KEY"); v != "" {
		cfg.Market.APIKey = v
	}
	if v := os.Getenv("MARKET_BASE_URL"); v != "" {
		cfg.Market.BaseURL = v
	}
	if v := os.Getenv("MARKET_RESOURCE_ID"); v != "" {
		cfg.Market.ResourceID = v
	}
	if v := os.Getenv("MARKET_RECORD_LIMIT"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Market.RecordLimit = parsed
		}
	}
	if v := os.Getenv("MARKET_CACHE_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Market.CacheTTL = parsed
		}
	}
	if v := os.Getenv("CACHE_VALKEY_ENABLED"); v != "" {
		cfg.Cache.Valkey.Enabled = parseBool(v)
	}
	if v := os.Getenv("CACHE_VALKEY_ADDR"); v != "" {
		cfg.Cache.Valkey.Addr = v
	}
	if v := os.Getenv("CACHE_VALKEY_PREFIX"); v != "" {
		cfg.Cache.Valkey.Prefix = v
	}
}

func parseBool(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 60,
				Burst:             20,
			},
			Retry: RetryConfig{
				Enabled:     true,
				MaxAttempts: 3,
				BaseBackoff: 150 * time.Millisecond,
				Exclude: []string{
					"/api/v1/conversations",
				},
			},
		},
		Chat: ChatConfig{
			ResponseDelay: time.Second,
		},
		Weather: WeatherConfig{
			Provider:     ProviderMock,
			BaseURL:      "https://api.openweathermap.org/data/2.5",
			DefaultCity:  "Pune",
			ForecastDays: 5,
			Timezone:     "UTC",
			CacheTTL:     10 * time.Minute,
		},
		Market: MarketConfig{
			Provider:           ProviderMock,
			BaseURL:            "https://api.data.gov.in",
			ResourceID:         "9ef84268-d588-465a-a308-a864a43d0070",
			RecordLimit:        100,
			DefaultHistoryDays: 30,
			MaxHistoryDays:     365,
			CacheTTL:           30 * time.Minute,
		},
		Cache: CacheConfig{
			Valkey: ValkeyConfig{
				Enabled: false,
				Prefix:  "kisan",
			},
		},
	}
}

// Location resolves the forecast aggregation timezone.
func (c WeatherConfig) Location() (*time.Location, error) {
	name := strings.TrimSpace(c.Timezone)
	if name == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(name)
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.Chat.ResponseDelay < 0 {
		return errors.New("chat.responseDelay cannot be negative")
	}
	if !validProvider(c.Weather.Provider) {
		return fmt.Errorf("weather.provider must be %q or %q", ProviderMock, ProviderLive)
	}
	if c.Weather.Provider == ProviderLive && strings.TrimSpace(c.Weather.BaseURL) == "" {
		return errors.New("weather.baseUrl cannot be empty for the live provider")
	}
	if c.Weather.ForecastDays <= 0 {
		return errors.New("weather.forecastDays must be positive")
	}
	if _, err := c.Weather.Location(); err != nil {
		return fmt.Errorf("weather.timezone: %w", err)
	}
	if c.Weather.CacheTTL < 0 {
		return errors.New("weather.cacheTtl cannot be negative")
	}
	if !validProvider(c.Market.Provider) {
		return fmt.Errorf("market.provider must be %q or %q", ProviderMock, ProviderLive)
	}
	if c.Market.Provider == ProviderLive {
		if strings.TrimSpace(c.Market.BaseURL) == "" {
			return errors.New("market.baseUrl cannot be empty for the live provider")
		}
		if strings.TrimSpace(c.Market.ResourceID) == "" {
			return errors.New("market.resourceId cannot be empty for the live provider")
		}
	}
	if c.Market.DefaultHistoryDays <= 0 || c.Market.MaxHistoryDays < c.Market.DefaultHistoryDays {
		return errors.New("market history days must satisfy 0 < defaultHistoryDays <= maxHistoryDays")
	}
	if c.Market.CacheTTL < 0 {
		return errors.New("market.cacheTtl cannot be negative")
	}
	if c.Cache.Valkey.Enabled && strings.TrimSpace(c.Cache.Valkey.Addr) == "" {
		return errors.New("cache.valkey.addr cannot be empty when valkey cache is enabled")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if c.HTTP.Retry.Enabled {
		if c.HTTP.Retry.MaxAttempts <= 0 {
			return errors.New("http.retry.maxAttempts must be positive")
		}
		if c.HTTP.Retry.BaseBackoff <= 0 {
			return errors.New("http.retry.baseBackoff must be positive")
		}
	}
	return nil
}

func validProvider(p string) bool {
	return p == ProviderMock || p == ProviderLive
}
