// Package openweather fetches current conditions and forecasts from
// OpenWeatherMap.
package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/yanqian/kisan-advisor/internal/domain/weather"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5"

// Client implements weather.Source against the OpenWeatherMap REST API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient builds an API client.
func NewClient(baseURL, apiKey string) *Client {
	base := strings.TrimSpace(baseURL)
	if base == "" {
		base = defaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(base, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) Name() string { return "openweathermap" }

// Current returns conditions for a city name.
func (c *Client) Current(ctx context.Context, city string) (weather.Reading, error) {
	var raw currentResponse
	if err := c.get(ctx, "weather", url.Values{"q": {city}}, &raw); err != nil {
		return weather.Reading{}, err
	}
	return raw.reading(), nil
}

// CurrentAt returns conditions for coordinates.
func (c *Client) CurrentAt(ctx context.Context, lat, lon float64) (weather.Reading, error) {
	params := url.Values{
		"lat": {strconv.FormatFloat(lat, 'f', -1, 64)},
		"lon": {strconv.FormatFloat(lon, 'f', -1, 64)},
	}
	var raw currentResponse
	if err := c.get(ctx, "weather", params, &raw); err != nil {
		return weather.Reading{}, err
	}
	return raw.reading(), nil
}

// Forecast returns the three-hourly samples for a city.
func (c *Client) Forecast(ctx context.Context, city string) ([]weather.ForecastSample, error) {
	var raw forecastResponse
	if err := c.get(ctx, "forecast", url.Values{"q": {city}}, &raw); err != nil {
		return nil, err
	}
	samples := make([]weather.ForecastSample, 0, len(raw.List))
	for _, item := range raw.List {
		desc, icon := item.Weather.first()
		samples = append(samples, weather.ForecastSample{
			Timestamp:   item.Dt,
			Temperature: item.Main.Temp,
			Description: desc,
			Icon:        icon,
			Humidity:    item.Main.Humidity,
			WindSpeed:   item.Wind.Speed,
		})
	}
	return samples, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")
	endpoint := fmt.Sprintf("%s/%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build %s request: %w", path, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("%s request error: status=%d body=%s", path, resp.StatusCode, string(payload))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

type conditions []struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

func (w conditions) first() (string, string) {
	if len(w) == 0 {
		return "", ""
	}
	return w[0].Description, w[0].Icon
}

type currentResponse struct {
	Name    string     `json:"name"`
	Weather conditions `json:"weather"`
	Main    struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
		Pressure float64 `json:"pressure"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Visibility float64 `json:"visibility"`
	Sys        struct {
		Country string `json:"country"`
	} `json:"sys"`
}

func (r currentResponse) reading() weather.Reading {
	desc, icon := r.Weather.first()
	location := r.Name
	if r.Sys.Country != "" {
		location = fmt.Sprintf("%s, %s", r.Name, r.Sys.Country)
	}
	return weather.Reading{
		Temperature: int(math.Floor(r.Main.Temp + 0.5)),
		Description: desc,
		Humidity:    r.Main.Humidity,
		WindSpeed:   r.Wind.Speed,
		Pressure:    r.Main.Pressure,
		Visibility:  r.Visibility / 1000,
		Location:    location,
		Icon:        icon,
	}
}

type forecastResponse struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity float64 `json:"humidity"`
		} `json:"main"`
		Weather conditions `json:"weather"`
		Wind    struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
	} `json:"list"`
}

var _ weather.Source = (*Client)(nil)
