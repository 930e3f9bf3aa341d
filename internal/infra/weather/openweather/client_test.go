package openweather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

const currentPayload = `{
  "name": "Pune",
  "sys": {"country": "IN"},
  "weather": [{"description": "haze", "icon": "50d"}],
  "main": {"temp": 31.5, "humidity": 48, "pressure": 1008},
  "wind": {"speed": 4.1},
  "visibility": 6000
}`

const forecastPayload = `{
  "list": [
    {"dt": 1720000000, "main": {"temp": 27.2, "humidity": 70}, "weather": [{"description": "light rain", "icon": "10d"}], "wind": {"speed": 3}},
    {"dt": 1720010800, "main": {"temp": 29.8, "humidity": 64}, "weather": [], "wind": {"speed": 5.5}}
  ]
}`

func TestCurrent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/weather", r.URL.Path)
		require.Equal(t, "Pune", r.URL.Query().Get("q"))
		require.Equal(t, "secret", r.URL.Query().Get("appid"))
		require.Equal(t, "metric", r.URL.Query().Get("units"))
		_, _ = w.Write([]byte(currentPayload))
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/", "secret")
	reading, err := client.Current(context.Background(), "Pune")
	require.NoError(t, err)
	require.Equal(t, 32, reading.Temperature)
	require.Equal(t, "haze", reading.Description)
	require.Equal(t, 48, reading.Humidity)
	require.Equal(t, 4.1, reading.WindSpeed)
	require.Equal(t, 1008.0, reading.Pressure)
	require.Equal(t, 6.0, reading.Visibility)
	require.Equal(t, "Pune, IN", reading.Location)
	require.Equal(t, "50d", reading.Icon)
}

func TestCurrentAt(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "18.52", r.URL.Query().Get("lat"))
		require.Equal(t, "73.8567", r.URL.Query().Get("lon"))
		require.Empty(t, r.URL.Query().Get("q"))
		_, _ = w.Write([]byte(currentPayload))
	}))
	defer srv.Close()

	reading, err := NewClient(srv.URL, "k").CurrentAt(context.Background(), 18.52, 73.8567)
	require.NoError(t, err)
	require.Equal(t, "Pune, IN", reading.Location)
}

func TestForecast(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/forecast", r.URL.Path)
		_, _ = w.Write([]byte(forecastPayload))
	}))
	defer srv.Close()

	samples, err := NewClient(srv.URL, "k").Forecast(context.Background(), "Pune")
	require.NoError(t, err)
	require.Len(t, samples, 2)
	require.Equal(t, int64(1720000000), samples[0].Timestamp)
	require.Equal(t, 27.2, samples[0].Temperature)
	require.Equal(t, "light rain", samples[0].Description)
	require.Equal(t, "10d", samples[0].Icon)
	require.Equal(t, 70.0, samples[0].Humidity)
	require.Empty(t, samples[1].Description)
	require.Equal(t, 5.5, samples[1].WindSpeed)
}

func TestUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"cod":401,"message":"Invalid API key"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "bad").Current(context.Background(), "Pune")
	require.Error(t, err)
	require.Contains(t, err.Error(), "status=401")
	require.Contains(t, err.Error(), "Invalid API key")
}

func TestMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "k").Forecast(context.Background(), "Pune")
	require.ErrorContains(t, err, "decode forecast response")
}
