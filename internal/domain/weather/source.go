package weather

import "context"

// Source provides weather readings from a provider, live or mock.
type Source interface {
	Name() string
	Current(ctx context.Context, city string) (Reading, error)
	Forecast(ctx context.Context, city string) ([]ForecastSample, error)
	CurrentAt(ctx context.Context, lat, lon float64) (Reading, error)
}
