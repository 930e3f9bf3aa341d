package weather

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/sourcegraph/conc"

	apperrors "github.com/yanqian/kisan-advisor/pkg/errors"
)

const defaultForecastDays = 5

// Service exposes weather reports with farming advice.
type Service interface {
	Report(ctx context.Context, city string) (Report, error)
	ReportAt(ctx context.Context, lat, lon float64) (Report, error)
}

type service struct {
	cfg      Config
	primary  Source
	fallback Source
	logger   *slog.Logger
}

// NewService wires up the weather domain. fallback serves requests the
// primary source fails; it may be the same source.
func NewService(cfg Config, primary, fallback Source, logger *slog.Logger) Service {
	if cfg.ForecastDays <= 0 {
		cfg.ForecastDays = defaultForecastDays
	}
	if cfg.Timezone == nil {
		cfg.Timezone = time.UTC
	}
	return &service{
		cfg:      cfg,
		primary:  primary,
		fallback: fallback,
		logger:   logger.With("component", "weather.service"),
	}
}

func (s *service) Report(ctx context.Context, city string) (Report, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		city = s.cfg.DefaultCity
	}

	var (
		current        Reading
		samples        []ForecastSample
		source         string
		forecastSource string
		currentErr     error
		forecastErr    error
	)
	wg := conc.NewWaitGroup()
	wg.Go(func() {
		current, source, currentErr = s.current(ctx, city)
	})
	wg.Go(func() {
		samples, forecastSource, forecastErr = s.forecast(ctx, city)
	})
	wg.Wait()

	if currentErr != nil {
		return Report{}, apperrors.Wrap(apperrors.CodeUpstream, "failed to fetch current weather", currentErr)
	}
	if forecastErr != nil {
		// Current conditions still render without a forecast.
		s.logger.Error("weather forecast unavailable", "city", city, "error", forecastErr)
	}

	days := AggregateByDay(samples, s.cfg.Timezone)
	if len(days) > s.cfg.ForecastDays {
		days = days[:s.cfg.ForecastDays]
	}
	s.logger.Info("weather report built", "city", city, "source", source, "forecast_source", forecastSource, "samples", len(samples), "days", len(days))

	return Report{
		Source:         source,
		ForecastSource: forecastSource,
		Current:        current,
		Forecast:       days,
		Tips:           Advise(current),
	}, nil
}

func (s *service) ReportAt(ctx context.Context, lat, lon float64) (Report, error) {
	if math.IsNaN(lat) || math.IsNaN(lon) || lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return Report{}, apperrors.Wrap(apperrors.CodeInvalidInput, "coordinates out of range", nil)
	}

	source := s.primary.Name()
	current, err := s.primary.CurrentAt(ctx, lat, lon)
	if err != nil {
		s.logger.Warn("primary weather source failed, using fallback", "source", source, "error", err)
		source = s.fallback.Name()
		current, err = s.fallback.CurrentAt(ctx, lat, lon)
		if err != nil {
			return Report{}, apperrors.Wrap(apperrors.CodeUpstream, "failed to fetch location weather", err)
		}
	}
	return Report{Source: source, Current: current, Tips: Advise(current)}, nil
}

func (s *service) current(ctx context.Context, city string) (Reading, string, error) {
	reading, err := s.primary.Current(ctx, city)
	if err == nil {
		return reading, s.primary.Name(), nil
	}
	s.logger.Warn("primary weather source failed, using fallback", "source", s.primary.Name(), "city", city, "error", err)
	reading, err = s.fallback.Current(ctx, city)
	if err != nil {
		return Reading{}, "", err
	}
	return reading, s.fallback.Name(), nil
}

func (s *service) forecast(ctx context.Context, city string) ([]ForecastSample, string, error) {
	samples, err := s.primary.Forecast(ctx, city)
	if err == nil {
		return samples, s.primary.Name(), nil
	}
	s.logger.Warn("primary forecast source failed, using fallback", "source", s.primary.Name(), "city", city, "error", err)
	samples, err = s.fallback.Forecast(ctx, city)
	if err != nil {
		return nil, "", err
	}
	return samples, s.fallback.Name(), nil
}
