package market

import (
	"context"
	"log/slog"
	"strings"

	apperrors "github.com/yanqian/kisan-advisor/pkg/errors"
)

const (
	defaultHistoryDays = 30
	maxHistoryDays     = 365
)

// Service exposes market prices with derived insights.
type Service interface {
	Overview(ctx context.Context, state, query string) (Overview, error)
	History(ctx context.Context, commodity string, days int) ([]PricePoint, error)
	Categories() []Category
	StateMarkets(state string) []string
}

type service struct {
	cfg      Config
	primary  Source
	fallback Source
	logger   *slog.Logger
}

// NewService wires up the market domain.
func NewService(cfg Config, primary, fallback Source, logger *slog.Logger) Service {
	if cfg.DefaultHistoryDays <= 0 {
		cfg.DefaultHistoryDays = defaultHistoryDays
	}
	if cfg.MaxHistoryDays <= 0 {
		cfg.MaxHistoryDays = maxHistoryDays
	}
	return &service{
		cfg:      cfg,
		primary:  primary,
		fallback: fallback,
		logger:   logger.With("component", "market.service"),
	}
}

// Overview loads quotes for state. Insights cover every quote in the state;
// query only narrows the returned table.
func (s *service) Overview(ctx context.Context, state, query string) (Overview, error) {
	state = strings.TrimSpace(state)
	source := s.primary.Name()
	prices, err := s.primary.Prices(ctx, state)
	if err != nil {
		s.logger.Warn("primary market source failed, using fallback", "source", source, "state", state, "error", err)
		source = s.fallback.Name()
		prices, err = s.fallback.Prices(ctx, state)
		if err != nil {
			return Overview{}, apperrors.Wrap(apperrors.CodeUpstream, "failed to fetch market prices", err)
		}
	}

	scoped := Filter(prices, state, "")
	filtered := Filter(scoped, "", query)
	s.logger.Info("market overview built", "source", source, "state", state, "query", query, "records", len(scoped), "matches", len(filtered))

	return Overview{
		Source:   source,
		Prices:   filtered,
		Insights: Advise(scoped),
	}, nil
}

func (s *service) History(ctx context.Context, commodity string, days int) ([]PricePoint, error) {
	commodity = strings.TrimSpace(commodity)
	if commodity == "" {
		return nil, apperrors.Wrap(apperrors.CodeInvalidInput, "commodity cannot be empty", nil)
	}
	if days == 0 {
		days = s.cfg.DefaultHistoryDays
	}
	if days < 1 || days > s.cfg.MaxHistoryDays {
		return nil, apperrors.Wrap(apperrors.CodeInvalidInput, "days out of range", nil)
	}

	points, err := s.primary.History(ctx, commodity, days)
	if err != nil {
		s.logger.Warn("primary history source failed, using fallback", "source", s.primary.Name(), "commodity", commodity, "error", err)
		points, err = s.fallback.History(ctx, commodity, days)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.CodeUpstream, "failed to fetch price history", err)
		}
	}
	return points, nil
}

func (s *service) Categories() []Category {
	return Categories()
}

func (s *service) StateMarkets(state string) []string {
	return MarketsIn(state)
}
