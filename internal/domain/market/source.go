package market

import "context"

// Source provides market quotes, live or mock.
type Source interface {
	Name() string
	// Prices returns quotes, narrowed to state when the provider supports it.
	Prices(ctx context.Context, state string) ([]Price, error)
	History(ctx context.Context, commodity string, days int) ([]PricePoint, error)
}
