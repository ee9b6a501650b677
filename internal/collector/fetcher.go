package collector

import (
	"context"

	"SignalBoard/internal/model"
)

// Fetcher loads daily bars from one market-data provider. Implementations
// return a non-empty ascending series or an error wrapping
// model.ErrDataUnavailable or model.ErrParseMismatch, never a partial series.
type Fetcher interface {
	FetchDailyBars(ctx context.Context, symbol string, rng model.RangeSpec) (model.Series, error)
	Name() string
}
