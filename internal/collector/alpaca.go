package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"

	"SignalBoard/internal/model"
)

// alpacaEpoch is the earliest date the Alpaca data API serves.
var alpacaEpoch = time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC)

// AlpacaFetcher implements Fetcher using the Alpaca market data API.
type AlpacaFetcher struct {
	client *marketdata.Client
	now    func() time.Time
}

// NewAlpacaFetcher creates a fetcher authenticated with the given key pair.
func NewAlpacaFetcher(apiKey, apiSecret string) *AlpacaFetcher {
	return &AlpacaFetcher{
		client: marketdata.NewClient(marketdata.ClientOpts{
			APIKey:    apiKey,
			APISecret: apiSecret,
		}),
		now: time.Now,
	}
}

func (f *AlpacaFetcher) Name() string { return "alpaca" }

func (f *AlpacaFetcher) FetchDailyBars(ctx context.Context, symbol string, rng model.RangeSpec) (model.Series, error) {
	from, to, err := rng.Resolve(f.now())
	if err != nil {
		return nil, fmt.Errorf("alpaca: %v: %w", err, model.ErrDataUnavailable)
	}
	if from.IsZero() || from.Before(alpacaEpoch) {
		from = alpacaEpoch
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("alpaca: %v: %w", err, model.ErrDataUnavailable)
	}

	raw, err := f.client.GetBars(symbol, marketdata.GetBarsRequest{
		TimeFrame:  marketdata.OneDay,
		Adjustment: marketdata.Raw,
		Start:      from,
		End:        to,
	})
	if err != nil {
		return nil, fmt.Errorf("alpaca fetch %s: %v: %w", symbol, err, model.ErrDataUnavailable)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("alpaca: no data returned for %s: %w", symbol, model.ErrDataUnavailable)
	}

	bars := make(model.Series, len(raw))
	for i, b := range raw {
		ts := b.Timestamp.UTC()
		bars[i] = model.OHLCV{
			Time:   time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC),
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: int64(b.Volume),
		}
	}
	return bars, nil
}
