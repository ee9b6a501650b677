package collector

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"

	"SignalBoard/internal/model"
)

// yahooEpoch stands in for "all history" since the chart API needs a start.
var yahooEpoch = time.Date(1970, 1, 2, 0, 0, 0, 0, time.UTC)

// YahooFetcher implements Fetcher using the Yahoo Finance chart API.
type YahooFetcher struct {
	SymbolMap map[string]string // maps internal symbol to Yahoo ticker
	now       func() time.Time
}

// NewYahooFetcher creates a new Yahoo Finance fetcher.
func NewYahooFetcher() *YahooFetcher {
	return &YahooFetcher{
		SymbolMap: map[string]string{
			"SPX500": "^GSPC",
			"SPX":    "^GSPC",
			"SP500":  "^GSPC",
		},
		now: time.Now,
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

func (f *YahooFetcher) yahooSymbol(symbol string) string {
	if mapped, ok := f.SymbolMap[symbol]; ok {
		return mapped
	}
	return symbol
}

func (f *YahooFetcher) FetchDailyBars(ctx context.Context, symbol string, rng model.RangeSpec) (model.Series, error) {
	from, to, err := rng.Resolve(f.now())
	if err != nil {
		return nil, fmt.Errorf("yahoo: %v: %w", err, model.ErrDataUnavailable)
	}
	start := from
	if start.IsZero() {
		start = yahooEpoch
	}
	// period2 is exclusive.
	end := to.AddDate(0, 0, 1)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("yahoo: %v: %w", err, model.ErrDataUnavailable)
	}

	iter := chart.Get(&chart.Params{
		Symbol:   f.yahooSymbol(symbol),
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: datetime.OneDay,
	})

	bars := make(model.Series, 0, 256)
	for iter.Next() {
		b := iter.Bar()
		c := b.Close.InexactFloat64()
		if c == 0 {
			continue // skip null bars (holidays etc.)
		}
		ts := time.Unix(int64(b.Timestamp), 0).UTC()
		bars = append(bars, model.OHLCV{
			Time:   time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC),
			Open:   b.Open.InexactFloat64(),
			High:   b.High.InexactFloat64(),
			Low:    b.Low.InexactFloat64(),
			Close:  c,
			Volume: int64(b.Volume),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("yahoo fetch %s: %v: %w", symbol, err, model.ErrDataUnavailable)
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	bars = dedupeByDate(bars)
	if len(bars) == 0 {
		return nil, fmt.Errorf("yahoo: no data returned for %s: %w", symbol, model.ErrDataUnavailable)
	}
	return bars, nil
}

// dedupeByDate keeps the last bar of each calendar date. Input must be sorted.
func dedupeByDate(bars model.Series) model.Series {
	out := bars[:0]
	for _, b := range bars {
		if n := len(out); n > 0 && out[n-1].Time.Equal(b.Time) {
			out[n-1] = b
			continue
		}
		out = append(out, b)
	}
	return out
}
