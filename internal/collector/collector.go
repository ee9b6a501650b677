package collector

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"SignalBoard/internal/cache"
	"SignalBoard/internal/calculator"
	"SignalBoard/internal/model"
	"SignalBoard/internal/strategy"
)

// Collector runs one render cycle: fetch, enrich, drop incomplete rows, classify.
type Collector struct {
	Fetcher Fetcher
	Cache   cache.Cache
	TTL     time.Duration
	now     func() time.Time
}

// NewCollector creates a new Collector. A nil cache gets an in-memory one.
func NewCollector(fetcher Fetcher, c cache.Cache, ttl time.Duration) *Collector {
	if c == nil {
		c = cache.NewMemoryCache()
	}
	if ttl <= 0 {
		ttl = cache.DefaultTTL
	}
	return &Collector{Fetcher: fetcher, Cache: c, TTL: ttl, now: time.Now}
}

// Collect produces the report for symbol over rng. Any error is terminal for
// the cycle and wraps one of the model sentinel errors.
func (c *Collector) Collect(ctx context.Context, symbol string, rng model.RangeSpec, horizon int) (*model.Report, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, fmt.Errorf("empty symbol: %w", model.ErrDataUnavailable)
	}
	if err := strategy.ValidateHorizon(horizon); err != nil {
		return nil, err
	}
	if err := rng.Validate(); err != nil {
		return nil, err
	}

	key := cache.Key(c.Fetcher.Name(), symbol, rng.Key())
	series, err := c.Cache.GetOrCompute(ctx, key, c.TTL, func(ctx context.Context) (model.Series, error) {
		log.Printf("[INFO] fetching %s %s from %s", symbol, rng, c.Fetcher.Name())
		bars, err := c.Fetcher.FetchDailyBars(ctx, symbol, rng)
		if err != nil {
			return nil, err
		}
		if err := bars.Validate(); err != nil {
			return nil, err
		}
		return bars, nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetch daily bars: %w", err)
	}

	if err := calculator.RequireHistory(series); err != nil {
		return nil, err
	}

	enriched := calculator.Enrich(series)
	complete := calculator.CompleteRows(enriched)
	prediction, err := strategy.ClassifyLatest(complete, horizon)
	if err != nil {
		return nil, fmt.Errorf("classify: %w", err)
	}

	log.Printf("[INFO] %s: %d bars, %d complete, signal %s (%d buy / %d sell)",
		symbol, len(series), len(complete), prediction.Signal, prediction.BuyCount, prediction.SellCount)

	return &model.Report{
		Symbol:      symbol,
		Provider:    c.Fetcher.Name(),
		Range:       rng,
		Enriched:    enriched,
		Complete:    complete,
		Prediction:  prediction,
		GeneratedAt: c.now(),
	}, nil
}
