package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"

	"SignalBoard/internal/model"
)

const (
	alphaVantageBaseURL = "https://www.alphavantage.co"
	// compact returns the latest 100 bars, roughly 140 calendar days.
	compactWindow = 140 * 24 * time.Hour
)

// AlphaVantageFetcher implements Fetcher using the TIME_SERIES_DAILY endpoint.
type AlphaVantageFetcher struct {
	client *resty.Client
	apiKey string
	now    func() time.Time
}

// NewAlphaVantageFetcher creates a fetcher with optional base URL and proxy overrides.
func NewAlphaVantageFetcher(apiKey, baseURL, proxyURL string) *AlphaVantageFetcher {
	if baseURL == "" {
		baseURL = alphaVantageBaseURL
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second)
	if proxyURL != "" {
		client.SetProxy(proxyURL)
	}
	return &AlphaVantageFetcher{client: client, apiKey: apiKey, now: time.Now}
}

func (f *AlphaVantageFetcher) Name() string { return "alphavantage" }

// avResponse is the TIME_SERIES_DAILY payload. Throttled or rejected requests
// carry Note, Information or Error Message instead of the series.
type avResponse struct {
	Note         string                       `json:"Note"`
	Information  string                       `json:"Information"`
	ErrorMessage string                       `json:"Error Message"`
	TimeSeries   map[string]map[string]string `json:"Time Series (Daily)"`
}

func (f *AlphaVantageFetcher) FetchDailyBars(ctx context.Context, symbol string, rng model.RangeSpec) (model.Series, error) {
	from, to, err := rng.Resolve(f.now())
	if err != nil {
		return nil, fmt.Errorf("alphavantage: %v: %w", err, model.ErrDataUnavailable)
	}

	outputSize := "full"
	if !from.IsZero() && f.now().Sub(from) <= compactWindow {
		outputSize = "compact"
	}

	resp, err := f.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"function":   "TIME_SERIES_DAILY",
			"symbol":     symbol,
			"outputsize": outputSize,
			"apikey":     f.apiKey,
		}).
		Get("/query")
	if err != nil {
		return nil, fmt.Errorf("alphavantage fetch: %v: %w", err, model.ErrDataUnavailable)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("alphavantage: status %d, body: %s: %w", resp.StatusCode(), resp.String(), model.ErrDataUnavailable)
	}

	var payload avResponse
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, fmt.Errorf("alphavantage decode: %v: %w", err, model.ErrParseMismatch)
	}

	switch {
	case payload.Note != "":
		return nil, fmt.Errorf("alphavantage: %s: %w", payload.Note, model.ErrDataUnavailable)
	case payload.Information != "":
		return nil, fmt.Errorf("alphavantage: %s: %w", payload.Information, model.ErrDataUnavailable)
	case payload.ErrorMessage != "":
		return nil, fmt.Errorf("alphavantage: %s: %w", payload.ErrorMessage, model.ErrDataUnavailable)
	case payload.TimeSeries == nil:
		return nil, fmt.Errorf("alphavantage: missing \"Time Series (Daily)\": %w", model.ErrParseMismatch)
	}

	bars := make(model.Series, 0, len(payload.TimeSeries))
	for date, fields := range payload.TimeSeries {
		bar, err := parseAlphaVantageBar(date, fields)
		if err != nil {
			return nil, err
		}
		bars = append(bars, bar)
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })

	bars = bars.Trim(from, to)
	if len(bars) == 0 {
		return nil, fmt.Errorf("alphavantage: no bars for %s in %s: %w", symbol, rng, model.ErrDataUnavailable)
	}
	return bars, nil
}

func parseAlphaVantageBar(date string, fields map[string]string) (model.OHLCV, error) {
	t, err := time.Parse(model.DateLayout, date)
	if err != nil {
		return model.OHLCV{}, fmt.Errorf("alphavantage: bad date %q: %w", date, model.ErrParseMismatch)
	}
	bar := model.OHLCV{Time: t}
	prices := []struct {
		key string
		dst *float64
	}{
		{"1. open", &bar.Open},
		{"2. high", &bar.High},
		{"3. low", &bar.Low},
		{"4. close", &bar.Close},
	}
	for _, p := range prices {
		raw, ok := fields[p.key]
		if !ok {
			return model.OHLCV{}, fmt.Errorf("alphavantage %s: missing %q: %w", date, p.key, model.ErrParseMismatch)
		}
		v, err := decimal.NewFromString(raw)
		if err != nil {
			return model.OHLCV{}, fmt.Errorf("alphavantage %s: %q=%q: %w", date, p.key, raw, model.ErrParseMismatch)
		}
		*p.dst = v.InexactFloat64()
	}
	raw, ok := fields["5. volume"]
	if !ok {
		return model.OHLCV{}, fmt.Errorf("alphavantage %s: missing \"5. volume\": %w", date, model.ErrParseMismatch)
	}
	vol, err := decimal.NewFromString(raw)
	if err != nil {
		return model.OHLCV{}, fmt.Errorf("alphavantage %s: volume %q: %w", date, raw, model.ErrParseMismatch)
	}
	bar.Volume = vol.IntPart()
	return bar, nil
}
