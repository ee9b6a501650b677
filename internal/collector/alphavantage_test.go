package collector

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"SignalBoard/internal/model"
)

const avDaily = `{
  "Meta Data": {"2. Symbol": "TSLA"},
  "Time Series (Daily)": {
    "2024-03-05": {"1. open": "180.1", "2. high": "182.0", "3. low": "179.0", "4. close": "181.5", "5. volume": "1200"},
    "2024-03-04": {"1. open": "178.0", "2. high": "181.0", "3. low": "177.5", "4. close": "180.0", "5. volume": "1100"},
    "2024-03-01": {"1. open": "175.0", "2. high": "179.0", "3. low": "174.0", "4. close": "178.2", "5. volume": "900"}
  }
}`

func newAVServer(t *testing.T, body string, check func(*http.Request)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			check(r)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestAVFetcher(url string) *AlphaVantageFetcher {
	f := NewAlphaVantageFetcher("demo", url, "")
	f.now = func() time.Time { return time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC) }
	return f
}

func TestAlphaVantage_ParsesAndSorts(t *testing.T) {
	srv := newAVServer(t, avDaily, func(r *http.Request) {
		q := r.URL.Query()
		if q.Get("function") != "TIME_SERIES_DAILY" || q.Get("symbol") != "TSLA" || q.Get("apikey") != "demo" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		if q.Get("outputsize") != "full" {
			t.Errorf("expected full output for a 1Y lookback, got %q", q.Get("outputsize"))
		}
	})
	bars, err := newTestAVFetcher(srv.URL).FetchDailyBars(context.Background(), "TSLA", model.Lookback("1Y"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bars) != 3 {
		t.Fatalf("expected 3 bars, got %d", len(bars))
	}
	if bars[0].Time.Format(model.DateLayout) != "2024-03-01" || bars[2].Close != 181.5 || bars[2].Volume != 1200 {
		t.Errorf("unexpected bars: %+v", bars)
	}
	if err := bars.Validate(); err != nil {
		t.Errorf("parsed series should validate: %v", err)
	}
}

func TestAlphaVantage_CompactForShortRange(t *testing.T) {
	srv := newAVServer(t, avDaily, func(r *http.Request) {
		if got := r.URL.Query().Get("outputsize"); got != "compact" {
			t.Errorf("expected compact, got %q", got)
		}
	})
	from := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	bars, err := newTestAVFetcher(srv.URL).FetchDailyBars(context.Background(), "TSLA", model.Between(from, to))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bars) != 2 {
		t.Errorf("expected trimmed range of 2 bars, got %d", len(bars))
	}
}

func TestAlphaVantage_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"rate limit", `{"Note": "Thank you for using Alpha Vantage! Our standard API rate limit is 25 requests per day."}`, model.ErrDataUnavailable},
		{"premium", `{"Information": "This is a premium endpoint."}`, model.ErrDataUnavailable},
		{"bad symbol", `{"Error Message": "Invalid API call."}`, model.ErrDataUnavailable},
		{"empty series", `{"Time Series (Daily)": {}}`, model.ErrDataUnavailable},
		{"missing series", `{"Meta Data": {}}`, model.ErrParseMismatch},
		{"missing close", `{"Time Series (Daily)": {"2024-03-05": {"1. open": "1", "2. high": "1", "3. low": "1", "5. volume": "1"}}}`, model.ErrParseMismatch},
		{"bad number", `{"Time Series (Daily)": {"2024-03-05": {"1. open": "x", "2. high": "1", "3. low": "1", "4. close": "1", "5. volume": "1"}}}`, model.ErrParseMismatch},
		{"not json", `<html>`, model.ErrParseMismatch},
	}
	for _, tt := range tests {
		srv := newAVServer(t, tt.body, nil)
		_, err := newTestAVFetcher(srv.URL).FetchDailyBars(context.Background(), "TSLA", model.Lookback("1Y"))
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, err)
		}
	}
}

func TestAlphaVantage_HTTPStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()
	_, err := newTestAVFetcher(srv.URL).FetchDailyBars(context.Background(), "TSLA", model.Lookback("1Y"))
	if !errors.Is(err, model.ErrDataUnavailable) {
		t.Errorf("expected ErrDataUnavailable, got %v", err)
	}
}
