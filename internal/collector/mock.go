package collector

import (
	"context"
	"math"
	"time"

	"SignalBoard/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price float64
	Days  int          // generated bar count when Bars is nil
	Bars  model.Series // returned as-is when set
	Err   error
	Calls int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(_ context.Context, _ string, _ model.RangeSpec) (model.Series, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Bars != nil {
		return m.Bars, nil
	}
	days := m.Days
	if days == 0 {
		days = 252
	}
	price := m.Price
	if price == 0 {
		price = 100
	}
	return generateMockBars(price, days, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)), nil
}

// generateMockBars draws a slow drift with a 40-bar cycle so every indicator moves.
func generateMockBars(basePrice float64, count int, start time.Time) model.Series {
	bars := make(model.Series, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001 + 0.05*math.Sin(float64(i)*2*math.Pi/40))
		bars[i] = model.OHLCV{
			Time:   start.AddDate(0, 0, i),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
