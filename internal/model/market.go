package model

import (
	"fmt"
	"time"
)

// OHLCV represents a single daily bar.
type OHLCV struct {
	Time   time.Time `json:"time"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// Series is a run of daily bars sorted ascending by time.
type Series []OHLCV

// Closes extracts the close column.
func (s Series) Closes() []float64 {
	closes := make([]float64, len(s))
	for i, b := range s {
		closes[i] = b.Close
	}
	return closes
}

// Validate checks the loader contract: non-empty, strictly ascending, no
// duplicate dates, positive prices inside the high/low envelope.
func (s Series) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("empty series: %w", ErrDataUnavailable)
	}
	for i, b := range s {
		if b.Open <= 0 || b.High <= 0 || b.Low <= 0 || b.Close <= 0 {
			return fmt.Errorf("bar %s: non-positive price: %w", b.Time.Format(DateLayout), ErrParseMismatch)
		}
		if b.Low > b.High || b.Open < b.Low || b.Open > b.High || b.Close < b.Low || b.Close > b.High {
			return fmt.Errorf("bar %s: price outside high/low: %w", b.Time.Format(DateLayout), ErrParseMismatch)
		}
		if b.Volume < 0 {
			return fmt.Errorf("bar %s: negative volume: %w", b.Time.Format(DateLayout), ErrParseMismatch)
		}
		if i > 0 && !s[i-1].Time.Before(b.Time) {
			return fmt.Errorf("bar %s: not after %s: %w", b.Time.Format(DateLayout), s[i-1].Time.Format(DateLayout), ErrParseMismatch)
		}
	}
	return nil
}

// DateLayout is the calendar date format used by providers and reports.
const DateLayout = "2006-01-02"
