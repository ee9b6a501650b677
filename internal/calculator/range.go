package calculator

import (
	"errors"
	"math"

	"SignalBoard/internal/model"
)

// PriceRange summarizes the visible window of a chart.
type PriceRange struct {
	High     float64
	Low      float64
	Position float64 // latest close within [Low, High], 0.0 ~ 1.0
	Volume   int64   // total volume across the window
}

// CalculatePriceRange scans the rows and returns the high/low envelope and
// where the latest close sits inside it.
func CalculatePriceRange(rows model.EnrichedSeries) (PriceRange, error) {
	if len(rows) == 0 {
		return PriceRange{}, errors.New("no rows provided")
	}
	r := PriceRange{High: math.Inf(-1), Low: math.Inf(1)}
	for _, row := range rows {
		if row.High > r.High {
			r.High = row.High
		}
		if row.Low < r.Low {
			r.Low = row.Low
		}
		r.Volume += row.Volume
	}
	r.Position = rangePosition(rows[len(rows)-1].Close, r.High, r.Low)
	return r, nil
}

func rangePosition(current, high, low float64) float64 {
	if high == low {
		return 0.5
	}
	pos := (current - low) / (high - low)
	if pos < 0 {
		pos = 0
	}
	if pos > 1 {
		pos = 1
	}
	return pos
}
