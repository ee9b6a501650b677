package strategy

import (
	"fmt"

	"SignalBoard/internal/model"
)

// Horizons accepted by the classifier. The horizon labels the prediction and
// does not change the arithmetic.
var Horizons = []int{1, 5}

// ValidateHorizon rejects anything outside Horizons.
func ValidateHorizon(horizon int) error {
	for _, h := range Horizons {
		if h == horizon {
			return nil
		}
	}
	return fmt.Errorf("horizon %d not in %v: %w", horizon, Horizons, model.ErrInvalidHorizon)
}

// Classify tallies the RSI, MACD and trend votes of a row into a signal.
func Classify(row model.EnrichedRow, horizon int) (*model.Prediction, error) {
	if err := ValidateHorizon(horizon); err != nil {
		return nil, err
	}
	if !row.RSI14.Valid || !row.MACD.Valid || !row.MACDSignal.Valid || !row.SMA20.Valid {
		return nil, fmt.Errorf("row %s: insufficient data: %w", row.Time.Format(model.DateLayout), model.ErrInsufficientHistory)
	}

	p := &model.Prediction{
		Horizon:    horizon,
		Close:      row.Close,
		RSI14:      row.RSI14.Float64,
		MACD:       row.MACD.Float64,
		MACDSignal: row.MACDSignal.Float64,
		SMA20:      row.SMA20.Float64,
	}

	if v, ok := voteRSI(p.RSI14); ok {
		p.Votes = append(p.Votes, v)
	}
	p.Votes = append(p.Votes, voteMACD(p.MACD, p.MACDSignal), voteTrend(p.Close, p.SMA20))

	for _, v := range p.Votes {
		switch v.Signal {
		case model.SignalBuy:
			p.BuyCount++
		case model.SignalSell:
			p.SellCount++
		}
	}

	switch {
	case p.BuyCount > p.SellCount:
		p.Signal = model.SignalBuy
	case p.SellCount > p.BuyCount:
		p.Signal = model.SignalSell
	default:
		p.Signal = model.SignalHold
	}
	return p, nil
}

// ClassifyLatest classifies the most recent row.
func ClassifyLatest(rows model.EnrichedSeries, horizon int) (*model.Prediction, error) {
	row, ok := rows.Last()
	if !ok {
		return nil, fmt.Errorf("no complete rows: %w", model.ErrInsufficientHistory)
	}
	return Classify(row, horizon)
}
