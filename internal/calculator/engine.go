package calculator

import (
	"fmt"

	"github.com/guregu/null/v6"

	"SignalBoard/internal/model"
)

// Indicator windows.
const (
	ShortMA      = 20
	LongMA       = 50
	RSIPeriod    = 14
	FastEMA      = 12
	SlowEMA      = 26
	SignalEMA    = 9
	BandPeriod   = 20
	BandWidth    = 2.0
	MinHistory   = LongMA
	firstFullRow = MinHistory - 1
)

// Enrich derives every indicator column for the series. The input is not modified.
func Enrich(series model.Series) model.EnrichedSeries {
	closes := series.Closes()

	sma20 := SMA(closes, ShortMA)
	sma50 := SMA(closes, LongMA)
	rsi := RSI(closes, RSIPeriod)
	ema12 := EWMA(closes, FastEMA)
	ema26 := EWMA(closes, SlowEMA)

	macd := make([]float64, len(closes))
	for i := range closes {
		macd[i] = ema12[i] - ema26[i]
	}
	signal := EWMA(macd, SignalEMA)
	bands := Bollinger(closes, BandPeriod, BandWidth)

	out := make(model.EnrichedSeries, len(series))
	for i, bar := range series {
		out[i] = model.EnrichedRow{
			OHLCV:      bar,
			SMA20:      sma20[i],
			SMA50:      sma50[i],
			RSI14:      rsi[i],
			EMA12:      null.FloatFrom(ema12[i]),
			EMA26:      null.FloatFrom(ema26[i]),
			MACD:       null.FloatFrom(macd[i]),
			MACDSignal: null.FloatFrom(signal[i]),
			MACDHist:   null.FloatFrom(macd[i] - signal[i]),
			BBMiddle:   bands.Middle[i],
			BBUpper:    bands.Upper[i],
			BBLower:    bands.Lower[i],
		}
	}
	return out
}

// CompleteRows drops every row that has an undefined derived field. With the
// current windows this keeps rows from index MinHistory-1 onward.
func CompleteRows(enriched model.EnrichedSeries) model.EnrichedSeries {
	out := make(model.EnrichedSeries, 0, max(len(enriched)-firstFullRow, 0))
	for _, row := range enriched {
		if row.Complete() {
			out = append(out, row)
		}
	}
	return out
}

// RequireHistory rejects series shorter than the longest indicator window.
func RequireHistory(series model.Series) error {
	if len(series) < MinHistory {
		return fmt.Errorf("%d bars, need %d: %w", len(series), MinHistory, model.ErrInsufficientHistory)
	}
	return nil
}
