package model

import "github.com/guregu/null/v6"

// EnrichedRow is a bar plus its derived indicator columns. An invalid
// null.Float marks a field that lacks enough trailing history.
type EnrichedRow struct {
	OHLCV

	SMA20      null.Float `json:"sma20"`
	SMA50      null.Float `json:"sma50"`
	RSI14      null.Float `json:"rsi14"`
	EMA12      null.Float `json:"ema12"`
	EMA26      null.Float `json:"ema26"`
	MACD       null.Float `json:"macd"`
	MACDSignal null.Float `json:"macd_signal"`
	MACDHist   null.Float `json:"macd_hist"`
	BBMiddle   null.Float `json:"bb_middle"`
	BBUpper    null.Float `json:"bb_upper"`
	BBLower    null.Float `json:"bb_lower"`
}

// Complete reports whether every derived field is defined.
func (r EnrichedRow) Complete() bool {
	for _, f := range r.fields() {
		if !f.Valid {
			return false
		}
	}
	return true
}

func (r EnrichedRow) fields() []null.Float {
	return []null.Float{
		r.SMA20, r.SMA50, r.RSI14, r.EMA12, r.EMA26,
		r.MACD, r.MACDSignal, r.MACDHist,
		r.BBMiddle, r.BBUpper, r.BBLower,
	}
}

// EnrichedSeries has the same length and timestamps as the series it came from.
type EnrichedSeries []EnrichedRow

// Last returns the most recent row.
func (s EnrichedSeries) Last() (EnrichedRow, bool) {
	if len(s) == 0 {
		return EnrichedRow{}, false
	}
	return s[len(s)-1], true
}
