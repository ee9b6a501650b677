package recorder

import (
	"time"

	"SignalBoard/internal/model"
)

// PredictionRecord is one stored classification.
type PredictionRecord struct {
	ID         int64
	Timestamp  time.Time
	Symbol     string
	Provider   string
	Range      string
	Horizon    int
	BarDate    time.Time
	Close      float64
	RSI14      float64
	MACD       float64
	MACDSignal float64
	SMA20      float64
	BuyCount   int
	SellCount  int
	Signal     model.Signal
	Rows       int // complete rows in the report
}

// FailureEvent records a render cycle that stopped on an error.
type FailureEvent struct {
	Symbol   string
	Provider string
	Range    string
	Kind     string // "DATA_UNAVAILABLE", "INSUFFICIENT_HISTORY", "PARSE_MISMATCH", "OTHER"
	Message  string
}

// Recorder persists historical data for analysis.
type Recorder interface {
	RecordPrediction(report *model.Report) error
	RecordFailure(evt *FailureEvent) error
	RecentPredictions(symbol string, limit int) ([]PredictionRecord, error)
	Close() error
}

// NewPredictionRecord flattens a report into a record.
func NewPredictionRecord(report *model.Report) PredictionRecord {
	p := report.Prediction
	rec := PredictionRecord{
		Timestamp:  report.GeneratedAt,
		Symbol:     report.Symbol,
		Provider:   report.Provider,
		Range:      report.Range.Key(),
		Horizon:    p.Horizon,
		Close:      p.Close,
		RSI14:      p.RSI14,
		MACD:       p.MACD,
		MACDSignal: p.MACDSignal,
		SMA20:      p.SMA20,
		BuyCount:   p.BuyCount,
		SellCount:  p.SellCount,
		Signal:     p.Signal,
		Rows:       len(report.Complete),
	}
	if last, ok := report.Complete.Last(); ok {
		rec.BarDate = last.Time
	}
	return rec
}
