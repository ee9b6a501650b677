package recorder

import (
	"path/filepath"
	"testing"
	"time"

	"SignalBoard/internal/model"
)

func testReport(symbol string, at time.Time, signal model.Signal) *model.Report {
	bar := model.EnrichedRow{OHLCV: model.OHLCV{Time: time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), Close: 181.5}}
	return &model.Report{
		Symbol:   symbol,
		Provider: "mock",
		Range:    model.Lookback("1Y"),
		Complete: model.EnrichedSeries{bar},
		Prediction: &model.Prediction{
			Signal: signal, Horizon: 5, BuyCount: 2, SellCount: 1,
			Close: 181.5, RSI14: 28.2, MACD: 1.1, MACDSignal: 0.9, SMA20: 175,
		},
		GeneratedAt: at,
	}
}

func TestSQLiteRecorder_RoundTrip(t *testing.T) {
	rec, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open recorder: %v", err)
	}
	defer rec.Close()

	base := time.Date(2024, 5, 10, 22, 30, 0, 0, time.UTC)
	for i, sig := range []model.Signal{model.SignalSell, model.SignalHold, model.SignalBuy} {
		if err := rec.RecordPrediction(testReport("TSLA", base.Add(time.Duration(i)*time.Hour), sig)); err != nil {
			t.Fatalf("record prediction %d: %v", i, err)
		}
	}
	if err := rec.RecordPrediction(testReport("AAPL", base, model.SignalSell)); err != nil {
		t.Fatalf("record prediction: %v", err)
	}

	got, err := rec.RecentPredictions("TSLA", 2)
	if err != nil {
		t.Fatalf("recent predictions: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].Signal != model.SignalBuy || got[1].Signal != model.SignalHold {
		t.Errorf("expected newest first, got %s then %s", got[0].Signal, got[1].Signal)
	}
	if got[0].Horizon != 5 || got[0].Range != "1Y" || got[0].Rows != 1 {
		t.Errorf("unexpected record: %+v", got[0])
	}
	if got[0].BarDate.Format(model.DateLayout) != "2024-05-10" {
		t.Errorf("unexpected bar date %s", got[0].BarDate)
	}
}

func TestSQLiteRecorder_RecordFailure(t *testing.T) {
	rec, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open recorder: %v", err)
	}
	defer rec.Close()

	if err := rec.RecordFailure(&FailureEvent{Symbol: "TSLA", Provider: "alphavantage", Range: "1Y", Kind: "DATA_UNAVAILABLE", Message: "rate limit"}); err != nil {
		t.Errorf("record failure: %v", err)
	}
	if err := rec.RecordPrediction(&model.Report{}); err == nil {
		t.Error("expected error for report without prediction")
	}
}

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NewNoopRecorder()
	if err := r.RecordPrediction(nil); err != nil {
		t.Errorf("noop should not fail: %v", err)
	}
	if got, err := r.RecentPredictions("TSLA", 5); err != nil || len(got) != 0 {
		t.Errorf("noop should return nothing, got %v %v", got, err)
	}
}
