package recorder

import "SignalBoard/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordPrediction(_ *model.Report) error { return nil }
func (n *NoopRecorder) RecordFailure(_ *FailureEvent) error     { return nil }
func (n *NoopRecorder) RecentPredictions(_ string, _ int) ([]PredictionRecord, error) {
	return nil, nil
}
func (n *NoopRecorder) Close() error { return nil }
