package model

import "time"

// Report is everything one render cycle produces.
type Report struct {
	Symbol      string
	Provider    string
	Range       RangeSpec
	Enriched    EnrichedSeries
	Complete    EnrichedSeries
	Prediction  *Prediction
	GeneratedAt time.Time
}
