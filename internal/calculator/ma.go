package calculator

import (
	"github.com/guregu/null/v6"
	"github.com/markcheno/go-talib"
)

// SMA computes the trailing simple moving average for every index. The first
// period-1 entries are undefined.
func SMA(values []float64, period int) []null.Float {
	out := undefined(len(values))
	if period <= 0 || len(values) < period {
		return out
	}
	sma := talib.Sma(values, period)
	for i := period - 1; i < len(values); i++ {
		out[i] = null.FloatFrom(sma[i])
	}
	return out
}

// EWMA computes the recursive exponential mean with alpha = 2/(span+1),
// seeded with the first value. Every index is defined.
//
// prev + alpha*(v-prev) equals alpha*v + (1-alpha)*prev and keeps a constant
// input exactly constant.
func EWMA(values []float64, span int) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	alpha := 2.0 / float64(span+1)
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = out[i-1] + alpha*(values[i]-out[i-1])
	}
	return out
}

func undefined(n int) []null.Float {
	return make([]null.Float, n)
}
