package calculator

import "github.com/guregu/null/v6"

// RSI computes the simple-mean relative strength index. avg gain and loss are
// trailing means over period deltas, so index i needs i >= period.
//
// avgLoss == 0 yields 100 when there was any gain and 50 for a flat window.
func RSI(closes []float64, period int) []null.Float {
	out := undefined(len(closes))
	if period <= 0 || len(closes) <= period {
		return out
	}

	gains := make([]float64, len(closes))
	losses := make([]float64, len(closes))
	for i := 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			gains[i] = change
		} else {
			losses[i] = -change
		}
	}

	for i := period; i < len(closes); i++ {
		var sumGain, sumLoss float64
		for j := i - period + 1; j <= i; j++ {
			sumGain += gains[j]
			sumLoss += losses[j]
		}
		out[i] = null.FloatFrom(rsiFromAverages(sumGain/float64(period), sumLoss/float64(period)))
	}
	return out
}

func rsiFromAverages(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		if avgGain == 0 {
			return 50.0
		}
		return 100.0
	}
	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs)
}
