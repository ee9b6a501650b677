package calculator

import (
	"math"

	"github.com/guregu/null/v6"
	"github.com/markcheno/go-talib"
)

// Bands holds the three Bollinger lines.
type Bands struct {
	Middle []null.Float
	Upper  []null.Float
	Lower  []null.Float
}

// SampleStdDev is the trailing sample standard deviation (n-1 denominator).
func SampleStdDev(values []float64, period int) []null.Float {
	out := undefined(len(values))
	if period <= 1 || len(values) < period {
		return out
	}
	// talib reports the population deviation.
	pop := talib.StdDev(values, period, 1.0)
	scale := math.Sqrt(float64(period) / float64(period-1))
	for i := period - 1; i < len(values); i++ {
		out[i] = null.FloatFrom(pop[i] * scale)
	}
	return out
}

// Bollinger computes SMA(period) ± width sample deviations.
func Bollinger(closes []float64, period int, width float64) Bands {
	middle := SMA(closes, period)
	std := SampleStdDev(closes, period)
	b := Bands{
		Middle: middle,
		Upper:  undefined(len(closes)),
		Lower:  undefined(len(closes)),
	}
	for i := range closes {
		if !middle[i].Valid || !std[i].Valid {
			continue
		}
		b.Upper[i] = null.FloatFrom(middle[i].Float64 + width*std[i].Float64)
		b.Lower[i] = null.FloatFrom(middle[i].Float64 - width*std[i].Float64)
	}
	return b
}
