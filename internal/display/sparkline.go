package display

import "strings"

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// Sparkline draws the last width values scaled to their own min/max.
func Sparkline(values []float64, width int) string {
	values = tail(values, width)
	if len(values) == 0 {
		return ""
	}
	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return ScaledSparkline(values, lo, hi, width)
}

// ScaledSparkline draws the last width values against a fixed [lo, hi] scale.
// Values outside the scale are clamped.
func ScaledSparkline(values []float64, lo, hi float64, width int) string {
	values = tail(values, width)
	var b strings.Builder
	top := len(sparkBlocks) - 1
	for _, v := range values {
		idx := top / 2
		if hi > lo {
			idx = int((v - lo) * float64(top) / (hi - lo))
		}
		if idx < 0 {
			idx = 0
		}
		if idx > top {
			idx = top
		}
		b.WriteRune(sparkBlocks[idx])
	}
	return b.String()
}

func tail(values []float64, n int) []float64 {
	if n > 0 && len(values) > n {
		return values[len(values)-n:]
	}
	return values
}
