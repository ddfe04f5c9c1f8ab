package logic

import "math"

// mean returns the arithmetic mean, 0 for an empty slice.
func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

// stdev returns the sample standard deviation, 0 when the population has one
// or zero data points. A streaming (Welford) formulation would be a drop-in
// replacement at larger scales; batch sizes here do not warrant it.
func stdev(vals []float64) float64 {
	if len(vals) <= 1 {
		return 0
	}
	m := mean(vals)
	sum := 0.0
	for _, v := range vals {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(vals)-1))
}

// zval returns (v-mean)/stdev, contributing 0 when the category has no
// spread.
func zval(v, m, sd float64) float64 {
	if sd == 0 {
		return 0
	}
	return (v - m) / sd
}

// round2 rounds to two decimals; season-long z-scores are published rounded.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
