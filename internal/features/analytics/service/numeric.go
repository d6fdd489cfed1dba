package service

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// mean is the arithmetic mean, 0 for no values.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}

// percentile interpolates linearly between the closest ranks, p in [0, 100].
// It returns 0 for no values.
func percentile(values []float64, p float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	h := (p / 100) * float64(n-1)
	lo := int(math.Floor(h))
	hi := int(math.Ceil(h))
	if lo < 0 {
		lo = 0
	}
	if hi > n-1 {
		hi = n - 1
	}
	return sorted[lo] + (h-float64(lo))*(sorted[hi]-sorted[lo])
}
