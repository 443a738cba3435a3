// Package stats provides descriptive statistics over float samples. Moments
// come from gonum; quantiles use linear interpolation between closest ranks
// so results line up with the common dataframe default.
package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary is a read-only snapshot of a numeric sample.
type Summary struct {
	Count    int
	Mean     float64
	Std      float64
	Min      float64
	Q1       float64
	Median   float64
	Q3       float64
	Max      float64
	Skewness float64
	Kurtosis float64
}

// Describe computes the full summary of vals. The zero Summary is returned
// for an empty sample. Std is the sample standard deviation; Kurtosis is
// excess kurtosis.
func Describe(vals []float64) Summary {
	n := len(vals)
	if n == 0 {
		return Summary{}
	}
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)

	s := Summary{
		Count:  n,
		Mean:   stat.Mean(vals, nil),
		Min:    floats.Min(vals),
		Max:    floats.Max(vals),
		Q1:     QuantileSorted(sorted, 0.25),
		Median: QuantileSorted(sorted, 0.5),
		Q3:     QuantileSorted(sorted, 0.75),
	}
	if n > 1 {
		s.Std = stat.StdDev(vals, nil)
	}
	if n >= 3 && s.Std > 0 {
		if sk := stat.Skew(vals, nil); !math.IsNaN(sk) {
			s.Skewness = sk
		}
	}
	if n >= 4 && s.Std > 0 {
		if k := stat.ExKurtosis(vals, nil); !math.IsNaN(k) {
			s.Kurtosis = k
		}
	}
	return s
}

// Quantile returns the q-th quantile (0 <= q <= 1) of vals, interpolating
// linearly between the closest ranks. vals need not be sorted.
func Quantile(vals []float64, q float64) float64 {
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	return QuantileSorted(sorted, q)
}

// QuantileSorted is Quantile over an already sorted sample.
func QuantileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}

// Median returns the 0.5 quantile of vals.
func Median(vals []float64) float64 {
	return Quantile(vals, 0.5)
}

// Mean returns the arithmetic mean, 0 for an empty sample.
func Mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	return stat.Mean(vals, nil)
}

// Std returns the sample standard deviation, 0 for fewer than two values.
func Std(vals []float64) float64 {
	if len(vals) < 2 {
		return 0
	}
	return stat.StdDev(vals, nil)
}
