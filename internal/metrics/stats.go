package metrics

import (
	"fmt"
	"math"
	"slices"

	"github.com/spboyer/gauss/gaussian"
	"gonum.org/v1/gonum/stat"
)

// Summary describes a generated sample.
type Summary struct {
	Count    int     `json:"count" yaml:"count"`
	Mean     float64 `json:"mean" yaml:"mean"`
	Variance float64 `json:"variance" yaml:"variance"`
	StdDev   float64 `json:"std_dev" yaml:"std_dev"`
	Min      float64 `json:"min" yaml:"min"`
	Max      float64 `json:"max" yaml:"max"`
}

// Mean computes the arithmetic mean of a float64 slice.
// Returns 0 for empty input.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}

// Variance computes the population variance of a float64 slice.
// Returns 0 for empty input.
func Variance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	_, v := stat.PopMeanVariance(values, nil)
	return v
}

// StdDev computes the population standard deviation.
func StdDev(values []float64) float64 {
	return math.Sqrt(Variance(values))
}

// Quantile returns the empirical p-quantile of values. The input is not
// modified. Returns 0 for empty input and NaN for p outside [0, 1].
func Quantile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	if !(p >= 0 && p <= 1) {
		return math.NaN()
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}

// ConfidenceInterval returns the normal-approximation confidence interval
// (low, high) for the mean at the given level, e.g. 0.95. The z-score comes
// from the standard normal quantile. Returns (mean, mean) when fewer than 2
// data points are available.
func ConfidenceInterval(values []float64, level float64) (float64, float64, error) {
	if !(level > 0 && level < 1) {
		return 0, 0, fmt.Errorf("confidence level must be in (0, 1), got %v", level)
	}
	n := len(values)
	m := Mean(values)
	if n < 2 {
		return m, m, nil
	}
	// sample standard deviation (Bessel's correction)
	sampleSD := stat.StdDev(values, nil)
	z := gaussian.Standard.PPF(0.5 + level/2)
	margin := z * sampleSD / math.Sqrt(float64(n))
	return m - margin, m + margin, nil
}

// Summarize computes count, moments and range of values.
func Summarize(values []float64) Summary {
	s := Summary{Count: len(values)}
	if len(values) == 0 {
		return s
	}
	s.Mean = Mean(values)
	s.Variance = Variance(values)
	s.StdDev = math.Sqrt(s.Variance)
	s.Min = slices.Min(values)
	s.Max = slices.Max(values)
	return s
}
