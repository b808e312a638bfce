package metrics

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// BootstrapInterval is a percentile-bootstrap confidence interval for the mean.
type BootstrapInterval struct {
	Lower      float64 `json:"lower" yaml:"lower"`
	Upper      float64 `json:"upper" yaml:"upper"`
	Mean       float64 `json:"mean" yaml:"mean"`
	Level      float64 `json:"level" yaml:"level"`
	Iterations int     `json:"iterations" yaml:"iterations"`
}

// Bootstrap resamples values with replacement iterations times and takes the
// (1-level)/2 and (1+level)/2 quantiles of the resampled means. The result
// is deterministic for a fixed seed. Fewer than 2 values yield a degenerate
// interval at the mean with zero iterations.
func Bootstrap(values []float64, level float64, iterations int, seed uint64) (BootstrapInterval, error) {
	if !(level > 0 && level < 1) {
		return BootstrapInterval{}, fmt.Errorf("confidence level must be in (0, 1), got %v", level)
	}
	if iterations <= 0 {
		return BootstrapInterval{}, fmt.Errorf("iterations must be > 0, got %d", iterations)
	}

	m := Mean(values)
	n := len(values)
	if n < 2 {
		return BootstrapInterval{Lower: m, Upper: m, Mean: m, Level: level}, nil
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	means := make([]float64, iterations)
	resample := make([]float64, n)
	for i := range means {
		for j := range resample {
			resample[j] = values[rng.IntN(n)]
		}
		means[i] = stat.Mean(resample, nil)
	}
	slices.Sort(means)

	return BootstrapInterval{
		Lower:      stat.Quantile((1-level)/2, stat.Empirical, means, nil),
		Upper:      stat.Quantile((1+level)/2, stat.Empirical, means, nil),
		Mean:       m,
		Level:      level,
		Iterations: iterations,
	}, nil
}

// Excludes reports whether x lies outside the interval.
func (b BootstrapInterval) Excludes(x float64) bool {
	return x < b.Lower || x > b.Upper
}
