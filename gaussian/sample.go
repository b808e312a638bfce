package gaussian

import "github.com/spboyer/gauss/internal/boxmuller"

//go:generate go tool mockgen -source=sample.go -destination=mock_sampler_test.go -package=gaussian

// Sampler draws one value from the normal distribution with the given mean
// and standard deviation. Implementations need not be safe for concurrent
// use; callers sharing one across goroutines must serialize access.
type Sampler interface {
	Sample(mean, stdDev float64) float64
}

// SamplerFunc adapts a plain function to Sampler.
type SamplerFunc func(mean, stdDev float64) float64

func (f SamplerFunc) Sample(mean, stdDev float64) float64 {
	return f(mean, stdDev)
}

// DefaultSampler is used by Random. It draws from the global math/rand/v2
// source and is safe for concurrent use.
var DefaultSampler Sampler = SamplerFunc(boxmuller.Sample)

// Random returns n independent draws from g using DefaultSampler.
func (g Gaussian) Random(n int) []float64 {
	return g.RandomWith(DefaultSampler, n)
}

// RandomWith returns n independent draws from g, one call to s per draw.
// n <= 0 yields an empty slice.
func (g Gaussian) RandomWith(s Sampler, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = s.Sample(g.mean, g.stdDev)
	}
	return out
}
