// Package boxmuller draws normal variates with the Box–Muller transform.
package boxmuller

import (
	"math"
	"math/rand/v2"
	"sync"
)

// Sample returns one draw from N(mean, stdDev²) using the global
// math/rand/v2 source. It is safe for concurrent use.
func Sample(mean, stdDev float64) float64 {
	return transform(1-rand.Float64(), rand.Float64(), mean, stdDev)
}

// Source is a seeded sampler. Identical seeds produce identical sequences.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a Source seeded with seed.
func New(seed uint64) *Source {
	return &Source{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Sample returns one draw from N(mean, stdDev²).
func (s *Source) Sample(mean, stdDev float64) float64 {
	s.mu.Lock()
	u1 := 1 - s.rng.Float64()
	u2 := s.rng.Float64()
	s.mu.Unlock()
	return transform(u1, u2, mean, stdDev)
}

// transform maps u1 in (0, 1] and u2 in [0, 1) to a normal draw.
func transform(u1, u2, mean, stdDev float64) float64 {
	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return z*stdDev + mean
}
