package erf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErfc_Zero(t *testing.T) {
	assert.InDelta(t, 1.0, Erfc(0), 1e-7)
}

func TestErfc_MatchesStdlib(t *testing.T) {
	for _, x := range []float64{-6, -3, -1.5, -1, -0.5, -0.1, 0, 0.1, 0.5, 1, 1.5, 2, 3, 6} {
		assert.InDelta(t, math.Erfc(x), Erfc(x), 2.5e-7, "x=%v", x)
	}
}

func TestErfc_OddSymmetry(t *testing.T) {
	for _, x := range []float64{0.01, 0.3, 1, 2.5, 4, 10} {
		assert.Equal(t, 2-Erfc(x), Erfc(-x), "x=%v", x)
	}
}

func TestErfc_Saturates(t *testing.T) {
	assert.InDelta(t, 0.0, Erfc(30), 1e-300)
	assert.InDelta(t, 2.0, Erfc(-30), 1e-12)
	assert.False(t, math.IsNaN(Erfc(1e6)))
}

func TestIerfc_Sentinels(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"two", 2, NegSentinel},
		{"above two", 2.5, NegSentinel},
		{"zero", 0, PosSentinel},
		{"negative", -1, PosSentinel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Ierfc(tt.x))
			assert.True(t, IsSentinel(Ierfc(tt.x)))
		})
	}
}

func TestIerfc_MatchesStdlib(t *testing.T) {
	for _, x := range []float64{1e-6, 1e-3, 0.05, 0.3, 0.9, 1, 1.1, 1.7, 1.95, 1.999} {
		assert.InDelta(t, math.Erfcinv(x), Ierfc(x), 1e-6, "x=%v", x)
	}
}

func TestIerfc_InvertsErfc(t *testing.T) {
	for _, x := range []float64{0.01, 0.2, 0.75, 1, 1.25, 1.8, 1.99} {
		assert.InDelta(t, x, Erfc(Ierfc(x)), 1e-9, "x=%v", x)
	}
}

func TestIerfc_Antisymmetric(t *testing.T) {
	for _, x := range []float64{0.1, 0.5, 0.9} {
		assert.InDelta(t, -Ierfc(x), Ierfc(2-x), 1e-12, "x=%v", x)
	}
}

func TestIsSentinel(t *testing.T) {
	assert.False(t, IsSentinel(0))
	assert.False(t, IsSentinel(Ierfc(0.5)))
}
