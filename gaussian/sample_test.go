package gaussian

import (
	"math"
	"testing"

	"github.com/spboyer/gauss/internal/boxmuller"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gonum.org/v1/gonum/stat"
)

func TestRandom_Count(t *testing.T) {
	outcomes := MustNew(0, 0.3).Random(10)
	require.Len(t, outcomes, 10)
	for _, o := range outcomes {
		assert.False(t, math.IsNaN(o) || math.IsInf(o, 0))
	}
}

func TestRandom_NonPositiveCount(t *testing.T) {
	assert.Empty(t, Standard.Random(0))
	assert.Empty(t, Standard.Random(-3))
	assert.NotNil(t, Standard.Random(0))
}

func TestRandomWith_CallsSamplerPerDraw(t *testing.T) {
	ctrl := gomock.NewController(t)
	sampler := NewMockSampler(ctrl)

	g := MustNew(5, 4)
	gomock.InOrder(
		sampler.EXPECT().Sample(5.0, 2.0).Return(1.0),
		sampler.EXPECT().Sample(5.0, 2.0).Return(2.0),
		sampler.EXPECT().Sample(5.0, 2.0).Return(3.0),
	)

	assert.Equal(t, []float64{1, 2, 3}, g.RandomWith(sampler, 3))
}

func TestRandomWith_SamplerFunc(t *testing.T) {
	calls := 0
	f := SamplerFunc(func(mean, stdDev float64) float64 {
		calls++
		return mean + stdDev
	})
	got := MustNew(1, 9).RandomWith(f, 4)
	assert.Equal(t, []float64{4, 4, 4, 4}, got)
	assert.Equal(t, 4, calls)
}

func TestRandomWith_Distribution(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping large sample in short mode")
	}

	const size = 10_000_000
	outcomes := MustNew(-1, 0.65).RandomWith(boxmuller.New(20240601), size)
	mean, variance := stat.PopMeanVariance(outcomes, nil)

	assert.InDelta(t, -1.0, mean, 1e-3)
	assert.InDelta(t, 0.65, variance, 1e-3)
}
