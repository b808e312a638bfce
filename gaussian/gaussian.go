// Package gaussian provides an immutable one-dimensional normal distribution
// with closed-form algebra over (mean, variance) pairs.
//
// A Gaussian is a plain value: every operation returns a new instance and
// none mutate the receiver, so values can be shared freely across goroutines.
package gaussian

import (
	"math"
	"strconv"

	"github.com/spboyer/gauss/erf"
)

// sqrt(2*pi)
const sqrt2Pi = 2.50662827463100050241576528481104525300698674060993831662992357

// Gaussian is a normal distribution described by its mean and variance.
//
// The zero value is not a valid distribution; use New or MustNew. Two values
// are equal (==) exactly when their means and variances are equal.
type Gaussian struct {
	mean     float64
	variance float64
	stdDev   float64
}

// Standard is the unit normal distribution N(0, 1).
var Standard = MustNew(0, 1)

// New returns the distribution with the given mean and variance. It fails
// with an *InvalidParameterError unless variance > 0.
func New(mean, variance float64) (Gaussian, error) {
	if !(variance > 0) {
		return Gaussian{}, &InvalidParameterError{Name: "variance", Value: variance}
	}
	return Gaussian{
		mean:     mean,
		variance: variance,
		stdDev:   math.Sqrt(variance),
	}, nil
}

// MustNew is like New but panics on an invalid variance.
func MustNew(mean, variance float64) Gaussian {
	g, err := New(mean, variance)
	if err != nil {
		panic(err)
	}
	return g
}

// fromPrecision builds a distribution from its precision (1/variance) and
// precision-weighted mean.
func fromPrecision(precision, precisionMean float64) (Gaussian, error) {
	if !(precision > 0) {
		return Gaussian{}, &InvalidParameterError{Name: "precision", Value: precision}
	}
	return New(precisionMean/precision, 1/precision)
}

func (g Gaussian) Mean() float64     { return g.mean }
func (g Gaussian) Variance() float64 { return g.variance }
func (g Gaussian) StdDev() float64   { return g.stdDev }

// Precision returns 1/variance.
func (g Gaussian) Precision() float64 { return 1 / g.variance }

// Equal reports whether g and other have the same mean and variance.
func (g Gaussian) Equal(other Gaussian) bool {
	return g.mean == other.mean && g.variance == other.variance
}

// IsFinite reports whether mean and variance are both finite. Arithmetic
// on large operands can overflow to an infinite variance or mean.
func (g Gaussian) IsFinite() bool {
	return !math.IsInf(g.mean, 0) && !math.IsNaN(g.mean) && !math.IsInf(g.variance, 0)
}

// PDF returns the probability density at x.
func (g Gaussian) PDF(x float64) float64 {
	d := x - g.mean
	return math.Exp(-d*d/(2*g.variance)) / (g.stdDev * sqrt2Pi)
}

// CDF returns the probability that a draw is <= x.
func (g Gaussian) CDF(x float64) float64 {
	return 0.5 * erf.Erfc(-(x-g.mean)/(g.stdDev*math.Sqrt2))
}

// PPF returns the quantile for probability p, the approximate inverse of CDF.
//
// p is expected to lie in (0, 1). Outside that range the result is derived
// from erf.Ierfc's sentinels: mean ± 100·σ·√2 rather than ±Inf. Callers that
// cannot tolerate these surrogates should validate p first.
func (g Gaussian) PPF(p float64) float64 {
	return g.mean - g.stdDev*math.Sqrt2*erf.Ierfc(2*p)
}

// String renders g as N(mean, variance), the form accepted by Parse.
func (g Gaussian) String() string {
	return "N(" + formatFloat(g.mean) + ", " + formatFloat(g.variance) + ")"
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
