// Package erf implements the complementary error function and its inverse
// with the rational approximations from Numerical Recipes.
//
// Both functions are pure and safe for concurrent use. Their absolute error is
// on the order of 1e-7, which is plenty for normal CDF and quantile work but
// not a replacement for math.Erfc where full float64 precision is needed.
package erf

import "math"

// Sentinels returned by Ierfc outside its open domain (0, 2). They stand in
// for -Inf and +Inf so downstream quantiles stay finite.
const (
	NegSentinel = -100.0
	PosSentinel = 100.0
)

// 2/sqrt(pi)
const twoOverSqrtPi = 1.12837916709551257

// Ierfc performs exactly this many Newton-style corrections of the initial
// rational guess. The count is fixed so results stay bit-comparable across
// implementations.
const newtonSteps = 2

// Erfc returns the complementary error function of x, 1 - erf(x).
// Numerical Recipes in C, 2nd ed., p. 221.
func Erfc(x float64) float64 {
	z := math.Abs(x)
	t := 1 / (1 + z/2)
	r := t * math.Exp(-z*z-1.26551223+
		t*(1.00002368+
			t*(0.37409196+
				t*(0.09678418+
					t*(-0.18628806+
						t*(0.27886807+
							t*(-1.13520398+
								t*(1.48851587+
									t*(-0.82215223+
										t*0.17087277)))))))))
	if x >= 0 {
		return r
	}
	return 2 - r
}

// Ierfc returns the inverse of Erfc. Numerical Recipes, 3rd ed., p. 265.
//
// For x >= 2 it returns NegSentinel and for x <= 0 it returns PosSentinel.
func Ierfc(x float64) float64 {
	if x >= 2 {
		return NegSentinel
	}
	if x <= 0 {
		return PosSentinel
	}

	xx := x
	if x >= 1 {
		xx = 2 - x
	}
	t := math.Sqrt(-2 * math.Log(xx/2))

	r := -0.70711 * ((2.30753+t*0.27061)/(1+t*(0.99229+t*0.04481)) - t)
	for range newtonSteps {
		e := Erfc(r) - xx
		r += e / (twoOverSqrtPi*math.Exp(-(r*r)) - r*e)
	}

	if x < 1 {
		return r
	}
	return -r
}

// IsSentinel reports whether v is one of the out-of-domain values returned
// by Ierfc.
func IsSentinel(v float64) bool {
	return v == NegSentinel || v == PosSentinel
}
