package gaussian

import "fmt"

// Operand is the right-hand side of Mul and Div: either a Scalar or a
// Gaussian. The interface is sealed.
type Operand interface {
	isOperand()
}

// Scalar is a constant operand. Multiplying or dividing by a Scalar scales
// the distribution.
type Scalar float64

func (Scalar) isOperand()   {}
func (Gaussian) isOperand() {}

// Mul scales g by a Scalar, or returns the Product with a Gaussian.
func (g Gaussian) Mul(o Operand) (Gaussian, error) {
	switch o := o.(type) {
	case Scalar:
		return g.Scale(float64(o))
	case Gaussian:
		return g.Product(o)
	default:
		return Gaussian{}, fmt.Errorf("unsupported operand %T", o)
	}
}

// Div scales g by 1/c for a Scalar c, or returns the Quotient with a
// Gaussian. Dividing by Scalar(0) fails with ErrInvalidParameter.
func (g Gaussian) Div(o Operand) (Gaussian, error) {
	switch o := o.(type) {
	case Scalar:
		if o == 0 {
			return Gaussian{}, &InvalidParameterError{Name: "divisor", Value: 0}
		}
		return g.Scale(1 / float64(o))
	case Gaussian:
		return g.Quotient(o)
	default:
		return Gaussian{}, fmt.Errorf("unsupported operand %T", o)
	}
}

// Product returns the renormalized product of the two densities. Precisions
// add, so the result is always valid.
func (g Gaussian) Product(other Gaussian) (Gaussian, error) {
	p1 := 1 / g.variance
	p2 := 1 / other.variance
	return fromPrecision(p1+p2, p1*g.mean+p2*other.mean)
}

// Quotient returns the renormalized ratio of the two densities by
// subtracting precisions.
//
// It fails with ErrInvalidParameter when other is at least as precise as g
// (other.Variance() <= g.Variance()), since the combined precision is then
// not positive.
func (g Gaussian) Quotient(other Gaussian) (Gaussian, error) {
	p1 := 1 / g.variance
	p2 := 1 / other.variance
	return fromPrecision(p1-p2, p1*g.mean-p2*other.mean)
}

// Add returns the distribution of the sum of independent draws from g and
// other.
func (g Gaussian) Add(other Gaussian) (Gaussian, error) {
	return New(g.mean+other.mean, g.variance+other.variance)
}

// Sub returns the distribution of the difference of independent draws from
// g and other. Variances still add.
func (g Gaussian) Sub(other Gaussian) (Gaussian, error) {
	return New(g.mean-other.mean, g.variance+other.variance)
}

// Scale returns the distribution of c·X for X drawn from g. Scale(0) fails
// with ErrInvalidParameter.
func (g Gaussian) Scale(c float64) (Gaussian, error) {
	return New(g.mean*c, g.variance*c*c)
}
