package gaussian

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var literalPattern = regexp.MustCompile(`^(?i:n|normal)\s*\(([^()]*)\)$`)

// Parse reads a distribution literal of the form N(mean, variance) or
// Normal(mean, variance), as produced by Gaussian.String. An invalid
// variance yields an *InvalidParameterError.
func Parse(s string) (Gaussian, error) {
	m := literalPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Gaussian{}, fmt.Errorf("invalid distribution literal %q: expected N(mean, variance)", s)
	}
	parts := strings.Split(m[1], ",")
	if len(parts) != 2 {
		return Gaussian{}, fmt.Errorf("invalid distribution literal %q: expected 2 parameters, got %d", s, len(parts))
	}

	mean, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Gaussian{}, fmt.Errorf("invalid mean in %q: %w", s, err)
	}
	variance, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Gaussian{}, fmt.Errorf("invalid variance in %q: %w", s, err)
	}
	return New(mean, variance)
}

// ParseOperand reads either a bare number, returned as a Scalar, or a
// distribution literal.
func ParseOperand(s string) (Operand, error) {
	if c, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return Scalar(c), nil
	}
	g, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return g, nil
}
