package gaussian

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidParameter is the only error kind produced by this package. It is
// returned whenever an operation would construct a distribution with a
// non-positive variance.
var ErrInvalidParameter = errors.New("invalid parameter")

// InvalidParameterError carries the offending value. It matches
// ErrInvalidParameter with errors.Is.
type InvalidParameterError struct {
	Name  string
	Value float64
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("%s must be > 0 (but was: %s)", e.Name, strconv.FormatFloat(e.Value, 'g', -1, 64))
}

func (e *InvalidParameterError) Unwrap() error {
	return ErrInvalidParameter
}
