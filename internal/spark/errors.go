package spark

import (
	"errors"
	"fmt"
)

// Domain errors for rendering operations.
var (
	// ErrInvalidInput indicates a series that cannot be rendered, such as an
	// empty series when the range has to be derived from the data.
	ErrInvalidInput = errors.New("spark: invalid input")

	// ErrNoRange indicates a range had to be derived from an empty series.
	ErrNoRange = fmt.Errorf("%w: no data to determine range", ErrInvalidInput)

	// ErrEmptySeries indicates Dotify was given no values.
	ErrEmptySeries = fmt.Errorf("%w: empty series", ErrInvalidInput)

	// ErrTooFewValues indicates the text held fewer than MinValues numbers.
	ErrTooFewValues = fmt.Errorf("%w: need at least %d values", ErrInvalidInput, MinValues)

	// ErrNonFinite indicates a NaN or infinite value reached a renderer.
	ErrNonFinite = errors.New("spark: value is not a finite number")

	// ErrUnknownMode indicates a render mode other than bars or dots.
	ErrUnknownMode = errors.New("spark: unknown render mode")
)

// ValueError wraps an error with the position of the offending value.
type ValueError struct {
	Index   int
	Value   float64
	Wrapped error
}

func (e *ValueError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%v (range bound %v)", e.Wrapped, e.Value)
	}
	return fmt.Sprintf("%v (index %d: %v)", e.Wrapped, e.Index, e.Value)
}

func (e *ValueError) Unwrap() error {
	return e.Wrapped
}
