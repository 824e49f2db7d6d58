package numrange

import (
	"errors"
	"fmt"
)

// ErrValidation is the root of every error this package returns.
var ErrValidation = errors.New("validation failed")

var (
	// ErrAbsentBound is returned by strict calls given an absent operand.
	ErrAbsentBound = fmt.Errorf("%w: range boundary or value is absent", ErrValidation)
	// ErrNotIntegral is returned by strict calls mixing a non-integral float
	// with a big integer.
	ErrNotIntegral = fmt.Errorf("%w: non-integral float mixed with big integer", ErrValidation)
	// ErrEmptyInput is returned by RangeFromValues for an empty slice.
	ErrEmptyInput = fmt.Errorf("%w: empty input", ErrValidation)
)
