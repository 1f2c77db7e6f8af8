package geom

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrOverflow indicates that a bound, size, or other derived
	// quantity cannot be represented as an int32.
	ErrOverflow = errors.New("integer overflow")

	// ErrInvalidParameter indicates that a floating-point argument was
	// NaN or infinite where a finite value was required.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrLogic indicates a programming error, such as an unknown
	// EdgeHandling value.
	ErrLogic = errors.New("logic error")
)

func overflowError(x any, where string) error {
	return fmt.Errorf("%w: %v in interval %s", ErrOverflow, x, where)
}

func invalidParameter(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidParameter}, args...)...)
}

func checkOverflow(x int64, where string) error {
	if x < math.MinInt32 || x > math.MaxInt32 {
		return overflowError(x, where)
	}
	return nil
}

func checkOverflowFloat(x float64, where string) error {
	if !(x >= math.MinInt32 && x <= math.MaxInt32) {
		return overflowError(x, where)
	}
	return nil
}
