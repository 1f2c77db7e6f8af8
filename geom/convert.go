package geom

import (
	"fmt"
	"math"
)

// IntervalDFromIntervalI returns the floating-point interval covered by
// the pixels of i. Each integer is the center of a unit-width pixel,
// so [min, max] becomes [min-0.5, max+0.5].
func IntervalDFromIntervalI(i IntervalI) IntervalD {
	if i.IsEmpty() {
		return IntervalD{}
	}
	return IntervalD{
		min: float64(i.Min()) - 0.5,
		max: float64(i.Max()) + 0.5,
		ok:  true,
	}
}

// IntervalIFromIntervalD returns the pixels selected from d by edge.
// Expand selects every pixel that d touches, and Shrink selects only
// the pixels that d covers entirely. It is an error for a non-empty d
// to have an infinite bound.
func IntervalIFromIntervalD(d IntervalD, edge EdgeHandling) (IntervalI, error) {
	if d.IsEmpty() {
		return IntervalI{}, nil
	}
	if math.IsInf(d.min, 0) || math.IsInf(d.max, 0) {
		return IntervalI{}, invalidParameter("cannot convert non-finite %v to IntervalI", d)
	}

	var lo, hi float64
	switch edge {
	case Expand:
		lo = math.Ceil(d.min - 0.5)
		hi = math.Floor(d.max + 0.5)
	case Shrink:
		lo = math.Ceil(d.min + 0.5)
		hi = math.Floor(d.max - 0.5)
	default:
		return IntervalI{}, fmt.Errorf("%w: invalid edge handling %v", ErrLogic, edge)
	}

	if hi < lo {
		return IntervalI{}, nil
	}
	if err := checkOverflowFloat(lo, "minimum"); err != nil {
		return IntervalI{}, err
	}
	if err := checkOverflowFloat(hi, "maximum"); err != nil {
		return IntervalI{}, err
	}
	return intervalIChecked(int64(lo), int64(hi))
}
