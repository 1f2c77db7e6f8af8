package geom

import (
	"fmt"
	"iter"
	"math"
)

// IntervalD is a closed range of float64 values. Its bounds may be
// infinite, and its minimum and maximum may be equal, in which case it
// contains exactly one value. The zero value is the empty interval.
//
// The bounds of an empty interval are reported as NaN. Use Equal, not
// ==, to compare intervals.
type IntervalD struct {
	min, max float64
	ok       bool
}

// IntervalDFromMinMax returns the interval [lo, hi]. The result is
// empty if hi < lo or if either is NaN. A minimum of +Inf or a maximum
// of -Inf is an error.
func IntervalDFromMinMax(lo, hi float64) (IntervalD, error) {
	if hi < lo || math.IsNaN(lo) || math.IsNaN(hi) {
		return IntervalD{}, nil
	}
	if math.IsInf(lo, 1) {
		return IntervalD{}, invalidParameter("cannot set interval minimum to +Inf")
	}
	if math.IsInf(hi, -1) {
		return IntervalD{}, invalidParameter("cannot set interval maximum to -Inf")
	}
	return IntervalD{min: lo, max: hi, ok: true}, nil
}

// IntervalDFromMinSize returns the interval [lo, lo+size]. The result
// is empty if size < 0 or either argument is NaN. Infinite intervals
// must be built with IntervalDFromMinMax.
func IntervalDFromMinSize(lo, size float64) (IntervalD, error) {
	if math.IsInf(lo, 0) || math.IsInf(size, 1) {
		return IntervalD{}, invalidParameter(
			"ambiguously infinite interval parameters (min=%v, size=%v); use IntervalDFromMinMax", lo, size)
	}
	return IntervalDFromMinMax(lo, lo+size)
}

// IntervalDFromMaxSize returns the interval [hi-size, hi]. The result
// is empty if size < 0 or either argument is NaN. Infinite intervals
// must be built with IntervalDFromMinMax.
func IntervalDFromMaxSize(hi, size float64) (IntervalD, error) {
	if math.IsInf(hi, 0) || math.IsInf(size, 1) {
		return IntervalD{}, invalidParameter(
			"ambiguously infinite interval parameters (max=%v, size=%v); use IntervalDFromMinMax", hi, size)
	}
	return IntervalDFromMinMax(hi-size, hi)
}

// IntervalDFromCenterSize returns the interval of the given size
// centered on center. Neither argument may be infinite.
func IntervalDFromCenterSize(center, size float64) (IntervalD, error) {
	if math.IsInf(center, 0) || math.IsInf(size, 0) {
		return IntervalD{}, invalidParameter(
			"infinite interval parameters (center=%v, size=%v) are not supported", center, size)
	}
	return IntervalDFromMinSize(center-0.5*size, size)
}

// IntervalDFromSpannedPoints returns the smallest interval that
// contains every value yielded by points. Every value must be finite.
func IntervalDFromSpannedPoints(points iter.Seq[float64]) (r IntervalD, err error) {
	for p := range points {
		r, err = r.ExpandedTo(p)
		if err != nil {
			return IntervalD{}, err
		}
	}
	return r, nil
}

// intervalD builds [lo, hi] from bounds that are already known not to
// start at +Inf or end at -Inf.
func intervalD(lo, hi float64) IntervalD {
	if hi < lo || math.IsNaN(lo) || math.IsNaN(hi) {
		return IntervalD{}
	}
	return IntervalD{min: lo, max: hi, ok: true}
}

// Min returns the smallest value in the interval, or NaN if it is
// empty.
func (i IntervalD) Min() float64 {
	if !i.ok {
		return math.NaN()
	}
	return i.min
}

// Max returns the largest value in the interval, or NaN if it is
// empty.
func (i IntervalD) Max() float64 {
	if !i.ok {
		return math.NaN()
	}
	return i.max
}

// Size returns max - min, or 0 if the interval is empty.
func (i IntervalD) Size() float64 {
	if !i.ok {
		return 0
	}
	return i.max - i.min
}

// Center returns the midpoint of the interval. It is NaN if the
// interval is empty or unbounded in both directions.
func (i IntervalD) Center() float64 {
	return 0.5 * (i.Min() + i.Max())
}

func (i IntervalD) IsEmpty() bool { return !i.ok }

// IsFinite reports whether the interval has finite size. Empty
// intervals are finite.
func (i IntervalD) IsFinite() bool {
	return !math.IsInf(i.Size(), 0)
}

// Contains reports whether p lies in the interval. It is an error for
// p to be NaN.
func (i IntervalD) Contains(p float64) (bool, error) {
	if math.IsNaN(p) {
		return false, invalidParameter("cannot test whether an interval contains NaN")
	}
	return i.ok && p >= i.min && p <= i.max, nil
}

// ContainsInterval reports whether every value of other lies in i. The
// empty interval is contained by every interval.
func (i IntervalD) ContainsInterval(other IntervalD) bool {
	if !other.ok {
		return true
	}
	return i.ok && other.min >= i.min && other.max <= i.max
}

// Overlaps reports whether i and other share at least one value.
func (i IntervalD) Overlaps(other IntervalD) bool {
	return !i.IsDisjointFrom(other)
}

// Intersects is the same as Overlaps.
func (i IntervalD) Intersects(other IntervalD) bool {
	return i.Overlaps(other)
}

// IsDisjointFrom reports whether i and other share no values. Empty
// intervals are disjoint from everything, including themselves.
func (i IntervalD) IsDisjointFrom(other IntervalD) bool {
	if !i.ok || !other.ok {
		return true
	}
	return i.min > other.max || i.max < other.min
}

// DilatedBy moves both bounds outwards by buffer, which must be finite.
// A negative buffer erodes the interval, possibly until it is empty.
// Infinite bounds are unaffected.
func (i IntervalD) DilatedBy(buffer float64) (IntervalD, error) {
	if math.IsNaN(buffer) || math.IsInf(buffer, 0) {
		return IntervalD{}, invalidParameter("cannot dilate or erode with non-finite buffer %v", buffer)
	}
	if !i.ok {
		return IntervalD{}, nil
	}
	return IntervalDFromMinMax(i.min-buffer, i.max+buffer)
}

// ErodedBy moves both bounds inwards by buffer, which must be finite.
func (i IntervalD) ErodedBy(buffer float64) (IntervalD, error) {
	return i.DilatedBy(-buffer)
}

// ShiftedBy moves both bounds by offset, which must be finite.
func (i IntervalD) ShiftedBy(offset float64) (IntervalD, error) {
	if math.IsNaN(offset) || math.IsInf(offset, 0) {
		return IntervalD{}, invalidParameter("cannot shift with non-finite offset %v", offset)
	}
	if !i.ok {
		return IntervalD{}, nil
	}
	return IntervalDFromMinMax(i.min+offset, i.max+offset)
}

// ReflectedAbout mirrors the interval about point, which must be
// finite.
func (i IntervalD) ReflectedAbout(point float64) (IntervalD, error) {
	if math.IsNaN(point) || math.IsInf(point, 0) {
		return IntervalD{}, invalidParameter("cannot reflect about non-finite point %v", point)
	}
	if !i.ok {
		return IntervalD{}, nil
	}
	return IntervalDFromMinMax(2*point-i.max, 2*point-i.min)
}

// ExpandedTo returns the smallest interval containing both i and
// point, which must be finite. Expanding the empty interval yields the
// single-value interval [point, point].
func (i IntervalD) ExpandedTo(point float64) (IntervalD, error) {
	if math.IsNaN(point) || math.IsInf(point, 0) {
		return IntervalD{}, invalidParameter("cannot expand to non-finite point %v", point)
	}
	if !i.ok {
		return intervalD(point, point), nil
	}
	return intervalD(min(point, i.min), max(point, i.max)), nil
}

// ExpandedToInterval returns the smallest interval containing both i
// and other.
func (i IntervalD) ExpandedToInterval(other IntervalD) IntervalD {
	if !other.ok {
		return i
	}
	if !i.ok {
		return other
	}
	return intervalD(min(i.min, other.min), max(i.max, other.max))
}

// ClippedTo returns the intersection of i and other.
func (i IntervalD) ClippedTo(other IntervalD) IntervalD {
	if !i.ok || !other.ok {
		return IntervalD{}
	}
	return intervalD(max(i.min, other.min), min(i.max, other.max))
}

// Equal reports whether i and other contain the same values. All empty
// intervals are equal.
func (i IntervalD) Equal(other IntervalD) bool {
	if !i.ok || !other.ok {
		return i.ok == other.ok
	}
	return i.min == other.min && i.max == other.max
}

// Hash returns a hash of the interval that is equal for equal
// intervals.
func (i IntervalD) Hash() uint64 {
	if !i.ok {
		return hashEmpty
	}
	return hashCombine(hashSeed, hashFloat(i.min), hashFloat(i.max))
}

func (i IntervalD) String() string {
	if !i.ok {
		return "IntervalD()"
	}
	return fmt.Sprintf("IntervalD(min=%v, max=%v)", i.min, i.max)
}
