package geom

import (
	"fmt"
	"iter"
	"math"
)

// IntervalI is a closed range of int32 values. The zero value is the
// empty interval, and every empty interval is stored identically, so
// IntervalI values may be compared with ==.
type IntervalI struct {
	min  int32
	size int32
}

// IntervalIFromMinMax returns the interval [lo, hi]. If hi < lo, the
// result is empty.
func IntervalIFromMinMax(lo, hi int32) (IntervalI, error) {
	return intervalIChecked(int64(lo), int64(hi))
}

// IntervalIFromMinSize returns the interval of the given size that
// starts at lo. If size <= 0, the result is empty.
func IntervalIFromMinSize(lo, size int32) (IntervalI, error) {
	if size <= 0 {
		return IntervalI{}, nil
	}
	hi := int64(lo) + int64(size) - 1
	if err := checkOverflow(hi, "maximum"); err != nil {
		return IntervalI{}, err
	}
	return IntervalI{min: lo, size: size}, nil
}

// IntervalIFromMaxSize returns the interval of the given size that ends
// at hi. If size <= 0, the result is empty.
func IntervalIFromMaxSize(hi, size int32) (IntervalI, error) {
	if size <= 0 {
		return IntervalI{}, nil
	}
	lo := int64(hi) - int64(size) + 1
	if err := checkOverflow(lo, "minimum"); err != nil {
		return IntervalI{}, err
	}
	return IntervalI{min: int32(lo), size: size}, nil
}

// IntervalIFromCenterSize returns the interval of the given size
// centered near center. Its minimum is center - size/2 + 0.5 rounded
// down, so passing the center of an existing interval returns that
// interval. If size <= 0, the result is empty.
func IntervalIFromCenterSize(center float64, size int32) (IntervalI, error) {
	if size <= 0 {
		return IntervalI{}, nil
	}
	if math.IsNaN(center) {
		return IntervalI{}, invalidParameter("interval center is NaN")
	}

	// Integer intervals have max = min + size - 1, so the half-size
	// offset is shifted by half a pixel.
	lo := math.Floor(center - 0.5*float64(size) + 0.5)
	if err := checkOverflowFloat(lo, "minimum"); err != nil {
		return IntervalI{}, err
	}
	if err := checkOverflowFloat(lo+float64(size)-1, "maximum"); err != nil {
		return IntervalI{}, err
	}
	return IntervalI{min: int32(lo), size: size}, nil
}

// IntervalIFromSpannedPoints returns the smallest interval that
// contains every value yielded by points.
func IntervalIFromSpannedPoints(points iter.Seq[int32]) (r IntervalI, err error) {
	for p := range points {
		r, err = r.ExpandedTo(p)
		if err != nil {
			return IntervalI{}, err
		}
	}
	return r, nil
}

// intervalIChecked builds [lo, hi] from wide values, failing if any
// bound or the size does not fit in an int32.
func intervalIChecked(lo, hi int64) (IntervalI, error) {
	if hi < lo {
		return IntervalI{}, nil
	}
	if err := checkOverflow(lo, "minimum"); err != nil {
		return IntervalI{}, err
	}
	if err := checkOverflow(hi, "maximum"); err != nil {
		return IntervalI{}, err
	}
	size := 1 + hi - lo
	if err := checkOverflow(size, "size"); err != nil {
		return IntervalI{}, err
	}
	return IntervalI{min: int32(lo), size: int32(size)}, nil
}

// Min returns the smallest value in the interval. It is meaningless if
// the interval is empty.
func (i IntervalI) Min() int32 { return i.min }

// Max returns the largest value in the interval. It is meaningless if
// the interval is empty.
func (i IntervalI) Max() int32 { return i.min + i.size - 1 }

// Begin returns the first index of the interval as a half-open range.
func (i IntervalI) Begin() int { return int(i.min) }

// End returns one past the last index of the interval as a half-open
// range.
func (i IntervalI) End() int { return int(i.min) + int(i.size) }

// Size returns the number of values in the interval.
func (i IntervalI) Size() int32 { return i.size }

func (i IntervalI) IsEmpty() bool { return i.size == 0 }

// Slice returns the interval as a half-open index range.
func (i IntervalI) Slice() Span {
	return Span{Begin: i.Begin(), End: i.End()}
}

// Contains reports whether p lies in the interval.
func (i IntervalI) Contains(p int32) bool {
	return !i.IsEmpty() && p >= i.min && p <= i.Max()
}

// ContainsInterval reports whether every value of other lies in i. The
// empty interval is contained by every interval.
func (i IntervalI) ContainsInterval(other IntervalI) bool {
	if other.IsEmpty() {
		return true
	}
	return !i.IsEmpty() && other.min >= i.min && other.Max() <= i.Max()
}

// Overlaps reports whether i and other share at least one value.
func (i IntervalI) Overlaps(other IntervalI) bool {
	return !i.IsDisjointFrom(other)
}

// Intersects is the same as Overlaps.
func (i IntervalI) Intersects(other IntervalI) bool {
	return i.Overlaps(other)
}

// IsDisjointFrom reports whether i and other share no values. Empty
// intervals are disjoint from everything, including themselves.
func (i IntervalI) IsDisjointFrom(other IntervalI) bool {
	if i.IsEmpty() || other.IsEmpty() {
		return true
	}
	return i.min > other.Max() || i.Max() < other.min
}

// DilatedBy moves both bounds outwards by buffer. A negative buffer
// erodes the interval, possibly until it is empty. The empty interval
// stays empty.
func (i IntervalI) DilatedBy(buffer int32) (IntervalI, error) {
	return i.dilatedBy(int64(buffer))
}

// ErodedBy moves both bounds inwards by buffer.
func (i IntervalI) ErodedBy(buffer int32) (IntervalI, error) {
	return i.dilatedBy(-int64(buffer))
}

func (i IntervalI) dilatedBy(buffer int64) (IntervalI, error) {
	if i.IsEmpty() {
		return IntervalI{}, nil
	}
	return intervalIChecked(int64(i.min)-buffer, int64(i.Max())+buffer)
}

// ShiftedBy moves both bounds by offset.
func (i IntervalI) ShiftedBy(offset int32) (IntervalI, error) {
	if i.IsEmpty() {
		return IntervalI{}, nil
	}
	lo := int64(i.min) + int64(offset)
	hi := int64(i.Max()) + int64(offset)
	if err := checkOverflow(lo, "minimum"); err != nil {
		return IntervalI{}, err
	}
	if err := checkOverflow(hi, "maximum"); err != nil {
		return IntervalI{}, err
	}
	return IntervalI{min: int32(lo), size: i.size}, nil
}

// ReflectedAbout mirrors the interval about point.
func (i IntervalI) ReflectedAbout(point int32) (IntervalI, error) {
	if i.IsEmpty() {
		return IntervalI{}, nil
	}
	hi := 2*int64(point) - int64(i.min)
	lo := 2*int64(point) - int64(i.Max())
	return intervalIChecked(lo, hi)
}

// ExpandedTo returns the smallest interval containing both i and point.
// Expanding the empty interval yields the unit interval at point.
func (i IntervalI) ExpandedTo(point int32) (IntervalI, error) {
	if i.IsEmpty() {
		return IntervalI{min: point, size: 1}, nil
	}
	return intervalIChecked(
		min(int64(point), int64(i.min)),
		max(int64(point), int64(i.Max())),
	)
}

// ExpandedToInterval returns the smallest interval containing both i
// and other.
func (i IntervalI) ExpandedToInterval(other IntervalI) (IntervalI, error) {
	if other.IsEmpty() {
		return i, nil
	}
	if i.IsEmpty() {
		return other, nil
	}
	return intervalIChecked(
		min(int64(other.min), int64(i.min)),
		max(int64(other.Max()), int64(i.Max())),
	)
}

// ClippedTo returns the intersection of i and other.
func (i IntervalI) ClippedTo(other IntervalI) IntervalI {
	if i.IsEmpty() || other.IsEmpty() {
		return IntervalI{}
	}
	// Both bounds lie inside valid intervals, so this cannot overflow.
	r, _ := intervalIChecked(
		int64(max(i.min, other.min)),
		int64(min(i.Max(), other.Max())),
	)
	return r
}

// Equal reports whether i and other contain the same values.
func (i IntervalI) Equal(other IntervalI) bool {
	return i == other
}

// Hash returns a hash of the interval that is equal for equal
// intervals.
func (i IntervalI) Hash() uint64 {
	return hashCombine(hashSeed, hashInt(i.min), hashInt(i.size))
}

func (i IntervalI) String() string {
	if i.IsEmpty() {
		return "IntervalI()"
	}
	return fmt.Sprintf("IntervalI(min=%d, max=%d)", i.min, i.Max())
}
