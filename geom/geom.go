// Package geom provides integer and floating-point intervals and
// axis-aligned boxes for indexing pixel grids.
//
// Integer types ([IntervalI], [Box2I]) are closed: they contain both
// their minimum and their maximum. [IntervalD] is closed as well, but
// [Box2D] is half-open on each axis so that adjacent boxes tile a plane
// without sharing any points. Integer coordinates denote the centers of
// unit pixels, so the integer interval [2, 4] covers the floating-point
// interval [1.5, 4.5].
//
// The zero value of every interval and box type is its canonical empty
// value.
package geom

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Scalar is a constraint for the types that geom points and extents
// can hold.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// EdgeHandling selects how a floating-point range is converted to a
// range of integer pixels.
type EdgeHandling int

const (
	// Expand includes every pixel that the floating-point range
	// touches at all.
	Expand EdgeHandling = iota

	// Shrink includes only pixels that lie entirely inside the
	// floating-point range.
	Shrink
)

func (e EdgeHandling) String() string {
	switch e {
	case Expand:
		return "Expand"
	case Shrink:
		return "Shrink"
	default:
		return fmt.Sprintf("EdgeHandling(%d)", int(e))
	}
}

// Edges is a bitmask representing zero or more edges of a box.
type Edges uint32

const (
	EdgeNone Edges = 0
	EdgeTop  Edges = 1 << (iota - 1)
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// Span is a half-open range of indices, [Begin, End), suitable for
// slicing a buffer.
type Span struct {
	Begin, End int
}

// Len returns the number of indices in the span.
func (s Span) Len() int {
	return s.End - s.Begin
}
