package geom

import (
	"fmt"
	"math"
)

// Epsilon is the relative amount by which Include and ExpandedTo push
// a box's maximum past an included point, so that the point lies
// inside the half-open box.
const Epsilon = 2 * 0x1p-52

// Box2D is a half-open, axis-aligned rectangle of floating-point
// points: it contains p if Min() <= p < Max() along both axes. A box
// that has zero width or height is empty. The zero value is the empty
// box.
//
// Unlike [IntervalD], a box has no single-point form, so adjacent boxes
// that share an edge never overlap.
type Box2D struct {
	x, y IntervalD
}

// NewBox2D returns the box spanned by the intervals x and y. The box is
// empty if either interval is empty or has zero size.
func NewBox2D(x, y IntervalD) Box2D {
	if !x.ok || !y.ok || x.min == x.max || y.min == y.max {
		return Box2D{}
	}
	return Box2D{x: x, y: y}
}

// Box2DFromCorners returns the box that has a and b as its minimum and
// maximum corners. If b is less than a along an axis, the corners are
// swapped along that axis if invert is true, and the box is empty
// otherwise.
func Box2DFromCorners(a, b Point2D, invert bool) Box2D {
	xlo, xhi, ok := orderAxis(a.X, b.X, invert)
	if !ok {
		return Box2D{}
	}
	ylo, yhi, ok := orderAxis(a.Y, b.Y, invert)
	if !ok {
		return Box2D{}
	}
	return NewBox2D(intervalD(xlo, xhi), intervalD(ylo, yhi))
}

// Box2DFromCornerSize returns the box spanning corner and
// corner+dims. See Box2DFromCorners for the meaning of invert.
func Box2DFromCornerSize(corner Point2D, dims Extent2D, invert bool) Box2D {
	return Box2DFromCorners(corner, corner.Add(dims), invert)
}

// Box2DFromBox2I returns the area covered by the pixels of b.
func Box2DFromBox2I(b Box2I) Box2D {
	return NewBox2D(IntervalDFromIntervalI(b.x), IntervalDFromIntervalI(b.y))
}

// Box2DMakeCentered returns the box of the given size centered on
// center.
func Box2DMakeCentered(center Point2D, size Extent2D) Box2D {
	corner := center.Add(size.Mul(-0.5))
	return Box2DFromCornerSize(corner, size, false)
}

func (b Box2D) X() IntervalD { return b.x }
func (b Box2D) Y() IntervalD { return b.y }

// Min returns the minimum corner, or NaNs if the box is empty.
func (b Box2D) Min() Point2D { return Point2D{X: b.x.Min(), Y: b.y.Min()} }

// Max returns the maximum corner, or NaNs if the box is empty. The
// maximum is not part of the box.
func (b Box2D) Max() Point2D { return Point2D{X: b.x.Max(), Y: b.y.Max()} }

func (b Box2D) MinX() float64 { return b.x.Min() }
func (b Box2D) MinY() float64 { return b.y.Min() }
func (b Box2D) MaxX() float64 { return b.x.Max() }
func (b Box2D) MaxY() float64 { return b.y.Max() }

func (b Box2D) Width() float64  { return b.x.Size() }
func (b Box2D) Height() float64 { return b.y.Size() }

func (b Box2D) Dimensions() Extent2D {
	return Extent2D{X: b.Width(), Y: b.Height()}
}

func (b Box2D) Area() float64 {
	return b.Width() * b.Height()
}

// Center returns the center of the box, or NaNs if it is empty.
func (b Box2D) Center() Point2D {
	return Point2D{X: b.x.Center(), Y: b.y.Center()}
}

func (b Box2D) CenterX() float64 { return b.x.Center() }
func (b Box2D) CenterY() float64 { return b.y.Center() }

func (b Box2D) IsEmpty() bool { return !b.x.ok }

// IsFinite reports whether the box has finite width and height.
func (b Box2D) IsFinite() bool {
	return b.x.IsFinite() && b.y.IsFinite()
}

// Contains reports whether p lies in the half-open box. A point with a
// NaN coordinate is never contained.
func (b Box2D) Contains(p Point2D) bool {
	if b.IsEmpty() {
		return false
	}
	return p.X >= b.x.min && p.X < b.x.max &&
		p.Y >= b.y.min && p.Y < b.y.max
}

// ContainsBox reports whether every point of other lies in b. The empty
// box is contained by every box.
func (b Box2D) ContainsBox(other Box2D) bool {
	return b.x.ContainsInterval(other.x) && b.y.ContainsInterval(other.y)
}

// Overlaps reports whether b and other share any area. Boxes that only
// share an edge do not overlap.
func (b Box2D) Overlaps(other Box2D) bool {
	if b.IsEmpty() || other.IsEmpty() {
		return false
	}
	return !(other.x.max <= b.x.min || other.y.max <= b.y.min ||
		other.x.min >= b.x.max || other.y.min >= b.y.max)
}

// Intersects is the same as Overlaps.
func (b Box2D) Intersects(other Box2D) bool {
	return b.Overlaps(other)
}

// IsDisjointFrom reports whether b and other share no area.
func (b Box2D) IsDisjointFrom(other Box2D) bool {
	return !b.Overlaps(other)
}

// Corners returns the four corners of the box, starting at the minimum
// and proceeding to (max x, min y), the maximum, and (min x, max y).
func (b Box2D) Corners() [4]Point2D {
	return [...]Point2D{
		b.Min(),
		{X: b.MaxX(), Y: b.MinY()},
		b.Max(),
		{X: b.MinX(), Y: b.MaxY()},
	}
}

// DilatedBy grows the box by buffer on every side. Negative components
// shrink it, possibly until it is empty. Both components must be
// finite.
func (b Box2D) DilatedBy(buffer Extent2D) (Box2D, error) {
	x, err := b.x.DilatedBy(buffer.X)
	if err != nil {
		return Box2D{}, err
	}
	y, err := b.y.DilatedBy(buffer.Y)
	if err != nil {
		return Box2D{}, err
	}
	return NewBox2D(x, y), nil
}

// ErodedBy shrinks the box by buffer on every side.
func (b Box2D) ErodedBy(buffer Extent2D) (Box2D, error) {
	return b.DilatedBy(buffer.Neg())
}

// ShiftedBy moves the box by offset, which must be finite.
func (b Box2D) ShiftedBy(offset Extent2D) (Box2D, error) {
	x, err := b.x.ShiftedBy(offset.X)
	if err != nil {
		return Box2D{}, err
	}
	y, err := b.y.ShiftedBy(offset.Y)
	if err != nil {
		return Box2D{}, err
	}
	return NewBox2D(x, y), nil
}

// ReflectedAboutX mirrors the box about the vertical line at x.
func (b Box2D) ReflectedAboutX(x float64) (Box2D, error) {
	rx, err := b.x.ReflectedAbout(x)
	if err != nil {
		return Box2D{}, err
	}
	return NewBox2D(rx, b.y), nil
}

// ReflectedAboutY mirrors the box about the horizontal line at y.
func (b Box2D) ReflectedAboutY(y float64) (Box2D, error) {
	ry, err := b.y.ReflectedAbout(y)
	if err != nil {
		return Box2D{}, err
	}
	return NewBox2D(b.x, ry), nil
}

// ExpandedTo returns the smallest box containing both b and p. Where p
// is at or past the maximum along an axis, the maximum moves slightly
// beyond p so that p is inside the half-open result. Both coordinates
// of p must be finite.
func (b Box2D) ExpandedTo(p Point2D) (Box2D, error) {
	x, err := expandHalfOpen(b.x, p.X)
	if err != nil {
		return Box2D{}, err
	}
	y, err := expandHalfOpen(b.y, p.Y)
	if err != nil {
		return Box2D{}, err
	}
	return NewBox2D(x, y), nil
}

func expandHalfOpen(i IntervalD, p float64) (IntervalD, error) {
	if !isFinite(p) {
		return IntervalD{}, invalidParameter("cannot expand to non-finite point %v", p)
	}
	if !i.ok {
		return IntervalD{min: p, max: tweakMax(p), ok: true}, nil
	}
	switch {
	case p < i.min:
		i.min = p
	case p >= i.max:
		i.max = tweakMax(p)
	}
	return i, nil
}

// tweakMax returns a value slightly greater than x.
func tweakMax(x float64) float64 {
	var r float64
	switch {
	case x < 0:
		r = x * (1 - Epsilon)
	case x > 0:
		r = x * (1 + Epsilon)
	default:
		r = Epsilon
	}
	if r <= x {
		r = math.Nextafter(x, math.Inf(1))
	}
	return r
}

// ExpandedToBox returns the smallest box containing both b and other.
func (b Box2D) ExpandedToBox(other Box2D) Box2D {
	return NewBox2D(b.x.ExpandedToInterval(other.x), b.y.ExpandedToInterval(other.y))
}

// ClippedTo returns the intersection of b and other.
func (b Box2D) ClippedTo(other Box2D) Box2D {
	return NewBox2D(b.x.ClippedTo(other.x), b.y.ClippedTo(other.y))
}

// Grow replaces b with b.DilatedBy(buffer). On error, b is unchanged.
func (b *Box2D) Grow(buffer Extent2D) error {
	return b.replace(b.DilatedBy(buffer))
}

// Shift replaces b with b.ShiftedBy(offset). On error, b is unchanged.
func (b *Box2D) Shift(offset Extent2D) error {
	return b.replace(b.ShiftedBy(offset))
}

// Include replaces b with b.ExpandedTo(p). On error, b is unchanged.
func (b *Box2D) Include(p Point2D) error {
	return b.replace(b.ExpandedTo(p))
}

// IncludeBox replaces b with b.ExpandedToBox(other).
func (b *Box2D) IncludeBox(other Box2D) {
	*b = b.ExpandedToBox(other)
}

// Clip replaces b with b.ClippedTo(other).
func (b *Box2D) Clip(other Box2D) {
	*b = b.ClippedTo(other)
}

func (b *Box2D) replace(r Box2D, err error) error {
	if err != nil {
		return err
	}
	*b = r
	return nil
}

// FlipLR mirrors b left to right within a parent frame that spans
// [0, xextent) horizontally. The dimensions are unchanged. Empty boxes
// are left alone. xextent must be finite.
func (b *Box2D) FlipLR(xextent float64) error {
	if b.IsEmpty() {
		return nil
	}
	x, err := flipAxisD(b.x, xextent)
	if err != nil {
		return err
	}
	*b = NewBox2D(x, b.y)
	return nil
}

// FlipTB mirrors b top to bottom within a parent frame that spans
// [0, yextent) vertically. The dimensions are unchanged. Empty boxes
// are left alone. yextent must be finite.
func (b *Box2D) FlipTB(yextent float64) error {
	if b.IsEmpty() {
		return nil
	}
	y, err := flipAxisD(b.y, yextent)
	if err != nil {
		return err
	}
	*b = NewBox2D(b.x, y)
	return nil
}

func flipAxisD(i IntervalD, extent float64) (IntervalD, error) {
	if !isFinite(extent) {
		return IntervalD{}, invalidParameter("cannot flip within non-finite extent %v", extent)
	}
	return IntervalDFromMinMax(extent-i.max, extent-i.min)
}

// Equal reports whether b and other contain the same points. All empty
// boxes are equal.
func (b Box2D) Equal(other Box2D) bool {
	return b.x.Equal(other.x) && b.y.Equal(other.y)
}

// Hash returns a hash of the box that is equal for equal boxes.
func (b Box2D) Hash() uint64 {
	if b.IsEmpty() {
		return hashEmpty
	}
	return hashCombine(hashSeed,
		hashFloat(b.x.min), hashFloat(b.y.min),
		hashFloat(b.x.max), hashFloat(b.y.max),
	)
}

func (b Box2D) String() string {
	if b.IsEmpty() {
		return "Box2D()"
	}
	return fmt.Sprintf("Box2D(min=%v, dims=%v)", b.Min(), b.Dimensions())
}
