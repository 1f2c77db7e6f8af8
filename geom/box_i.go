package geom

import (
	"fmt"
	"image"
	"math"
)

// Box2I is a closed, axis-aligned rectangle of integer points. It is
// the pair of its x and y intervals, and it is empty if either of them
// is. The zero value is the empty box, and every empty box is stored
// identically, so Box2I values may be compared with ==.
type Box2I struct {
	x, y IntervalI
}

// NewBox2I returns the box spanned by the intervals x and y.
func NewBox2I(x, y IntervalI) Box2I {
	if x.IsEmpty() || y.IsEmpty() {
		return Box2I{}
	}
	return Box2I{x: x, y: y}
}

// Box2IFromCorners returns the box that has a and b as its minimum and
// maximum corners. If b is less than a along an axis, the corners are
// swapped along that axis if invert is true, and the box is empty
// otherwise.
func Box2IFromCorners(a, b Point2I, invert bool) (Box2I, error) {
	xlo, xhi, ok := orderAxis(a.X, b.X, invert)
	if !ok {
		return Box2I{}, nil
	}
	ylo, yhi, ok := orderAxis(a.Y, b.Y, invert)
	if !ok {
		return Box2I{}, nil
	}

	x, err := IntervalIFromMinMax(xlo, xhi)
	if err != nil {
		return Box2I{}, err
	}
	y, err := IntervalIFromMinMax(ylo, yhi)
	if err != nil {
		return Box2I{}, err
	}
	return NewBox2I(x, y), nil
}

func orderAxis[T Scalar](a, b T, invert bool) (lo, hi T, ok bool) {
	if b < a {
		if !invert {
			return a, b, false
		}
		a, b = b, a
	}
	return a, b, true
}

// Box2IFromCornerSize returns the box with the given corner and
// dimensions. A zero dimension always yields the empty box. If a
// dimension is negative, the box extends backwards from corner along
// that axis if invert is true, and is empty otherwise.
func Box2IFromCornerSize(corner Point2I, dims Extent2I, invert bool) (Box2I, error) {
	if dims.X == 0 || dims.Y == 0 {
		return Box2I{}, nil
	}
	if !invert && (dims.X < 0 || dims.Y < 0) {
		return Box2I{}, nil
	}

	x, err := cornerSizeAxis(corner.X, dims.X)
	if err != nil {
		return Box2I{}, err
	}
	y, err := cornerSizeAxis(corner.Y, dims.Y)
	if err != nil {
		return Box2I{}, err
	}
	return NewBox2I(x, y), nil
}

func cornerSizeAxis(corner, dim int32) (IntervalI, error) {
	if dim < 0 {
		return intervalIChecked(int64(corner)+int64(dim)+1, int64(corner))
	}
	return intervalIChecked(int64(corner), int64(corner)+int64(dim)-1)
}

// Box2IFromBox2D returns the pixels selected from b by edge. See
// IntervalIFromIntervalD.
func Box2IFromBox2D(b Box2D, edge EdgeHandling) (Box2I, error) {
	x, err := IntervalIFromIntervalD(b.X(), edge)
	if err != nil {
		return Box2I{}, err
	}
	y, err := IntervalIFromIntervalD(b.Y(), edge)
	if err != nil {
		return Box2I{}, err
	}
	return NewBox2I(x, y), nil
}

// Box2IMakeCentered returns the box of the given size whose center is
// within half a pixel of center along each axis.
func Box2IMakeCentered(center Point2D, size Extent2I) (Box2I, error) {
	if !isFinite(center.X) || !isFinite(center.Y) {
		return Box2I{}, invalidParameter("cannot make Box2I with non-finite center %v", center)
	}
	if size.X <= 0 || size.Y <= 0 {
		return Box2I{}, nil
	}
	x, err := centeredAxis(center.X, size.X)
	if err != nil {
		return Box2I{}, err
	}
	y, err := centeredAxis(center.Y, size.Y)
	if err != nil {
		return Box2I{}, err
	}
	return NewBox2I(x, y), nil
}

// centeredAxis rounds the ideal minimum to the nearest pixel, unlike
// IntervalIFromCenterSize, which rounds it down.
func centeredAxis(center float64, size int32) (IntervalI, error) {
	lo := math.Floor(center - 0.5*float64(size) + 0.5 + 0.5)
	if err := checkOverflowFloat(lo, "minimum"); err != nil {
		return IntervalI{}, err
	}
	return IntervalIFromMinSize(int32(lo), size)
}

// Box2IFromRectangle returns the pixels of the half-open rectangle r.
func Box2IFromRectangle(r image.Rectangle) (Box2I, error) {
	if r.Empty() {
		return Box2I{}, nil
	}
	x, err := intervalIChecked(int64(r.Min.X), int64(r.Max.X)-1)
	if err != nil {
		return Box2I{}, err
	}
	y, err := intervalIChecked(int64(r.Min.Y), int64(r.Max.Y)-1)
	if err != nil {
		return Box2I{}, err
	}
	return NewBox2I(x, y), nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func (b Box2I) X() IntervalI { return b.x }
func (b Box2I) Y() IntervalI { return b.y }

func (b Box2I) Min() Point2I { return Point2I{X: b.x.Min(), Y: b.y.Min()} }
func (b Box2I) Max() Point2I { return Point2I{X: b.x.Max(), Y: b.y.Max()} }

func (b Box2I) MinX() int32 { return b.x.Min() }
func (b Box2I) MinY() int32 { return b.y.Min() }
func (b Box2I) MaxX() int32 { return b.x.Max() }
func (b Box2I) MaxY() int32 { return b.y.Max() }

// BeginX returns the first column of the box as a half-open range.
func (b Box2I) BeginX() int { return b.x.Begin() }

// BeginY returns the first row of the box as a half-open range.
func (b Box2I) BeginY() int { return b.y.Begin() }

// EndX returns one past the last column of the box.
func (b Box2I) EndX() int { return b.x.End() }

// EndY returns one past the last row of the box.
func (b Box2I) EndY() int { return b.y.End() }

func (b Box2I) Width() int32  { return b.x.Size() }
func (b Box2I) Height() int32 { return b.y.Size() }

// Dimensions returns the width and height of the box.
func (b Box2I) Dimensions() Extent2I {
	return Extent2I{X: b.Width(), Y: b.Height()}
}

// Area returns the number of pixels in the box.
func (b Box2I) Area() int64 {
	return int64(b.Width()) * int64(b.Height())
}

// Center returns the center of the box in floating-point coordinates.
func (b Box2I) Center() Point2D {
	return Box2DFromBox2I(b).Center()
}

func (b Box2I) CenterX() float64 { return b.Center().X }
func (b Box2I) CenterY() float64 { return b.Center().Y }

func (b Box2I) IsEmpty() bool { return b.x.IsEmpty() || b.y.IsEmpty() }

// Contains reports whether p lies in the box.
func (b Box2I) Contains(p Point2I) bool {
	return b.x.Contains(p.X) && b.y.Contains(p.Y)
}

// ContainsXY reports whether (x, y) lies in the box.
func (b Box2I) ContainsXY(x, y int32) bool {
	return b.x.Contains(x) && b.y.Contains(y)
}

// ContainsBox reports whether every point of other lies in b. The empty
// box is contained by every box.
func (b Box2I) ContainsBox(other Box2I) bool {
	return b.x.ContainsInterval(other.x) && b.y.ContainsInterval(other.y)
}

// Overlaps reports whether b and other share at least one point.
func (b Box2I) Overlaps(other Box2I) bool {
	return !b.IsDisjointFrom(other)
}

// Intersects is the same as Overlaps.
func (b Box2I) Intersects(other Box2I) bool {
	return b.Overlaps(other)
}

// IsDisjointFrom reports whether b and other share no points.
func (b Box2I) IsDisjointFrom(other Box2I) bool {
	return b.x.IsDisjointFrom(other.x) || b.y.IsDisjointFrom(other.y)
}

// Corners returns the four corners of the box, starting at the minimum
// and proceeding to (max x, min y), the maximum, and (min x, max y).
func (b Box2I) Corners() [4]Point2I {
	return [...]Point2I{
		b.Min(),
		{X: b.MaxX(), Y: b.MinY()},
		b.Max(),
		{X: b.MinX(), Y: b.MaxY()},
	}
}

// Slices returns the half-open row and column ranges of the box, in
// that order, for indexing a row-major buffer whose origin is (0, 0).
func (b Box2I) Slices() (rows, cols Span) {
	return b.y.Slice(), b.x.Slice()
}

// Rectangle returns the box as a half-open image.Rectangle.
func (b Box2I) Rectangle() image.Rectangle {
	if b.IsEmpty() {
		return image.Rectangle{}
	}
	return image.Rect(b.BeginX(), b.BeginY(), b.EndX(), b.EndY())
}

// DilatedBy grows the box by buffer on every side. Negative components
// shrink it.
func (b Box2I) DilatedBy(buffer Extent2I) (Box2I, error) {
	x, err := b.x.DilatedBy(buffer.X)
	if err != nil {
		return Box2I{}, err
	}
	y, err := b.y.DilatedBy(buffer.Y)
	if err != nil {
		return Box2I{}, err
	}
	return NewBox2I(x, y), nil
}

// ErodedBy shrinks the box by buffer on every side.
func (b Box2I) ErodedBy(buffer Extent2I) (Box2I, error) {
	x, err := b.x.ErodedBy(buffer.X)
	if err != nil {
		return Box2I{}, err
	}
	y, err := b.y.ErodedBy(buffer.Y)
	if err != nil {
		return Box2I{}, err
	}
	return NewBox2I(x, y), nil
}

// ShiftedBy moves the box by offset.
func (b Box2I) ShiftedBy(offset Extent2I) (Box2I, error) {
	x, err := b.x.ShiftedBy(offset.X)
	if err != nil {
		return Box2I{}, err
	}
	y, err := b.y.ShiftedBy(offset.Y)
	if err != nil {
		return Box2I{}, err
	}
	return NewBox2I(x, y), nil
}

// ReflectedAboutX mirrors the box about the vertical line at x.
func (b Box2I) ReflectedAboutX(x int32) (Box2I, error) {
	rx, err := b.x.ReflectedAbout(x)
	if err != nil {
		return Box2I{}, err
	}
	return NewBox2I(rx, b.y), nil
}

// ReflectedAboutY mirrors the box about the horizontal line at y.
func (b Box2I) ReflectedAboutY(y int32) (Box2I, error) {
	ry, err := b.y.ReflectedAbout(y)
	if err != nil {
		return Box2I{}, err
	}
	return NewBox2I(b.x, ry), nil
}

// ExpandedTo returns the smallest box containing both b and p.
func (b Box2I) ExpandedTo(p Point2I) (Box2I, error) {
	x, err := b.x.ExpandedTo(p.X)
	if err != nil {
		return Box2I{}, err
	}
	y, err := b.y.ExpandedTo(p.Y)
	if err != nil {
		return Box2I{}, err
	}
	return NewBox2I(x, y), nil
}

// ExpandedToBox returns the smallest box containing both b and other.
func (b Box2I) ExpandedToBox(other Box2I) (Box2I, error) {
	x, err := b.x.ExpandedToInterval(other.x)
	if err != nil {
		return Box2I{}, err
	}
	y, err := b.y.ExpandedToInterval(other.y)
	if err != nil {
		return Box2I{}, err
	}
	return NewBox2I(x, y), nil
}

// ClippedTo returns the intersection of b and other.
func (b Box2I) ClippedTo(other Box2I) Box2I {
	return NewBox2I(b.x.ClippedTo(other.x), b.y.ClippedTo(other.y))
}

// Grow replaces b with b.DilatedBy(buffer). On error, b is unchanged.
func (b *Box2I) Grow(buffer Extent2I) error {
	return b.replace(b.DilatedBy(buffer))
}

// Shift replaces b with b.ShiftedBy(offset). On error, b is unchanged.
func (b *Box2I) Shift(offset Extent2I) error {
	return b.replace(b.ShiftedBy(offset))
}

// Include replaces b with b.ExpandedTo(p). On error, b is unchanged.
func (b *Box2I) Include(p Point2I) error {
	return b.replace(b.ExpandedTo(p))
}

// IncludeBox replaces b with b.ExpandedToBox(other). On error, b is
// unchanged.
func (b *Box2I) IncludeBox(other Box2I) error {
	return b.replace(b.ExpandedToBox(other))
}

// Clip replaces b with b.ClippedTo(other).
func (b *Box2I) Clip(other Box2I) {
	*b = b.ClippedTo(other)
}

func (b *Box2I) replace(r Box2I, err error) error {
	if err != nil {
		return err
	}
	*b = r
	return nil
}

// FlipLR mirrors b left to right within a parent frame that spans
// columns [0, xextent). The dimensions are unchanged. Empty boxes are
// left alone.
func (b *Box2I) FlipLR(xextent int32) error {
	if b.IsEmpty() {
		return nil
	}
	x, err := flipAxis(b.x, xextent)
	if err != nil {
		return err
	}
	b.x = x
	return nil
}

// FlipTB mirrors b top to bottom within a parent frame that spans rows
// [0, yextent). The dimensions are unchanged. Empty boxes are left
// alone.
func (b *Box2I) FlipTB(yextent int32) error {
	if b.IsEmpty() {
		return nil
	}
	y, err := flipAxis(b.y, yextent)
	if err != nil {
		return err
	}
	b.y = y
	return nil
}

func flipAxis(i IntervalI, extent int32) (IntervalI, error) {
	lo := int64(extent) - (int64(i.Min()) + int64(i.Size()))
	if err := checkOverflow(lo, "minimum"); err != nil {
		return IntervalI{}, err
	}
	return IntervalIFromMinSize(int32(lo), i.Size())
}

// Equal reports whether b and other contain the same points.
func (b Box2I) Equal(other Box2I) bool {
	return b == other
}

// Hash returns a hash of the box that is equal for equal boxes.
func (b Box2I) Hash() uint64 {
	return hashCombine(hashSeed,
		hashInt(b.x.Min()), hashInt(b.y.Min()),
		hashInt(b.x.Size()), hashInt(b.y.Size()),
	)
}

func (b Box2I) String() string {
	if b.IsEmpty() {
		return "Box2I()"
	}
	return fmt.Sprintf("Box2I(min=%v, dims=%v)", b.Min(), b.Dimensions())
}
