// Package matview addresses gonum matrices and vectors by boxes and
// intervals in a parent pixel frame.
package matview

import (
	"errors"
	"fmt"
	"math"

	"deedles.dev/xgeom/geom"
	"gonum.org/v1/gonum/mat"
)

var (
	ErrEmpty       = errors.New("empty region")
	ErrOutOfBounds = errors.New("region out of bounds")
)

// Grid is a matrix of pixel values positioned in a parent frame. Row i
// and column j of Data hold the value of the pixel at
// (Origin.X+j, Origin.Y+i).
type Grid struct {
	Data   *mat.Dense
	Origin geom.Point2I
}

// NewGrid returns a zeroed grid whose pixels are exactly box.
func NewGrid(box geom.Box2I) (*Grid, error) {
	if box.IsEmpty() {
		return nil, ErrEmpty
	}
	return &Grid{
		Data:   mat.NewDense(int(box.Height()), int(box.Width()), nil),
		Origin: box.Min(),
	}, nil
}

// BBox returns the box of pixels covered by the grid.
func (g *Grid) BBox() geom.Box2I {
	r, c := g.Data.Dims()
	// A grid made by NewGrid or View always fits, so an error here
	// means the grid was built by hand past the int32 range.
	b, _ := geom.Box2IFromCornerSize(g.Origin, geom.Ext(int32(c), int32(r)), false)
	return b
}

// locate returns the rows and columns of Data that hold box.
func (g *Grid) locate(box geom.Box2I) (rows, cols geom.Span, err error) {
	if box.IsEmpty() {
		return rows, cols, ErrEmpty
	}
	bbox := g.BBox()
	if !bbox.ContainsBox(box) {
		return rows, cols, fmt.Errorf("%w: %v is not inside %v", ErrOutOfBounds, box, bbox)
	}

	rows, cols = box.Slices()
	x0, y0 := bbox.BeginX(), bbox.BeginY()
	rows = geom.Span{Begin: rows.Begin - y0, End: rows.End - y0}
	cols = geom.Span{Begin: cols.Begin - x0, End: cols.End - x0}
	return rows, cols, nil
}

func (g *Grid) index(p geom.Point2I) (i, j int, err error) {
	if !g.BBox().Contains(p) {
		return 0, 0, fmt.Errorf("%w: %v is not inside %v", ErrOutOfBounds, p, g.BBox())
	}
	return int(p.Y) - int(g.Origin.Y), int(p.X) - int(g.Origin.X), nil
}

// At returns the value of the pixel at p.
func (g *Grid) At(p geom.Point2I) (float64, error) {
	i, j, err := g.index(p)
	if err != nil {
		return 0, err
	}
	return g.Data.At(i, j), nil
}

// Set sets the value of the pixel at p.
func (g *Grid) Set(p geom.Point2I, v float64) error {
	i, j, err := g.index(p)
	if err != nil {
		return err
	}
	g.Data.Set(i, j, v)
	return nil
}

// View returns the part of g covered by box. The result shares its
// data with g.
func (g *Grid) View(box geom.Box2I) (*Grid, error) {
	rows, cols, err := g.locate(box)
	if err != nil {
		return nil, err
	}
	return &Grid{
		Data:   g.Data.Slice(rows.Begin, rows.End, cols.Begin, cols.End).(*mat.Dense),
		Origin: box.Min(),
	}, nil
}

// Sum returns the sum of the pixels of g inside box.
func (g *Grid) Sum(box geom.Box2I) (float64, error) {
	v, err := g.View(box)
	if err != nil {
		return 0, err
	}
	return mat.Sum(v.Data), nil
}

// FlipLR mirrors g left to right within a parent frame that spans
// columns [0, xextent). Both the contents and the origin move, so the
// values that were in a box b are afterwards in b flipped by
// [geom.Box2I.FlipLR] with the same extent. On error g is unchanged.
func (g *Grid) FlipLR(xextent int32) error {
	bbox := g.BBox()
	if err := bbox.FlipLR(xextent); err != nil {
		return err
	}

	r, c := g.Data.Dims()
	for i := range r {
		for j := range c / 2 {
			k := c - 1 - j
			a, b := g.Data.At(i, j), g.Data.At(i, k)
			g.Data.Set(i, j, b)
			g.Data.Set(i, k, a)
		}
	}
	g.Origin = bbox.Min()
	return nil
}

// FlipTB mirrors g top to bottom within a parent frame that spans rows
// [0, yextent), like [Grid.FlipLR].
func (g *Grid) FlipTB(yextent int32) error {
	bbox := g.BBox()
	if err := bbox.FlipTB(yextent); err != nil {
		return err
	}

	r, _ := g.Data.Dims()
	for i := range r / 2 {
		k := r - 1 - i
		top := mat.Row(nil, i, g.Data)
		g.Data.SetRow(i, mat.Row(nil, k, g.Data))
		g.Data.SetRow(k, top)
	}
	g.Origin = bbox.Min()
	return nil
}

// Segment returns the elements of v covered by iv, where element 0 of
// v is at index origin. The result shares its data with v.
func Segment(v *mat.VecDense, origin int32, iv geom.IntervalI) (*mat.VecDense, error) {
	if iv.IsEmpty() {
		return nil, ErrEmpty
	}
	if v.Len() > math.MaxInt32 {
		return nil, fmt.Errorf("%w: vector of length %d", geom.ErrOverflow, v.Len())
	}
	full, err := geom.IntervalIFromMinSize(origin, int32(v.Len()))
	if err != nil {
		return nil, err
	}
	if !full.ContainsInterval(iv) {
		return nil, fmt.Errorf("%w: %v is not inside %v", ErrOutOfBounds, iv, full)
	}

	s := iv.Slice()
	return v.SliceVec(s.Begin-full.Begin(), s.End-full.Begin()).(*mat.VecDense), nil
}
