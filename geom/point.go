package geom

import "fmt"

// Point is a position in a two-dimensional coordinate system.
type Point[T Scalar] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{X: x, Y: y}.
func Pt[T Scalar](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Extent is a displacement or size in a two-dimensional coordinate
// system.
type Extent[T Scalar] struct {
	X, Y T
}

// Ext is shorthand for Extent[T]{X: x, Y: y}.
func Ext[T Scalar](x, y T) Extent[T] {
	return Extent[T]{X: x, Y: y}
}

type (
	Point2I  = Point[int32]
	Point2D  = Point[float64]
	Extent2I = Extent[int32]
	Extent2D = Extent[float64]
)

// Add returns p displaced by e.
func (p Point[T]) Add(e Extent[T]) Point[T] {
	return Point[T]{X: p.X + e.X, Y: p.Y + e.Y}
}

// Sub returns the displacement from q to p.
func (p Point[T]) Sub(q Point[T]) Extent[T] {
	return Extent[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point[T]) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

func (e Extent[T]) Add(e2 Extent[T]) Extent[T] {
	return Extent[T]{X: e.X + e2.X, Y: e.Y + e2.Y}
}

func (e Extent[T]) Sub(e2 Extent[T]) Extent[T] {
	return Extent[T]{X: e.X - e2.X, Y: e.Y - e2.Y}
}

// Mul returns e scaled by s.
func (e Extent[T]) Mul(s T) Extent[T] {
	return Extent[T]{X: e.X * s, Y: e.Y * s}
}

func (e Extent[T]) Neg() Extent[T] {
	return Extent[T]{X: -e.X, Y: -e.Y}
}

func (e Extent[T]) String() string {
	return fmt.Sprintf("(%v, %v)", e.X, e.Y)
}

// Point2IToD converts an integer point to floating point exactly.
func Point2IToD(p Point2I) Point2D {
	return Point2D{X: float64(p.X), Y: float64(p.Y)}
}

// Extent2IToD converts an integer extent to floating point exactly.
func Extent2IToD(e Extent2I) Extent2D {
	return Extent2D{X: float64(e.X), Y: float64(e.Y)}
}
