package geom

import (
	"iter"
	"math"
	"slices"

	"deedles.dev/xiter"
)

// hsplit splits a box into two boxes arranged horizontally, meeting at
// x.
func hsplit(b Box2D, x float64) (left, right Box2D) {
	left = NewBox2D(intervalD(b.x.min, x), b.y)
	right = NewBox2D(intervalD(x, b.x.max), b.y)
	return left, right
}

func hsplitHalf(b Box2D) (left, right Box2D) {
	return hsplit(b, b.x.Center())
}

// vsplit splits a box into two boxes arranged vertically, meeting at
// y.
func vsplit(b Box2D, y float64) (top, bottom Box2D) {
	top = NewBox2D(b.x, intervalD(b.y.min, y))
	bottom = NewBox2D(b.x, intervalD(y, b.y.max))
	return top, bottom
}

func vsplitHalf(b Box2D) (top, bottom Box2D) {
	return vsplit(b, b.y.Center())
}

// tileable reports whether b can be split into tiles.
func tileable(b Box2D) bool {
	return !b.IsEmpty() && b.IsFinite()
}

// edge returns the ith of n+1 evenly spaced positions across iv. The
// first and last are exactly the bounds of iv, so that tiles computed
// from consecutive edges cover iv with no gaps.
func edge(iv IntervalD, i, n int) float64 {
	switch i {
	case 0:
		return iv.min
	case n:
		return iv.max
	}
	return min(iv.min+iv.Size()*float64(i)/float64(n), iv.max)
}

// TileRightThenDown arranges and resizes the elements of tiles in
// order to split b into a series of boxes that recursively split each
// section halfway to the right and then downwards. In other words,
//
//	tiles := make([]geom.Box2D, 4)
//	TileRightThenDown(tiles, b)
//
// will produce
//
//	------------
//	|    |     |
//	|    -------
//	|    |  |  |
//	------------
//
// Splitting stops early once b is too small to be halved again, so
// fewer than len(tiles) tiles may be produced.
func TileRightThenDown(tiles []Box2D, b Box2D) {
	insertTilesFromSeq(tiles, TiledRightThenDown(len(tiles), b))
}

// TiledRightThenDown is the same as [TileRightThenDown] but yields
// the successive tiles from an iterator instead of inserting them
// into a slice.
func TiledRightThenDown(numtiles int, b Box2D) iter.Seq[Box2D] {
	return func(yield func(Box2D) bool) {
		if numtiles <= 0 || !tileable(b) {
			return
		}

		split, next := hsplitHalf, vsplitHalf

		rest := b
		for range numtiles - 1 {
			c, n := split(rest)
			if c.IsEmpty() || n.IsEmpty() {
				break
			}
			if !yield(c) {
				return
			}

			rest = n
			split, next = next, split
		}

		yield(rest)
	}
}

// TileTwoThirdsSidebar arranges and resizes the elements of tiles so
// that the result are a series of boxes where the first is two-thirds
// the width of b and the rest are arranged vertically in an even split
// in the remaining space. In other words,
//
//	tiles := make([]geom.Box2D, 4)
//	TileTwoThirdsSidebar(tiles, b)
//
// will produce
//
//	-------------
//	|       |   |
//	|       -----
//	|       |   |
//	|       -----
//	|       |   |
//	-------------
//
// A single tile is all of b.
func TileTwoThirdsSidebar(tiles []Box2D, b Box2D) {
	insertTilesFromSeq(tiles, TiledTwoThirdsSidebar(len(tiles), b))
}

// TiledTwoThirdsSidebar is the same as [TileTwoThirdsSidebar] except
// that it yields the successive boxes from an iterator instead of
// inserting them into a slice.
func TiledTwoThirdsSidebar(numtiles int, b Box2D) iter.Seq[Box2D] {
	return func(yield func(Box2D) bool) {
		if numtiles <= 0 || !tileable(b) {
			return
		}

		first, rem := hsplit(b, b.x.min+b.x.Size()/3*2)
		if numtiles == 1 || first.IsEmpty() || rem.IsEmpty() {
			yield(b)
			return
		}
		if !yield(first) {
			return
		}

		for t := range TiledEvenVertically(numtiles-1, rem) {
			if !yield(t) {
				return
			}
		}
	}
}

// TileEvenVertically arranges and resizes the elements of tiles so
// that the result are a series of boxes that comprise an even,
// vertical splitting of b. In other words,
//
//	tiles := make([]geom.Box2D, 3)
//	TileEvenVertically(tiles, b)
//
// will produce
//
//	----------
//	|        |
//	----------
//	|        |
//	----------
//	|        |
//	----------
//
// Tiles that would be empty because b is too short to split that
// finely are skipped.
func TileEvenVertically(tiles []Box2D, b Box2D) {
	insertTilesFromSeq(tiles, TiledEvenVertically(len(tiles), b))
}

// TiledEvenVertically is the same as [TileEvenVertically] except that
// it yields the tiles from an iterator.
func TiledEvenVertically(numtiles int, b Box2D) iter.Seq[Box2D] {
	return func(yield func(Box2D) bool) {
		if numtiles <= 0 || !tileable(b) {
			return
		}
		for i := range numtiles {
			t := NewBox2D(b.x, intervalD(edge(b.y, i, numtiles), edge(b.y, i+1, numtiles)))
			if t.IsEmpty() {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

// TileEvenHorizontally arranges and resizes the elements of tiles so
// that the result are a series of boxes that comprise an even,
// horizontal splitting of b. In other words,
//
//	tiles := make([]geom.Box2D, 3)
//	TileEvenHorizontally(tiles, b)
//
// will produce
//
//	----------
//	|  |  |  |
//	----------
//
// As with [TileEvenVertically], tiles too narrow to exist are skipped.
func TileEvenHorizontally(tiles []Box2D, b Box2D) {
	insertTilesFromSeq(tiles, TiledEvenHorizontally(len(tiles), b))
}

func TiledEvenHorizontally(numtiles int, b Box2D) iter.Seq[Box2D] {
	return func(yield func(Box2D) bool) {
		if numtiles <= 0 || !tileable(b) {
			return
		}
		for i := range numtiles {
			t := NewBox2D(intervalD(edge(b.x, i, numtiles), edge(b.x, i+1, numtiles)), b.y)
			if t.IsEmpty() {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

// TileRows arranges and resizes the elements of tiles to produce a
// series of rows and columns the union of which reproduces b. The
// final row of the table is split evenly into at most cols columns.
// When that number is exceeded, a new row is added below it instead.
func TileRows(tiles []Box2D, b Box2D, cols int) {
	insertTilesFromSeq(tiles, TiledRows(len(tiles), b, cols))
}

// TiledRows is the same as [TileRows] except that it yields the tiles
// from an iterator.
func TiledRows(numtiles int, b Box2D, cols int) iter.Seq[Box2D] {
	return func(yield func(Box2D) bool) {
		if cols <= 0 {
			return
		}

		numrows := numtiles / cols
		if numtiles%cols != 0 {
			numrows++
		}
		rows := TiledEvenVertically(numrows, b)

		for row := range rows {
			if numtiles <= 0 {
				break
			}

			numcols := min(numtiles, cols)
			for t := range TiledEvenHorizontally(numcols, row) {
				if !yield(t) {
					return
				}
			}
			numtiles -= numcols
		}
	}
}

// TiledBox2I yields the pixel patches of b in row-major order. Each
// patch has the dimensions of tile except along the right and bottom
// edges of b, where patches are clipped to b.
func TiledBox2I(b Box2I, tile Extent2I) iter.Seq[Box2I] {
	return func(yield func(Box2I) bool) {
		if b.IsEmpty() || tile.X <= 0 || tile.Y <= 0 {
			return
		}

		for y := int64(b.MinY()); y <= int64(b.MaxY()); y += int64(tile.Y) {
			// Bounds are clipped to b, so they cannot overflow.
			ty, _ := intervalIChecked(y, min(y+int64(tile.Y)-1, int64(b.MaxY())))
			for x := int64(b.MinX()); x <= int64(b.MaxX()); x += int64(tile.X) {
				tx, _ := intervalIChecked(x, min(x+int64(tile.X)-1, int64(b.MaxX())))
				if !yield(NewBox2I(tx, ty)) {
					return
				}
			}
		}
	}
}

// VerticalStack returns an iterator that yields the box provided and
// then copies of it placed directly below one another, thus producing
// a vertical stack of boxes below the first. Each copy begins exactly
// where the previous one ends. The stack ends once a further copy
// could not be represented. An empty or unbounded box yields nothing.
func VerticalStack(first Box2D) iter.Seq[Box2D] {
	return func(yield func(Box2D) bool) {
		if !tileable(first) {
			return
		}

		height := first.y.Size()
		for b := first; !b.IsEmpty(); {
			if !yield(b) {
				return
			}

			next := b.y.max + height
			if math.IsInf(next, 0) {
				return
			}
			b = NewBox2D(b.x, intervalD(b.y.max, next))
		}
	}
}

// ArrangeVerticalStack arranges the subsequent boxes of boxes
// underneath the first vertically, expanding all for which it is
// necessary so that they are all the same width including the first.
// Each keeps its height. Empty boxes are left alone and take no room
// in the stack.
func ArrangeVerticalStack(boxes []Box2D) {
	i := slices.IndexFunc(boxes, func(b Box2D) bool { return !b.IsEmpty() })
	if i < 0 {
		return
	}

	width := boxes[i].x.Size()
	for _, b := range boxes[i+1:] {
		if !b.IsEmpty() {
			width = max(width, b.x.Size())
		}
	}
	x := intervalD(boxes[i].x.min, boxes[i].x.min+width)

	prev := NewBox2D(x, boxes[i].y)
	boxes[i] = prev
	for j := i + 1; j < len(boxes); j++ {
		if boxes[j].IsEmpty() {
			continue
		}
		below := intervalD(prev.y.max, math.Inf(1))
		boxes[j] = NewBox2D(x, alignAxis(below, boxes[j].y, true, false))
		prev = boxes[j]
	}
}

// Align positions inner within outer. Edges of inner named by edges
// are moved to the corresponding edges of outer, stretching inner if
// opposite edges are both named. Along an axis with neither edge
// named, inner is centered. Top is the minimum y.
func Align(outer, inner Box2D, edges Edges) Box2D {
	if outer.IsEmpty() || inner.IsEmpty() {
		return inner
	}
	x := alignAxis(outer.x, inner.x, edges&EdgeLeft != 0, edges&EdgeRight != 0)
	y := alignAxis(outer.y, inner.y, edges&EdgeTop != 0, edges&EdgeBottom != 0)
	return NewBox2D(x, y)
}

func alignAxis(outer, inner IntervalD, low, high bool) IntervalD {
	size := inner.Size()
	switch {
	case low && high:
		return outer
	case low:
		return intervalD(outer.min, outer.min+size)
	case high:
		return intervalD(outer.max-size, outer.max)
	default:
		c := outer.Center()
		return intervalD(c-size/2, c+size/2)
	}
}

func insertTilesFromSeq[T any](tiles []T, s iter.Seq[T]) {
	for i, t := range xiter.Enumerate(s) {
		if i >= len(tiles) {
			return
		}
		tiles[i] = t
	}
}
