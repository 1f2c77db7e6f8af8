// Package rectconv converts between geom boxes and the rectangle types
// of seehuhn.de/go/geom/rect used for PDF bounding boxes.
package rectconv

import (
	"image"

	"deedles.dev/xgeom/geom"
	"seehuhn.de/go/geom/rect"
)

// FromRect returns the box spanned by r. The corners of r may be given
// in either order.
func FromRect(r rect.Rect) geom.Box2D {
	return geom.Box2DFromCorners(geom.Pt(r.LLx, r.LLy), geom.Pt(r.URx, r.URy), true)
}

// ToRect returns b as a rect.Rect. The empty box becomes the zero
// rectangle.
func ToRect(b geom.Box2D) rect.Rect {
	if b.IsEmpty() {
		return rect.Rect{}
	}
	return rect.Rect{LLx: b.MinX(), LLy: b.MinY(), URx: b.MaxX(), URy: b.MaxY()}
}

// Pixels returns the pixels that r touches, for Expand, or that lie
// entirely inside it, for Shrink.
func Pixels(r rect.Rect, edge geom.EdgeHandling) (geom.Box2I, error) {
	return geom.Box2IFromBox2D(FromRect(r), edge)
}

// FromPixels returns the area covered by the pixels of b.
func FromPixels(b geom.Box2I) rect.Rect {
	return ToRect(geom.Box2DFromBox2I(b))
}

// ToIntRect returns b as a half-open rect.IntRect.
func ToIntRect(b geom.Box2I) rect.IntRect {
	if b.IsEmpty() {
		return rect.IntRect{}
	}
	return rect.IntRect{XMin: b.BeginX(), YMin: b.BeginY(), XMax: b.EndX(), YMax: b.EndY()}
}

// FromIntRect returns the pixels of the half-open rectangle r.
func FromIntRect(r rect.IntRect) (geom.Box2I, error) {
	return geom.Box2IFromRectangle(image.Rect(r.XMin, r.YMin, r.XMax, r.YMax))
}
