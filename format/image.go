package format

import (
	"image"
	"image/color"

	"deedles.dev/xgeom/geom"
)

// Model implements color.Model using a Format.
type Model struct {
	Format Format
}

func (m Model) Convert(c color.Color) color.Color {
	if fc, ok := c.(*Color); ok && fc.Format == m.Format {
		return fc
	}

	fc := Color{Format: m.Format}
	r, g, b, a := c.RGBA()
	m.Format.Write(fc.Slice(), r, g, b, a)
	return &fc
}

// Color implements color.Color using a Format.
type Color struct {
	Format Format

	// Data contains the pixel data for the color. Only the first
	// Format.Size() bytes are used.
	Data [8]byte
}

// Slice returns a slice of Data correctly sized for the color's format.
func (c *Color) Slice() []byte {
	size := c.Format.Size()
	return c.Data[:size:size]
}

func (c *Color) RGBA() (r, g, b, a uint32) {
	return c.Format.Read(c.Slice())
}

// Image is an image with a color format defined by Format. Its pixels
// are the points of Box, stored row by row starting at Box.Min() with
// Stride bytes between the starts of consecutive rows.
type Image struct {
	Format Format
	Box    geom.Box2I
	Stride int
	Pix    []byte
}

// NewImage returns a zeroed image covering box.
func NewImage(f Format, box geom.Box2I) *Image {
	stride := f.Size() * int(box.Width())
	return &Image{
		Format: f,
		Box:    box,
		Stride: stride,
		Pix:    make([]byte, stride*int(box.Height())),
	}
}

func (img *Image) Bounds() image.Rectangle { return img.Box.Rectangle() }

func (img *Image) ColorModel() color.Model { return Model{Format: img.Format} }

// contains reports whether (x, y) is a pixel of the image.
func (img *Image) contains(x, y int) bool {
	if x != int(int32(x)) || y != int(int32(y)) {
		return false
	}
	return img.Box.ContainsXY(int32(x), int32(y))
}

// PixOffset returns the index of the first byte of the pixel at
// (x, y) in Pix.
func (img *Image) PixOffset(x, y int) int {
	x -= img.Box.BeginX()
	y -= img.Box.BeginY()
	return y*img.Stride + x*img.Format.Size()
}

// pixel returns the bytes of the pixel at (x, y), which must be in the
// image.
func (img *Image) pixel(x, y int) []byte {
	size := img.Format.Size()
	i := img.PixOffset(x, y)
	return img.Pix[i : i+size : i+size]
}

func (img *Image) At(x, y int) color.Color {
	c := Color{Format: img.Format}
	if img.contains(x, y) {
		copy(c.Slice(), img.pixel(x, y))
	}
	return &c
}

func (img *Image) Set(x, y int, c color.Color) {
	if !img.contains(x, y) {
		return
	}
	fc := img.ColorModel().Convert(c).(*Color)
	copy(img.pixel(x, y), fc.Slice())
}

// Crop returns the part of img inside box. The result shares pixels
// with img.
func (img *Image) Crop(box geom.Box2I) *Image {
	box.Clip(img.Box)
	if box.IsEmpty() {
		return &Image{Format: img.Format}
	}

	i := img.PixOffset(box.BeginX(), box.BeginY())
	return &Image{
		Format: img.Format,
		Box:    box,
		Stride: img.Stride,
		Pix:    img.Pix[i:],
	}
}

// SubImage returns the part of img inside r. The result shares pixels
// with img.
func (img *Image) SubImage(r image.Rectangle) image.Image {
	box, err := geom.Box2IFromRectangle(r)
	if err != nil {
		// r reaches past the int32 range, and so past img.
		box, _ = geom.Box2IFromRectangle(r.Intersect(img.Bounds()))
	}
	return img.Crop(box)
}

// Fill sets every pixel of img that is inside box to c.
func (img *Image) Fill(box geom.Box2I, c color.Color) {
	box.Clip(img.Box)
	if box.IsEmpty() {
		return
	}

	fc := img.ColorModel().Convert(c).(*Color)
	px := fc.Slice()
	size := len(px)

	rows, cols := box.Slices()
	x0, y0 := img.Box.BeginX(), img.Box.BeginY()
	for y := rows.Begin - y0; y < rows.End-y0; y++ {
		row := img.Pix[y*img.Stride:]
		for x := cols.Begin - x0; x < cols.End-x0; x++ {
			copy(row[x*size:(x+1)*size], px)
		}
	}
}
