// Package format provides pixel formats and an image type whose
// bounds are a [geom.Box2I].
package format

import (
	"encoding/binary"
)

// Format is a pixel format for an Image and related types. This
// package contains several predefined formats, such as [ARGB8888].
type Format interface {
	// Size returns the number of bytes per pixel.
	Size() int

	// Read reads raw pixel data and converts it to alpha-premultiplied
	// RGBA values, similar to color.Color's RGBA method.
	Read([]byte) (r, g, b, a uint32)

	// Write writes alpha-premultiplied RGBA values into buf.
	Write(buf []byte, r, g, b, a uint32)
}

// Various predefined Formats. All of them store one little-endian
// 32-bit word per pixel with the alpha or padding byte in the high
// bits.
var (
	ARGB8888 Format = packed32{name: "ARGB8888", rshift: 16, gshift: 8, bshift: 0, alpha: true}
	XRGB8888 Format = packed32{name: "XRGB8888", rshift: 16, gshift: 8, bshift: 0}
	ABGR8888 Format = packed32{name: "ABGR8888", rshift: 0, gshift: 8, bshift: 16, alpha: true}
	XBGR8888 Format = packed32{name: "XBGR8888", rshift: 0, gshift: 8, bshift: 16}
)

// packed32 is a format with 8 bits per channel packed into a uint32.
// If alpha is false, the top byte is padding and every pixel is
// opaque.
type packed32 struct {
	name                   string
	rshift, gshift, bshift uint
	alpha                  bool
}

func (f packed32) String() string { return f.name }

func (packed32) Size() int { return 4 }

func (f packed32) Read(data []byte) (r, g, b, a uint32) {
	n := binary.LittleEndian.Uint32(data)
	a = 0xFFFF
	if f.alpha {
		a = n >> 24 * 0xFFFF / 0xFF
	}
	r = (n >> f.rshift & 0xFF) * a / 0xFF
	g = (n >> f.gshift & 0xFF) * a / 0xFF
	b = (n >> f.bshift & 0xFF) * a / 0xFF
	return
}

func (f packed32) Write(buf []byte, r, g, b, a uint32) {
	n := uint32(0xFF) << 24
	div := uint32(0xFFFF)
	if f.alpha {
		n = (a * 0xFF / 0xFFFF) << 24
		div = a
	}
	if div != 0 {
		n |= channel8(r, div)<<f.rshift | channel8(g, div)<<f.gshift | channel8(b, div)<<f.bshift
	}
	binary.LittleEndian.PutUint32(buf, n)
}

// channel8 scales a 16-bit channel that was premultiplied by div down
// to 8 bits.
func channel8(c, div uint32) uint32 {
	return min(c*0xFF/div, 0xFF)
}
