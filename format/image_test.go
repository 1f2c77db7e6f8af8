package format_test

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"deedles.dev/xgeom/format"
	"deedles.dev/xgeom/geom"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

func box(t *testing.T, x0, y0, x1, y1 int32) geom.Box2I {
	t.Helper()
	b, err := geom.Box2IFromCorners(geom.Pt(x0, y0), geom.Pt(x1, y1), false)
	require.NoError(t, err)
	return b
}

func requireColor(t *testing.T, expected, actual color.Color) {
	t.Helper()
	er, eg, eb, ea := expected.RGBA()
	ar, ag, ab, aa := actual.RGBA()
	require.Equal(t, [4]uint32{er, eg, eb, ea}, [4]uint32{ar, ag, ab, aa})
}

func TestImage(t *testing.T) {
	img := format.NewImage(format.ARGB8888, box(t, -2, -1, 3, 2))
	require.Equal(t, image.Rect(-2, -1, 4, 3), img.Bounds())
	require.Equal(t, 24, img.Stride)
	require.Len(t, img.Pix, 24*4)

	img.Set(0, 0, colornames.Red)
	img.Set(3, 2, colornames.Green)
	img.Set(-2, -1, colornames.Cornflowerblue)
	img.Set(4, 0, colornames.Red)

	requireColor(t, colornames.Red, img.At(0, 0))
	requireColor(t, colornames.Green, img.At(3, 2))
	requireColor(t, colornames.Cornflowerblue, img.At(-2, -1))
	requireColor(t, color.Transparent, img.At(4, 0))
	requireColor(t, color.Transparent, img.At(1, 1))

	require.Equal(t, 0, img.PixOffset(-2, -1))
	require.Equal(t, 24+8, img.PixOffset(0, 0))
}

func TestImageDraw(t *testing.T) {
	img := format.NewImage(format.XRGB8888, box(t, 0, 0, 3, 3))
	draw.Draw(img, img.Bounds(), image.NewUniform(colornames.Orange), image.Point{}, draw.Src)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			requireColor(t, colornames.Orange, img.At(x, y))
		}
	}

	var dst draw.Image = img
	require.Equal(t, format.Model{Format: format.XRGB8888}, dst.ColorModel())
}

func TestImageFill(t *testing.T) {
	img := format.NewImage(format.ARGB8888, box(t, 1, 1, 4, 3))
	img.Fill(box(t, 3, 0, 10, 2), colornames.Blue)

	for y := 1; y <= 3; y++ {
		for x := 1; x <= 4; x++ {
			expected := color.Color(color.Transparent)
			if x >= 3 && y <= 2 {
				expected = colornames.Blue
			}
			requireColor(t, expected, img.At(x, y))
		}
	}

	img.Fill(geom.Box2I{}, colornames.Red)
	img.Fill(box(t, 20, 20, 30, 30), colornames.Red)
	requireColor(t, color.Transparent, img.At(1, 1))
}

func TestImageCrop(t *testing.T) {
	img := format.NewImage(format.ABGR8888, box(t, 0, 0, 4, 4))

	sub := img.Crop(box(t, 2, 1, 9, 2))
	require.Equal(t, image.Rect(2, 1, 5, 3), sub.Bounds())
	sub.Set(3, 2, colornames.Yellow)
	requireColor(t, colornames.Yellow, img.At(3, 2))

	sub.Fill(sub.Box, colornames.Purple)
	requireColor(t, colornames.Purple, img.At(4, 1))
	requireColor(t, colornames.Purple, img.At(2, 2))
	requireColor(t, color.Transparent, img.At(1, 1))
	requireColor(t, color.Transparent, img.At(2, 3))

	empty := img.Crop(box(t, 10, 10, 12, 12))
	require.True(t, empty.Bounds().Empty())
	requireColor(t, color.Transparent, empty.At(10, 10))

	si := img.SubImage(image.Rect(1, 1, 3, 3))
	require.Equal(t, image.Rect(1, 1, 3, 3), si.Bounds())
	requireColor(t, colornames.Purple, si.At(2, 2))

	si = img.SubImage(image.Rect(-1<<40, 0, 1, 1))
	require.Equal(t, image.Rect(0, 0, 1, 1), si.Bounds())
}

func TestImageHexColors(t *testing.T) {
	hexes := []string{"#336699", "#ff0000", "#00ff7f", "#000000", "#fafafa"}
	for _, f := range []format.Format{format.ARGB8888, format.XRGB8888, format.ABGR8888, format.XBGR8888} {
		img := format.NewImage(f, box(t, 0, 0, int32(len(hexes)-1), 0))
		for i, hex := range hexes {
			c, err := colorful.Hex(hex)
			require.NoError(t, err)
			img.Set(i, 0, c)
		}
		for i, hex := range hexes {
			c, ok := colorful.MakeColor(img.At(i, 0))
			require.True(t, ok)
			require.Equal(t, hex, c.Hex(), "%v", f)
		}
	}
}
