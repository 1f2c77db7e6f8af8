package geom_test

import (
	"math"
	"slices"
	"testing"

	"deedles.dev/xgeom/geom"
	"deedles.dev/xiter"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// requirePartition checks that tiles cover b exactly without overlapping
// each other.
func requirePartition(t *testing.T, b geom.Box2D, tiles []geom.Box2D) {
	t.Helper()

	var area float64
	for i, tile := range tiles {
		require.False(t, tile.IsEmpty(), "tile %v", i)
		require.True(t, b.ContainsBox(tile), "tile %v: %v", i, tile)
		for _, other := range tiles[i+1:] {
			require.False(t, tile.Overlaps(other), "%v overlaps %v", tile, other)
		}
		area += tile.Area()
	}
	require.InDelta(t, b.Area(), area, 1e-9)
}

func TestTileEven(t *testing.T) {
	b := boxD(0, 0, 3, 1)

	tiles := make([]geom.Box2D, 3)
	geom.TileEvenHorizontally(tiles, b)
	expected := []geom.Box2D{boxD(0, 0, 1, 1), boxD(1, 0, 2, 1), boxD(2, 0, 3, 1)}
	if diff := cmp.Diff(expected, tiles); diff != "" {
		t.Fatalf("horizontal (-want +got):\n%s", diff)
	}

	b = boxD(0, 0, 1, 1)
	tiles = make([]geom.Box2D, 4)
	geom.TileEvenVertically(tiles, b)
	expected = []geom.Box2D{
		boxD(0, 0, 1, 0.25),
		boxD(0, 0.25, 1, 0.5),
		boxD(0, 0.5, 1, 0.75),
		boxD(0, 0.75, 1, 1),
	}
	if diff := cmp.Diff(expected, tiles); diff != "" {
		t.Fatalf("vertical (-want +got):\n%s", diff)
	}

	odd := boxD(-1.3, 0.1, 2.9, 7.7)
	for _, n := range []int{1, 2, 3, 7} {
		requirePartition(t, odd, slices.Collect(geom.TiledEvenHorizontally(n, odd)))
		requirePartition(t, odd, slices.Collect(geom.TiledEvenVertically(n, odd)))
	}
}

func TestTileRightThenDown(t *testing.T) {
	b := boxD(0, 0, 4, 4)

	tiles := make([]geom.Box2D, 4)
	geom.TileRightThenDown(tiles, b)
	expected := []geom.Box2D{
		boxD(0, 0, 2, 4),
		boxD(2, 0, 4, 2),
		boxD(2, 2, 3, 4),
		boxD(3, 2, 4, 4),
	}
	if diff := cmp.Diff(expected, tiles); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}

	one := slices.Collect(geom.TiledRightThenDown(1, b))
	require.Len(t, one, 1)
	require.True(t, b.Equal(one[0]))

	for n := 1; n < 8; n++ {
		requirePartition(t, b, slices.Collect(geom.TiledRightThenDown(n, b)))
	}

	unit := boxD(0, 0, 1, 1)
	many := slices.Collect(geom.TiledRightThenDown(3000, unit))
	require.Less(t, len(many), 3000)
	requirePartition(t, unit, many)
}

func TestTileTooSmall(t *testing.T) {
	thin := boxD(0, 0, 5e-324, 1)
	tiles := slices.Collect(geom.TiledEvenHorizontally(3, thin))
	require.Len(t, tiles, 1)
	requirePartition(t, thin, tiles)

	flat := boxD(0, 1, 1, math.Nextafter(1, 2))
	tiles = slices.Collect(geom.TiledEvenVertically(4, flat))
	require.Len(t, tiles, 1)
	requirePartition(t, flat, tiles)

	requirePartition(t, flat, slices.Collect(geom.TiledRows(6, flat, 2)))
	requirePartition(t, thin, slices.Collect(geom.TiledTwoThirdsSidebar(3, thin)))
}

func TestTileTwoThirdsSidebar(t *testing.T) {
	b := boxD(0, 0, 3, 3)

	tiles := make([]geom.Box2D, 4)
	geom.TileTwoThirdsSidebar(tiles, b)
	expected := []geom.Box2D{
		boxD(0, 0, 2, 3),
		boxD(2, 0, 3, 1),
		boxD(2, 1, 3, 2),
		boxD(2, 2, 3, 3),
	}
	if diff := cmp.Diff(expected, tiles); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}

	one := slices.Collect(geom.TiledTwoThirdsSidebar(1, b))
	require.Len(t, one, 1)
	require.True(t, b.Equal(one[0]))

	odd := boxD(-1.3, 0.1, 2.9, 7.7)
	for n := 1; n < 8; n++ {
		tiles := slices.Collect(geom.TiledTwoThirdsSidebar(n, odd))
		require.Len(t, tiles, n)
		requirePartition(t, odd, tiles)
	}

	require.Empty(t, slices.Collect(geom.TiledTwoThirdsSidebar(0, b)))
	require.Empty(t, slices.Collect(geom.TiledTwoThirdsSidebar(3, geom.Box2D{})))
}

func TestVerticalStack(t *testing.T) {
	first := boxD(1, 2, 4, 3.5)
	stack := slices.Collect(xiter.Limit(geom.VerticalStack(first), 4))
	expected := []geom.Box2D{
		boxD(1, 2, 4, 3.5),
		boxD(1, 3.5, 4, 5),
		boxD(1, 5, 4, 6.5),
		boxD(1, 6.5, 4, 8),
	}
	if diff := cmp.Diff(expected, stack); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	requirePartition(t, boxD(1, 2, 4, 8), stack)

	odd := boxD(0, 0.1, 1, 0.3)
	stack = slices.Collect(xiter.Limit(geom.VerticalStack(odd), 10))
	require.Len(t, stack, 10)
	for i := 1; i < len(stack); i++ {
		require.Equal(t, stack[i-1].MaxY(), stack[i].MinY())
	}
	requirePartition(t, boxD(0, 0.1, 1, stack[9].MaxY()), stack)

	top := boxD(0, math.MaxFloat64/2, 1, math.MaxFloat64)
	require.Len(t, slices.Collect(geom.VerticalStack(top)), 1)

	require.Empty(t, slices.Collect(geom.VerticalStack(geom.Box2D{})))
}

func TestArrangeVerticalStack(t *testing.T) {
	boxes := []geom.Box2D{
		{},
		boxD(0, 0, 2, 1),
		boxD(5, 5, 8, 7),
		{},
		boxD(-1, 0, 0, 0.5),
	}
	geom.ArrangeVerticalStack(boxes)
	expected := []geom.Box2D{
		{},
		boxD(0, 0, 3, 1),
		boxD(0, 1, 3, 3),
		{},
		boxD(0, 3, 3, 3.5),
	}
	if diff := cmp.Diff(expected, boxes); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	requirePartition(t, boxD(0, 0, 3, 3.5), []geom.Box2D{boxes[1], boxes[2], boxes[4]})

	single := []geom.Box2D{boxD(1, 1, 2, 2)}
	geom.ArrangeVerticalStack(single)
	require.True(t, boxD(1, 1, 2, 2).Equal(single[0]))

	geom.ArrangeVerticalStack(nil)
}

func TestTileRows(t *testing.T) {
	b := boxD(0, 0, 2, 3)

	tiles := make([]geom.Box2D, 5)
	geom.TileRows(tiles, b, 2)
	expected := []geom.Box2D{
		boxD(0, 0, 1, 1), boxD(1, 0, 2, 1),
		boxD(0, 1, 1, 2), boxD(1, 1, 2, 2),
		boxD(0, 2, 2, 3),
	}
	if diff := cmp.Diff(expected, tiles); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}

	for _, cols := range []int{1, 2, 3, 5} {
		for n := 1; n < 9; n++ {
			tiles := slices.Collect(geom.TiledRows(n, b, cols))
			require.Len(t, tiles, n)
			requirePartition(t, b, tiles)
		}
	}

	require.Empty(t, slices.Collect(geom.TiledRows(3, b, 0)))
}

func TestTileDegenerate(t *testing.T) {
	unbounded := geom.NewBox2D(ivD(t, 0, math.Inf(1)), ivD(t, 0, 1))
	for _, b := range []geom.Box2D{{}, unbounded} {
		require.Empty(t, slices.Collect(geom.TiledEvenHorizontally(3, b)))
		require.Empty(t, slices.Collect(geom.TiledEvenVertically(3, b)))
		require.Empty(t, slices.Collect(geom.TiledRightThenDown(3, b)))
		require.Empty(t, slices.Collect(geom.TiledRows(3, b, 2)))
	}
	require.Empty(t, slices.Collect(geom.TiledEvenHorizontally(0, boxD(0, 0, 1, 1))))

	// Extra slots are left untouched.
	tiles := make([]geom.Box2D, 2)
	geom.TileEvenHorizontally(tiles, geom.Box2D{})
	require.True(t, tiles[0].IsEmpty())

	var n int
	for range geom.TiledEvenHorizontally(10, boxD(0, 0, 1, 1)) {
		n++
		if n == 2 {
			break
		}
	}
	require.Equal(t, 2, n)
}

func TestTiledBox2I(t *testing.T) {
	b := boxI(t, 0, 0, 4, 2)
	patches := slices.Collect(geom.TiledBox2I(b, geom.Ext[int32](2, 2)))
	expected := []geom.Box2I{
		boxI(t, 0, 0, 1, 1), boxI(t, 2, 0, 3, 1), boxI(t, 4, 0, 4, 1),
		boxI(t, 0, 2, 1, 2), boxI(t, 2, 2, 3, 2), boxI(t, 4, 2, 4, 2),
	}
	if diff := cmp.Diff(expected, patches); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}

	var area int64
	for _, p := range patches {
		area += p.Area()
	}
	require.Equal(t, b.Area(), area)

	require.Empty(t, slices.Collect(geom.TiledBox2I(b, geom.Ext[int32](0, 2))))
	require.Empty(t, slices.Collect(geom.TiledBox2I(geom.Box2I{}, geom.Ext[int32](2, 2))))

	edge := boxI(t, math.MaxInt32-2, 0, math.MaxInt32, 0)
	patches = slices.Collect(geom.TiledBox2I(edge, geom.Ext[int32](2, 1)))
	require.Len(t, patches, 2)
	require.Equal(t, int32(math.MaxInt32), patches[1].MaxX())
}

func TestAlign(t *testing.T) {
	outer := boxD(0, 0, 10, 10)
	inner := boxD(0, 0, 2, 4)

	tests := []struct {
		name     string
		edges    geom.Edges
		expected geom.Box2D
	}{
		{"TopLeft", geom.EdgeTop | geom.EdgeLeft, boxD(0, 0, 2, 4)},
		{"BottomRight", geom.EdgeBottom | geom.EdgeRight, boxD(8, 6, 10, 10)},
		{"Centered", geom.EdgeNone, boxD(4, 3, 6, 7)},
		{"StretchX", geom.EdgeLeft | geom.EdgeRight, boxD(0, 3, 10, 7)},
		{"StretchAll", geom.EdgeTop | geom.EdgeBottom | geom.EdgeLeft | geom.EdgeRight, outer},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := geom.Align(outer, inner, test.edges)
			require.True(t, test.expected.Equal(r), "%v", r)
		})
	}

	require.True(t, geom.Align(outer, geom.Box2D{}, geom.EdgeTop).IsEmpty())
}
