package geom_test

import (
	"testing"

	"deedles.dev/xgeom/geom"
	"github.com/stretchr/testify/require"
)

func ivI(t *testing.T, lo, hi int32) geom.IntervalI {
	t.Helper()
	i, err := geom.IntervalIFromMinMax(lo, hi)
	require.NoError(t, err)
	return i
}

func ivD(t *testing.T, lo, hi float64) geom.IntervalD {
	t.Helper()
	i, err := geom.IntervalDFromMinMax(lo, hi)
	require.NoError(t, err)
	return i
}

func boxI(t *testing.T, x0, y0, x1, y1 int32) geom.Box2I {
	t.Helper()
	b, err := geom.Box2IFromCorners(geom.Pt(x0, y0), geom.Pt(x1, y1), false)
	require.NoError(t, err)
	return b
}

func boxD(x0, y0, x1, y1 float64) geom.Box2D {
	return geom.Box2DFromCorners(geom.Pt(x0, y0), geom.Pt(x1, y1), false)
}

// intervalsI returns every interval whose bounds are drawn from
// points, split into non-empty and empty ones.
func intervalsI(t *testing.T, points []int32) (nonempty, empty []geom.IntervalI) {
	t.Helper()
	empty = append(empty, geom.IntervalI{})
	for i, lo := range points {
		for j, hi := range points {
			if i <= j {
				nonempty = append(nonempty, ivI(t, lo, hi))
			} else {
				empty = append(empty, ivI(t, lo, hi))
			}
		}
	}
	return nonempty, empty
}

var testPointsI = []int32{-4, -1, 0, 2, 5, 7}
