package triangulate

import (
	"testing"

	"github.com/arl/geom2d/geom2d"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelaunayRejectsTooFewPoints(t *testing.T) {
	_, err := Delaunay([]geom2d.Point{geom2d.MustPoint(0, 0), geom2d.MustPoint(1, 1)})
	require.Error(t, err)
	var gerr *geom2d.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, geom2d.ContourTooSmall, gerr.Kind)
}

func TestDelaunaySquareWithCenter(t *testing.T) {
	center := geom2d.MustPoint(3, 3)
	points := []geom2d.Point{
		geom2d.MustPoint(0, 0),
		geom2d.MustPoint(6, 0),
		geom2d.MustPoint(6, 6),
		geom2d.MustPoint(0, 6),
		center,
	}

	tris, err := Delaunay(points)
	require.NoError(t, err)
	require.Len(t, tris, 4)

	for _, tr := range tris {
		assert.True(t, tr.A.Equal(center) || tr.B.Equal(center) || tr.C.Equal(center),
			"expected every triangle to share the center point, got %+v", tr)
	}
}

func TestDelaunayTriangleCountMatchesEulerFormula(t *testing.T) {
	points := []geom2d.Point{
		geom2d.MustPoint(0, 0),
		geom2d.MustPoint(4, 0),
		geom2d.MustPoint(8, 0),
		geom2d.MustPoint(0, 4),
		geom2d.MustPoint(4, 4),
		geom2d.MustPoint(8, 4),
	}
	tris, err := Delaunay(points)
	require.NoError(t, err)
	assert.NotEmpty(t, tris)

	// h counts every input point on the hull boundary, including the
	// collinear midpoints (4,0) and (4,4) that ConvexHull leaves out.
	hull := geom2d.ConvexHull(points)
	h := 0
	for _, p := range points {
		for i := range hull {
			if geom2d.SegmentContains(geom2d.MustSegment(hull[i], hull[(i+1)%len(hull)]), p) {
				h++
				break
			}
		}
	}
	n := len(points)
	expected := 2*n - h - 2
	assert.Equal(t, expected, len(tris))
}

func TestDelaunayEveryTriangleNonDegenerate(t *testing.T) {
	points := []geom2d.Point{
		geom2d.MustPoint(0, 0),
		geom2d.MustPoint(5, 1),
		geom2d.MustPoint(3, 7),
		geom2d.MustPoint(8, 8),
		geom2d.MustPoint(1, 5),
		geom2d.MustPoint(6, 4),
	}
	tris, err := Delaunay(points)
	require.NoError(t, err)
	for _, tr := range tris {
		area := (tr.B.X-tr.A.X)*(tr.C.Y-tr.A.Y) - (tr.C.X-tr.A.X)*(tr.B.Y-tr.A.Y)
		assert.NotZero(t, area)
	}
}
