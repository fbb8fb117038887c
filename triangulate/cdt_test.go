package triangulate

import (
	"math"
	"testing"

	"github.com/arl/geom2d/geom2d"
	"github.com/arl/geom2d/internal/buildlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triangleArea(tr Triangle) float64 {
	return math.Abs((tr.B.X-tr.A.X)*(tr.C.Y-tr.A.Y)-(tr.C.X-tr.A.X)*(tr.B.Y-tr.A.Y)) / 2
}

func TestConstrainedDelaunaySquareWithHole(t *testing.T) {
	border := []geom2d.Point{
		geom2d.MustPoint(0, 0),
		geom2d.MustPoint(6, 0),
		geom2d.MustPoint(6, 6),
		geom2d.MustPoint(0, 6),
	}
	hole := []geom2d.Point{
		geom2d.MustPoint(2, 2),
		geom2d.MustPoint(2, 4),
		geom2d.MustPoint(4, 4),
		geom2d.MustPoint(4, 2),
	}

	points := append(append([]geom2d.Point{}, border...), hole...)

	var constraints []geom2d.Segment
	for i := range border {
		constraints = append(constraints, geom2d.MustSegment(border[i], border[(i+1)%len(border)]))
	}
	for i := range hole {
		constraints = append(constraints, geom2d.MustSegment(hole[i], hole[(i+1)%len(hole)]))
	}

	tris, err := ConstrainedDelaunay(points, constraints)
	require.NoError(t, err)
	assert.Len(t, tris, 8)

	var total float64
	for _, tr := range tris {
		total += triangleArea(tr)
	}
	assert.InDelta(t, 32.0, total, 1e-9)
}

func TestConstrainedDelaunayContainsConstraintEdges(t *testing.T) {
	points := []geom2d.Point{
		geom2d.MustPoint(0, 0),
		geom2d.MustPoint(4, 0),
		geom2d.MustPoint(4, 4),
		geom2d.MustPoint(0, 4),
		geom2d.MustPoint(2, 1),
		geom2d.MustPoint(1, 3),
	}
	constraint := geom2d.MustSegment(points[4], points[5])
	// constraints must form closed loops: this one bounds the triangle
	// (0,0),(2,1),(1,3) and includes the checked segment.
	loop := []geom2d.Segment{
		geom2d.MustSegment(points[0], points[4]),
		constraint,
		geom2d.MustSegment(points[5], points[0]),
	}

	tris, err := ConstrainedDelaunay(points, loop)
	require.NoError(t, err)
	require.NotEmpty(t, tris)

	found := false
	for _, tr := range tris {
		verts := [3]geom2d.Point{tr.A, tr.B, tr.C}
		for i := 0; i < 3; i++ {
			a, b := verts[i], verts[(i+1)%3]
			if (a.Equal(constraint.A) && b.Equal(constraint.B)) ||
				(a.Equal(constraint.B) && b.Equal(constraint.A)) {
				found = true
			}
		}
	}
	assert.True(t, found, "expected constraint edge to appear in the output mesh")
}

func TestConstrainedDelaunayWithLogRecordsProgress(t *testing.T) {
	points := []geom2d.Point{
		geom2d.MustPoint(0, 0),
		geom2d.MustPoint(4, 0),
		geom2d.MustPoint(4, 4),
		geom2d.MustPoint(0, 4),
		geom2d.MustPoint(2, 1),
		geom2d.MustPoint(1, 3),
	}
	loop := []geom2d.Segment{
		geom2d.MustSegment(points[0], points[4]),
		geom2d.MustSegment(points[4], points[5]),
		geom2d.MustSegment(points[5], points[0]),
	}

	log := buildlog.New()
	_, err := ConstrainedDelaunayWithLog(points, loop, log)
	require.NoError(t, err)
	assert.NotZero(t, log.Count())
}

func TestConvexQuadAcceptsConvexQuadrilateral(t *testing.T) {
	coords := []geom2d.Point{
		geom2d.MustPoint(0, 0), // u
		geom2d.MustPoint(4, 0), // v
		geom2d.MustPoint(2, 3), // p1
		geom2d.MustPoint(2, -3), // p2
	}
	assert.True(t, convexQuad(coords, 0, 1, 2, 3))
}

func TestConvexQuadRejectsReflexQuadrilateral(t *testing.T) {
	// p2 sits past v, past the line through u-p1-v-p2's other diagonal, so
	// the quadrilateral folds in on itself at v instead of staying convex.
	coords := []geom2d.Point{
		geom2d.MustPoint(0, 0),    // u
		geom2d.MustPoint(4, 0),    // v
		geom2d.MustPoint(2, 3),    // p1
		geom2d.MustPoint(5, -0.1), // p2
	}
	assert.False(t, convexQuad(coords, 0, 1, 2, 3))
}

func TestConvexQuadRejectsCollinearOpposite(t *testing.T) {
	coords := []geom2d.Point{
		geom2d.MustPoint(0, 0), // u
		geom2d.MustPoint(4, 0), // v
		geom2d.MustPoint(2, 3), // p1
		geom2d.MustPoint(2, 0), // p2, collinear with u-v
	}
	assert.False(t, convexQuad(coords, 0, 1, 2, 3))
}

func TestOppositeVerticesReturnsThirdVerticesOfBothIncidentTriangles(t *testing.T) {
	m := twoTriMesh()
	p1, p2, ok := oppositeVertices(m, 0, 2)
	require.True(t, ok)
	assert.ElementsMatch(t, []int{1, 3}, []int{p1, p2})
}

func TestOppositeVerticesRejectsBoundaryEdge(t *testing.T) {
	m := twoTriMesh()
	_, _, ok := oppositeVertices(m, 0, 1)
	assert.False(t, ok)
}

func TestConstrainedDelaunayRejectsUnknownEndpoint(t *testing.T) {
	points := []geom2d.Point{
		geom2d.MustPoint(0, 0),
		geom2d.MustPoint(4, 0),
		geom2d.MustPoint(4, 4),
		geom2d.MustPoint(0, 4),
	}
	bad := geom2d.MustSegment(geom2d.MustPoint(0, 0), geom2d.MustPoint(99, 99))

	_, err := ConstrainedDelaunay(points, []geom2d.Segment{bad})
	require.Error(t, err)
	var gerr *geom2d.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, geom2d.InvalidConstraint, gerr.Kind)
}
