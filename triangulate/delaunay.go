// Package triangulate builds unconstrained and constrained Delaunay
// triangulations over 2D point sets, implementing spec.md L6/L7 on top of
// geom2d's validated value types and robust's adaptive predicates, over an
// index-based triangle list rather than subdivision's quad-edge mesh.
package triangulate

import (
	"github.com/arl/geom2d/geom2d"
	"github.com/arl/geom2d/robust"
	"github.com/aurelien-rainone/assertgo"
)

// Triangle is a CCW-ordered vertex triple.
type Triangle struct {
	A, B, C geom2d.Point
}

// directedEdge is an ordered pair of point indices, used while sweeping
// the Bowyer–Watson cavity boundary.
type directedEdge struct {
	u, v int
}

// Delaunay computes the Delaunay triangulation of points via incremental
// Bowyer–Watson (spec.md §4.6 option 1): enclose the input in a
// super-triangle sized from its bounding box (see superTriangle); for
// each point, collect every triangle whose circumcircle contains it,
// remove that cavity, and re-triangulate its boundary as a fan around the
// new point; finally drop every triangle touching a super-triangle vertex.
// Requires at least 3 non-collinear points.
func Delaunay(points []geom2d.Point) ([]Triangle, error) {
	tris, coords, _, err := delaunayIndexed(points)
	if err != nil {
		return nil, err
	}
	out := make([]Triangle, 0, len(tris))
	for _, t := range tris {
		out = append(out, Triangle{A: coords[t.a], B: coords[t.b], C: coords[t.c]})
	}
	return out, nil
}

// delaunayIndexed runs Bowyer–Watson and returns triangles as index
// triples into the first n entries of coords (coords also carries the 3
// super-triangle vertices at n, n+1, n+2, already stripped from the
// returned triIdx list). It is shared by Delaunay and ConstrainedDelaunay
// so both start from the exact same triangulation and index space.
func delaunayIndexed(points []geom2d.Point) (tris []triIdx, coords []geom2d.Point, n int, err error) {
	n = len(points)
	if n < 3 {
		return nil, nil, 0, newError("Delaunay", geom2d.ContourTooSmall)
	}

	coords = make([]geom2d.Point, n, n+3)
	copy(coords, points)

	st0, st1, st2 := superTriangle(points)
	coords = append(coords, st0, st1, st2)
	superA, superB, superC := n, n+1, n+2

	work := []triIdx{orientedTri(coords, superA, superB, superC)}
	for i := 0; i < n; i++ {
		work = insertPoint(coords, work, i)
	}

	tris = make([]triIdx, 0, len(work))
	for _, t := range work {
		if t.a >= n || t.b >= n || t.c >= n {
			continue
		}
		tris = append(tris, t)
	}

	hull := geom2d.ConvexHull(points)
	h := 0 // input points on the hull boundary, collinear ones included
	for _, p := range points {
		for i := 0; len(hull) >= 2 && i < len(hull); i++ {
			if geom2d.SegmentContains(geom2d.MustSegment(hull[i], hull[(i+1)%len(hull)]), p) {
				h++
				break
			}
		}
	}
	if want := 2*n - h - 2; len(tris) != want {
		assert.True(false,
			"triangle count must satisfy Euler's formula 2n-h-2: got %d triangles, n=%d, h=%d", len(tris), n, h)
		return nil, nil, 0, newError("Delaunay", geom2d.DegenerateMesh)
	}

	return tris, coords, n, nil
}

type triIdx struct{ a, b, c int }

// orientedTri returns a,b,c reordered so that the triple is CCW according
// to robust.OrientationDet.
func orientedTri(coords []geom2d.Point, a, b, c int) triIdx {
	pa, pb, pc := coords[a], coords[b], coords[c]
	if robust.SignOf(robust.OrientationDet(pa.X, pa.Y, pb.X, pb.Y, pc.X, pc.Y)) == robust.Clockwise {
		return triIdx{a, c, b}
	}
	return triIdx{a, b, c}
}

func insertPoint(coords []geom2d.Point, tris []triIdx, p int) []triIdx {
	bad := make([]bool, len(tris))
	anyBad := false
	for i, t := range tris {
		if inCircumcircle(coords, t, p) {
			bad[i] = true
			anyBad = true
		}
	}
	if !anyBad {
		// p coincides with, or is degenerate with, every existing
		// triangle's circumcircle boundary; nothing to do.
		return tris
	}

	edgeCount := make(map[directedEdge]int)
	for i, t := range tris {
		if !bad[i] {
			continue
		}
		edgeCount[directedEdge{t.a, t.b}]++
		edgeCount[directedEdge{t.b, t.c}]++
		edgeCount[directedEdge{t.c, t.a}]++
	}

	kept := tris[:0:0]
	for i, t := range tris {
		if !bad[i] {
			kept = append(kept, t)
		}
	}

	for e := range edgeCount {
		rev := directedEdge{e.v, e.u}
		if _, ok := edgeCount[rev]; ok {
			continue // interior edge shared by two bad triangles, not a boundary
		}
		kept = append(kept, triIdx{e.u, e.v, p})
	}
	return kept
}

func inCircumcircle(coords []geom2d.Point, t triIdx, p int) bool {
	a, b, c, d := coords[t.a], coords[t.b], coords[t.c], coords[p]
	return robust.InCircleDet(a.X, a.Y, b.X, b.Y, c.X, c.Y, d.X, d.Y) > 0
}

// superTriangle returns a triangle sized from the bounding box of points
// alone, rather than from a convex-hull seed triangulation's largest
// circumradius (spec.md §9's open question): with r = 20 times the larger
// of the box's width and height (20 if both are 0), its vertices are
// (cx-2r, cy-r), (cx, cy+2r) and (cx+2r, cy-r) around the box centre
// (cx, cy). It does not contain every Delaunay circumcircle of points in
// all cases, since a circumradius grows without bound as its triangle
// flattens; delaunayIndexed reports a result whose triangle count does not
// match Euler's formula as DegenerateMesh.
func superTriangle(points []geom2d.Point) (a, b, c geom2d.Point) {
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := points[0].X, points[0].Y
	for _, p := range points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	cx := (minX + maxX) / 2
	cy := (minY + maxY) / 2
	dx := maxX - minX
	dy := maxY - minY
	r := dx
	if dy > r {
		r = dy
	}
	if r == 0 {
		r = 1
	}
	r *= 20

	a = geom2d.MustPoint(cx-2*r, cy-r)
	b = geom2d.MustPoint(cx, cy+2*r)
	c = geom2d.MustPoint(cx+2*r, cy-r)
	return a, b, c
}
