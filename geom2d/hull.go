package geom2d

import (
	"sort"

	"github.com/arl/geom2d/robust"
)

// ConvexHull computes the convex hull of points via Andrew's monotone
// chain algorithm (spec.md §4.4): sort lexicographically, build the lower
// hull left-to-right and the upper hull right-to-left, rejecting any
// vertex for which the triple (prev-1, prev, new) is not strictly CCW.
// Exactly collinear points are dropped from the hull. Returns the hull
// vertices in CCW order, each appearing once.
func ConvexHull(points []Point) []Point {
	pts := make([]Point, len(points))
	copy(pts, points)
	sort.Slice(pts, func(i, j int) bool { return pts[i].Less(pts[j]) })

	// dedupe identical points so the hull's strict-CCW check never sees a
	// degenerate zero-length edge.
	pts = dedupePoints(pts)
	n := len(pts)
	if n < 3 {
		return pts
	}

	lower := buildChain(pts)
	upper := buildChain(reversedPoints(pts))

	// drop the last point of each half (it's the first of the other)
	hull := make([]Point, 0, len(lower)+len(upper)-2)
	hull = append(hull, lower[:len(lower)-1]...)
	hull = append(hull, upper[:len(upper)-1]...)
	return hull
}

func buildChain(pts []Point) []Point {
	chain := make([]Point, 0, len(pts))
	for _, p := range pts {
		for len(chain) >= 2 {
			a := chain[len(chain)-2]
			b := chain[len(chain)-1]
			if robust.SignOf(robust.OrientationDet(a.X, a.Y, b.X, b.Y, p.X, p.Y)) == robust.CounterClockwise {
				break
			}
			chain = chain[:len(chain)-1]
		}
		chain = append(chain, p)
	}
	return chain
}

func dedupePoints(sorted []Point) []Point {
	out := sorted[:0:0]
	for i, p := range sorted {
		if i == 0 || !p.Equal(sorted[i-1]) {
			out = append(out, p)
		}
	}
	return out
}

func reversedPoints(pts []Point) []Point {
	n := len(pts)
	out := make([]Point, n)
	for i, p := range pts {
		out[n-1-i] = p
	}
	return out
}
