package triangulate

import (
	"fmt"

	"github.com/arl/geom2d/geom2d"
)

// Classification marks a triangle as belonging to the bounded domain
// enclosed by a constrained Delaunay's constraint loops, or outside it
// (spec.md §4.7 step 3, SUPPLEMENTED as a standalone accessor per
// SPEC_FULL.md since TriangleKind is exposed as its own operation there).
type Classification int

const (
	Outer Classification = iota
	Inner
)

func (c Classification) String() string {
	if c == Inner {
		return "INNER"
	}
	return "OUTER"
}

// classify partitions every triangle of m into Inner/Outer by a parity
// flood-fill seeded at a triangle on the mesh's convex-hull boundary (Outer,
// or Inner when the hull edge it was found by is itself constrained) and
// propagated across shared edges, flipping state only when the shared edge
// is a member of constrained. This achieves the same INNER/OUTER partition
// as spec.md's boundary-orientation walk by a different, more direct route:
// any constraint set passed to ConstrainedDelaunay forms a set of closed
// loops (the border plus each hole), and crossing a closed loop's boundary
// an odd number of times toggles inside/outside by the Jordan curve
// argument regardless of which direction each loop winds — provided the
// constraint set really is a simple boundary. If it isn't, some triangle is
// reachable by two paths that disagree on its parity; that disagreement,
// and the absence of any convex-hull boundary edge to seed from in the
// first place, are the two ways classify detects spec.md §4.7's "impossible
// classification (non-simple boundary)" failure mode and reports
// geom2d.InvalidBoundary rather than silently guessing.
func classify(m *mesh, constrained map[undirectedEdge]bool) ([]Classification, error) {
	n := len(m.tris)
	if n == 0 {
		return nil, nil
	}
	result := make([]Classification, n)
	visited := make([]bool, n)

	seed := -1
	seedState := Outer
	for ti, t := range m.tris {
		for _, e := range t.edges() {
			key := canonicalEdge(e.u, e.v)
			if len(m.adjacency[key]) == 1 {
				seed = ti
				if constrained[key] {
					// crossing a constrained hull edge from the unbounded
					// outside enters the domain.
					seedState = Inner
				}
				break
			}
		}
		if seed >= 0 {
			break
		}
	}
	if seed < 0 {
		// every edge is shared by two triangles: there is no convex-hull
		// boundary edge to seed the flood fill from. Cannot happen for a
		// triangulation of a finite point set unless the constraint loops
		// fed to ConstrainedDelaunay don't form a simple boundary.
		return nil, newError("Classify", geom2d.InvalidBoundary)
	}

	queue := []int{seed}
	visited[seed] = true
	result[seed] = seedState

	for len(queue) > 0 {
		ti := queue[0]
		queue = queue[1:]
		t := m.tris[ti]
		state := result[ti]

		for _, e := range t.edges() {
			key := canonicalEdge(e.u, e.v)
			for _, nb := range m.adjacency[key] {
				if nb == ti {
					continue
				}
				want := state
				if constrained[key] {
					want = flip(state)
				}
				if visited[nb] {
					if result[nb] != want {
						// nb's parity depends on which path reached it
						// first: the constraint loops don't form a
						// consistent boundary.
						return nil, newError("Classify", geom2d.InvalidBoundary)
					}
					continue
				}
				visited[nb] = true
				result[nb] = want
				queue = append(queue, nb)
			}
		}
	}

	for i := range result {
		if !visited[i] {
			// a disconnected triangle, which a valid planar triangulation
			// of a single point set cannot produce.
			return nil, newError("Classify", geom2d.InvalidBoundary)
		}
	}
	return result, nil
}

// Classify partitions an already-built triangulation into Inner/Outer
// triangles against constraints, without re-running constraint insertion.
// This lets a caller that already has a full triangulation of a border plus
// several holes (e.g. from Delaunay over every contour's points at once)
// obtain the same Inner/Outer partition ConstrainedDelaunay applies
// internally, rather than re-deriving it by hand.
func Classify(tris []Triangle, constraints []geom2d.Segment) ([]Classification, error) {
	if len(tris) == 0 {
		return nil, nil
	}

	index := make(map[geom2d.Point]int)
	coords := make([]geom2d.Point, 0, len(tris)*3)
	idxOf := func(p geom2d.Point) int {
		if i, ok := index[p]; ok {
			return i
		}
		i := len(coords)
		index[p] = i
		coords = append(coords, p)
		return i
	}

	idxTris := make([]triIdx, len(tris))
	for i, t := range tris {
		idxTris[i] = triIdx{idxOf(t.A), idxOf(t.B), idxOf(t.C)}
	}

	constrainedEdges := make(map[undirectedEdge]bool, len(constraints))
	for _, c := range constraints {
		u, ok := index[c.A]
		if !ok {
			return nil, newErrorf("Classify", geom2d.InvalidConstraint,
				fmt.Errorf("constraint endpoint %v not found among triangle vertices", c.A))
		}
		v, ok := index[c.B]
		if !ok {
			return nil, newErrorf("Classify", geom2d.InvalidConstraint,
				fmt.Errorf("constraint endpoint %v not found among triangle vertices", c.B))
		}
		constrainedEdges[canonicalEdge(u, v)] = true
	}

	m := newMesh(idxTris)
	return classify(m, constrainedEdges)
}

func flip(c Classification) Classification {
	if c == Inner {
		return Outer
	}
	return Inner
}
