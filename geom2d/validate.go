package geom2d

import "github.com/arl/geom2d/robust"

// Validate checks that c satisfies spec.md §4.8's Contour.validate()
// contract: at least 3 vertices, no collinear consecutive triple, and the
// closed polyline is simple (no edge crossings other than the shared
// vertex of consecutive edges).
func (c Contour) Validate() error {
	n := c.Len()
	if n < 3 {
		return newError("Contour.Validate", ContourTooSmall)
	}
	for i := 0; i < n; i++ {
		if c.VertexOrientation(i) == robust.Collinear {
			return newErrorf("Contour.Validate", CollinearConsecutive, "vertex %d", i)
		}
	}
	if EdgesIntersect(c.Edges()) {
		return newError("Contour.Validate", SelfIntersectingContour)
	}
	return nil
}

// PointInPolygon reports whether p lies strictly inside the simple contour
// c, using the standard ray-casting parity test. A point lying on one of
// c's edges (checked with SegmentContains) is reported as outside,
// matching the strict "inside" sense used by HoleOutsideBorder checks (a
// hole vertex lying exactly on the border would be a degenerate touch, not
// containment).
func PointInPolygon(c Contour, p Point) bool {
	for _, e := range c.Edges() {
		if SegmentContains(e, p) {
			return false
		}
	}
	n := c.Len()
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi := c.At(i)
		vj := c.At(j)
		if (vi.Y > p.Y) != (vj.Y > p.Y) {
			xCross := vj.X + (p.Y-vj.Y)/(vi.Y-vj.Y)*(vi.X-vj.X)
			if p.X < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

// ContourInContour reports whether inner lies entirely within outer: every
// vertex of inner is inside outer (via PointInPolygon on one vertex, per
// spec.md §4.8, is sufficient once we've also ruled out any edge crossing)
// and no edge of inner crosses any edge of outer.
func ContourInContour(inner, outer Contour) bool {
	if inner.Len() == 0 {
		return false
	}
	if !PointInPolygon(outer, inner.At(0)) {
		return false
	}
	return !edgeSetsCross(inner.Edges(), outer.Edges())
}

// edgeSetsCross reports whether any edge of a crosses or overlaps any edge
// of b (touches at a shared vertex are not considered crossings here, since
// a hole may legitimately touch the border at an isolated vertex per
// spec.md §3 "holes ... touch only at isolated points").
func edgeSetsCross(a, b []Segment) bool {
	for _, e1 := range a {
		for _, e2 := range b {
			switch SegmentsRelationship(e1, e2) {
			case Cross, Overlap:
				return true
			}
		}
	}
	return false
}

// Validate checks that p satisfies spec.md §4.8's Polygon.validate()
// contract: border and every hole are valid contours, each hole lies
// fully within the border, and holes are pairwise disjoint (or touch only
// at isolated points).
func (p Polygon) Validate() error {
	if err := p.Border.Validate(); err != nil {
		return err
	}
	for i, h := range p.Holes {
		if err := h.Validate(); err != nil {
			return err
		}
		if !ContourInContour(h, p.Border) {
			return newErrorf("Polygon.Validate", HoleOutsideBorder, "hole %d", i)
		}
	}
	for i := 0; i < len(p.Holes); i++ {
		for j := i + 1; j < len(p.Holes); j++ {
			if edgeSetsCross(p.Holes[i].Edges(), p.Holes[j].Edges()) ||
				ContourInContour(p.Holes[i], p.Holes[j]) || ContourInContour(p.Holes[j], p.Holes[i]) {
				return newErrorf("Polygon.Validate", HoleOutsideBorder, "holes %d and %d overlap", i, j)
			}
		}
	}
	return nil
}
