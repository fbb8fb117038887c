package geom2d

import "github.com/arl/geom2d/robust"

// SegmentRelationship classifies how two segments relate (spec.md §4.4).
type SegmentRelationship int

const (
	Disjoint SegmentRelationship = iota
	Touch                        // meet at one point that is an endpoint of at least one of them
	Cross                        // proper interior crossing
	Overlap                      // collinear and overlapping along the shared line
)

func (r SegmentRelationship) String() string {
	switch r {
	case Disjoint:
		return "DISJOINT"
	case Touch:
		return "TOUCH"
	case Cross:
		return "CROSS"
	case Overlap:
		return "OVERLAP"
	default:
		return "UNKNOWN"
	}
}

// SegmentContains reports whether p lies on segment s: bounding-box test
// plus Orientation==COLLINEAR (spec.md §4.4 "Segment-point containment").
func SegmentContains(s Segment, p Point) bool {
	if s.Orientation(p) != robust.Collinear {
		return false
	}
	return s.BoundingBox().Contains(p)
}

// SegmentsRelationship classifies the relationship between s1 and s2 using
// the standard four-orientation test, with the collinear subcase resolved
// by interval overlap along the shared line (spec.md §4.4).
func SegmentsRelationship(s1, s2 Segment) SegmentRelationship {
	o1 := s1.Orientation(s2.A)
	o2 := s1.Orientation(s2.B)
	o3 := s2.Orientation(s1.A)
	o4 := s2.Orientation(s1.B)

	if o1 != robust.Collinear && o2 != robust.Collinear && o3 != robust.Collinear && o4 != robust.Collinear {
		if o1 != o2 && o3 != o4 {
			return Cross
		}
		return Disjoint
	}

	// At least one orientation is collinear: a shared endpoint, a
	// T-touch, or full collinear overlap.
	if o1 == robust.Collinear && o2 == robust.Collinear && o3 == robust.Collinear && o4 == robust.Collinear {
		return collinearRelationship(s1, s2)
	}

	// Exactly one endpoint of one segment lies on the other: a touch, as
	// long as the general-position orientations that remain are still
	// consistent with a genuine crossing-at-a-vertex rather than overlap.
	if endpointShared(s1, s2) {
		return Touch
	}
	if o1 == robust.Collinear && SegmentContains(s1, s2.A) {
		return Touch
	}
	if o2 == robust.Collinear && SegmentContains(s1, s2.B) {
		return Touch
	}
	if o3 == robust.Collinear && SegmentContains(s2, s1.A) {
		return Touch
	}
	if o4 == robust.Collinear && SegmentContains(s2, s1.B) {
		return Touch
	}
	return Disjoint
}

func endpointShared(s1, s2 Segment) bool {
	return s1.A.Equal(s2.A) || s1.A.Equal(s2.B) || s1.B.Equal(s2.A) || s1.B.Equal(s2.B)
}

// collinearRelationship resolves the case where all four cross-orientations
// are zero: s1 and s2 lie on the same line. It projects both segments onto
// whichever axis has greater extent and compares intervals.
func collinearRelationship(s1, s2 Segment) SegmentRelationship {
	useX := abs(s1.B.X-s1.A.X) >= abs(s1.B.Y-s1.A.Y)

	coord := func(p Point) float64 {
		if useX {
			return p.X
		}
		return p.Y
	}

	a0, a1 := coord(s1.A), coord(s1.B)
	if a0 > a1 {
		a0, a1 = a1, a0
	}
	b0, b1 := coord(s2.A), coord(s2.B)
	if b0 > b1 {
		b0, b1 = b1, b0
	}

	if a1 < b0 || b1 < a0 {
		return Disjoint
	}
	if a1 == b0 || b1 == a0 {
		return Touch
	}
	return Overlap
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
