package geom2d

import "github.com/arl/geom2d/robust"

// Segment is an unordered pair of distinct points. Two segments are equal
// iff they share the same endpoint set (spec.md §3), so Segment stores its
// endpoints in a canonical order (lexicographically smaller first) to make
// Equal a plain struct comparison.
type Segment struct {
	A, B Point
}

// NewSegment constructs a Segment, rejecting a==b (spec.md §3
// "Invariant: start ≠ end" maps to Kind DegenerateSegment).
func NewSegment(a, b Point) (Segment, error) {
	if a.Equal(b) {
		return Segment{}, newError("NewSegment", DegenerateSegment)
	}
	if a.Less(b) {
		return Segment{A: a, B: b}, nil
	}
	return Segment{A: b, B: a}, nil
}

// MustSegment is NewSegment, panicking on degenerate input.
func MustSegment(a, b Point) Segment {
	s, err := NewSegment(a, b)
	if err != nil {
		panic(err)
	}
	return s
}

// Equal reports whether s and o share the same endpoint set.
func (s Segment) Equal(o Segment) bool {
	return s.A.Equal(o.A) && s.B.Equal(o.B)
}

// Orientation returns the orientation of p relative to the directed line
// from s.A to s.B.
func (s Segment) Orientation(p Point) robust.Orientation {
	return robust.SignOf(robust.OrientationDet(s.A.X, s.A.Y, s.B.X, s.B.Y, p.X, p.Y))
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return s.A.Distance(s.B)
}

// BoundingBox returns the axis-aligned bounding box of the segment's two
// endpoints.
func (s Segment) BoundingBox() BoundingBox {
	return newBoundingBox(s.A, s.B)
}
