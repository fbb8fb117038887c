package geom2d

import "math"

// Point is an ordered pair (x,y) of float64 coordinates. It is an
// immutable value type: both components are validated finite at
// construction (spec.md §3 "Invariant: both components are finite"),
// mirroring the teacher's construction-validates-finiteness pattern for
// NavMeshParams/MeshHeader fields.
type Point struct {
	X, Y float64
}

// NewPoint constructs a Point, rejecting NaN or infinite coordinates.
func NewPoint(x, y float64) (Point, error) {
	if !isFinite(x) || !isFinite(y) {
		return Point{}, newErrorf("NewPoint", InvalidCoordinate, "x=%v y=%v", x, y)
	}
	return Point{X: x, Y: y}, nil
}

// MustPoint is NewPoint, panicking on an invalid coordinate. It is meant
// for literal points known to be finite (e.g. constants in tests or CLI
// scenario parsing after its own validation layer already checked them).
func MustPoint(x, y float64) Point {
	p, err := NewPoint(x, y)
	if err != nil {
		panic(err)
	}
	return p
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Equal reports componentwise equality.
func (p Point) Equal(o Point) bool {
	return p.X == o.X && p.Y == o.Y
}

// Less implements the lexicographic order by x then y required by
// spec.md §3 ("ordering is lexicographic by x then y"), used by convex
// hull and Delaunay point sorting.
func (p Point) Less(o Point) bool {
	if p.X != o.X {
		return p.X < o.X
	}
	return p.Y < o.Y
}

// Sub returns the vector from o to p.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Add returns p translated by the vector v.
func (p Point) Add(v Point) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// DistanceSquared returns the squared Euclidean distance to o, avoiding a
// sqrt when only relative distance matters.
func (p Point) DistanceSquared(o Point) float64 {
	dx := p.X - o.X
	dy := p.Y - o.Y
	return dx*dx + dy*dy
}

// Distance returns the Euclidean distance to o.
func (p Point) Distance(o Point) float64 {
	return math.Sqrt(p.DistanceSquared(o))
}
