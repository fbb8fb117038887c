package geom2d

import "github.com/arl/geom2d/robust"

// Contour is a finite cyclic sequence of >=3 points forming a simple
// closed polyline (spec.md §3). Construction only checks the vertex count;
// call Validate for the full collinearity/self-intersection checks, kept
// separate because triangulation code builds intermediate contours (e.g.
// mesh boundary walks) that need not be validated on every step.
type Contour struct {
	verts []Point
}

// NewContour constructs a Contour from at least 3 points, in order. It
// does not by itself check collinearity or self-intersection; call
// Validate for that.
func NewContour(verts ...Point) (Contour, error) {
	if len(verts) < 3 {
		return Contour{}, newError("NewContour", ContourTooSmall)
	}
	cp := make([]Point, len(verts))
	copy(cp, verts)
	return Contour{verts: cp}, nil
}

// Vertices returns the contour's vertices in their stored order. The
// returned slice must not be mutated by callers.
func (c Contour) Vertices() []Point { return c.verts }

// Len returns the number of vertices.
func (c Contour) Len() int { return len(c.verts) }

// At returns the i-th vertex, indices taken modulo Len.
func (c Contour) At(i int) Point {
	n := len(c.verts)
	return c.verts[((i%n)+n)%n]
}

// Edges returns the contour's n edges (v[i], v[(i+1) mod n]) for all i
// (spec.md §4.4 "Edges enumeration").
func (c Contour) Edges() []Segment {
	n := len(c.verts)
	edges := make([]Segment, n)
	for i := 0; i < n; i++ {
		edges[i] = MustSegment(c.verts[i], c.verts[(i+1)%n])
	}
	return edges
}

// VertexOrientation returns the orientation of the consecutive triple
// centered at vertex i (spec.md §4.4 "Vertex-triple orientation").
func (c Contour) VertexOrientation(i int) robust.Orientation {
	prev := c.At(i - 1)
	cur := c.At(i)
	next := c.At(i + 1)
	return robust.SignOf(robust.OrientationDet(prev.X, prev.Y, cur.X, cur.Y, next.X, next.Y))
}

// SignedArea returns the signed area of the contour via the shoelace
// formula; positive for CCW orientation.
func (c Contour) SignedArea() float64 {
	n := len(c.verts)
	var sum float64
	for i := 0; i < n; i++ {
		a := c.verts[i]
		b := c.verts[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// Orientation returns the overall winding of the contour, derived from the
// sign of SignedArea.
func (c Contour) Orientation() robust.Orientation {
	area := c.SignedArea()
	switch {
	case area > 0:
		return robust.CounterClockwise
	case area < 0:
		return robust.Clockwise
	default:
		return robust.Collinear
	}
}

// Reversed returns the contour with its vertex order reversed (same shape,
// opposite winding).
func (c Contour) Reversed() Contour {
	n := len(c.verts)
	rev := make([]Point, n)
	for i, p := range c.verts {
		rev[n-1-i] = p
	}
	return Contour{verts: rev}
}

// minVertexIndex returns the index of the lexicographically minimal vertex.
func (c Contour) minVertexIndex() int {
	min := 0
	for i := 1; i < len(c.verts); i++ {
		if c.verts[i].Less(c.verts[min]) {
			min = i
		}
	}
	return min
}

// Normalized returns the contour rotated to start at its lexicographically
// minimal vertex and oriented counter-clockwise (spec.md §3 "A
// 'normalized' contour starts at its lexicographically minimal vertex and
// is oriented counter-clockwise").
func (c Contour) Normalized() Contour {
	return c.normalizedTo(robust.CounterClockwise)
}

// NormalizedCW is Normalized but orients the result clockwise, used to
// normalize polygon holes (spec.md §3 "holes CW").
func (c Contour) NormalizedCW() Contour {
	return c.normalizedTo(robust.Clockwise)
}

func (c Contour) normalizedTo(want robust.Orientation) Contour {
	cc := c
	if cc.Orientation() != want {
		cc = cc.Reversed()
	}
	start := cc.minVertexIndex()
	n := len(cc.verts)
	out := make([]Point, n)
	for i := 0; i < n; i++ {
		out[i] = cc.verts[(start+i)%n]
	}
	return Contour{verts: out}
}

// Equal reports whether c and o represent the same contour up to cyclic
// rotation and reversal (spec.md §3), by comparing normalized forms.
func (c Contour) Equal(o Contour) bool {
	if len(c.verts) != len(o.verts) {
		return false
	}
	nc := c.Normalized()
	no := o.Normalized()
	for i := range nc.verts {
		if !nc.verts[i].Equal(no.verts[i]) {
			return false
		}
	}
	return true
}

// BoundingBox returns the axis-aligned bounding box of the contour's
// vertices.
func (c Contour) BoundingBox() BoundingBox {
	return newBoundingBox(c.verts...)
}

// Perimeter returns the sum of the contour's edge lengths.
func (c Contour) Perimeter() float64 {
	var total float64
	for _, e := range c.Edges() {
		total += e.Length()
	}
	return total
}

// Centroid returns the area-weighted centroid of the contour (valid for
// simple polygons; undefined for self-intersecting ones).
func (c Contour) Centroid() Point {
	n := len(c.verts)
	var cx, cy, area float64
	for i := 0; i < n; i++ {
		a := c.verts[i]
		b := c.verts[(i+1)%n]
		cross := a.X*b.Y - b.X*a.Y
		area += cross
		cx += (a.X + b.X) * cross
		cy += (a.Y + b.Y) * cross
	}
	area /= 2
	if area == 0 {
		return c.verts[0]
	}
	return Point{X: cx / (6 * area), Y: cy / (6 * area)}
}
