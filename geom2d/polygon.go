package geom2d

// Polygon is a border contour together with zero or more hole contours
// (spec.md §3). It is constructed without running Validate so callers can
// build intermediate polygons (e.g. while assembling CDT input) and defer
// the full check to one explicit call.
type Polygon struct {
	Border Contour
	Holes  []Contour
}

// NewPolygon constructs a Polygon from a border and holes, without
// validating containment or orientation; call Validate separately.
func NewPolygon(border Contour, holes ...Contour) Polygon {
	hs := make([]Contour, len(holes))
	copy(hs, holes)
	return Polygon{Border: border, Holes: hs}
}

// Normalized returns p with its border oriented CCW and every hole
// oriented CW, each rotated to its lexicographically minimal vertex
// (spec.md §3 "border orientation is CCW after normalization and holes
// CW").
func (p Polygon) Normalized() Polygon {
	border := p.Border.Normalized()
	holes := make([]Contour, len(p.Holes))
	for i, h := range p.Holes {
		holes[i] = h.NormalizedCW()
	}
	return Polygon{Border: border, Holes: holes}
}

// Area returns the polygon's area: the border's area minus every hole's
// area.
func (p Polygon) Area() float64 {
	area := abs(p.Border.SignedArea())
	for _, h := range p.Holes {
		area -= abs(h.SignedArea())
	}
	return area
}

// Contains reports whether pt lies inside the border and outside every
// hole.
func (p Polygon) Contains(pt Point) bool {
	if !PointInPolygon(p.Border, pt) {
		return false
	}
	for _, h := range p.Holes {
		if PointInPolygon(h, pt) {
			return false
		}
	}
	return true
}
