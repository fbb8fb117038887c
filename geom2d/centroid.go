package geom2d

// Centroid returns the area-weighted centroid of p's border, ignoring
// holes' contribution to the centroid location (an approximation
// documented rather than a hole-subtracted exact centroid, since the
// library's Non-goals exclude a general affine/moment toolkit — this is a
// supplemented convenience accessor, not part of the core predicate or
// triangulation engine).
func (p Polygon) Centroid() Point {
	return p.Border.Centroid()
}

// Perimeter returns the sum of the border's edge lengths plus every
// hole's.
func (p Polygon) Perimeter() float64 {
	total := p.Border.Perimeter()
	for _, h := range p.Holes {
		total += h.Perimeter()
	}
	return total
}
