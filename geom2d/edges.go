package geom2d

import "github.com/arl/geom2d/robust"

// FormsConvexPolygon reports whether every consecutive vertex-triple
// orientation of c agrees (all CCW or all CW), i.e. whether the contour's
// polyline bounds a convex region (spec.md §4.4).
func FormsConvexPolygon(c Contour) bool {
	n := c.Len()
	if n < 3 {
		return false
	}
	var sign robust.Orientation
	for i := 0; i < n; i++ {
		o := c.VertexOrientation(i)
		if o == robust.Collinear {
			continue
		}
		if sign == robust.Collinear {
			sign = o
			continue
		}
		if o != sign {
			return false
		}
	}
	return sign != robust.Collinear
}

// TriangleArea returns the unsigned area of triangle a,b,c, computed from
// robust.OrientationDet (twice the signed area, halved and made positive)
// so callers get an exact-predicate-backed area without reaching into
// robust themselves.
func TriangleArea(a, b, c Point) float64 {
	signed := robust.OrientationDet(a.X, a.Y, b.X, b.Y, c.X, c.Y)
	if signed < 0 {
		signed = -signed
	}
	return signed / 2
}

// SignedProjectionLength returns the dot product (b-a)·(c-a), the signed
// length of the projection of (c-a) onto the direction of (b-a) scaled by
// |b-a|: positive when c projects ahead of a toward b, negative when it
// projects behind a, per robust.ProjectionLength.
func SignedProjectionLength(a, b, c Point) float64 {
	return robust.ProjectionLength(a.X, a.Y, b.X, b.Y, c.X, c.Y)
}
