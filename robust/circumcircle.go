package robust

// CircumcircleCenter computes the center and squared radius of the circle
// through three non-collinear points a, b, c. It is a plain (non-adaptive)
// convenience built on top of the same squared-length/cross-product
// algebra as InCircleDet, grounded on gon/robust/circumcircle.py and on the
// teacher's own non-adaptive analogue recast/meshdetail.go:circumCircle
// (which solves the same system for mesh-quality diagnostics, without
// needing exactness since it only feeds a heuristic). Callers that need
// the exact sign of "is d inside the circumcircle of a,b,c" should use
// InCircleDet directly instead of comparing against this center/radius.
func CircumcircleCenter[F Float](ax, ay, bx, by, cx, cy F) (cx0, cy0, rSq F, ok bool) {
	adx := ax - cx
	ady := ay - cy
	bdx := bx - cx
	bdy := by - cy

	det := adx*bdy - ady*bdx
	if det == 0 {
		return 0, 0, 0, false
	}

	aSq := adx*adx + ady*ady
	bSq := bdx*bdx + bdy*bdy

	ux := (bdy*aSq - ady*bSq) / (2 * det)
	uy := (adx*bSq - bdx*aSq) / (2 * det)

	cx0 = cx + ux
	cy0 = cy + uy
	rSq = ux*ux + uy*uy
	return cx0, cy0, rSq, true
}

// CircumcircleErrorBound returns the adaptive error bound for a
// circumcircle-center evaluation at the given coordinate magnitudes,
// combining the three per-axis error coefficients of bounds.go
// (CircumcircleErrorA/B/C) the way gon's circumcircle module derives a
// single conservative bound from its three partial determinants.
func CircumcircleErrorBound[F Float](upperBound F) F {
	a := CircumcircleErrorA(upperBound)
	b := CircumcircleErrorB(upperBound)
	c := CircumcircleErrorC(upperBound)
	max := a
	if b > max {
		max = b
	}
	if c > max {
		max = c
	}
	return max
}

// InCircumcircle reports whether d lies strictly inside the circle through
// a, b, c, using the exact adaptive InCircleDet predicate rather than the
// center/radius form above (which is only a diagnostic convenience and can
// lose precision near-degenerately). Positive InCircleDet means inside
// when a,b,c are CCW.
func InCircumcircle[F Float](ax, ay, bx, by, cx, cy, dx, dy F) Orientation {
	return SignOf(InCircleDet(ax, ay, bx, by, cx, cy, dx, dy))
}
