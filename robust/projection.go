package robust

// ProjectionLength computes the dot product (b-a)·(c-a): the signed length
// of the projection of (c-a) onto the direction of (b-a), scaled by |b-a|.
// It is kept as its own entry point because spec.md L3 lists "projection
// length" as a distinct predicate from "orientation". Ported from
// gon/robust/projection.py: it rotates (b-a) by 90° and evaluates the
// result with the same adaptive parallelogram-determinant machinery as
// OrientationDet.
func ProjectionLength[F Float](ax, ay, bx, by, cx, cy F) F {
	// Rotate (b-a) by -90° (clockwise): (dx,dy) -> (dy,-dx). Forming the
	// orientation determinant of a, the rotated point, and c then yields
	// the dot product of (b-a) with (c-a), i.e. the projection length
	// scaled by |b-a|.
	rbx := ax + (by - ay)
	rby := ay - (bx - ax)
	return OrientationDet(ax, ay, rbx, rby, cx, cy)
}

// ProjectionSign reports the sign of ProjectionLength: positive when c
// projects ahead of a in the direction from a to b, negative when it
// projects behind a, zero when c lies on the perpendicular to (b-a)
// through a.
func ProjectionSign[F Float](ax, ay, bx, by, cx, cy F) Orientation {
	return SignOf(ProjectionLength(ax, ay, bx, by, cx, cy))
}
