package robust

// Orientation is the classification returned by the sign of the
// orientation determinant.
type Orientation int

const (
	Clockwise Orientation = -1
	Collinear Orientation = 0
	CounterClockwise Orientation = 1
)

func (o Orientation) String() string {
	switch o {
	case Clockwise:
		return "CW"
	case CounterClockwise:
		return "CCW"
	default:
		return "COLLINEAR"
	}
}

// SignOf converts a predicate's signed magnitude into an Orientation.
func SignOf[F Float](v F) Orientation {
	switch {
	case v > 0:
		return CounterClockwise
	case v < 0:
		return Clockwise
	default:
		return Collinear
	}
}

// OrientationDet computes the signed area of the parallelogram spanned by
// (b-a) and (c-a): positive when a,b,c turn counter-clockwise, negative when
// clockwise, exactly zero when collinear. It is the adaptive three-stage
// predicate of spec.md L3 "Orientation", ported from
// gon/robust/counterclockwise.py (determinant/determinant_adapt).
func OrientationDet[F Float](ax, ay, bx, by, cx, cy F) F {
	acx := ax - cx
	bcx := bx - cx
	acy := ay - cy
	bcy := by - cy

	detLeft := acx * bcy
	detRight := acy * bcx
	det := detLeft - detRight

	var detSum F
	switch {
	case detLeft > 0:
		if detRight <= 0 {
			return det
		}
		detSum = detLeft + detRight
	case detLeft < 0:
		if detRight >= 0 {
			return det
		}
		detSum = -detLeft - detRight
	default:
		return det
	}

	errBound := SignedMeasureFirstError(detSum)
	if det >= errBound || -det >= errBound {
		return det
	}
	return orientationAdapt(ax, ay, bx, by, cx, cy, detSum)
}

func orientationAdapt[F Float](ax, ay, bx, by, cx, cy, detSum F) F {
	_, splitter := epsilonSplitter[F]()

	acx := ax - cx
	bcx := bx - cx
	acy := ay - cy
	bcy := by - cy

	detLeft, detLeftTail := TwoProduct(acx, bcy, splitter)
	detRight, detRightTail := TwoProduct(acy, bcx, splitter)

	b3, b2, b1, b0 := TwoTwoDiff(detLeft, detLeftTail, detRight, detRightTail)
	b := Expansion[F]{b0, b1, b2, b3}
	det := b0 + b1 + b2 + b3

	errBound := SignedMeasureSecondError(detSum)
	if det >= errBound || -det >= errBound {
		return det
	}

	acxTail := TwoDiffTail(ax, cx, acx)
	bcxTail := TwoDiffTail(bx, cx, bcx)
	acyTail := TwoDiffTail(ay, cy, acy)
	bcyTail := TwoDiffTail(by, cy, bcy)

	if acxTail == 0 && acyTail == 0 && bcxTail == 0 && bcyTail == 0 {
		return det
	}

	errBound = SignedMeasureThirdError(detSum) + DeterminantError(det)
	det += (acx*bcyTail + bcy*acxTail) - (acy*bcxTail + bcx*acyTail)
	if det >= errBound || -det >= errBound {
		return det
	}

	s1, s0 := TwoProduct(acxTail, bcy, splitter)
	t1, t0 := TwoProduct(acyTail, bcx, splitter)
	u3, u2, u1, u0 := TwoTwoDiff(s1, s0, t1, t0)
	u := Expansion[F]{u0, u1, u2, u3}
	c1 := SumExpansions(b, u)

	s1, s0 = TwoProduct(acx, bcyTail, splitter)
	t1, t0 = TwoProduct(acy, bcxTail, splitter)
	u3, u2, u1, u0 = TwoTwoDiff(s1, s0, t1, t0)
	u = Expansion[F]{u0, u1, u2, u3}
	c2 := SumExpansions(c1, u)

	s1, s0 = TwoProduct(acxTail, bcyTail, splitter)
	t1, t0 = TwoProduct(acyTail, bcxTail, splitter)
	u3, u2, u1, u0 = TwoTwoDiff(s1, s0, t1, t0)
	u = Expansion[F]{u0, u1, u2, u3}
	final := SumExpansions(c2, u)
	return final.Value()
}
