package robust

// InCircleDet computes the sign of the determinant that is positive iff d
// lies strictly inside the circle through a, b, c (assuming a,b,c are in
// CCW order), zero when the four points are cocircular, negative when d is
// strictly outside. Adaptive three-stage predicate of spec.md L3
// "InCircle", ported from gon/robust/cocircular.py.
func InCircleDet[F Float](ax, ay, bx, by, cx, cy, dx, dy F) F {
	adx := ax - dx
	ady := ay - dy
	bdx := bx - dx
	bdy := by - dy
	cdx := cx - dx
	cdy := cy - dy

	aSq := adx*adx + ady*ady
	bSq := bdx*bdx + bdy*bdy
	cSq := cdx*cdx + cdy*cdy

	bdxcdy := bdx * cdy
	cdxbdy := cdx * bdy
	cdxady := cdx * ady
	adxcdy := adx * cdy
	adxbdy := adx * bdy
	bdxady := bdx * ady

	result := aSq*(bdxcdy-cdxbdy) + bSq*(cdxady-adxcdy) + cSq*(adxbdy-bdxady)

	upperBound := aSq*(fabs(bdxcdy)+fabs(cdxbdy)) +
		bSq*(fabs(cdxady)+fabs(adxcdy)) +
		cSq*(fabs(adxbdy)+fabs(bdxady))

	errBound := CocircularFirstError(upperBound)
	if result > errBound || -result > errBound {
		return result
	}
	return inCircleAdapt(ax, ay, bx, by, cx, cy, dx, dy, upperBound)
}

func crossProductExpansion[F Float](p, q, r, s, splitter F) Expansion[F] {
	pq, pqTail := TwoProduct(p, q, splitter)
	rs, rsTail := TwoProduct(r, s, splitter)
	x3, x2, x1, x0 := TwoTwoDiff(pq, pqTail, rs, rsTail)
	return Expansion[F]{x0, x1, x2, x3}
}

func multiplyBySquaredLength[F Float](e Expansion[F], dx, dy, splitter F) Expansion[F] {
	byDx := ScaleExpansion(ScaleExpansion(e, dx, splitter), dx, splitter)
	byDy := ScaleExpansion(ScaleExpansion(e, dy, splitter), dy, splitter)
	return SumExpansions(byDx, byDy)
}

func toSquaredLength[F Float](dx, dy, splitter F) Expansion[F] {
	dxSq, dxSqTail := Square(dx, splitter)
	dySq, dySqTail := Square(dy, splitter)
	x3, x2, x1, x0 := TwoTwoSum(dxSq, dxSqTail, dySq, dySqTail)
	return Expansion[F]{x0, x1, x2, x3}
}

func toSecondAddend[F Float](
	leftDx, leftDxTail, leftDy, leftDyTail,
	midDx, midDxTail, midDy, midDyTail,
	rightDx, rightDxTail, rightDy, rightDyTail F) F {
	return (leftDx*leftDx+leftDy*leftDy)*
		((midDx*rightDyTail+rightDy*midDxTail)-(midDy*rightDxTail+rightDx*midDyTail)) +
		2*(leftDx*leftDxTail+leftDy*leftDyTail)*(midDx*rightDy-midDy*rightDx)
}

func toCrossedTails[F Float](
	leftDx, leftDxTail, leftDy, leftDyTail,
	rightDx, rightDxTail, rightDy, rightDyTail, splitter F) (result, tail Expansion[F]) {
	a, aTail := TwoProduct(leftDxTail, rightDy, splitter)
	b, bTail := TwoProduct(leftDx, rightDyTail, splitter)
	c, cTail := TwoProduct(rightDxTail, -leftDy, splitter)
	d, dTail := TwoProduct(rightDx, -leftDyTail, splitter)

	x3, x2, x1, x0 := TwoTwoSum(a, aTail, b, bTail)
	left := Expansion[F]{x0, x1, x2, x3}
	y3, y2, y1, y0 := TwoTwoSum(c, cTail, d, dTail)
	right := Expansion[F]{y0, y1, y2, y3}
	result = SumExpansions(left, right)

	e, eTail := TwoProduct(leftDxTail, rightDyTail, splitter)
	f, fTail := TwoProduct(rightDxTail, leftDyTail, splitter)
	t3, t2, t1, t0 := TwoTwoDiff(e, eTail, f, fTail)
	tail = Expansion[F]{t0, t1, t2, t3}
	return result, tail
}

func inCircleAdapt[F Float](ax, ay, bx, by, cx, cy, dx, dy, upperBound F) F {
	_, splitter := epsilonSplitter[F]()

	adx := ax - dx
	ady := ay - dy
	bdx := bx - dx
	bdy := by - dy
	cdx := cx - dx
	cdy := cy - dy

	bc := crossProductExpansion(bdx, cdy, cdx, bdy, splitter)
	ca := crossProductExpansion(cdx, ady, adx, cdy, splitter)
	ab := crossProductExpansion(adx, bdy, bdx, ady, splitter)

	resultExpansion := SumExpansions(
		SumExpansions(multiplyBySquaredLength(bc, adx, ady, splitter),
			multiplyBySquaredLength(ca, bdx, bdy, splitter)),
		multiplyBySquaredLength(ab, cdx, cdy, splitter))
	var result F
	for _, c := range resultExpansion {
		result += c
	}

	errBound := CocircularSecondError(upperBound)
	if result >= errBound || -result >= errBound {
		return result
	}

	adxTail := TwoDiffTail(ax, dx, adx)
	adyTail := TwoDiffTail(ay, dy, ady)
	bdxTail := TwoDiffTail(bx, dx, bdx)
	bdyTail := TwoDiffTail(by, dy, bdy)
	cdxTail := TwoDiffTail(cx, dx, cdx)
	cdyTail := TwoDiffTail(cy, dy, cdy)

	if adxTail == 0 && adyTail == 0 && bdxTail == 0 && bdyTail == 0 &&
		cdxTail == 0 && cdyTail == 0 {
		return result
	}

	errBound = CocircularThirdError(upperBound) + DeterminantError(result)
	result += toSecondAddend(adx, adxTail, ady, adyTail, bdx, bdxTail, bdy, bdyTail,
		cdx, cdxTail, cdy, cdyTail) +
		toSecondAddend(bdx, bdxTail, bdy, bdyTail, cdx, cdxTail, cdy, cdyTail,
			adx, adxTail, ady, adyTail) +
		toSecondAddend(cdx, cdxTail, cdy, cdyTail, adx, adxTail, ady, adyTail,
			bdx, bdxTail, bdy, bdyTail)
	if result >= errBound || -result >= errBound {
		return result
	}

	var aLen, bLen, cLen Expansion[F]
	if bdxTail != 0 || bdyTail != 0 || cdxTail != 0 || cdyTail != 0 {
		aLen = toSquaredLength(adx, ady, splitter)
	} else {
		aLen = Expansion[F]{0}
	}
	if adxTail != 0 || adyTail != 0 || cdxTail != 0 || cdyTail != 0 {
		bLen = toSquaredLength(bdx, bdy, splitter)
	} else {
		bLen = Expansion[F]{0}
	}
	if adxTail != 0 || adyTail != 0 || bdxTail != 0 || bdyTail != 0 {
		cLen = toSquaredLength(cdx, cdy, splitter)
	} else {
		cLen = Expansion[F]{0}
	}

	accum := func(e Expansion[F]) {
		resultExpansion = SumExpansions(resultExpansion, e)
	}

	if adxTail != 0 {
		t := ScaleExpansion(bc, adxTail, splitter)
		accum(ScaleExpansion(t, 2*adx, splitter))
		accum(ScaleExpansion(ScaleExpansion(cLen, adxTail, splitter), bdy, splitter))
		accum(ScaleExpansion(ScaleExpansion(bLen, -adxTail, splitter), cdy, splitter))
	}
	if adyTail != 0 {
		t := ScaleExpansion(bc, adyTail, splitter)
		accum(ScaleExpansion(t, 2*ady, splitter))
		accum(ScaleExpansion(ScaleExpansion(bLen, adyTail, splitter), cdx, splitter))
		accum(ScaleExpansion(ScaleExpansion(cLen, -adyTail, splitter), bdx, splitter))
	}
	if bdxTail != 0 {
		t := ScaleExpansion(ca, bdxTail, splitter)
		accum(ScaleExpansion(t, 2*bdx, splitter))
		accum(ScaleExpansion(ScaleExpansion(aLen, bdxTail, splitter), cdy, splitter))
		accum(ScaleExpansion(ScaleExpansion(cLen, -bdxTail, splitter), ady, splitter))
	}
	if bdyTail != 0 {
		t := ScaleExpansion(ca, bdyTail, splitter)
		accum(ScaleExpansion(t, 2*bdy, splitter))
		accum(ScaleExpansion(ScaleExpansion(cLen, bdyTail, splitter), adx, splitter))
		accum(ScaleExpansion(ScaleExpansion(aLen, -bdyTail, splitter), cdx, splitter))
	}
	if cdxTail != 0 {
		t := ScaleExpansion(ab, cdxTail, splitter)
		accum(ScaleExpansion(t, 2*cdx, splitter))
		accum(ScaleExpansion(ScaleExpansion(bLen, cdxTail, splitter), ady, splitter))
		accum(ScaleExpansion(ScaleExpansion(aLen, -cdxTail, splitter), bdy, splitter))
	}
	if cdyTail != 0 {
		t := ScaleExpansion(ab, cdyTail, splitter)
		accum(ScaleExpansion(t, 2*cdy, splitter))
		accum(ScaleExpansion(ScaleExpansion(aLen, cdyTail, splitter), bdx, splitter))
		accum(ScaleExpansion(ScaleExpansion(bLen, -cdyTail, splitter), adx, splitter))
	}

	if adxTail != 0 || adyTail != 0 {
		var bct, bctt Expansion[F]
		if bdxTail != 0 || bdyTail != 0 || cdxTail != 0 || cdyTail != 0 {
			bct, bctt = toCrossedTails(bdx, bdxTail, bdy, bdyTail, cdx, cdxTail, cdy, cdyTail, splitter)
		} else {
			bct, bctt = Expansion[F]{0}, Expansion[F]{0}
		}
		if adxTail != 0 {
			t1 := ScaleExpansion(ScaleExpansion(bc, adxTail, splitter), adxTail, splitter)
			bctTimesAdxTail := ScaleExpansion(bct, adxTail, splitter)
			t2 := ScaleExpansion(bctTimesAdxTail, 2*adx, splitter)
			accum(SumExpansions(t1, t2))

			if bdyTail != 0 {
				accum(ScaleExpansion(ScaleExpansion(cLen, adxTail, splitter), bdyTail, splitter))
			}
			if cdyTail != 0 {
				accum(ScaleExpansion(ScaleExpansion(bLen, -adxTail, splitter), cdyTail, splitter))
			}

			t3 := ScaleExpansion(bctTimesAdxTail, adxTail, splitter)
			bcttTimesAdxTail := ScaleExpansion(bctt, adxTail, splitter)
			t4 := ScaleExpansion(bcttTimesAdxTail, 2*adx, splitter)
			t5 := ScaleExpansion(bcttTimesAdxTail, adxTail, splitter)
			accum(SumExpansions(t3, SumExpansions(t4, t5)))
		}
		if adyTail != 0 {
			t1 := ScaleExpansion(ScaleExpansion(bc, adyTail, splitter), adyTail, splitter)
			bctTimesAdyTail := ScaleExpansion(bct, adyTail, splitter)
			t2 := ScaleExpansion(bctTimesAdyTail, 2*ady, splitter)
			accum(SumExpansions(t1, t2))

			t3 := ScaleExpansion(bctTimesAdyTail, adyTail, splitter)
			bcttTimesAdyTail := ScaleExpansion(bctt, adyTail, splitter)
			t4 := ScaleExpansion(bcttTimesAdyTail, 2*ady, splitter)
			t5 := ScaleExpansion(bcttTimesAdyTail, adyTail, splitter)
			accum(SumExpansions(t3, SumExpansions(t4, t5)))
		}
	}

	if bdxTail != 0 || bdyTail != 0 {
		var cat, catt Expansion[F]
		if adxTail != 0 || adyTail != 0 || cdxTail != 0 || cdyTail != 0 {
			cat, catt = toCrossedTails(cdx, cdxTail, cdy, cdyTail, adx, adxTail, ady, adyTail, splitter)
		} else {
			cat, catt = Expansion[F]{0}, Expansion[F]{0}
		}
		if bdxTail != 0 {
			t1 := ScaleExpansion(ScaleExpansion(ca, bdxTail, splitter), bdxTail, splitter)
			catTimesBdxTail := ScaleExpansion(cat, bdxTail, splitter)
			t2 := ScaleExpansion(catTimesBdxTail, 2*bdx, splitter)
			accum(SumExpansions(t1, t2))

			if cdyTail != 0 {
				accum(ScaleExpansion(ScaleExpansion(aLen, bdxTail, splitter), cdyTail, splitter))
			}
			if adyTail != 0 {
				accum(ScaleExpansion(ScaleExpansion(cLen, -bdxTail, splitter), adyTail, splitter))
			}

			t3 := ScaleExpansion(catTimesBdxTail, bdxTail, splitter)
			cattTimesBdxTail := ScaleExpansion(catt, bdxTail, splitter)
			t4 := ScaleExpansion(cattTimesBdxTail, 2*bdx, splitter)
			t5 := ScaleExpansion(cattTimesBdxTail, bdxTail, splitter)
			accum(SumExpansions(t3, SumExpansions(t4, t5)))
		}
		if bdyTail != 0 {
			t1 := ScaleExpansion(ScaleExpansion(ca, bdyTail, splitter), bdyTail, splitter)
			catTimesBdyTail := ScaleExpansion(cat, bdyTail, splitter)
			t2 := ScaleExpansion(catTimesBdyTail, 2*bdy, splitter)
			accum(SumExpansions(t1, t2))

			t3 := ScaleExpansion(catTimesBdyTail, bdyTail, splitter)
			cattTimesBdyTail := ScaleExpansion(catt, bdyTail, splitter)
			t4 := ScaleExpansion(cattTimesBdyTail, 2*bdy, splitter)
			t5 := ScaleExpansion(cattTimesBdyTail, bdyTail, splitter)
			accum(SumExpansions(t3, SumExpansions(t4, t5)))
		}
	}

	if cdxTail != 0 || cdyTail != 0 {
		var abt, abtt Expansion[F]
		if adxTail != 0 || adyTail != 0 || bdxTail != 0 || bdyTail != 0 {
			abt, abtt = toCrossedTails(adx, adxTail, ady, adyTail, bdx, bdxTail, bdy, bdyTail, splitter)
		} else {
			abt, abtt = Expansion[F]{0}, Expansion[F]{0}
		}
		if cdxTail != 0 {
			t1 := ScaleExpansion(ScaleExpansion(ab, cdxTail, splitter), cdxTail, splitter)
			abtTimesCdxTail := ScaleExpansion(abt, cdxTail, splitter)
			t2 := ScaleExpansion(abtTimesCdxTail, 2*cdx, splitter)
			accum(SumExpansions(t1, t2))

			if adyTail != 0 {
				accum(ScaleExpansion(ScaleExpansion(bLen, cdxTail, splitter), adyTail, splitter))
			}
			if bdyTail != 0 {
				accum(ScaleExpansion(ScaleExpansion(aLen, -cdxTail, splitter), bdyTail, splitter))
			}

			t3 := ScaleExpansion(abtTimesCdxTail, cdxTail, splitter)
			abttTimesCdxTail := ScaleExpansion(abtt, cdxTail, splitter)
			t4 := ScaleExpansion(abttTimesCdxTail, 2*cdx, splitter)
			t5 := ScaleExpansion(abttTimesCdxTail, cdxTail, splitter)
			accum(SumExpansions(t3, SumExpansions(t4, t5)))
		}
		if cdyTail != 0 {
			t1 := ScaleExpansion(ScaleExpansion(ab, cdyTail, splitter), cdyTail, splitter)
			abtTimesCdyTail := ScaleExpansion(abt, cdyTail, splitter)
			t2 := ScaleExpansion(abtTimesCdyTail, 2*cdy, splitter)
			accum(SumExpansions(t1, t2))

			t3 := ScaleExpansion(abtTimesCdyTail, cdyTail, splitter)
			abttTimesCdyTail := ScaleExpansion(abtt, cdyTail, splitter)
			t4 := ScaleExpansion(abttTimesCdyTail, 2*cdy, splitter)
			t5 := ScaleExpansion(abttTimesCdyTail, cdyTail, splitter)
			accum(SumExpansions(t3, SumExpansions(t4, t5)))
		}
	}

	return resultExpansion.Value()
}
