package robust

// Float is the set of IEEE-754 binary floating-point kinds the expansion
// arithmetic in this file is generic over. Adaptive refinement only ever
// needs float32 or float64; robust.Rat (see rational.go) short-circuits
// before any of these primitives are reached.
type Float interface {
	~float32 | ~float64
}

// Expansion is a non-overlapping sequence of components, ordered from
// least to most significant in magnitude, whose exact sum (in real
// arithmetic) equals the represented value. A zero-valued expansion is
// represented as a single zero component, never an empty slice.
type Expansion[F Float] []F

// Value returns the best floating-point approximation of the expansion,
// i.e. its most significant component.
func (e Expansion[F]) Value() F {
	if len(e) == 0 {
		return 0
	}
	return e[len(e)-1]
}

// TwoSum computes s = round(a+b) and the exact rounding error e, such that
// a+b = s+e in real arithmetic. Valid for any a, b.
func TwoSum[F Float](a, b F) (s, e F) {
	s = a + b
	bVirtual := s - a
	aVirtual := s - bVirtual
	bRoundoff := b - bVirtual
	aRoundoff := a - aVirtual
	e = aRoundoff + bRoundoff
	return s, e
}

// FastTwoSum is TwoSum's cheaper variant, valid only when |a| >= |b|.
func FastTwoSum[F Float](a, b F) (s, e F) {
	s = a + b
	bVirtual := s - a
	e = b - bVirtual
	return s, e
}

// TwoDiff computes d = round(a-b) and the exact rounding error e, such that
// a-b = d+e in real arithmetic.
func TwoDiff[F Float](a, b F) (d, e F) {
	d = a - b
	e = TwoDiffTail(a, b, d)
	return d, e
}

// TwoDiffTail recovers the rounding error of a precomputed d = a-b.
func TwoDiffTail[F Float](a, b, d F) F {
	bVirtual := a - d
	aVirtual := d + bVirtual
	bRoundoff := bVirtual - b
	aRoundoff := a - aVirtual
	return aRoundoff + bRoundoff
}

// Split decomposes a into two halves a_lo, a_hi of p/2 significand bits
// each (a_lo+a_hi == a exactly), using the given splitter constant
// (2^ceil(p/2)+1, see bounds.go).
func Split[F Float](a, splitter F) (lo, hi F) {
	c := splitter * a
	hi = c - (c - a)
	lo = a - hi
	return lo, hi
}

// TwoProduct computes p = round(a*b) and the exact rounding error e, such
// that a*b = p+e in real arithmetic.
func TwoProduct[F Float](a, b, splitter F) (p, e F) {
	p = a * b
	aLo, aHi := Split(a, splitter)
	bLo, bHi := Split(b, splitter)
	err1 := p - aHi*bHi
	err2 := err1 - aLo*bHi
	err3 := err2 - aHi*bLo
	e = aLo*bLo - err3
	return p, e
}

// twoProductPresplit is TwoProduct specialized for a right operand whose
// split is already known, avoiding repeated Split calls when the same
// scalar is multiplied against many expansion components (see
// ScaleExpansion).
func twoProductPresplit[F Float](a, b, bLo, bHi, splitter F) (p, e F) {
	p = a * b
	aLo, aHi := Split(a, splitter)
	err1 := p - aHi*bHi
	err2 := err1 - aLo*bHi
	err3 := err2 - aHi*bLo
	e = aLo*bLo - err3
	return p, e
}

// Square computes p = round(a*a) and the exact rounding error e.
func Square[F Float](a, splitter F) (p, e F) {
	p = a * a
	aLo, aHi := Split(a, splitter)
	err1 := p - aHi*aHi
	err2 := err1 - (aHi+aHi)*aLo
	e = aLo*aLo - err2
	return p, e
}

// TwoOneSum builds the 3-component expansion of (a1+a0)+b.
func TwoOneSum[F Float](a1, a0, b F) (x2, x1, x0 F) {
	i, x0 := TwoSum(a0, b)
	x2, x1 = TwoSum(a1, i)
	return x2, x1, x0
}

// TwoOneDiff builds the 3-component expansion of (a1+a0)-b.
func TwoOneDiff[F Float](a1, a0, b F) (x2, x1, x0 F) {
	i, x0 := TwoDiff(a0, b)
	x2, x1 = TwoSum(a1, i)
	return x2, x1, x0
}

// TwoTwoSum builds the 4-component expansion of (a1+a0)+(b1+b0).
func TwoTwoSum[F Float](a1, a0, b1, b0 F) (x3, x2, x1, x0 F) {
	j, z1, x0 := TwoOneSum(a1, a0, b0)
	x3, x2, x1 = TwoOneSum(j, z1, b1)
	return x3, x2, x1, x0
}

// TwoTwoDiff builds the 4-component expansion of (a1+a0)-(b1+b0).
func TwoTwoDiff[F Float](a1, a0, b1, b0 F) (x3, x2, x1, x0 F) {
	j, z1, x0 := TwoOneDiff(a1, a0, b0)
	x3, x2, x1 = TwoOneDiff(j, z1, b1)
	return x3, x2, x1, x0
}

// SumExpansions merges two non-overlapping expansions into a single
// non-overlapping expansion equal to their exact sum, dropping exact-zero
// components (a lone zero is kept when the result is itself zero).
func SumExpansions[F Float](e, f Expansion[F]) Expansion[F] {
	eLen, fLen := len(e), len(f)
	ei, fi := 0, 0
	eVal, fVal := e[0], f[0]

	var acc F
	if sameMagnitudeOrder(fVal, eVal) {
		acc = eVal
		ei++
		if ei < eLen {
			eVal = e[ei]
		}
	} else {
		acc = fVal
		fi++
		if fi < fLen {
			fVal = f[fi]
		}
	}

	result := make(Expansion[F], 0, eLen+fLen)
	if ei < eLen && fi < fLen {
		var tail F
		if sameMagnitudeOrder(fVal, eVal) {
			acc, tail = FastTwoSum(eVal, acc)
			ei++
			if ei < eLen {
				eVal = e[ei]
			}
		} else {
			acc, tail = FastTwoSum(fVal, acc)
			fi++
			if fi < fLen {
				fVal = f[fi]
			}
		}
		if tail != 0 {
			result = append(result, tail)
		}
		for ei < eLen && fi < fLen {
			if sameMagnitudeOrder(fVal, eVal) {
				acc, tail = TwoSum(acc, eVal)
				ei++
				if ei < eLen {
					eVal = e[ei]
				}
			} else {
				acc, tail = TwoSum(acc, fVal)
				fi++
				if fi < fLen {
					fVal = f[fi]
				}
			}
			if tail != 0 {
				result = append(result, tail)
			}
		}
	}
	for ei < eLen {
		var tail F
		acc, tail = TwoSum(acc, eVal)
		ei++
		if ei < eLen {
			eVal = e[ei]
		}
		if tail != 0 {
			result = append(result, tail)
		}
	}
	for fi < fLen {
		var tail F
		acc, tail = TwoSum(acc, fVal)
		fi++
		if fi < fLen {
			fVal = f[fi]
		}
		if tail != 0 {
			result = append(result, tail)
		}
	}
	if acc != 0 || len(result) == 0 {
		result = append(result, acc)
	}
	return result
}

// ScaleExpansion multiplies an expansion by a scalar, returning a
// non-overlapping expansion equal to their exact product.
func ScaleExpansion[F Float](e Expansion[F], s, splitter F) Expansion[F] {
	sLo, sHi := Split(s, splitter)
	acc, tail := twoProductPresplit(e[0], s, sLo, sHi, splitter)

	result := make(Expansion[F], 0, 2*len(e))
	if tail != 0 {
		result = append(result, tail)
	}
	for _, component := range e[1:] {
		product, productTail := twoProductPresplit(component, s, sLo, sHi, splitter)
		interim, t := TwoSum(acc, productTail)
		if t != 0 {
			result = append(result, t)
		}
		acc, t = FastTwoSum(product, interim)
		if t != 0 {
			result = append(result, t)
		}
	}
	if acc != 0 || len(result) == 0 {
		result = append(result, acc)
	}
	return result
}

// sameMagnitudeOrder reports whether a's exact sign-respecting magnitude
// comparison against b matches the order used by Shewchuk's expansion-sum
// merge: it picks whichever of a, b has the smaller magnitude first,
// implemented without calling Abs so it is branch-cheap for the common case.
func sameMagnitudeOrder[F Float](a, b F) bool {
	return (a > b) == (a > -b)
}
