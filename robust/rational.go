package robust

import "math/big"

// Rat is the exact-rational scalar kind (spec.md §1: "rationals are
// accepted as an input coordinate kind"). Arithmetic on *big.Rat is exact
// in real arithmetic, so predicates built on Rat never need adaptive
// refinement: stage 1 of OrientationRat/InCircleRat already returns the
// exact sign (spec.md §6, "Exact-rational coordinates short-circuit
// adaptive refinement: stage 1 suffices").
type Rat struct {
	v *big.Rat
}

// NewRat wraps r as a Rat scalar. r is not copied; callers must not mutate
// it afterwards.
func NewRat(r *big.Rat) Rat { return Rat{v: r} }

// RatFromInt64 builds an exact rational from an integer numerator and
// denominator.
func RatFromInt64(num, den int64) Rat { return Rat{v: big.NewRat(num, den)} }

func (v Rat) Add(o Rat) Rat { return Rat{v: new(big.Rat).Add(v.v, o.v)} }
func (v Rat) Sub(o Rat) Rat { return Rat{v: new(big.Rat).Sub(v.v, o.v)} }
func (v Rat) Mul(o Rat) Rat { return Rat{v: new(big.Rat).Mul(v.v, o.v)} }
func (v Rat) Div(o Rat) Rat { return Rat{v: new(big.Rat).Quo(v.v, o.v)} }
func (v Rat) Neg() Rat      { return Rat{v: new(big.Rat).Neg(v.v)} }
func (v Rat) Abs() Rat      { return Rat{v: new(big.Rat).Abs(v.v)} }
func (v Rat) Sign() int     { return v.v.Sign() }
func (v Rat) Cmp(o Rat) int { return v.v.Cmp(o.v) }
func (v Rat) Float64() float64 {
	f, _ := v.v.Float64()
	return f
}
func (v Rat) IsExact() bool { return true }

var _ Scalar[Rat] = Rat{}

// OrientationRat computes the exact sign of the parallelogram signed area
// of (b-a)x(c-a) over exact rational coordinates. Unlike OrientationDet,
// this never needs adaptive refinement: big.Rat arithmetic has no rounding
// error, so the single determinant evaluation below is already exact.
func OrientationRat(ax, ay, bx, by, cx, cy Rat) Orientation {
	acx := ax.Sub(cx)
	bcx := bx.Sub(cx)
	acy := ay.Sub(cy)
	bcy := by.Sub(cy)
	det := acx.Mul(bcy).Sub(acy.Mul(bcx))
	switch det.Sign() {
	case 1:
		return CounterClockwise
	case -1:
		return Clockwise
	default:
		return Collinear
	}
}

// InCircleRat computes the exact sign of the 4x4 in-circle determinant over
// exact rational coordinates, positive iff d lies strictly inside the
// circle through a, b, c (CCW). Exact: stage 1 only, see OrientationRat.
func InCircleRat(ax, ay, bx, by, cx, cy, dx, dy Rat) int {
	adx := ax.Sub(dx)
	ady := ay.Sub(dy)
	bdx := bx.Sub(dx)
	bdy := by.Sub(dy)
	cdx := cx.Sub(dx)
	cdy := cy.Sub(dy)

	aSq := adx.Mul(adx).Add(ady.Mul(ady))
	bSq := bdx.Mul(bdx).Add(bdy.Mul(bdy))
	cSq := cdx.Mul(cdx).Add(cdy.Mul(cdy))

	bdxcdy := bdx.Mul(cdy)
	cdxbdy := cdx.Mul(bdy)
	cdxady := cdx.Mul(ady)
	adxcdy := adx.Mul(cdy)
	adxbdy := adx.Mul(bdy)
	bdxady := bdx.Mul(ady)

	result := aSq.Mul(bdxcdy.Sub(cdxbdy)).
		Add(bSq.Mul(cdxady.Sub(adxcdy))).
		Add(cSq.Mul(adxbdy.Sub(bdxady)))
	return result.Sign()
}
