package robust

// Scalar is the compile-time coordinate abstraction referenced by Design
// Notes §9: "where the core does need to dispatch on point kind, use a
// compile-time scalar-type abstraction, not runtime polymorphism". It is
// satisfied by F64 (see below), F32 (f32.go) and Rat (rational.go) so that
// a caller can pick the coordinate kind as a type parameter instead of
// through an interface dispatched at every arithmetic operation — the hot
// adaptive-predicate path (OrientationDet, InCircleDet) still operates
// directly on raw float32/float64 for speed and never goes through this
// interface; Scalar exists for the outer, non-hot-path numeric contract of
// spec.md §6 ("predicates must accept both uniformly via a scalar-type
// abstraction").
type Scalar[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	Neg() T
	Cmp(T) int
	Sign() int
	Abs() T
	Float64() float64
	// IsExact reports whether arithmetic on this kind is exact in real
	// arithmetic (true for Rat, false for F64/F32) — exact kinds never
	// need adaptive refinement beyond stage 1.
	IsExact() bool
}

// F64 is the float64 scalar kind, the machine-floating-point branch of
// Scalar. geom2d itself works on plain float64 values, not on F64.
type F64 float64

func (v F64) Add(o F64) F64 { return v + o }
func (v F64) Sub(o F64) F64 { return v - o }
func (v F64) Mul(o F64) F64 { return v * o }
func (v F64) Div(o F64) F64 { return v / o }
func (v F64) Neg() F64      { return -v }
func (v F64) Abs() F64 {
	if v < 0 {
		return -v
	}
	return v
}
func (v F64) Sign() int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
func (v F64) Cmp(o F64) int {
	switch {
	case v < o:
		return -1
	case v > o:
		return 1
	default:
		return 0
	}
}
func (v F64) Float64() float64 { return float64(v) }
func (v F64) IsExact() bool    { return false }

var _ Scalar[F64] = F64(0)
