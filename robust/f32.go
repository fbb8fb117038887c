package robust

import (
	"github.com/aurelien-rainone/gogeo/f32/d3"
	"github.com/aurelien-rainone/math32"
)

// F32 is the float32 instantiation of Scalar; its Abs and ApproxEqual are
// backed by github.com/aurelien-rainone/math32. It exists so the "scalar
// type is a compile-time parameter" claim of Design Notes §9 is
// demonstrably true of more than one float width; geom2d itself works on
// plain float64, and robust's own tests exercise the float32 path through
// OrientationDet[float32]/InCircleDet[float32].
type F32 float32

func (v F32) Add(o F32) F32 { return v + o }
func (v F32) Sub(o F32) F32 { return v - o }
func (v F32) Mul(o F32) F32 { return v * o }
func (v F32) Div(o F32) F32 { return v / o }
func (v F32) Neg() F32      { return -v }
func (v F32) Abs() F32      { return F32(math32.Abs(float32(v))) }
func (v F32) Sign() int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
func (v F32) Cmp(o F32) int {
	switch {
	case v < o:
		return -1
	case v > o:
		return 1
	default:
		return 0
	}
}
func (v F32) Float64() float64 { return float64(v) }
func (v F32) IsExact() bool    { return false }

// ApproxEqual reports whether v and o are equal within float32's
// ulp-scaled tolerance, delegating to math32.Approx — useful for property
// tests that compare an F32 adaptive predicate against its F64 double-check
// without demanding bit-exact equality.
func (v F32) ApproxEqual(o F32) bool {
	return math32.Approx(float32(v), float32(o))
}

var _ Scalar[F32] = F32(0)

// f32BoundingBox is a 2D axis-aligned bounding box over F32 coordinates,
// backed directly by github.com/aurelien-rainone/gogeo/f32/d3's Rectangle
// with the z axis pinned to 0: d3.Rect already swaps out-of-order min/max
// on construction, so the 2D case only needs to project onto z=0 rather
// than reimplement that well-formedness logic. It is used only by
// robust's own tests (TestF32BoundingBox).
type f32BoundingBox struct {
	rect d3.Rectangle
}

func newF32BoundingBox(x0, y0, x1, y1 float32) f32BoundingBox {
	return f32BoundingBox{rect: d3.Rect(x0, y0, 0, x1, y1, 0)}
}

func (b f32BoundingBox) MinX() float32 { return b.rect.Min.X() }
func (b f32BoundingBox) MinY() float32 { return b.rect.Min.Y() }
func (b f32BoundingBox) MaxX() float32 { return b.rect.Max.X() }
func (b f32BoundingBox) MaxY() float32 { return b.rect.Max.Y() }

// contains reports whether (x,y) lies within b, inclusive of the boundary.
// d3.Rectangle.Contains treats Max as an exclusive bound (its 3D pixel-grid
// convention); the 2D geometric box here wants both ends inclusive, so this
// checks against Min/Max directly rather than delegating to it.
func (b f32BoundingBox) contains(x, y float32) bool {
	return x >= b.rect.Min.X() && x <= b.rect.Max.X() &&
		y >= b.rect.Min.Y() && y <= b.rect.Max.Y()
}
