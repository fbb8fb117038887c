package robust

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInCircleDetUnitCircle(t *testing.T) {
	// a,b,c on the unit circle CCW, d at origin is strictly inside.
	ax, ay := 1.0, 0.0
	bx, by := 0.0, 1.0
	cx, cy := -1.0, 0.0
	dInside := InCircleDet(ax, ay, bx, by, cx, cy, 0, 0)
	assert.True(t, dInside > 0, "origin should be strictly inside")

	dOutside := InCircleDet(ax, ay, bx, by, cx, cy, 10, 10)
	assert.True(t, dOutside < 0, "far point should be strictly outside")

	// fourth point also on the unit circle: cocircular, result exactly 0.
	dOn := InCircleDet(ax, ay, bx, by, cx, cy, 0, -1)
	assert.Equal(t, 0.0, dOn)
}

func TestInCircleDetAntisymmetricInD(t *testing.T) {
	ax, ay := 0.0, 0.0
	bx, by := 1.0, 0.0
	cx, cy := 0.0, 1.0
	in := InCircleDet(ax, ay, bx, by, cx, cy, 0.1, 0.1)
	out := InCircleDet(ax, ay, bx, by, cx, cy, 100, 100)
	assert.True(t, in > 0)
	assert.True(t, out < 0)
}

func TestInCircleDetNearDegenerate(t *testing.T) {
	// Four points very close to cocircular; adaptive refinement must
	// still agree with the big.Rat exact computation.
	ax, ay := 0.0, 0.0
	bx, by := 1.0, 0.0
	cx, cy := 0.0, 1.0
	// (1,1) lies on the circle through a, b, c; d sits one ulp above it.
	dx, dy := 1.0, 1.0+0x1p-52

	got := SignOf(InCircleDet(ax, ay, bx, by, cx, cy, dx, dy))

	want := InCircleRat(
		RatFromInt64(0, 1), RatFromInt64(0, 1),
		RatFromInt64(1, 1), RatFromInt64(0, 1),
		RatFromInt64(0, 1), RatFromInt64(1, 1),
		floatToRat(dx), floatToRat(dy),
	)
	assert.Equal(t, SignOf(float64(want)), got)
}

// floatToRat converts a float64 that has an exact binary representation
// (as all literals used in these tests do) into a Rat for cross-checking
// InCircleDet against the exact predicate.
func floatToRat(f float64) Rat {
	den := int64(1)
	for i := 0; i < 60 && f != math.Trunc(f); i++ {
		f *= 2
		den *= 2
	}
	return RatFromInt64(int64(f), den)
}

func TestInCircleDetF32(t *testing.T) {
	got := InCircleDet[float32](1, 0, 0, 1, -1, 0, 0, 0)
	assert.True(t, got > 0)
}
