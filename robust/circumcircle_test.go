package robust

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCircumcircleCenterUnitCircle(t *testing.T) {
	cx, cy, rSq, ok := CircumcircleCenter(1.0, 0.0, 0.0, 1.0, -1.0, 0.0)
	assert.True(t, ok)
	assert.InDelta(t, 0.0, cx, 1e-9)
	assert.InDelta(t, 0.0, cy, 1e-9)
	assert.InDelta(t, 1.0, rSq, 1e-9)
}

func TestCircumcircleCenterCollinearIsDegenerate(t *testing.T) {
	_, _, _, ok := CircumcircleCenter(0.0, 0.0, 1.0, 1.0, 2.0, 2.0)
	assert.False(t, ok)
}

func TestInCircumcircleAgreesWithCenterForm(t *testing.T) {
	ax, ay := 1.0, 0.0
	bx, by := 0.0, 1.0
	cx, cy := -1.0, 0.0
	cx0, cy0, rSq, ok := CircumcircleCenter(ax, ay, bx, by, cx, cy)
	assert.True(t, ok)

	dx, dy := 0.2, 0.2
	distSq := (dx-cx0)*(dx-cx0) + (dy-cy0)*(dy-cy0)
	want := CounterClockwise
	if distSq > rSq {
		want = Clockwise
	}
	got := InCircumcircle(ax, ay, bx, by, cx, cy, dx, dy)
	assert.Equal(t, want, got)
	assert.True(t, math.Abs(distSq-rSq) > 1e-9, "test point should not be borderline")
}

func TestCircumcircleErrorBoundPositive(t *testing.T) {
	assert.True(t, CircumcircleErrorBound(10.0) > 0)
}
