package robust

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrientationRat(t *testing.T) {
	zero := RatFromInt64(0, 1)
	one := RatFromInt64(1, 1)
	got := OrientationRat(zero, zero, one, zero, zero, one)
	assert.Equal(t, CounterClockwise, got)

	got = OrientationRat(zero, zero, zero, one, one, zero)
	assert.Equal(t, Clockwise, got)

	two := RatFromInt64(2, 1)
	got = OrientationRat(zero, zero, one, one, two, two)
	assert.Equal(t, Collinear, got)
}

func TestInCircleRat(t *testing.T) {
	zero := RatFromInt64(0, 1)
	one := RatFromInt64(1, 1)
	negOne := RatFromInt64(-1, 1)

	inside := InCircleRat(one, zero, zero, one, negOne, zero, zero, zero)
	assert.True(t, inside > 0)

	ten := RatFromInt64(10, 1)
	outside := InCircleRat(one, zero, zero, one, negOne, zero, ten, ten)
	assert.True(t, outside < 0)

	onCircle := InCircleRat(one, zero, zero, one, negOne, zero, zero, negOne)
	assert.Equal(t, 0, onCircle)
}

func TestRatArithmetic(t *testing.T) {
	a := RatFromInt64(1, 2)
	b := RatFromInt64(1, 3)
	sum := a.Add(b)
	assert.InDelta(t, 5.0/6.0, sum.Float64(), 1e-12)
	assert.True(t, a.IsExact())
	assert.Equal(t, 1, a.Cmp(b))
	assert.Equal(t, -1, b.Cmp(a))
}
