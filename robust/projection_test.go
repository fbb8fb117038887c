package robust

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectionLengthMatchesDotProduct(t *testing.T) {
	ax, ay := 0.0, 0.0
	bx, by := 3.0, 0.0
	cx, cy := 5.0, 7.0
	got := ProjectionLength(ax, ay, bx, by, cx, cy)
	want := (bx-ax)*(cx-ax) + (by-ay)*(cy-ay)
	assert.InDelta(t, want, got, 1e-9)
}

func TestProjectionSign(t *testing.T) {
	// c projects well past b in the a->b direction: positive.
	assert.Equal(t, CounterClockwise, ProjectionSign(0.0, 0.0, 1.0, 0.0, 5.0, 0.0))
	// c is behind a: negative.
	assert.Equal(t, Clockwise, ProjectionSign(0.0, 0.0, 1.0, 0.0, -5.0, 0.0))
	// c projects exactly onto a.
	assert.Equal(t, Collinear, ProjectionSign(0.0, 0.0, 1.0, 0.0, 0.0, 3.0))
}
