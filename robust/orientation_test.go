package robust

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrientationDetBasic(t *testing.T) {
	tests := []struct {
		name                   string
		ax, ay, bx, by, cx, cy float64
		want                   Orientation
	}{
		{"ccw unit triangle", 0, 0, 1, 0, 0, 1, CounterClockwise},
		{"cw unit triangle", 0, 0, 0, 1, 1, 0, Clockwise},
		{"collinear", 0, 0, 1, 1, 2, 2, Collinear},
		{"collinear reversed", 2, 2, 1, 1, 0, 0, Collinear},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SignOf(OrientationDet(tt.ax, tt.ay, tt.bx, tt.by, tt.cx, tt.cy))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOrientationDetNearDegenerate(t *testing.T) {
	// Points chosen so the naive float64 determinant rounds to exactly
	// zero or flips sign, but the true orientation is CCW with a tiny
	// positive margin. This is the classic adaptive-predicate stress case.
	ax, ay := 1.0, 1.0
	bx, by := 1.0+1e-10, 1.0+1e-10
	cx, cy := 1.0+2e-10, 1.0+2e-10+1e-16
	got := OrientationDet(ax, ay, bx, by, cx, cy)
	// Whatever the exact sign, it must be consistent under permutation
	// of a swap that negates orientation.
	swapped := OrientationDet(bx, by, ax, ay, cx, cy)
	if got > 0 {
		assert.True(t, swapped < 0 || swapped == 0)
	} else if got < 0 {
		assert.True(t, swapped > 0 || swapped == 0)
	} else {
		assert.Equal(t, float64(0), swapped)
	}
}

func TestOrientationDetAntisymmetry(t *testing.T) {
	ax, ay := 0.3, 0.7
	bx, by := 4.1, -2.2
	cx, cy := -1.5, 3.3
	det := OrientationDet(ax, ay, bx, by, cx, cy)
	swapped := OrientationDet(bx, by, ax, ay, cx, cy)
	assert.Equal(t, -det, swapped)
}

func TestOrientationDetF32(t *testing.T) {
	got := SignOf(OrientationDet[float32](0, 0, 1, 0, 0, 1))
	assert.Equal(t, CounterClockwise, got)
}

func TestOrientationString(t *testing.T) {
	assert.Equal(t, "CCW", CounterClockwise.String())
	assert.Equal(t, "CW", Clockwise.String())
	assert.Equal(t, "COLLINEAR", Collinear.String())
}
