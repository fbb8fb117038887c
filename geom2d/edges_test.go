package geom2d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormsConvexPolygonSquare(t *testing.T) {
	c, err := NewContour(
		MustPoint(0, 0), MustPoint(4, 0), MustPoint(4, 4), MustPoint(0, 4),
	)
	require.NoError(t, err)
	assert.True(t, FormsConvexPolygon(c))
}

func TestFormsConvexPolygonRejectsReflexVertex(t *testing.T) {
	c, err := NewContour(
		MustPoint(0, 0), MustPoint(4, 0), MustPoint(2, 2), MustPoint(4, 4), MustPoint(0, 4),
	)
	require.NoError(t, err)
	assert.False(t, FormsConvexPolygon(c))
}

func TestFormsConvexPolygonRejectsTooFewVertices(t *testing.T) {
	c, err := NewContour(MustPoint(0, 0), MustPoint(1, 0))
	require.Error(t, err)
	assert.False(t, FormsConvexPolygon(c))
}

func TestTriangleAreaRightTriangle(t *testing.T) {
	a := MustPoint(0, 0)
	b := MustPoint(4, 0)
	c := MustPoint(0, 3)
	assert.InDelta(t, 6.0, TriangleArea(a, b, c), 1e-9)
	// order reversal flips the sign of the determinant but not the
	// unsigned area.
	assert.InDelta(t, 6.0, TriangleArea(a, c, b), 1e-9)
}

func TestTriangleAreaCollinearIsZero(t *testing.T) {
	a := MustPoint(0, 0)
	b := MustPoint(1, 1)
	c := MustPoint(2, 2)
	assert.InDelta(t, 0.0, TriangleArea(a, b, c), 1e-9)
}

func TestSignedProjectionLengthPastB(t *testing.T) {
	a := MustPoint(0, 0)
	b := MustPoint(1, 0)
	c := MustPoint(2, 0)
	assert.Greater(t, SignedProjectionLength(a, b, c), 0.0)
}

func TestSignedProjectionLengthShortOfA(t *testing.T) {
	a := MustPoint(0, 0)
	b := MustPoint(1, 0)
	c := MustPoint(-1, 0)
	assert.Less(t, SignedProjectionLength(a, b, c), 0.0)
}
