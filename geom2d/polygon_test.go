package geom2d

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func hole() Contour {
	c, err := NewContour(
		MustPoint(2, 2), MustPoint(2, 4), MustPoint(4, 4), MustPoint(4, 2),
	)
	if err != nil {
		panic(err)
	}
	return c
}

func TestPolygonValidateAcceptsSquareWithHole(t *testing.T) {
	p := NewPolygon(square(), hole())
	assert.NoError(t, p.Validate())
}

func TestPolygonValidateRejectsHoleOutsideBorder(t *testing.T) {
	outsideHole, err := NewContour(MustPoint(10, 10), MustPoint(11, 10), MustPoint(11, 11))
	assert.NoError(t, err)
	p := NewPolygon(square(), outsideHole)
	verr := p.Validate()
	assert.Error(t, verr)
	var gerr *Error
	assert.ErrorAs(t, verr, &gerr)
	assert.Equal(t, HoleOutsideBorder, gerr.Kind)
}

func TestPolygonArea(t *testing.T) {
	p := NewPolygon(square(), hole())
	assert.Equal(t, 32.0, p.Area())
}

func TestPolygonContains(t *testing.T) {
	p := NewPolygon(square(), hole())
	assert.True(t, p.Contains(MustPoint(1, 1)))
	assert.False(t, p.Contains(MustPoint(3, 3)))
	assert.False(t, p.Contains(MustPoint(20, 20)))
}
