package robust

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEpsilonSplitterF64(t *testing.T) {
	eps, splitter := epsilonSplitter[float64]()
	assert.True(t, eps > 0)
	assert.True(t, splitter > 0)
	// 1+eps must round back to 1, by construction of computeEpsilonSplitter.
	assert.Equal(t, 1.0, 1.0+eps)
}

func TestEpsilonSplitterF32(t *testing.T) {
	eps, splitter := epsilonSplitter[float32]()
	assert.True(t, eps > 0)
	assert.True(t, splitter > 0)
}

func TestErrorBoundsMonotonic(t *testing.T) {
	assert.True(t, DeterminantError(2.0) > DeterminantError(1.0))
	assert.True(t, SignedMeasureFirstError(2.0) > SignedMeasureFirstError(1.0))
	assert.True(t, CocircularFirstError(2.0) > CocircularFirstError(1.0))
}
