package subdivision

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigatorsConsistency(t *testing.T) {
	a := NewArena()
	e := a.MakeEdge(0, 1)

	assert.Equal(t, e, a.Oprev(e))
	assert.Equal(t, e, a.Dnext(e))
	assert.Equal(t, e, a.Dprev(e))
	assert.Equal(t, a.Sym(e), a.Lprev(e))
	assert.Equal(t, a.Sym(e), a.Rprev(e))
}

func TestNullHandles(t *testing.T) {
	assert.Equal(t, EdgeHandle(-1), NullEdge)
	assert.Equal(t, VertexID(-1), NullVertex)
}
