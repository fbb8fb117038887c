package subdivision

import "github.com/aurelien-rainone/assertgo"

// MakeEdge creates an isolated undirected edge from vertex from to vertex
// to: both its face-duals form the single unbounded face, and its two
// vertex-rings each contain only itself (spec.md §4.5). It returns the
// handle of the directed half-edge whose origin is from.
func (a *Arena) MakeEdge(from, to VertexID) EdgeHandle {
	var base EdgeHandle
	if n := len(a.free); n > 0 {
		base = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		base = EdgeHandle(len(a.edges))
		a.edges = append(a.edges, make([]edgeRecord, 4)...)
	}

	e0, e1, e2, e3 := base, base+1, base+2, base+3
	a.edges[e0] = edgeRecord{onext: e0, orig: from}
	a.edges[e1] = edgeRecord{onext: e3, orig: NullVertex}
	a.edges[e2] = edgeRecord{onext: e2, orig: to}
	a.edges[e3] = edgeRecord{onext: e1, orig: NullVertex}

	assert.True(a.Rot(a.Rot(a.Rot(a.Rot(e0)))) == e0, "rot^4 must be identity after MakeEdge")
	return e0
}

// Splice swaps the onext pointers of a and b, and of their duals. Per
// Guibas–Stolfi this single primitive either merges two previously
// disjoint vertex-rings into one, or splits one ring into two — which of
// the two happens depends only on whether a and b were already in the
// same ring (spec.md §4.5).
func (ar *Arena) Splice(a, b EdgeHandle) {
	alpha := ar.Rot(ar.Onext(a))
	beta := ar.Rot(ar.Onext(b))

	aOnext := ar.Onext(a)
	bOnext := ar.Onext(b)
	alphaOnext := ar.Onext(alpha)
	betaOnext := ar.Onext(beta)

	ar.edges[a].onext = bOnext
	ar.edges[b].onext = aOnext
	ar.edges[alpha].onext = betaOnext
	ar.edges[beta].onext = alphaOnext
}

// Connect creates a new edge from e1's destination to e2's origin, splices
// it into both rings so that the new edge shares e1's left face and e2's
// left face, and returns it (spec.md §4.5).
func (ar *Arena) Connect(e1, e2 EdgeHandle) EdgeHandle {
	e := ar.MakeEdge(ar.Dest(e1), ar.Org(e2))
	ar.Splice(e, ar.Lnext(e1))
	ar.Splice(ar.Sym(e), e2)
	return e
}

// Delete splices e out of both of its vertex-rings, then returns its four
// records to the free list (spec.md §4.5). Callers must not use e or any
// handle derived from it afterwards.
func (ar *Arena) Delete(e EdgeHandle) {
	ar.Splice(e, ar.Oprev(e))
	ar.Splice(ar.Sym(e), ar.Oprev(ar.Sym(e)))
	ar.free = append(ar.free, ringBase(e))
}

// Swap rotates e to the other diagonal of the quadrilateral formed by its
// two incident triangles (valid only when both are real triangles, i.e.
// e lies strictly in the triangulated interior). Implemented as the fixed
// four-Splice sequence of Guibas–Stolfi plus updating e's two endpoints to
// the quadrilateral's other diagonal (spec.md §4.5).
func (ar *Arena) Swap(e EdgeHandle) {
	a := ar.Oprev(e)
	b := ar.Oprev(ar.Sym(e))

	ar.Splice(e, a)
	ar.Splice(ar.Sym(e), b)
	ar.Splice(e, ar.Lnext(a))
	ar.Splice(ar.Sym(e), ar.Lnext(b))

	ar.SetOrg(e, ar.Dest(a))
	ar.SetDest(e, ar.Dest(b))

	assert.True(ar.Rot(ar.Rot(ar.Rot(ar.Rot(e)))) == e, "rot^4 must be identity after Swap")
}
