package triangulate

// undirectedEdge is a canonical (order-independent) point-index pair,
// used as the adjacency table's key.
type undirectedEdge struct{ u, v int }

func canonicalEdge(u, v int) undirectedEdge {
	if u > v {
		u, v = v, u
	}
	return undirectedEdge{u, v}
}

// mesh is the mutable index-based triangulation state CDT operates on:
// the current triangle list plus the adjacency table (edge -> incident
// triangles) of spec.md §3/§4.7, kept consistent across every edge flip;
// a triangle's neighbours are derived from it on demand by neighbours.
type mesh struct {
	tris []triIdx
	// adjacency maps an undirected edge to the (<=2) indices into tris of
	// its incident triangles.
	adjacency map[undirectedEdge][]int
}

func newMesh(tris []triIdx) *mesh {
	m := &mesh{tris: append([]triIdx{}, tris...)}
	m.rebuildAdjacency()
	return m
}

func (m *mesh) rebuildAdjacency() {
	m.adjacency = make(map[undirectedEdge][]int, len(m.tris)*3)
	for ti, t := range m.tris {
		for _, e := range t.edges() {
			key := canonicalEdge(e.u, e.v)
			m.adjacency[key] = append(m.adjacency[key], ti)
		}
	}
}

// neighbours returns the up-to-three triangle indices adjacent to ti
// (sharing an edge), one per edge of ti.
func (m *mesh) neighbours(ti int) []int {
	t := m.tris[ti]
	var out []int
	for _, e := range t.edges() {
		for _, other := range m.adjacency[canonicalEdge(e.u, e.v)] {
			if other != ti {
				out = append(out, other)
			}
		}
	}
	return out
}

// edges returns t's three directed CCW edges.
func (t triIdx) edges() [3]directedEdge {
	return [3]directedEdge{{t.a, t.b}, {t.b, t.c}, {t.c, t.a}}
}

// thirdVertex returns the vertex of t that is not u or v; ok is false
// unless both u and v are vertices of t.
func (t triIdx) thirdVertex(u, v int) (int, bool) {
	third, found, shared := 0, false, 0
	for _, x := range [3]int{t.a, t.b, t.c} {
		if x == u || x == v {
			shared++
		} else {
			third, found = x, true
		}
	}
	return third, found && shared == 2
}

// hasEdge reports whether t has u,v as one of its edges (in either
// direction).
func (t triIdx) hasEdge(u, v int) bool {
	_, ok := t.thirdVertex(u, v)
	if !ok {
		return false
	}
	count := 0
	for _, x := range [3]int{t.a, t.b, t.c} {
		if x == u || x == v {
			count++
		}
	}
	return count == 2
}

// replaceTriangle swaps the triangle at index ti for replacement, and
// updates the adjacency table incrementally: remove ti's old edge
// entries, insert replacement's new ones.
func (m *mesh) replaceTriangle(ti int, replacement triIdx) {
	old := m.tris[ti]
	for _, e := range old.edges() {
		m.removeAdjacency(canonicalEdge(e.u, e.v), ti)
	}
	m.tris[ti] = replacement
	for _, e := range replacement.edges() {
		key := canonicalEdge(e.u, e.v)
		m.adjacency[key] = append(m.adjacency[key], ti)
	}
}

func (m *mesh) removeAdjacency(key undirectedEdge, ti int) {
	lst := m.adjacency[key]
	for i, v := range lst {
		if v == ti {
			lst = append(lst[:i], lst[i+1:]...)
			break
		}
	}
	if len(lst) == 0 {
		delete(m.adjacency, key)
	} else {
		m.adjacency[key] = lst
	}
}
