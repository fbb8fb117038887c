// Package subdivision implements the Guibas–Stolfi quad-edge data
// structure as an arena of integer-handle records rather than the
// mutually-referencing pointer records of the Python reference
// (gon/shaped/subdivisional.py QuadEdge), per Design Notes §9
// ("Represent the subdivision as an arena of edge records indexed by
// integer handles"). Each undirected edge occupies 4 consecutive handles
// (its 4-aligned "ring"); sym is handle XOR 2 and rot/rot⁻¹ are ±1 within
// the ring.
package subdivision

// EdgeHandle indexes one of the four directed half-edge records of an
// undirected edge in an Arena. Handles start at 0 (the first edge made in
// an empty arena); NullEdge marks "no edge".
type EdgeHandle int

// NullEdge marks the absence of an edge or vertex reference.
const NullEdge EdgeHandle = -1

// VertexID identifies a vertex. Subdivision does not itself store vertex
// coordinates — callers pass opaque IDs, typically an index into their own
// point slice, keeping the arena free of a geom2d import cycle.
type VertexID int

// NullVertex marks an edge record whose origin is not yet set.
const NullVertex VertexID = -1

type edgeRecord struct {
	onext EdgeHandle
	orig  VertexID
}

// Arena owns a set of quad-edges exclusively during triangulation
// construction (spec.md §3 "Meshes are mutable only inside triangulation
// routines"); MakeEdge/Splice/Connect/Delete/Swap are its only mutators.
type Arena struct {
	edges []edgeRecord
	// free holds handles to the base (ring-index-0) record of deleted
	// edges, available for reuse by MakeEdge.
	free []EdgeHandle
}

// NewArena returns an empty quad-edge arena.
func NewArena() *Arena {
	return &Arena{}
}

// Rot returns the dual of e: the edge rotated 90° CCW, representing the
// left face side of e's undirected edge.
func (a *Arena) Rot(e EdgeHandle) EdgeHandle {
	return ringBase(e) + (ringIndex(e)+1)%4
}

// InvRot returns the dual of e rotated 90° CW (Rot applied three times).
func (a *Arena) InvRot(e EdgeHandle) EdgeHandle {
	return ringBase(e) + (ringIndex(e)+3)%4
}

// Sym returns e reversed: the same undirected edge, opposite direction.
func (a *Arena) Sym(e EdgeHandle) EdgeHandle {
	return ringBase(e) + (ringIndex(e)+2)%4
}

// Onext returns the next CCW edge around e's origin.
func (a *Arena) Onext(e EdgeHandle) EdgeHandle {
	return a.edges[e].onext
}

// Oprev returns the next CW edge around e's origin: rot.onext.rot.
func (a *Arena) Oprev(e EdgeHandle) EdgeHandle {
	return a.Rot(a.Onext(a.Rot(e)))
}

// Dnext returns the next CCW edge around e's destination: sym.onext.sym.
func (a *Arena) Dnext(e EdgeHandle) EdgeHandle {
	return a.Sym(a.Onext(a.Sym(e)))
}

// Dprev returns the next CW edge around e's destination: invrot.onext.invrot.
func (a *Arena) Dprev(e EdgeHandle) EdgeHandle {
	return a.InvRot(a.Onext(a.InvRot(e)))
}

// Lnext returns the next CCW edge around e's left face: invrot.onext.rot.
func (a *Arena) Lnext(e EdgeHandle) EdgeHandle {
	return a.Rot(a.Onext(a.InvRot(e)))
}

// Lprev returns the next CW edge around e's left face: onext.sym.
func (a *Arena) Lprev(e EdgeHandle) EdgeHandle {
	return a.Sym(a.Onext(e))
}

// Rnext returns the next CCW edge around e's right face: rot.onext.invrot.
func (a *Arena) Rnext(e EdgeHandle) EdgeHandle {
	return a.InvRot(a.Onext(a.Rot(e)))
}

// Rprev returns the next CW edge around e's right face: sym.onext.
func (a *Arena) Rprev(e EdgeHandle) EdgeHandle {
	return a.Onext(a.Sym(e))
}

// Org returns the origin vertex of e, or NullVertex if unset.
func (a *Arena) Org(e EdgeHandle) VertexID {
	return a.edges[e].orig
}

// Dest returns the destination vertex of e: the origin of Sym(e).
func (a *Arena) Dest(e EdgeHandle) VertexID {
	return a.edges[a.Sym(e)].orig
}

// SetOrg sets the origin vertex of e.
func (a *Arena) SetOrg(e EdgeHandle, v VertexID) {
	a.edges[e].orig = v
}

// SetDest sets the destination vertex of e (the origin of Sym(e)).
func (a *Arena) SetDest(e EdgeHandle, v VertexID) {
	a.edges[a.Sym(e)].orig = v
}

func ringBase(e EdgeHandle) EdgeHandle { return (e / 4) * 4 }
func ringIndex(e EdgeHandle) EdgeHandle { return e % 4 }
