package geom

import "fmt"

// The operations in this file are pure topological edits. They keep the
// half-edge linking invariants intact (twin, next/prev cycles, face and
// origin consistency) but know nothing about the Delaunay property;
// enforcing that is the caller's job.

// insertVertex creates a new isolated vertex and returns its handle.
func (d *dcel[V, E, F]) insertVertex(data V) FixedVertex {
	d.vertices = append(d.vertices, vertexRecord[V]{data: data, outEdge: noEdge})
	return FixedVertex(len(d.vertices) - 1)
}

// updateVertex replaces the payload of an existing vertex. The vertex
// does not move geometrically.
func (d *dcel[V, E, F]) updateVertex(v FixedVertex, data V) {
	d.checkVertex(v)
	d.vertices[v].data = data
}

// newEdgePair appends a fresh edge pair and returns the directed handle
// of its first half. The caller links it into the structure.
func (d *dcel[V, E, F]) newEdgePair() FixedDirectedEdge {
	d.edges = append(d.edges, edgeRecord[E]{})
	return FixedUndirectedEdge(len(d.edges) - 1).AsDirected()
}

// connectTwoIsolated creates an edge pair between two isolated vertices
// inside the given face. Both halves are incident to that face. This is
// only used to bootstrap the degenerate collinear chain.
func (d *dcel[V, E, F]) connectTwoIsolated(v0, v1 FixedVertex, face FixedFace) FixedDirectedEdge {
	d.checkVertex(v0)
	d.checkVertex(v1)
	if d.vertices[v0].outEdge != noEdge || d.vertices[v1].outEdge != noEdge {
		panic("geom: connectTwoIsolated called with a non-isolated vertex")
	}
	e := d.newEdgePair()
	t := e.Rev()
	*d.half(e) = halfEdgeRecord{origin: v0, face: face, next: t, prev: t}
	*d.half(t) = halfEdgeRecord{origin: v1, face: face, next: e, prev: e}
	d.vertices[v0].outEdge = e
	d.vertices[v1].outEdge = t
	if d.faces[face].edge == noEdge {
		d.faces[face].edge = e
	}
	return e
}

// connectEdgeToIsolated attaches the isolated vertex v to the face on
// the left of e, creating a new edge pair from target(e) to v. The new
// half-edge from target(e) to v is returned.
func (d *dcel[V, E, F]) connectEdgeToIsolated(e FixedDirectedEdge, v FixedVertex) FixedDirectedEdge {
	d.checkEdge(e)
	d.checkVertex(v)
	if d.vertices[v].outEdge != noEdge {
		panic("geom: connectEdgeToIsolated called with a non-isolated vertex")
	}
	face := d.face(e)
	after := d.next(e)

	n := d.newEdgePair()
	t := n.Rev()
	*d.half(n) = halfEdgeRecord{origin: d.target(e), face: face, next: t, prev: e}
	*d.half(t) = halfEdgeRecord{origin: v, face: face, next: after, prev: n}
	d.half(e).next = n
	d.half(after).prev = t
	d.vertices[v].outEdge = t
	return n
}

// createFace closes the gap between target(eA) and origin(eB) with one
// new edge pair, splitting the face shared by eA and eB into two. The
// cycle eB → … → eA → new becomes a newly allocated face; the other
// cycle keeps the existing face (in particular the outer face keeps its
// identity when a triangle is carved out of it). Returns the new
// half-edge lying in the new face.
//
// The caller guarantees that eA and eB bound the same face and that the
// new edge does not cross any existing edge.
func (d *dcel[V, E, F]) createFace(eA, eB FixedDirectedEdge) FixedDirectedEdge {
	d.checkEdge(eA)
	d.checkEdge(eB)
	f := d.face(eA)
	if d.face(eB) != f {
		panic(fmt.Sprintf("geom: createFace between edges on different faces (%d and %d)", d.face(eA), d.face(eB)))
	}

	afterA := d.next(eA)
	beforeB := d.prev(eB)

	n := d.newEdgePair()
	t := n.Rev()
	*d.half(n) = halfEdgeRecord{origin: d.target(eA), face: f, next: eB, prev: eA}
	*d.half(t) = halfEdgeRecord{origin: d.origin(eB), face: f, next: afterA, prev: beforeB}
	d.half(eA).next = n
	d.half(eB).prev = n
	d.half(beforeB).next = t
	d.half(afterA).prev = t

	d.faces = append(d.faces, faceRecord[F]{edge: n})
	g := FixedFace(len(d.faces) - 1)
	for e := n; ; {
		d.half(e).face = g
		e = d.next(e)
		if e == n {
			break
		}
	}
	d.faces[f].edge = t
	return n
}

// splitEdge subdivides the edge pair of e at the vertex v, which must
// lie on the interior of the edge. One new edge pair is introduced and
// the rings of both incident faces are updated. The new half-edge from
// v to the old target of e is returned.
func (d *dcel[V, E, F]) splitEdge(e FixedDirectedEdge, v FixedVertex) FixedDirectedEdge {
	d.checkEdge(e)
	d.checkVertex(v)
	t := e.Rev()
	w := d.target(e)
	fL := d.face(e)
	fR := d.face(t)

	n := d.newEdgePair()
	nt := n.Rev()

	// Left ring: … e(u→v) n(v→w) …
	afterE := d.next(e)
	*d.half(n) = halfEdgeRecord{origin: v, face: fL, next: afterE, prev: e}
	d.half(afterE).prev = n
	d.half(e).next = n

	// Right ring: … nt(w→v) t(v→u) … — prev(t) is re-read after the
	// left splice so that the degenerate chain (both rings being the
	// same outer cycle) links correctly.
	beforeT := d.prev(t)
	*d.half(nt) = halfEdgeRecord{origin: w, face: fR, next: t, prev: beforeT}
	d.half(beforeT).next = nt
	d.half(t).prev = nt

	d.half(t).origin = v
	d.vertices[v].outEdge = n
	if d.vertices[w].outEdge == t {
		d.vertices[w].outEdge = nt
	}
	return n
}

// flipCW performs the classic Delaunay flip on an interior edge whose
// two incident triangles form a convex quadrilateral: the edge is
// replaced by the other diagonal of the quadrilateral, rotating origin
// and target one step clockwise.
func (d *dcel[V, E, F]) flipCW(e FixedDirectedEdge) {
	d.checkEdge(e)
	t := e.Rev()
	fL := d.face(e)
	fR := d.face(t)
	if fL.IsOuter() || fR.IsOuter() {
		panic("geom: flipCW on a convex hull edge")
	}

	l1 := d.next(e) // w→a
	l2 := d.prev(e) // a→u
	r1 := d.next(t) // u→b
	r2 := d.prev(t) // b→w

	u := d.origin(e)
	w := d.origin(t)
	a := d.origin(l2)
	b := d.origin(r2)

	// New left ring: e(a→b) r2(b→w) l1(w→a).
	*d.half(e) = halfEdgeRecord{origin: a, face: fL, next: r2, prev: l1}
	d.half(r2).next = l1
	d.half(r2).prev = e
	d.half(r2).face = fL
	d.half(l1).next = e
	d.half(l1).prev = r2

	// New right ring: t(b→a) l2(a→u) r1(u→b).
	*d.half(t) = halfEdgeRecord{origin: b, face: fR, next: l2, prev: r1}
	d.half(l2).next = r1
	d.half(l2).prev = t
	d.half(l2).face = fR
	d.half(r1).next = t
	d.half(r1).prev = l2

	d.faces[fL].edge = e
	d.faces[fR].edge = t
	d.vertices[u].outEdge = r1
	d.vertices[w].outEdge = l1
	d.vertices[a].outEdge = e
	d.vertices[b].outEdge = t
}

// vertexRemovalResult reports the outcome of removeVertex. When the
// arena compaction moved another vertex into the freed slot, that
// vertex's previous handle is reported so that callers can patch any
// IDs held across the call.
type vertexRemovalResult[V any] struct {
	data          V
	updatedVertex FixedVertex // noVertex when no remap happened
}

// removeVertex removes v together with all of its incident edges,
// merging its star into a single face. If the given replacement face is
// among the faces of the star (the usual case: removal of a hull vertex
// with the outer face as replacement), the merged face keeps that
// identity; otherwise one of the star's faces is reused for the hole.
func (d *dcel[V, E, F]) removeVertex(v FixedVertex, replacement FixedFace) vertexRemovalResult[V] {
	d.checkVertex(v)
	d.checkFace(replacement)
	outs := d.outEdges(v)

	deadEdges := make(map[FixedUndirectedEdge]bool, len(outs))
	starFaces := make(map[FixedFace]bool, len(outs)+1)
	for _, o := range outs {
		deadEdges[o.AsUndirected()] = true
		starFaces[d.face(o)] = true
		starFaces[d.face(o.Rev())] = true
	}

	merged := replacement
	if len(outs) > 0 && !starFaces[merged] {
		merged = d.face(outs[0])
	}

	// Splice the surviving edges around each neighbor together,
	// detaching the star.
	isDead := func(e FixedDirectedEdge) bool { return deadEdges[e.AsUndirected()] }
	survivor := noEdge
	for _, o := range outs {
		i := o.Rev()
		pI := d.prev(i)
		nO := d.next(o)
		d.half(pI).next = nO
		d.half(nO).prev = pI
		if survivor == noEdge && !isDead(nO) {
			survivor = nO
		}
	}

	// Fix the out edges of the neighbors.
	for _, o := range outs {
		n := d.target(o)
		if !isDead(d.vertices[n].outEdge) {
			continue
		}
		if nO := d.next(o); !isDead(nO) {
			d.vertices[n].outEdge = nO
		} else {
			d.vertices[n].outEdge = noEdge
		}
	}

	// All faces of the star collapse into the merged face.
	if isDead(d.faces[merged].edge) || d.faces[merged].edge == noEdge {
		d.faces[merged].edge = survivor
	}
	if survivor != noEdge {
		for e := survivor; ; {
			d.half(e).face = merged
			e = d.next(e)
			if e == survivor {
				break
			}
		}
	}

	var deadFaces []FixedFace
	for f := range starFaces {
		if f != merged {
			deadFaces = append(deadFaces, f)
		}
	}

	data := d.vertices[v].data
	d.compactEdges(deadEdges)
	d.compactFaces(deadFaces)
	updated := d.compactVertex(v)
	return vertexRemovalResult[V]{data: data, updatedVertex: updated}
}

// compactEdges deletes the given undirected edges by swapping the last
// arena entry into each freed slot and rewriting all references to the
// moved pair.
func (d *dcel[V, E, F]) compactEdges(dead map[FixedUndirectedEdge]bool) {
	ids := make([]FixedUndirectedEdge, 0, len(dead))
	for u := range dead {
		ids = append(ids, u)
	}
	// Largest first, so that the entry swapped in is always alive.
	sortFixedDesc(ids)
	for _, u := range ids {
		last := FixedUndirectedEdge(len(d.edges) - 1)
		if u != last {
			d.edges[u] = d.edges[last]
			// References within the moved pair itself have to be
			// remapped first (a degenerate chain edge's halves link to
			// each other).
			for half := 0; half < 2; half++ {
				h := &d.edges[u].halves[half]
				if h.next.AsUndirected() == last {
					h.next = u.AsDirected() | (h.next & 1)
				}
				if h.prev.AsUndirected() == last {
					h.prev = u.AsDirected() | (h.prev & 1)
				}
			}
			for half := 0; half < 2; half++ {
				oldID := last.AsDirected() + FixedDirectedEdge(half)
				newID := u.AsDirected() + FixedDirectedEdge(half)
				h := d.half(newID)
				d.half(h.next).prev = newID
				d.half(h.prev).next = newID
				if d.vertices[h.origin].outEdge == oldID {
					d.vertices[h.origin].outEdge = newID
				}
				if d.faces[h.face].edge == oldID {
					d.faces[h.face].edge = newID
				}
			}
		}
		d.edges = d.edges[:last]
	}
}

// compactFaces deletes the given faces by swap-with-last. The outer
// face is never deleted.
func (d *dcel[V, E, F]) compactFaces(dead []FixedFace) {
	sortFixedDesc(dead)
	for _, f := range dead {
		if f.IsOuter() {
			panic("geom: attempted to delete the outer face")
		}
		last := FixedFace(len(d.faces) - 1)
		if f != last {
			d.faces[f] = d.faces[last]
			if d.faces[f].edge == noEdge {
				d.faces = d.faces[:last]
				continue
			}
			for e := d.faces[f].edge; ; {
				d.half(e).face = f
				e = d.next(e)
				if e == d.faces[f].edge {
					break
				}
			}
		}
		d.faces = d.faces[:last]
	}
}

// compactVertex deletes v by swapping the last vertex into its slot.
// Returns the previous handle of the moved vertex, or noVertex if no
// move was needed.
func (d *dcel[V, E, F]) compactVertex(v FixedVertex) FixedVertex {
	last := FixedVertex(len(d.vertices) - 1)
	if v != last {
		d.vertices[v] = d.vertices[last]
		for _, e := range d.outEdges(v) {
			d.half(e).origin = v
		}
	}
	d.vertices = d.vertices[:last]
	if v != last {
		return last
	}
	return noVertex
}

// clearEdgesAndFaces erases all edges and faces but keeps the vertices,
// dropping the subdivision to the degenerate state.
func (d *dcel[V, E, F]) clearEdgesAndFaces() {
	d.edges = d.edges[:0]
	d.faces = d.faces[:1]
	d.faces[0].edge = noEdge
	for i := range d.vertices {
		d.vertices[i].outEdge = noEdge
	}
}

// sortFixedDesc sorts a slice of integer-like handles in descending
// order. The slices involved are tiny (a vertex star), so insertion
// sort is plenty.
func sortFixedDesc[T ~int](ids []T) {
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j] > ids[j-1]; j-- {
			ids[j], ids[j-1] = ids[j-1], ids[j]
		}
	}
}
