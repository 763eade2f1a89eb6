package geom

import "fmt"

// The doubly connected edge list is stored as three parallel arenas
// indexed by the fixed handle types. All cross-references are IDs, not
// pointers, so records can be moved during compaction by rewriting the
// IDs that refer to them. The twin of a directed edge is addressed by
// flipping the lowest bit of its ID, so no twin field is stored.

type vertexRecord[V any] struct {
	data V
	// outEdge is some directed edge with this vertex as its origin, or
	// noEdge when the vertex is isolated.
	outEdge FixedDirectedEdge
}

type halfEdgeRecord struct {
	origin FixedVertex
	// face is the face on the left of this half-edge.
	face       FixedFace
	next, prev FixedDirectedEdge
}

// edgeRecord stores the two halves of an undirected edge together with
// the undirected edge payload.
type edgeRecord[E any] struct {
	halves [2]halfEdgeRecord
	data   E
}

type faceRecord[F any] struct {
	// edge is some directed edge with this face on its left, or noEdge
	// when the face has no boundary yet (the outer face of an empty or
	// degenerate subdivision).
	edge FixedDirectedEdge
	data F
}

type dcel[V, E, F any] struct {
	vertices []vertexRecord[V]
	edges    []edgeRecord[E]
	faces    []faceRecord[F]
}

func newDCEL[V, E, F any]() dcel[V, E, F] {
	return dcel[V, E, F]{
		faces: []faceRecord[F]{{edge: noEdge}},
	}
}

func (d *dcel[V, E, F]) numVertices() int { return len(d.vertices) }
func (d *dcel[V, E, F]) numEdges() int    { return len(d.edges) }
func (d *dcel[V, E, F]) numFaces() int    { return len(d.faces) }

func (d *dcel[V, E, F]) half(e FixedDirectedEdge) *halfEdgeRecord {
	return &d.edges[e>>1].halves[e&1]
}

func (d *dcel[V, E, F]) origin(e FixedDirectedEdge) FixedVertex {
	return d.half(e).origin
}

func (d *dcel[V, E, F]) target(e FixedDirectedEdge) FixedVertex {
	return d.half(e.Rev()).origin
}

func (d *dcel[V, E, F]) next(e FixedDirectedEdge) FixedDirectedEdge {
	return d.half(e).next
}

func (d *dcel[V, E, F]) prev(e FixedDirectedEdge) FixedDirectedEdge {
	return d.half(e).prev
}

func (d *dcel[V, E, F]) face(e FixedDirectedEdge) FixedFace {
	return d.half(e).face
}

// ccw returns the next edge out of the same origin in counterclockwise
// order.
func (d *dcel[V, E, F]) ccw(e FixedDirectedEdge) FixedDirectedEdge {
	return d.prev(e).Rev()
}

// cw returns the next edge out of the same origin in clockwise order.
func (d *dcel[V, E, F]) cw(e FixedDirectedEdge) FixedDirectedEdge {
	return d.next(e.Rev())
}

func (d *dcel[V, E, F]) checkVertex(v FixedVertex) {
	if v < 0 || int(v) >= len(d.vertices) {
		panic(fmt.Sprintf("geom: stale or invalid vertex handle %d", v))
	}
}

func (d *dcel[V, E, F]) checkEdge(e FixedDirectedEdge) {
	if e < 0 || int(e) >= 2*len(d.edges) {
		panic(fmt.Sprintf("geom: stale or invalid edge handle %d", e))
	}
}

func (d *dcel[V, E, F]) checkFace(f FixedFace) {
	if f < 0 || int(f) >= len(d.faces) {
		panic(fmt.Sprintf("geom: stale or invalid face handle %d", f))
	}
}

// outEdges returns all directed edges leaving v in counterclockwise
// order, starting at the stored out edge. The result is nil for an
// isolated vertex.
func (d *dcel[V, E, F]) outEdges(v FixedVertex) []FixedDirectedEdge {
	start := d.vertices[v].outEdge
	if start == noEdge {
		return nil
	}
	var out []FixedDirectedEdge
	e := start
	for {
		out = append(out, e)
		e = d.ccw(e)
		if e == start {
			return out
		}
	}
}

// edgeBetween returns the directed edge from u to w, if the two
// vertices are connected.
func (d *dcel[V, E, F]) edgeBetween(u, w FixedVertex) (FixedDirectedEdge, bool) {
	for _, e := range d.outEdges(u) {
		if d.target(e) == w {
			return e, true
		}
	}
	return noEdge, false
}
