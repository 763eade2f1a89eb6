package geom

import (
	"errors"
	"fmt"
)

// HasPosition is the contract for vertex payloads: anything stored at a
// vertex must be able to report its location.
type HasPosition interface {
	Position() XY
}

// Point is the minimal vertex payload, carrying nothing but its
// location.
type Point XY

// Position returns the point itself.
func (p Point) Position() XY { return XY(p) }

// ErrInvalidCoordinate is returned when an operation is handed a
// coordinate that is NaN or infinite. The triangulation is left
// unchanged.
var ErrInvalidCoordinate = errors.New("geom: coordinate is NaN or infinite")

// Triangulation maintains a Delaunay triangulation of a set of planar
// points under incremental insertion and removal. V is the vertex
// payload (which must report its position), E and F are opaque payloads
// attached to undirected edges and faces.
//
// A Triangulation is not safe for concurrent mutation. Any number of
// read-only operations (locate, traversal, queries) may run
// concurrently with each other, but never concurrently with Insert,
// Remove or payload mutation. Borrowed handles and fixed handles are
// invalidated by the next mutating call.
type Triangulation[V HasPosition, E, F any] struct {
	dcel            dcel[V, E, F]
	index           vertexIndex
	allPointsOnLine bool
}

// NewTriangulation creates an empty triangulation.
func NewTriangulation[V HasPosition, E, F any]() *Triangulation[V, E, F] {
	return &Triangulation[V, E, F]{
		dcel:            newDCEL[V, E, F](),
		allPointsOnLine: true,
	}
}

// NumVertices returns the number of vertices in the triangulation.
func (t *Triangulation[V, E, F]) NumVertices() int { return t.dcel.numVertices() }

// NumEdges returns the number of undirected edges in the triangulation.
func (t *Triangulation[V, E, F]) NumEdges() int { return t.dcel.numEdges() }

// NumFaces returns the number of faces in the triangulation, including
// the outer face.
func (t *Triangulation[V, E, F]) NumFaces() int { return t.dcel.numFaces() }

// NumTriangles returns the number of triangles in the triangulation. As
// there is always exactly one face that is not a triangle, this is
// NumFaces() - 1.
func (t *Triangulation[V, E, F]) NumTriangles() int { return t.dcel.numFaces() - 1 }

// AllPointsOnLine reports whether the triangulation is in the
// degenerate state: at most one vertex, or all vertices exactly
// collinear. In that state the mesh consists of a linear chain of edges
// and no triangles exist.
func (t *Triangulation[V, E, F]) AllPointsOnLine() bool { return t.allPointsOnLine }

// Vertex returns a borrowed handle for the given fixed vertex handle.
// Panics if the handle is stale or out of range.
func (t *Triangulation[V, E, F]) Vertex(v FixedVertex) VertexHandle[V, E, F] {
	t.dcel.checkVertex(v)
	return VertexHandle[V, E, F]{&t.dcel, v}
}

// DirectedEdge returns a borrowed handle for the given fixed directed
// edge handle. Panics if the handle is stale or out of range.
func (t *Triangulation[V, E, F]) DirectedEdge(e FixedDirectedEdge) DirectedEdgeHandle[V, E, F] {
	t.dcel.checkEdge(e)
	return DirectedEdgeHandle[V, E, F]{&t.dcel, e}
}

// UndirectedEdge returns a borrowed handle for the given fixed
// undirected edge handle. Panics if the handle is stale or out of
// range.
func (t *Triangulation[V, E, F]) UndirectedEdge(u FixedUndirectedEdge) UndirectedEdgeHandle[V, E, F] {
	t.dcel.checkEdge(u.AsDirected())
	return UndirectedEdgeHandle[V, E, F]{&t.dcel, u}
}

// Face returns a borrowed handle for the given fixed face handle.
// Panics if the handle is stale or out of range.
func (t *Triangulation[V, E, F]) Face(f FixedFace) FaceHandle[V, E, F] {
	t.dcel.checkFace(f)
	return FaceHandle[V, E, F]{&t.dcel, f}
}

// OuterFaceHandle returns the borrowed handle of the single outer face.
func (t *Triangulation[V, E, F]) OuterFaceHandle() FaceHandle[V, E, F] {
	return FaceHandle[V, E, F]{&t.dcel, OuterFace}
}

// Vertices returns handles for all vertices. The slice is freshly
// allocated; the handles are invalidated by the next mutation.
func (t *Triangulation[V, E, F]) Vertices() []VertexHandle[V, E, F] {
	out := make([]VertexHandle[V, E, F], t.dcel.numVertices())
	for i := range out {
		out[i] = VertexHandle[V, E, F]{&t.dcel, FixedVertex(i)}
	}
	return out
}

// UndirectedEdges returns handles for all undirected edges.
func (t *Triangulation[V, E, F]) UndirectedEdges() []UndirectedEdgeHandle[V, E, F] {
	out := make([]UndirectedEdgeHandle[V, E, F], t.dcel.numEdges())
	for i := range out {
		out[i] = UndirectedEdgeHandle[V, E, F]{&t.dcel, FixedUndirectedEdge(i)}
	}
	return out
}

// Triangles returns handles for all inner faces.
func (t *Triangulation[V, E, F]) Triangles() []InnerFaceHandle[V, E, F] {
	out := make([]InnerFaceHandle[V, E, F], 0, t.NumTriangles())
	for f := 1; f < t.dcel.numFaces(); f++ {
		out = append(out, InnerFaceHandle[V, E, F]{&t.dcel, FixedFace(f)})
	}
	return out
}

// ConvexHull returns the edges of the convex hull: the cycle of edges
// incident to the outer face, each with the outer face on its left. The
// result is nil in the degenerate state.
func (t *Triangulation[V, E, F]) ConvexHull() []DirectedEdgeHandle[V, E, F] {
	if t.allPointsOnLine {
		return nil
	}
	start, ok := t.OuterFaceHandle().AdjacentEdge()
	if !ok {
		return nil
	}
	var out []DirectedEdgeHandle[V, E, F]
	for e := start; ; {
		out = append(out, e)
		e = e.Next()
		if e == start {
			return out
		}
	}
}

// VertexData returns the payload of the given vertex.
func (t *Triangulation[V, E, F]) VertexData(v FixedVertex) V {
	t.dcel.checkVertex(v)
	return t.dcel.vertices[v].data
}

// UpdateVertexData replaces the payload of the given vertex. The new
// payload must report the same position as the old one: the vertex
// cannot be moved this way. Panics otherwise.
func (t *Triangulation[V, E, F]) UpdateVertexData(v FixedVertex, data V) {
	t.dcel.checkVertex(v)
	if data.Position() != t.dcel.vertices[v].data.Position() {
		panic("geom: UpdateVertexData must not move the vertex")
	}
	t.dcel.updateVertex(v, data)
}

// UpdateEdgeData replaces the payload of the given undirected edge.
func (t *Triangulation[V, E, F]) UpdateEdgeData(u FixedUndirectedEdge, data E) {
	t.dcel.checkEdge(u.AsDirected())
	t.dcel.edges[u].data = data
}

// GetEdgeFromVertices returns the directed edge from u to w, if the two
// vertices are connected.
func (t *Triangulation[V, E, F]) GetEdgeFromVertices(u, w FixedVertex) (DirectedEdgeHandle[V, E, F], bool) {
	t.dcel.checkVertex(u)
	t.dcel.checkVertex(w)
	e, ok := t.dcel.edgeBetween(u, w)
	if !ok {
		return DirectedEdgeHandle[V, E, F]{}, false
	}
	return DirectedEdgeHandle[V, E, F]{&t.dcel, e}, true
}

// NearestNeighbor returns the vertex closest to the query point under
// the Euclidean metric. The second return is false for an empty
// triangulation.
func (t *Triangulation[V, E, F]) NearestNeighbor(q XY) (VertexHandle[V, E, F], bool) {
	v, ok := t.index.nearest(q)
	if !ok {
		return VertexHandle[V, E, F]{}, false
	}
	return VertexHandle[V, E, F]{&t.dcel, v}, true
}

func (t *Triangulation[V, E, F]) checkQuery(q XY) {
	if !q.isFinite() {
		panic(fmt.Sprintf("geom: query coordinate is not finite: %v", q))
	}
}
