package geom

// Voronoi is a read-only projection of the triangulation onto its dual
// Voronoi diagram. No storage is added: every Voronoi element is backed
// by a Delaunay element and shares its integer handle space.
//
//   - Each inner Delaunay face corresponds to one Voronoi vertex (its
//     circumcenter).
//   - Each Delaunay vertex corresponds to one Voronoi face (the cell of
//     points closer to it than to any other vertex).
//   - Undirected Delaunay edges correspond one-to-one with undirected
//     Voronoi edges.
//
// Like all borrowed views, a Voronoi value is invalidated by the next
// mutation of the triangulation.
type Voronoi[V HasPosition, E, F any] struct {
	t *Triangulation[V, E, F]
}

// Voronoi returns the dual Voronoi view of the triangulation.
func (t *Triangulation[V, E, F]) Voronoi() Voronoi[V, E, F] {
	return Voronoi[V, E, F]{t}
}

// NumVertices returns the number of Voronoi vertices, which equals the
// number of Delaunay triangles.
func (v Voronoi[V, E, F]) NumVertices() int { return v.t.NumTriangles() }

// NumFaces returns the number of Voronoi faces, which equals the number
// of Delaunay vertices.
func (v Voronoi[V, E, F]) NumFaces() int { return v.t.NumVertices() }

// NumEdges returns the number of undirected Voronoi edges, which equals
// the number of undirected Delaunay edges.
func (v Voronoi[V, E, F]) NumEdges() int { return v.t.NumEdges() }

// Vertices returns all Voronoi vertices.
func (v Voronoi[V, E, F]) Vertices() []VoronoiVertex[V, E, F] {
	out := make([]VoronoiVertex[V, E, F], 0, v.NumVertices())
	for _, f := range v.t.Triangles() {
		out = append(out, VoronoiVertex[V, E, F]{f})
	}
	return out
}

// Faces returns all Voronoi faces.
func (v Voronoi[V, E, F]) Faces() []VoronoiFace[V, E, F] {
	out := make([]VoronoiFace[V, E, F], 0, v.NumFaces())
	for _, vh := range v.t.Vertices() {
		out = append(out, VoronoiFace[V, E, F]{vh})
	}
	return out
}

// Edges returns all undirected Voronoi edges.
func (v Voronoi[V, E, F]) Edges() []VoronoiEdge[V, E, F] {
	out := make([]VoronoiEdge[V, E, F], 0, v.NumEdges())
	for _, e := range v.t.UndirectedEdges() {
		out = append(out, VoronoiEdge[V, E, F]{e})
	}
	return out
}

// VoronoiVertex is a vertex of the Voronoi diagram: the circumcenter of
// an inner Delaunay face.
type VoronoiVertex[V HasPosition, E, F any] struct {
	face InnerFaceHandle[V, E, F]
}

// AsVoronoiVertex converts this inner face into its dual Voronoi
// vertex.
func (h InnerFaceHandle[V, E, F]) AsVoronoiVertex() VoronoiVertex[V, E, F] {
	return VoronoiVertex[V, E, F]{h}
}

// Position returns the location of this Voronoi vertex.
func (v VoronoiVertex[V, E, F]) Position() XY { return v.face.Circumcenter() }

// AsDelaunayFace returns the inner Delaunay face backing this Voronoi
// vertex.
func (v VoronoiVertex[V, E, F]) AsDelaunayFace() InnerFaceHandle[V, E, F] { return v.face }

// VoronoiFace is a face (cell) of the Voronoi diagram: all points
// closer to its site than to any other vertex of the triangulation.
type VoronoiFace[V HasPosition, E, F any] struct {
	vertex VertexHandle[V, E, F]
}

// AsVoronoiFace converts this vertex into its dual Voronoi face.
func (h VertexHandle[V, E, F]) AsVoronoiFace() VoronoiFace[V, E, F] {
	return VoronoiFace[V, E, F]{h}
}

// Site returns the position of the Delaunay vertex owning this cell.
func (f VoronoiFace[V, E, F]) Site() XY { return f.vertex.Position() }

// AsDelaunayVertex returns the Delaunay vertex backing this Voronoi
// face.
func (f VoronoiFace[V, E, F]) AsDelaunayVertex() VertexHandle[V, E, F] { return f.vertex }

// IsUnbounded reports whether this cell extends to infinity, which is
// the case exactly when its site lies on the convex hull.
func (f VoronoiFace[V, E, F]) IsUnbounded() bool {
	for _, e := range f.vertex.OutEdges() {
		if e.IsOuterEdge() || e.Rev().IsOuterEdge() {
			return true
		}
	}
	return false
}

// VoronoiEdge is an undirected edge of the Voronoi diagram, dual to an
// undirected Delaunay edge. It connects the circumcenters of the two
// triangles incident to the Delaunay edge; when the Delaunay edge is on
// the convex hull, one endpoint is missing and the Voronoi edge is an
// infinite ray.
type VoronoiEdge[V HasPosition, E, F any] struct {
	edge UndirectedEdgeHandle[V, E, F]
}

// AsVoronoiEdge converts this undirected Delaunay edge into its dual
// Voronoi edge.
func (h UndirectedEdgeHandle[V, E, F]) AsVoronoiEdge() VoronoiEdge[V, E, F] {
	return VoronoiEdge[V, E, F]{h}
}

// AsDelaunayEdge returns the Delaunay edge backing this Voronoi edge.
func (e VoronoiEdge[V, E, F]) AsDelaunayEdge() UndirectedEdgeHandle[V, E, F] { return e.edge }

// Vertices returns the two endpoints of this Voronoi edge. An endpoint
// is reported as absent (false) when the corresponding side of the
// Delaunay edge is the outer face, making the Voronoi edge an infinite
// ray (or, for a degenerate chain edge, an infinite line).
func (e VoronoiEdge[V, E, F]) Vertices() (from, to VoronoiVertex[V, E, F], hasFrom, hasTo bool) {
	d := e.edge.AsDirected()
	if f, ok := d.Face().AsInner(); ok {
		from, hasFrom = VoronoiVertex[V, E, F]{f}, true
	}
	if f, ok := d.Rev().Face().AsInner(); ok {
		to, hasTo = VoronoiVertex[V, E, F]{f}, true
	}
	return from, to, hasFrom, hasTo
}

// Faces returns the two Voronoi cells separated by this edge.
func (e VoronoiEdge[V, E, F]) Faces() [2]VoronoiFace[V, E, F] {
	vs := e.edge.Vertices()
	return [2]VoronoiFace[V, E, F]{{vs[0]}, {vs[1]}}
}
