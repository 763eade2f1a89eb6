package geom

// Borrowed handles combine a fixed handle with a reference to the
// triangulation's storage, giving read-only navigation of the mesh.
// They are invalidated by the next mutating call on the triangulation;
// re-query them afterwards.

// VertexHandle is a borrowed handle to a vertex.
type VertexHandle[V HasPosition, E, F any] struct {
	d      *dcel[V, E, F]
	handle FixedVertex
}

// Fix returns the fixed handle of this vertex.
func (h VertexHandle[V, E, F]) Fix() FixedVertex { return h.handle }

// Data returns the payload stored with this vertex.
func (h VertexHandle[V, E, F]) Data() V { return h.d.vertices[h.handle].data }

// Position returns the position of this vertex.
func (h VertexHandle[V, E, F]) Position() XY { return h.Data().Position() }

// OutEdge returns an outgoing edge of this vertex. If the vertex has
// multiple outgoing edges, any of them is returned. The second return
// is false for an isolated vertex.
func (h VertexHandle[V, E, F]) OutEdge() (DirectedEdgeHandle[V, E, F], bool) {
	e := h.d.vertices[h.handle].outEdge
	if e == noEdge {
		return DirectedEdgeHandle[V, E, F]{}, false
	}
	return DirectedEdgeHandle[V, E, F]{h.d, e}, true
}

// OutEdges returns all directed edges going out of this vertex in
// counterclockwise order, beginning at an arbitrary edge. The result is
// nil for an isolated vertex.
func (h VertexHandle[V, E, F]) OutEdges() []DirectedEdgeHandle[V, E, F] {
	fixed := h.d.outEdges(h.handle)
	if fixed == nil {
		return nil
	}
	out := make([]DirectedEdgeHandle[V, E, F], len(fixed))
	for i, e := range fixed {
		out[i] = DirectedEdgeHandle[V, E, F]{h.d, e}
	}
	return out
}

// DirectedEdgeHandle is a borrowed handle to a directed edge.
type DirectedEdgeHandle[V HasPosition, E, F any] struct {
	d      *dcel[V, E, F]
	handle FixedDirectedEdge
}

// Fix returns the fixed handle of this directed edge.
func (h DirectedEdgeHandle[V, E, F]) Fix() FixedDirectedEdge { return h.handle }

// From returns the edge's origin vertex.
func (h DirectedEdgeHandle[V, E, F]) From() VertexHandle[V, E, F] {
	return VertexHandle[V, E, F]{h.d, h.d.origin(h.handle)}
}

// To returns the edge's destination vertex.
func (h DirectedEdgeHandle[V, E, F]) To() VertexHandle[V, E, F] {
	return VertexHandle[V, E, F]{h.d, h.d.target(h.handle)}
}

// Vertices returns the edge's two vertices, origin first.
func (h DirectedEdgeHandle[V, E, F]) Vertices() [2]VertexHandle[V, E, F] {
	return [2]VertexHandle[V, E, F]{h.From(), h.To()}
}

// Rev returns this edge with its direction reversed.
func (h DirectedEdgeHandle[V, E, F]) Rev() DirectedEdgeHandle[V, E, F] {
	return DirectedEdgeHandle[V, E, F]{h.d, h.handle.Rev()}
}

// Next returns the following edge when traversing the edges of the
// incident face in counterclockwise order.
func (h DirectedEdgeHandle[V, E, F]) Next() DirectedEdgeHandle[V, E, F] {
	return DirectedEdgeHandle[V, E, F]{h.d, h.d.next(h.handle)}
}

// Prev returns the preceding edge when traversing the edges of the
// incident face in counterclockwise order.
func (h DirectedEdgeHandle[V, E, F]) Prev() DirectedEdgeHandle[V, E, F] {
	return DirectedEdgeHandle[V, E, F]{h.d, h.d.prev(h.handle)}
}

// CCW returns the next edge out of the same origin in counterclockwise
// order.
func (h DirectedEdgeHandle[V, E, F]) CCW() DirectedEdgeHandle[V, E, F] {
	return h.Prev().Rev()
}

// CW returns the next edge out of the same origin in clockwise order.
func (h DirectedEdgeHandle[V, E, F]) CW() DirectedEdgeHandle[V, E, F] {
	return h.Rev().Next()
}

// Face returns the face on the left of this edge (possibly the outer
// face).
func (h DirectedEdgeHandle[V, E, F]) Face() FaceHandle[V, E, F] {
	return FaceHandle[V, E, F]{h.d, h.d.face(h.handle)}
}

// IsOuterEdge reports whether the face on the left of this edge is the
// outer face.
func (h DirectedEdgeHandle[V, E, F]) IsOuterEdge() bool {
	return h.d.face(h.handle).IsOuter()
}

// IsPartOfConvexHull reports whether this edge or its twin is adjacent
// to the outer face.
func (h DirectedEdgeHandle[V, E, F]) IsPartOfConvexHull() bool {
	return h.IsOuterEdge() || h.Rev().IsOuterEdge()
}

// OppositeVertex returns the vertex opposite of this edge in the
// incident face. The second return is false if the edge is an outer
// edge.
func (h DirectedEdgeHandle[V, E, F]) OppositeVertex() (VertexHandle[V, E, F], bool) {
	if h.IsOuterEdge() {
		return VertexHandle[V, E, F]{}, false
	}
	return h.Prev().From(), true
}

// SideQuery identifies on which side of the line through this edge a
// point lies.
func (h DirectedEdgeHandle[V, E, F]) SideQuery(q XY) Orientation {
	return Orient2D(h.From().Position(), h.To().Position(), q)
}

// ProjectPoint projects a point onto the line going through this edge.
func (h DirectedEdgeHandle[V, E, F]) ProjectPoint(q XY) PointProjection {
	return ProjectPoint(h.From().Position(), h.To().Position(), q)
}

// NearestPoint returns the point of this edge closest to q.
func (h DirectedEdgeHandle[V, E, F]) NearestPoint(q XY) XY {
	return NearestPointOnEdge(h.From().Position(), h.To().Position(), q)
}

// DistanceSq returns the squared distance between q and this edge.
func (h DirectedEdgeHandle[V, E, F]) DistanceSq(q XY) float64 {
	return DistanceSqToEdge(h.From().Position(), h.To().Position(), q)
}

// LengthSq returns the squared length of this edge.
func (h DirectedEdgeHandle[V, E, F]) LengthSq() float64 {
	return h.To().Position().Sub(h.From().Position()).LengthSq()
}

// AsUndirected converts this directed edge handle into the handle of
// its undirected edge pair.
func (h DirectedEdgeHandle[V, E, F]) AsUndirected() UndirectedEdgeHandle[V, E, F] {
	return UndirectedEdgeHandle[V, E, F]{h.d, h.handle.AsUndirected()}
}

// UndirectedEdgeHandle is a borrowed handle to an undirected edge.
type UndirectedEdgeHandle[V HasPosition, E, F any] struct {
	d      *dcel[V, E, F]
	handle FixedUndirectedEdge
}

// Fix returns the fixed handle of this undirected edge.
func (h UndirectedEdgeHandle[V, E, F]) Fix() FixedUndirectedEdge { return h.handle }

// AsDirected converts this undirected edge into one of its two directed
// halves.
func (h UndirectedEdgeHandle[V, E, F]) AsDirected() DirectedEdgeHandle[V, E, F] {
	return DirectedEdgeHandle[V, E, F]{h.d, h.handle.AsDirected()}
}

// Data returns the payload stored with this undirected edge.
func (h UndirectedEdgeHandle[V, E, F]) Data() E { return h.d.edges[h.handle].data }

// Vertices returns the edge's two vertices, in no particular order.
func (h UndirectedEdgeHandle[V, E, F]) Vertices() [2]VertexHandle[V, E, F] {
	return h.AsDirected().Vertices()
}

// Positions returns the end positions of this edge, in no particular
// order.
func (h UndirectedEdgeHandle[V, E, F]) Positions() [2]XY {
	vs := h.Vertices()
	return [2]XY{vs[0].Position(), vs[1].Position()}
}

// LengthSq returns the squared length of this edge.
func (h UndirectedEdgeHandle[V, E, F]) LengthSq() float64 {
	return h.AsDirected().LengthSq()
}

// DistanceSq returns the squared distance between q and this edge.
func (h UndirectedEdgeHandle[V, E, F]) DistanceSq(q XY) float64 {
	return h.AsDirected().DistanceSq(q)
}

// IsPartOfConvexHull reports whether the outer face is adjacent to
// either side of this edge.
func (h UndirectedEdgeHandle[V, E, F]) IsPartOfConvexHull() bool {
	return h.AsDirected().IsPartOfConvexHull()
}

// FaceHandle is a borrowed handle to a face that may be the outer face.
// Operations requiring a triangle live on InnerFaceHandle; use AsInner
// to get one.
type FaceHandle[V HasPosition, E, F any] struct {
	d      *dcel[V, E, F]
	handle FixedFace
}

// Fix returns the fixed handle of this face.
func (h FaceHandle[V, E, F]) Fix() FixedFace { return h.handle }

// Data returns the payload stored with this face.
func (h FaceHandle[V, E, F]) Data() F { return h.d.faces[h.handle].data }

// IsOuter reports whether this handle refers to the single outer face.
func (h FaceHandle[V, E, F]) IsOuter() bool { return h.handle.IsOuter() }

// AsInner converts this handle into an inner face handle. The second
// return is false if this is the outer face.
func (h FaceHandle[V, E, F]) AsInner() (InnerFaceHandle[V, E, F], bool) {
	if h.IsOuter() {
		return InnerFaceHandle[V, E, F]{}, false
	}
	return InnerFaceHandle[V, E, F]{h.d, h.handle}, true
}

// AdjacentEdge returns an edge that has this face on its left. The
// second return is false if the face has no boundary (the outer face of
// a degenerate subdivision without edges).
func (h FaceHandle[V, E, F]) AdjacentEdge() (DirectedEdgeHandle[V, E, F], bool) {
	e := h.d.faces[h.handle].edge
	if e == noEdge {
		return DirectedEdgeHandle[V, E, F]{}, false
	}
	return DirectedEdgeHandle[V, E, F]{h.d, e}, true
}

// InnerFaceHandle is a borrowed handle to an inner (triangle) face.
type InnerFaceHandle[V HasPosition, E, F any] struct {
	d      *dcel[V, E, F]
	handle FixedFace
}

// Fix returns the fixed handle of this face.
func (h InnerFaceHandle[V, E, F]) Fix() FixedFace { return h.handle }

// Data returns the payload stored with this face.
func (h InnerFaceHandle[V, E, F]) Data() F { return h.d.faces[h.handle].data }

// AdjacentEdge returns an edge that has this face on its left.
func (h InnerFaceHandle[V, E, F]) AdjacentEdge() DirectedEdgeHandle[V, E, F] {
	return DirectedEdgeHandle[V, E, F]{h.d, h.d.faces[h.handle].edge}
}

// AdjacentEdges returns the three edges adjacent to this face in
// counterclockwise order.
func (h InnerFaceHandle[V, E, F]) AdjacentEdges() [3]DirectedEdgeHandle[V, E, F] {
	e1 := h.AdjacentEdge()
	return [3]DirectedEdgeHandle[V, E, F]{e1.Prev(), e1, e1.Next()}
}

// Vertices returns the face's three vertices in counterclockwise order.
func (h InnerFaceHandle[V, E, F]) Vertices() [3]VertexHandle[V, E, F] {
	es := h.AdjacentEdges()
	return [3]VertexHandle[V, E, F]{es[0].From(), es[1].From(), es[2].From()}
}

// Positions returns the positions of the face's vertices in
// counterclockwise order.
func (h InnerFaceHandle[V, E, F]) Positions() [3]XY {
	vs := h.Vertices()
	return [3]XY{vs[0].Position(), vs[1].Position(), vs[2].Position()}
}

// Area returns the triangle's area.
func (h InnerFaceHandle[V, E, F]) Area() float64 {
	ps := h.Positions()
	b := ps[1].Sub(ps[0])
	c := ps[2].Sub(ps[0])
	return b.Cross(c) / 2
}

// Center returns the average position of the face's vertices.
func (h InnerFaceHandle[V, E, F]) Center() XY {
	ps := h.Positions()
	return ps[0].Add(ps[1]).Add(ps[2]).Scale(1.0 / 3.0)
}

// Circumcircle returns the center and the squared radius of the unique
// circle through the face's three vertices.
func (h InnerFaceHandle[V, E, F]) Circumcircle() (XY, float64) {
	ps := h.Positions()
	b := ps[1].Sub(ps[0])
	c := ps[2].Sub(ps[0])

	d := 2 * b.Cross(c)
	lenB := b.Dot(b)
	lenC := c.Dot(c)
	x := (lenB*c.Y - lenC*b.Y) / d
	y := (lenC*b.X - lenB*c.X) / d
	return XY{x, y}.Add(ps[0]), x*x + y*y
}

// Circumcenter returns the center of the circumcircle.
func (h InnerFaceHandle[V, E, F]) Circumcenter() XY {
	center, _ := h.Circumcircle()
	return center
}

// DistanceSq returns the squared distance of a point to this triangle.
// The distance of a point inside the triangle is zero.
func (h InnerFaceHandle[V, E, F]) DistanceSq(q XY) float64 {
	return distanceSqToTriangle(h.Positions(), q)
}

// BarycentricInterpolation returns the barycentric coordinates of a
// point relative to this face. The coordinates sum to 1.
func (h InnerFaceHandle[V, E, F]) BarycentricInterpolation(q XY) [3]float64 {
	ps := h.Positions()
	x1, y1 := ps[0].X, ps[0].Y
	x2, y2 := ps[1].X, ps[1].Y
	x3, y3 := ps[2].X, ps[2].Y
	det := (y2-y3)*(x1-x3) + (x3-x2)*(y1-y3)
	l1 := ((y2-y3)*(q.X-x3) + (x3-x2)*(q.Y-y3)) / det
	l2 := ((y3-y1)*(q.X-x3) + (x1-x3)*(q.Y-y3)) / det
	return [3]float64{l1, l2, 1 - l1 - l2}
}
