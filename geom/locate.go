package geom

// PositionKind enumerates the outcomes of locating a point in the
// triangulation.
type PositionKind int

const (
	// NoTriangulationPresent means the triangulation is in the
	// degenerate collinear state and the query point lies on none of
	// its vertices or chain edges.
	NoTriangulationPresent PositionKind = iota
	// InTriangle means the point lies strictly inside an inner face.
	InTriangle
	// OnEdge means the point lies on an existing edge, strictly between
	// its endpoints.
	OnEdge
	// OnPoint means the point coincides with an existing vertex.
	OnPoint
	// OutsideConvexHull means the point lies outside the convex hull of
	// the triangulation.
	OutsideConvexHull
)

func (k PositionKind) String() string {
	switch k {
	case NoTriangulationPresent:
		return "NoTriangulationPresent"
	case InTriangle:
		return "InTriangle"
	case OnEdge:
		return "OnEdge"
	case OnPoint:
		return "OnPoint"
	case OutsideConvexHull:
		return "OutsideConvexHull"
	default:
		return "invalid position"
	}
}

// Position describes the location of a point relative to the
// triangulation. Exactly one of the handle fields is meaningful,
// depending on Kind:
//
//   - OnPoint: Vertex is the coinciding vertex.
//   - OnEdge: Edge is a directed edge the point lies on.
//   - InTriangle: Face is the inner face containing the point.
//   - OutsideConvexHull: Edge is a hull edge with the point on its
//     outer side.
//
// The other fields are -1.
type Position struct {
	Kind   PositionKind
	Vertex FixedVertex
	Edge   FixedDirectedEdge
	Face   FixedFace
}

func onPoint(v FixedVertex) Position {
	return Position{Kind: OnPoint, Vertex: v, Edge: noEdge, Face: -1}
}

func onEdge(e FixedDirectedEdge) Position {
	return Position{Kind: OnEdge, Vertex: noVertex, Edge: e, Face: -1}
}

func inTriangle(f FixedFace) Position {
	return Position{Kind: InTriangle, Vertex: noVertex, Edge: noEdge, Face: f}
}

func outsideConvexHull(e FixedDirectedEdge) Position {
	return Position{Kind: OutsideConvexHull, Vertex: noVertex, Edge: e, Face: -1}
}

func noTriangulation() Position {
	return Position{Kind: NoTriangulationPresent, Vertex: noVertex, Edge: noEdge, Face: -1}
}

// Locate returns information about the location of a point in the
// triangulation. Panics if the query coordinate is not finite.
func (t *Triangulation[V, E, F]) Locate(q XY) Position {
	t.checkQuery(q)
	if t.allPointsOnLine {
		return t.locateDegenerate(q)
	}
	return t.locateWalk(q, t.defaultHint(q))
}

// LocateWithHint behaves like Locate but starts the search walk at the
// given vertex. The hint does not affect the result, only the lookup
// speed: it should be a vertex close to the query point.
func (t *Triangulation[V, E, F]) LocateWithHint(q XY, hint FixedVertex) Position {
	t.checkQuery(q)
	if t.allPointsOnLine {
		return t.locateDegenerate(q)
	}
	if hint < 0 || int(hint) >= t.dcel.numVertices() {
		hint = t.defaultHint(q)
	}
	return t.locateWalk(q, hint)
}

// defaultHint asks the locate index for a vertex near the query point.
func (t *Triangulation[V, E, F]) defaultHint(q XY) FixedVertex {
	if hint, ok := t.index.nearest(q); ok && int(hint) < t.dcel.numVertices() {
		return hint
	}
	return 0
}

// locateDegenerate answers locate queries while the mesh is in the
// degenerate collinear state: the query can still coincide with a
// vertex or lie on a chain edge.
func (t *Triangulation[V, E, F]) locateDegenerate(q XY) Position {
	nearest, ok := t.index.nearest(q)
	if !ok {
		return noTriangulation()
	}
	if t.position(nearest) == q {
		return onPoint(nearest)
	}
	// A point on the interior of a chain edge is closer to that edge's
	// endpoints than to any other chain vertex, so only the edges at
	// the nearest vertex need checking.
	for _, e := range t.dcel.outEdges(nearest) {
		from := t.position(t.dcel.origin(e))
		to := t.position(t.dcel.target(e))
		if Orient2D(from, to, q) == Collinear && inBoundingBox(from, to, q) {
			return onEdge(e)
		}
	}
	return noTriangulation()
}

// inBoundingBox reports whether q lies in the axis-aligned bounding box
// of a and b. For three collinear points this decides exactly whether q
// lies between a and b.
func inBoundingBox(a, b, q XY) bool {
	return min(a.X, b.X) <= q.X && q.X <= max(a.X, b.X) &&
		min(a.Y, b.Y) <= q.Y && q.Y <= max(a.Y, b.Y)
}

func reversed(o Orientation) Orientation {
	switch o {
	case LeftTurn:
		return RightTurn
	case RightTurn:
		return LeftTurn
	default:
		return Collinear
	}
}

func (t *Triangulation[V, E, F]) position(v FixedVertex) XY {
	return t.dcel.vertices[v].data.Position()
}

func (t *Triangulation[V, E, F]) sideQuery(e FixedDirectedEdge, q XY) Orientation {
	return Orient2D(t.position(t.dcel.origin(e)), t.position(t.dcel.target(e)), q)
}

// locateWalk performs walking point location starting at an out edge of
// the given vertex. The walk maintains the invariant that the query
// point is never on the right of the current edge; each step crosses
// into a face closer to the query point, so the walk terminates because
// predicates are exact and faces are finite.
func (t *Triangulation[V, E, F]) locateWalk(q XY, start FixedVertex) Position {
	curEdge := t.dcel.vertices[start].outEdge
	if curEdge == noEdge {
		panic("geom: cannot start a locate walk at an isolated vertex")
	}
	curQuery := t.sideQuery(curEdge, q)
	if curQuery == RightTurn {
		curEdge = curEdge.Rev()
		curQuery = LeftTurn
	}
	for {
		if t.dcel.face(curEdge).IsOuter() {
			if curQuery == Collinear {
				curEdge = curEdge.Rev()
			} else {
				return outsideConvexHull(curEdge)
			}
		}
		if t.position(t.dcel.origin(curEdge)) == q {
			return onPoint(t.dcel.origin(curEdge))
		}
		next := t.dcel.next(curEdge)
		if t.position(t.dcel.origin(next)) == q {
			return onPoint(t.dcel.target(curEdge))
		}

		if nextQuery := t.sideQuery(next, q); nextQuery != LeftTurn {
			// Continue walking into the face on the right of next.
			curEdge = next.Rev()
			curQuery = reversed(nextQuery)
			continue
		}
		prev := t.dcel.prev(curEdge)
		if prevQuery := t.sideQuery(prev, q); prevQuery != LeftTurn {
			// Continue walking into the face on the right of prev.
			curEdge = prev.Rev()
			curQuery = reversed(prevQuery)
			continue
		}
		// q is on the left of all three edges of this face.
		if curQuery == Collinear {
			return onEdge(curEdge)
		}
		return inTriangle(t.dcel.face(curEdge))
	}
}
