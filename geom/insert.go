package geom

// Insert adds a vertex with the given payload to the triangulation and
// restores the Delaunay property. If a vertex already exists at the
// payload's position, its payload is replaced and the existing handle
// is returned. Returns ErrInvalidCoordinate (before any mutation) if
// the position is NaN or infinite.
func (t *Triangulation[V, E, F]) Insert(data V) (FixedVertex, error) {
	pos := data.Position()
	if !pos.isFinite() {
		return noVertex, ErrInvalidCoordinate
	}

	var loc Position
	if t.allPointsOnLine {
		loc = t.locateDegenerate(pos)
	} else {
		loc = t.locateWalk(pos, t.defaultHint(pos))
	}

	var newVertex FixedVertex
	switch loc.Kind {
	case OnPoint:
		t.dcel.updateVertex(loc.Vertex, data)
		return loc.Vertex, nil
	case InTriangle:
		newVertex = t.insertIntoTriangle(loc.Face, data, pos)
	case OnEdge:
		newVertex = t.insertOnEdge(loc.Edge, data, pos)
	case OutsideConvexHull:
		newVertex = t.insertOutsideConvexHull(loc.Edge, data, pos)
	case NoTriangulationPresent:
		newVertex = t.initialInsertion(data, pos)
	}
	t.index.insert(pos, newVertex)
	return newVertex, nil
}

// initialInsertion handles insertion while the triangulation is in the
// degenerate state: the new point either joins the collinear chain, or
// breaks collinearity and triggers construction of the first triangles.
// Points coinciding with a vertex or lying on a chain edge were already
// dispatched by locateDegenerate.
func (t *Triangulation[V, E, F]) initialInsertion(data V, pos XY) FixedVertex {
	switch t.dcel.numVertices() {
	case 0:
		return t.dcel.insertVertex(data)
	case 1:
		v := t.dcel.insertVertex(data)
		t.dcel.connectTwoIsolated(0, v, OuterFace)
		return v
	}

	chainFrom := t.position(t.dcel.origin(0))
	chainTo := t.position(t.dcel.target(0))
	if Orient2D(chainFrom, chainTo, pos) == Collinear {
		return t.appendToChain(data, pos)
	}
	return t.breakCollinearity(data, pos)
}

// appendToChain inserts a collinear point lying beyond one of the two
// chain ends.
func (t *Triangulation[V, E, F]) appendToChain(data V, pos XY) FixedVertex {
	// The nearest chain vertex to a point beyond a chain end is that
	// end. Walk outward for good measure in case the index returned a
	// different vertex on the same side.
	end, _ := t.index.nearest(pos)
	for {
		advanced := false
		for _, e := range t.dcel.outEdges(end) {
			w := t.dcel.target(e)
			if inBoundingBox(t.position(end), pos, t.position(w)) {
				end = w
				advanced = true
				break
			}
		}
		if !advanced {
			break
		}
	}

	outs := t.dcel.outEdges(end)
	if len(outs) != 1 {
		panic("geom: degenerate chain end must have exactly one incident edge")
	}
	v := t.dcel.insertVertex(data)
	t.dcel.connectEdgeToIsolated(outs[0].Rev(), v)
	return v
}

// breakCollinearity turns the degenerate chain into a fan of triangles
// around the first point lying off the chain's supporting line.
func (t *Triangulation[V, E, F]) breakCollinearity(data V, pos XY) FixedVertex {
	edges := t.chainEdgesInOrder()
	first := edges[0]
	last := edges[len(edges)-1]
	startPos := t.position(t.dcel.origin(first))
	endPos := t.position(t.dcel.target(last))

	// Orient the fan so that each chain edge sees the new vertex on its
	// left.
	isCCW := IsOrderedCCW(pos, startPos, endPos)
	seq := make([]FixedDirectedEdge, len(edges))
	if isCCW {
		for i, e := range edges {
			seq[len(edges)-1-i] = e
		}
	} else {
		for i, e := range edges {
			seq[i] = e.Rev()
		}
	}

	newVertex := t.dcel.insertVertex(data)
	lastEdge := t.dcel.connectEdgeToIsolated(seq[0], newVertex)
	for _, e := range seq {
		lastEdge = t.dcel.createFace(lastEdge, e).Rev()
	}
	t.allPointsOnLine = false
	return newVertex
}

// chainEdgesInOrder returns the chain's directed edges ordered from one
// end to the other, each pointing towards the far end.
func (t *Triangulation[V, E, F]) chainEdgesInOrder() []FixedDirectedEdge {
	// Walk from an arbitrary vertex to an end, then traverse the chain.
	end := FixedVertex(0)
	prev := noVertex
	for {
		var nextV FixedVertex = noVertex
		for _, e := range t.dcel.outEdges(end) {
			if w := t.dcel.target(e); w != prev {
				nextV = w
				break
			}
		}
		if nextV == noVertex {
			break
		}
		prev, end = end, nextV
	}

	var edges []FixedDirectedEdge
	cur := end
	prev = noVertex
	for {
		advanced := false
		for _, e := range t.dcel.outEdges(cur) {
			if w := t.dcel.target(e); w != prev {
				edges = append(edges, e)
				prev, cur = cur, w
				advanced = true
				break
			}
		}
		if !advanced {
			return edges
		}
	}
}

// insertIntoTriangle splits the inner face f into three triangles
// sharing the new vertex, then legalizes the face's former edges.
func (t *Triangulation[V, E, F]) insertIntoTriangle(f FixedFace, data V, pos XY) FixedVertex {
	newVertex := t.dcel.insertVertex(data)
	e1 := t.dcel.faces[f].edge
	e0 := t.dcel.prev(e1)
	e2 := t.dcel.next(e1)

	lastEdge := t.dcel.connectEdgeToIsolated(e2, newVertex).Rev()
	lastEdge = t.dcel.createFace(e0, lastEdge).Rev()
	t.dcel.createFace(e1, lastEdge)

	t.legalizeEdges([]FixedDirectedEdge{e0, e1, e2}, pos)
	return newVertex
}

// insertOnEdge splits the edge at the new vertex and re-triangulates
// the at most two incident triangles, then legalizes their outer edges.
// On a chain edge of the degenerate state no triangles are present and
// only the split happens.
func (t *Triangulation[V, E, F]) insertOnEdge(e FixedDirectedEdge, data V, pos XY) FixedVertex {
	from := t.dcel.origin(e)
	to := t.dcel.target(e)
	leftApex, hasLeft := t.strictApex(from, to)
	rightApex, hasRight := t.strictApex(to, from)

	newVertex := t.dcel.insertVertex(data)
	t.dcel.splitEdge(e, newVertex)

	var illegal []FixedDirectedEdge
	if hasLeft {
		e1 := t.mustEdgeBetween(to, leftApex)
		e0 := t.mustEdgeBetween(leftApex, from)
		mid := t.mustEdgeBetween(from, newVertex)
		t.dcel.createFace(mid, e0)
		illegal = append(illegal, e0, e1)
	}
	if hasRight {
		e0 := t.mustEdgeBetween(from, rightApex)
		e1 := t.mustEdgeBetween(rightApex, to)
		mid := t.mustEdgeBetween(to, newVertex)
		t.dcel.createFace(mid, e1)
		illegal = append(illegal, e0, e1)
	}
	t.legalizeEdges(illegal, pos)
	return newVertex
}

// strictApex returns the vertex opposite the edge from u to w on its
// left side, if the face there is a triangle (it is not when the edge
// borders the outer face or the degenerate chain).
func (t *Triangulation[V, E, F]) strictApex(u, w FixedVertex) (FixedVertex, bool) {
	e := t.mustEdgeBetween(u, w)
	apex := t.dcel.target(t.dcel.ccw(e))
	if Orient2D(t.position(u), t.position(w), t.position(apex)) == LeftTurn {
		return apex, true
	}
	return noVertex, false
}

func (t *Triangulation[V, E, F]) mustEdgeBetween(u, w FixedVertex) FixedDirectedEdge {
	e, ok := t.dcel.edgeBetween(u, w)
	if !ok {
		panic("geom: expected vertices to be connected")
	}
	return e
}

// insertOutsideConvexHull connects the new vertex to every hull edge
// visible from it, then legalizes those edges.
func (t *Triangulation[V, E, F]) insertOutsideConvexHull(e0 FixedDirectedEdge, data V, pos XY) FixedVertex {
	chEdges := t.visibleHullEdges(e0, pos)
	newVertex := t.dcel.insertVertex(data)

	lastEdge := t.dcel.connectEdgeToIsolated(chEdges[len(chEdges)-1], newVertex)
	for i := len(chEdges) - 1; i >= 0; i-- {
		lastEdge = t.dcel.createFace(lastEdge, chEdges[i]).Rev()
	}
	t.legalizeEdges(chEdges, pos)
	return newVertex
}

// visibleHullEdges collects the contiguous run of hull edges that see
// the point on their outer side, in ring order. first must be one of
// them.
func (t *Triangulation[V, E, F]) visibleHullEdges(first FixedDirectedEdge, pos XY) []FixedDirectedEdge {
	result := []FixedDirectedEdge{first}
	for e := t.dcel.next(first); t.sideQuery(e, pos) == LeftTurn; e = t.dcel.next(e) {
		result = append(result, e)
	}
	for e := t.dcel.prev(first); t.sideQuery(e, pos) == LeftTurn; e = t.dcel.prev(e) {
		result = append([]FixedDirectedEdge{e}, result...)
	}
	return result
}

// legalizeEdges restores the Delaunay property around a freshly
// inserted vertex. Every edge on the stack has the new vertex as the
// apex of the triangle on its left; if the vertex opposite the edge
// lies strictly inside the circumcircle of that triangle the edge is
// flipped and the two far edges of the former opposite triangle are
// re-examined. Hull edges are exempt from flipping.
func (t *Triangulation[V, E, F]) legalizeEdges(stack []FixedDirectedEdge, pos XY) {
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if t.isHullEdge(e) {
			continue
		}
		rev := e.Rev()
		e1 := t.dcel.next(rev)
		e2 := t.dcel.prev(rev)
		v0 := t.position(t.dcel.origin(e))
		v1 := t.position(t.dcel.target(e))
		opposite := t.position(t.dcel.target(e1))
		if ContainedInCircumference(v0, v1, pos, opposite) {
			t.dcel.flipCW(e)
			stack = append(stack, e1, e2)
		}
	}
}

func (t *Triangulation[V, E, F]) isHullEdge(e FixedDirectedEdge) bool {
	return t.dcel.face(e).IsOuter() || t.dcel.face(e.Rev()).IsOuter()
}
