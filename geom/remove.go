package geom

import "sort"

// Remove deletes the given vertex and all of its incident edges from
// the triangulation, re-triangulates the resulting hole and restores
// the Delaunay property. The removed vertex's payload is returned.
//
// Fixed handles held across this call may be remapped by arena
// compaction; re-query anything that matters.
func (t *Triangulation[V, E, F]) Remove(v FixedVertex) V {
	t.dcel.checkVertex(v)

	// Collect the neighbors in counterclockwise order. If the vertex is
	// on the convex hull, restart the collection just after the hull
	// gap so that the list runs from one hull neighbor to the other.
	var neighbors []FixedVertex
	hullRemoval := false
	for _, e := range t.dcel.outEdges(v) {
		if t.dcel.face(e).IsOuter() {
			hullRemoval = true
			neighbors = neighbors[:0]
			start := t.dcel.ccw(e)
			for x := start; ; {
				neighbors = append(neighbors, t.dcel.target(x))
				x = t.dcel.ccw(x)
				if x == start {
					break
				}
			}
			break
		}
		neighbors = append(neighbors, t.dcel.target(e))
	}

	result := t.dcel.removeVertex(v, OuterFace)
	t.index.remove(result.data.Position(), v)

	if result.updatedVertex != noVertex {
		// Another vertex was swapped into the freed slot; patch the
		// locate index and the neighbor list.
		movedPos := t.position(v)
		t.index.update(movedPos, result.updatedVertex, v)
		for i, n := range neighbors {
			if n == result.updatedVertex {
				neighbors[i] = v
				break
			}
		}
	}

	if t.allPointsOnLine {
		// Removing an interior chain vertex splits the chain in two;
		// rebuild it from the remaining vertices.
		t.dcel.clearEdgesAndFaces()
		t.rebuildChain()
	} else {
		if hullRemoval {
			t.repairConvexHull(neighbors)
			if t.dcel.numFaces() == 1 {
				t.makeDegenerate()
			}
		} else {
			first := t.mustEdgeBetween(neighbors[0], neighbors[1])
			var ring []FixedDirectedEdge
			for e := first; ; {
				ring = append(ring, e)
				e = t.dcel.next(e)
				if e == first {
					break
				}
			}
			t.fillHole(ring)
		}
	}
	return result.data
}

// repairConvexHull re-establishes the convex hull after a hull vertex
// was removed. The neighbors of the removed vertex are given in
// counterclockwise order, running from one hull neighbor to the other.
// The removal can leave multiple concave "pockets" behind; each is
// closed with one new hull edge and re-triangulated.
func (t *Triangulation[V, E, F]) repairConvexHull(neighbors []FixedVertex) {
	// Determine the new hull chain with a monotone scan, popping on
	// left turns (the outer ring runs clockwise as seen from inside).
	var ch []FixedVertex
	for _, n := range neighbors {
		np := t.position(n)
		for len(ch) >= 2 {
			p0 := t.position(ch[len(ch)-2])
			p1 := t.position(ch[len(ch)-1])
			if Orient2D(p0, p1, np) != LeftTurn {
				break
			}
			ch = ch[:len(ch)-1]
		}
		ch = append(ch, n)
	}

	// Any hull edge missing from the mesh marks a pocket: walk its
	// boundary, close it and fill it.
	for i := 0; i+1 < len(ch); i++ {
		v0, v1 := ch[i], ch[i+1]
		if _, ok := t.dcel.edgeBetween(v0, v1); ok {
			continue
		}
		pos := 0
		for neighbors[pos] != v0 {
			pos++
		}
		var edges []FixedDirectedEdge
		cur := t.mustEdgeBetween(v0, neighbors[pos+1])
		for {
			edges = append(edges, cur)
			cur = t.dcel.next(cur)
			if t.dcel.origin(cur) == v1 {
				break
			}
		}
		closing := t.dcel.createFace(edges[len(edges)-1], edges[0])
		edges = append(edges, closing)
		t.fillHole(edges)
	}
}

// makeDegenerate drops the mesh to the degenerate state: the remaining
// vertices are collinear, so all edges and faces are cleared and the
// sorted chain is rebuilt.
func (t *Triangulation[V, E, F]) makeDegenerate() {
	t.dcel.clearEdgesAndFaces()
	t.allPointsOnLine = true
	t.rebuildChain()
}

// rebuildChain connects the (collinear) vertices into a chain sorted
// along their common line.
func (t *Triangulation[V, E, F]) rebuildChain() {
	n := t.dcel.numVertices()
	if n < 2 {
		return
	}
	order := make([]FixedVertex, n)
	for i := range order {
		order[i] = FixedVertex(i)
	}
	// Lexicographic order is monotone along any line, and exact.
	sort.Slice(order, func(i, j int) bool {
		a, b := t.position(order[i]), t.position(order[j])
		return a.X < b.X || (a.X == b.X && a.Y < b.Y)
	})

	last := t.dcel.connectTwoIsolated(order[0], order[1], OuterFace)
	for _, v := range order[2:] {
		last = t.dcel.connectEdgeToIsolated(last, v)
	}
}

// fillHole triangulates a hole bounded by the given ring of edges (a
// full next-cycle) by fanning from the last edge's target, then
// legalizes the interior edges. Ring edges are never flipped.
func (t *Triangulation[V, E, F]) fillHole(ring []FixedDirectedEdge) {
	border := make(map[FixedUndirectedEdge]bool, len(ring))
	for _, e := range ring {
		border[e.AsUndirected()] = true
	}

	last := ring[len(ring)-1]
	var todo []FixedDirectedEdge
	for i := 2; i < len(ring)-1; i++ {
		todo = append(todo, t.dcel.createFace(last, ring[i]))
	}

	for len(todo) > 0 {
		e := todo[len(todo)-1]
		todo = todo[:len(todo)-1]

		rev := e.Rev()
		v0 := t.position(t.dcel.origin(e))
		v1 := t.position(t.dcel.target(e))
		left := t.position(t.dcel.origin(t.dcel.prev(e)))
		right := t.position(t.dcel.target(t.dcel.next(rev)))

		if !ContainedInCircumference(v0, v1, left, right) {
			continue
		}
		// The four boundary edges of the quadrilateral around e, captured
		// before the flip invalidates the links.
		quad := [4]FixedDirectedEdge{
			t.dcel.next(rev),
			t.dcel.ccw(e),
			t.dcel.next(e),
			t.dcel.prev(rev).Rev(),
		}
		t.dcel.flipCW(e)
		for _, q := range quad {
			if !border[q.AsUndirected()] {
				todo = append(todo, q)
			}
		}
	}
}
