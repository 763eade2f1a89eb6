package geom_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dylanowen/delaunay/geom"
)

type pointTri = geom.Triangulation[geom.Point, struct{}, struct{}]

func newPointTri() *pointTri {
	return geom.NewTriangulation[geom.Point, struct{}, struct{}]()
}

func insertAll(t *testing.T, tri *pointTri, points []geom.XY) []geom.FixedVertex {
	t.Helper()
	handles := make([]geom.FixedVertex, len(points))
	for i, p := range points {
		v, err := tri.Insert(geom.Point(p))
		require.NoError(t, err)
		handles[i] = v
	}
	return handles
}

// checkInvariants verifies the structural, geometric and Delaunay
// invariants that must hold after every public mutation.
func checkInvariants(t *testing.T, tri *pointTri) {
	t.Helper()

	// Twin and linking invariants.
	for _, ue := range tri.UndirectedEdges() {
		d := ue.AsDirected()
		require.Equal(t, d.Fix(), d.Rev().Rev().Fix())
		require.Equal(t, d.From().Fix(), d.Rev().To().Fix())
		require.Equal(t, d.To().Fix(), d.Rev().From().Fix())
		require.Equal(t, d.Fix(), d.Next().Prev().Fix())
		require.Equal(t, d.Fix(), d.Prev().Next().Fix())
		require.Equal(t, d.Face().Fix(), d.Next().Face().Fix())
	}

	// Inner faces are triangles with counterclockwise vertices, and
	// their edges agree about the face.
	for _, f := range tri.Triangles() {
		adj := f.AdjacentEdge()
		require.Equal(t, adj.Fix(), adj.Next().Next().Next().Fix())
		for _, e := range f.AdjacentEdges() {
			require.Equal(t, f.Fix(), e.Face().Fix())
		}
		ps := f.Positions()
		require.Equal(t, geom.LeftTurn, geom.Orient2D(ps[0], ps[1], ps[2]))
	}

	// The outer face cycle closes and is consistently labelled.
	if outerEdge, ok := tri.OuterFaceHandle().AdjacentEdge(); ok {
		count := 0
		for e := outerEdge; ; {
			require.True(t, e.IsOuterEdge())
			count++
			require.LessOrEqual(t, count, 2*tri.NumEdges())
			e = e.Next()
			if e.Fix() == outerEdge.Fix() {
				break
			}
		}
	}

	// Vertex-edge consistency; isolated vertices only exist while the
	// triangulation holds a single vertex.
	for _, v := range tri.Vertices() {
		if e, ok := v.OutEdge(); ok {
			require.Equal(t, v.Fix(), e.From().Fix())
			for _, oe := range v.OutEdges() {
				require.Equal(t, v.Fix(), oe.From().Fix())
			}
		} else {
			require.True(t, tri.AllPointsOnLine())
			require.Equal(t, 1, tri.NumVertices())
		}
	}

	// Delaunay property: no vertex strictly inside the circumcircle of
	// a neighboring triangle.
	for _, ue := range tri.UndirectedEdges() {
		d := ue.AsDirected()
		if d.IsPartOfConvexHull() {
			continue
		}
		left, okL := d.OppositeVertex()
		right, okR := d.Rev().OppositeVertex()
		require.True(t, okL)
		require.True(t, okR)
		require.False(t, geom.ContainedInCircumference(
			d.From().Position(), d.To().Position(), left.Position(), right.Position(),
		), "edge %v violates the Delaunay property", d.Fix())
	}

	checkCounts(t, tri)
	checkPlanarity(t, tri)

	// Locate closure: every vertex is found at its own position.
	for _, v := range tri.Vertices() {
		loc := tri.Locate(v.Position())
		require.Equal(t, geom.OnPoint, loc.Kind)
		require.Equal(t, v.Fix(), loc.Vertex)
	}
}

func checkCounts(t *testing.T, tri *pointTri) {
	t.Helper()
	require.Equal(t, tri.NumFaces()-1, tri.NumTriangles())
	if tri.AllPointsOnLine() {
		require.Equal(t, 1, tri.NumFaces())
		require.Equal(t, max(tri.NumVertices()-1, 0), tri.NumEdges())
	} else {
		require.Greater(t, tri.NumTriangles(), 0)
		// Euler's formula for a connected planar subdivision.
		require.Equal(t, 2, tri.NumVertices()-tri.NumEdges()+tri.NumFaces())
	}
}

// checkPlanarity verifies that no two edges cross except at shared
// endpoints. Pairs are capped to keep large random tests fast.
func checkPlanarity(t *testing.T, tri *pointTri) {
	t.Helper()
	edges := tri.UndirectedEdges()
	const maxPairs = 3000
	pairs := 0
	for i := 0; i < len(edges) && pairs < maxPairs; i++ {
		p := edges[i].Positions()
		for j := i + 1; j < len(edges) && pairs < maxPairs; j++ {
			q := edges[j].Positions()
			pairs++
			if p[0] == q[0] || p[0] == q[1] || p[1] == q[0] || p[1] == q[1] {
				continue
			}
			if geom.Orient2D(p[0], p[1], q[0]) == geom.Collinear &&
				geom.Orient2D(p[0], p[1], q[1]) == geom.Collinear &&
				geom.Orient2D(q[0], q[1], p[0]) == geom.Collinear {
				// Fully collinear pair (degenerate chain): they must
				// not overlap, which non-adjacent chain edges never do.
				continue
			}
			require.False(t, geom.IntersectsEdgeNonCollinear(p[0], p[1], q[0], q[1]),
				"edges %v and %v cross", edges[i].Fix(), edges[j].Fix())
		}
	}
}

func shuffledXYs(rnd *rand.Rand, points []geom.XY) []geom.XY {
	out := append([]geom.XY(nil), points...)
	rnd.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// removeAt removes the vertex at the given position, resolving the
// current handle through locate (fixed handles may have been remapped
// by earlier removals).
func removeAt(t *testing.T, tri *pointTri, p geom.XY) {
	t.Helper()
	loc := tri.Locate(p)
	require.Equal(t, geom.OnPoint, loc.Kind, "no vertex at %v", p)
	data := tri.Remove(loc.Vertex)
	require.Equal(t, p, data.Position())
}
