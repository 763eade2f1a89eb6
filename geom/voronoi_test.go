package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dylanowen/delaunay/geom"
)

func TestVoronoiCounts(t *testing.T) {
	tri := newPointTri()
	insertAll(t, tri, []geom.XY{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {2, 2}})

	v := tri.Voronoi()
	assert.Equal(t, tri.NumTriangles(), v.NumVertices())
	assert.Equal(t, tri.NumVertices(), v.NumFaces())
	assert.Equal(t, tri.NumEdges(), v.NumEdges())
	assert.Len(t, v.Vertices(), v.NumVertices())
	assert.Len(t, v.Faces(), v.NumFaces())
	assert.Len(t, v.Edges(), v.NumEdges())
}

func TestVoronoiVertexIsCircumcenter(t *testing.T) {
	tri := newPointTri()
	insertAll(t, tri, []geom.XY{{0, 0}, {2, 0}, {0, 2}})

	v := tri.Voronoi()
	vertices := v.Vertices()
	require.Len(t, vertices, 1)
	assert.Equal(t, geom.XY{1, 1}, vertices[0].Position())
	assert.Equal(t, tri.Triangles()[0].Fix(), vertices[0].AsDelaunayFace().Fix())
}

func TestVoronoiDuality(t *testing.T) {
	tri := newPointTri()
	insertAll(t, tri, []geom.XY{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {2, 2}})
	v := tri.Voronoi()

	// Every Voronoi face is backed by a Delaunay vertex and reports its
	// site there.
	for _, f := range v.Faces() {
		assert.Equal(t, f.AsDelaunayVertex().Position(), f.Site())
	}

	// Hull sites own unbounded cells; the interior site does not.
	for _, f := range v.Faces() {
		if f.Site() == (geom.XY{2, 2}) {
			assert.False(t, f.IsUnbounded())
		} else {
			assert.True(t, f.IsUnbounded())
		}
	}

	// A Voronoi edge has a missing endpoint exactly when its Delaunay
	// edge borders the outer face.
	for _, e := range v.Edges() {
		_, _, hasFrom, hasTo := e.Vertices()
		onHull := e.AsDelaunayEdge().IsPartOfConvexHull()
		assert.Equal(t, onHull, !hasFrom || !hasTo)

		faces := e.Faces()
		vs := e.AsDelaunayEdge().Vertices()
		assert.Equal(t, vs[0].Position(), faces[0].Site())
		assert.Equal(t, vs[1].Position(), faces[1].Site())
	}

	// Round trips between the two handle spaces.
	for _, f := range tri.Triangles() {
		assert.Equal(t, f.Fix(), f.AsVoronoiVertex().AsDelaunayFace().Fix())
	}
	for _, ue := range tri.UndirectedEdges() {
		assert.Equal(t, ue.Fix(), ue.AsVoronoiEdge().AsDelaunayEdge().Fix())
	}
}

func TestVoronoiVertexEquidistantFromSites(t *testing.T) {
	tri := newPointTri()
	insertAll(t, tri, []geom.XY{{0, 0}, {5, 1}, {3, 6}, {-2, 4}, {2, 2}})

	for _, vv := range tri.Voronoi().Vertices() {
		center := vv.Position()
		ps := vv.AsDelaunayFace().Positions()
		d0 := center.Sub(ps[0]).LengthSq()
		assert.InDelta(t, d0, center.Sub(ps[1]).LengthSq(), 1e-9)
		assert.InDelta(t, d0, center.Sub(ps[2]).LengthSq(), 1e-9)
	}
}
