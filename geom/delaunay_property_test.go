package geom_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dylanowen/delaunay/generate"
	"github.com/dylanowen/delaunay/geom"
)

func TestRandomGridInsertions(t *testing.T) {
	// Grid points force duplicates, collinear runs and points landing
	// exactly on existing edges.
	rnd := rand.New(rand.NewSource(0))
	tri := newPointTri()
	seen := make(map[geom.XY]bool)
	for i := 0; i < 60; i++ {
		p := generate.RandomXYOnGrid(rnd, 0, 8)
		before := tri.NumVertices()
		v, err := tri.Insert(geom.Point(p))
		require.NoError(t, err)
		if seen[p] {
			assert.Equal(t, before, tri.NumVertices(), "duplicate insert must not add a vertex")
		} else {
			assert.Equal(t, before+1, tri.NumVertices())
			seen[p] = true
		}
		assert.Equal(t, p, tri.VertexData(v).Position())
		checkInvariants(t, tri)
	}
}

func TestRandomUniformInsertions(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	points := generate.RandomXYs(rnd, 120, geom.XY{-50, -50}, geom.XY{50, 50})
	tri := newPointTri()
	insertAll(t, tri, points)
	checkInvariants(t, tri)
}

func TestExactlyCocircularPoints(t *testing.T) {
	// Twelve integer points on the circle of radius 5 around the
	// origin; every subset of four is exactly cocircular, the worst
	// case for the strict incircle test.
	circle := []geom.XY{
		{5, 0}, {4, 3}, {3, 4}, {0, 5}, {-3, 4}, {-4, 3},
		{-5, 0}, {-4, -3}, {-3, -4}, {0, -5}, {3, -4}, {4, -3},
	}
	for seed := int64(0); seed < 4; seed++ {
		t.Run(fmt.Sprintf("order_%d", seed), func(t *testing.T) {
			rnd := rand.New(rand.NewSource(seed))
			tri := newPointTri()
			insertAll(t, tri, shuffledXYs(rnd, circle))
			assert.Equal(t, 12, tri.NumVertices())
			assert.Equal(t, 10, tri.NumTriangles())
			checkInvariants(t, tri)

			_, err := tri.Insert(geom.Point{0, 0})
			require.NoError(t, err)
			checkInvariants(t, tri)
		})
	}
}

func TestNearlyCocircularPoints(t *testing.T) {
	tri := newPointTri()
	insertAll(t, tri, generate.OnCircle(geom.XY{0.3, -0.7}, 10, 32))
	assert.Equal(t, 32, tri.NumVertices())
	checkInvariants(t, tri)
}

func TestInsertRemoveRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	points := []geom.XY{
		{0, 0}, {10, 0}, {10, 10}, {0, 10}, {5, 5},
		{2, 3}, {7, 1}, {1, 8}, {9, 6}, {4, 9}, {6, 4},
	}
	for round := 0; round < 4; round++ {
		tri := newPointTri()
		insertAll(t, tri, points)
		require.Equal(t, len(points), tri.NumVertices())
		checkInvariants(t, tri)

		for _, p := range shuffledXYs(rnd, points) {
			removeAt(t, tri, p)
			checkInvariants(t, tri)
		}
		assert.Equal(t, 0, tri.NumVertices())
		assert.Equal(t, 0, tri.NumEdges())
		assert.Equal(t, 1, tri.NumFaces())
		assert.True(t, tri.AllPointsOnLine())
	}
}

func TestRemoveHullVertices(t *testing.T) {
	// Removing hull vertices exercises convex hull repair with pocket
	// filling.
	tri := newPointTri()
	points := append(
		generate.OnCircle(geom.XY{0, 0}, 20, 10),
		geom.XY{0, 0}, geom.XY{3, 1}, geom.XY{-2, 4},
	)
	insertAll(t, tri, points)
	checkInvariants(t, tri)

	// The circle points are all on the hull; remove them one by one.
	for i := 0; i < 10; i++ {
		removeAt(t, tri, points[i])
		checkInvariants(t, tri)
	}
	assert.Equal(t, 3, tri.NumVertices())
}

func TestRemoveDownToCollinear(t *testing.T) {
	tri := newPointTri()
	insertAll(t, tri, []geom.XY{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {1, 5}})
	require.False(t, tri.AllPointsOnLine())

	// Removing the apex leaves four collinear vertices: the mesh must
	// drop back to the degenerate chain.
	removeAt(t, tri, geom.XY{1, 5})
	assert.True(t, tri.AllPointsOnLine())
	assert.Equal(t, 4, tri.NumVertices())
	assert.Equal(t, 3, tri.NumEdges())
	assert.Equal(t, 1, tri.NumFaces())
	checkInvariants(t, tri)

	// And the chain still accepts new points.
	insertAll(t, tri, []geom.XY{{4, 0}, {2, 2}})
	assert.False(t, tri.AllPointsOnLine())
	checkInvariants(t, tri)
}

func TestRemoveFromChain(t *testing.T) {
	tri := newPointTri()
	insertAll(t, tri, []geom.XY{{0, 0}, {1, 0}, {2, 0}, {3, 0}})

	removeAt(t, tri, geom.XY{1, 0}) // interior chain vertex
	assert.Equal(t, 3, tri.NumVertices())
	assert.Equal(t, 2, tri.NumEdges())
	checkInvariants(t, tri)

	removeAt(t, tri, geom.XY{0, 0}) // chain end
	assert.Equal(t, 2, tri.NumVertices())
	assert.Equal(t, 1, tri.NumEdges())
	checkInvariants(t, tri)

	removeAt(t, tri, geom.XY{3, 0})
	removeAt(t, tri, geom.XY{2, 0})
	assert.Equal(t, 0, tri.NumVertices())
	assert.True(t, tri.AllPointsOnLine())
}

func TestMixedInsertRemoveStress(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	tri := newPointTri()
	var live []geom.XY
	present := make(map[geom.XY]bool)

	for step := 0; step < 150; step++ {
		if len(live) > 0 && rnd.Intn(3) == 0 {
			idx := rnd.Intn(len(live))
			p := live[idx]
			removeAt(t, tri, p)
			delete(present, p)
			live = append(live[:idx], live[idx+1:]...)
		} else {
			p := generate.RandomXYOnGrid(rnd, 0, 12)
			_, err := tri.Insert(geom.Point(p))
			require.NoError(t, err)
			if !present[p] {
				present[p] = true
				live = append(live, p)
			}
		}
		require.Equal(t, len(live), tri.NumVertices())
		if step%10 == 9 {
			checkInvariants(t, tri)
		}
	}
	checkInvariants(t, tri)
}
