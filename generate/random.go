// Package generate produces point sets for exercising the
// triangulation: uniformly random points, grid-snapped points (which
// force duplicate and collinear configurations) and cocircular points.
package generate

import (
	"math/rand"

	"github.com/dylanowen/delaunay/geom"
)

// RandomXYOnGrid returns a point with integer coordinates in
// [min, max). Grid points collide and line up frequently, which
// exercises the duplicate, on-edge and collinear insertion paths.
func RandomXYOnGrid(rnd *rand.Rand, min, max int) geom.XY {
	x := rnd.Intn(max-min) + min
	y := rnd.Intn(max-min) + min
	return geom.XY{
		X: float64(x),
		Y: float64(y),
	}
}

// RandomXY returns a point uniformly distributed in the axis-aligned
// box spanned by the two corners.
func RandomXY(rnd *rand.Rand, minCorner, maxCorner geom.XY) geom.XY {
	return geom.XY{
		X: minCorner.X + rnd.Float64()*(maxCorner.X-minCorner.X),
		Y: minCorner.Y + rnd.Float64()*(maxCorner.Y-minCorner.Y),
	}
}

// RandomXYs returns n points drawn with RandomXY.
func RandomXYs(rnd *rand.Rand, n int, minCorner, maxCorner geom.XY) []geom.XY {
	out := make([]geom.XY, n)
	for i := range out {
		out[i] = RandomXY(rnd, minCorner, maxCorner)
	}
	return out
}
