package generate

import (
	"math"

	"github.com/dylanowen/delaunay/geom"
)

// OnCircle computes n points on the circle with the given center and
// radius, evenly spaced and starting at the top. Cocircular input is
// the worst case for incircle-based legalization. n must be at least 3
// or it will panic.
func OnCircle(center geom.XY, radius float64, n int) []geom.XY {
	if n <= 2 {
		panic(n)
	}
	points := make([]geom.XY, n)
	for i := 0; i < n; i++ {
		angle := math.Pi/2 + float64(i)/float64(n)*2*math.Pi
		points[i] = geom.XY{
			X: center.X + math.Cos(angle)*radius,
			Y: center.Y + math.Sin(angle)*radius,
		}
	}
	return points
}
