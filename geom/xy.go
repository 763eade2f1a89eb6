package geom

import "math"

// XY is a pair of X and Y coordinates. It can represent a location on a
// plane, or a 2D vector in the real vector space.
type XY struct {
	X, Y float64
}

// Sub returns the result of subtracting o from w (in the same manner as
// vector subtraction).
func (w XY) Sub(o XY) XY {
	return XY{w.X - o.X, w.Y - o.Y}
}

// Add returns the result of adding w to o (in the same manner as vector
// addition).
func (w XY) Add(o XY) XY {
	return XY{w.X + o.X, w.Y + o.Y}
}

// Scale returns the XY where the X and Y have been scaled by s.
func (w XY) Scale(s float64) XY {
	return XY{w.X * s, w.Y * s}
}

// Cross returns the 2D cross product of w and o. This is defined as the
// signed area of the parallelogram spanned by w and o.
func (w XY) Cross(o XY) float64 {
	return w.X*o.Y - w.Y*o.X
}

// Dot returns the dot product of w and o.
func (w XY) Dot(o XY) float64 {
	return w.X*o.X + w.Y*o.Y
}

// Midpoint returns the midpoint of w and o.
func (w XY) Midpoint(o XY) XY {
	return w.Add(o).Scale(0.5)
}

// LengthSq returns the squared length of the vector.
func (w XY) LengthSq() float64 {
	return w.Dot(w)
}

// isFinite reports whether both coordinates are finite (not NaN and not
// an infinity). Only finite coordinates satisfy the scalar contract of
// the triangulation.
func (w XY) isFinite() bool {
	return !math.IsNaN(w.X) && !math.IsInf(w.X, 0) &&
		!math.IsNaN(w.Y) && !math.IsInf(w.Y, 0)
}
