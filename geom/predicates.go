package geom

import (
	"math"
	"math/big"
)

// Orientation describes how three points are arranged in the plane.
type Orientation int

const (
	// LeftTurn indicates that the third point is on the left of the line
	// from the first point to the second (counterclockwise arrangement).
	LeftTurn Orientation = iota + 1
	// Collinear indicates that all three points lie on a common line.
	Collinear
	// RightTurn indicates that the third point is on the right of the
	// line from the first point to the second (clockwise arrangement).
	RightTurn
)

func (o Orientation) String() string {
	switch o {
	case LeftTurn:
		return "left turn"
	case Collinear:
		return "collinear"
	case RightTurn:
		return "right turn"
	default:
		return "invalid orientation"
	}
}

// Static filter bounds, following Shewchuk's "Adaptive Precision
// Floating-Point Arithmetic and Fast Robust Geometric Predicates". If
// the float64 result is larger in magnitude than the bound, its sign is
// already exact and the slow path can be skipped.
var (
	epsilon          = math.Ldexp(1, -53)
	orientErrBound   = (3 + 16*epsilon) * epsilon
	incircleErrBound = (10 + 96*epsilon) * epsilon
)

// Orient2D returns the orientation of c relative to the line through a
// and b. The result is the exact sign of the determinant
// (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X); a fast float64 evaluation
// is used when a static error bound shows it to be trustworthy, and an
// exact big.Rat evaluation otherwise.
func Orient2D(a, b, c XY) Orientation {
	detLeft := (b.X - a.X) * (c.Y - a.Y)
	detRight := (b.Y - a.Y) * (c.X - a.X)
	det := detLeft - detRight

	errBound := orientErrBound * (math.Abs(detLeft) + math.Abs(detRight))
	if det > errBound {
		return LeftTurn
	}
	if det < -errBound {
		return RightTurn
	}
	return orient2DExact(a, b, c)
}

func orient2DExact(a, b, c XY) Orientation {
	ax, ay := new(big.Rat).SetFloat64(a.X), new(big.Rat).SetFloat64(a.Y)
	bx, by := new(big.Rat).SetFloat64(b.X), new(big.Rat).SetFloat64(b.Y)
	cx, cy := new(big.Rat).SetFloat64(c.X), new(big.Rat).SetFloat64(c.Y)

	lhs := new(big.Rat).Mul(
		new(big.Rat).Sub(bx, ax),
		new(big.Rat).Sub(cy, ay),
	)
	rhs := new(big.Rat).Mul(
		new(big.Rat).Sub(by, ay),
		new(big.Rat).Sub(cx, ax),
	)
	switch lhs.Cmp(rhs) {
	case +1:
		return LeftTurn
	case -1:
		return RightTurn
	default:
		return Collinear
	}
}

// IsOrderedCCW reports whether c is on the left of the line through a
// and b, or on the line itself.
func IsOrderedCCW(a, b, c XY) bool {
	return Orient2D(a, b, c) != RightTurn
}

// ContainedInCircumference reports whether p lies strictly inside the
// circumcircle of the triangle (a, b, c). The triangle vertices must be
// in counterclockwise order. A point exactly on the circle does not
// count as contained.
func ContainedInCircumference(a, b, c, p XY) bool {
	adx, ady := a.X-p.X, a.Y-p.Y
	bdx, bdy := b.X-p.X, b.Y-p.Y
	cdx, cdy := c.X-p.X, c.Y-p.Y

	bdxcdy, cdxbdy := bdx*cdy, cdx*bdy
	cdxady, adxcdy := cdx*ady, adx*cdy
	adxbdy, bdxady := adx*bdy, bdx*ady
	alift := adx*adx + ady*ady
	blift := bdx*bdx + bdy*bdy
	clift := cdx*cdx + cdy*cdy

	det := alift*(bdxcdy-cdxbdy) + blift*(cdxady-adxcdy) + clift*(adxbdy-bdxady)

	permanent := (math.Abs(bdxcdy)+math.Abs(cdxbdy))*alift +
		(math.Abs(cdxady)+math.Abs(adxcdy))*blift +
		(math.Abs(adxbdy)+math.Abs(bdxady))*clift
	errBound := incircleErrBound * permanent
	if det > errBound {
		return true
	}
	if det < -errBound {
		return false
	}
	return containedInCircumferenceExact(a, b, c, p)
}

func containedInCircumferenceExact(a, b, c, p XY) bool {
	px, py := new(big.Rat).SetFloat64(p.X), new(big.Rat).SetFloat64(p.Y)

	rel := func(v XY) (dx, dy, lift *big.Rat) {
		dx = new(big.Rat).Sub(new(big.Rat).SetFloat64(v.X), px)
		dy = new(big.Rat).Sub(new(big.Rat).SetFloat64(v.Y), py)
		lift = new(big.Rat).Add(
			new(big.Rat).Mul(dx, dx),
			new(big.Rat).Mul(dy, dy),
		)
		return dx, dy, lift
	}
	adx, ady, alift := rel(a)
	bdx, bdy, blift := rel(b)
	cdx, cdy, clift := rel(c)

	minor := func(x0, y0, x1, y1 *big.Rat) *big.Rat {
		return new(big.Rat).Sub(
			new(big.Rat).Mul(x0, y1),
			new(big.Rat).Mul(x1, y0),
		)
	}
	det := new(big.Rat).Mul(alift, minor(bdx, bdy, cdx, cdy))
	det.Sub(det, new(big.Rat).Mul(blift, minor(adx, ady, cdx, cdy)))
	det.Add(det, new(big.Rat).Mul(clift, minor(adx, ady, bdx, bdy)))

	return det.Sign() > 0
}
