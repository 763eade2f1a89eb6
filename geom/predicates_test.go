package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrient2D(t *testing.T) {
	p1 := XY{0, 0}
	p2 := XY{1, 1}

	assert.Equal(t, RightTurn, Orient2D(p1, p2, XY{1, 0}))
	assert.Equal(t, LeftTurn, Orient2D(p1, p2, XY{0, 1}))
	assert.Equal(t, Collinear, Orient2D(p1, p2, XY{0.5, 0.5}))
}

func TestOrient2DExactCollinear(t *testing.T) {
	// Points of the form (x, x) lie exactly on the line y = x for any
	// float64 value of x, even where x itself is not exactly
	// representable in decimal.
	a := XY{0.1, 0.1}
	b := XY{0.2, 0.2}
	c := XY{0.3, 0.3}
	require.Equal(t, Collinear, Orient2D(a, b, c))
	require.Equal(t, Collinear, Orient2D(c, a, b))

	// A one-ulp perturbation, far below the rounding error of the naive
	// determinant, must still flip the verdict.
	cUp := XY{0.3, math.Nextafter(0.3, 1)}
	cDown := XY{0.3, math.Nextafter(0.3, 0)}
	assert.Equal(t, LeftTurn, Orient2D(a, b, cUp))
	assert.Equal(t, RightTurn, Orient2D(a, b, cDown))
}

func TestOrient2DAntisymmetry(t *testing.T) {
	a := XY{0.25, -3.5}
	b := XY{12.125, 7}
	c := XY{-2, 19.75}
	require.Equal(t, LeftTurn, Orient2D(a, b, c))
	assert.Equal(t, RightTurn, Orient2D(b, a, c))
	assert.Equal(t, LeftTurn, Orient2D(b, c, a))
	assert.Equal(t, LeftTurn, Orient2D(c, a, b))
}

func TestIsOrderedCCW(t *testing.T) {
	assert.True(t, IsOrderedCCW(XY{0, 0}, XY{1, 0}, XY{1, 1}))
	assert.True(t, IsOrderedCCW(XY{0, 0}, XY{1, 0}, XY{2, 0}))
	assert.False(t, IsOrderedCCW(XY{0, 0}, XY{1, 0}, XY{1, -1}))
}

func TestContainedInCircumference(t *testing.T) {
	// Circle of radius 2 around offset, spanned counterclockwise.
	a1, a2, a3 := 3.0, 2.0, 1.0
	offset := XY{0.5, 0.7}
	v1 := XY{math.Sin(a1), math.Cos(a1)}.Scale(2).Add(offset)
	v2 := XY{math.Sin(a2), math.Cos(a2)}.Scale(2).Add(offset)
	v3 := XY{math.Sin(a3), math.Cos(a3)}.Scale(2).Add(offset)
	require.Equal(t, LeftTurn, Orient2D(v1, v2, v3))

	assert.True(t, ContainedInCircumference(v1, v2, v3, offset))
	shrunk := v1.Sub(offset).Scale(0.9).Add(offset)
	assert.True(t, ContainedInCircumference(v1, v2, v3, shrunk))
	expanded := v1.Sub(offset).Scale(1.1).Add(offset)
	assert.False(t, ContainedInCircumference(v1, v2, v3, expanded))
	assert.False(t, ContainedInCircumference(v1, v2, v3, offset.Add(XY{2, 2})))

	assert.True(t, ContainedInCircumference(
		XY{0, 0}, XY{0, -1}, XY{1, 0}, XY{0, -0.5},
	))
}

func TestContainedInCircumferenceIsStrict(t *testing.T) {
	// The four corners of the unit square are cocircular: no corner is
	// strictly inside the circle through the other three.
	a := XY{0, 0}
	b := XY{1, 0}
	c := XY{1, 1}
	d := XY{0, 1}
	assert.False(t, ContainedInCircumference(a, b, c, d))
	assert.False(t, ContainedInCircumference(b, c, d, a))

	center := XY{0.5, 0.5}
	assert.True(t, ContainedInCircumference(a, b, c, center))

	// Nudging the query point off the circle by one ulp must be decided
	// exactly.
	in := XY{0, math.Nextafter(1, 0)}
	out := XY{0, math.Nextafter(1, 2)}
	assert.True(t, ContainedInCircumference(a, b, c, in))
	assert.False(t, ContainedInCircumference(a, b, c, out))
}
