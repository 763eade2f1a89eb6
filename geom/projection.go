package geom

// PointProjection is the result of projecting a query point onto the
// line through two edge endpoints. The projection is stored as the
// (scaled) factor along the edge direction together with the squared
// edge length, which keeps all comparisons free of divisions.
type PointProjection struct {
	factor   float64
	lengthSq float64
}

// ProjectPoint projects q onto the line going through p1 and p2.
func ProjectPoint(p1, p2, q XY) PointProjection {
	dir := p2.Sub(p1)
	return PointProjection{
		factor:   q.Sub(p1).Dot(dir),
		lengthSq: dir.LengthSq(),
	}
}

// IsBeforeEdge reports whether the projected point lies before p1.
func (p PointProjection) IsBeforeEdge() bool {
	return p.factor < 0
}

// IsAfterEdge reports whether the projected point lies behind p2.
func (p PointProjection) IsAfterEdge() bool {
	return p.factor > p.lengthSq
}

// IsOnEdge reports whether the projected point lies between p1 and p2
// (inclusive).
func (p PointProjection) IsOnEdge() bool {
	return !p.IsBeforeEdge() && !p.IsAfterEdge()
}

// Reversed returns the projection onto the same edge with its
// endpoints swapped.
func (p PointProjection) Reversed() PointProjection {
	return PointProjection{
		factor:   p.lengthSq - p.factor,
		lengthSq: p.lengthSq,
	}
}

// RelativePosition returns the projection as a fraction of the edge
// length: 0 projects onto p1, 1 onto p2, values outside [0, 1] project
// outside the edge.
func (p PointProjection) RelativePosition() float64 {
	return p.factor / p.lengthSq
}

// NearestPointOnEdge returns the point of the edge from p1 to p2 that
// is closest to q.
func NearestPointOnEdge(p1, p2, q XY) XY {
	s := ProjectPoint(p1, p2, q)
	switch {
	case s.IsBeforeEdge():
		return p1
	case s.IsAfterEdge():
		return p2
	default:
		dir := p2.Sub(p1)
		return p1.Add(dir.Scale(s.RelativePosition()))
	}
}

// DistanceSqToEdge returns the squared distance between q and the edge
// from p1 to p2.
func DistanceSqToEdge(p1, p2, q XY) float64 {
	nearest := NearestPointOnEdge(p1, p2, q)
	return q.Sub(nearest).LengthSq()
}

// distanceSqToTriangle returns the squared distance between q and the
// triangle with the given counterclockwise vertices. Points inside the
// triangle have distance zero.
func distanceSqToTriangle(vertices [3]XY, q XY) float64 {
	for i := 0; i < 3; i++ {
		from := vertices[i]
		to := vertices[(i+1)%3]
		// An inaccurate side test suffices here: a sign flip near the
		// boundary only selects between two edges with near-identical
		// distances.
		dir := to.Sub(from)
		if dir.Cross(q.Sub(from)) < 0 {
			return DistanceSqToEdge(from, to, q)
		}
	}
	return 0
}

// IntersectsEdgeNonCollinear reports whether the edge from0-to0 and the
// edge from1-to1 intersect in at least one point. The edges must not be
// collinear with each other; this is a precondition and violating it
// panics.
func IntersectsEdgeNonCollinear(from0, to0, from1, to1 XY) bool {
	otherFrom := Orient2D(from0, to0, from1)
	otherTo := Orient2D(from0, to0, to1)
	selfFrom := Orient2D(from1, to1, from0)
	selfTo := Orient2D(from1, to1, to0)

	if otherFrom == Collinear && otherTo == Collinear &&
		selfFrom == Collinear && selfTo == Collinear {
		panic("IntersectsEdgeNonCollinear: given edges are collinear")
	}
	return otherFrom != otherTo && selfFrom != selfTo
}
