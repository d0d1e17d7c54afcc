package internal

import "math"

type Circle struct {
	Center Point
	Radius float64
}

// Contains is inclusive, and a point within a radius relative tolerance of the
// boundary counts as inside. Without the slack, a point lying exactly on a
// circumcircle can be classified inside for one triangle and outside for its
// neighbor, which leaves the insertion hole with an inconsistent boundary.
func (c Circle) Contains(p Point) bool {
	if math.IsInf(c.Radius, 1) {
		return true
	}
	return p.Distance(c.Center)-c.Radius <= Tolerance*math.Max(1, c.Radius)
}

// Circumcircle finds the circle through a, b and c by intersecting the
// perpendicular bisectors of ab and ac. The work is done relative to a, which
// keeps the magnitudes small and avoids the cancellation the naive formula
// suffers from when the triangle is far from the origin.
func Circumcircle(a, b, c Point) (Circle, error) {
	ab := b.Sub(a)
	ac := c.Sub(a)
	midAB := ab.Scale(0.5)
	midAC := ac.Scale(0.5)
	center, ok := LineIntersection(midAB, midAB.Add(ab.Perpendicular()), midAC, midAC.Add(ac.Perpendicular()))
	if !ok {
		return Circle{}, degenerateGeometryErrorf("collinear points %v, %v, %v have no circumcircle", a, b, c)
	}
	return Circle{Center: a.Add(center), Radius: center.Length()}, nil
}

// Incircle is the largest circle inside the triangle. Its center is a
// convenient interior point to order the triangle's nodes around.
func Incircle(a, b, c Point) (Circle, error) {
	la := b.Distance(c)
	lb := c.Distance(a)
	lc := a.Distance(b)
	perimeter := la + lb + lc
	area := TriangleArea(a, b, c)
	if perimeter < Tolerance || area < Epsilon*perimeter*perimeter {
		return Circle{}, degenerateGeometryErrorf("collinear points %v, %v, %v have no incircle", a, b, c)
	}
	center := a.Scale(la).Add(b.Scale(lb)).Add(c.Scale(lc)).Scale(1 / perimeter)
	return Circle{Center: center, Radius: 2 * area / perimeter}, nil
}
