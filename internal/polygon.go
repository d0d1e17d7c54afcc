package internal

import "math"

// A Polygon is an ordered ring of points. Voronoi cells and fragment
// boundaries are emitted as polygons.
type Polygon struct {
	Points []Point
}

// Winding rule point-in-polygon. For convex polygons, such as Voronoi cells,
// this agrees with a half plane test against every edge.
func (poly Polygon) ContainsPointByEvenOdd(p Point) bool {
	return poly.CrossingCount(p)%2 == 1
}

// Crossing count helper for even odd rule. A horizontal ray is cast from p
// towards +X, and every edge that straddles the ray to the right of p counts.
func (poly Polygon) CrossingCount(p Point) int {
	crossingCount := 0
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, len(poly.Points))]
		if (vertex.Y > p.Y) == (nextVertex.Y > p.Y) {
			continue
		}
		x := vertex.X + (p.Y-vertex.Y)*(nextVertex.X-vertex.X)/(nextVertex.Y-vertex.Y)
		if x > p.X {
			crossingCount++
		}
	}
	return crossingCount
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// Shoelace formula. Positive for counterclockwise polygons.
func (poly Polygon) SignedArea() float64 {
	var sum float64
	for i, p := range poly.Points {
		q := poly.Points[CircularIndex(i+1, len(poly.Points))]
		sum += p.Cross(q)
	}
	return sum / 2
}

func (poly Polygon) Area() float64 {
	return math.Abs(poly.SignedArea())
}

func (poly Polygon) IsCW() bool {
	return poly.SignedArea() < 0
}

func (poly Polygon) IsCCW() bool {
	return poly.SignedArea() > 0
}

// Centroid uses the signed area formula, so it holds for either winding. A
// polygon with no area falls back to the average of its points.
func (poly Polygon) Centroid() Point {
	if len(poly.Points) == 0 {
		return Point{}
	}
	area := poly.SignedArea()
	if math.Abs(area) < Epsilon {
		var sum Point
		for _, p := range poly.Points {
			sum = sum.Add(p)
		}
		return sum.Scale(1 / float64(len(poly.Points)))
	}
	var cx, cy float64
	for i, p := range poly.Points {
		q := poly.Points[CircularIndex(i+1, len(poly.Points))]
		cross := p.Cross(q)
		cx += (p.X + q.X) * cross
		cy += (p.Y + q.Y) * cross
	}
	return Point{cx / (6 * area), cy / (6 * area)}
}

// IsConvex reports whether every turn has the same direction. Collinear
// vertices are ignored.
func (poly Polygon) IsConvex() bool {
	n := len(poly.Points)
	if n < 3 {
		return false
	}
	sign := 0
	for i := range poly.Points {
		a := poly.Points[i]
		b := poly.Points[CircularIndex(i+1, n)]
		c := poly.Points[CircularIndex(i+2, n)]
		side := Side(a, b, c)
		if side == 0 {
			continue
		}
		if sign == 0 {
			sign = side
		} else if side != sign {
			return false
		}
	}
	return sign != 0
}
