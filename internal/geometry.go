package internal

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

const Tolerance = 1e-6

// Epsilon is the tolerance used when comparing accumulated quantities such as
// summed areas.
const Epsilon = 1e-9

type Point struct {
	X float64
	Y float64
}

// To compensate for imprecision in floats, equality is tolerance based. If we
// don't account for this, points lying on a circumcircle or a clip line get
// classified differently depending on rounding.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

func (p Point) Add(q Point) Point             { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point             { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Scale(s float64) Point         { return Point{p.X * s, p.Y * s} }
func (p Point) Dot(q Point) float64           { return p.X*q.X + p.Y*q.Y }
func (p Point) Cross(q Point) float64         { return p.X*q.Y - p.Y*q.X }
func (p Point) Length() float64               { return math.Hypot(p.X, p.Y) }
func (p Point) Distance(q Point) float64      { return p.Sub(q).Length() }
func (p Point) Perpendicular() Point          { return Point{-p.Y, p.X} }
func (p Point) Lerp(q Point, t float64) Point { return p.Add(q.Sub(p).Scale(t)) }

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Approximately reports whether two points are within Tolerance of each other.
func (p Point) Approximately(q Point) bool {
	return p.Distance(q) < Tolerance
}

// Side reports which side of the directed line a->b the point p is on: 1 for
// left (counterclockwise), -1 for right, and 0 when p is within Tolerance of
// the line. The cross product is scaled by the line length so the tolerance
// is a distance.
func Side(a, b, p Point) int {
	ab := b.Sub(a)
	length := ab.Length()
	if length < Tolerance {
		return 0
	}
	distance := ab.Cross(p.Sub(a)) / length
	switch {
	case distance > Tolerance:
		return 1
	case distance < -Tolerance:
		return -1
	}
	return 0
}

// LineIntersection intersects the infinite lines through a1-a2 and b1-b2. It
// fails when the lines are parallel.
func LineIntersection(a1, a2, b1, b2 Point) (Point, bool) {
	r := a2.Sub(a1)
	s := b2.Sub(b1)
	denominator := r.Cross(s)
	scale := r.Length() * s.Length()
	if scale == 0 || math.Abs(denominator) < Epsilon*scale {
		return Point{}, false
	}
	t := b1.Sub(a1).Cross(s) / denominator
	return a1.Add(r.Scale(t)), true
}

// SegmentLineIntersection intersects the segment start-end with the infinite
// line through a and b. The intersection must lie on the segment, within
// Tolerance of its endpoints.
func SegmentLineIntersection(start, end, a, b Point) (Point, error) {
	p, ok := LineIntersection(start, end, a, b)
	if !ok {
		return Point{}, noIntersectionErrorf("segment %v-%v is parallel to line %v-%v", start, end, a, b)
	}
	segment := end.Sub(start)
	lengthSquared := segment.Dot(segment)
	if lengthSquared == 0 {
		return Point{}, noIntersectionErrorf("zero length segment at %v", start)
	}
	t := p.Sub(start).Dot(segment) / lengthSquared
	slack := Tolerance / math.Sqrt(lengthSquared)
	if t < -slack || t > 1+slack {
		return Point{}, noIntersectionErrorf("line %v-%v misses segment %v-%v", a, b, start, end)
	}
	return p, nil
}

func TriangleSignedArea(a, b, c Point) float64 {
	return b.Sub(a).Cross(c.Sub(a)) / 2
}

func TriangleArea(a, b, c Point) float64 {
	return math.Abs(TriangleSignedArea(a, b, c))
}

// PointInTriangle is inclusive of the triangle's boundary, within Tolerance.
func PointInTriangle(p, a, b, c Point) bool {
	ab := Side(a, b, p)
	bc := Side(b, c, p)
	ca := Side(c, a, p)
	hasLeft := ab > 0 || bc > 0 || ca > 0
	hasRight := ab < 0 || bc < 0 || ca < 0
	return !(hasLeft && hasRight)
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// SortClockwise orders points clockwise by angle around origin, starting from
// the positive X axis. Points at the same angle are ordered nearest first.
func SortClockwise(points []Point, origin Point) {
	sort.SliceStable(points, func(i, j int) bool {
		return clockwiseLess(points[i], points[j], origin)
	})
}

func clockwiseLess(a, b, origin Point) bool {
	angleA := clockwiseAngle(a, origin)
	angleB := clockwiseAngle(b, origin)
	if !Equal(angleA, angleB) {
		return angleA < angleB
	}
	return a.Distance(origin) < b.Distance(origin)
}

// Angle in [0, 2π), measured clockwise from the positive X axis.
func clockwiseAngle(p, origin Point) float64 {
	angle := -math.Atan2(p.Y-origin.Y, p.X-origin.X)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	if angle >= 2*math.Pi {
		angle -= 2 * math.Pi
	}
	return angle
}

// RandomPointInCircle samples uniformly by area.
func RandomPointInCircle(r *rand.Rand, center Point, radius float64) Point {
	distance := radius * math.Sqrt(r.Float64())
	angle := 2 * math.Pi * r.Float64()
	return Point{
		X: center.X + distance*math.Cos(angle),
		Y: center.Y + distance*math.Sin(angle),
	}
}

type Bounds struct {
	Min, Max Point
}

func BoundsOf(points ...Point) Bounds {
	bounds := Bounds{
		Min: Point{math.Inf(1), math.Inf(1)},
		Max: Point{math.Inf(-1), math.Inf(-1)},
	}
	for _, p := range points {
		bounds = bounds.Extend(p)
	}
	return bounds
}

func (b Bounds) Extend(p Point) Bounds {
	return Bounds{
		Min: Point{math.Min(b.Min.X, p.X), math.Min(b.Min.Y, p.Y)},
		Max: Point{math.Max(b.Max.X, p.X), math.Max(b.Max.Y, p.Y)},
	}
}

func (b Bounds) Empty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y
}

func (b Bounds) Center() Point {
	return b.Min.Lerp(b.Max, 0.5)
}
