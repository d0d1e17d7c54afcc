package internal

import (
	"math"
)

// Incremental Bowyer-Watson triangulation. Every point is inserted into an
// existing triangulation that starts as a single super-triangle, which must be
// large enough to contain every point ever inserted. Once insertion is done,
// the super-triangle's nodes are destroyed, which cascades away every edge and
// triangle that touched them.

type Triangulator struct {
	Graph *Graph

	super        [3]NodeID
	superPoints  [3]Point
	superRemoved bool
	nuclei       []NodeID
}

// NewTriangulator starts a triangulation from the given super-triangle.
func NewTriangulator(super []Point) (*Triangulator, error) {
	if len(super) != 3 {
		return nil, configurationErrorf("super-triangle needs exactly 3 points, got %d", len(super))
	}
	if Side(super[0], super[1], super[2]) == 0 {
		return nil, configurationErrorf("super-triangle points %v are collinear", super)
	}

	t := &Triangulator{Graph: NewGraph()}
	for i, p := range super {
		t.super[i] = t.Graph.CreateNode(p)
		t.superPoints[i] = p
	}
	if _, err := t.Graph.DefineTriangleFromNodes(t.super[0], t.super[1], t.super[2]); err != nil {
		return nil, configurationErrorf("super-triangle: %v", err)
	}
	return t, nil
}

// SuperTriangleFor returns an equilateral triangle around the bounding circle
// of the points, with the circle's radius multiplied by scale. A larger scale
// pushes the synthetic nodes further away, which matters for the Voronoi
// cells of nuclei on the hull: their far vertices are circumcenters of
// triangles that touch the super-triangle.
func SuperTriangleFor(points []Point, scale float64) []Point {
	bounds := BoundsOf(points...)
	center := Point{}
	radius := 1.0
	if !bounds.Empty() {
		center = bounds.Center()
		radius = math.Max(bounds.Max.Distance(center), 1)
	}
	if scale < 1 {
		scale = 1
	}
	// The circumradius of an equilateral triangle is twice its inradius
	distance := 2 * radius * scale
	result := make([]Point, 3)
	for i := range result {
		angle := math.Pi/2 + float64(i)*2*math.Pi/3
		result[i] = Point{
			X: center.X + distance*math.Cos(angle),
			Y: center.Y + distance*math.Sin(angle),
		}
	}
	return result
}

// SuperTriangleContains must be checked by callers before inserting. Insert
// doesn't reject points outside the super-triangle, and inserting one leaves
// the triangulation invalid.
func (t *Triangulator) SuperTriangleContains(p Point) bool {
	return PointInTriangle(p, t.superPoints[0], t.superPoints[1], t.superPoints[2])
}

// Insert adds a point to the triangulation and returns its node. On error
// the triangulation is left untouched.
func (t *Triangulator) Insert(p Point) (NodeID, error) {
	stepper := t.Step(p)
	for stepper.State() != Done {
		if _, err := stepper.Advance(); err != nil {
			return 0, err
		}
	}
	return stepper.Node(), nil
}

// InsertAll inserts every point, skipping (and returning) those outside the
// super-triangle or too degenerate to insert.
func (t *Triangulator) InsertAll(points []Point) (skipped []Point, err error) {
	for _, p := range points {
		if !t.SuperTriangleContains(p) {
			skipped = append(skipped, p)
			continue
		}
		if _, err := t.Insert(p); err != nil {
			if !IsRecoverable(err) {
				return skipped, err
			}
			skipped = append(skipped, p)
		}
	}
	return skipped, nil
}

// RemoveSuperTriangle destroys the three synthetic nodes. Calling it again
// is a no-op.
func (t *Triangulator) RemoveSuperTriangle() {
	if t.superRemoved {
		return
	}
	for _, n := range t.super {
		t.Graph.DestroyNode(n)
	}
	t.superRemoved = true
}

func (t *Triangulator) SuperTriangleRemoved() bool {
	return t.superRemoved
}

func (t *Triangulator) IsSuperNode(id NodeID) bool {
	return !t.superRemoved && (id == t.super[0] || id == t.super[1] || id == t.super[2])
}

// TouchesSuperTriangle reports whether any node of the triangle is synthetic.
func (t *Triangulator) TouchesSuperTriangle(id TriangleID) bool {
	triangle := t.Graph.mustTriangle(id)
	for _, n := range triangle.Nodes {
		if t.IsSuperNode(n) {
			return true
		}
	}
	return false
}

// Nuclei lists the nodes of inserted points, in insertion order.
func (t *Triangulator) Nuclei() []NodeID {
	return append([]NodeID(nil), t.nuclei...)
}

// guiltyTriangles are the triangles whose circumcircle contains p.
func (t *Triangulator) guiltyTriangles(p Point) []TriangleID {
	var guilty []TriangleID
	for _, id := range t.Graph.TriangleIDs() {
		if t.Graph.triangles[id].Circumcircle.Contains(p) {
			guilty = append(guilty, id)
		}
	}
	return guilty
}

// An outsideEdge is an edge on the boundary of the hole left by the guilty
// triangles, with the one guilty triangle that owns it.
type outsideEdge struct {
	Edge  EdgeID
	Owner TriangleID
}

// partitionEdges splits the edges of the guilty triangles in a single pass.
// An edge seen once is tentatively outside. Seen a second time, it is shared
// by two guilty triangles, so it is interior to the hole; it moves inside and
// can never return.
func (t *Triangulator) partitionEdges(guilty []TriangleID) (inside []EdgeID, outside []outsideEdge) {
	seenOnce := make(map[EdgeID]TriangleID)
	isInside := make(map[EdgeID]bool)
	var order []EdgeID
	for _, id := range guilty {
		for _, e := range t.Graph.triangles[id].Edges {
			if isInside[e] {
				continue
			}
			if _, ok := seenOnce[e]; ok {
				delete(seenOnce, e)
				isInside[e] = true
				inside = append(inside, e)
				continue
			}
			seenOnce[e] = id
			order = append(order, e)
		}
	}
	for _, e := range order {
		if owner, ok := seenOnce[e]; ok {
			outside = append(outside, outsideEdge{Edge: e, Owner: owner})
		}
	}
	return inside, outside
}

// validateHole checks that every new triangle joining p to an outside edge
// will be proper. Each outside edge's owner lies on the hole side of the
// edge, so p must lie strictly on that same side. Every node of the guilty
// triangles must also be on the hole's boundary, or it would be orphaned; in
// practice that only happens when p coincides with it.
func (t *Triangulator) validateHole(p Point, guilty []TriangleID, outside []outsideEdge) error {
	if len(guilty) == 0 {
		return degenerateGeometryErrorf("point %v is not inside any circumcircle; it is outside the super-triangle", p)
	}

	boundary := make(map[NodeID]bool, len(outside))
	for _, o := range outside {
		edge := t.Graph.edges[o.Edge]
		boundary[edge.Nodes[0]] = true
		boundary[edge.Nodes[1]] = true
	}
	for _, id := range guilty {
		for _, n := range t.Graph.triangles[id].Nodes {
			if p.Approximately(t.Graph.nodes[n].Point) {
				return degenerateGeometryErrorf("point %v coincides with an existing node", p)
			}
			if !boundary[n] {
				return degenerateGeometryErrorf("hole around %v would orphan node %v", p, t.Graph.nodes[n].Point)
			}
		}
	}

	for _, o := range outside {
		edge := t.Graph.edges[o.Edge]
		a := t.Graph.nodes[edge.Nodes[0]].Point
		b := t.Graph.nodes[edge.Nodes[1]].Point
		side := Side(a, b, p)
		if side == 0 {
			return degenerateGeometryErrorf("point %v is collinear with edge %v-%v", p, a, b)
		}
		opposite := t.Graph.nodes[t.Graph.OppositeNode(o.Owner, o.Edge)].Point
		if side != Side(a, b, opposite) {
			return degenerateGeometryErrorf("hole around %v is not star shaped at edge %v-%v", p, a, b)
		}
	}
	return nil
}
