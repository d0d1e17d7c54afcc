package internal

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/DoesntSuck/2DVoronoi-sub000/internal/dbg"
)

// A Graph is an arena of nodes, edges and triangles. Elements refer to each
// other by handle, never by pointer, so there are no reference cycles to
// manage and a handle stays valid (and unique) until the element is destroyed.
// Handles are never reused within a graph.
//
// Positions are never used for identity. Two nodes can sit on the same point
// and still be different nodes; the clip engine relies on this when it keeps
// the two sides of a seam in separate graphs.

type NodeID int
type EdgeID int
type TriangleID int

type TriangleSet map[TriangleID]struct{}

func (s TriangleSet) Add(id TriangleID)    { s[id] = struct{}{} }
func (s TriangleSet) Remove(id TriangleID) { delete(s, id) }

func (s TriangleSet) Contains(id TriangleID) bool {
	_, ok := s[id]
	return ok
}

func (s TriangleSet) Sorted() []TriangleID {
	ids := make([]TriangleID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Node, Edge and Triangle values returned by a Graph are owned by it. Callers
// may read them but must mutate only through the Graph's methods.

type Node struct {
	ID        NodeID
	Point     Point
	Edges     []EdgeID // In order of creation
	Triangles TriangleSet
}

type Edge struct {
	ID        EdgeID
	Nodes     [2]NodeID
	Triangles TriangleSet
}

// Derived geometry is computed once, when the triangle is defined. A triangle
// never changes its nodes, so nothing can invalidate it.
type Triangle struct {
	ID    TriangleID
	Edges [3]EdgeID
	Nodes [3]NodeID

	Circumcircle Circle
	Incircle     Circle
	// Collinear nodes. The circumcircle of a degenerate triangle has infinite
	// radius, and its incircle collapses onto the centroid.
	Degenerate bool
}

func (t *Triangle) HasNode(id NodeID) bool {
	return t.Nodes[0] == id || t.Nodes[1] == id || t.Nodes[2] == id
}

func (t *Triangle) HasEdge(id EdgeID) bool {
	return t.Edges[0] == id || t.Edges[1] == id || t.Edges[2] == id
}

// Edge uniqueness is keyed by the unordered pair of endpoints.
type nodePair [2]NodeID

func newNodePair(a, b NodeID) nodePair {
	if a > b {
		a, b = b, a
	}
	return nodePair{a, b}
}

type Graph struct {
	nodes     map[NodeID]*Node
	edges     map[EdgeID]*Edge
	triangles map[TriangleID]*Triangle
	edgeIndex map[nodePair]EdgeID

	nextNode     NodeID
	nextEdge     EdgeID
	nextTriangle TriangleID
}

func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[NodeID]*Node),
		edges:     make(map[EdgeID]*Edge),
		triangles: make(map[TriangleID]*Triangle),
		edgeIndex: make(map[nodePair]EdgeID),
	}
}

func (g *Graph) CreateNode(p Point) NodeID {
	id := g.nextNode
	g.nextNode++
	g.nodes[id] = &Node{ID: id, Point: p, Triangles: make(TriangleSet)}
	return id
}

// CreateEdge returns the edge between a and b, creating it if it doesn't
// exist yet. There is never more than one edge between two nodes.
func (g *Graph) CreateEdge(a, b NodeID) EdgeID {
	if a == b {
		fatalf("cannot create edge from node %d to itself", a)
	}
	nodeA := g.mustNode(a)
	nodeB := g.mustNode(b)

	key := newNodePair(a, b)
	if id, ok := g.edgeIndex[key]; ok {
		return id
	}

	id := g.nextEdge
	g.nextEdge++
	g.edges[id] = &Edge{ID: id, Nodes: [2]NodeID{a, b}, Triangles: make(TriangleSet)}
	g.edgeIndex[key] = id
	nodeA.Edges = append(nodeA.Edges, id)
	nodeB.Edges = append(nodeB.Edges, id)
	return id
}

// DefineTriangle creates the triangle bounded by three edges. The edges must
// be distinct and meet pairwise in exactly three distinct nodes. If a triangle
// with these edges already exists, it is returned instead.
func (g *Graph) DefineTriangle(e1, e2, e3 EdgeID) (TriangleID, error) {
	edges := [3]*Edge{g.mustEdge(e1), g.mustEdge(e2), g.mustEdge(e3)}
	if e1 == e2 || e2 == e3 || e1 == e3 {
		return 0, degenerateTriangleErrorf("edges %d, %d, %d are not distinct", e1, e2, e3)
	}

	// Every node of a triangle is shared by exactly two of its edges
	counts := make(map[NodeID]int, 3)
	var nodes []NodeID
	for _, edge := range edges {
		for _, n := range edge.Nodes {
			if counts[n] == 0 {
				nodes = append(nodes, n)
			}
			counts[n]++
		}
	}
	if len(nodes) != 3 {
		return 0, degenerateTriangleErrorf("edges %d, %d, %d touch %d nodes", e1, e2, e3, len(nodes))
	}
	for _, n := range nodes {
		if counts[n] != 2 {
			return 0, degenerateTriangleErrorf("edges %d, %d, %d do not form a closed loop", e1, e2, e3)
		}
	}

	for id := range edges[0].Triangles {
		if edges[1].Triangles.Contains(id) && edges[2].Triangles.Contains(id) {
			return id, nil
		}
	}

	id := g.nextTriangle
	g.nextTriangle++
	triangle := &Triangle{
		ID:    id,
		Edges: [3]EdgeID{e1, e2, e3},
		Nodes: [3]NodeID{nodes[0], nodes[1], nodes[2]},
	}
	g.computeDerivedGeometry(triangle)

	g.triangles[id] = triangle
	for _, edge := range edges {
		edge.Triangles.Add(id)
	}
	for _, n := range nodes {
		g.nodes[n].Triangles.Add(id)
	}
	return id, nil
}

func (g *Graph) computeDerivedGeometry(triangle *Triangle) {
	a, b, c := g.trianglePoints(triangle)
	circumcircle, err := Circumcircle(a, b, c)
	if err != nil {
		centroid := a.Add(b).Add(c).Scale(1.0 / 3)
		triangle.Degenerate = true
		triangle.Circumcircle = Circle{Center: centroid, Radius: math.Inf(1)}
		triangle.Incircle = Circle{Center: centroid}
		return
	}
	triangle.Circumcircle = circumcircle
	incircle, err := Incircle(a, b, c)
	if err != nil {
		// Slivers can have a circumcircle but be too thin for an incircle.
		// The centroid is still inside them.
		incircle = Circle{Center: a.Add(b).Add(c).Scale(1.0 / 3)}
	}
	triangle.Incircle = incircle
}

// CreateTriangle joins an edge to a node, creating the two edges from the
// node to the edge's endpoints when they are missing.
func (g *Graph) CreateTriangle(edge EdgeID, node NodeID) (TriangleID, error) {
	e := g.mustEdge(edge)
	if e.Nodes[0] == node || e.Nodes[1] == node {
		return 0, degenerateTriangleErrorf("node %d is an endpoint of edge %d", node, edge)
	}
	a := g.CreateEdge(node, e.Nodes[0])
	b := g.CreateEdge(node, e.Nodes[1])
	return g.DefineTriangle(edge, a, b)
}

// DefineTriangleFromNodes is a convenience that creates any missing edges
// between the three nodes.
func (g *Graph) DefineTriangleFromNodes(a, b, c NodeID) (TriangleID, error) {
	if a == b || b == c || a == c {
		return 0, degenerateTriangleErrorf("nodes %d, %d, %d are not distinct", a, b, c)
	}
	return g.DefineTriangle(g.CreateEdge(a, b), g.CreateEdge(b, c), g.CreateEdge(c, a))
}

// RemoveTriangle unlinks the triangle from its nodes and edges, which remain
// in the graph.
func (g *Graph) RemoveTriangle(id TriangleID) {
	triangle := g.mustTriangle(id)
	for _, n := range triangle.Nodes {
		g.nodes[n].Triangles.Remove(id)
	}
	for _, e := range triangle.Edges {
		g.edges[e].Triangles.Remove(id)
	}
	delete(g.triangles, id)
}

// DestroyEdge removes every triangle using the edge, then the edge itself.
// The endpoints remain in the graph.
func (g *Graph) DestroyEdge(id EdgeID) {
	edge := g.mustEdge(id)
	for _, t := range edge.Triangles.Sorted() {
		g.RemoveTriangle(t)
	}
	for _, n := range edge.Nodes {
		node := g.nodes[n]
		node.Edges = removeEdgeID(node.Edges, id)
	}
	delete(g.edgeIndex, newNodePair(edge.Nodes[0], edge.Nodes[1]))
	delete(g.edges, id)
}

// DestroyNode destroys every incident edge (and through them every incident
// triangle), then the node.
func (g *Graph) DestroyNode(id NodeID) {
	node := g.mustNode(id)
	edges := append([]EdgeID(nil), node.Edges...)
	for _, e := range edges {
		g.DestroyEdge(e)
	}
	// Triangles always reference their nodes through edges, so this is
	// only possible if the graph is already corrupt
	if len(node.Triangles) > 0 {
		fatalf("node %d still has %d triangles after its edges were destroyed", id, len(node.Triangles))
	}
	delete(g.nodes, id)
}

func removeEdgeID(list []EdgeID, id EdgeID) []EdgeID {
	for i, e := range list {
		if e == id {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// Queries

func (g *Graph) Node(id NodeID) *Node             { return g.nodes[id] }
func (g *Graph) Edge(id EdgeID) *Edge             { return g.edges[id] }
func (g *Graph) Triangle(id TriangleID) *Triangle { return g.triangles[id] }

func (g *Graph) HasNode(id NodeID) bool {
	_, ok := g.nodes[id]
	return ok
}

func (g *Graph) Point(id NodeID) Point {
	return g.mustNode(id).Point
}

func (g *Graph) NodeCount() int     { return len(g.nodes) }
func (g *Graph) EdgeCount() int     { return len(g.edges) }
func (g *Graph) TriangleCount() int { return len(g.triangles) }

// IsEmpty reports whether the graph has nothing to export.
func (g *Graph) IsEmpty() bool {
	return len(g.nodes) == 0 || len(g.edges) == 0 || len(g.triangles) == 0
}

// The ID listings are sorted, which makes every traversal deterministic.

func (g *Graph) NodeIDs() []NodeID {
	ids := make([]NodeID, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (g *Graph) EdgeIDs() []EdgeID {
	ids := make([]EdgeID, 0, len(g.edges))
	for id := range g.edges {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (g *Graph) TriangleIDs() []TriangleID {
	ids := make([]TriangleID, 0, len(g.triangles))
	for id := range g.triangles {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (g *Graph) EdgeBetween(a, b NodeID) (EdgeID, bool) {
	id, ok := g.edgeIndex[newNodePair(a, b)]
	return id, ok
}

func (g *Graph) OtherNode(edge EdgeID, node NodeID) NodeID {
	e := g.mustEdge(edge)
	switch node {
	case e.Nodes[0]:
		return e.Nodes[1]
	case e.Nodes[1]:
		return e.Nodes[0]
	}
	fatalf("node %d is not an endpoint of edge %d", node, edge)
	return 0
}

// OppositeNode is the node of the triangle that is not on the edge.
func (g *Graph) OppositeNode(triangle TriangleID, edge EdgeID) NodeID {
	t := g.mustTriangle(triangle)
	e := g.mustEdge(edge)
	for _, n := range t.Nodes {
		if n != e.Nodes[0] && n != e.Nodes[1] {
			return n
		}
	}
	fatalf("edge %d does not belong to triangle %d", edge, triangle)
	return 0
}

func (g *Graph) SharesEdge(a, b TriangleID) bool {
	ta := g.mustTriangle(a)
	tb := g.mustTriangle(b)
	for _, e := range ta.Edges {
		if tb.HasEdge(e) {
			return true
		}
	}
	return false
}

func (g *Graph) TrianglePoints(id TriangleID) (a, b, c Point) {
	return g.trianglePoints(g.mustTriangle(id))
}

func (g *Graph) trianglePoints(t *Triangle) (a, b, c Point) {
	return g.nodes[t.Nodes[0]].Point, g.nodes[t.Nodes[1]].Point, g.nodes[t.Nodes[2]].Point
}

func (g *Graph) TriangleArea(id TriangleID) float64 {
	return TriangleArea(g.TrianglePoints(id))
}

// Area is the summed area of every triangle.
func (g *Graph) Area() float64 {
	var area float64
	for _, id := range g.TriangleIDs() {
		area += g.TriangleArea(id)
	}
	return area
}

// Centroid is the area weighted centroid of the triangles.
func (g *Graph) Centroid() Point {
	var sum Point
	var area float64
	for _, id := range g.TriangleIDs() {
		a, b, c := g.TrianglePoints(id)
		triangleArea := TriangleArea(a, b, c)
		sum = sum.Add(a.Add(b).Add(c).Scale(triangleArea / 3))
		area += triangleArea
	}
	if area < Epsilon {
		return Point{}
	}
	return sum.Scale(1 / area)
}

// ClockwiseNodes orders the triangle's nodes clockwise around its incircle
// center. This is the winding used when emitting index buffers.
func (g *Graph) ClockwiseNodes(id TriangleID) [3]NodeID {
	t := g.mustTriangle(id)
	nodes := t.Nodes
	center := t.Incircle.Center
	sort.SliceStable(nodes[:], func(i, j int) bool {
		return clockwiseLess(g.nodes[nodes[i]].Point, g.nodes[nodes[j]].Point, center)
	})
	// Angles about a center in a very thin triangle can round the wrong way
	a, b, c := g.nodes[nodes[0]].Point, g.nodes[nodes[1]].Point, g.nodes[nodes[2]].Point
	if TriangleSignedArea(a, b, c) > 0 {
		nodes[1], nodes[2] = nodes[2], nodes[1]
	}
	return nodes
}

// BoundaryEdges are the edges used by exactly one triangle.
func (g *Graph) BoundaryEdges() []EdgeID {
	var result []EdgeID
	for _, id := range g.EdgeIDs() {
		if len(g.edges[id].Triangles) == 1 {
			result = append(result, id)
		}
	}
	return result
}

// Clone makes a deep copy with the same handles.
func (g *Graph) Clone() *Graph {
	clone := NewGraph()
	clone.nextNode = g.nextNode
	clone.nextEdge = g.nextEdge
	clone.nextTriangle = g.nextTriangle
	for id, node := range g.nodes {
		clone.nodes[id] = &Node{
			ID:        id,
			Point:     node.Point,
			Edges:     append([]EdgeID(nil), node.Edges...),
			Triangles: copyTriangleSet(node.Triangles),
		}
	}
	for id, edge := range g.edges {
		clone.edges[id] = &Edge{ID: id, Nodes: edge.Nodes, Triangles: copyTriangleSet(edge.Triangles)}
	}
	for id, triangle := range g.triangles {
		t := *triangle
		clone.triangles[id] = &t
	}
	for key, id := range g.edgeIndex {
		clone.edgeIndex[key] = id
	}
	return clone
}

func copyTriangleSet(s TriangleSet) TriangleSet {
	result := make(TriangleSet, len(s))
	for id := range s {
		result.Add(id)
	}
	return result
}

// Validate checks that every adjacency is mirrored on both sides, that edges
// are unique per node pair, and that no edge has more than two triangles. It
// is meant for tests and for checking a graph between pipeline stages.
func (g *Graph) Validate() error {
	for id, node := range g.nodes {
		for _, e := range node.Edges {
			edge, ok := g.edges[e]
			if !ok {
				return errors.Errorf("node %d lists missing edge %d", id, e)
			}
			if edge.Nodes[0] != id && edge.Nodes[1] != id {
				return errors.Errorf("node %d lists edge %d which does not touch it", id, e)
			}
		}
		for t := range node.Triangles {
			triangle, ok := g.triangles[t]
			if !ok {
				return errors.Errorf("node %d lists missing triangle %d", id, t)
			}
			if !triangle.HasNode(id) {
				return errors.Errorf("node %d lists triangle %d which does not use it", id, t)
			}
		}
	}
	for id, edge := range g.edges {
		if g.edgeIndex[newNodePair(edge.Nodes[0], edge.Nodes[1])] != id {
			return errors.Errorf("edge %d is not the indexed edge for its nodes", id)
		}
		for _, n := range edge.Nodes {
			node, ok := g.nodes[n]
			if !ok {
				return errors.Errorf("edge %d references missing node %d", id, n)
			}
			if !containsEdgeID(node.Edges, id) {
				return errors.Errorf("node %d does not list its edge %d", n, id)
			}
		}
		if len(edge.Triangles) > 2 {
			return errors.Errorf("edge %d is not manifold: %d triangles", id, len(edge.Triangles))
		}
		for t := range edge.Triangles {
			triangle, ok := g.triangles[t]
			if !ok || !triangle.HasEdge(id) {
				return errors.Errorf("edge %d lists triangle %d which does not use it", id, t)
			}
		}
	}
	if len(g.edgeIndex) != len(g.edges) {
		return errors.Errorf("edge index has %d entries for %d edges", len(g.edgeIndex), len(g.edges))
	}
	for id, triangle := range g.triangles {
		for _, e := range triangle.Edges {
			edge, ok := g.edges[e]
			if !ok || !edge.Triangles.Contains(id) {
				return errors.Errorf("triangle %d is not listed by its edge %d", id, e)
			}
		}
		for _, n := range triangle.Nodes {
			node, ok := g.nodes[n]
			if !ok || !node.Triangles.Contains(id) {
				return errors.Errorf("triangle %d is not listed by its node %d", id, n)
			}
		}
	}
	return nil
}

func containsEdgeID(list []EdgeID, id EdgeID) bool {
	for _, e := range list {
		if e == id {
			return true
		}
	}
	return false
}

func (g *Graph) String() string {
	return fmt.Sprintf("Graph %s <nodes: %d, edges: %d, triangles: %d>",
		dbg.Name(g), len(g.nodes), len(g.edges), len(g.triangles))
}

// Dump lists every triangle with readable names, for debugging.
func (g *Graph) Dump() string {
	var parts []string
	parts = append(parts, g.String())
	for _, id := range g.TriangleIDs() {
		parts = append(parts, "  "+g.triangleString(g.triangles[id]))
	}
	return strings.Join(parts, "\n")
}

func (g *Graph) mustNode(id NodeID) *Node {
	node, ok := g.nodes[id]
	if !ok {
		fatalf("unknown node %d", id)
	}
	return node
}

func (g *Graph) mustEdge(id EdgeID) *Edge {
	edge, ok := g.edges[id]
	if !ok {
		fatalf("unknown edge %d", id)
	}
	return edge
}

func (g *Graph) mustTriangle(id TriangleID) *Triangle {
	triangle, ok := g.triangles[id]
	if !ok {
		fatalf("unknown triangle %d", id)
	}
	return triangle
}
