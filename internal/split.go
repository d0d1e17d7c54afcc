package internal

import (
	"sort"
)

// Splitting divides a graph along a line. Triangles wholly on the inside
// half plane move to a new graph; triangles wholly outside stay where they
// are; triangles that straddle the line are cut, and each piece goes to its
// side. The source graph becomes the outside graph.
//
// Two pieces of bookkeeping keep the topology shared between triangles:
//
//   - The outside→inside node map. A node used by several triangles that move
//     inside is copied into the inside graph once.
//   - The truncated edge cache. An edge crossing the line is cut at exactly
//     one new node, which every triangle using that edge shares.
//
// Nodes on the line (including the new intersection nodes) exist in both
// graphs. These seam pairs are what Stitch uses to join the halves again.

type Line struct {
	A, B Point
}

// Side of p relative to the directed line; see Side.
func (l Line) Side(p Point) int {
	return Side(l.A, l.B, p)
}

func (l Line) Degenerate() bool {
	return l.A.Distance(l.B) < Tolerance
}

// SplitNodePair is a node on the cut that exists in both halves.
type SplitNodePair struct {
	Outside NodeID
	Inside  NodeID
}

type SplitGraph struct {
	Outside *Graph // The source graph, mutated in place
	Inside  *Graph
	// Seam nodes, ordered along the line from A to B
	SplitNodes []SplitNodePair
	// Every source node that was copied into the inside graph, including
	// ones that no longer exist in the outside graph because all of their
	// triangles moved inside.
	NodeMap map[NodeID]NodeID
}

// InsideToOutside maps each inside seam node to its outside counterpart, which
// is the form Stitch takes.
func (sg *SplitGraph) InsideToOutside() map[NodeID]NodeID {
	result := make(map[NodeID]NodeID, len(sg.SplitNodes))
	for _, pair := range sg.SplitNodes {
		result[pair.Inside] = pair.Outside
	}
	return result
}

// Node classification, normalized so the inside sign is always positive
const (
	outsideSide = -1
	onLine      = 0
	insideSide  = 1
)

type splitContext struct {
	line    Line
	outside *Graph
	inside  *Graph

	sides         map[NodeID]int
	insideNodes   map[NodeID]NodeID
	intersections map[EdgeID]Point
	truncated     map[EdgeID]NodeID
	touched       map[EdgeID]bool
	seam          map[NodeID]bool
}

// Split cuts g along line. Nodes on the side of the line given by insideSign
// (1 for left, -1 for right, as reported by Side) are inside.
//
// Every intersection is computed before the graph is mutated, so on error g is
// unchanged.
func Split(g *Graph, line Line, insideSign int) (*SplitGraph, error) {
	if insideSign != 1 && insideSign != -1 {
		return nil, configurationErrorf("inside sign must be 1 or -1, got %d", insideSign)
	}
	if line.Degenerate() {
		return nil, degenerateGeometryErrorf("clip line %v-%v has zero length", line.A, line.B)
	}

	ctx := &splitContext{
		line:          line,
		outside:       g,
		inside:        NewGraph(),
		sides:         make(map[NodeID]int, g.NodeCount()),
		insideNodes:   make(map[NodeID]NodeID),
		intersections: make(map[EdgeID]Point),
		truncated:     make(map[EdgeID]NodeID),
		touched:       make(map[EdgeID]bool),
		seam:          make(map[NodeID]bool),
	}
	for _, id := range g.NodeIDs() {
		ctx.sides[id] = line.Side(g.nodes[id].Point) * insideSign
	}

	triangles := g.TriangleIDs()
	if err := ctx.computeIntersections(triangles); err != nil {
		return nil, err
	}

	for _, id := range triangles {
		ctx.splitTriangle(id)
	}
	ctx.prune()

	return &SplitGraph{
		Outside:    g,
		Inside:     ctx.inside,
		SplitNodes: ctx.splitNodes(),
		NodeMap:    ctx.insideNodes,
	}, nil
}

// computeIntersections finds where the line crosses every edge joining an
// inside node to an outside node.
func (ctx *splitContext) computeIntersections(triangles []TriangleID) error {
	for _, id := range triangles {
		for _, e := range ctx.outside.triangles[id].Edges {
			if _, ok := ctx.intersections[e]; ok {
				continue
			}
			edge := ctx.outside.edges[e]
			if ctx.sides[edge.Nodes[0]]*ctx.sides[edge.Nodes[1]] != -1 {
				continue
			}
			a := ctx.outside.nodes[edge.Nodes[0]].Point
			b := ctx.outside.nodes[edge.Nodes[1]].Point
			p, err := SegmentLineIntersection(a, b, ctx.line.A, ctx.line.B)
			if err != nil {
				return err
			}
			ctx.intersections[e] = p
		}
	}
	return nil
}

func (ctx *splitContext) splitTriangle(id TriangleID) {
	triangle := ctx.outside.triangles[id]
	var in, on, out []NodeID
	for _, n := range triangle.Nodes {
		switch ctx.sides[n] {
		case insideSide:
			in = append(in, n)
		case onLine:
			on = append(on, n)
		default:
			out = append(out, n)
		}
	}

	switch {
	case len(out) == 0:
		ctx.moveInside(triangle)
	case len(in) == 0:
		// Wholly outside. Nothing to do.
	case len(in) == 1 && len(on) == 1:
		ctx.splitThroughVertex(triangle, in[0], on[0], out[0])
	case len(in) == 1:
		ctx.splitOneInside(triangle, in[0], out[0], out[1])
	default:
		ctx.splitOneOutside(triangle, in[0], in[1], out[0])
	}
}

// moveInside copies a triangle with no outside nodes into the inside graph.
func (ctx *splitContext) moveInside(triangle *Triangle) {
	n := triangle.Nodes
	ctx.removeSourceTriangle(triangle)
	ctx.defineInside(n[0], n[1], n[2])
}

/*
	The line passes through one vertex and crosses the opposite edge at x.

	       on
	      /|\
	     / | \
	 in /__x__\ out
*/
func (ctx *splitContext) splitThroughVertex(triangle *Triangle, in, on, out NodeID) {
	x := ctx.truncate(in, out)
	ctx.removeSourceTriangle(triangle)
	ctx.defineOutside(on, x, out)
	ctx.defineInside(in, on, x)
}

/*
	One inside node. The outside part is the quad x1, o1, o2, x2, which is
	split along one of its diagonals.

	        in
	       /  \
	   - x1----x2 -  <- line
	     /      \
	   o1--------o2
*/
func (ctx *splitContext) splitOneInside(triangle *Triangle, in, o1, o2 NodeID) {
	x1 := ctx.truncate(in, o1)
	x2 := ctx.truncate(in, o2)
	ctx.removeSourceTriangle(triangle)

	ctx.defineInside(in, x1, x2)
	for _, t := range ctx.splitQuad(x1, o1, o2, x2) {
		ctx.defineOutside(t[0], t[1], t[2])
	}
}

/*
	One outside node. The inside part is the quad x1, i1, i2, x2, which is
	split along one of its diagonals.

	        out
	       /  \
	   - x1----x2 -  <- line
	     /      \
	   i1--------i2
*/
func (ctx *splitContext) splitOneOutside(triangle *Triangle, i1, i2, out NodeID) {
	x1 := ctx.truncate(i1, out)
	x2 := ctx.truncate(i2, out)
	ctx.removeSourceTriangle(triangle)

	ctx.defineOutside(out, x1, x2)
	for _, t := range ctx.splitQuad(x1, i1, i2, x2) {
		ctx.defineInside(t[0], t[1], t[2])
	}
}

// splitQuad splits the quad a, b, c, d (in ring order, with a and d on the
// line) along the shorter of its two diagonals. Neither diagonal is an
// existing edge of the source triangle.
func (ctx *splitContext) splitQuad(a, b, c, d NodeID) [2][3]NodeID {
	ac := ctx.outside.Point(a).Distance(ctx.outside.Point(c))
	bd := ctx.outside.Point(b).Distance(ctx.outside.Point(d))
	if ac <= bd {
		return [2][3]NodeID{{a, b, c}, {a, c, d}}
	}
	return [2][3]NodeID{{a, b, d}, {b, c, d}}
}

// truncate returns the node where the line crosses the edge between a and b,
// creating it in the source graph the first time the edge is cut.
func (ctx *splitContext) truncate(a, b NodeID) NodeID {
	edge, ok := ctx.outside.EdgeBetween(a, b)
	if !ok {
		fatalf("no edge between %d and %d to truncate", a, b)
	}
	if x, ok := ctx.truncated[edge]; ok {
		return x
	}
	p, ok := ctx.intersections[edge]
	if !ok {
		fatalf("edge %d crosses the line but has no precomputed intersection", edge)
	}
	x := ctx.outside.CreateNode(p)
	ctx.sides[x] = onLine
	ctx.truncated[edge] = x
	return x
}

func (ctx *splitContext) removeSourceTriangle(triangle *Triangle) {
	for _, e := range triangle.Edges {
		ctx.touched[e] = true
	}
	ctx.outside.RemoveTriangle(triangle.ID)
}

// insideNode returns the inside graph's copy of a source node.
func (ctx *splitContext) insideNode(id NodeID) NodeID {
	if copied, ok := ctx.insideNodes[id]; ok {
		return copied
	}
	copied := ctx.inside.CreateNode(ctx.outside.nodes[id].Point)
	ctx.insideNodes[id] = copied
	if ctx.sides[id] == onLine {
		ctx.seam[id] = true
	}
	return copied
}

func (ctx *splitContext) defineInside(a, b, c NodeID) {
	ia, ib, ic := ctx.insideNode(a), ctx.insideNode(b), ctx.insideNode(c)
	if _, err := ctx.inside.DefineTriangleFromNodes(ia, ib, ic); err != nil {
		fatalf("moving triangle %d-%d-%d inside: %v", a, b, c, err)
	}
}

func (ctx *splitContext) defineOutside(a, b, c NodeID) {
	id, err := ctx.outside.DefineTriangleFromNodes(a, b, c)
	if err != nil {
		fatalf("cutting triangle %d-%d-%d: %v", a, b, c, err)
	}
	for _, e := range ctx.outside.triangles[id].Edges {
		ctx.touched[e] = true
	}
}

// prune destroys touched edges left without triangles, then any of their
// nodes left with neither triangles nor edges. Untouched parts of the graph
// are never pruned, even if they have no triangles.
func (ctx *splitContext) prune() {
	var edges []EdgeID
	for e := range ctx.touched {
		edges = append(edges, e)
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i] < edges[j] })

	var nodes []NodeID
	for _, e := range edges {
		edge, ok := ctx.outside.edges[e]
		if !ok || len(edge.Triangles) > 0 {
			continue
		}
		nodes = append(nodes, edge.Nodes[0], edge.Nodes[1])
		ctx.outside.DestroyEdge(e)
	}
	for _, n := range nodes {
		node, ok := ctx.outside.nodes[n]
		if !ok || len(node.Triangles) > 0 || len(node.Edges) > 0 {
			continue
		}
		ctx.outside.DestroyNode(n)
	}
}

// splitNodes pairs every seam node that survived pruning with its inside copy,
// ordered by distance along the line.
func (ctx *splitContext) splitNodes() []SplitNodePair {
	var pairs []SplitNodePair
	for n := range ctx.seam {
		if !ctx.outside.HasNode(n) {
			continue
		}
		pairs = append(pairs, SplitNodePair{Outside: n, Inside: ctx.insideNodes[n]})
	}

	direction := ctx.line.B.Sub(ctx.line.A)
	along := func(n NodeID) float64 {
		return ctx.outside.nodes[n].Point.Sub(ctx.line.A).Dot(direction)
	}
	sort.Slice(pairs, func(i, j int) bool {
		ai, aj := along(pairs[i].Outside), along(pairs[j].Outside)
		if ai != aj {
			return ai < aj
		}
		return pairs[i].Outside < pairs[j].Outside
	})
	return pairs
}
