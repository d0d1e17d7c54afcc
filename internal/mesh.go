package internal

// A Mesh is the flat form of a graph that hosts exchange: a vertex list and a
// triangle index buffer with stride 3.
type Mesh struct {
	Vertices  []Point `yaml:"vertices"`
	Triangles []int   `yaml:"triangles"`
}

func (m Mesh) TriangleCount() int {
	return len(m.Triangles) / 3
}

// ImportMesh builds a graph with one node per vertex and one triangle per
// index triple. Vertices that no triangle uses still become nodes.
func ImportMesh(m Mesh) (*Graph, error) {
	if len(m.Triangles)%3 != 0 {
		return nil, configurationErrorf("triangle index buffer has %d entries, which is not a multiple of 3", len(m.Triangles))
	}

	g := NewGraph()
	nodes := make([]NodeID, len(m.Vertices))
	for i, v := range m.Vertices {
		nodes[i] = g.CreateNode(v)
	}

	for i := 0; i < len(m.Triangles); i += 3 {
		var triangle [3]NodeID
		for j, index := range m.Triangles[i : i+3] {
			if index < 0 || index >= len(nodes) {
				return nil, configurationErrorf("triangle %d references vertex %d of %d", i/3, index, len(nodes))
			}
			triangle[j] = nodes[index]
		}
		if _, err := g.DefineTriangleFromNodes(triangle[0], triangle[1], triangle[2]); err != nil {
			return nil, configurationErrorf("triangle %d: %v", i/3, err)
		}
	}

	if err := g.Validate(); err != nil {
		return nil, configurationErrorf("mesh is not a manifold: %v", err)
	}
	return g, nil
}

// ExportMesh flattens a graph. Vertices are listed in node handle order and
// every triangle is wound clockwise. A graph with no nodes, edges or
// triangles has no mesh, and ok is false.
func ExportMesh(g *Graph) (mesh Mesh, ok bool) {
	if g.IsEmpty() {
		return Mesh{}, false
	}

	index := make(map[NodeID]int, g.NodeCount())
	for _, id := range g.NodeIDs() {
		index[id] = len(mesh.Vertices)
		mesh.Vertices = append(mesh.Vertices, g.nodes[id].Point)
	}
	for _, id := range g.TriangleIDs() {
		for _, n := range g.ClockwiseNodes(id) {
			mesh.Triangles = append(mesh.Triangles, index[n])
		}
	}
	return mesh, true
}

// Boundary lists the nodes on the graph's boundary edges, ordered clockwise
// around origin (nearest first at equal angles). For a convex fragment around
// its nucleus this is the fragment's outline, ready for collider construction.
func Boundary(g *Graph, origin Point) []Point {
	seen := make(map[NodeID]bool)
	var points []Point
	for _, e := range g.BoundaryEdges() {
		for _, n := range g.edges[e].Nodes {
			if seen[n] {
				continue
			}
			seen[n] = true
			points = append(points, g.nodes[n].Point)
		}
	}
	SortClockwise(points, origin)
	return points
}

// BoundaryLoops walks the boundary edges into closed rings, each wound
// clockwise. Unlike Boundary, this is correct for concave and holed graphs.
// Where more than two boundary edges meet at a node, the walk takes the
// first unvisited one.
func BoundaryLoops(g *Graph) []Polygon {
	boundary := g.BoundaryEdges()
	incident := make(map[NodeID][]EdgeID)
	for _, e := range boundary {
		for _, n := range g.edges[e].Nodes {
			incident[n] = append(incident[n], e)
		}
	}

	visited := make(map[EdgeID]bool, len(boundary))
	nextEdge := func(n NodeID) (EdgeID, bool) {
		for _, e := range incident[n] {
			if !visited[e] {
				return e, true
			}
		}
		return 0, false
	}

	var loops []Polygon
	for _, start := range boundary {
		if visited[start] {
			continue
		}
		visited[start] = true
		first := g.edges[start].Nodes[0]
		current := g.edges[start].Nodes[1]
		loop := Polygon{Points: []Point{g.nodes[first].Point}}
		for current != first {
			loop.Points = append(loop.Points, g.nodes[current].Point)
			e, ok := nextEdge(current)
			if !ok {
				break
			}
			visited[e] = true
			current = g.OtherNode(e, current)
		}
		if loop.IsCCW() {
			loop = loop.Reverse()
		}
		loops = append(loops, loop)
	}
	return loops
}

// FanTriangulate triangulates a convex polygon from its first point.
func FanTriangulate(poly Polygon) Mesh {
	mesh := Mesh{Vertices: append([]Point(nil), poly.Points...)}
	for i := 1; i+1 < len(poly.Points); i++ {
		mesh.Triangles = append(mesh.Triangles, 0, i, i+1)
	}
	return mesh
}
