package internal

// A Voronoi cell is built from the triangles around one Delaunay node (its
// nucleus). Each triangle contributes its circumcenter as a cell node, and two
// triangles that share an edge contribute a cell edge between their
// circumcenters. Around an interior nucleus, the triangles form a closed fan,
// so the cell edges form a closed ring.

type Cell struct {
	Graph       *Graph
	Nucleus     Point
	NucleusNode NodeID // In the triangulation's graph
}

// Valid cells have at least three nodes and three edges, and their edges
// close a ring. A nucleus on the hull of a triangulation without its
// super-triangle only has an open fan, which makes an unbounded cell.
func (c *Cell) Valid() bool {
	nodes := c.Graph.NodeCount()
	edges := c.Graph.EdgeCount()
	if nodes < 3 || edges < 3 || nodes != edges {
		return false
	}
	for _, id := range c.Graph.NodeIDs() {
		if len(c.Graph.nodes[id].Edges) != 2 {
			return false
		}
	}
	return true
}

// Polygon returns the cell's ring ordered clockwise around the nucleus.
// Circumcenters that coincide (cocircular nuclei) are collapsed into one
// point.
func (c *Cell) Polygon() Polygon {
	points := make([]Point, 0, c.Graph.NodeCount())
	for _, id := range c.Graph.NodeIDs() {
		points = append(points, c.Graph.nodes[id].Point)
	}
	SortClockwise(points, c.Nucleus)

	result := make([]Point, 0, len(points))
	for _, p := range points {
		if len(result) > 0 && p.Approximately(result[len(result)-1]) {
			continue
		}
		result = append(result, p)
	}
	if len(result) > 1 && result[0].Approximately(result[len(result)-1]) {
		result = result[:len(result)-1]
	}
	return Polygon{Points: result}
}

// BuildCells builds a cell for every real node in the triangulation and
// returns the valid ones, ordered by nucleus handle. If the super-triangle is
// still present, hull nuclei get bounded cells whose far nodes are
// circumcenters of triangles touching the super-triangle.
func BuildCells(t *Triangulator) []*Cell {
	var cells []*Cell
	for _, id := range t.Graph.NodeIDs() {
		if t.IsSuperNode(id) {
			continue
		}
		cell := buildCell(t.Graph, id)
		if cell.Valid() {
			cells = append(cells, cell)
		}
	}
	return cells
}

func buildCell(g *Graph, nucleus NodeID) *Cell {
	cell := &Cell{
		Graph:       NewGraph(),
		Nucleus:     g.nodes[nucleus].Point,
		NucleusNode: nucleus,
	}

	triangles := g.nodes[nucleus].Triangles.Sorted()
	cellNodes := make(map[TriangleID]NodeID, len(triangles))
	for _, id := range triangles {
		cellNodes[id] = cell.Graph.CreateNode(g.triangles[id].Circumcircle.Center)
	}

	// Neighbouring triangles around the nucleus give neighbouring cell nodes
	for i, a := range triangles {
		for _, b := range triangles[i+1:] {
			if g.SharesEdge(a, b) {
				cell.Graph.CreateEdge(cellNodes[a], cellNodes[b])
			}
		}
	}
	return cell
}
