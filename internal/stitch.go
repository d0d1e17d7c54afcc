package internal

// Stitch copies every element of inside into outside and returns the handle
// each inside node has in outside. nodeMap gives, for inside nodes on a seam,
// the outside node they are a copy of; those are reused instead of copied,
// as long as they still exist in outside. Edges and triangles are get-or-create,
// so an edge along the seam is shared rather than duplicated.
//
// Stitching the halves of a Split with the split's InsideToOutside map
// restores the original topology, with any cut triangles still cut.
func Stitch(outside, inside *Graph, nodeMap map[NodeID]NodeID) map[NodeID]NodeID {
	result := make(map[NodeID]NodeID, inside.NodeCount())
	for _, id := range inside.NodeIDs() {
		if target, ok := nodeMap[id]; ok && outside.HasNode(target) {
			result[id] = target
			continue
		}
		result[id] = outside.CreateNode(inside.nodes[id].Point)
	}

	edges := make(map[EdgeID]EdgeID, inside.EdgeCount())
	for _, id := range inside.EdgeIDs() {
		edge := inside.edges[id]
		a, b := result[edge.Nodes[0]], result[edge.Nodes[1]]
		if a == b {
			fatalf("stitching collapses edge %d onto node %d", id, a)
		}
		edges[id] = outside.CreateEdge(a, b)
	}

	for _, id := range inside.TriangleIDs() {
		t := inside.triangles[id]
		if _, err := outside.DefineTriangle(edges[t.Edges[0]], edges[t.Edges[1]], edges[t.Edges[2]]); err != nil {
			fatalf("stitching triangle %d: %v", id, err)
		}
	}
	return result
}
