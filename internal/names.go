package internal

import (
	"fmt"

	"github.com/logrusorgru/aurora"

	"github.com/DoesntSuck/2DVoronoi-sub000/internal/dbg"
)

// Readable names for debugging output. Handle values repeat between graphs,
// so these names are only meaningful within one graph.

func (g *Graph) triangleString(t *Triangle) string {
	return fmt.Sprintf("Triangle %s <%s, %s, %s> circumcircle: %v r=%.4g",
		TriangleName(t),
		g.nodeString(t.Nodes[0]),
		g.nodeString(t.Nodes[1]),
		g.nodeString(t.Nodes[2]),
		t.Circumcircle.Center,
		t.Circumcircle.Radius,
	)
}

func (g *Graph) nodeString(id NodeID) string {
	return fmt.Sprintf("%s%v", dbg.Name(id), g.nodes[id].Point)
}

// TriangleName colors degenerate triangles red and the rest green.
func TriangleName(t *Triangle) string {
	name := dbg.Name(t.ID)
	if t.Degenerate {
		return aurora.Red(name).String()
	}
	return aurora.Green(name).String()
}
