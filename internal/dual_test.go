package internal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Four hull nuclei around one interior nucleus, with no four cocircular
var dualNuclei = []Point{{0, 0}, {3, 0.2}, {2.8, 3.1}, {0.1, 2.9}, {1.4, 1.6}}

func triangulate(t *testing.T, points []Point) *Triangulator {
	triangulator, err := NewTriangulator(SuperTriangleFor(points, 10))
	require.NoError(t, err)
	skipped, err := triangulator.InsertAll(points)
	require.NoError(t, err)
	require.Empty(t, skipped)
	return triangulator
}

func TestBuildCells(t *testing.T) {
	triangulator := triangulate(t, dualNuclei)
	cells := BuildCells(triangulator)
	require.Len(t, cells, len(dualNuclei), "with the super-triangle, every nucleus has a bounded cell")

	for _, cell := range cells {
		assert.True(t, cell.Valid())
		assert.False(t, triangulator.IsSuperNode(cell.NucleusNode))
		assert.Equal(t, triangulator.Graph.Point(cell.NucleusNode), cell.Nucleus)

		polygon := cell.Polygon()
		assert.True(t, polygon.IsConvex(), "cell of %v is not convex", cell.Nucleus)
		assert.True(t, polygon.IsCW())
		assert.True(t, polygon.ContainsPointByEvenOdd(cell.Nucleus))

		// Every cell vertex is at least as close to its nucleus as to any other
		for _, v := range polygon.Points {
			own := v.Distance(cell.Nucleus)
			for _, other := range dualNuclei {
				assert.LessOrEqual(t, own, v.Distance(other)+Tolerance*math.Max(1, own))
			}
		}
	}
}

func TestBuildCells_WithoutSuperTriangle(t *testing.T) {
	triangulator := triangulate(t, dualNuclei)
	triangulator.RemoveSuperTriangle()

	// Only the interior nucleus still has a closed fan
	cells := BuildCells(triangulator)
	require.Len(t, cells, 1)
	assert.Equal(t, Point{1.4, 1.6}, cells[0].Nucleus)
	assert.Equal(t, len(triangulator.Graph.Node(cells[0].NucleusNode).Triangles), cells[0].Graph.NodeCount())
}

func TestCellValid(t *testing.T) {
	ring := func(n int, closed bool) *Cell {
		cell := &Cell{Graph: NewGraph()}
		var nodes []NodeID
		for _, p := range RegularPolygon(n, 1).Points {
			nodes = append(nodes, cell.Graph.CreateNode(p))
		}
		for i := 0; i+1 < len(nodes); i++ {
			cell.Graph.CreateEdge(nodes[i], nodes[i+1])
		}
		if closed {
			cell.Graph.CreateEdge(nodes[len(nodes)-1], nodes[0])
		}
		return cell
	}

	assert.True(t, ring(3, true).Valid())
	assert.True(t, ring(6, true).Valid())
	assert.False(t, ring(6, false).Valid(), "open fan")
	assert.False(t, ring(2, true).Valid(), "too few nodes")
}

func TestCellPolygon_CollapsesCoincidentCircumcenters(t *testing.T) {
	cell := &Cell{Graph: NewGraph()}
	for _, p := range []Point{{1, 0}, {0, 1}, {-1, 0}, {0, -1}, {1, Tolerance / 10}} {
		cell.Graph.CreateNode(p)
	}
	polygon := cell.Polygon()
	assert.Len(t, polygon.Points, 4)
	assert.True(t, polygon.IsCW())
}
