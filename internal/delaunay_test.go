package internal

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bigSuperTriangle = []Point{{-100, -100}, {100, -100}, {0, 100}}

func newTestTriangulator(t *testing.T) *Triangulator {
	triangulator, err := NewTriangulator(bigSuperTriangle)
	require.NoError(t, err)
	return triangulator
}

func TestNewTriangulator(t *testing.T) {
	triangulator := newTestTriangulator(t)
	assert.Equal(t, 1, triangulator.Graph.TriangleCount())
	assert.Equal(t, 3, triangulator.Graph.NodeCount())

	var configErr *ConfigurationError
	_, err := NewTriangulator([]Point{{0, 0}, {1, 0}})
	assert.True(t, errors.As(err, &configErr), "two points")
	_, err = NewTriangulator([]Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}})
	assert.True(t, errors.As(err, &configErr), "four points")
	_, err = NewTriangulator([]Point{{0, 0}, {1, 0}, {2, 0}})
	assert.True(t, errors.As(err, &configErr), "collinear points")
}

func TestTriangulator_ThreePoints(t *testing.T) {
	triangulator := newTestTriangulator(t)
	points := []Point{{0, 0}, {1, 0}, {0, 1}}
	for _, p := range points {
		_, err := triangulator.Insert(p)
		require.NoError(t, err)
	}
	AssertValidGraph(t, triangulator.Graph, false)
	AssertDelaunay(t, triangulator.Graph)

	triangulator.RemoveSuperTriangle()
	g := triangulator.Graph
	require.Equal(t, 1, g.TriangleCount())
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 3, g.EdgeCount())

	triangle := g.Triangle(g.TriangleIDs()[0])
	var corners []Point
	for _, n := range triangle.Nodes {
		corners = append(corners, g.Point(n))
	}
	assert.ElementsMatch(t, points, corners)
	assert.InDelta(t, 0.5, triangle.Circumcircle.Center.X, Epsilon)
	assert.InDelta(t, 0.5, triangle.Circumcircle.Center.Y, Epsilon)
	assert.InDelta(t, math.Sqrt(0.5), triangle.Circumcircle.Radius, Epsilon)
}

func TestTriangulator_RandomPoints(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	var points []Point
	for i := 0; i < 60; i++ {
		points = append(points, RandomPointInCircle(r, Point{2, -3}, 10))
	}

	triangulator, err := NewTriangulator(SuperTriangleFor(points, 10))
	require.NoError(t, err)
	for _, p := range points {
		assert.True(t, triangulator.SuperTriangleContains(p))
	}

	skipped, err := triangulator.InsertAll(points)
	require.NoError(t, err)
	assert.Empty(t, skipped)
	assert.Len(t, triangulator.Nuclei(), len(points))

	// A triangulation of n nodes with h on the hull has 2n - 2 - h triangles,
	// and the hull is the super-triangle
	n := triangulator.Graph.NodeCount()
	assert.Equal(t, 2*n-5, triangulator.Graph.TriangleCount())
	AssertValidGraph(t, triangulator.Graph, false)
	AssertDelaunay(t, triangulator.Graph)

	triangulator.RemoveSuperTriangle()
	assert.Equal(t, len(points), triangulator.Graph.NodeCount())
	AssertValidGraph(t, triangulator.Graph, false)
	AssertDelaunay(t, triangulator.Graph)
	assert.NotEmpty(t, triangulator.Graph.BoundaryEdges())
}

func TestTriangulator_DegenerateInsertions(t *testing.T) {
	t.Run("coincident point", func(t *testing.T) {
		triangulator := newTestTriangulator(t)
		_, err := triangulator.InsertAll([]Point{{0, 0}, {1, 0}, {0, 1}})
		require.NoError(t, err)
		before := triangulator.Graph.Clone()

		_, err = triangulator.Insert(Point{1, 0})
		var degenerate *DegenerateGeometryError
		require.True(t, errors.As(err, &degenerate))
		assert.True(t, IsRecoverable(err))

		// Nothing was mutated
		assert.Equal(t, before.NodeIDs(), triangulator.Graph.NodeIDs())
		assert.Equal(t, before.EdgeIDs(), triangulator.Graph.EdgeIDs())
		assert.Equal(t, before.TriangleIDs(), triangulator.Graph.TriangleIDs())
		assert.Len(t, triangulator.Nuclei(), 3)
	})

	t.Run("outside the super-triangle is skipped", func(t *testing.T) {
		triangulator := newTestTriangulator(t)
		skipped, err := triangulator.InsertAll([]Point{{0, 0}, {500, 500}, {1, 1}})
		require.NoError(t, err)
		assert.Equal(t, []Point{{500, 500}}, skipped)
		assert.Len(t, triangulator.Nuclei(), 2)
	})
}

func TestTriangulator_SuperTriangle(t *testing.T) {
	triangulator := newTestTriangulator(t)
	node, err := triangulator.Insert(Point{0, 0})
	require.NoError(t, err)

	assert.False(t, triangulator.IsSuperNode(node))
	for _, id := range triangulator.Graph.TriangleIDs() {
		assert.True(t, triangulator.TouchesSuperTriangle(id))
	}
	superNodes := 0
	for _, id := range triangulator.Graph.NodeIDs() {
		if triangulator.IsSuperNode(id) {
			superNodes++
		}
	}
	assert.Equal(t, 3, superNodes)

	triangulator.RemoveSuperTriangle()
	assert.True(t, triangulator.SuperTriangleRemoved())
	assert.Equal(t, 1, triangulator.Graph.NodeCount())
	assert.Equal(t, 0, triangulator.Graph.TriangleCount())
	assert.NotPanics(t, triangulator.RemoveSuperTriangle, "removal is idempotent")
}

func TestSuperTriangleFor(t *testing.T) {
	points := []Point{{-3, 2}, {10, 4}, {5, -7}}
	super := SuperTriangleFor(points, 1)
	require.Len(t, super, 3)
	for _, p := range points {
		assert.True(t, PointInTriangle(p, super[0], super[1], super[2]))
	}

	// No points still gives a usable triangle
	super = SuperTriangleFor(nil, 5)
	assert.NotEqual(t, 0, Side(super[0], super[1], super[2]))
}
