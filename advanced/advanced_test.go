package advanced

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepper(t *testing.T) {
	triangulator, err := NewTriangulator([]Point{{X: -10, Y: -10}, {X: 10, Y: -10}, {X: 0, Y: 10}})
	require.NoError(t, err)

	stepper := triangulator.Step(Point{X: 0, Y: 0})
	var states []InsertionState
	for stepper.State() != Done {
		state, err := stepper.Advance()
		require.NoError(t, err)
		states = append(states, state)
	}
	assert.Equal(t, []InsertionState{RemovingGuiltyTriangles, RetriangulatingHole, Done}, states)
	assert.Equal(t, 3, triangulator.Graph.TriangleCount())

	cells, err := BuildCells(triangulator)
	require.NoError(t, err)
	assert.Len(t, cells, 1)
}

func TestSplitAndStitch(t *testing.T) {
	mesh, err := ImportMesh(Mesh{
		Vertices:  []Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
		Triangles: []int{0, 1, 2, 0, 2, 3},
	})
	require.NoError(t, err)

	split, err := Split(mesh, Line{A: Point{X: 0, Y: 0.5}, B: Point{X: 1, Y: 0.5}}, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1, split.Outside.Area()+split.Inside.Area(), 1e-9)

	_, err = Stitch(split.Outside, split.Inside, split.InsideToOutside())
	require.NoError(t, err)
	assert.InDelta(t, 1, split.Outside.Area(), 1e-9)

	_, err = Split(mesh, Line{A: Point{X: 0, Y: 0.5}, B: Point{X: 1, Y: 0.5}}, 0)
	var configErr *ConfigurationError
	assert.True(t, errors.As(err, &configErr))
}

func TestClip(t *testing.T) {
	mesh, err := ImportMesh(Mesh{
		Vertices:  []Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}},
		Triangles: []int{0, 1, 2, 0, 2, 3},
	})
	require.NoError(t, err)
	cell := Polygon{Points: []Point{{X: 0.5, Y: 0.5}, {X: 1.5, Y: 0.5}, {X: 1.5, Y: 1.5}, {X: 0.5, Y: 1.5}}}

	result, err := Clip(mesh, cell, Point{X: 1, Y: 1})
	require.NoError(t, err)
	assert.InDelta(t, 1, result.Fragment.Area(), 1e-9)
	assert.InDelta(t, 3, mesh.Area(), 1e-9)
}

func TestInvariantPanicsAreRecovered(t *testing.T) {
	outside, err := ImportMesh(Mesh{Vertices: []Point{{X: 0, Y: 0}}})
	require.NoError(t, err)
	inside, err := ImportMesh(Mesh{
		Vertices:  []Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}},
		Triangles: []int{0, 1, 2},
	})
	require.NoError(t, err)

	// Both ends of an edge mapped to the same node
	_, err = Stitch(outside, inside, map[NodeID]NodeID{0: 0, 1: 0})
	var invariantErr *InvariantError
	assert.True(t, errors.As(err, &invariantErr))
	assert.False(t, IsRecoverable(err))
}

func TestHandlePanicRecover(t *testing.T) {
	assert.NoError(t, HandlePanicRecover(nil))
	assert.Panics(t, func() {
		_ = HandlePanicRecover("not ours")
	})
}
