// Package advanced exposes the building blocks of the shattering pipeline:
// the planar graph, the incremental triangulator and its stepper, Voronoi
// cells, and the split, clip and stitch operations on meshes.
//
// Most callers want the voronoi package instead. Use this one to drive the
// stages separately, for example to draw every insertion step.
package advanced

import "github.com/DoesntSuck/2DVoronoi-sub000/internal"

type Point = internal.Point
type Polygon = internal.Polygon
type Circle = internal.Circle

type Graph = internal.Graph
type NodeID = internal.NodeID
type EdgeID = internal.EdgeID
type TriangleID = internal.TriangleID

type Triangulator = internal.Triangulator
type InsertionStepper = internal.InsertionStepper
type InsertionState = internal.InsertionState
type Cell = internal.Cell

type Line = internal.Line
type SplitGraph = internal.SplitGraph
type SplitNodePair = internal.SplitNodePair
type ClipResult = internal.ClipResult
type Mesh = internal.Mesh
type Drawing = internal.Drawing

type ShatterError = internal.ShatterError
type ConfigurationError = internal.ConfigurationError
type DegenerateGeometryError = internal.DegenerateGeometryError
type NoIntersectionError = internal.NoIntersectionError
type DegenerateTriangleError = internal.DegenerateTriangleError
type InvariantError = internal.InvariantError

const (
	AwaitingStep            = internal.AwaitingStep
	RemovingGuiltyTriangles = internal.RemovingGuiltyTriangles
	RetriangulatingHole     = internal.RetriangulatingHole
	Done                    = internal.Done
)

func NewGraph() *Graph {
	return internal.NewGraph()
}

// NewTriangulator starts a triangulation from the three super-triangle points.
func NewTriangulator(super []Point) (*Triangulator, error) {
	return internal.NewTriangulator(super)
}

// SuperTriangleFor returns a super-triangle enclosing points, scaled up from
// their bounding circle.
func SuperTriangleFor(points []Point, scale float64) []Point {
	return internal.SuperTriangleFor(points, scale)
}

// BuildCells returns the Voronoi cell of every nucleus in t that has a closed
// one. Call it before removing the super-triangle.
func BuildCells(t *Triangulator) (cells []*Cell, err error) {
	defer func() {
		if recoveredErr := HandlePanicRecover(recover()); recoveredErr != nil {
			cells = nil
			err = recoveredErr
		}
	}()
	return internal.BuildCells(t), nil
}

// Split divides g along line. g keeps the triangles on the side opposite
// insideSign, and the returned SplitGraph holds the rest.
func Split(g *Graph, line Line, insideSign int) (result *SplitGraph, err error) {
	defer func() {
		if recoveredErr := HandlePanicRecover(recover()); recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return internal.Split(g, line, insideSign)
}

// Clip removes the part of mesh inside a convex polygon around nucleus, and
// returns it as a new graph.
func Clip(mesh *Graph, polygon Polygon, nucleus Point) (result *ClipResult, err error) {
	defer func() {
		if recoveredErr := HandlePanicRecover(recover()); recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return internal.Clip(mesh, polygon, nucleus)
}

// Stitch merges inside into outside. nodeMap sends inside nodes to the
// outside nodes they are joined to; the result sends every inside node to its
// node in outside.
func Stitch(outside, inside *Graph, nodeMap map[NodeID]NodeID) (result map[NodeID]NodeID, err error) {
	defer func() {
		if recoveredErr := HandlePanicRecover(recover()); recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return internal.Stitch(outside, inside, nodeMap), nil
}

func ImportMesh(m Mesh) (*Graph, error) {
	return internal.ImportMesh(m)
}

func ExportMesh(g *Graph) (Mesh, bool) {
	return internal.ExportMesh(g)
}

// PrintPNG writes an image file to the terminal (iTerm only).
func PrintPNG(path string) {
	internal.PrintPNG(path)
}

func IsRecoverable(err error) bool {
	return internal.IsRecoverable(err)
}

// HandlePanicRecover converts a panic raised by this module into an error. It
// must be passed the result of recover() from a deferred function. Panics
// from anywhere else are re-raised.
func HandlePanicRecover(r interface{}) error {
	return internal.HandlePanicRecover(r)
}
