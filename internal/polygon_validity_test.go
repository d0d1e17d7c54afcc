package internal

// This contains no actual tests. It is just a set of helpers for checking
// graph validity.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a graph is a valid triangle mesh. The rules are:
// 1. Every adjacency is mirrored on both sides (Graph.Validate).
// 2. No edge has more than two triangles.
// 3. Every triangle has three distinct nodes.
// 4. No triangle has zero area, unless allowDegenerate is set.
func AssertValidGraph(t *testing.T, g *Graph, allowDegenerate bool) {
	require.NoError(t, g.Validate())
	for _, id := range g.EdgeIDs() {
		require.LessOrEqual(t, len(g.Edge(id).Triangles), 2, "edge %d is not manifold", id)
	}
	for _, id := range g.TriangleIDs() {
		triangle := g.Triangle(id)
		n := triangle.Nodes
		require.True(t, n[0] != n[1] && n[1] != n[2] && n[0] != n[2], "triangle %d repeats a node", id)
		if !allowDegenerate {
			assert.Greater(t, g.TriangleArea(id), Epsilon, "triangle %s has no area", g.triangleString(triangle))
		}
	}
}

// Helper to check the Delaunay property: no node lies strictly inside any
// triangle's circumcircle.
func AssertDelaunay(t *testing.T, g *Graph) {
	for _, id := range g.TriangleIDs() {
		triangle := g.Triangle(id)
		circle := triangle.Circumcircle
		for _, n := range g.NodeIDs() {
			if triangle.HasNode(n) {
				continue
			}
			p := g.Point(n)
			assert.GreaterOrEqual(t, p.Distance(circle.Center), circle.Radius-Tolerance*math.Max(1, circle.Radius),
				"node %v is inside the circumcircle of %s", p, g.triangleString(triangle))
		}
	}
}

// Checks that two sets of graphs cover the same region, by sampling a grid of
// points over their bounds. Points within the given margin of any triangle
// edge are skipped.
func validateCoverageBySampling(t *testing.T, actual []*Graph, expected []*Graph, margin float64) {
	bounds := BoundsOf()
	for _, list := range [][]*Graph{actual, expected} {
		for _, g := range list {
			for _, id := range g.NodeIDs() {
				bounds = bounds.Extend(g.Point(id))
			}
		}
	}
	step := math.Max(bounds.Max.X-bounds.Min.X, bounds.Max.Y-bounds.Min.Y) / 37

	for y := bounds.Min.Y + step/2; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X + step/2; x < bounds.Max.X; x += step {
			p := Point{X: x, Y: y}
			if nearAnyEdge(p, actual, margin) || nearAnyEdge(p, expected, margin) {
				continue
			}
			assert.Equal(t, coverCount(p, expected), coverCount(p, actual), "coverage differs at %v", p)
		}
	}
}

// coverCount counts the triangles containing p, across every graph.
func coverCount(p Point, graphs []*Graph) int {
	count := 0
	for _, g := range graphs {
		for _, id := range g.TriangleIDs() {
			a, b, c := g.TrianglePoints(id)
			if PointInTriangle(p, a, b, c) {
				count++
			}
		}
	}
	return count
}

func nearAnyEdge(p Point, graphs []*Graph, margin float64) bool {
	for _, g := range graphs {
		for _, id := range g.EdgeIDs() {
			edge := g.Edge(id)
			if distanceToSegment(p, g.Point(edge.Nodes[0]), g.Point(edge.Nodes[1])) < margin {
				return true
			}
		}
	}
	return false
}

func distanceToSegment(p, a, b Point) float64 {
	ab := b.Sub(a)
	lengthSquared := ab.Dot(ab)
	if lengthSquared == 0 {
		return p.Distance(a)
	}
	t := math.Max(0, math.Min(1, p.Sub(a).Dot(ab)/lengthSquared))
	return p.Distance(a.Lerp(b, t))
}
