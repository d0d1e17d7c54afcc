package internal

import (
	"embed"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs polygons. This is not a full
// (or even correct) svg parser. It parses the SVG, finds the first polygon and
// converts it into a CCW Polygon. If anything goes wrong, it exits.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) Polygon {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected exactly one polygon in fixture %q, found %d", name, len(polygons))
	}

	var points []Point
	for _, pointString := range strings.Fields(polygons[0].Attributes["points"]) {
		coordinates := strings.Split(pointString, ",")
		if len(coordinates) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coordinates[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coordinates[0], err)
		}
		y, err := strconv.ParseFloat(coordinates[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coordinates[1], err)
		}
		points = append(points, Point{x, y})
	}
	result := Polygon{Points: points}
	if result.IsCW() {
		result = result.Reverse()
	}
	return result
}

// LoadMeshFixture fan triangulates a convex fixture into a graph.
func LoadMeshFixture(name string) *Graph {
	return mustImport(FanTriangulate(LoadFixture(name)))
}

func mustImport(mesh Mesh) *Graph {
	g, err := ImportMesh(mesh)
	if err != nil {
		log.Fatalf("Could not import mesh: %v", err)
	}
	return g
}

// Some ad hoc fixtures

// UnitSquare is split along the diagonal (0,0)-(1,1).
func UnitSquare() *Graph {
	return mustImport(Mesh{
		Vertices:  []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
		Triangles: []int{0, 1, 2, 0, 2, 3},
	})
}

func RegularPolygon(n int, radius float64) Polygon {
	var points []Point
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points = append(points, Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return Polygon{Points: points}
}

// Grid builds an n by n grid of unit squares, each split into two triangles,
// with its lower left corner at the origin.
func Grid(n int) *Graph {
	var mesh Mesh
	for y := 0; y <= n; y++ {
		for x := 0; x <= n; x++ {
			mesh.Vertices = append(mesh.Vertices, Point{float64(x), float64(y)})
		}
	}
	index := func(x, y int) int { return y*(n+1) + x }
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			mesh.Triangles = append(mesh.Triangles,
				index(x, y), index(x+1, y), index(x+1, y+1),
				index(x, y), index(x+1, y+1), index(x, y+1),
			)
		}
	}
	return mustImport(mesh)
}
