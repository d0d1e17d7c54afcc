package main

import (
	"bufio"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	voronoi "github.com/DoesntSuck/2DVoronoi-sub000"
	"github.com/DoesntSuck/2DVoronoi-sub000/config"
)

// Input on stdin is newline separated points in the form "x y", with each
// polygon separated by an extra newline. Polygons must be convex, and are
// fan triangulated into a single mesh. They should not overlap; this is not
// validated.
func readPolygons(in io.Reader) ([]voronoi.Polygon, error) {
	polygons := []voronoi.Polygon{}
	scanner := bufio.NewScanner(in)
	points := []voronoi.Point{}
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the polygon
		if line == "" {
			if len(points) > 0 {
				polygons = append(polygons, voronoi.Polygon{Points: points})
				points = []voronoi.Point{}
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading polygons")
	}

	// Handle trailing polygon if any
	if len(points) > 0 {
		polygons = append(polygons, voronoi.Polygon{Points: points})
	}
	return polygons, nil
}

func parsePoint(line string) (voronoi.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return voronoi.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return voronoi.Point{}, errors.Wrap(err, "parsing x")
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return voronoi.Point{}, errors.Wrap(err, "parsing y")
	}
	return voronoi.Point{X: x, Y: y}, nil
}

// polygonsToMesh fan triangulates every polygon into one mesh. Polygons with
// fewer than three points are an error.
func polygonsToMesh(polygons []voronoi.Polygon) (voronoi.Mesh, error) {
	var mesh voronoi.Mesh
	for i, polygon := range polygons {
		if len(polygon.Points) < 3 {
			return voronoi.Mesh{}, errors.Errorf("polygon %d has %d points", i, len(polygon.Points))
		}
		fan := voronoi.FanTriangulate(polygon)
		offset := len(mesh.Vertices)
		mesh.Vertices = append(mesh.Vertices, fan.Vertices...)
		for _, index := range fan.Triangles {
			mesh.Triangles = append(mesh.Triangles, index+offset)
		}
	}
	return mesh, nil
}

// readMesh loads a YAML mesh file, or reads polygons from stdin when path is
// empty.
func readMesh(path string) (voronoi.Mesh, error) {
	if path == "" {
		polygons, err := readPolygons(os.Stdin)
		if err != nil {
			return voronoi.Mesh{}, err
		}
		return polygonsToMesh(polygons)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return voronoi.Mesh{}, errors.Wrap(err, "reading mesh file")
	}
	var mesh voronoi.Mesh
	if err := yaml.Unmarshal(data, &mesh); err != nil {
		return voronoi.Mesh{}, errors.Wrap(err, "parsing mesh YAML")
	}
	return mesh, nil
}

// fitNucleiToMesh centers nuclei generation on the mesh, with a radius
// reaching its farthest vertex.
func fitNucleiToMesh(cfg *config.Config, mesh voronoi.Mesh) {
	if len(mesh.Vertices) == 0 {
		return
	}
	var center voronoi.Point
	for _, v := range mesh.Vertices {
		center = center.Add(v)
	}
	center = center.Scale(1 / float64(len(mesh.Vertices)))

	radius := 0.0
	for _, v := range mesh.Vertices {
		radius = math.Max(radius, v.Distance(center))
	}
	if radius == 0 {
		return
	}
	cfg.Nuclei.Origin = center
	cfg.Nuclei.MaxRadius = radius
}
