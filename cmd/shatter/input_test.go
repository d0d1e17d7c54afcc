package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	voronoi "github.com/DoesntSuck/2DVoronoi-sub000"
	"github.com/DoesntSuck/2DVoronoi-sub000/config"
)

func TestReadPolygons(t *testing.T) {
	input := `0 0
1 0
1 1
0 1


5 5
6 5
5.5 6.5
`
	polygons, err := readPolygons(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, polygons, 2)
	assert.Len(t, polygons[0].Points, 4)
	assert.Equal(t, voronoi.Point{X: 5.5, Y: 6.5}, polygons[1].Points[2])

	mesh, err := polygonsToMesh(polygons)
	require.NoError(t, err)
	assert.Len(t, mesh.Vertices, 7)
	assert.Equal(t, []int{0, 1, 2, 0, 2, 3, 4, 5, 6}, mesh.Triangles)
}

func TestReadPolygons_Errors(t *testing.T) {
	_, err := readPolygons(strings.NewReader("0 0\n1\n"))
	assert.ErrorContains(t, err, "line 2")

	_, err = readPolygons(strings.NewReader("0 zero\n"))
	assert.Error(t, err)

	polygons, err := readPolygons(strings.NewReader("0 0\n1 1\n"))
	require.NoError(t, err)
	_, err = polygonsToMesh(polygons)
	assert.Error(t, err, "two points are not a polygon")
}

func TestReadMesh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mesh.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
vertices:
  - {x: 0, y: 0}
  - {x: 2, y: 0}
  - {x: 0, y: 2}
triangles: [0, 1, 2]
`), 0o644))

	mesh, err := readMesh(path)
	require.NoError(t, err)
	assert.Equal(t, []voronoi.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 2}}, mesh.Vertices)
	assert.Equal(t, 1, mesh.TriangleCount())

	cfg := config.Default()
	fitNucleiToMesh(cfg, mesh)
	assert.InDelta(t, 2.0/3, cfg.Nuclei.Origin.X, 1e-9)
	assert.InDelta(t, 2.0/3, cfg.Nuclei.Origin.Y, 1e-9)
	assert.InDelta(t, voronoi.Point{X: 2, Y: 0}.Distance(cfg.Nuclei.Origin), cfg.Nuclei.MaxRadius, 1e-9)
}

func TestWriteShatterOutput(t *testing.T) {
	mesh := voronoi.FanTriangulate(voronoi.Polygon{Points: []voronoi.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}})
	result, err := voronoi.Shatter(mesh, []voronoi.Point{{X: 0.5, Y: 1}, {X: 1.5, Y: 1}})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "fragments.yaml")
	require.NoError(t, writeYAML(path, newShatterOutput(result)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var out shatterOutput
	require.NoError(t, yaml.Unmarshal(data, &out))
	require.Len(t, out.Fragments, 2)
	assert.Nil(t, out.Remainder)
	for _, f := range out.Fragments {
		assert.InDelta(t, 2, f.Area, 1e-6)
		assert.NotEmpty(t, f.Boundary)
	}

	png := filepath.Join(t.TempDir(), "fragments.png")
	require.NoError(t, drawResult(png, 20, result))
	_, err = os.Stat(png)
	assert.NoError(t, err)
}
