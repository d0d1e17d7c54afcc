// Package voronoi shatters 2D triangle meshes into fragments along Voronoi
// cells.
//
// Nuclei are triangulated incrementally (Bowyer-Watson), the Delaunay
// triangulation gives each nucleus a convex Voronoi cell, and each cell cuts
// its fragment out of the mesh. Fragments never overlap, and together with
// the remainder they cover the mesh exactly.
//
// Meshes are exchanged as a vertex list plus a triangle index buffer with
// stride 3. Fragments come back in the same form, wound clockwise.
package voronoi

import (
	"math/rand"

	"github.com/DoesntSuck/2DVoronoi-sub000/advanced"
	"github.com/DoesntSuck/2DVoronoi-sub000/internal"
)

type Point = advanced.Point
type Polygon = advanced.Polygon
type Mesh = advanced.Mesh

type Options = internal.Options
type Fragment = internal.Fragment
type Result = internal.Result
type NucleiOptions = internal.NucleiOptions

const DefaultSuperTriangleScale = internal.DefaultSuperTriangleScale

func DefaultOptions() Options {
	return internal.DefaultOptions()
}

// Shatter cuts mesh into one fragment per nucleus, using default options.
//
// Nuclei that cannot be inserted (duplicates, or too close to an existing
// nucleus) are skipped and reported in the result.
func Shatter(mesh Mesh, nuclei []Point) (*Result, error) {
	return ShatterWithOptions(mesh, nuclei, DefaultOptions())
}

func ShatterWithOptions(mesh Mesh, nuclei []Point, options Options) (result *Result, err error) {
	defer func() {
		if recoveredErr := advanced.HandlePanicRecover(recover()); recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	shatterer, err := internal.NewShatterer(options)
	if err != nil {
		return nil, err
	}
	g, err := internal.ImportMesh(mesh)
	if err != nil {
		return nil, err
	}
	return shatterer.Shatter(g, nuclei)
}

// Cells returns the Voronoi cell of every nucleus as a clockwise polygon.
// Cells of nuclei on the hull reach out to a super-triangle scaled from the
// nuclei's bounding circle, so every cell is bounded.
func Cells(nuclei []Point, options Options) (cells []Polygon, err error) {
	defer func() {
		if recoveredErr := advanced.HandlePanicRecover(recover()); recoveredErr != nil {
			cells = nil
			err = recoveredErr
		}
	}()
	shatterer, err := internal.NewShatterer(options)
	if err != nil {
		return nil, err
	}
	built, _, err := shatterer.Cells(nuclei)
	if err != nil {
		return nil, err
	}
	for _, cell := range built {
		cells = append(cells, cell.Polygon())
	}
	return cells, nil
}

// Triangulate returns the Delaunay triangulation of points as a mesh.
// Points that cannot be inserted are skipped and returned. When fewer than
// three points could be inserted there is no mesh, and ok is false.
func Triangulate(points []Point) (mesh Mesh, ok bool, skipped []Point, err error) {
	defer func() {
		if recoveredErr := advanced.HandlePanicRecover(recover()); recoveredErr != nil {
			mesh = Mesh{}
			ok = false
			skipped = nil
			err = recoveredErr
		}
	}()
	shatterer, err := internal.NewShatterer(DefaultOptions())
	if err != nil {
		return Mesh{}, false, nil, err
	}
	t, skipped, err := shatterer.Triangulate(points)
	if err != nil {
		return Mesh{}, false, nil, err
	}
	t.RemoveSuperTriangle()
	mesh, ok = internal.ExportMesh(t.Graph)
	return mesh, ok, skipped, nil
}

// GenerateNuclei samples nuclei in a disc; see NucleiOptions.
func GenerateNuclei(seed int64, options NucleiOptions) ([]Point, error) {
	return internal.GenerateNuclei(rand.New(rand.NewSource(seed)), options)
}

// FanTriangulate turns a convex polygon into a mesh.
func FanTriangulate(polygon Polygon) Mesh {
	return internal.FanTriangulate(polygon)
}
