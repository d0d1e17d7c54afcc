package internal

import (
	"go.uber.org/zap"
)

// Shattering runs the whole pipeline: triangulate the nuclei, build the
// Voronoi cell of each one, then clip the mesh by every cell in turn. Each
// clip removes a fragment from the mesh, so the fragments never overlap, and
// whatever no cell covers is left in the remainder.
//
// Cells are built before the super-triangle is removed. That way nuclei on
// the hull still get bounded cells, reaching out towards the super-triangle,
// and the cells together cover everything the mesh can reach.

const DefaultSuperTriangleScale = 10

type Options struct {
	// Multiplies the radius of the bounding circle of the mesh and nuclei when
	// building the super-triangle. Must be at least 1.
	SuperTriangleScale float64
	Logger             *zap.Logger
}

func DefaultOptions() Options {
	return Options{SuperTriangleScale: DefaultSuperTriangleScale}
}

type Fragment struct {
	Nucleus Point
	// The Voronoi cell the fragment was clipped by
	Cell     Polygon
	Mesh     Mesh
	Boundary []Point // Clockwise around the nucleus
	Area     float64
	Centroid Point
	// Cell edges that could not be cut; the fragment extends past them
	SkippedCuts int
}

type Result struct {
	Fragments    []Fragment
	Triangulator *Triangulator
	Cells        []*Cell
	// What is left of the mesh once every fragment is removed
	Remainder     *Graph
	SkippedNuclei []Point
	SkippedCuts   int
}

// Area is the total area of every fragment and the remainder.
func (r *Result) Area() float64 {
	area := r.Remainder.Area()
	for _, f := range r.Fragments {
		area += f.Area
	}
	return area
}

type Shatterer struct {
	options Options
	logger  *zap.Logger
}

func NewShatterer(options Options) (*Shatterer, error) {
	if options.SuperTriangleScale == 0 {
		options.SuperTriangleScale = DefaultSuperTriangleScale
	}
	if options.SuperTriangleScale < 1 {
		return nil, configurationErrorf("super-triangle scale must be at least 1, got %g", options.SuperTriangleScale)
	}
	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Shatterer{options: options, logger: logger}, nil
}

// Triangulate inserts the nuclei into a triangulation whose super-triangle
// also encloses the extra points. The super-triangle is left in place.
func (s *Shatterer) Triangulate(nuclei []Point, extra ...Point) (*Triangulator, []Point, error) {
	all := append(append([]Point(nil), nuclei...), extra...)
	t, err := NewTriangulator(SuperTriangleFor(all, s.options.SuperTriangleScale))
	if err != nil {
		return nil, nil, err
	}
	skipped, err := t.InsertAll(nuclei)
	if err != nil {
		return nil, nil, err
	}
	for _, p := range skipped {
		s.logger.Warn("skipping nucleus", zap.Stringer("point", p))
	}
	s.logger.Debug("triangulated nuclei",
		zap.Int("inserted", len(t.Nuclei())),
		zap.Int("skipped", len(skipped)),
		zap.Int("triangles", t.Graph.TriangleCount()))
	return t, skipped, nil
}

// Cells triangulates the nuclei and returns their Voronoi cells.
func (s *Shatterer) Cells(nuclei []Point, extra ...Point) ([]*Cell, []Point, error) {
	t, skipped, err := s.Triangulate(nuclei, extra...)
	if err != nil {
		return nil, nil, err
	}
	return BuildCells(t), skipped, nil
}

// Shatter splits a copy of mesh into one fragment per nucleus. The mesh itself
// is not modified.
func (s *Shatterer) Shatter(mesh *Graph, nuclei []Point) (*Result, error) {
	work := mesh.Clone()
	meshPoints := make([]Point, 0, work.NodeCount())
	for _, id := range work.NodeIDs() {
		meshPoints = append(meshPoints, work.nodes[id].Point)
	}

	t, skipped, err := s.Triangulate(nuclei, meshPoints...)
	if err != nil {
		return nil, err
	}
	cells := BuildCells(t)
	t.RemoveSuperTriangle()

	result := &Result{
		Triangulator:  t,
		Cells:         cells,
		Remainder:     work,
		SkippedNuclei: skipped,
	}
	for _, cell := range cells {
		if work.TriangleCount() == 0 {
			break
		}
		fragment, err := s.clipCell(work, cell)
		if err != nil {
			return nil, err
		}
		result.SkippedCuts += fragment.SkippedCuts
		if fragment.Mesh.TriangleCount() == 0 {
			continue
		}
		result.Fragments = append(result.Fragments, fragment)
	}

	s.logger.Debug("shattered mesh",
		zap.Int("fragments", len(result.Fragments)),
		zap.Int("skippedCuts", result.SkippedCuts),
		zap.Float64("remainderArea", work.Area()))
	return result, nil
}

func (s *Shatterer) clipCell(work *Graph, cell *Cell) (Fragment, error) {
	polygon := cell.Polygon()
	fragment := Fragment{Nucleus: cell.Nucleus, Cell: polygon}
	if len(polygon.Points) < 3 {
		s.logger.Warn("skipping collapsed cell", zap.Stringer("nucleus", cell.Nucleus))
		return fragment, nil
	}

	clipped, err := clipWithLogger(work, polygon, cell.Nucleus, s.logger)
	if err != nil {
		return fragment, err
	}
	fragment.SkippedCuts = clipped.SkippedCuts
	if clipped.SkippedCuts > 0 {
		s.logger.Warn("cell clipped with skipped cuts",
			zap.Stringer("nucleus", cell.Nucleus),
			zap.Int("skipped", clipped.SkippedCuts))
	}

	mesh, ok := ExportMesh(clipped.Fragment)
	if !ok {
		s.logger.Debug("empty fragment", zap.Stringer("nucleus", cell.Nucleus))
		return fragment, nil
	}
	fragment.Mesh = mesh
	fragment.Boundary = Boundary(clipped.Fragment, cell.Nucleus)
	fragment.Area = clipped.Fragment.Area()
	fragment.Centroid = clipped.Fragment.Centroid()
	s.logger.Debug("clipped fragment",
		zap.Stringer("nucleus", cell.Nucleus),
		zap.Int("triangles", clipped.Fragment.TriangleCount()),
		zap.Float64("area", fragment.Area))
	return fragment, nil
}
