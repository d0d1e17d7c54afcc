package main

import (
	"fmt"
	"io"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	voronoi "github.com/DoesntSuck/2DVoronoi-sub000"
	"github.com/DoesntSuck/2DVoronoi-sub000/advanced"
)

type fragmentOutput struct {
	Nucleus     voronoi.Point   `yaml:"nucleus"`
	Area        float64         `yaml:"area"`
	Centroid    voronoi.Point   `yaml:"centroid"`
	Boundary    []voronoi.Point `yaml:"boundary"`
	SkippedCuts int             `yaml:"skipped_cuts,omitempty"`
	Mesh        voronoi.Mesh    `yaml:"mesh"`
}

type shatterOutput struct {
	Fragments     []fragmentOutput `yaml:"fragments"`
	Remainder     *voronoi.Mesh    `yaml:"remainder,omitempty"`
	SkippedNuclei []voronoi.Point  `yaml:"skipped_nuclei,omitempty"`
}

func newShatterOutput(result *voronoi.Result) shatterOutput {
	out := shatterOutput{
		Fragments:     []fragmentOutput{},
		SkippedNuclei: result.SkippedNuclei,
	}
	for _, f := range result.Fragments {
		out.Fragments = append(out.Fragments, fragmentOutput{
			Nucleus:     f.Nucleus,
			Area:        f.Area,
			Centroid:    f.Centroid,
			Boundary:    f.Boundary,
			SkippedCuts: f.SkippedCuts,
			Mesh:        f.Mesh,
		})
	}
	if remainder, ok := advanced.ExportMesh(result.Remainder); ok {
		out.Remainder = &remainder
	}
	return out
}

// writeYAML writes v to path, or to stdout if path is empty.
func writeYAML(path string, v interface{}) (err error) {
	var w io.Writer = os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return errors.Wrap(err, "creating output file")
		}
		defer func() {
			if closeErr := f.Close(); err == nil {
				err = closeErr
			}
		}()
		w = f
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return errors.Wrap(err, "encoding YAML")
	}
	return encoder.Close()
}

// drawResult renders the fragments, the remainder and the cells that cut
// them, one color per fragment.
func drawResult(path string, scale float64, result *voronoi.Result) error {
	d := &advanced.Drawing{Scale: scale}
	for _, f := range result.Fragments {
		g, err := advanced.ImportMesh(f.Mesh)
		if err != nil {
			return err
		}
		d.Graphs = append(d.Graphs, g)
		d.Polygons = append(d.Polygons, f.Cell)
		d.Points = append(d.Points, f.Nucleus)
	}
	if result.Remainder.TriangleCount() > 0 {
		d.Graphs = append(d.Graphs, result.Remainder)
	}
	return errors.Wrap(d.SavePNG(path), "drawing fragments")
}

func printSummary(w io.Writer, result *voronoi.Result) {
	fmt.Fprintf(w, "%s fragments, total area %s\n",
		aurora.Bold(aurora.Green(len(result.Fragments))),
		aurora.Cyan(fmt.Sprintf("%.6g", result.Area())))
	if len(result.SkippedNuclei) > 0 {
		fmt.Fprintf(w, "%s nuclei skipped\n", aurora.Yellow(len(result.SkippedNuclei)))
	}
	if result.SkippedCuts > 0 {
		fmt.Fprintf(w, "%s cell edges could not be cut\n", aurora.Yellow(result.SkippedCuts))
	}
	if remainder := result.Remainder.Area(); remainder > 1e-9 {
		fmt.Fprintf(w, "%s of the mesh is outside every cell\n", aurora.Red(fmt.Sprintf("%.6g", remainder)))
	}
}
