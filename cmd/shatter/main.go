package main

import (
	"fmt"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"

	voronoi "github.com/DoesntSuck/2DVoronoi-sub000"
	"github.com/DoesntSuck/2DVoronoi-sub000/advanced"
	"github.com/DoesntSuck/2DVoronoi-sub000/config"
)

// Shatters a triangle mesh into Voronoi fragments and writes them as YAML.
// The mesh is a YAML file with "vertices" and "triangles" (stride 3), or
// convex polygons on stdin; see readPolygons.
var (
	app        = kingpin.New("shatter", "Shatter 2D triangle meshes along Voronoi cells.")
	verbose    = app.Flag("verbose", "Log pipeline progress to stderr.").Short('v').Bool()
	configPath = app.Flag("config", "YAML config file.").Short('c').ExistingFile()
	outputPath = app.Flag("output", "Output file. Overrides the config; defaults to stdout.").Short('o').String()

	runCmd    = app.Command("run", "Shatter a mesh into fragments.").Default()
	runMesh   = runCmd.Arg("mesh", "YAML mesh file. Polygons are read from stdin if omitted.").ExistingFile()
	runPNG    = runCmd.Flag("png", "Draw the fragments and cells to this PNG file.").String()
	runImgcat = runCmd.Flag("imgcat", "Print the drawing in the terminal (iTerm only).").Bool()

	cellsCmd = app.Command("cells", "Print the Voronoi cell of every nucleus.")

	triangulateCmd = app.Command("triangulate", "Print the Delaunay triangulation of the nuclei.")
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	logger := zap.NewNop()
	if *verbose {
		var err error
		logger, err = zap.NewDevelopment()
		app.FatalIfError(err, "creating logger")
	}
	defer logger.Sync() //nolint:errcheck

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		app.FatalIfError(err, "loading config")
	}
	if *outputPath != "" {
		cfg.Output.Path = *outputPath
	}
	options := cfg.Options()
	options.Logger = logger

	var err error
	switch command {
	case runCmd.FullCommand():
		err = run(cfg, options)
	case cellsCmd.FullCommand():
		err = cells(cfg, options)
	case triangulateCmd.FullCommand():
		err = triangulate(cfg)
	}
	app.FatalIfError(err, "%s", command)
}

func run(cfg *config.Config, options voronoi.Options) error {
	mesh, err := readMesh(*runMesh)
	if err != nil {
		return err
	}
	if *configPath == "" {
		fitNucleiToMesh(cfg, mesh)
	}
	nuclei, err := cfg.NucleiPoints()
	if err != nil {
		return err
	}

	result, err := voronoi.ShatterWithOptions(mesh, nuclei, options)
	if err != nil {
		return err
	}
	if err := writeYAML(cfg.Output.Path, newShatterOutput(result)); err != nil {
		return err
	}
	printSummary(os.Stderr, result)

	png := cfg.Output.PNG
	if *runPNG != "" {
		png = *runPNG
	}
	if png == "" {
		return nil
	}
	if err := drawResult(png, cfg.Output.PNGScale, result); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Drew %s\n", aurora.Bold(png))
	if *runImgcat {
		advanced.PrintPNG(png)
	}
	return nil
}

func cells(cfg *config.Config, options voronoi.Options) error {
	nuclei, err := cfg.NucleiPoints()
	if err != nil {
		return err
	}
	polygons, err := voronoi.Cells(nuclei, options)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "%s cells from %d nuclei\n", aurora.Green(len(polygons)), len(nuclei))
	return writeYAML(cfg.Output.Path, polygons)
}

func triangulate(cfg *config.Config) error {
	nuclei, err := cfg.NucleiPoints()
	if err != nil {
		return err
	}
	mesh, ok, skipped, err := voronoi.Triangulate(nuclei)
	if err != nil {
		return err
	}
	if len(skipped) > 0 {
		fmt.Fprintf(os.Stderr, "%s points skipped\n", aurora.Yellow(len(skipped)))
	}
	if !ok {
		return errors.Errorf("%d nuclei do not make a triangulation", len(nuclei)-len(skipped))
	}
	fmt.Fprintf(os.Stderr, "%s triangles\n", aurora.Green(mesh.TriangleCount()))
	return writeYAML(cfg.Output.Path, mesh)
}
