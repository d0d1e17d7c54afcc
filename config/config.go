// Package config loads shattering settings from YAML.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	voronoi "github.com/DoesntSuck/2DVoronoi-sub000"
)

type Config struct {
	// Seed for nuclei generation; the same seed always shatters the same way
	Seed               int64   `yaml:"seed"`
	SuperTriangleScale float64 `yaml:"super_triangle_scale"`
	Nuclei             Nuclei  `yaml:"nuclei"`
	Output             Output  `yaml:"output"`
}

// Nuclei are either listed explicitly, or generated in a disc.
type Nuclei struct {
	Points     []voronoi.Point `yaml:"points"`
	Origin     voronoi.Point   `yaml:"origin"`
	MaxRadius  float64         `yaml:"max_radius"`
	MinSpacing float64         `yaml:"min_spacing"`
	Count      int             `yaml:"count"`
	MaxTries   int             `yaml:"max_tries"`
}

type Output struct {
	// Fragments file; empty writes to stdout
	Path     string  `yaml:"path"`
	PNG      string  `yaml:"png"`
	PNGScale float64 `yaml:"png_scale"`
}

func Default() *Config {
	return &Config{
		Seed:               1,
		SuperTriangleScale: voronoi.DefaultSuperTriangleScale,
		Nuclei: Nuclei{
			MaxRadius:  1,
			MinSpacing: 0.1,
			Count:      8,
			MaxTries:   1000,
		},
		Output: Output{PNGScale: 100},
	}
}

// Load reads a config file. Settings it leaves out keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "parsing config YAML")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.SuperTriangleScale < 1 {
		return errors.Errorf("super_triangle_scale must be at least 1, got %g", c.SuperTriangleScale)
	}
	if c.Output.PNGScale <= 0 {
		return errors.Errorf("output.png_scale must be positive, got %g", c.Output.PNGScale)
	}
	if len(c.Nuclei.Points) > 0 {
		return nil
	}
	n := c.Nuclei
	switch {
	case n.MaxRadius <= 0:
		return errors.Errorf("nuclei.max_radius must be positive, got %g", n.MaxRadius)
	case n.MinSpacing < 0:
		return errors.Errorf("nuclei.min_spacing must not be negative, got %g", n.MinSpacing)
	case n.Count < 0:
		return errors.Errorf("nuclei.count must not be negative, got %d", n.Count)
	case n.MaxTries < n.Count:
		return errors.Errorf("nuclei.max_tries (%d) is less than nuclei.count (%d)", n.MaxTries, n.Count)
	}
	return nil
}

func (c *Config) Options() voronoi.Options {
	return voronoi.Options{SuperTriangleScale: c.SuperTriangleScale}
}

func (n Nuclei) Options() voronoi.NucleiOptions {
	return voronoi.NucleiOptions{
		Origin:     n.Origin,
		MaxRadius:  n.MaxRadius,
		MinSpacing: n.MinSpacing,
		Count:      n.Count,
		MaxTries:   n.MaxTries,
	}
}

// NucleiPoints returns the listed nuclei, or generates them from the seed.
func (c *Config) NucleiPoints() ([]voronoi.Point, error) {
	if len(c.Nuclei.Points) > 0 {
		return c.Nuclei.Points, nil
	}
	return voronoi.GenerateNuclei(c.Seed, c.Nuclei.Options())
}
