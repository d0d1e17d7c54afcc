package internal

import (
	"math/rand"
)

type NucleiOptions struct {
	Origin    Point
	MaxRadius float64
	// No two nuclei are closer than this
	MinSpacing float64
	Count      int
	// Total candidate draws before giving up
	MaxTries int
}

// GenerateNuclei samples up to opts.Count points uniformly in the disc around
// opts.Origin, rejecting any candidate within MinSpacing of an accepted one.
// It gives up after MaxTries candidates, so dense settings can return fewer
// points than asked for. The same rng seed always gives the same points.
func GenerateNuclei(rng *rand.Rand, opts NucleiOptions) ([]Point, error) {
	switch {
	case opts.MaxRadius <= 0:
		return nil, configurationErrorf("nuclei max radius must be positive, got %g", opts.MaxRadius)
	case opts.MinSpacing < 0:
		return nil, configurationErrorf("nuclei min spacing must not be negative, got %g", opts.MinSpacing)
	case opts.Count < 0:
		return nil, configurationErrorf("nuclei count must not be negative, got %d", opts.Count)
	case opts.MaxTries < opts.Count:
		return nil, configurationErrorf("nuclei max tries (%d) is less than count (%d)", opts.MaxTries, opts.Count)
	}

	points := make([]Point, 0, opts.Count)
	for try := 0; try < opts.MaxTries && len(points) < opts.Count; try++ {
		candidate := RandomPointInCircle(rng, opts.Origin, opts.MaxRadius)
		if tooClose(candidate, points, opts.MinSpacing) {
			continue
		}
		points = append(points, candidate)
	}
	return points, nil
}

func tooClose(p Point, points []Point, spacing float64) bool {
	for _, q := range points {
		if p.Distance(q) < spacing {
			return true
		}
	}
	return false
}
