package internal

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateNuclei(t *testing.T) {
	opts := NucleiOptions{
		Origin:     Point{5, 5},
		MaxRadius:  3,
		MinSpacing: 0.5,
		Count:      12,
		MaxTries:   1000,
	}
	points, err := GenerateNuclei(rand.New(rand.NewSource(1)), opts)
	require.NoError(t, err)
	assert.Len(t, points, 12)
	for i, p := range points {
		assert.LessOrEqual(t, p.Distance(opts.Origin), opts.MaxRadius+Epsilon)
		for _, q := range points[i+1:] {
			assert.GreaterOrEqual(t, p.Distance(q), opts.MinSpacing)
		}
	}

	again, err := GenerateNuclei(rand.New(rand.NewSource(1)), opts)
	require.NoError(t, err)
	assert.Equal(t, points, again, "same seed, same nuclei")
}

func TestGenerateNuclei_Saturated(t *testing.T) {
	// At most a handful of points fit with this spacing
	points, err := GenerateNuclei(rand.New(rand.NewSource(3)), NucleiOptions{
		MaxRadius:  1,
		MinSpacing: 1.5,
		Count:      50,
		MaxTries:   200,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, points)
	assert.Less(t, len(points), 50)
}

func TestGenerateNuclei_Options(t *testing.T) {
	for name, opts := range map[string]NucleiOptions{
		"radius":    {MaxRadius: 0, Count: 1, MaxTries: 1},
		"spacing":   {MaxRadius: 1, MinSpacing: -1, Count: 1, MaxTries: 1},
		"count":     {MaxRadius: 1, Count: -1, MaxTries: 1},
		"max tries": {MaxRadius: 1, Count: 10, MaxTries: 5},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := GenerateNuclei(rand.New(rand.NewSource(1)), opts)
			var configErr *ConfigurationError
			assert.True(t, errors.As(err, &configErr))
		})
	}
}
