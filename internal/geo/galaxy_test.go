package geo

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveHierarchy(t *testing.T) {
	g := DefaultGalaxy()

	loc, err := g.Resolve("sol")
	require.NoError(t, err)
	assert.Equal(t, "sol", loc.System.ID)
	assert.Nil(t, loc.Planet)
	assert.Nil(t, loc.City)

	loc, err = g.Resolve("earth")
	require.NoError(t, err)
	assert.Equal(t, "sol", loc.System.ID)
	assert.Equal(t, "earth", loc.Planet.ID)
	assert.Nil(t, loc.City)

	// A city id resolves its parent planet and system.
	loc, err = g.Resolve("new-geneva")
	require.NoError(t, err)
	assert.Equal(t, "sol", loc.System.ID)
	assert.Equal(t, "earth", loc.Planet.ID)
	assert.Equal(t, "new-geneva", loc.City.ID)
}

func TestResolveCaseInsensitive(t *testing.T) {
	g := DefaultGalaxy()

	loc, err := g.Resolve("EARTH")
	require.NoError(t, err)
	assert.Equal(t, "earth", loc.Planet.ID)
}

func TestResolveUnknown(t *testing.T) {
	g := DefaultGalaxy()

	_, err := g.Resolve("atlantis")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLocationNotFound))
}

func TestTotalTarget(t *testing.T) {
	g := NewGalaxy([]*System{
		{ID: "a", Planets: []*Planet{{ID: "a1", PopulationTarget: 100}, {ID: "a2", PopulationTarget: 50}}},
		{ID: "b", Planets: []*Planet{{ID: "b1", PopulationTarget: 25}}},
	})
	assert.Equal(t, 175, g.TotalTarget())
}

func TestDefaultGalaxyCoordinates(t *testing.T) {
	g := DefaultGalaxy()

	for _, sys := range g.Systems() {
		for _, p := range sys.Planets {
			for _, c := range p.Cities {
				d := Distance(c.Coordinates, p.Coordinates)
				assert.LessOrEqual(t, d, 1.0,
					"city %s should stay near its planet", c.ID)
			}
		}
	}
}

func TestLoadYAML(t *testing.T) {
	doc := `
systems:
  - id: testsys
    name: Test System
    population_target: 200
    economic_level: 5
    military_level: 3
    scientific_level: 4
    cultural_diversity: 6
    planets:
      - id: testworld
        name: Testworld
        population_target: 200
        type: terrestrial
        development_level: 5
        cities:
          - id: testcity
            name: Testcity
            population: 100
            type: capital
`
	path := filepath.Join(t.TempDir(), "galaxy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	g, err := Load(path)
	require.NoError(t, err)

	loc, err := g.Resolve("testcity")
	require.NoError(t, err)
	assert.Equal(t, "testsys", loc.System.ID)
	assert.Equal(t, "testworld", loc.Planet.ID)
	assert.Equal(t, CityCapital, loc.City.Type)
	assert.Equal(t, 200, g.TotalTarget())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/galaxy.yaml")
	require.Error(t, err)
}

func TestNoiseFieldJitterBounded(t *testing.T) {
	f := NewNoiseField(7)
	base := Coord{X: 10, Y: -5, Z: 2}

	for i := 0; i < 100; i++ {
		pos := f.Jitter(base, i)
		assert.LessOrEqual(t, Distance(pos, base), 2.0)
	}
}
