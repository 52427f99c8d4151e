package planet

import (
	"fmt"
	"strings"
	"testing"

	"cosmos-server/internal/body"
	"cosmos-server/internal/random"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sun() body.Star {
	return body.Star{
		Name:            "Sol (G2 V)",
		Mass:            1,
		Luminosity:      1,
		Radius:          1,
		Age:             4.6,
		Temperature:     5772,
		SpectralType:    body.Spectral(body.ClassG, 2),
		LuminosityClass: body.LuminosityV,
	}
}

func TestGenerateOrbits_DistancesIncreaseWithinRegion(t *testing.T) {
	region := Region{Inner: 0.2, Outer: 40}

	for i := range 50 {
		s := random.NewStream(fmt.Sprintf("orbits-%d", i))
		orbits := GenerateOrbits(s, sun(), "Sol", region, 1)

		previous := 0.0
		for _, orbit := range orbits {
			assert.Greater(t, orbit.Distance, previous)
			assert.GreaterOrEqual(t, orbit.Distance, region.Inner)
			assert.Less(t, orbit.Distance, region.Outer)
			previous = orbit.Distance
		}
	}
}

func TestGenerateOrbits_Deterministic(t *testing.T) {
	a := GenerateOrbits(random.NewStream("same"), sun(), "Sol", Region{}, 1)
	b := GenerateOrbits(random.NewStream("same"), sun(), "Sol", Region{}, 1)
	assert.Equal(t, a, b)
}

func TestGenerateOrbits_NamesAndPayloads(t *testing.T) {
	seen := 0
	for i := range 50 {
		orbits := GenerateOrbits(random.NewStream(fmt.Sprintf("names-%d", i)), sun(), "Sol", Region{}, 1)
		numeral := 0
		for _, orbit := range orbits {
			switch object := orbit.Object.(type) {
			case body.Planet:
				assert.Equal(t, "Sol "+planetSuffixes[numeral], object.Name)
				numeral++
				assert.Greater(t, object.Mass, 0.0)
				assert.Greater(t, object.Radius, 0.0)
				assert.Greater(t, object.Temperature, uint32(0))
				assert.Contains(t, planetTypes, object.Type)
				if object.Habitable {
					assert.Equal(t, body.PlanetTypeTerrestrial, object.Type)
				}
			case body.AsteroidBelt:
				assert.True(t, strings.HasPrefix(object.Name, "Sol Belt"))
				assert.Greater(t, object.Width, 0.0)
			default:
				t.Fatalf("unexpected object %T", object)
			}
			seen++
		}
	}
	assert.Greater(t, seen, 0)
}

func TestGenerateOrbits_EmptyRegion(t *testing.T) {
	orbits := GenerateOrbits(random.NewStream("tight"), sun(), "Sol", Region{Inner: 5, Outer: 1}, 1)
	assert.Empty(t, orbits)
}

func TestZones(t *testing.T) {
	inner, outer := HabitableZone(sun())
	assert.InDelta(t, 0.95, inner, 1e-9)
	assert.InDelta(t, 1.37, outer, 1e-9)
	assert.InDelta(t, 4.85, FrostLine(sun()), 1e-9)

	require.Equal(t, uint32(278), EquilibriumTemperature(sun(), 1))
	assert.Equal(t, uint32(139), EquilibriumTemperature(sun(), 4))
}
