package star

import (
	"fmt"
	"testing"

	"cosmos-server/internal/body"
	"cosmos-server/internal/random"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Deterministic(t *testing.T) {
	ctx := Context{Age: 4.6, Metallicity: 1, Density: 0.5}

	a := Generate(random.NewStream("sol"), ctx)
	b := Generate(random.NewStream("sol"), ctx)

	assert.Equal(t, a, b)
}

func TestGenerate_PhysicalFieldsPositive(t *testing.T) {
	contexts := []Context{
		{Age: 0.01, Metallicity: 1, Density: 1},
		{Age: 4.6, Metallicity: 1, Density: 0.3},
		{Age: 13, Metallicity: 0.05, Density: 0},
		{Age: 90, Metallicity: 2, Density: 0.8, Companion: true},
	}

	for _, ctx := range contexts {
		t.Run(fmt.Sprintf("age %g", ctx.Age), func(t *testing.T) {
			s := random.NewStream(fmt.Sprintf("positive-%g", ctx.Age))
			for range 500 {
				star := Generate(s, ctx)
				assert.Greater(t, star.Mass, 0.0)
				assert.Greater(t, star.Luminosity, 0.0)
				assert.Greater(t, star.Radius, 0.0)
				assert.Greater(t, star.Age, 0.0)
				assert.Greater(t, star.Temperature, uint32(0))
				assert.True(t, star.LuminosityClass.Valid())

				_, err := body.MarshalObject(star)
				require.NoError(t, err, "spectral type %+v must encode", star.SpectralType)
			}
		})
	}
}

func TestGenerate_RedDwarfsDominate(t *testing.T) {
	s := random.NewStream("census")
	counts := map[body.SpectralClass]int{}
	for range 2000 {
		counts[Generate(s, Context{Age: 2, Metallicity: 1}).SpectralType.Class]++
	}

	assert.Greater(t, counts[body.ClassM], counts[body.ClassG])
	assert.Greater(t, counts[body.ClassM], counts[body.ClassK])
	assert.Greater(t, counts[body.ClassM], 2000/3)
}

func TestGenerate_OldSystemsHoldRemnants(t *testing.T) {
	s := random.NewStream("remnants")
	dwarfs := 0
	for range 2000 {
		star := Generate(s, Context{Age: 60, Metallicity: 1, Density: 1})
		if star.LuminosityClass == body.LuminosityVII {
			dwarfs++
			assert.False(t, star.SpectralType.Class.HasDecile())
			assert.Less(t, star.Radius, 0.05)
		}
		assert.Less(t, star.Mass, 16.0, "massive stars must be gone")
	}
	assert.Greater(t, dwarfs, 0)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		temperature float64
		expected    body.SpectralType
	}{
		{5772, body.Spectral(body.ClassG, 2)},
		{6000, body.Spectral(body.ClassF, 9)},
		{5999, body.Spectral(body.ClassG, 0)},
		{2791, body.Spectral(body.ClassM, 6)},
		{80000, body.Spectral(body.ClassO, 0)},
		{400, body.Spectral(body.ClassY, 2)},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.temperature), func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.temperature))
		})
	}
}

func TestDesignation(t *testing.T) {
	star := body.Star{SpectralType: body.Spectral(body.ClassM, 7), LuminosityClass: body.LuminosityV}
	assert.Equal(t, "Octupla Ba (M7 V)", Designation("Octupla Ba", star))

	dwarf := body.Star{SpectralType: body.Spectral(body.ClassDB, 0), LuminosityClass: body.LuminosityVII}
	assert.Equal(t, "Octupla Fa (DB VII)", Designation("Octupla Fa", dwarf))
}
