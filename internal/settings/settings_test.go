package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"cosmos-server/internal/shared/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExample_IsDefaultWithExampleSeed(t *testing.T) {
	example := Example()

	assert.Equal(t, "default", example.Seed)

	expected := Default()
	expected.Seed = "default"
	assert.Equal(t, expected, example)
	assert.NoError(t, example.Validate())
}

func TestExample_UnaffectedByCallerMutation(t *testing.T) {
	first := Example()
	first.GalaxySectorRadius = 30
	first.Seed = "changed"

	assert.Equal(t, "default", Example().Seed)
	assert.Equal(t, 4, Example().GalaxySectorRadius)
}

func TestUnmarshalJSON_OmittedFieldsKeepDefaults(t *testing.T) {
	var s GenerationSettings
	require.NoError(t, json.Unmarshal([]byte(`{"seed":"abc","system_max_stars":3}`), &s))

	expected := Default()
	expected.Seed = "abc"
	expected.SystemMaxStars = 3
	assert.Equal(t, expected, s)
}

func TestUnmarshalJSON_OptionalFields(t *testing.T) {
	var s GenerationSettings
	require.NoError(t, json.Unmarshal([]byte(`{"universe_fixed_age":13.8,"galaxy_fixed_shape":"elliptical"}`), &s))

	require.NotNil(t, s.UniverseFixedAge)
	assert.Equal(t, 13.8, *s.UniverseFixedAge)
	require.NotNil(t, s.GalaxyFixedShape)
	assert.Equal(t, ShapeElliptical, *s.GalaxyFixedShape)
}

func TestValidate(t *testing.T) {
	age := func(v float64) *float64 { return &v }
	shape := func(v GalaxyShape) *GalaxyShape { return &v }

	tests := []struct {
		name    string
		mutate  func(*GenerationSettings)
		wantErr string
	}{
		{"defaults are valid", func(s *GenerationSettings) {}, ""},
		{"min age too small", func(s *GenerationSettings) { s.UniverseMinAge = 0.1 }, "universe_min_age"},
		{"max below min", func(s *GenerationSettings) { s.UniverseMaxAge = 0.5 }, "universe_max_age"},
		{"fixed age out of bounds", func(s *GenerationSettings) { s.UniverseFixedAge = age(31) }, "universe_fixed_age"},
		{"fixed age in bounds", func(s *GenerationSettings) { s.UniverseFixedAge = age(13.8) }, ""},
		{"unknown shape", func(s *GenerationSettings) { s.GalaxyFixedShape = shape("donut") }, "galaxy_fixed_shape"},
		{"radius zero", func(s *GenerationSettings) { s.GalaxySectorRadius = 0 }, "galaxy_sector_radius"},
		{"thickness too large", func(s *GenerationSettings) { s.GalaxySectorThickness = 17 }, "galaxy_sector_thickness"},
		{"no division levels", func(s *GenerationSettings) { s.SectorDivisionLevels = 0 }, "sector_division_levels"},
		{"degenerate depth", func(s *GenerationSettings) { s.SectorDivisionLevels = 40 }, "sector_division_levels"},
		{"factor one", func(s *GenerationSettings) { s.SectorDivisionFactor = 1 }, "sector_division_factor"},
		{"no stars", func(s *GenerationSettings) { s.SystemMaxStars = 0 }, "system_max_stars"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(&s)

			err := s.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Equal(t, errors.ErrorTypeConfiguration, errors.GetType(err))
		})
	}
}

func TestResolveSeed(t *testing.T) {
	t.Run("keeps concrete seed", func(t *testing.T) {
		s := Example().ResolveSeed()
		assert.Equal(t, "default", s.Seed)
	})

	for _, seed := range []string{"", "random"} {
		t.Run("substitutes "+seed, func(t *testing.T) {
			s := Default()
			s.Seed = seed

			a := s.ResolveSeed()
			b := s.ResolveSeed()

			assert.NotEmpty(t, a.Seed)
			assert.NotEqual(t, RandomSeed, a.Seed)
			assert.NotEqual(t, a.Seed, b.Seed)
			assert.Equal(t, seed, s.Seed, "receiver must stay untouched")
		})
	}
}

func TestLoadPresets_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
presets:
  milky-way:
    seed: milky-way
    galaxy_fixed_shape: barred_spiral
    universe_fixed_age: 13.8
  tiny:
    galaxy_sector_radius: 1
    system_generate_planets: false
`), 0o600))

	presets, err := LoadPresets(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"default", "milky-way", "tiny"}, presets.Names())

	milkyWay, err := presets.Get("milky-way")
	require.NoError(t, err)
	assert.Equal(t, "milky-way", milkyWay.Seed)
	require.NotNil(t, milkyWay.GalaxyFixedShape)
	assert.Equal(t, ShapeBarredSpiral, *milkyWay.GalaxyFixedShape)
	assert.Equal(t, 4, milkyWay.GalaxySectorRadius, "unnamed fields keep defaults")

	tiny, err := presets.Get("tiny")
	require.NoError(t, err)
	assert.Equal(t, 1, tiny.GalaxySectorRadius)
	assert.False(t, tiny.SystemGeneratePlanets)
	assert.Equal(t, 8, tiny.SystemMaxStars)
}

func TestLoadPresets_TOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[presets.binary]
seed = "binary"
system_max_stars = 2

[presets.default]
seed = "default"
sector_division_levels = 3
`), 0o600))

	presets, err := LoadPresets(path)
	require.NoError(t, err)

	binary, err := presets.Get("binary")
	require.NoError(t, err)
	assert.Equal(t, 2, binary.SystemMaxStars)
	assert.Equal(t, 0.8, binary.UniverseMinAge)

	overridden, err := presets.Get("default")
	require.NoError(t, err)
	assert.Equal(t, 3, overridden.SectorDivisionLevels)
}

func TestLoadPresets_Errors(t *testing.T) {
	dir := t.TempDir()

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("presets:\n  bad:\n    system_max_stars: 99\n"), 0o600))
	_, err := LoadPresets(invalid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `preset "bad"`)

	unsupported := filepath.Join(dir, "presets.json")
	require.NoError(t, os.WriteFile(unsupported, []byte("{}"), 0o600))
	_, err = LoadPresets(unsupported)
	assert.Error(t, err)

	_, err = LoadPresets(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestPresets_GetUnknown(t *testing.T) {
	_, err := BuiltinPresets().Get("nope")
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeNotFound, errors.GetType(err))
}
