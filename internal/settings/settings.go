// Package settings holds the immutable parameters threaded through every
// generation stage.
package settings

import (
	"encoding/json"

	"cosmos-server/internal/shared/errors"

	"github.com/google/uuid"
)

const (
	// ExampleSeed is the seed of the bootstrap settings served to clients.
	ExampleSeed = "default"
	// RandomSeed asks for a fresh seed, like an empty one.
	RandomSeed = "random"
)

type GalaxyShape string

const (
	ShapeSpiral       GalaxyShape = "spiral"
	ShapeBarredSpiral GalaxyShape = "barred_spiral"
	ShapeElliptical   GalaxyShape = "elliptical"
	ShapeLenticular   GalaxyShape = "lenticular"
	ShapeIrregular    GalaxyShape = "irregular"
)

// Shapes lists every galaxy shape in a fixed order.
var Shapes = []GalaxyShape{ShapeSpiral, ShapeBarredSpiral, ShapeElliptical, ShapeLenticular, ShapeIrregular}

func (s GalaxyShape) Valid() bool {
	for _, shape := range Shapes {
		if s == shape {
			return true
		}
	}
	return false
}

// GenerationSettings is passed by value; stages never modify it.
type GenerationSettings struct {
	Seed string `json:"seed" yaml:"seed" toml:"seed"`

	UniverseMinAge   float64  `json:"universe_min_age" yaml:"universe_min_age" toml:"universe_min_age"`
	UniverseMaxAge   float64  `json:"universe_max_age" yaml:"universe_max_age" toml:"universe_max_age"`
	UniverseFixedAge *float64 `json:"universe_fixed_age" yaml:"universe_fixed_age" toml:"universe_fixed_age"`

	GalaxyFixedShape      *GalaxyShape `json:"galaxy_fixed_shape" yaml:"galaxy_fixed_shape" toml:"galaxy_fixed_shape"`
	GalaxySectorRadius    int          `json:"galaxy_sector_radius" yaml:"galaxy_sector_radius" toml:"galaxy_sector_radius"`
	GalaxySectorThickness int          `json:"galaxy_sector_thickness" yaml:"galaxy_sector_thickness" toml:"galaxy_sector_thickness"`
	SectorDivisionLevels  int          `json:"sector_division_levels" yaml:"sector_division_levels" toml:"sector_division_levels"`
	SectorDivisionFactor  int          `json:"sector_division_factor" yaml:"sector_division_factor" toml:"sector_division_factor"`

	SystemMaxStars        int  `json:"system_max_stars" yaml:"system_max_stars" toml:"system_max_stars"`
	SystemGeneratePlanets bool `json:"system_generate_planets" yaml:"system_generate_planets" toml:"system_generate_planets"`
}

// Default returns the documented default of every field. The seed is empty,
// so a run started from it picks a random seed.
func Default() GenerationSettings {
	return GenerationSettings{
		Seed:                  "",
		UniverseMinAge:        0.8,
		UniverseMaxAge:        30,
		GalaxySectorRadius:    4,
		GalaxySectorThickness: 1,
		SectorDivisionLevels:  2,
		SectorDivisionFactor:  4,
		SystemMaxStars:        8,
		SystemGeneratePlanets: true,
	}
}

// Example returns the defaults with the "default" seed.
func Example() GenerationSettings {
	s := Default()
	s.Seed = ExampleSeed
	return s
}

// UnmarshalJSON starts from Default so omitted fields keep their defaults.
func (s *GenerationSettings) UnmarshalJSON(data []byte) error {
	type plain GenerationSettings
	decoded := plain(Default())
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*s = GenerationSettings(decoded)
	return nil
}

// NeedsSeed reports whether a run must substitute a fresh seed.
func (s GenerationSettings) NeedsSeed() bool {
	return s.Seed == "" || s.Seed == RandomSeed
}

// ResolveSeed returns a copy carrying a concrete seed.
func (s GenerationSettings) ResolveSeed() GenerationSettings {
	if s.NeedsSeed() {
		s.Seed = uuid.NewString()
	}
	return s
}

// Validate fails on the first field outside its documented range.
func (s GenerationSettings) Validate() error {
	if s.UniverseMinAge < 0.2 || s.UniverseMinAge > 100 {
		return errors.Configurationf("universe_min_age must be between 0.2 and 100, got %g", s.UniverseMinAge)
	}
	if s.UniverseMaxAge < s.UniverseMinAge || s.UniverseMaxAge > 100 {
		return errors.Configurationf("universe_max_age must be between universe_min_age (%g) and 100, got %g", s.UniverseMinAge, s.UniverseMaxAge)
	}
	if s.UniverseFixedAge != nil {
		age := *s.UniverseFixedAge
		if age < s.UniverseMinAge || age > s.UniverseMaxAge {
			return errors.Configurationf("universe_fixed_age must be between %g and %g, got %g", s.UniverseMinAge, s.UniverseMaxAge, age)
		}
	}
	if s.GalaxyFixedShape != nil && !s.GalaxyFixedShape.Valid() {
		return errors.Configurationf("galaxy_fixed_shape %q is not one of %v", *s.GalaxyFixedShape, Shapes)
	}
	if s.GalaxySectorRadius < 1 || s.GalaxySectorRadius > 32 {
		return errors.Configurationf("galaxy_sector_radius must be between 1 and 32, got %d", s.GalaxySectorRadius)
	}
	if s.GalaxySectorThickness < 1 || s.GalaxySectorThickness > 16 {
		return errors.Configurationf("galaxy_sector_thickness must be between 1 and 16, got %d", s.GalaxySectorThickness)
	}
	if s.SectorDivisionLevels < 1 || s.SectorDivisionLevels > 6 {
		return errors.Configurationf("sector_division_levels must be between 1 and 6, got %d", s.SectorDivisionLevels)
	}
	if s.SectorDivisionFactor < 2 || s.SectorDivisionFactor > 8 {
		return errors.Configurationf("sector_division_factor must be between 2 and 8, got %d", s.SectorDivisionFactor)
	}
	if s.SystemMaxStars < 1 || s.SystemMaxStars > 16 {
		return errors.Configurationf("system_max_stars must be between 1 and 16, got %d", s.SystemMaxStars)
	}
	return nil
}
