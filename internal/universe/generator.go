// Package universe is the first generation stage.
package universe

import (
	"math"

	"cosmos-server/internal/random"
	"cosmos-server/internal/settings"
)

const (
	// hubbleTimeFactor converts an age in Gyr to H0 in km/s/Mpc for a
	// universe whose Hubble time equals its age.
	hubbleTimeFactor = 977.8
	// Cosmic star formation peaks a few billion years in.
	starFormationPeak = 3.5
	enrichmentScale   = 5.0
	presentAge        = 13.8
)

// Generate validates s and draws the universe from the stream. It is pure in
// (s, stream): the same inputs always give the same universe.
func Generate(s settings.GenerationSettings, stream *random.Stream) (*Universe, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	age := 0.0
	if s.UniverseFixedAge != nil {
		age = *s.UniverseFixedAge
	} else {
		age = stream.Range(s.UniverseMinAge, s.UniverseMaxAge)
	}

	sfr := age / starFormationPeak * math.Exp(1-age/starFormationPeak)
	metallicity := (1 - math.Exp(-age/enrichmentScale)) / (1 - math.Exp(-presentAge/enrichmentScale))

	return &Universe{
		Seed:              s.Seed,
		Age:               age,
		Era:               EraAt(age),
		HubbleConstant:    hubbleTimeFactor / age * stream.Range(0.92, 1.08),
		StarFormationRate: sfr * stream.Range(0.8, 1.2),
		Metallicity:       metallicity * stream.Range(0.9, 1.1),
	}, nil
}
