package planet

import (
	"math"

	"cosmos-server/internal/body"
)

// Orbit is one occupied slot around a star, Distance in AU.
type Orbit struct {
	Distance float64
	Object   body.Object
}

// Region bounds the orbits a star can hold, in AU. Outer is set by the
// nearest companion; zero means unbounded.
type Region struct {
	Inner float64
	Outer float64
}

// FrostLine is the distance beyond which volatiles condense.
func FrostLine(host body.Star) float64 {
	return 4.85 * math.Sqrt(host.Luminosity)
}

// HabitableZone returns the inner and outer edges of the zone where liquid
// water is possible.
func HabitableZone(host body.Star) (float64, float64) {
	root := math.Sqrt(host.Luminosity)
	return 0.95 * root, 1.37 * root
}

// EquilibriumTemperature ignores albedo and greenhouse effects.
func EquilibriumTemperature(host body.Star, distance float64) uint32 {
	kelvin := 278 * math.Pow(host.Luminosity, 0.25) / math.Sqrt(distance)
	return uint32(math.Max(math.Round(kelvin), 1))
}
