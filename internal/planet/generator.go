// Package planet fills the stable region around a star with planets and
// asteroid belts.
package planet

import (
	"fmt"
	"math"

	"cosmos-server/internal/body"
	"cosmos-server/internal/random"
)

var planetTypes = []body.PlanetType{
	body.PlanetTypeBarren,
	body.PlanetTypeTerrestrial,
	body.PlanetTypeGasGiant,
	body.PlanetTypeIce,
	body.PlanetTypeVolcanic,
}

// Terrestrial planets are the most common overall.
var baseWeights = []float64{15, 40, 20, 15, 10}

var planetSuffixes = []string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X"}

// GenerateOrbits returns the bodies orbiting host, innermost first, with
// strictly increasing distances. name is the host's short name, e.g.
// "Octupla A"; planets are numbered after it.
func GenerateOrbits(s *random.Stream, host body.Star, name string, region Region, metallicity float64) []Orbit {
	count := s.IntRange(countRange(host))
	if count == 0 {
		return nil
	}

	inner := math.Max(region.Inner, math.Max(0.05*math.Sqrt(host.Luminosity), 0.01))
	outer := region.Outer
	if outer <= 0 {
		outer = math.Inf(1)
	}
	if inner >= outer {
		return nil
	}

	frost := FrostLine(host)
	habitableInner, habitableOuter := HabitableZone(host)

	var orbits []Orbit
	planets, belts := 0, 0
	distance := inner * s.Range(1, 2)
	previous := body.PlanetType("")
	for slot := 0; slot < count && distance < outer; slot++ {
		beltChance := 0.08
		if previous == body.PlanetTypeGasGiant {
			beltChance = 0.35
		}

		if slot > 0 && s.Chance(beltChance) {
			belts++
			orbits = append(orbits, Orbit{Distance: distance, Object: belt(s, name, belts, distance)})
			previous = ""
		} else if planets < len(planetSuffixes) {
			p := generatePlanet(s, host, distance, frost, metallicity)
			p.Name = fmt.Sprintf("%s %s", name, planetSuffixes[planets])
			p.Habitable = p.Type == body.PlanetTypeTerrestrial &&
				distance >= habitableInner && distance <= habitableOuter &&
				p.Mass >= 0.3 && p.Mass <= 5 &&
				host.LuminosityClass != body.LuminosityVII
			planets++
			orbits = append(orbits, Orbit{Distance: distance, Object: p})
			previous = p.Type
		}

		distance *= s.Range(1.4, 2)
	}
	return orbits
}

func countRange(host body.Star) (int, int) {
	if host.LuminosityClass == body.LuminosityVII {
		return 0, 3
	}
	switch host.SpectralType.Class {
	case body.ClassO, body.ClassB:
		return 0, 3
	case body.ClassA, body.ClassF:
		return 2, 8
	case body.ClassG, body.ClassK:
		return 3, 10
	case body.ClassM:
		return 1, 7
	default:
		return 0, 3
	}
}

func generatePlanet(s *random.Stream, host body.Star, distance, frost, metallicity float64) body.Planet {
	temperature := EquilibriumTemperature(host, distance)

	weights := make([]float64, len(baseWeights))
	copy(weights, baseWeights)
	if distance < frost {
		weights[2] *= 0.3
		weights[3] *= 0.05
		if temperature > 600 {
			weights[4] *= 3
		}
	} else {
		weights[1] *= 0.3
		weights[4] *= 0.2
		weights[3] *= 3
		weights[2] *= 3 * math.Max(metallicity, 0.1)
	}

	kind := planetTypes[s.Weighted(weights)]
	var mass, radius float64
	switch kind {
	case body.PlanetTypeGasGiant:
		mass = s.LogRange(10, 4000)
		radius = s.Range(3.5, 13)
	case body.PlanetTypeIce:
		mass = s.LogRange(0.01, 3)
		radius = 1.2 * math.Pow(mass, 0.3)
	case body.PlanetTypeTerrestrial:
		mass = s.LogRange(0.1, 5)
		radius = math.Pow(mass, 0.27)
	case body.PlanetTypeVolcanic:
		mass = s.LogRange(0.05, 2)
		radius = math.Pow(mass, 0.27)
	default:
		mass = s.LogRange(0.01, 1)
		radius = math.Pow(mass, 0.27)
	}

	return body.Planet{
		Type:        kind,
		Mass:        mass,
		Radius:      radius,
		Temperature: temperature,
	}
}

func belt(s *random.Stream, name string, n int, distance float64) body.AsteroidBelt {
	beltName := name + " Belt"
	if n > 1 {
		beltName = fmt.Sprintf("%s Belt %s", name, planetSuffixes[min(n, len(planetSuffixes))-1])
	}
	return body.AsteroidBelt{
		Name:  beltName,
		Width: distance * s.Range(0.1, 0.3),
		Mass:  s.LogRange(1e-4, 1e-2),
	}
}
