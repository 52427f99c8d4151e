// Package star draws individual stars from a deterministic stream.
package star

import (
	"fmt"
	"math"

	"cosmos-server/internal/body"
	"cosmos-server/internal/random"
)

const (
	solarTemperature = 5772.0

	// Stars heavier than this end as objects a system cannot hold, so they
	// only appear while still burning.
	maxRemnantProgenitor = 8.0
	giantPhase           = 0.1
	subgiantPhase        = 0.1
	maxRedraws           = 8
)

// Context carries what a star inherits from its surroundings.
type Context struct {
	// Age of the system in billions of years.
	Age float64
	// Metallicity relative to solar.
	Metallicity float64
	// Density is the stellar density of the hex, 0..1.
	Density float64
	// Companion biases the draw toward low-mass stars.
	Companion bool
}

type massBand struct {
	weight float64
	min    float64
	max    float64
	brown  bool
}

// Distribution roughly follows the field population: red dwarfs dominate,
// O stars are a curiosity.
var bands = []massBand{
	{weight: 0.0005, min: 16, max: 90},
	{weight: 0.012, min: 2.1, max: 16},
	{weight: 0.03, min: 1.4, max: 2.1},
	{weight: 0.06, min: 1.04, max: 1.4},
	{weight: 0.08, min: 0.8, max: 1.04},
	{weight: 0.14, min: 0.45, max: 0.8},
	{weight: 0.62, min: 0.08, max: 0.45},
	{weight: 0.06, min: 0.013, max: 0.08, brown: true},
}

// Generate draws one star. The returned star has no name; callers set it
// with Designation once the star's place in its system is known.
func Generate(s *random.Stream, ctx Context) body.Star {
	age := math.Max(ctx.Age, 0.01)
	metallicity := ctx.Metallicity
	if metallicity <= 0 {
		metallicity = 1
	}

	band, mass := drawMass(s, ctx, age)
	if band.brown {
		return brownDwarf(s, mass, age)
	}

	lifetime := mainSequenceLifetime(mass)
	switch {
	case age > lifetime*(1+giantPhase):
		return whiteDwarf(s, mass, age, lifetime)
	case age > lifetime:
		return giant(s, mass, age)
	}

	luminosity := mainSequenceLuminosity(mass) * math.Pow(metallicity, -0.15)
	radius := math.Pow(mass, 0.8)
	class := body.LuminosityV
	if age > lifetime*(1-subgiantPhase) {
		radius *= s.Range(1.3, 2)
		luminosity *= s.Range(1.2, 1.8)
		class = body.LuminosityIV
	} else if metallicity < 0.1 && mass < 0.8 {
		class = body.LuminosityVI
	}

	return build(mass, luminosity, radius, age, class)
}

func drawMass(s *random.Stream, ctx Context, age float64) (massBand, float64) {
	weights := make([]float64, len(bands))
	for i, band := range bands {
		weights[i] = band.weight
		// Dense regions are where massive stars form.
		if band.min >= 1.4 {
			weights[i] *= 1 + 2*ctx.Density
		}
		if ctx.Companion && band.min >= 1.4 {
			weights[i] *= 0.2
		}
	}

	for range maxRedraws {
		band := bands[s.Weighted(weights)]
		mass := s.LogRange(band.min, band.max)
		if mass <= maxRemnantProgenitor || mainSequenceLifetime(mass)*(1+giantPhase) >= age {
			return band, mass
		}
	}

	red := bands[len(bands)-2]
	return red, s.LogRange(red.min, red.max)
}

// mainSequenceLifetime is in billions of years.
func mainSequenceLifetime(mass float64) float64 {
	return 10 * math.Pow(mass, -2.5)
}

func mainSequenceLuminosity(mass float64) float64 {
	switch {
	case mass < 0.43:
		return 0.23 * math.Pow(mass, 2.3)
	case mass < 2:
		return math.Pow(mass, 4)
	case mass < 55:
		return 1.4 * math.Pow(mass, 3.5)
	default:
		return 32000 * mass
	}
}

func giant(s *random.Stream, mass, age float64) body.Star {
	class := body.LuminosityIII
	radius := s.LogRange(10, 100)
	temperature := s.Range(3500, 5200)
	switch {
	case mass >= maxRemnantProgenitor:
		class = body.LuminosityIb
		if s.Chance(0.3) {
			class = body.LuminosityIa
		}
		radius = s.LogRange(100, 1000)
		temperature = s.Range(3500, 25000)
	case mass >= 3:
		class = body.LuminosityII
		radius = s.LogRange(30, 150)
	}

	return build(mass, stefanBoltzmann(radius, temperature), radius, age, class)
}

func whiteDwarf(s *random.Stream, progenitor, age, lifetime float64) body.Star {
	mass := 0.109*progenitor + 0.394
	radius := 0.0126 * math.Pow(mass, -1.0/3)

	cooling := age - lifetime*(1+giantPhase)
	temperature := math.Max(16000*math.Pow(cooling+0.01, -0.4), 3000)
	temperature = math.Min(temperature, 150000)

	star := build(mass, stefanBoltzmann(radius, temperature), radius, age, body.LuminosityVII)
	star.SpectralType = body.Spectral(whiteDwarfClass(s, temperature), 0)
	return star
}

var whiteDwarfClasses = []body.SpectralClass{body.ClassDA, body.ClassDB, body.ClassDC, body.ClassDQ, body.ClassDZ}
var whiteDwarfWeights = []float64{0.8, 0.08, 0.07, 0.03, 0.02}

func whiteDwarfClass(s *random.Stream, temperature float64) body.SpectralClass {
	switch {
	case temperature >= 45000:
		return body.ClassDO
	case temperature < 5000:
		return body.ClassDC
	}
	return whiteDwarfClasses[s.Weighted(whiteDwarfWeights)]
}

func brownDwarf(s *random.Stream, mass, age float64) body.Star {
	// Brown dwarfs only cool, faster when light.
	fraction := (mass - 0.013) / (0.08 - 0.013)
	temperature := 300 + 2100*fraction*s.Range(0.6, 1)*math.Pow(age/5, -0.1)
	temperature = math.Min(math.Max(temperature, 250), 2400)
	radius := s.Range(0.08, 0.12)

	return build(mass, stefanBoltzmann(radius, temperature), radius, age, body.LuminosityV)
}

func stefanBoltzmann(radius, temperature float64) float64 {
	return radius * radius * math.Pow(temperature/solarTemperature, 4)
}

func build(mass, luminosity, radius, age float64, class body.LuminosityClass) body.Star {
	temperature := solarTemperature * math.Pow(luminosity/(radius*radius), 0.25)
	kelvin := uint32(math.Max(math.Round(temperature), 1))
	return body.Star{
		Mass:            mass,
		Luminosity:      luminosity,
		Radius:          radius,
		Age:             age,
		Temperature:     kelvin,
		SpectralType:    Classify(float64(kelvin)),
		LuminosityClass: class,
	}
}

type temperatureBand struct {
	class body.SpectralClass
	min   float64
	max   float64
}

var temperatureBands = []temperatureBand{
	{body.ClassO, 30000, 60000},
	{body.ClassB, 10000, 30000},
	{body.ClassA, 7500, 10000},
	{body.ClassF, 6000, 7500},
	{body.ClassG, 5200, 6000},
	{body.ClassK, 3700, 5200},
	{body.ClassM, 2400, 3700},
	{body.ClassL, 1300, 2400},
	{body.ClassT, 550, 1300},
	{body.ClassY, 0, 550},
}

// Classify maps an effective temperature to a letter class and decile,
// decile 0 being the hot end of the class.
func Classify(temperature float64) body.SpectralType {
	for _, band := range temperatureBands {
		if temperature < band.min {
			continue
		}
		top := math.Min(temperature, band.max)
		decile := int(10 * (band.max - top) / (band.max - band.min))
		return body.Spectral(band.class, uint8(min(max(decile, 0), 9)))
	}
	return body.Spectral(body.ClassY, 9)
}

// Designation formats a star's name as "<name> (<spectral> <class>)".
func Designation(name string, star body.Star) string {
	return fmt.Sprintf("%s (%s %s)", name, star.SpectralType, star.LuminosityClass)
}
