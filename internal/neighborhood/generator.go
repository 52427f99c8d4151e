// Package neighborhood places a universe's galaxies around the one being
// explored.
package neighborhood

import (
	"cosmos-server/internal/random"
	"cosmos-server/internal/settings"
	"cosmos-server/internal/universe"
)

type densityClass struct {
	density Density
	weight  float64
	min     int
	max     int
}

var densities = []densityClass{
	{DensityVoid, 0.1, 1, 3},
	{DensityGroup, 0.5, 3, 12},
	{DensityCluster, 0.3, 12, 60},
	{DensitySupercluster, 0.1, 60, 200},
}

var shapeWeights = map[settings.GalaxyShape]float64{
	settings.ShapeSpiral:       0.35,
	settings.ShapeBarredSpiral: 0.25,
	settings.ShapeElliptical:   0.2,
	settings.ShapeLenticular:   0.1,
	settings.ShapeIrregular:    0.1,
}

// Generate continues on the stream the universe stage advanced.
func Generate(u *universe.Universe, s settings.GenerationSettings, stream *random.Stream) (*GalacticNeighborhood, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	weights := make([]float64, len(densities))
	for i, d := range densities {
		weights[i] = d.weight
	}
	class := densities[stream.Weighted(weights)]
	count := stream.IntRange(class.min, class.max)

	galaxies := make([]GalaxySlot, count)
	for i := range galaxies {
		galaxies[i] = GalaxySlot{
			Index:      i,
			Shape:      drawShape(s, stream, class.density),
			SizeFactor: stream.LogRange(0.5, 2),
			Key:        stream.Uint64(),
		}
	}

	return &GalacticNeighborhood{
		Universe:    *u,
		Density:     class.density,
		GalaxyCount: count,
		Galaxies:    galaxies,
	}, nil
}

func drawShape(s settings.GenerationSettings, stream *random.Stream, density Density) settings.GalaxyShape {
	if s.GalaxyFixedShape != nil {
		return *s.GalaxyFixedShape
	}

	weights := make([]float64, len(settings.Shapes))
	for i, shape := range settings.Shapes {
		weights[i] = shapeWeights[shape]
		// Mergers in crowded regions leave ellipticals behind.
		if shape == settings.ShapeElliptical && (density == DensityCluster || density == DensitySupercluster) {
			weights[i] *= 3
		}
	}
	return settings.Shapes[stream.Weighted(weights)]
}
