// Package galaxy generates a galaxy and answers lookups inside it.
//
// A galaxy stores no divisions. Every sector, sub-sector and hex is derived
// on request from the galaxy key and the cell's coordinates, so a lookup
// gives the same answer whenever and in whatever order it is made.
package galaxy

import (
	"cosmos-server/internal/names"
	"cosmos-server/internal/neighborhood"
	"cosmos-server/internal/random"
	"cosmos-server/internal/settings"
	"cosmos-server/internal/shared/errors"
	"cosmos-server/internal/spatial"
)

// Generate builds the galaxy at index in the neighborhood. Draws continue on
// the stream the earlier stages advanced.
func Generate(n *neighborhood.GalacticNeighborhood, index int, s settings.GenerationSettings, stream *random.Stream) (*Galaxy, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	slot, ok := n.Slot(index)
	if !ok {
		return nil, errors.Configurationf("galaxy index %d is outside the neighborhood's %d galaxies", index, n.GalaxyCount)
	}

	factor := int64(s.SectorDivisionFactor)
	side := int64(1)
	for range s.SectorDivisionLevels + 1 {
		side *= factor
	}

	radius := int64(s.GalaxySectorRadius)
	thickness := int64(s.GalaxySectorThickness)
	bounds := spatial.Box{
		Min: spatial.NewCoordinates(-radius*side, -radius*side, -thickness*side),
		Max: spatial.NewCoordinates(radius*side-1, radius*side-1, thickness*side-1),
	}

	return &Galaxy{
		Name:            names.Galaxy(stream),
		Index:           slot.Index,
		Shape:           slot.Shape,
		Age:             n.Universe.Age * stream.Range(0.75, 0.97),
		Metallicity:     n.Universe.Metallicity * stream.LogRange(0.5, 2),
		SizeFactor:      slot.SizeFactor,
		Key:             slot.Key,
		SectorRadius:    s.GalaxySectorRadius,
		SectorThickness: s.GalaxySectorThickness,
		DivisionLevels:  s.SectorDivisionLevels,
		DivisionFactor:  s.SectorDivisionFactor,
		SectorSide:      side,
		SectorCount:     (2 * radius) * (2 * radius) * (2 * thickness),
		Bounds:          bounds,
		Explored:        []ExploredHex{},
		Neighborhood:    *n,
	}, nil
}
