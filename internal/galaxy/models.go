package galaxy

import (
	"cosmos-server/internal/neighborhood"
	"cosmos-server/internal/settings"
	"cosmos-server/internal/spatial"
)

// Galaxy spans SectorRadius sectors on each side of the origin along x and
// y, and SectorThickness along z. Every sector is SectorSide hexes wide.
type Galaxy struct {
	Name            string               `json:"name"`
	Index           int                  `json:"index"`
	Shape           settings.GalaxyShape `json:"shape"`
	Age             float64              `json:"age"`
	Metallicity     float64              `json:"metallicity"`
	SizeFactor      float64              `json:"size_factor"`
	Key             uint64               `json:"key,string"`
	SectorRadius    int                  `json:"sector_radius"`
	SectorThickness int                  `json:"sector_thickness"`
	DivisionLevels  int                  `json:"division_levels"`
	DivisionFactor  int                  `json:"division_factor"`
	SectorSide      int64                `json:"sector_side"`
	SectorCount     int64                `json:"sector_count"`
	Bounds          spatial.Box          `json:"bounds"`
	Explored        []ExploredHex        `json:"explored"`

	Neighborhood neighborhood.GalacticNeighborhood `json:"neighborhood"`
}

// ExploredHex records that a system was generated in a hex.
type ExploredHex struct {
	Coordinates spatial.SpaceCoordinates `json:"coordinates"`
	SystemName  string                   `json:"system_name"`
	StarCount   int                      `json:"star_count"`
}
