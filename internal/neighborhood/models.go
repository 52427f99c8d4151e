package neighborhood

import (
	"cosmos-server/internal/settings"
	"cosmos-server/internal/universe"
)

type Density string

const (
	DensityVoid         Density = "void"
	DensityGroup        Density = "group"
	DensityCluster      Density = "cluster"
	DensitySupercluster Density = "supercluster"
)

// GalaxySlot is a candidate galaxy. Key seeds every lookup inside it, so a
// galaxy can be rebuilt from its slot alone.
type GalaxySlot struct {
	Index      int                  `json:"index"`
	Shape      settings.GalaxyShape `json:"shape"`
	SizeFactor float64              `json:"size_factor"`
	Key        uint64               `json:"key,string"`
}

type GalacticNeighborhood struct {
	Universe    universe.Universe `json:"universe"`
	Density     Density           `json:"density"`
	GalaxyCount int               `json:"galaxy_count"`
	Galaxies    []GalaxySlot      `json:"galaxies"`
}

// Slot returns the galaxy at index, if the neighborhood has one.
func (n *GalacticNeighborhood) Slot(index int) (GalaxySlot, bool) {
	if index < 0 || index >= len(n.Galaxies) {
		return GalaxySlot{}, false
	}
	return n.Galaxies[index], true
}
