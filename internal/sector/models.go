// Package sector describes the nested divisions of a galaxy.
package sector

import "cosmos-server/internal/spatial"

// Division is one sector (level 0) or sub-sector. Index is the cell index at
// the division's own level; Path lists the child chosen at each level below
// the sector, as x + y*f + z*f*f for division factor f.
type Division struct {
	Level   int                      `json:"level"`
	Type    spatial.EntityType       `json:"type"`
	Index   spatial.SpaceCoordinates `json:"index"`
	Path    []int                    `json:"path"`
	Bounds  spatial.Box              `json:"bounds"`
	Name    string                   `json:"name"`
	Density float64                  `json:"density"`
}

// Hex is the finest cell; a star system occupies at most one.
type Hex struct {
	Coordinates spatial.SpaceCoordinates `json:"coordinates"`
	Density     float64                  `json:"density"`
	SectorName  string                   `json:"sector_name"`
}

// ChildOffset returns the position of a child cell inside its parent, for
// cells whose side is factor times smaller.
func ChildOffset(parent, child spatial.SpaceCoordinates, factor int64) int {
	rel := child.Sub(parent.Scale(factor))
	return int(rel.X + rel.Y*factor + rel.Z*factor*factor)
}
