package galaxy

import (
	"slices"

	"cosmos-server/internal/names"
	"cosmos-server/internal/random"
	"cosmos-server/internal/sector"
	"cosmos-server/internal/shared/errors"
	"cosmos-server/internal/spatial"
)

// HexLevel is the level of single hexes, one below the deepest sub-sector.
func (g *Galaxy) HexLevel() int {
	return g.DivisionLevels + 1
}

// SideAt returns the edge length in hexes of a division at level.
func (g *Galaxy) SideAt(level int) int64 {
	side := g.SectorSide
	for range level {
		side /= int64(g.DivisionFactor)
	}
	return side
}

func (g *Galaxy) grid(level int) spatial.Grid {
	return spatial.Grid{Side: g.SideAt(level)}
}

// DivisionAtLevel returns the sector (level 0) or sub-sector containing
// coord. It fails with a not-found error when the level does not exist or
// coord lies outside the galaxy.
func (g *Galaxy) DivisionAtLevel(coord spatial.SpaceCoordinates, level int) (sector.Division, error) {
	if level < spatial.SectorLevel || level > g.DivisionLevels {
		return sector.Division{}, errors.NotFoundf("division level %d does not exist, levels run from 0 to %d", level, g.DivisionLevels)
	}
	if !g.Bounds.Contains(coord) {
		return sector.Division{}, errors.NotFoundf("coordinates %s are outside the galaxy", coord)
	}

	division := g.sectorAt(coord)
	for l := 1; l <= level; l++ {
		child, err := g.childAt(division, coord, l)
		if err != nil {
			return sector.Division{}, err
		}
		division = child
	}
	return division, nil
}

// Hex returns the hex at coord.
func (g *Galaxy) Hex(coord spatial.SpaceCoordinates) (sector.Hex, error) {
	if !g.Bounds.Contains(coord) {
		return sector.Hex{}, errors.NotFoundf("coordinates %s are outside the galaxy", coord)
	}

	return sector.Hex{
		Coordinates: coord,
		Density:     g.density(g.HexLevel(), coord, coord),
		SectorName:  g.sectorAt(coord).Name,
	}, nil
}

func (g *Galaxy) sectorAt(coord spatial.SpaceCoordinates) sector.Division {
	grid := g.grid(spatial.SectorLevel)
	index := grid.CellIndex(coord)
	bounds := grid.CellBox(index)

	return sector.Division{
		Level:   spatial.SectorLevel,
		Type:    spatial.EntityTypeSector,
		Index:   index,
		Path:    []int{},
		Bounds:  bounds,
		Name:    names.Sector(g.ordinal(index)),
		Density: g.density(spatial.SectorLevel, index, bounds.Center()),
	}
}

func (g *Galaxy) childAt(parent sector.Division, coord spatial.SpaceCoordinates, level int) (sector.Division, error) {
	grid := g.grid(level)
	index := grid.CellIndex(coord)
	bounds := grid.CellBox(index)
	if !parent.Bounds.Contains(bounds.Min) || !parent.Bounds.Contains(bounds.Max) {
		return sector.Division{}, errors.Invariantf("division %s at level %d escapes its parent %s", index, level, parent.Name)
	}

	child := sector.ChildOffset(parent.Index, index, int64(g.DivisionFactor))
	return sector.Division{
		Level:   level,
		Type:    spatial.EntityTypeAt(level, g.DivisionLevels),
		Index:   index,
		Path:    append(slices.Clone(parent.Path), child),
		Bounds:  bounds,
		Name:    names.SubSector(parent.Name, child),
		Density: g.density(level, index, bounds.Center()),
	}, nil
}

// ordinal numbers sectors row by row, starting from the galaxy's low corner.
func (g *Galaxy) ordinal(index spatial.SpaceCoordinates) int {
	width := int64(2 * g.SectorRadius)
	x := index.X + int64(g.SectorRadius)
	y := index.Y + int64(g.SectorRadius)
	z := index.Z + int64(g.SectorThickness)
	return int(x + y*width + z*width*width)
}

// MarkExplored records that a system was generated at coord. Only that hex
// is annotated; marking it again replaces the earlier record.
func (g *Galaxy) MarkExplored(coord spatial.SpaceCoordinates, record ExploredHex) error {
	if !g.Bounds.Contains(coord) {
		return errors.NotFoundf("coordinates %s are outside the galaxy", coord)
	}

	record.Coordinates = coord
	for i := range g.Explored {
		if g.Explored[i].Coordinates == coord {
			g.Explored[i] = record
			return nil
		}
	}
	g.Explored = append(g.Explored, record)
	return nil
}

func (g *Galaxy) ExploredAt(coord spatial.SpaceCoordinates) (ExploredHex, bool) {
	for _, record := range g.Explored {
		if record.Coordinates == coord {
			return record, true
		}
	}
	return ExploredHex{}, false
}

// derive returns the stream owned by one cell of one level.
func (g *Galaxy) derive(level int, index spatial.SpaceCoordinates) *random.Stream {
	return random.Derive(g.Key, int64(level), index.X, index.Y, index.Z)
}
