package spatial

import "fmt"

type EntityType string

const (
	EntityTypeSector    EntityType = "sector"
	EntityTypeSubSector EntityType = "sub_sector"
	EntityTypeHex       EntityType = "hex"
)

// SectorLevel is the coarsest division level. Sub-sectors use 1..depth and
// hexes sit one step below the deepest sub-sector.
const SectorLevel = 0

// EntityTypeAt returns the kind of division found at level for a galaxy
// subdivided depth times below its sectors.
func EntityTypeAt(level, depth int) EntityType {
	switch {
	case level == SectorLevel:
		return EntityTypeSector
	case level > depth:
		return EntityTypeHex
	default:
		return EntityTypeSubSector
	}
}

// SpaceCoordinates addresses one hex of a galaxy.
type SpaceCoordinates struct {
	X int64 `json:"x"`
	Y int64 `json:"y"`
	Z int64 `json:"z"`
}

func NewCoordinates(x, y, z int64) SpaceCoordinates {
	return SpaceCoordinates{X: x, Y: y, Z: z}
}

func (c SpaceCoordinates) Add(o SpaceCoordinates) SpaceCoordinates {
	return SpaceCoordinates{X: c.X + o.X, Y: c.Y + o.Y, Z: c.Z + o.Z}
}

func (c SpaceCoordinates) Sub(o SpaceCoordinates) SpaceCoordinates {
	return SpaceCoordinates{X: c.X - o.X, Y: c.Y - o.Y, Z: c.Z - o.Z}
}

func (c SpaceCoordinates) Scale(k int64) SpaceCoordinates {
	return SpaceCoordinates{X: c.X * k, Y: c.Y * k, Z: c.Z * k}
}

func (c SpaceCoordinates) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// Box is an axis-aligned block of hexes, both corners inclusive.
type Box struct {
	Min SpaceCoordinates `json:"min"`
	Max SpaceCoordinates `json:"max"`
}

func (b Box) Contains(c SpaceCoordinates) bool {
	return c.X >= b.Min.X && c.X <= b.Max.X &&
		c.Y >= b.Min.Y && c.Y <= b.Max.Y &&
		c.Z >= b.Min.Z && c.Z <= b.Max.Z
}

// Center returns the hex nearest to the middle of the box, rounding down.
func (b Box) Center() SpaceCoordinates {
	return SpaceCoordinates{
		X: floorDiv(b.Min.X+b.Max.X, 2),
		Y: floorDiv(b.Min.Y+b.Max.Y, 2),
		Z: floorDiv(b.Min.Z+b.Max.Z, 2),
	}
}

// Side returns the edge length of a cubic box.
func (b Box) Side() int64 {
	return b.Max.X - b.Min.X + 1
}
