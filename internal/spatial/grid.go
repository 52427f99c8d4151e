package spatial

// Grid partitions space into cubic cells of Side hexes, counted from Origin.
// Cell (0,0,0) covers Origin..Origin+Side-1 on every axis.
type Grid struct {
	Origin SpaceCoordinates
	Side   int64
}

// CellIndex returns the index of the cell containing c. Coordinates below the
// origin map to negative indices.
func (g Grid) CellIndex(c SpaceCoordinates) SpaceCoordinates {
	rel := c.Sub(g.Origin)
	return SpaceCoordinates{
		X: floorDiv(rel.X, g.Side),
		Y: floorDiv(rel.Y, g.Side),
		Z: floorDiv(rel.Z, g.Side),
	}
}

// CellBox returns the hexes covered by the cell at index.
func (g Grid) CellBox(index SpaceCoordinates) Box {
	min := g.Origin.Add(index.Scale(g.Side))
	return Box{
		Min: min,
		Max: min.Add(SpaceCoordinates{X: g.Side - 1, Y: g.Side - 1, Z: g.Side - 1}),
	}
}

// floorDiv rounds toward negative infinity, unlike Go's / operator.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
