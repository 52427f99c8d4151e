package system

import (
	"cosmos-server/internal/body"
	"cosmos-server/internal/shared/errors"
)

// Builder assembles a StarSystem. Ids are handed out sequentially from 0, so
// an id is also the point's position in AllObjects.
type Builder struct {
	points []OrbitalPoint
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Add stores a root point holding object and returns its id.
func (b *Builder) Add(object body.Object) int {
	id := len(b.points)
	b.points = append(b.points, OrbitalPoint{
		ID:           id,
		SatelliteIDs: []int{},
		Object:       object,
	})
	return id
}

// Attach makes child orbit parent at distance. A child can be attached once.
func (b *Builder) Attach(child, parent int, distance float64) error {
	if !b.has(child) || !b.has(parent) {
		return errors.Invariantf("cannot attach %d to %d: unknown point", child, parent)
	}
	if child == parent {
		return errors.Invariantf("point %d cannot orbit itself", child)
	}
	if !(distance > 0) {
		return errors.Invariantf("point %d must orbit at a positive distance, got %g", child, distance)
	}
	if b.points[child].PrimaryBodyID != nil {
		return errors.Invariantf("point %d already orbits %d", child, *b.points[child].PrimaryBodyID)
	}

	b.points[child].PrimaryBodyID = &parent
	b.points[child].DistanceFromPrimary = &distance
	b.points[parent].SatelliteIDs = append(b.points[parent].SatelliteIDs, child)
	return nil
}

// Object returns the object stored at id.
func (b *Builder) Object(id int) body.Object {
	return b.points[id].Object
}

// Replace swaps the object stored at id, keeping its place in the hierarchy.
func (b *Builder) Replace(id int, object body.Object) {
	b.points[id].Object = object
}

func (b *Builder) Len() int {
	return len(b.points)
}

func (b *Builder) has(id int) bool {
	return id >= 0 && id < len(b.points)
}

// Build returns the system. It does not validate it.
func (b *Builder) Build(name string, centerID, mainStarID int) *StarSystem {
	points := make([]OrbitalPoint, len(b.points))
	copy(points, b.points)
	return &StarSystem{
		Name:       name,
		CenterID:   centerID,
		MainStarID: mainStarID,
		AllObjects: points,
	}
}
