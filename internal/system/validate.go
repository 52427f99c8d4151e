package system

import (
	"slices"

	"cosmos-server/internal/body"
	"cosmos-server/internal/shared/errors"
)

// Validate checks that the hierarchy is consistent. A failure means the
// generator produced a broken system and is reported as an internal error.
func Validate(s *StarSystem) error {
	points := make(map[int]OrbitalPoint, len(s.AllObjects))
	for _, p := range s.AllObjects {
		if _, dup := points[p.ID]; dup {
			return errors.Invariantf("duplicate orbital point id %d", p.ID)
		}
		points[p.ID] = p
	}

	for _, p := range s.AllObjects {
		if p.Object == nil {
			return errors.Invariantf("orbital point %d holds no object", p.ID)
		}

		if p.IsRoot() {
			if p.DistanceFromPrimary != nil {
				return errors.Invariantf("root %d has a distance but no primary", p.ID)
			}
		} else {
			primary, ok := points[*p.PrimaryBodyID]
			if !ok {
				return errors.Invariantf("point %d orbits unknown point %d", p.ID, *p.PrimaryBodyID)
			}
			if p.DistanceFromPrimary == nil || !(*p.DistanceFromPrimary > 0) {
				return errors.Invariantf("point %d must have a positive distance from its primary", p.ID)
			}
			if !slices.Contains(primary.SatelliteIDs, p.ID) {
				return errors.Invariantf("point %d is missing from the satellites of %d", p.ID, primary.ID)
			}
		}

		listed := make(map[int]bool, len(p.SatelliteIDs))
		distances := make(map[float64]int, len(p.SatelliteIDs))
		for _, id := range p.SatelliteIDs {
			if listed[id] {
				return errors.Invariantf("point %d lists satellite %d more than once", p.ID, id)
			}
			listed[id] = true

			satellite, ok := points[id]
			if !ok {
				return errors.Invariantf("point %d lists unknown satellite %d", p.ID, id)
			}
			if satellite.PrimaryBodyID == nil || *satellite.PrimaryBodyID != p.ID {
				return errors.Invariantf("point %d lists satellite %d which orbits elsewhere", p.ID, id)
			}
			// Satellites may come later in the slice than their owner.
			if satellite.DistanceFromPrimary == nil {
				return errors.Invariantf("satellite %d of point %d has no distance", id, p.ID)
			}
			if other, seen := distances[*satellite.DistanceFromPrimary]; seen {
				return errors.Invariantf("satellites %d and %d of point %d share a distance", other, id, p.ID)
			}
			distances[*satellite.DistanceFromPrimary] = id
		}
	}

	if err := checkAcyclic(points); err != nil {
		return err
	}

	center, ok := points[s.CenterID]
	if !ok {
		return errors.Invariantf("center %d is not a point of the system", s.CenterID)
	}
	if !center.IsRoot() {
		return errors.Invariantf("center %d is not a root", s.CenterID)
	}

	main, ok := points[s.MainStarID]
	if !ok {
		return errors.Invariantf("main star %d is not a point of the system", s.MainStarID)
	}
	if body.KindOf(main.Object) != body.KindStar {
		return errors.Invariantf("main star %d holds %s", s.MainStarID, body.KindOf(main.Object))
	}
	return nil
}

// checkAcyclic walks up from every point; a walk longer than the number of
// points has gone round a loop.
func checkAcyclic(points map[int]OrbitalPoint) error {
	for id, p := range points {
		steps := 0
		for !p.IsRoot() {
			steps++
			if steps > len(points) {
				return errors.Invariantf("point %d is part of an orbital cycle", id)
			}
			p = points[*p.PrimaryBodyID]
		}
	}
	return nil
}
