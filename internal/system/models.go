package system

import (
	"encoding/json"
	"fmt"

	"cosmos-server/internal/body"
)

// StarSystem is an orbital forest stored flat. Points refer to each other by
// id only; CenterID is the root everything is drawn around.
type StarSystem struct {
	Name       string         `json:"name"`
	CenterID   int            `json:"center_id"`
	MainStarID int            `json:"main_star_id"`
	AllObjects []OrbitalPoint `json:"all_objects"`
}

// OrbitalPoint is either a body or, with a Void object, a barycenter.
// Roots have neither a primary nor a distance. Distances are in AU.
type OrbitalPoint struct {
	ID                  int
	PrimaryBodyID       *int
	DistanceFromPrimary *float64
	SatelliteIDs        []int
	Object              body.Object
}

type orbitalPointJSON struct {
	ID                  int             `json:"id"`
	PrimaryBodyID       *int            `json:"primary_body_id"`
	DistanceFromPrimary *float64        `json:"distance_from_primary"`
	SatelliteIDs        []int           `json:"satellite_ids"`
	Object              json.RawMessage `json:"object"`
}

func (p OrbitalPoint) MarshalJSON() ([]byte, error) {
	object, err := body.MarshalObject(p.Object)
	if err != nil {
		return nil, fmt.Errorf("orbital point %d: %w", p.ID, err)
	}

	satellites := p.SatelliteIDs
	if satellites == nil {
		satellites = []int{}
	}

	return json.Marshal(orbitalPointJSON{
		ID:                  p.ID,
		PrimaryBodyID:       p.PrimaryBodyID,
		DistanceFromPrimary: p.DistanceFromPrimary,
		SatelliteIDs:        satellites,
		Object:              object,
	})
}

func (p *OrbitalPoint) UnmarshalJSON(data []byte) error {
	var raw orbitalPointJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	object, err := body.UnmarshalObject(raw.Object)
	if err != nil {
		return fmt.Errorf("orbital point %d: %w", raw.ID, err)
	}

	satellites := raw.SatelliteIDs
	if satellites == nil {
		satellites = []int{}
	}

	*p = OrbitalPoint{
		ID:                  raw.ID,
		PrimaryBodyID:       raw.PrimaryBodyID,
		DistanceFromPrimary: raw.DistanceFromPrimary,
		SatelliteIDs:        satellites,
		Object:              object,
	}
	return nil
}

// IsRoot reports whether the point orbits nothing.
func (p OrbitalPoint) IsRoot() bool {
	return p.PrimaryBodyID == nil
}

// Point returns the point with the given id.
func (s *StarSystem) Point(id int) (OrbitalPoint, bool) {
	for _, p := range s.AllObjects {
		if p.ID == id {
			return p, true
		}
	}
	return OrbitalPoint{}, false
}

// Stars returns every star in the order the points are stored.
func (s *StarSystem) Stars() []body.Star {
	var stars []body.Star
	for _, p := range s.AllObjects {
		if star, ok := p.Object.(body.Star); ok {
			stars = append(stars, star)
		}
	}
	return stars
}
